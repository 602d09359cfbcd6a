package syncs

// Guard serializes access to a value that is not safe for concurrent use.
type Guard[T any] struct {
	sem   Semaphore
	value T
}

func NewGuard[T any](value T) *Guard[T] {
	return &Guard[T]{
		sem:   NewSemaphore(1),
		value: value,
	}
}

func (g *Guard[T]) Do(fn func(T)) {
	g.sem.Acquire()
	defer g.sem.Release()
	fn(g.value)
}

// Get returns fn's result computed while holding the guard.
func Get[T, R any](g *Guard[T], fn func(T) R) (ret R) {
	g.Do(func(v T) {
		ret = fn(v)
	})
	return
}
