package syncs

// Semaphore with capacity 1 is the lock that keeps a machine single-writer.
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, n)
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

func (s Semaphore) Release() {
	<-s
}

func (s Semaphore) With(fn func()) {
	s.Acquire()
	defer s.Release()
	fn()
}
