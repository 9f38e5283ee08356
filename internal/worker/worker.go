package worker

import "sync"

// Task represents a unit of work executed by the pool.
type Task func()

// Pool runs background tasks such as catalogue cache warm-ups.
type Pool interface {
	// Submit blocks until a worker or queue slot accepts t.
	Submit(Task)
	// TrySubmit enqueues t only if it would not block; it reports whether t was accepted.
	TrySubmit(Task) bool
	Stop()
}

// queuePerWorker sizes the buffered job queue.
const queuePerWorker = 16

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task, n*queuePerWorker)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup

	mu      sync.RWMutex
	stopped bool
}

func (p *pool) Submit(t Task) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return
	}
	p.jobs <- t
}

func (p *pool) TrySubmit(t Task) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return false
	}
	select {
	case p.jobs <- t:
		return true
	default:
		return false
	}
}

// Stop drains queued tasks and waits for the workers. Calling it twice is a no-op.
func (p *pool) Stop() {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}
