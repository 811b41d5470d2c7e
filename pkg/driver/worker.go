package driver

import "sync"

// Response pairs a compilation result with the id of the request that
// produced it.
type Response struct {
	RequestID uint64
	Result    Result
}

type request struct {
	id     uint64
	source string
}

// Worker runs compilations on a single background goroutine. Request ids
// increase monotonically; a caller interested only in the newest source
// (an editor recompiling on every keystroke) discards any response whose
// id is stale. There is no true cancellation: an in-flight compile always
// runs to completion, its response is simply ignored.
type Worker struct {
	mu        sync.Mutex
	lastID    uint64
	requests  chan request
	responses chan Response
	closeOnce sync.Once
}

// NewWorker starts the background goroutine. The channel buffers absorb
// bursts of submissions; the caller is expected to drain Responses.
func NewWorker(opts Options) *Worker {
	w := &Worker{
		requests:  make(chan request, 16),
		responses: make(chan Response, 16),
	}
	go func() {
		for req := range w.requests {
			w.responses <- Response{RequestID: req.id, Result: Compile(req.source, opts)}
		}
		close(w.responses)
	}()
	return w
}

// Submit queues a compilation and returns its request id, which becomes
// the latest id.
func (w *Worker) Submit(source string) uint64 {
	w.mu.Lock()
	w.lastID++
	id := w.lastID
	w.mu.Unlock()
	w.requests <- request{id: id, source: source}
	return id
}

// Responses delivers results in submission order. The channel is closed
// after Close once all queued work has drained.
func (w *Worker) Responses() <-chan Response { return w.responses }

// Latest returns the most recently issued request id.
func (w *Worker) Latest() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastID
}

// Stale reports whether a response belongs to a superseded request.
func (w *Worker) Stale(resp Response) bool {
	return resp.RequestID != w.Latest()
}

// Close stops accepting submissions. Queued requests still complete.
func (w *Worker) Close() {
	w.closeOnce.Do(func() { close(w.requests) })
}
