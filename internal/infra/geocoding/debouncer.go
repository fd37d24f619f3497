package geocoding

import (
	"context"
	"strings"
	"sync"
	"time"

	"placebook/internal/domain/entity"
)

// DefaultDebounce is the quiet period before an autocomplete query is sent upstream.
const DefaultDebounce = 500 * time.Millisecond

// FetchFunc performs the upstream lookup for a settled query. It must honor
// ctx cancellation and should return an empty result rather than fail.
type FetchFunc func(ctx context.Context, query string) []entity.Location

// Debouncer holds at most one pending autocomplete request. A newer request
// resolves the pending one with an empty result and cancels its context.
type Debouncer struct {
	delay time.Duration
	fetch FetchFunc

	mu      sync.Mutex
	pending *pendingRequest
	closed  bool
}

type pendingRequest struct {
	query  string
	ctx    context.Context
	cancel context.CancelFunc
	timer  *time.Timer
	result chan []entity.Location
	once   sync.Once
}

// resolve delivers the result exactly once and releases the request context.
func (r *pendingRequest) resolve(locations []entity.Location) {
	r.once.Do(func() {
		if locations == nil {
			locations = []entity.Location{}
		}
		r.result <- locations
		r.cancel()
	})
}

// NewDebouncer creates a debouncer that calls fetch after delay of quiet.
func NewDebouncer(delay time.Duration, fetch FetchFunc) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}

	return &Debouncer{
		delay: delay,
		fetch: fetch,
	}
}

// Submit schedules query and waits for its result. It returns an empty list
// when the query is blank, superseded, canceled by ctx, or failed upstream.
func (d *Debouncer) Submit(ctx context.Context, query string) []entity.Location {
	result, req := d.submit(ctx, query)

	select {
	case locations := <-result:
		return locations
	case <-ctx.Done():
		d.release(req)

		return []entity.Location{}
	}
}

// SubmitAsync schedules query and returns a channel that receives exactly one result.
func (d *Debouncer) SubmitAsync(ctx context.Context, query string) <-chan []entity.Location {
	result, req := d.submit(ctx, query)
	if req != nil {
		// Release the slot when the caller gives up before the result lands.
		context.AfterFunc(req.ctx, func() { d.release(req) })
	}

	return result
}

// Close resolves any pending request and rejects further submissions.
func (d *Debouncer) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.closed = true
	d.supersedeLocked()
}

// Pending reports whether a request is waiting or in flight.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending != nil
}

func (d *Debouncer) submit(ctx context.Context, query string) (<-chan []entity.Location, *pendingRequest) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.supersedeLocked()

	query = strings.TrimSpace(query)
	if query == "" || d.closed {
		empty := make(chan []entity.Location, 1)
		empty <- []entity.Location{}

		return empty, nil
	}

	reqCtx, cancel := context.WithCancel(ctx)
	req := &pendingRequest{
		query:  query,
		ctx:    reqCtx,
		cancel: cancel,
		result: make(chan []entity.Location, 1),
	}
	req.timer = time.AfterFunc(d.delay, func() { d.fire(req) })
	d.pending = req

	return req.result, req
}

// supersedeLocked resolves the pending request, if any, with an empty result.
func (d *Debouncer) supersedeLocked() {
	if d.pending == nil {
		return
	}

	d.pending.timer.Stop()
	d.pending.resolve(nil)
	d.pending = nil
}

// release frees the slot if req still holds it.
func (d *Debouncer) release(req *pendingRequest) {
	if req == nil {
		return
	}

	d.mu.Lock()
	if d.pending == req {
		req.timer.Stop()
		d.pending = nil
	}
	d.mu.Unlock()

	req.resolve(nil)
}

func (d *Debouncer) fire(req *pendingRequest) {
	d.mu.Lock()
	current := d.pending == req
	d.mu.Unlock()

	if !current || req.ctx.Err() != nil {
		return
	}

	locations := d.fetch(req.ctx, req.query)

	d.mu.Lock()
	if d.pending == req {
		d.pending = nil
	}
	d.mu.Unlock()

	if req.ctx.Err() != nil {
		locations = nil
	}
	req.resolve(locations)
}
