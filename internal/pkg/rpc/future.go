package rpc

import (
	"context"
	"encoding/json"
	"sync"
)

// Future is the single-resolution result of an asynchronous call.
type Future struct {
	once   sync.Once
	done   chan struct{}
	result json.RawMessage
	err    error
}

func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve settles the future. Only the first call has any effect; it reports
// whether this call was the one that settled it.
func (f *Future) Resolve(result []byte, err error) bool {
	settled := false
	f.once.Do(func() {
		f.result = result
		f.err = err
		settled = true
		close(f.done)
	})
	return settled
}

// Done is closed once the future is resolved.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Await blocks until the future resolves or ctx ends.
func (f *Future) Await(ctx context.Context) (json.RawMessage, error) {
	select {
	case <-f.done:
		return f.result, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Then runs exactly one of the continuations, once, on a new goroutine after
// resolution. Either may be nil.
func (f *Future) Then(onSuccess func(json.RawMessage), onFailure func(error)) {
	go func() {
		<-f.done
		if f.err != nil {
			if onFailure != nil {
				onFailure(f.err)
			}
			return
		}
		if onSuccess != nil {
			onSuccess(f.result)
		}
	}()
}
