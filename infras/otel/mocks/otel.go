package mocks

import (
	"context"
	"lumen/infras/otel"
	"sync"
)

// Recorder is an otel.Otel that keeps every scope it opens.
type Recorder struct {
	mu     sync.Mutex
	scopes []*Scope
}

func (r *Recorder) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	scope := &Scope{Name: spanName}

	r.mu.Lock()
	r.scopes = append(r.scopes, scope)
	r.mu.Unlock()

	return ctx, scope
}

func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}

// Scope returns the first scope opened with spanName, or nil.
func (r *Recorder) Scope(spanName string) *Scope {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, scope := range r.scopes {
		if scope.Name == spanName {
			return scope
		}
	}

	return nil
}

func NewOtel() otel.Otel {
	return &Recorder{}
}

func NewRecorder() *Recorder {
	return &Recorder{}
}
