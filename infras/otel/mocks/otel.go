// Package mocks provides tracing doubles: NewOtel discards everything, NewRecorder keeps traced errors for assertions.
package mocks

import (
	"context"
	"sync"

	"tzform/infras/otel"
)

type otelImpl struct {
	recorder *Recorder
}

// NewScope implements otel.Otel.
func (o *otelImpl) NewScope(ctx context.Context, _, spanName string) (context.Context, otel.Scope) {
	if o.recorder != nil {
		o.recorder.mu.Lock()
		o.recorder.Spans = append(o.recorder.Spans, spanName)
		o.recorder.mu.Unlock()
	}

	return ctx, &scopeImpl{recorder: o.recorder}
}

func NewOtel() otel.Otel {
	return &otelImpl{}
}

// Recorder collects span names and traced errors.
type Recorder struct {
	mu     sync.Mutex
	Spans  []string
	Errors []error
}

func NewRecorder() (otel.Otel, *Recorder) {
	rec := &Recorder{}

	return &otelImpl{recorder: rec}, rec
}

// TracedErrors returns a snapshot of the errors recorded so far.
func (r *Recorder) TracedErrors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.Errors...)
}

type scopeImpl struct {
	recorder *Recorder
}

func (s *scopeImpl) AddEvent(_ string) {}

func (s *scopeImpl) End() {}

func (s *scopeImpl) SetAttribute(_ string, _ any) {}

func (s *scopeImpl) SetAttributes(_ map[string]any) {}

func (s *scopeImpl) TraceError(err error) {
	if s.recorder == nil || err == nil {
		return
	}

	s.recorder.mu.Lock()
	s.recorder.Errors = append(s.recorder.Errors, err)
	s.recorder.mu.Unlock()
}

func (s *scopeImpl) TraceIfError(err error) {
	if err != nil {
		s.TraceError(err)
	}
}

func NewScope() otel.Scope {
	return &scopeImpl{}
}
