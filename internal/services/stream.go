package services

import (
	"log"
	"sync"
	"time"

	"atscv/cv-converter/internal/models"
)

// ProgressStream carries the ordered progress events of one generation run
// from the pipeline to the single subscribed client. Sending is best effort:
// once the client is gone or the stream is complete, Send quietly drops the
// event instead of failing the producer. A lifetime timer force-completes
// the stream as an error so a stuck run can never hold the connection open
// forever.
type ProgressStream struct {
	events chan models.ProgressEvent
	done   chan struct{}
	timer  *time.Timer

	mu           sync.Mutex
	closed       bool
	disconnected bool
	err          error
}

func NewProgressStream(buffer int, lifetime time.Duration) *ProgressStream {
	s := &ProgressStream{
		events: make(chan models.ProgressEvent, buffer),
		done:   make(chan struct{}),
	}

	s.timer = time.AfterFunc(lifetime, func() {
		log.Println("⏰ Progress stream exceeded its lifetime, completing with error")
		s.CompleteError(ErrStreamTimeout)
	})

	return s
}

// Send appends one event to the delivery sequence. Events are delivered in
// send order; an event is only dropped when the stream is already complete,
// the client has disconnected, or the buffer is full.
func (s *ProgressStream) Send(event models.ProgressEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed || s.disconnected {
		log.Printf("⚠️  Dropping progress event %s (stream no longer deliverable)\n", event.Stage)
		return
	}

	select {
	case s.events <- event:
	default:
		log.Printf("⚠️  Dropping progress event %s (consumer too slow)\n", event.Stage)
	}
}

// CompleteSuccess signals normal end-of-stream.
func (s *ProgressStream) CompleteSuccess() {
	s.complete(nil)
}

// CompleteError signals abnormal termination with the given cause.
func (s *ProgressStream) CompleteError(err error) {
	s.complete(err)
}

// Disconnect marks the consumer as gone. The stream stays open so the
// producer still runs to completion, but further sends become no-ops.
func (s *ProgressStream) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disconnected = true
}

// Events is the consumer side of the stream. The channel is closed when the
// stream completes; Err tells success from failure afterwards.
func (s *ProgressStream) Events() <-chan models.ProgressEvent {
	return s.events
}

// Done is closed once the stream has completed, successfully or not.
func (s *ProgressStream) Done() <-chan struct{} {
	return s.done
}

// Err returns the termination cause, or nil before completion and after a
// successful run.
func (s *ProgressStream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *ProgressStream) complete(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}

	s.closed = true
	s.err = err
	s.timer.Stop()
	close(s.events)
	close(s.done)
}
