package agent

import "context"

type StreamEventType int

const (
	// StreamEventTextDelta carries an incremental fragment of model text.
	StreamEventTextDelta StreamEventType = iota + 1
	// StreamEventCompleted is the end-of-stream sentinel; no further
	// deltas arrive after it.
	StreamEventCompleted
)

type StreamEvent struct {
	Type StreamEventType
	Text string
}

// Request is a single chat-completion request.
type Request struct {
	Model            string
	Messages         []Message
	Temperature      float64
	FrequencyPenalty float64
}

// ModelClient streams one completion. onEvent is called sequentially, one
// event fully handled before the next is read.
type ModelClient interface {
	Stream(ctx context.Context, req Request, onEvent func(StreamEvent)) error
}
