package agent

import (
	"context"
	"encoding/json"
)

// AgentEvent is the payload delivered on the event bus for an agent
// execution.
type AgentEvent struct {
	Arguments  map[string]json.RawMessage `json:"arguments"`
	WorkingDir string                     `json:"working_dir,omitempty"`
}

// FileStore persists result files with metadata attached. *S3Store is the
// production implementation.
type FileStore interface {
	PutFile(ctx context.Context, path string, data []byte, metadata map[string]string) error
}

// EventSystem implements System over an event payload and a FileStore. The
// success or failure outcome is captured so the Lambda entrypoint can return
// it to the invoking framework.
type EventSystem struct {
	event      AgentEvent
	store      FileStore
	workingDir string

	response *Response
	failure  error
}

// NewEventSystem builds a System for one invocation. The event's working
// directory wins over defaultWorkingDir when both are set.
func NewEventSystem(event AgentEvent, store FileStore, defaultWorkingDir string) *EventSystem {
	workingDir := event.WorkingDir
	if workingDir == "" {
		workingDir = defaultWorkingDir
	}
	return &EventSystem{event: event, store: store, workingDir: workingDir}
}

func (s *EventSystem) GetArgument(name string) (json.RawMessage, bool) {
	raw, ok := s.event.Arguments[name]
	return raw, ok
}

func (s *EventSystem) WorkingDir() string {
	return s.workingDir
}

func (s *EventSystem) PutFile(ctx context.Context, path string, data []byte, metadata map[string]string) error {
	return s.store.PutFile(ctx, path, data, metadata)
}

func (s *EventSystem) ReportSuccess(ctx context.Context, body *Response) error {
	s.response = body
	return nil
}

func (s *EventSystem) ReportFailure(ctx context.Context, err error) error {
	s.failure = err
	return nil
}

// Response returns the captured success body, if any.
func (s *EventSystem) Response() *Response {
	return s.response
}

// Failure returns the captured failure, if any.
func (s *EventSystem) Failure() error {
	return s.failure
}
