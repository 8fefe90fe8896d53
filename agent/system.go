package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// System is the collaborator the invoking framework hands to the agent. It
// covers argument access, file persistence and success/failure signaling;
// the framework's own dispatch mechanics stay behind it.
type System interface {
	// GetArgument returns the raw value of a named invocation argument and
	// whether it was present.
	GetArgument(name string) (json.RawMessage, bool)

	// WorkingDir returns the directory result files are placed under when
	// the caller supplies no path.
	WorkingDir() string

	// PutFile persists data at path with the given metadata attached.
	PutFile(ctx context.Context, path string, data []byte, metadata map[string]string) error

	// ReportSuccess hands the response body back to the invoking framework.
	ReportSuccess(ctx context.Context, body *Response) error

	// ReportFailure surfaces err to the framework's exception reporting.
	ReportFailure(ctx context.Context, err error) error
}

// ParseRequest reads the agent arguments off the system and applies the
// documented defaults: a single default region, empty filters and a
// max-record count of 50.
func ParseRequest(sys System) (Request, error) {
	var req Request

	raw, ok := sys.GetArgument("service_code")
	if !ok {
		return req, errors.New("service_code argument is required")
	}
	if err := json.Unmarshal(raw, &req.ServiceCode); err != nil {
		return req, fmt.Errorf("invalid service_code argument: %w", err)
	}
	if req.ServiceCode == "" {
		return req, errors.New("service_code argument is required")
	}

	if raw, ok := sys.GetArgument("regions"); ok {
		if err := json.Unmarshal(raw, &req.Regions); err != nil {
			return req, fmt.Errorf("invalid regions argument: %w", err)
		}
	}
	if raw, ok := sys.GetArgument("filters"); ok {
		if err := json.Unmarshal(raw, &req.Filters); err != nil {
			return req, fmt.Errorf("invalid filters argument: %w", err)
		}
	}
	if raw, ok := sys.GetArgument("max_records"); ok {
		if err := json.Unmarshal(raw, &req.MaxRecords); err != nil {
			return req, fmt.Errorf("invalid max_records argument: %w", err)
		}
	}
	if raw, ok := sys.GetArgument("result_file_path"); ok {
		if err := json.Unmarshal(raw, &req.ResultFilePath); err != nil {
			return req, fmt.Errorf("invalid result_file_path argument: %w", err)
		}
	}

	req.applyDefaults()
	return req, nil
}
