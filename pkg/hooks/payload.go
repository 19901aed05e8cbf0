package hooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidPayload is returned for stdin that is not a single hook payload object.
var ErrInvalidPayload = errors.New("invalid hook payload")

// Payload is the JSON document the editor pipes to a post-edit hook.
type Payload struct {
	ToolName  string    `json:"tool_name,omitempty"`
	ToolInput ToolInput `json:"tool_input"`
}

// ToolInput carries the arguments of the edit that triggered the hook.
type ToolInput struct {
	FilePath string `json:"file_path"`
}

type wirePayload struct {
	ToolName  string          `json:"tool_name"`
	ToolInput json.RawMessage `json:"tool_input"`
}

// ReadPayload decodes exactly one payload object from r.
// A missing tool_input reads as an empty one; a null payload, a null
// tool_input or trailing data are errors.
func ReadPayload(r io.Reader) (Payload, error) {
	dec := json.NewDecoder(r)

	var w *wirePayload
	if err := dec.Decode(&w); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}
	if w == nil {
		return Payload{}, fmt.Errorf("%w: payload is null", ErrInvalidPayload)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return Payload{}, fmt.Errorf("%w: trailing data after payload", ErrInvalidPayload)
	}

	p := Payload{ToolName: w.ToolName}
	if w.ToolInput == nil {
		return p, nil
	}
	if bytes.Equal(bytes.TrimSpace(w.ToolInput), []byte("null")) {
		return Payload{}, fmt.Errorf("%w: tool_input is null", ErrInvalidPayload)
	}
	if err := json.Unmarshal(w.ToolInput, &p.ToolInput); err != nil {
		return Payload{}, fmt.Errorf("%w: tool_input: %v", ErrInvalidPayload, err)
	}
	return p, nil
}
