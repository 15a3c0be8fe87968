package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// errorPayload covers the message shapes of both APIs: PostgREST uses
// "message", GoTrue uses "msg" or "error_description" depending on the
// endpoint.
type errorPayload struct {
	Message     string `json:"message"`
	Msg         string `json:"msg"`
	ErrorDesc   string `json:"error_description"`
	ErrorString string `json:"error"`
}

func (p errorPayload) text() string {
	for _, s := range []string{p.Message, p.Msg, p.ErrorDesc, p.ErrorString} {
		if s != "" {
			return s
		}
	}
	return ""
}

// apiError converts a non-2xx response into an error whose message is
// the backend's own, so it can be surfaced to the user verbatim.
func apiError(status int, body []byte) error {
	var payload errorPayload
	if err := json.Unmarshal(body, &payload); err == nil {
		if msg := payload.text(); msg != "" {
			return errors.New(msg)
		}
	}

	switch status {
	case 401, 403:
		return fmt.Errorf("session expired or revoked (run: tdo login)")
	case 404:
		return fmt.Errorf("not found")
	}
	return fmt.Errorf("unexpected status %d", status)
}

// wrapTransportError rewrites low-level transport failures into
// messages fit for the terminal.
func wrapTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || strings.Contains(err.Error(), "context deadline exceeded") {
		return fmt.Errorf("request timed out")
	}
	return err
}
