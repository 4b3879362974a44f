package api

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var (
	// ErrUnauthorized is returned for a 401 that survives the refresh
	// attempt. Callers should treat the session as invalidated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUnreachable is returned when no response was received at all
	// (connection refused, DNS failure, timeout).
	ErrUnreachable = errors.New("server unreachable")
)

// RemoteError carries a non-2xx response other than 401: the HTTP status and
// the server-provided message, if any.
type RemoteError struct {
	Status  int
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("remote error: status %d", e.Status)
	}
	return fmt.Sprintf("remote error: status %d: %s", e.Status, e.Message)
}

// errorMessage extracts a human-readable message from an error payload.
// The API answers with {"error": "..."} from hand-written views and
// {"detail": "..."} from framework-generated ones; field-level validation
// errors arrive as {"field": ["msg", ...]}.
func errorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return ""
	}

	for _, key := range []string{"error", "detail", "message"} {
		if v := parsed.Get(key); v.Type == gjson.String {
			return v.String()
		}
	}

	// fall back to the first field error
	var msg string
	parsed.ForEach(func(key, value gjson.Result) bool {
		if value.IsArray() {
			if arr := value.Array(); len(arr) > 0 {
				msg = fmt.Sprintf("%s: %s", key.String(), arr[0].String())
				return false
			}
		}
		if value.Type == gjson.String {
			msg = fmt.Sprintf("%s: %s", key.String(), value.String())
			return false
		}
		return true
	})
	return msg
}
