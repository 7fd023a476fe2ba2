package codec

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jsonapi-tools/wiremap/internal/wire"
)

// Error is the structured document error surfaced to callers: a numeric
// code plus an optional display message. It is a value to inspect and
// report, never a crash.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server error %d", e.Code)
}

// DecodeError extracts a structured error from an error-shaped document.
// The first entry of the errors array wins; later entries are discarded.
// The entry's numeric code is used when present, else fallbackStatus. A
// title becomes the display message; without one the error is code-only.
//
// DecodeError never fails: malformed or absent errors data degrades to a
// code-only error built from fallbackStatus.
func DecodeError(raw []byte, fallbackStatus int) *Error {
	out := &Error{Code: fallbackStatus}

	var doc struct {
		Errors []wire.ErrorObject `json:"errors"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil || len(doc.Errors) == 0 {
		return out
	}

	entry := doc.Errors[0]
	if code, ok := entry.NumericCode(); ok {
		out.Code = code
	}
	if title := strings.TrimSpace(entry.Title); title != "" {
		out.Message = title
	}

	return out
}
