package wire

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ErrorObject is a single entry of a document's errors array. Servers vary
// in where they put the numeric code (id, code, or status) and whether they
// encode it as a number or a numeric string, so all three members are kept
// raw and interpreted by NumericCode.
type ErrorObject struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Code   json.RawMessage `json:"code,omitempty"`
	Status json.RawMessage `json:"status,omitempty"`
	Title  string          `json:"title,omitempty"`
	Detail string          `json:"detail,omitempty"`
}

// NumericCode extracts the first usable numeric code, checking id, then
// code, then status. Numbers and numeric strings both qualify.
func (e ErrorObject) NumericCode() (int, bool) {
	for _, raw := range []json.RawMessage{e.ID, e.Code, e.Status} {
		if code, ok := numericValue(raw); ok {
			return code, true
		}
	}
	return 0, false
}

func numericValue(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}

	s := strings.TrimSpace(string(raw))
	s = strings.Trim(s, `"`)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
