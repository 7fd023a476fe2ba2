package wire

import (
	"encoding/json"
	"fmt"

	"github.com/jsonapi-tools/wiremap/internal/errors"
)

// Links holds the document-level pagination links. Each member is optional.
type Links struct {
	First string
	Last  string
	Prev  string
	Next  string
}

// IsZero reports whether no link is present.
func (l Links) IsZero() bool {
	return l == Links{}
}

// linkValue accepts the two wire forms of a link: a bare string, or an
// object with an href member.
func linkValue(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, nil
	}

	var obj struct {
		Href string `json:"href"`
	}
	if err := json.Unmarshal(raw, &obj); err != nil {
		return "", fmt.Errorf("%w: link must be a string or an href object", errors.ErrInvalidDocument)
	}
	return obj.Href, nil
}

// UnmarshalJSON reads the links object, tolerating null and ignoring link
// names other than the four pagination members.
func (l *Links) UnmarshalJSON(raw []byte) error {
	var shadow map[string]json.RawMessage
	if err := json.Unmarshal(raw, &shadow); err != nil {
		return fmt.Errorf("%w: malformed links object: %w", errors.ErrInvalidDocument, err)
	}

	var out Links
	var err error
	if out.First, err = linkValue(shadow["first"]); err != nil {
		return err
	}
	if out.Last, err = linkValue(shadow["last"]); err != nil {
		return err
	}
	if out.Prev, err = linkValue(shadow["prev"]); err != nil {
		return err
	}
	if out.Next, err = linkValue(shadow["next"]); err != nil {
		return err
	}

	*l = out
	return nil
}

// MarshalJSON writes the present links as bare strings.
func (l Links) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, 4)
	if l.First != "" {
		out["first"] = l.First
	}
	if l.Last != "" {
		out["last"] = l.Last
	}
	if l.Prev != "" {
		out["prev"] = l.Prev
	}
	if l.Next != "" {
		out["next"] = l.Next
	}
	return json.Marshal(out)
}
