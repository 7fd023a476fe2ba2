package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecodeError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		raw         string
		fallback    int
		wantCode    int
		wantMessage string
	}{
		{
			name:        "numeric id and title",
			raw:         `{"errors":[{"id":42,"title":"Not allowed"}]}`,
			fallback:    500,
			wantCode:    42,
			wantMessage: "Not allowed",
		},
		{
			name:     "empty object falls back",
			raw:      `{}`,
			fallback: 404,
			wantCode: 404,
		},
		{
			name:     "code without title",
			raw:      `{"errors":[{"id":409}]}`,
			fallback: 500,
			wantCode: 409,
		},
		{
			name:        "first entry wins",
			raw:         `{"errors":[{"id":1,"title":"first"},{"id":2,"title":"second"}]}`,
			fallback:    500,
			wantCode:    1,
			wantMessage: "first",
		},
		{
			name:        "numeric string id",
			raw:         `{"errors":[{"id":"403","title":"Forbidden"}]}`,
			fallback:    500,
			wantCode:    403,
			wantMessage: "Forbidden",
		},
		{
			name:        "non-numeric id keeps fallback code",
			raw:         `{"errors":[{"id":"err-abc","title":"boom"}]}`,
			fallback:    502,
			wantCode:    502,
			wantMessage: "boom",
		},
		{
			name:     "empty errors array falls back",
			raw:      `{"errors":[]}`,
			fallback: 500,
			wantCode: 500,
		},
		{
			name:     "not json falls back",
			raw:      `<!doctype html>`,
			fallback: 503,
			wantCode: 503,
		},
		{
			name:     "blank title is no message",
			raw:      `{"errors":[{"id":410,"title":"  "}]}`,
			fallback: 500,
			wantCode: 410,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			e := DecodeError([]byte(tc.raw), tc.fallback)
			require.NotNil(t, e)
			require.Equal(t, tc.wantCode, e.Code)
			require.Equal(t, tc.wantMessage, e.Message)
		})
	}
}

func TestErrorString(t *testing.T) {
	t.Parallel()

	withMessage := &Error{Code: 42, Message: "Not allowed"}
	require.Equal(t, "server error 42: Not allowed", withMessage.Error())

	codeOnly := &Error{Code: 404}
	require.Equal(t, "server error 404", codeOnly.Error())
}
