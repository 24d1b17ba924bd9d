package headerdata

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Kostushka/web_worker/internal/connection/types"
)

func TestFormatDate(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)
	d := time.Date(2026, time.October, 15, 18, 4, 5, 0, moscow)

	assert.Equal(t, "Oct 15, 2026, 3:04:05 PM", FormatDate(d))
}

func TestWriteResponseHeader(t *testing.T) {
	cases := map[string]struct {
		data *types.StatusData
		want string
	}{
		"ok": {
			data: &types.StatusData{Code: 200, ContentType: "image/png", Date: "D", Server: "S"},
			want: "HTTP/1.1 200\nDate: D\nServer: S\nConnection: close\nContent-Type: image/png\n\n",
		},
		"not found": {
			data: &types.StatusData{Code: 404, ContentType: "text/html", Date: "D", Server: "S"},
			want: "HTTP/1.1 404\nDate: D\nServer: S\nConnection: close\nContent-Type: text/html\n\n",
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			h := HeaderData{}
			h.SetResponseData(c.data)

			var buf bytes.Buffer
			require.NoError(t, h.WriteResponseHeader(&buf))

			if diff := cmp.Diff(c.want, buf.String()); diff != "" {
				t.Errorf("header mismatch (-expected +got):\n%s", diff)
			}
			assert.Equal(t, 1, strings.Count(buf.String(), "Connection: close\n"))
			assert.NotContains(t, buf.String(), "Content-Length")
		})
	}
}

func TestLines(t *testing.T) {
	h := HeaderData{}
	h.SetResponseData(&types.StatusData{Code: 200, ContentType: "text/html", Date: "D", Server: "S"})

	status, headers := h.Lines()

	assert.Equal(t, types.ResponseStatusLine{Version: "HTTP/1.1", Status: "200"}, status)
	if diff := cmp.Diff(types.ResponseHeaders{
		"Date: D",
		"Server: S",
		"Connection: close",
		"Content-Type: text/html",
	}, headers); diff != "" {
		t.Errorf("headers mismatch (-expected +got):\n%s", diff)
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestWriteResponseHeaderError(t *testing.T) {
	h := HeaderData{}
	h.SetResponseData(&types.StatusData{Code: 404, ContentType: "text/html"})

	err := h.WriteResponseHeader(brokenWriter{})

	assert.ErrorContains(t, err, "broken pipe")
}
