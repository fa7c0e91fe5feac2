package nlcep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ionut-t/calkeys/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(srv.URL, WithHTTPClient(srv.Client()), WithSession("s3cret"))
	require.NoError(t, err)
	return client
}

func TestInterpretSuccess(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, EndpointPath, r.URL.Path)
		assert.Equal(t, "dinner tomorrow @home", r.URL.Query().Get("nl"))

		cookie, err := r.Cookie(SessionCookieName)
		if assert.NoError(t, err) {
			assert.Equal(t, "s3cret", cookie.Value)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"summary":"dinner","date":"2024-01-16","time":"19:00","location":"home","duration":null}`))
	})

	got, err := client.Interpret(context.Background(), "dinner tomorrow @home")

	require.NoError(t, err)
	assert.Equal(t, core.Interpretation{
		Summary:  "dinner",
		Date:     "2024-01-16",
		Time:     "19:00",
		Location: "home",
	}, got)
}

func TestInterpretNonStringFields(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":"run","date":"2024-01-16","duration":45}`))
	})

	got, err := client.Interpret(context.Background(), "run 45min")

	require.NoError(t, err)
	assert.Equal(t, "45", got.Duration)
	assert.Empty(t, got.Time)
}

func TestInterpretRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"plain text", "could not find a date\n", "could not find a date"},
		{"json string", `"missing date"`, "missing date"},
		{"json object", `{"message":"bad time"}`, "bad time"},
		{"empty", "", "no details"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := client.Interpret(context.Background(), "dinner")

			var rejection *core.RejectionError
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, http.StatusBadRequest, rejection.Status)
			assert.Equal(t, tt.want, rejection.Hint)
		})
	}
}

func TestInterpretMalformed(t *testing.T) {
	bodies := []string{`not json`, `[1,2]`, `{"date":"2024-01-16"}`}

	for _, body := range bodies {
		client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(body))
		})

		_, err := client.Interpret(context.Background(), "x")

		require.Error(t, err, body)
		assert.Contains(t, err.Error(), "malformed response")
		assert.NotErrorIs(t, err, core.ErrPreviewRejected)
	}
}

func TestInterpretTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	client, err := NewClient(srv.URL)
	require.NoError(t, err)
	srv.Close()

	_, err = client.Interpret(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), EndpointPath)
}

func TestInterpretFeedsPreview(t *testing.T) {
	client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"summary":"dinner","date":"2024-01-16"}`))
	})

	res := core.FetchPreview(context.Background(), client, core.PreviewRequest{Text: "dinner"})

	assert.Equal(t, "What: dinner\nWhen: 2024-01-16 ?\nWhere: ?\nFor how long: ?\n", res.Hint)
}

func TestNewClientValidatesURL(t *testing.T) {
	_, err := NewClient("localhost")
	assert.Error(t, err)

	_, err = NewClient("://bad")
	assert.Error(t, err)

	c, err := NewClient("https://cal.example.com/base")
	require.NoError(t, err)
	assert.Equal(t, "https://cal.example.com/base/api/ui_utils/nlcep", c.endpoint.String())
}
