package query_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	apperrors "github.com/jrsteele09/go-owasp-assistant/internal/errors"
	"github.com/jrsteele09/go-owasp-assistant/query"
	"github.com/stretchr/testify/require"
)

const (
	testToken    = "tok123"
	testQuestion = "What is SQL injection?"
)

type stubBackend struct {
	server *httptest.Server
	calls  atomic.Int32

	mu            sync.Mutex
	authorization string
	contentType   string
	input         string
}

func newStubBackend(t *testing.T, status int, body string) *stubBackend {
	t.Helper()

	b := &stubBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.calls.Add(1)
		b.mu.Lock()
		defer b.mu.Unlock()
		b.authorization = r.Header.Get("Authorization")
		b.contentType = r.Header.Get("Content-Type")

		var payload map[string]string
		raw, _ := io.ReadAll(r.Body)
		if err := json.Unmarshal(raw, &payload); err == nil {
			b.input = payload["input"]
		}

		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(b.server.Close)
	return b
}

func TestAskSuccess(t *testing.T) {
	backend := newStubBackend(t, http.StatusOK, `{"output": "It is ..."}`)
	relay := query.NewRelay(backend.server.URL, backend.server.Client())

	answer, err := relay.Ask(context.Background(), testQuestion, testToken)
	require.NoError(t, err)
	require.Equal(t, "It is ...", answer)

	require.Equal(t, int32(1), backend.calls.Load())
	backend.mu.Lock()
	defer backend.mu.Unlock()
	require.Equal(t, "Bearer tok123", backend.authorization)
	require.Equal(t, "application/json", backend.contentType)
	require.Equal(t, testQuestion, backend.input)
}

func TestAskWithoutOutput(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "missing output", body: `{"answer": "elsewhere"}`},
		{name: "null output", body: `{"output": null}`},
		{name: "empty output", body: `{"output": ""}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newStubBackend(t, http.StatusOK, tt.body)
			relay := query.NewRelay(backend.server.URL, backend.server.Client())

			answer, err := relay.Ask(context.Background(), testQuestion, testToken)
			require.NoError(t, err)
			require.Equal(t, query.NoOutput, answer)
			require.Equal(t, "No output received.", answer)
		})
	}
}

func TestAskBackendFailure(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{name: "internal error", status: http.StatusInternalServerError, body: "internal error"},
		{name: "unauthorized", status: http.StatusUnauthorized, body: `{"message":"Unauthorized"}`},
		{name: "malformed success", status: http.StatusOK, body: "<html>gateway</html>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := newStubBackend(t, tt.status, tt.body)
			relay := query.NewRelay(backend.server.URL, backend.server.Client())

			answer, err := relay.Ask(context.Background(), testQuestion, testToken)
			require.Empty(t, answer)
			require.ErrorIs(t, err, apperrors.ErrBackendFailure)

			var backendErr *query.BackendError
			require.ErrorAs(t, err, &backendErr)
			require.Equal(t, tt.status, backendErr.StatusCode)
			require.Equal(t, tt.body, backendErr.Body)
			require.Equal(t, int32(1), backend.calls.Load())
		})
	}
}

func TestAskNetworkFailure(t *testing.T) {
	backend := newStubBackend(t, http.StatusOK, `{"output": "It is ..."}`)
	relay := query.NewRelay(backend.server.URL, backend.server.Client())
	backend.server.Close()

	_, err := relay.Ask(context.Background(), testQuestion, testToken)
	require.ErrorIs(t, err, apperrors.ErrNetworkFailure)
	require.NotErrorIs(t, err, apperrors.ErrBackendFailure)
}

func TestAskRejectsMissingInput(t *testing.T) {
	backend := newStubBackend(t, http.StatusOK, `{"output": "It is ..."}`)
	relay := query.NewRelay(backend.server.URL, backend.server.Client())

	_, err := relay.Ask(context.Background(), "   ", testToken)
	require.ErrorIs(t, err, apperrors.ErrEmptyQuestion)

	_, err = relay.Ask(context.Background(), testQuestion, "")
	require.ErrorIs(t, err, apperrors.ErrNotAuthenticated)

	require.Zero(t, backend.calls.Load())
}
