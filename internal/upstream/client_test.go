package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/WitAqua/website/internal/config"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(timeout time.Duration) *Client {
	conf := config.Default()
	conf.Upstream.Timeout = timeout
	return NewClient(zap.NewNop(), conf)
}

func TestGetJSON(t *testing.T) {
	var method, accept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method, accept = r.Method, r.Header.Get("Accept")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"name":"Acme"}]`))
	}))
	defer srv.Close()

	var got []struct {
		Name string `json:"name"`
	}
	err := newTestClient(time.Second).GetJSON(context.Background(), "OEMs", srv.URL, &got)

	require.NoError(t, err)
	require.Equal(t, http.MethodGet, method)
	require.Equal(t, "application/json", accept)
	require.Len(t, got, 1)
	require.Equal(t, "Acme", got[0].Name)
}

func TestGetJSONStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	var got map[string]any
	err := newTestClient(time.Second).GetJSON(context.Background(), "builds", srv.URL, &got)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Equal(t, http.StatusInternalServerError, fe.StatusCode)
	require.Equal(t, "failed to fetch builds. Status: 500", err.Error())
}

func TestGetJSONParseError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer srv.Close()

	var got []any
	err := newTestClient(time.Second).GetJSON(context.Background(), "OEMs", srv.URL, &got)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "OEMs", pe.Feed)
}

func TestGetTextTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		_, _ = w.Write([]byte("late"))
	}))
	defer srv.Close()

	_, err := newTestClient(50*time.Millisecond).GetText(context.Background(), "changelog", srv.URL)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.Zero(t, fe.StatusCode)
}

func TestGetTextCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestClient(time.Second).GetText(ctx, "changelog", "http://127.0.0.1:1/never")

	require.True(t, errors.Is(err, context.Canceled))
}

func TestGetTextReturnsOnCancel(t *testing.T) {
	unblock := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-unblock:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(unblock)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	time.AfterFunc(50*time.Millisecond, cancel)

	start := time.Now()
	_, err := newTestClient(10*time.Second).GetText(ctx, "changelog", srv.URL)

	var fe *FetchError
	require.ErrorAs(t, err, &fe)
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), 5*time.Second)
}
