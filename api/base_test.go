package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPayload struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestNewTransport(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		transport := NewTransport("http://localhost:8080")
		assert.Equal(t, "http://localhost:8080/", transport.BaseURL())
		assert.Equal(t, 30*time.Second, transport.httpClient.Timeout)
		assert.Equal(t, defaultUserAgent, transport.userAgent)
	})

	t.Run("trailing slash is not doubled", func(t *testing.T) {
		t.Parallel()

		transport := NewTransport("http://localhost:8080/")
		assert.Equal(t, "http://localhost:8080/", transport.BaseURL())
	})

	t.Run("options", func(t *testing.T) {
		t.Parallel()

		shared := &http.Client{Timeout: time.Minute}
		transport := NewTransport("http://localhost:8080",
			WithHTTPClient(shared),
			WithTimeout(5*time.Second),
			WithUserAgent("tester/1.0"),
		)
		assert.Equal(t, 5*time.Second, transport.httpClient.Timeout)
		assert.Equal(t, time.Minute, shared.Timeout, "shared client must not be mutated")
		assert.Equal(t, "tester/1.0", transport.userAgent)
	})
}

func TestPostJSON(t *testing.T) {
	t.Parallel()

	var (
		method  string
		path    string
		body    []byte
		headers http.Header
	)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		method = r.Method
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		headers = r.Header

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(testPayload{Name: "response", Value: 200})
	}))
	defer ts.Close()

	var result testPayload
	err := NewTransport(ts.URL).PostJSON(context.Background(), "/eth/pushtx", testPayload{Name: "request", Value: 100}, &result)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, method)
	assert.Equal(t, "/eth/pushtx", path)
	assert.JSONEq(t, `{"name":"request","value":100}`, string(body))
	assert.Equal(t, "application/json", headers.Get("Content-Type"))
	assert.Equal(t, defaultUserAgent, headers.Get("User-Agent"))
	assert.Equal(t, testPayload{Name: "response", Value: 200}, result)
}

func TestGetJSONQuery(t *testing.T) {
	t.Parallel()

	var rawQuery string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	var result map[string]any
	err := NewTransport(ts.URL).GetJSON(context.Background(), "simple/price", map[string][]string{"ids": {"ethereum"}}, &result)
	require.NoError(t, err)
	assert.Equal(t, "ids=ethereum", rawQuery)
}

func TestTransportErrors(t *testing.T) {
	t.Parallel()

	t.Run("non-2xx status", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"internal server error"}`))
		}))
		defer ts.Close()

		var result map[string]any
		err := NewTransport(ts.URL).GetJSON(context.Background(), "eth/account/0xAA", nil, &result)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
		assert.Contains(t, statusErr.Body, "internal server error")
	})

	t.Run("malformed body", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`not json`))
		}))
		defer ts.Close()

		var result map[string]bool
		err := NewTransport(ts.URL).GetJSON(context.Background(), "eth/account/0xAA/isContract", nil, &result)
		require.Error(t, err)

		var syntaxErr *json.SyntaxError
		assert.True(t, errors.As(err, &syntaxErr))
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Write([]byte(`{}`))
		}))
		defer ts.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		err := NewTransport(ts.URL).GetJSON(ctx, "eth/account/0xAA", nil, nil)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("timeout", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			<-release
		}))
		defer ts.Close()
		defer close(release)

		err := NewTransport(ts.URL, WithTimeout(50*time.Millisecond)).GetJSON(context.Background(), "eth/account/0xAA", nil, nil)
		assert.Error(t, err)
	})
}

func TestEscapeCSV(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0xAA,0xBB", escapeCSV("0xAA,0xBB"))
	assert.Equal(t, "", escapeCSV(""))
	assert.Equal(t, "a%2Fb,c%3Fd", escapeCSV("a/b,c?d"))
}
