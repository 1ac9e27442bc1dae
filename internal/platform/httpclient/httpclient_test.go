package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestDoJSON_DecodesAndSendsHeaders(t *testing.T) {
	var gotReqID, gotCT string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(HeaderRequestID)
		gotCT = r.Header.Get("Content-Type")

		var in item
		_ = json.NewDecoder(r.Body).Decode(&in)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(item{ID: "p-1", Name: in.Name})
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL+"/", time.Second)
	require.NoError(t, err)

	ctx := context.WithValue(context.Background(), chimw.RequestIDKey, "req-123")
	var out item
	require.NoError(t, c.Post(ctx, "api/v1/patients", item{Name: "Buddy"}, &out))

	assert.Equal(t, item{ID: "p-1", Name: "Buddy"}, out)
	assert.Equal(t, "req-123", gotReqID)
	assert.Equal(t, "application/json", gotCT)
}

func TestDoJSON_GeneratesRequestIDWhenMissing(t *testing.T) {
	var gotReqID string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotReqID = r.Header.Get(HeaderRequestID)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)
	require.NoError(t, c.Delete(context.Background(), "/api/v1/owners/1"))
	assert.Len(t, gotReqID, 36)
}

func TestDoJSON_APIErrorMessage(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"message field", `{"message":"Paciente no encontrado"}`, "Paciente no encontrado"},
		{"error field", `{"error":"bad payload"}`, "bad payload"},
		{"plain text", "boom", "boom"},
		{"json without message", `{"code":1}`, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer ts.Close()

			c, err := NewWithBaseURL(ts.URL, time.Second)
			require.NoError(t, err)

			err = c.Get(context.Background(), "/x", nil)
			var apiErr *APIError
			require.True(t, errors.As(err, &apiErr), "expected APIError, got %v", err)
			assert.Equal(t, http.StatusNotFound, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestDoJSON_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close()

	c, err := NewWithBaseURL(url, time.Second)
	require.NoError(t, err)

	err = c.Get(context.Background(), "/x", nil)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "expected NetworkError, got %v", err)
}

func TestDoJSON_CanceledContextIsNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	c, err := NewWithBaseURL(ts.URL, time.Second)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = c.Get(ctx, "/x", nil)
	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestWithQuery_SkipsBlank(t *testing.T) {
	assert.Equal(t, "/invoices", WithQuery("/invoices", map[string]string{"status": " "}))
	assert.Equal(t, "/invoices?status=PAID", WithQuery("/invoices", map[string]string{"status": "PAID", "patientId": ""}))
}

func TestNewWithBaseURL_Invalid(t *testing.T) {
	_, err := NewWithBaseURL("::not a url", time.Second)
	assert.Error(t, err)
}
