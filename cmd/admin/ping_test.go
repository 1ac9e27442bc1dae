package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"riavet-admin/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPing(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer up.Close()

	down := httptest.NewServer(http.NotFoundHandler())
	downURL := down.URL
	down.Close()

	var out bytes.Buffer
	err := ping(context.Background(), config.BackendsConfig{
		PatientsBaseURL:     up.URL,
		RecordsBaseURL:      up.URL,
		InvoicesBaseURL:     up.URL + "/api/v1",
		AppointmentsBaseURL: downURL,
	}, time.Second, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "appointments")
	assert.NotContains(t, err.Error(), "patients")
	assert.Contains(t, out.String(), "status 404")
}

func TestRootCmd_HasServeAndPing(t *testing.T) {
	root := newRootCmd()
	names := []string{}
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"serve", "ping"}, names)
	assert.NotNil(t, root.RunE)
}
