package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-home-io/smarthome/mocks"
	"github.com/stretchr/testify/assert"
)

// Tests log middleware.
func TestLogMiddleware(t *testing.T) {
	in := []string{"/api/v1/test", "/pub/ping"}

	nextCalled := false
	log := mocks.FakeNewLogger(nil)
	s := &SmartHomeServer{Logger: log}
	handler := http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		nextCalled = true
	})
	ts := httptest.NewServer(s.logMiddleware(handler))
	defer ts.Close()

	for _, v := range in {
		nextCalled = false
		resp, err := http.Get(ts.URL + v)
		if assert.NoError(t, err, "error %s", v) {
			resp.Body.Close() // nolint: errcheck, gosec
		}
		assert.True(t, nextCalled, "next %s", v)
	}

	assert.Len(t, log.Entries(), 2)
	assert.Equal(t, "/pub/ping", log.Entries()[1].Fields["url"])
}

// Tests error responses.
func TestRespondError(t *testing.T) {
	r := httptest.NewRecorder()
	respondError(r, http.StatusBadGateway, `peer said "NOPE"`)

	assert.Equal(t, http.StatusBadGateway, r.Code)
	assert.Equal(t, "application/json", r.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status": "ERROR", "problem": "peer said \"NOPE\""}`, r.Body.String())
}

// Tests JSON responses.
func TestRespond(t *testing.T) {
	r := httptest.NewRecorder()
	respond(r, map[string]int{"a": 1})
	assert.Equal(t, http.StatusOK, r.Code)
	assert.JSONEq(t, `{"a": 1}`, r.Body.String())

	r = httptest.NewRecorder()
	respond(r, make(chan int))
	assert.Equal(t, http.StatusInternalServerError, r.Code)
}
