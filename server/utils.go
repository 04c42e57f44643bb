package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-home-io/smarthome/plugins/common"
)

// Generic JSON API respond.
func respond(writer http.ResponseWriter, data interface{}) {
	d, err := json.Marshal(data)
	if err != nil {
		respondError(writer, http.StatusInternalServerError, err.Error())
		return
	}

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	writer.Write(d) // nolint: errcheck, gosec
}

// Plain text API respond.
func respondText(writer http.ResponseWriter, text string) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, text) // nolint: errcheck, gosec
}

// Plain HTTP_200 API response.
func respondOk(writer http.ResponseWriter) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusOK)
	io.WriteString(writer, `{ "status": "OK" }`) // nolint: errcheck, gosec
}

// Error API response with a given status.
func respondError(writer http.ResponseWriter, status int, problem string) {
	d, _ := json.Marshal(problem) // nolint: gosec
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	io.WriteString(writer, fmt.Sprintf(`{ "status": "ERROR", "problem": %s }`, d)) // nolint: errcheck, gosec
}

// Logger middleware for the API.
func (s *SmartHomeServer) logMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Logger.Debug("REST invocation", common.LogURLToken, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}
