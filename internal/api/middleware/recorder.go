package middleware

import (
	"bytes"
	"net/http"
)

// statusRecorder запоминает статус ответа и, если нужно, его тело
type statusRecorder struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
	capture     bool
	body        bytes.Buffer
}

func newStatusRecorder(w http.ResponseWriter, capture bool) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK, capture: capture}
}

func (s *statusRecorder) WriteHeader(status int) {
	if s.wroteHeader {
		return
	}
	s.status = status
	s.wroteHeader = true
	s.ResponseWriter.WriteHeader(status)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if !s.wroteHeader {
		s.WriteHeader(http.StatusOK)
	}
	if s.capture {
		s.body.Write(b)
	}
	return s.ResponseWriter.Write(b)
}
