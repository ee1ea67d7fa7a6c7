package httpapi

import (
	"errors"
	"net/http"

	"go.trai.ch/kin/internal/core/domain"
	"go.trai.ch/zerr"
)

var errInvalidRequest = zerr.New("invalid request")

func errBadRequest(msg string) error {
	return zerr.Wrap(errInvalidRequest, msg)
}

type errorBody struct {
	Error string `json:"error"`
}

type noticeBody struct {
	Notice string `json:"notice"`
}

// statusOf maps the domain error taxonomy onto HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNodeNotFound), errors.Is(err, domain.ErrParentNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrTargetUnresolved), errors.Is(err, domain.ErrInvalidSeed),
		errors.Is(err, errInvalidRequest):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNoChildren), errors.Is(err, domain.ErrNoSelection),
		errors.Is(err, domain.ErrNoPendingMode), errors.Is(err, domain.ErrEmptyScene):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrCycleDetected), errors.Is(err, domain.ErrDepthExceeded):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusOf(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(err)
	}
	if errors.Is(err, domain.ErrNoChildren) {
		writeJSON(w, status, noticeBody{Notice: domain.ErrNoChildren.Error()})
		return
	}
	writeJSON(w, status, errorBody{Error: err.Error()})
}
