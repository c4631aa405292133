package server

import (
	"errors"
	"net/http"

	"github.com/philipparndt/stlquote/pkg/quote"
)

var errBadUpload = errors.New("bad upload")

func mapErrorToHTTPStatus(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, quote.ErrUnknownMaterial), errors.Is(err, errBadUpload):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
