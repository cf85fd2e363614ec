package httpstatus

import (
	"fmt"
	"net/http"

	cerrdefs "github.com/containerd/errdefs"
	"github.com/rs/zerolog/log"
)

// FromError maps err to an HTTP status code using the errdefs classes found
// in its chain. Unclassified errors are internal server errors.
func FromError(err error) int {
	if err == nil {
		log.Error().Msg("unexpected nil error in HTTP error handling")
		return http.StatusInternalServerError
	}

	// Use the outermost classified error in the chain.
	rerr := cerrdefs.Resolve(err)

	switch {
	case cerrdefs.IsNotFound(rerr):
		return http.StatusNotFound
	case cerrdefs.IsInvalidArgument(rerr):
		return http.StatusBadRequest
	case cerrdefs.IsConflict(rerr):
		return http.StatusConflict
	case cerrdefs.IsUnauthorized(rerr):
		return http.StatusUnauthorized
	case cerrdefs.IsUnavailable(rerr):
		return http.StatusServiceUnavailable
	case cerrdefs.IsPermissionDenied(rerr):
		return http.StatusForbidden
	case cerrdefs.IsNotImplemented(rerr):
		return http.StatusNotImplemented
	case cerrdefs.IsInternal(rerr) || cerrdefs.IsDataLoss(rerr) || cerrdefs.IsDeadlineExceeded(rerr) || cerrdefs.IsCanceled(rerr):
		return http.StatusInternalServerError
	}

	if !cerrdefs.IsUnknown(err) {
		log.Debug().
			Err(err).
			Str("error_type", fmt.Sprintf("%T", err)).
			Msg("error has no errdefs class, answering 500")
	}
	return http.StatusInternalServerError
}
