package products

import (
	"errors"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"ProductAPI/pkg/kit"
)

const (
	kindValidation      = "ValidationError"
	kindNotFound        = "NotFoundError"
	kindPayloadTooLarge = "PayloadTooLargeError"
	kindInternal        = "InternalServerError"

	defaultInternalMessage = "Something went wrong!"
)

// ValidationError covers both malformed payloads and a rejected API key;
// clients of the service see one 400 kind for both.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type PayloadTooLargeError struct {
	Limit int64
}

func (e *PayloadTooLargeError) Error() string {
	return fmt.Sprintf("request body exceeds %d bytes", e.Limit)
}

var (
	errInvalidProduct = &ValidationError{Message: "Invalid product data"}
	errInvalidAPIKey  = &ValidationError{Message: "Unauthorized: Invalid API Key"}
	errMalformedJSON  = &ValidationError{Message: "Malformed JSON body"}
)

// writeError is the only place a failure becomes a response.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	var (
		ve  *ValidationError
		tle *PayloadTooLargeError
	)

	switch {
	case errors.As(err, &ve):
		kit.WriteError(w, r, http.StatusBadRequest, kindValidation, ve.Message)
	case errors.Is(err, ErrNotFound):
		kit.WriteError(w, r, http.StatusNotFound, kindNotFound, "Product not found")
	case errors.As(err, &tle):
		kit.WriteError(w, r, http.StatusRequestEntityTooLarge, kindPayloadTooLarge, tle.Error())
	default:
		if log != nil {
			log.Error("request failed",
				zap.Error(err),
				zap.String("request_id", chimw.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
			)
		}
		msg := defaultInternalMessage
		if err != nil && err.Error() != "" {
			msg = err.Error()
		}
		kit.WriteError(w, r, http.StatusInternalServerError, kindInternal, msg)
	}
}
