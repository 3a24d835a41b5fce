package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"insurance_backoffice/internal/domain/validation"
	"insurance_backoffice/internal/usecase"
	"insurance_backoffice/internal/usecase/interfaces"
	"insurance_backoffice/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

var (
	errInvalidRequest    = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errInvalidID         = pkg.NewDomainErrorSimple("INVALID_ID", "Id must be a positive integer", http.StatusBadRequest)
	errValidationFailed  = pkg.NewDomainErrorSimple("VALIDATION_FAILED", "One or more fields are invalid", http.StatusBadRequest)
	errUnknownKind       = pkg.NewDomainErrorSimple("UNKNOWN_KIND", "Kind must be customers, policies or claims", http.StatusBadRequest)
	errInvalidTransition = pkg.NewDomainErrorSimple("INVALID_TRANSITION", "Claim status change not allowed", http.StatusConflict)
	errIntegrity         = pkg.NewDomainErrorSimple("INTEGRITY_VIOLATION", "Referenced record does not exist", http.StatusConflict)
	errConcurrentUpdate  = pkg.NewDomainErrorSimple("CONCURRENT_UPDATE", "Record was modified concurrently, retry", http.StatusConflict)
)

func mapError(err error) *pkg.AppError {
	var ve *usecase.ValidationError
	var nf *usecase.NotFoundError
	var te *usecase.InvalidTransitionError
	var ie *usecase.IntegrityError

	switch {
	case errors.As(err, &ve):
		return validationFailed(ve.Fields)
	case errors.As(err, &nf):
		return pkg.NewDomainErrorSimple("NOT_FOUND", nf.Error(), http.StatusNotFound)
	case errors.As(err, &te):
		return errInvalidTransition.WithDetails(map[string]string{"from": string(te.From), "to": string(te.To)})
	case errors.As(err, &ie):
		return errIntegrity.WithDetails(map[string]string{ie.Field: validation.CodeNotFound})
	case errors.Is(err, usecase.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, usecase.ErrUnknownKind):
		return errUnknownKind
	case errors.Is(err, interfaces.ErrConcurrentUpdate):
		return errConcurrentUpdate
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func validationFailed(fe validation.FieldErrors) *pkg.AppError {
	return errValidationFailed.WithDetails(fe)
}

func abortWith(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		zerolog.Ctx(c.Request.Context()).Error().Err(appErr.Err).Str("path", c.FullPath()).Msg("[http][handler] internal error")
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// paramID parses a positive int64 path parameter.
func paramID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		abortWith(c, errInvalidID)
		return 0, false
	}
	return id, true
}

// queryInt reads a non-negative integer query parameter, def when absent.
func queryInt(c *gin.Context, name string, def int) (int, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		abortWith(c, errInvalidRequest.WithDetails(map[string]string{name: validation.CodeInvalidFormat}))
		return 0, false
	}
	return n, true
}
