package adaptor

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"

	"safari-booking/internal/data/resolve"
	"safari-booking/internal/dto/request"
	"safari-booking/internal/usecase"
	"safari-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const genericFailureMessage = "Something went wrong. Please try again later."

// handleServiceError maps service errors to status codes. Anything it does
// not recognise is a 500 carrying the underlying message.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		utils.ResponseUnprocessable(w, validationErr.Message, validationErr.Fields)

	case errors.Is(err, usecase.ErrNotFound):
		utils.ResponseNotFound(w, "Resource not found")

	case errors.Is(err, usecase.ErrConflict):
		log.Warn(operation+" failed - already exists", zap.Error(err))
		utils.ResponseConflict(w, "Resource already exists")

	case errors.Is(err, usecase.ErrInvalidCredentials):
		utils.ResponseUnauthorized(w, "Invalid credentials")

	case errors.Is(err, usecase.ErrRegistrationDisabled):
		utils.ResponseServiceUnavailable(w, "Registration is disabled until a database is configured")

	case errors.Is(err, resolve.ErrNotConfigured):
		utils.ResponseNotImplemented(w, "This operation requires a configured database")

	default:
		log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		message := err.Error()
		if message == "" {
			message = genericFailureMessage
		}
		utils.ResponseInternalError(w, message)
	}
}

// decodeJSON reads the request body into dst and writes the error response
// itself when it fails. An empty body decodes as {} so missing fields are
// reported by validation.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		message := fmt.Sprintf("%s must be %s", typeErr.Field, describeKind(typeErr.Type))
		utils.ResponseUnprocessable(w, message, map[string]string{typeErr.Field: message})
		return false
	}

	utils.ResponseBadRequest(w, "Invalid request body")
	return false
}

func describeKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer || t.Kind() == reflect.Slice {
		if t.Kind() == reflect.Slice {
			return "a list"
		}
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "a whole number"
	case reflect.Float32, reflect.Float64:
		return "a number"
	case reflect.String:
		return "a string"
	case reflect.Bool:
		return "true or false"
	}
	return "valid"
}

// pathID parses the {id} URL parameter, writing a 400 when it is not a
// positive integer.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := utils.ParseID(chi.URLParam(r, "id"))
	if !ok {
		utils.ResponseBadRequest(w, "id must be a positive integer")
	}
	return id, ok
}

func pageFromQuery(r *http.Request) *request.PaginatedRequest {
	query := r.URL.Query()
	return request.NewPaginatedRequest(
		utils.ParseInt(query.Get("page"), 1),
		utils.ParseInt(query.Get("per_page"), request.DefaultPerPage),
	)
}
