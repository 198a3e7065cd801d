package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/bellanote/backend/internal/models"
)

var (
	errCleanupConfirmation = errors.New("the confirmation phrase to delete all data is missing or incorrect")
	errPaymentTypeInvalid  = errors.New("the specified payment type is not valid")
	errTaskStatusInvalid   = errors.New("the specified task status is not valid")
	errTaskPriorityInvalid = errors.New("the specified task priority is not valid")
)

// errNotFound returns the not found error for a resource type.
func errNotFound(resource string) error {
	return fmt.Errorf("%w %s matching your query", models.ErrResourceNotFound, resource)
}

type httpError struct {
	Error string `json:"error" example:"there is no vendor matching your query"`
}

// status translates an error into the HTTP status of the response.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral),
		errors.Is(err, models.ErrPersistence),
		errors.Is(err, models.ErrDocumentCorrupt):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}
