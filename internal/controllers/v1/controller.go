// Package v1 implements the HTTP API for the planning document.
package v1

import (
	"github.com/bellanote/backend/internal/ai"
	"github.com/bellanote/backend/internal/store"
)

// Controller holds the dependencies of the API handlers.
type Controller struct {
	Store     *store.Store
	Assistant *ai.Assistant
}
