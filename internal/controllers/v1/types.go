package v1

import (
	ez_uuid "github.com/bellanote/backend/internal/uuid"
)

// URIID is the resource ID in the URI.
type URIID struct {
	ID ez_uuid.UUID `uri:"id" binding:"required"`
}

// URIPayment addresses one payment in a vendor's payment schedule.
type URIPayment struct {
	ID        ez_uuid.UUID `uri:"id" binding:"required"`
	PaymentID string       `uri:"paymentId" binding:"required"`
}
