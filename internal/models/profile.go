package models

import (
	"github.com/bellanote/backend/internal/types"
)

// UserProfile holds the couple's contact data. All fields are optional.
type UserProfile struct {
	BrideName     string `json:"brideName,omitempty"`
	GroomName     string `json:"groomName,omitempty"`
	UserFullName  string `json:"userFullName,omitempty"`
	UserEmail     string `json:"userEmail,omitempty"`
	UserPhone     string `json:"userPhone,omitempty"`
	UserInstagram string `json:"userInstagram,omitempty"`
}

// WeddingDetails holds the ceremony and reception details. All fields are
// optional.
type WeddingDetails struct {
	CeremonyTime      string     `json:"ceremonyTime,omitempty"` // HH:MM
	CeremonyLocation  string     `json:"ceremonyLocation,omitempty"`
	ReceptionLocation string     `json:"receptionLocation,omitempty"`
	GuestEstimate     int        `json:"guestEstimate,omitempty"`
	RSVPDeadline      types.Date `json:"rsvpDeadline,omitempty"`
}
