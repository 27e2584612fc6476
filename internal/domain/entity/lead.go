// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus represents where an inquiry sits in the sales pipeline.
type LeadStatus string

const (
	// LeadStatusNew is the initial status of an untouched inquiry.
	LeadStatusNew LeadStatus = "new"
	// LeadStatusContacted means an agent has reached out.
	LeadStatusContacted LeadStatus = "contacted"
	// LeadStatusClosed means the inquiry was resolved, won or lost.
	LeadStatusClosed LeadStatus = "closed"
)

// String returns the string representation of the LeadStatus.
func (s LeadStatus) String() string {
	return string(s)
}

// IsValid checks if the LeadStatus is a valid value.
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusClosed:
		return true
	default:
		return false
	}
}

// Lead represents a visitor inquiry about a specific listing.
type Lead struct {
	ID              uuid.UUID   `json:"id"`                // The Global Unique Identifier (GUID) for the lead.
	ListingID       uuid.UUID   `json:"listing_id"`        // The listing this inquiry is about.
	ListingKind     ListingKind `json:"listing_kind"`      // Whether the listing is a property or a project.
	Name            string      `json:"name"`              // Visitor's name as entered on the form.
	Email           string      `json:"email"`             // Visitor's contact email.
	Phone           string      `json:"phone"`             // Visitor's contact phone, optional.
	Message         string      `json:"message"`           // Free-form inquiry message.
	Status          LeadStatus  `json:"status"`            // Pipeline status of the inquiry.
	AssignedAgentID uuid.UUID   `json:"assigned_agent_id"` // The agent working the lead, zero when unassigned.
	CreatedAt       time.Time   `json:"created_at"`        // Timestamp of when the inquiry was submitted.
	UpdatedAt       time.Time   `json:"updated_at"`        // Timestamp of the last modification.
}
