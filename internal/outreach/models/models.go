// Package models defines the core domain models for the outreach tracker:
// Company, CommunicationMethod, Communication and ScheduledContact, plus the
// partial-update structs used by the repository layer.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is a tracked business-development target.
type Company struct {
	// ID is the unique identifier for the company.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Name is the company name. Required.
	Name string `gorm:"size:255;not null" json:"name"`
	// Location is the company location. Required.
	Location string `gorm:"size:255;not null" json:"location"`
	// LinkedInProfile is an optional profile URL.
	LinkedInProfile string `json:"linkedInProfile,omitempty"`
	// Emails holds the known contact email addresses.
	Emails []string `gorm:"serializer:json" json:"emails"`
	// PhoneNumbers holds the known contact phone numbers.
	PhoneNumbers []string `gorm:"serializer:json" json:"phoneNumbers"`
	// Comments is free-form text about the company.
	Comments string `gorm:"size:3000" json:"comments,omitempty"`
	// CommunicationPeriodicity is an informational cadence hint, e.g. "2 weeks".
	CommunicationPeriodicity string `json:"communicationPeriodicity,omitempty"`
	// Communications are the logged outreach events, in insertion order.
	Communications []Communication `gorm:"foreignKey:CompanyID" json:"lastCommunications"`
	// NextCommunication is the denormalized fallback next-contact date
	// (YYYY-MM-DD). An active ScheduledContact takes precedence over it.
	NextCommunication string `json:"nextCommunication,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// CompanyUpdate represents the fields that can be updated for a Company.
// Pointer types are used to allow partial updates.
type CompanyUpdate struct {
	ID                       uuid.UUID
	Name                     *string
	Location                 *string
	LinkedInProfile          *string
	Emails                   *[]string
	PhoneNumbers             *[]string
	Comments                 *string
	CommunicationPeriodicity *string
	NextCommunication        *string
}

// CommunicationMethod is an admin-managed contact channel. Log entries
// reference methods by name only; nothing cascades through them.
type CommunicationMethod struct {
	// ID is the unique identifier for the method.
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// Name is the channel name, e.g. "Email". Required.
	Name string `gorm:"size:255;not null" json:"name"`
	// Description explains when the channel applies.
	Description string `json:"description,omitempty"`
	// Sequence defines the admin-facing display order.
	Sequence int `json:"sequence"`
	// Mandatory marks channels that must be part of every outreach cycle.
	Mandatory bool      `json:"mandatory"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CommunicationMethodUpdate represents the updatable fields of a method.
type CommunicationMethodUpdate struct {
	ID          uuid.UUID
	Name        *string
	Description *string
	Sequence    *int
	Mandatory   *bool
}

// Communication is a logged past outreach event. Entries are created once
// and deleted individually, never mutated in place.
type Communication struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// CompanyID is the owning company. Required.
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	// CommunicationType conventionally matches a CommunicationMethod name.
	CommunicationType string `json:"communicationType"`
	// CommunicationDate is the day the outreach happened (YYYY-MM-DD).
	CommunicationDate string `json:"communicationDate"`
	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`
	// NextCommunication optionally seeds the owning company's denormalized
	// next-contact date at logging time.
	NextCommunication string    `json:"nextCommunication,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// DashboardEntry is the per-company summary served by the user dashboard:
// the five most recent communications plus the fallback next-contact date.
type DashboardEntry struct {
	ID                     uuid.UUID       `json:"id"`
	Name                   string          `json:"name"`
	LastFiveCommunications []Communication `json:"lastFiveCommunications"`
	NextCommunication      string          `json:"nextCommunication,omitempty"`
}

// ScheduledContact is the single active next scheduled contact for a
// company. Application logic keeps at most one active entry per company;
// cancellation deletes the row rather than completing it.
type ScheduledContact struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	// CompanyID is the owning company. Required.
	CompanyID uuid.UUID `gorm:"type:uuid;index;not null" json:"companyId"`
	// CommunicationType conventionally matches a CommunicationMethod name.
	CommunicationType string `json:"communicationType"`
	// ScheduledDate is the planned contact day (YYYY-MM-DD).
	ScheduledDate string `json:"scheduledDate"`
	// IsCompleted is always false for live entries; reschedule force-resets it.
	IsCompleted bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
