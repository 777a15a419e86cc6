// Package contact is the client for the Contact Directory, the external CRM
// of record for person records.
package contact

import (
	"context"

	"voxcal/models"
)

// Directory defines the narrow surface of the Contact Directory this
// service consumes.
type Directory interface {
	// FindContactByEmail returns the contact with the given email, or nil
	// when no such contact exists.
	FindContactByEmail(ctx context.Context, email string) (*models.Contact, error)
	// CreateContact persists a new contact record.
	CreateContact(ctx context.Context, req models.ContactRequest) (*models.Contact, error)
	// UpdateContactFields writes custom field values onto an existing
	// contact.
	UpdateContactFields(ctx context.Context, contactID string, fields map[string]string) error
	// Ping reports whether the directory is reachable.
	Ping(ctx context.Context) error
}
