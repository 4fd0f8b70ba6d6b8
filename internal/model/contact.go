package model

import "strings"

// Contact is a single address book entry.
type Contact struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Contact       string `json:"contact"`
	KeepAfterWipe bool   `json:"keepAfterWipe"`
}

// EntityID returns the contact's id.
func (c *Contact) EntityID() string {
	return c.ID
}

// SetEntityID sets the contact's id.
func (c *Contact) SetEntityID(id string) {
	c.ID = id
}

// NewContact creates a contact with a fresh id. Name and detail are trimmed.
func NewContact(name, detail string, keepAfterWipe bool) *Contact {
	return &Contact{
		ID:            NewID(),
		Name:          strings.TrimSpace(name),
		Contact:       strings.TrimSpace(detail),
		KeepAfterWipe: keepAfterWipe,
	}
}
