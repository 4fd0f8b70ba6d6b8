package output

import (
	"github.com/hushbook/hushbook/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// ContactsResponse represents the contact list output in JSON.
type ContactsResponse struct {
	Contacts []*model.Contact `json:"contacts"`
	Count    int              `json:"count"`
}

// PlacesResponse represents the place list output in JSON.
type PlacesResponse struct {
	Places []*model.Place `json:"places"`
	Count  int            `json:"count"`
}

// StatusResponse represents the summary output in JSON.
type StatusResponse struct {
	Contacts     int    `json:"contacts"`
	Places       int    `json:"places"`
	Language     string `json:"language"`
	Theme        string `json:"theme"`
	PasswordSet  bool   `json:"password_set"`
	DuressSet    bool   `json:"duress_password_set"`
	DatabasePath string `json:"database_path,omitempty"`
}

// ErrorResponse represents an error in JSON.
type ErrorResponse struct {
	Status  string `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// PrintContacts outputs a contact list as JSON.
func (j *JSONFormatter) PrintContacts(contacts []*model.Contact) error {
	return j.JSON(ContactsResponse{Contacts: contacts, Count: len(contacts)})
}

// PrintPlaces outputs a place list as JSON.
func (j *JSONFormatter) PrintPlaces(places []*model.Place) error {
	return j.JSON(PlacesResponse{Places: places, Count: len(places)})
}

// PrintError outputs an error as JSON.
func (j *JSONFormatter) PrintError(err string, message string) error {
	return j.JSON(ErrorResponse{Status: "error", Error: err, Message: message})
}
