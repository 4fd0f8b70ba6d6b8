package storage

// Credentials reads and writes the stored passwords. Values are plain
// strings; encrypting them at rest is out of scope. Every accessor hits
// storage directly so a password changed mid-session takes effect on the
// next check without caching.
type Credentials struct {
	db *DB
}

// NewCredentials creates a credential store.
func NewCredentials(db *DB) *Credentials {
	return &Credentials{db: db}
}

// Access returns the stored access password, if any.
func (c *Credentials) Access() (string, bool, error) {
	return c.db.GetString(KeyAccessPassword)
}

// SetAccess stores the access password.
func (c *Credentials) SetAccess(password string) error {
	return c.db.SetString(KeyAccessPassword, password)
}

// ClearAccess removes the access password, disabling the gate.
func (c *Credentials) ClearAccess() error {
	return c.db.Remove(KeyAccessPassword)
}

// Duress returns the stored duress password, if any.
func (c *Credentials) Duress() (string, bool, error) {
	return c.db.GetString(KeyDuressPassword)
}

// SetDuress stores the duress password.
func (c *Credentials) SetDuress(password string) error {
	return c.db.SetString(KeyDuressPassword, password)
}

// ClearDuress removes the duress password, disabling the wipe mechanism.
func (c *Credentials) ClearDuress() error {
	return c.db.Remove(KeyDuressPassword)
}
