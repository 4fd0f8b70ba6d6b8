// Package runtime provides the application runtime context for Hushbook.
package runtime

import (
	"os"

	"github.com/hushbook/hushbook/internal/auth"
	"github.com/hushbook/hushbook/internal/config"
	"github.com/hushbook/hushbook/internal/geocode"
	"github.com/hushbook/hushbook/internal/locale"
	"github.com/hushbook/hushbook/internal/output"
	"github.com/hushbook/hushbook/internal/storage"
)

// Context holds the application runtime context: the open database, the
// repositories, the auth gate, and the session preferences. It is the
// explicit session object handed to every command; nothing here is ambient
// global state.
type Context struct {
	DB        *storage.DB
	Formatter *output.Formatter
	Translator *locale.Translator

	// Repositories
	Contacts    *storage.ContactRepo
	Places      *storage.PlaceRepo
	Credentials *storage.Credentials
	Prefs       *storage.Prefs

	// Collaborators
	Gate     *auth.Gate
	Resolver geocode.Resolver

	// Debug mode
	Debug bool
}

// Options configures the runtime context.
type Options struct {
	DBPath    string
	InMemory  bool
	Format    output.Format
	ColorMode output.ColorMode
	Debug     bool
}

// DefaultOptions returns default runtime options.
func DefaultOptions() Options {
	return Options{
		DBPath:    storage.DefaultPath(),
		InMemory:  false,
		Format:    output.FormatCLI,
		ColorMode: output.ColorAuto,
	}
}

// New creates a new runtime context.
func New(opts Options) (*Context, error) {
	// Check for environment variable override
	if envPath := os.Getenv("HUSHBOOK_DATABASE"); envPath != "" {
		if envPath == ":memory:" {
			opts.InMemory = true
		} else {
			opts.DBPath = envPath
		}
	}

	// Open database
	db, err := storage.Open(storage.Options{
		Path:     opts.DBPath,
		InMemory: opts.InMemory,
	})
	if err != nil {
		return nil, err
	}

	// Create repositories
	contacts := storage.NewContactRepo(db)
	places := storage.NewPlaceRepo(db)
	creds := storage.NewCredentials(db)
	prefs := storage.NewPrefs(db)

	// Session preferences
	lang, err := prefs.Language()
	if err != nil {
		db.Close()
		return nil, err
	}
	dark, err := prefs.DarkTheme()
	if err != nil {
		db.Close()
		return nil, err
	}

	// Create formatter
	formatter := output.NewFormatter()
	formatter.Format = opts.Format
	formatter.ColorMode = opts.ColorMode
	formatter.Dark = dark

	return &Context{
		DB:          db,
		Formatter:   formatter,
		Translator:  locale.NewTranslator(lang),
		Contacts:    contacts,
		Places:      places,
		Credentials: creds,
		Prefs:       prefs,
		Gate:        auth.NewGate(creds, contacts),
		Resolver:    geocode.FromConfig(config.Global.Geocode),
		Debug:       opts.Debug,
	}, nil
}

// Close closes the runtime context.
func (c *Context) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

// T resolves a message key through the session translator.
func (c *Context) T(key string) string {
	return c.Translator.T(key)
}

// Tf resolves and formats a message key.
func (c *Context) Tf(key string, args ...any) string {
	return c.Translator.Tf(key, args...)
}

// CLIFormatter returns a CLI formatter.
func (c *Context) CLIFormatter() *output.CLIFormatter {
	return output.NewCLIFormatter(c.Formatter)
}

// JSONFormatter returns a JSON formatter.
func (c *Context) JSONFormatter() *output.JSONFormatter {
	return output.NewJSONFormatter(c.Formatter)
}

// IsJSON returns true if output format is JSON.
func (c *Context) IsJSON() bool {
	return c.Formatter.Format == output.FormatJSON
}
