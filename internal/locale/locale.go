// Package locale provides message localization for Hushbook.
// Catalogs are embedded JSON maps of message key to translated string.
package locale

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/hushbook/hushbook/internal/logging"
)

// DefaultLanguage is the fallback for lookups and device inference.
const DefaultLanguage = "en"

//go:embed locales/*.json
var catalogFS embed.FS

// Language describes one supported UI language.
type Language struct {
	Code  string
	Label string
}

// Languages lists the supported UI languages.
var Languages = []Language{
	{Code: "en", Label: "English"},
	{Code: "ru", Label: "Русский"},
}

var matcher = language.NewMatcher([]language.Tag{
	language.English,
	language.Russian,
})

var (
	catalogOnce sync.Once
	catalogs    map[string]map[string]string
)

// Supported reports whether code is a supported language code.
func Supported(code string) bool {
	for _, l := range Languages {
		if l.Code == code {
			return true
		}
	}
	return false
}

// Detect infers the language from the process environment (LC_ALL, LC_MESSAGES,
// LANG), matched against the supported set. Unrecognized locales map to the
// default language.
func Detect() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		env := os.Getenv(name)
		if env == "" {
			continue
		}
		// Strip encoding suffixes like ".UTF-8".
		if i := strings.IndexByte(env, '.'); i >= 0 {
			env = env[:i]
		}
		tag, err := language.Parse(env)
		if err != nil {
			continue
		}
		_, index, _ := matcher.Match(tag)
		return Languages[index].Code
	}
	return DefaultLanguage
}

func loadCatalogs() {
	catalogs = make(map[string]map[string]string, len(Languages))
	for _, l := range Languages {
		data, err := catalogFS.ReadFile(fmt.Sprintf("locales/%s.json", l.Code))
		if err != nil {
			logging.Error("missing embedded catalog", "language", l.Code, "error", err)
			continue
		}
		var messages map[string]string
		if err := json.Unmarshal(data, &messages); err != nil {
			logging.Error("invalid embedded catalog", "language", l.Code, "error", err)
			continue
		}
		catalogs[l.Code] = messages
	}
}

// Translator resolves message keys to localized strings. The language is
// settable at runtime; lookups fall back to the default language and then to
// the key itself.
type Translator struct {
	mu   sync.RWMutex
	lang string
}

// NewTranslator creates a translator for the given language code. Unsupported
// codes are kept as-is and resolve through the fallback chain.
func NewTranslator(code string) *Translator {
	catalogOnce.Do(loadCatalogs)
	return &Translator{lang: code}
}

// Language returns the current language code.
func (t *Translator) Language() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// SetLanguage switches the translator to another language at runtime.
func (t *Translator) SetLanguage(code string) {
	t.mu.Lock()
	t.lang = code
	t.mu.Unlock()
}

// T returns the localized string for key.
func (t *Translator) T(key string) string {
	t.mu.RLock()
	lang := t.lang
	t.mu.RUnlock()

	if msg, ok := catalogs[lang][key]; ok {
		return msg
	}
	if msg, ok := catalogs[DefaultLanguage][key]; ok {
		return msg
	}
	return key
}

// Tf returns the localized string for key formatted with args.
func (t *Translator) Tf(key string, args ...any) string {
	return fmt.Sprintf(t.T(key), args...)
}
