package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// =============================================================================
// Supported / Detect Tests
// =============================================================================

func TestSupported(t *testing.T) {
	assert.True(t, Supported("en"))
	assert.True(t, Supported("ru"))
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
}

func TestDetectFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  string
		want string
	}{
		{"russian", "ru_RU.UTF-8", "ru"},
		{"russian_bare", "ru", "ru"},
		{"english", "en_US.UTF-8", "en"},
		{"english_gb", "en_GB.UTF-8", "en"},
		{"unsupported_falls_back", "de_DE.UTF-8", "en"},
		{"garbage_falls_back", "not-a-locale!!", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tt.env)
			t.Setenv("LC_MESSAGES", "")
			t.Setenv("LANG", "")
			assert.Equal(t, tt.want, Detect())
		})
	}
}

func TestDetectEmptyEnv(t *testing.T) {
	t.Setenv("LC_ALL", "")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "")
	assert.Equal(t, DefaultLanguage, Detect())
}

func TestDetectPrefersLCAll(t *testing.T) {
	t.Setenv("LC_ALL", "ru_RU.UTF-8")
	t.Setenv("LC_MESSAGES", "")
	t.Setenv("LANG", "en_US.UTF-8")
	assert.Equal(t, "ru", Detect())
}

// =============================================================================
// Translator Tests
// =============================================================================

func TestTranslatorEnglish(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "Contacts", tr.T("contacts.title"))
	assert.Equal(t, "Incorrect password", tr.T("auth.incorrect"))
}

func TestTranslatorRussian(t *testing.T) {
	tr := NewTranslator("ru")
	assert.Equal(t, "Контакты", tr.T("contacts.title"))
	assert.Equal(t, "Неверный пароль", tr.T("auth.incorrect"))
}

func TestTranslatorUnsupportedLanguageFallsBack(t *testing.T) {
	tr := NewTranslator("de")
	assert.Equal(t, "Contacts", tr.T("contacts.title"))
}

func TestTranslatorUnknownKeyPassesThrough(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}

func TestTranslatorSetLanguageAtRuntime(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "Contacts", tr.T("contacts.title"))

	tr.SetLanguage("ru")
	assert.Equal(t, "ru", tr.Language())
	assert.Equal(t, "Контакты", tr.T("contacts.title"))
}

func TestTranslatorFormat(t *testing.T) {
	tr := NewTranslator("en")
	assert.Equal(t, "Added contact Ada", tr.Tf("contacts.added", "Ada"))
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	catalogOnce.Do(loadCatalogs)

	en := catalogs["en"]
	ru := catalogs["ru"]
	assert.NotEmpty(t, en)
	assert.NotEmpty(t, ru)

	for key := range en {
		assert.Contains(t, ru, key, "ru catalog is missing %q", key)
	}
	for key := range ru {
		assert.Contains(t, en, key, "en catalog is missing %q", key)
	}
}
