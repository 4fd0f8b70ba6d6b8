package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushbook/hushbook/internal/model"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := Open(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// =============================================================================
// DB Tests
// =============================================================================

func TestOpenClose(t *testing.T) {
	t.Run("in_memory", func(t *testing.T) {
		db, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		assert.NotNil(t, db)
		assert.NoError(t, db.Close())
	})

	t.Run("empty_path_uses_in_memory", func(t *testing.T) {
		db, err := Open(Options{Path: ""})
		require.NoError(t, err)
		assert.NotNil(t, db)
		db.Close()
	})
}

func TestDefaultPath(t *testing.T) {
	path := DefaultPath()
	assert.Contains(t, path, "hushbook")
	assert.Contains(t, path, "db")
}

// =============================================================================
// String KV Tests
// =============================================================================

func TestGetStringAbsent(t *testing.T) {
	db := setupTestDB(t)

	value, found, err := db.GetString("missing")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, "", value)
}

func TestSetGetString(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetString(KeyLanguage, "ru"))

	value, found, err := db.GetString(KeyLanguage)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "ru", value)
}

func TestRemoveString(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, db.SetString(KeyTheme, "dark"))
	require.NoError(t, db.Remove(KeyTheme))

	_, found, err := db.GetString(KeyTheme)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	db := setupTestDB(t)
	assert.NoError(t, db.Remove("never_set"))
}

func TestHasKey(t *testing.T) {
	db := setupTestDB(t)

	found, err := db.HasKey(KeyAccessPassword)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, db.SetString(KeyAccessPassword, "secret"))

	found, err = db.HasKey(KeyAccessPassword)
	require.NoError(t, err)
	assert.True(t, found)
}

// =============================================================================
// Collection Tests
// =============================================================================

func TestCollectionLoadEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contacts, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestCollectionAddAssignsID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contact := &model.Contact{Name: "Ada", Contact: "ada@example.org"}
	require.NoError(t, repo.Add(contact))
	assert.NotEmpty(t, contact.ID)
}

func TestCollectionAddKeepsExistingID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contact := &model.Contact{ID: "fixed-id", Name: "Ada"}
	require.NoError(t, repo.Add(contact))
	assert.Equal(t, "fixed-id", contact.ID)
}

func TestCollectionRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	first := model.NewContact("Ada", "ada@example.org", true)
	second := model.NewContact("Grace", "+1-555-0100", false)
	require.NoError(t, repo.Add(first))
	require.NoError(t, repo.Add(second))

	// A fresh repo over the same DB reads back what was written.
	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	assert.Equal(t, first, reloaded[0])
	assert.Equal(t, second, reloaded[1])
}

func TestCollectionPreservesInsertionOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	names := []string{"Zoe", "Ada", "Mira", "Bea"}
	for _, name := range names {
		require.NoError(t, repo.Add(model.NewContact(name, "", false)))
	}

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, len(names))
	for i, name := range names {
		assert.Equal(t, name, reloaded[i].Name)
	}
}

func TestCollectionUpdate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contact := model.NewContact("Ada", "old", false)
	require.NoError(t, repo.Add(contact))

	updated := *contact
	updated.Contact = "new"
	require.NoError(t, repo.Update(contact.ID, &updated))

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "new", reloaded[0].Contact)
	assert.Equal(t, contact.ID, reloaded[0].ID)
}

func TestCollectionUpdateUnknownIDIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contact := model.NewContact("Ada", "ada@example.org", false)
	require.NoError(t, repo.Add(contact))

	require.NoError(t, repo.Update("no-such-id", model.NewContact("X", "", false)))

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Ada", reloaded[0].Name)
}

func TestCollectionRemove(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	first := model.NewContact("Ada", "", false)
	second := model.NewContact("Grace", "", false)
	require.NoError(t, repo.Add(first))
	require.NoError(t, repo.Add(second))

	require.NoError(t, repo.Remove(first.ID))

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Grace", reloaded[0].Name)
}

func TestCollectionRemoveUnknownIDIsNoop(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contact := model.NewContact("Ada", "", false)
	require.NoError(t, repo.Add(contact))

	require.NoError(t, repo.Remove("no-such-id"))

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	assert.Len(t, reloaded, 1)
}

func TestCollectionReplaceAll(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	require.NoError(t, repo.Add(model.NewContact("Ada", "", false)))
	require.NoError(t, repo.Add(model.NewContact("Grace", "", false)))

	replacement := []*model.Contact{model.NewContact("Mira", "", true)}
	require.NoError(t, repo.ReplaceAll(replacement))

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 1)
	assert.Equal(t, "Mira", reloaded[0].Name)
}

func TestCollectionClear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	require.NoError(t, repo.Add(model.NewContact("Ada", "", false)))
	require.NoError(t, repo.Clear())

	reloaded, err := NewContactRepo(db).Load()
	require.NoError(t, err)
	assert.Empty(t, reloaded)

	// The cleared state is persisted, not just in-memory.
	raw, found, err := db.GetString(KeyContacts)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, "[]", raw)
}

func TestCollectionFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	contact := model.NewContact("Ada", "", false)
	require.NoError(t, repo.Add(contact))

	found, ok, err := repo.Find(contact.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, contact, found)

	_, ok, err = repo.Find("no-such-id")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCollectionCorruptDataLoadsEmpty(t *testing.T) {
	db := setupTestDB(t)
	require.NoError(t, db.SetString(KeyContacts, "{not json"))

	repo := NewContactRepo(db)
	contacts, err := repo.Load()
	require.NoError(t, err)
	assert.Empty(t, contacts)
}

func TestCollectionVerifyCorruptData(t *testing.T) {
	db := setupTestDB(t)
	repo := NewContactRepo(db)

	assert.NoError(t, repo.Verify())

	require.NoError(t, db.SetString(KeyContacts, "{not json"))
	assert.ErrorIs(t, repo.Verify(), ErrCorruptData)
}

func TestPlaceCollectionRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewPlaceRepo(db)

	place := model.NewPlace("Home", "1 Main Street")
	place.SetCoordinates(model.Coordinates{Latitude: 51.5, Longitude: -0.12})
	require.NoError(t, repo.Add(place))

	withoutCoords := model.NewPlace("Work", "2 Side Street")
	require.NoError(t, repo.Add(withoutCoords))

	reloaded, err := NewPlaceRepo(db).Load()
	require.NoError(t, err)
	require.Len(t, reloaded, 2)
	assert.Equal(t, place, reloaded[0])
	assert.True(t, reloaded[0].HasCoordinates())
	assert.False(t, reloaded[1].HasCoordinates())
}

// =============================================================================
// Credentials Tests
// =============================================================================

func TestCredentialsRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	creds := NewCredentials(db)

	_, set, err := creds.Access()
	require.NoError(t, err)
	assert.False(t, set)

	require.NoError(t, creds.SetAccess("letmein"))
	value, set, err := creds.Access()
	require.NoError(t, err)
	assert.True(t, set)
	assert.Equal(t, "letmein", value)

	require.NoError(t, creds.ClearAccess())
	_, set, err = creds.Access()
	require.NoError(t, err)
	assert.False(t, set)
}

func TestCredentialsDuressIndependent(t *testing.T) {
	db := setupTestDB(t)
	creds := NewCredentials(db)

	require.NoError(t, creds.SetDuress("panic"))

	_, accessSet, err := creds.Access()
	require.NoError(t, err)
	assert.False(t, accessSet)

	value, duressSet, err := creds.Duress()
	require.NoError(t, err)
	assert.True(t, duressSet)
	assert.Equal(t, "panic", value)
}

// =============================================================================
// Prefs Tests
// =============================================================================

func TestPrefsThemeDefaultsLight(t *testing.T) {
	db := setupTestDB(t)
	prefs := NewPrefs(db)

	dark, err := prefs.DarkTheme()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestPrefsSetTheme(t *testing.T) {
	db := setupTestDB(t)
	prefs := NewPrefs(db)

	require.NoError(t, prefs.SetDarkTheme(true))
	dark, err := prefs.DarkTheme()
	require.NoError(t, err)
	assert.True(t, dark)

	// The persisted value is the string the original app wrote.
	raw, found, err := db.GetString(KeyTheme)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, ThemeDark, raw)

	require.NoError(t, prefs.SetDarkTheme(false))
	dark, err = prefs.DarkTheme()
	require.NoError(t, err)
	assert.False(t, dark)
}

func TestPrefsLanguageStored(t *testing.T) {
	db := setupTestDB(t)
	prefs := NewPrefs(db)

	require.NoError(t, prefs.SetLanguage("ru"))
	code, err := prefs.Language()
	require.NoError(t, err)
	assert.Equal(t, "ru", code)
}

func TestPrefsLanguageRejectsUnsupported(t *testing.T) {
	db := setupTestDB(t)
	prefs := NewPrefs(db)

	assert.Error(t, prefs.SetLanguage("tlh"))
}

func TestPrefsLanguageUnsetInfersFromEnv(t *testing.T) {
	t.Setenv("LC_ALL", "ru_RU.UTF-8")

	db := setupTestDB(t)
	prefs := NewPrefs(db)

	code, err := prefs.Language()
	require.NoError(t, err)
	assert.Equal(t, "ru", code)
}

func TestPrefsUnsupportedStoredCodePassesThrough(t *testing.T) {
	db := setupTestDB(t)
	// Simulate a value written by another build with more languages.
	require.NoError(t, db.SetString(KeyLanguage, "de"))

	code, err := NewPrefs(db).Language()
	require.NoError(t, err)
	assert.Equal(t, "de", code)
}
