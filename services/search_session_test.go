package services

import (
	"casa_hotels_go/models"
	"casa_hotels_go/services/dates"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVisitorSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)

	session, err := CreateVisitorSession(db, time.Hour, "203.0.113.9", "test-agent")
	assert.NoError(t, err)
	assert.Len(t, session.Token, SessionTokenLength*2)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)

	t.Run("validate", func(t *testing.T) {
		found, err := ValidateVisitorSession(db, session.Token)
		assert.NoError(t, err)
		assert.Equal(t, session.ID, found.ID)
	})

	t.Run("unknown token", func(t *testing.T) {
		_, err := ValidateVisitorSession(db, "nope")
		assert.ErrorIs(t, err, ErrSessionNotFound)

		_, err = ValidateVisitorSession(db, "")
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("expired session is deleted", func(t *testing.T) {
		old, err := CreateVisitorSession(db, time.Hour, "", "")
		assert.NoError(t, err)
		assert.NoError(t, db.Model(old).Update("expires_at", time.Now().Add(-time.Minute)).Error)

		_, err = ValidateVisitorSession(db, old.Token)
		assert.ErrorIs(t, err, ErrSessionExpired)

		var count int64
		db.Model(&models.VisitorSession{}).Where("id = ?", old.ID).Count(&count)
		assert.Equal(t, int64(0), count)
	})

	t.Run("default ttl", func(t *testing.T) {
		s, err := CreateVisitorSession(db, 0, "", "")
		assert.NoError(t, err)
		assert.WithinDuration(t, time.Now().Add(DefaultVisitorSessionTTL), s.ExpiresAt, time.Minute)
	})
}

func TestTouchVisitorSession(t *testing.T) {
	db := setupTestDB(t)
	session, err := CreateVisitorSession(db, time.Hour, "", "")
	assert.NoError(t, err)

	original := session.ExpiresAt
	assert.NoError(t, TouchVisitorSession(db, session, time.Hour))
	assert.Equal(t, original, session.ExpiresAt, "fresh sessions are not rewritten")

	session.ExpiresAt = time.Now().Add(10 * time.Minute)
	assert.NoError(t, TouchVisitorSession(db, session, time.Hour))
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, time.Minute)
}

func TestCleanupExpiredSessions(t *testing.T) {
	db := setupTestDB(t)

	live, err := CreateVisitorSession(db, time.Hour, "", "")
	assert.NoError(t, err)
	stale, err := CreateVisitorSession(db, time.Hour, "", "")
	assert.NoError(t, err)
	assert.NoError(t, db.Model(stale).Update("expires_at", time.Now().Add(-time.Hour)).Error)

	assert.NoError(t, NewDBSessionStore(db, live.ID).Set("lastSearch", "{}"))
	assert.NoError(t, NewDBSessionStore(db, stale.ID).Set("lastSearch", "{}"))

	removed, err := CleanupExpiredSessions(db)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	var sessions, values int64
	db.Model(&models.VisitorSession{}).Count(&sessions)
	db.Model(&models.SessionValue{}).Count(&values)
	assert.Equal(t, int64(1), sessions)
	assert.Equal(t, int64(1), values)

	removed, err = CleanupExpiredSessions(db)
	assert.NoError(t, err)
	assert.Equal(t, int64(0), removed)
}

func TestDBSessionStore(t *testing.T) {
	db := setupTestDB(t)
	session, err := CreateVisitorSession(db, time.Hour, "", "")
	assert.NoError(t, err)
	store := NewDBSessionStore(db, session.ID)

	t.Run("missing key", func(t *testing.T) {
		v, ok, err := store.Get("lastSearch")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("set then overwrite", func(t *testing.T) {
		assert.NoError(t, store.Set("lastSearch", "first"))
		assert.NoError(t, store.Set("lastSearch", "second"))

		v, ok, err := store.Get("lastSearch")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "second", v)

		var count int64
		db.Model(&models.SessionValue{}).Where("session_id = ?", session.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("remove", func(t *testing.T) {
		assert.NoError(t, store.Remove("lastSearch"))
		_, ok, err := store.Get("lastSearch")
		assert.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, store.Remove("lastSearch"))
	})

	t.Run("sessions are isolated", func(t *testing.T) {
		other, err := CreateVisitorSession(db, time.Hour, "", "")
		assert.NoError(t, err)
		assert.NoError(t, NewDBSessionStore(db, other.ID).Set("lastSearch", "theirs"))

		_, ok, err := store.Get("lastSearch")
		assert.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("works with the search snapshot helpers", func(t *testing.T) {
		saved := dates.StoreSearch(store, dates.SearchSnapshot{
			CheckIn:    "2024-12-23",
			CheckOut:   "2024-12-25",
			Guests:     2,
			PropertyID: "casa-camino",
		})
		assert.Equal(t, saved, dates.RetrieveSearch(store))
		assert.Equal(t, 2, dates.RetrieveSearch(store).Nights())
	})
}
