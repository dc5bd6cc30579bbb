package services

import (
	"casa_hotels_go/models"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	// SessionTokenLength is the length of the session token in bytes (64 chars hex)
	SessionTokenLength = 32
	// DefaultVisitorSessionTTL bounds how long an idle visitor session is kept
	DefaultVisitorSessionTTL = 24 * time.Hour
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// GenerateSessionToken generates a cryptographically secure random token
func GenerateSessionToken() (string, error) {
	bytes := make([]byte, SessionTokenLength)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// CreateVisitorSession starts a new anonymous session
func CreateVisitorSession(db *gorm.DB, ttl time.Duration, ipAddress, userAgent string) (*models.VisitorSession, error) {
	if ttl <= 0 {
		ttl = DefaultVisitorSessionTTL
	}

	token, err := GenerateSessionToken()
	if err != nil {
		return nil, err
	}

	session := &models.VisitorSession{
		ID:        uuid.New().String(),
		Token:     token,
		ExpiresAt: time.Now().Add(ttl),
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}

	if err := db.Create(session).Error; err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// ValidateVisitorSession looks up a live session by token. Expired sessions
// are deleted on sight.
func ValidateVisitorSession(db *gorm.DB, token string) (*models.VisitorSession, error) {
	if token == "" {
		return nil, ErrSessionNotFound
	}

	var session models.VisitorSession
	err := db.Where("token = ?", token).First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to validate session: %w", err)
	}

	if session.IsExpired() {
		if err := deleteVisitorSessions(db, []string{session.ID}); err != nil {
			log.Printf("[WARNING] Failed to delete expired session %s: %v", session.ID, err)
		}
		return nil, ErrSessionExpired
	}

	return &session, nil
}

// TouchVisitorSession slides the expiry forward once less than half the TTL
// remains, so active visitors keep their session without a write per request.
func TouchVisitorSession(db *gorm.DB, session *models.VisitorSession, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultVisitorSessionTTL
	}
	if time.Until(session.ExpiresAt) > ttl/2 {
		return nil
	}

	expiresAt := time.Now().Add(ttl)
	if err := db.Model(session).Update("expires_at", expiresAt).Error; err != nil {
		return fmt.Errorf("failed to extend session: %w", err)
	}
	session.ExpiresAt = expiresAt
	return nil
}

// CleanupExpiredSessions removes expired sessions and their values
func CleanupExpiredSessions(db *gorm.DB) (int64, error) {
	var ids []string
	if err := db.Model(&models.VisitorSession{}).
		Where("expires_at < ?", time.Now()).
		Pluck("id", &ids).Error; err != nil {
		return 0, fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if err := deleteVisitorSessions(db, ids); err != nil {
		return 0, fmt.Errorf("failed to cleanup expired sessions: %w", err)
	}
	log.Printf("[INFO] Cleaned up %d expired visitor sessions", len(ids))
	return int64(len(ids)), nil
}

func deleteVisitorSessions(db *gorm.DB, ids []string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("session_id IN ?", ids).Delete(&models.SessionValue{}).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.VisitorSession{}).Error
	})
}

// DBSessionStore keeps the values of one visitor session in the database
type DBSessionStore struct {
	db        *gorm.DB
	sessionID string
}

// NewDBSessionStore binds a store to a visitor session
func NewDBSessionStore(db *gorm.DB, sessionID string) *DBSessionStore {
	return &DBSessionStore{db: db, sessionID: sessionID}
}

// Get returns the stored value for key; ok is false when it is absent
func (s *DBSessionStore) Get(key string) (string, bool, error) {
	var value models.SessionValue
	err := s.db.Where("session_id = ? AND key = ?", s.sessionID, key).First(&value).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to read session value: %w", err)
	}
	return value.Value, true, nil
}

// Set writes key, replacing any previous value
func (s *DBSessionStore) Set(key, value string) error {
	entry := models.SessionValue{SessionID: s.sessionID, Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}, {Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to write session value: %w", err)
	}
	return nil
}

// Remove deletes key; a missing key is not an error
func (s *DBSessionStore) Remove(key string) error {
	err := s.db.Where("session_id = ? AND key = ?", s.sessionID, key).Delete(&models.SessionValue{}).Error
	if err != nil {
		return fmt.Errorf("failed to remove session value: %w", err)
	}
	return nil
}
