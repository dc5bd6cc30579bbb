package models

import (
	"time"
)

// VisitorSession is an anonymous browsing session. It lives as long as the
// browser keeps its session cookie, bounded by ExpiresAt.
type VisitorSession struct {
	ID        string    `gorm:"primarykey;type:varchar(36)" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Token     string    `gorm:"uniqueIndex;not null;type:varchar(128)" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	IPAddress string    `gorm:"type:varchar(45)" json:"ip_address"`
	UserAgent string    `gorm:"type:text" json:"user_agent"`

	// Relationships
	Values []SessionValue `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName specifies the table name for VisitorSession model
func (VisitorSession) TableName() string {
	return "visitor_sessions"
}

// IsExpired checks if the session has expired
func (s *VisitorSession) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// SessionValue is one key-value entry of a visitor session
type SessionValue struct {
	ID        uint      `gorm:"primarykey" json:"-"`
	UpdatedAt time.Time `json:"updated_at"`

	SessionID string `gorm:"type:varchar(36);not null;uniqueIndex:idx_session_key" json:"-"`
	Key       string `gorm:"type:varchar(64);not null;uniqueIndex:idx_session_key" json:"key"`
	Value     string `gorm:"type:text;not null" json:"value"`
}

// TableName specifies the table name for SessionValue model
func (SessionValue) TableName() string {
	return "session_values"
}
