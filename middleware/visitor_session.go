package middleware

import (
	"casa_hotels_go/config"
	"casa_hotels_go/db"
	"casa_hotels_go/models"
	"casa_hotels_go/services"
	"casa_hotels_go/services/dates"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

const (
	// VisitorCookieName holds the encrypted visitor session token
	VisitorCookieName = "casa_session"
	// ContextKeySessionStore is the context key for the visitor's dates.SessionStore
	ContextKeySessionStore = "session_store"
	// ContextKeyVisitorSession is the context key for the resolved *models.VisitorSession
	ContextKeyVisitorSession = "visitor_session"
)

// VisitorSession resolves the anonymous session behind the casa_session cookie
// and exposes its key-value store to handlers. A session row is only created
// on the first write, so crawlers and one-off visitors leave nothing behind.
func VisitorSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if db.DB == nil {
				return next(c)
			}

			cfg, _ := c.Get("config").(*config.Config)
			ttl := services.DefaultVisitorSessionTTL
			if cfg != nil && cfg.SearchSessionTTL > 0 {
				ttl = cfg.SearchSessionTTL
			}

			store := &visitorStore{c: c, db: db.DB, cfg: cfg, ttl: ttl}

			if cookie, err := c.Cookie(VisitorCookieName); err == nil && cookie.Value != "" {
				session, err := resolveVisitorSession(db.DB, cookie.Value)
				switch {
				case err == nil:
					if err := services.TouchVisitorSession(db.DB, session, ttl); err != nil {
						c.Logger().Warnf("visitor session: %v", err)
					}
					store.bind(session)
				case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrSessionExpired):
					clearVisitorCookie(c, cfg)
				default:
					c.Logger().Warnf("visitor session: %v", err)
				}
			}

			c.Set(ContextKeySessionStore, dates.SessionStore(store))
			return next(c)
		}
	}
}

// GetSessionStore returns the visitor's session store, or nil outside the middleware
func GetSessionStore(c echo.Context) dates.SessionStore {
	if store, ok := c.Get(ContextKeySessionStore).(dates.SessionStore); ok {
		return store
	}
	return nil
}

// GetVisitorSession returns the bound visitor session, if any
func GetVisitorSession(c echo.Context) *models.VisitorSession {
	session, _ := c.Get(ContextKeyVisitorSession).(*models.VisitorSession)
	return session
}

func resolveVisitorSession(database *gorm.DB, sealed string) (*models.VisitorSession, error) {
	token, err := services.DecryptText(sealed)
	if err != nil {
		// unreadable cookies are treated like unknown sessions
		return nil, services.ErrSessionNotFound
	}
	return services.ValidateVisitorSession(database, token)
}

// visitorStore is a dates.SessionStore that creates its session on first Set
type visitorStore struct {
	c     echo.Context
	db    *gorm.DB
	cfg   *config.Config
	ttl   time.Duration
	inner *services.DBSessionStore
}

func (s *visitorStore) bind(session *models.VisitorSession) {
	s.inner = services.NewDBSessionStore(s.db, session.ID)
	s.c.Set(ContextKeyVisitorSession, session)
}

func (s *visitorStore) Get(key string) (string, bool, error) {
	if s.inner == nil {
		return "", false, nil
	}
	return s.inner.Get(key)
}

func (s *visitorStore) Set(key, value string) error {
	if s.inner == nil {
		if err := s.start(); err != nil {
			return err
		}
	}
	return s.inner.Set(key, value)
}

func (s *visitorStore) Remove(key string) error {
	if s.inner == nil {
		return nil
	}
	return s.inner.Remove(key)
}

func (s *visitorStore) start() error {
	req := s.c.Request()
	session, err := services.CreateVisitorSession(s.db, s.ttl, s.c.RealIP(), req.UserAgent())
	if err != nil {
		return err
	}

	sealed, err := services.EncryptText(session.Token)
	if err != nil {
		return err
	}

	setVisitorCookie(s.c, s.cfg, sealed)
	s.bind(session)
	return nil
}

// setVisitorCookie writes a browser-session cookie (no Expires)
func setVisitorCookie(c echo.Context, cfg *config.Config, value string) {
	cookie := new(http.Cookie)
	cookie.Name = VisitorCookieName
	cookie.Value = value
	cookie.Path = "/"
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg != nil && cfg.IsProduction() {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}

func clearVisitorCookie(c echo.Context, cfg *config.Config) {
	cookie := new(http.Cookie)
	cookie.Name = VisitorCookieName
	cookie.Value = ""
	cookie.Path = "/"
	cookie.MaxAge = -1
	cookie.HttpOnly = true
	cookie.SameSite = http.SameSiteLaxMode
	if cfg != nil && cfg.IsProduction() {
		cookie.Secure = true
	}
	c.SetCookie(cookie)
}
