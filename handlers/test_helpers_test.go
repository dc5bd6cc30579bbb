package handlers

import (
	"casa_hotels_go/config"
	"casa_hotels_go/db"
	"casa_hotels_go/middleware"
	"casa_hotels_go/services"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	// Use unique shared memory name to isolate tests
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)

	// Initialize Storage for tests if not already set
	if services.Storage == nil {
		services.Storage = services.NewLocalStorage(t.TempDir())
	}

	prev := db.DB
	db.DB = testDB
	t.Cleanup(func() { db.DB = prev })

	assert.NoError(t, db.Migrate())
	assert.NoError(t, services.SeedProperties(testDB))
	assert.NoError(t, services.InitEncryption("handler-test-secret"))

	return testDB
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:      "test",
		AppURL:           "https://casa.example.com",
		SiteName:         "Casa Blanca Hotels",
		HotelTimezone:    config.DefaultHotelTimezone,
		SearchSessionTTL: time.Hour,
	}
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Add config to context
	c.Set("config", testConfig())

	return e, c, rec
}

// newTestServer wires the routes the way cmd/server does, without rate limits
func newTestServer() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	cfg := testConfig()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("config", cfg)
			return next(c)
		}
	})

	e.GET("/health", HealthHandler)
	e.GET("/robots.txt", GetRobotsHandler)
	e.GET("/sitemap.xml", GetSitemapHandler)
	e.GET(services.MediaPathPrefix+"*", MediaHandler)

	site := e.Group("")
	site.Use(middleware.CSPNonce())
	site.Use(middleware.VisitorSession())
	site.Use(middleware.CSRF(cfg))
	site.GET("/", HomeHandler)
	site.GET("/properties", PropertiesHandler)
	site.GET("/properties/:slug", PropertyDetailHandler)
	site.GET("/about", WebsiteAboutHandler)
	site.GET("/contact", WebsiteContactHandler)
	site.POST("/search", SearchSubmitHandler)
	site.GET("/book/:slug", BookHandler)

	api := e.Group("/api")
	api.Use(middleware.VisitorSession())
	api.GET("/search", APISearchHandler)
	api.GET("/properties", APIPropertiesHandler)
	api.GET("/properties/:slug", APIPropertyHandler)
	return e
}

// serve runs a request against e, forwarding the visitor cookie when given
func serve(e *echo.Echo, req *http.Request, cookie *http.Cookie) *httptest.ResponseRecorder {
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const testCSRFToken = "test-csrf-token"

// withCSRF attaches a matching double-submit cookie; callers put the token in
// the form or the X-CSRF-Token header
func withCSRF(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.CSRFCookieName, Value: testCSRFToken})
	return req
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.VisitorCookieName {
			return ck
		}
	}
	return nil
}
