package handlers

import (
	"casa_hotels_go/middleware"
	"casa_hotels_go/services/dates"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func postSearch(e *echo.Echo, form url.Values) *httptest.ResponseRecorder {
	form.Set(middleware.CSRFFormField, testCSRFToken)
	req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return serve(e, withCSRF(req), nil)
}

func getSearch(t *testing.T, e *echo.Echo, cookie *http.Cookie, query string) SearchResponse {
	t.Helper()
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/api/search"+query, nil), cookie)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SearchResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestSearchSubmitHandler(t *testing.T) {
	setupTestDB(t)
	e := newTestServer()

	t.Run("stores the search and redirects to the property", func(t *testing.T) {
		rec := postSearch(e, url.Values{
			"check_in":    {"2030-12-23"},
			"check_out":   {"2030-12-25"},
			"guests":      {"2"},
			"property_id": {"casa-camino"},
		})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/properties/casa-camino", rec.Header().Get(echo.HeaderLocation))

		cookie := sessionCookie(rec)
		assert.NotNil(t, cookie)

		resp := getSearch(t, e, cookie, "?style=long")
		assert.Equal(t, dates.SearchSnapshot{CheckIn: "2030-12-23", CheckOut: "2030-12-25", Guests: 2, PropertyID: "casa-camino"}, resp.Search)
		assert.Equal(t, 2, resp.Nights)
		assert.Equal(t, "Mon, December 23, 2030", resp.Display.CheckIn)
		assert.Equal(t, "Wed, December 25, 2030", resp.Display.CheckOut)
	})

	t.Run("timestamps keep their UTC calendar day", func(t *testing.T) {
		rec := postSearch(e, url.Values{
			"check_in":  {"2030-03-10T23:30:00-08:00"},
			"check_out": {"2030-03-13"},
		})
		resp := getSearch(t, e, sessionCookie(rec), "")
		assert.Equal(t, "2030-03-11", resp.Search.CheckIn)
		assert.Equal(t, "2030-03-13", resp.Search.CheckOut)
		assert.Equal(t, 1, resp.Search.Guests)
		assert.Equal(t, "3/11/2030", resp.Display.CheckIn)
	})

	t.Run("unknown property goes to the catalogue", func(t *testing.T) {
		rec := postSearch(e, url.Values{
			"check_in":    {"2030-01-01"},
			"check_out":   {"2030-01-02"},
			"property_id": {"<b>nowhere</b>"},
		})
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/properties", rec.Header().Get(echo.HeaderLocation))

		resp := getSearch(t, e, sessionCookie(rec), "")
		assert.Empty(t, resp.Search.PropertyID)
	})

	t.Run("inverted stay is pushed to one night", func(t *testing.T) {
		rec := postSearch(e, url.Values{
			"check_in":  {"2030-05-10"},
			"check_out": {"2030-05-08"},
			"guests":    {"many"},
		})
		resp := getSearch(t, e, sessionCookie(rec), "")
		assert.Equal(t, "2030-05-10", resp.Search.CheckIn)
		assert.Equal(t, "2030-05-11", resp.Search.CheckOut)
		assert.Equal(t, 1, resp.Search.Guests)
		assert.Equal(t, 1, resp.Nights)
	})

	t.Run("malformed dates fall back to today", func(t *testing.T) {
		rec := postSearch(e, url.Values{"check_in": {"not-a-date"}, "check_out": {"garbage"}})
		resp := getSearch(t, e, sessionCookie(rec), "")
		assert.Equal(t, dates.Today(), resp.Search.CheckIn)
		assert.Equal(t, dates.AddDays(dates.Today(), 1), resp.Search.CheckOut)
	})

	t.Run("JSON clients get the stored search back", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(`{"checkIn":"2030-07-01","checkOut":"2030-07-04","guests":3}`))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		req.Header.Set(echo.HeaderAccept, echo.MIMEApplicationJSON)
		req.Header.Set(middleware.CSRFHeader, testCSRFToken)
		rec := serve(e, withCSRF(req), nil)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SearchResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.Search.Guests)
		assert.Equal(t, 3, resp.Nights)
	})

	t.Run("posts without a CSRF token are refused", func(t *testing.T) {
		form := url.Values{"check_in": {"2030-01-01"}, "check_out": {"2030-01-02"}}
		req := httptest.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
		rec := serve(e, req, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Nil(t, sessionCookie(rec))
	})
}

func TestAPISearchHandlerDefaults(t *testing.T) {
	setupTestDB(t)
	e := newTestServer()

	resp := getSearch(t, e, nil, "?style=compact")
	assert.Equal(t, dates.DefaultSearch(), resp.Search)
	assert.Equal(t, 1, resp.Nights)
	assert.Equal(t, dates.FormatForDisplay(dates.Today(), dates.StyleCompact), resp.Display.CheckIn)
}

func TestSearchRequestSnapshot(t *testing.T) {
	base := dates.SearchSnapshot{CheckIn: "2030-01-01", CheckOut: "2030-01-03", Guests: 2, PropertyID: "casa-camino"}

	t.Run("empty request keeps base", func(t *testing.T) {
		assert.Equal(t, base, SearchRequest{}.snapshot(base))
	})

	t.Run("fields override", func(t *testing.T) {
		got := SearchRequest{CheckOut: " 2030-01-05 ", Guests: "4"}.snapshot(base)
		assert.Equal(t, "2030-01-01", got.CheckIn)
		assert.Equal(t, "2030-01-05", got.CheckOut)
		assert.Equal(t, 4, got.Guests)
	})
}

func TestGuestsParamUnmarshal(t *testing.T) {
	var req SearchRequest
	assert.NoError(t, json.Unmarshal([]byte(`{"guests":2}`), &req))
	assert.Equal(t, guestsParam("2"), req.Guests)

	assert.NoError(t, json.Unmarshal([]byte(`{"guests":"5"}`), &req))
	assert.Equal(t, guestsParam("5"), req.Guests)
}
