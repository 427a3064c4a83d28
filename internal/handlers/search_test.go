package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/memory/v2"
	"github.com/gofiber/template/html/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brewfinder/internal/config"
	"brewfinder/internal/history"
	"brewfinder/internal/mapview"
	"brewfinder/internal/middleware"
	"brewfinder/internal/models"
	"brewfinder/internal/search"
)

type stubDirectory struct {
	records []models.Brewery
	err     error
}

func (s *stubDirectory) Search(context.Context, models.Query) ([]models.Brewery, error) {
	return s.records, s.err
}

func newSearchApp(t *testing.T, dir search.Directory, store *history.Store) *fiber.App {
	t.Helper()

	engine := html.New("../../views", ".html")
	app := fiber.New(fiber.Config{
		Views:       engine,
		ViewsLayout: "layouts/main",
	})
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.VisitorKey, "visitor-1")
		return c.Next()
	})

	newMap := func() *mapview.View {
		return mapview.New(
			mapview.Icon{URL: "https://img.icons8.com/stickers/100/beer.png", Size: 54},
			models.MapView{Center: models.LatLng{Lat: 37.8, Lon: -96.9}, Zoom: 4},
			"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
			19,
		)
	}
	cfg := &config.Config{SiteTitle: "Brew Finder"}
	h := NewSearchHandler(search.NewController(dir, nil, nil), store, newMap, []string{"micro", "brewpub"}, cfg)

	app.Get("/", h.Index)
	app.Get("/search", h.Search)
	app.Post("/search", h.Search)
	return app
}

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIndex_ShowsSnapshot(t *testing.T) {
	kv := memory.New()
	require.NoError(t, kv.Set(history.Key("visitor-1"), []byte(`["Austin","Denver","Austin"]`), 0))
	app := newSearchApp(t, &stubDirectory{}, history.NewStore(kv, 0, nil))

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	status, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<title>Search - Brew Finder</title>")
	assert.Contains(t, body, `id="search-form"`)
	assert.Equal(t, 1, strings.Count(body, ">Austin</a>"))
	assert.Contains(t, body, ">Denver</a>")
	assert.Contains(t, body, `id="map-data"`)
	assert.NotContains(t, body, "search-error")
}

func TestSearch_RendersCards(t *testing.T) {
	dir := &stubDirectory{records: []models.Brewery{
		{
			Name:        "Ale <House>",
			BreweryType: "micro",
			WebsiteURL:  "https://alehouse.example",
			Latitude:    models.NewCoordinate(30.2),
			Longitude:   models.NewCoordinate(-97.7),
		},
	}}
	store := history.NewStore(memory.New(), 0, nil)
	app := newSearchApp(t, dir, store)

	req, _ := http.NewRequest(http.MethodGet, "/search?q=austin&type=micro", nil)
	status, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `id="brewery-ale-&lt;house&gt;"`)
	assert.Contains(t, body, "Ale &lt;House&gt;")
	assert.Contains(t, body, `target="_blank" rel="noopener">Visit Website</a>`)
	assert.Contains(t, body, "Street info not available")
	assert.Contains(t, body, "City not available, State not available")
	assert.Contains(t, body, `<option value="micro" selected>`)
	assert.Equal(t, []string{"austin"}, store.Recent("visitor-1"))
}

func TestSearch_HTMXReturnsFragment(t *testing.T) {
	app := newSearchApp(t, &stubDirectory{records: []models.Brewery{}}, history.NewStore(memory.New(), 0, nil))

	req, _ := http.NewRequest(http.MethodGet, "/search?q=12345", nil)
	req.Header.Set("HX-Request", "true")
	status, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(body), `<div id="results">`))
	assert.NotContains(t, body, "<html")
	assert.Contains(t, body, "No breweries found.")
}

func TestSearch_PostForm(t *testing.T) {
	store := history.NewStore(memory.New(), 0, nil)
	app := newSearchApp(t, &stubDirectory{err: errors.New("boom")}, store)

	form := url.Values{"q": {"Portland"}}
	req, _ := http.NewRequest(http.MethodPost, "/search", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, search.MsgFetchFailed)
	assert.Contains(t, body, ">Portland</a>")
}

func TestSearch_EmptyInput(t *testing.T) {
	store := history.NewStore(memory.New(), 0, nil)
	app := newSearchApp(t, &stubDirectory{}, store)

	req, _ := http.NewRequest(http.MethodGet, "/search?q=++", nil)
	status, body := doRequest(t, app, req)

	require.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, search.MsgEmptyInput)
	assert.Empty(t, store.Recent("visitor-1"))
}
