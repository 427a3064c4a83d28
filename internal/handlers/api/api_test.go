package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/storage/memory/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

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

type envelope struct {
	Status string          `json:"status"`
	Error  string          `json:"error"`
	Data   json.RawMessage `json:"data"`
}

func newTestApp(dir search.Directory, store *history.Store) *fiber.App {
	newMap := func() *mapview.View {
		return mapview.New(mapview.Icon{URL: "beer.png", Size: 54}, models.MapView{Zoom: 4}, "", 19)
	}
	controller := search.NewController(dir, nil, nil)

	app := fiber.New()
	app.Use(func(c fiber.Ctx) error {
		c.Locals(middleware.VisitorKey, "visitor-1")
		return c.Next()
	})
	app.Get("/api/v1/breweries", NewBreweryHandler(controller, store, newMap).Search)
	app.Get("/api/v1/history", NewHistoryHandler(store).List)
	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, envelope) {
	t.Helper()

	req, _ := http.NewRequest(http.MethodGet, target, nil)
	resp, err := app.Test(req)
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), "body: %s", body)
	return resp.StatusCode, env
}

func searchURL(q, breweryType string) string {
	v := url.Values{}
	v.Set("q", q)
	if breweryType != "" {
		v.Set("type", breweryType)
	}
	return "/api/v1/breweries?" + v.Encode()
}

func TestBreweryHandler_Search(t *testing.T) {
	dir := &stubDirectory{records: []models.Brewery{
		{
			Name:        "Ale House",
			BreweryType: "micro",
			City:        "Austin",
			State:       "Texas",
			Latitude:    models.NewCoordinate(30.2),
			Longitude:   models.NewCoordinate(-97.7),
		},
		{Name: "No Pin Brewing", BreweryType: "brewpub"},
	}}
	store := history.NewStore(memory.New(), 0, nil)
	app := newTestApp(dir, store)

	status, env := get(t, app, searchURL("austin", "micro"))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", env.Status)

	var data models.SearchAPIResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))

	assert.Equal(t, models.KindCity, data.Query.Kind)
	assert.Equal(t, "micro", data.Query.Type)
	require.Len(t, data.Cards, 2)
	assert.Equal(t, "brewery-ale-house", data.Cards[0].Anchor)
	assert.Equal(t, "Austin, Texas", data.Cards[0].CityState)
	require.Len(t, data.Markers, 1)
	require.NotNil(t, data.Bounds)
	assert.Equal(t, 30.2, data.Bounds.NorthEast.Lat)
	assert.Equal(t, []string{"austin"}, data.Recent)
	assert.Empty(t, data.Message)
}

func TestBreweryHandler_EmptyInput(t *testing.T) {
	store := history.NewStore(memory.New(), 0, nil)
	app := newTestApp(&stubDirectory{}, store)

	status, env := get(t, app, searchURL("   ", ""))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "error", env.Status)
	assert.Equal(t, search.MsgEmptyInput, env.Error)
	assert.Empty(t, store.Recent("visitor-1"))
}

func TestBreweryHandler_NoResults(t *testing.T) {
	store := history.NewStore(memory.New(), 0, nil)
	app := newTestApp(&stubDirectory{records: []models.Brewery{}}, store)

	status, env := get(t, app, searchURL("99999", ""))
	require.Equal(t, fiber.StatusOK, status)

	var data models.SearchAPIResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, models.KindPostalCode, data.Query.Kind)
	assert.Empty(t, data.Cards)
	assert.Empty(t, data.Markers)
	assert.Nil(t, data.Bounds)
	assert.Equal(t, search.MsgNoResults, data.Message)
	assert.Equal(t, []string{"99999"}, data.Recent)
}

func TestBreweryHandler_FetchFailed(t *testing.T) {
	store := history.NewStore(memory.New(), 0, nil)
	app := newTestApp(&stubDirectory{err: errors.New("connection refused")}, store)

	status, env := get(t, app, searchURL("Denver", ""))
	assert.Equal(t, fiber.StatusBadGateway, status)
	assert.Equal(t, search.MsgFetchFailed, env.Error)
	assert.Equal(t, []string{"Denver"}, store.Recent("visitor-1"))
}

func TestHistoryHandler_List(t *testing.T) {
	store := history.NewStore(memory.New(), 0, nil)
	for _, q := range []string{"a", "b", "a", "c", "d", "e", "f"} {
		_, err := store.Record("visitor-1", q)
		require.NoError(t, err)
	}
	app := newTestApp(&stubDirectory{}, store)

	status, env := get(t, app, "/api/v1/history")
	require.Equal(t, fiber.StatusOK, status)

	var data models.HistoryAPIResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []string{"a", "c", "d", "e", "f"}, data.Recent)
}
