// Package mapview tracks the markers shown on the results map.
package mapview

import "brewfinder/internal/models"

// Icon is the image every marker is drawn with.
type Icon struct {
	URL  string `json:"url"`
	Size int    `json:"size"`
}

// MarkerHandle identifies a placed marker.
type MarkerHandle int

// View owns the MarkerSet of one map. Markers are only ever replaced as a
// whole: Clear, then AddMarker for each result, then FitToAll.
type View struct {
	icon    Icon
	initial models.MapView
	markers []models.Marker
	bounds  *models.Bounds
	nextID  int
	tileURL string
	maxZoom int
}

// New creates an empty map showing the initial view.
func New(icon Icon, initial models.MapView, tileURL string, maxZoom int) *View {
	return &View{
		icon:    icon,
		initial: initial,
		tileURL: tileURL,
		maxZoom: maxZoom,
	}
}

// Clear removes every tracked marker. The fitted bounds are kept, the same
// way a map keeps its viewport when its pins are removed.
func (v *View) Clear() {
	v.markers = nil
}

// AddMarker places a marker at lat/lon whose popup shows popup (HTML).
func (v *View) AddMarker(lat, lon float64, popup string) MarkerHandle {
	v.nextID++
	v.markers = append(v.markers, models.Marker{
		ID:       v.nextID,
		Position: models.LatLng{Lat: lat, Lon: lon},
		Popup:    popup,
	})
	return MarkerHandle(v.nextID)
}

// FitToAll fits the view to the current markers. With no markers the view
// is left as it is.
func (v *View) FitToAll() {
	if len(v.markers) == 0 {
		return
	}

	first := v.markers[0].Position
	b := models.Bounds{SouthWest: first, NorthEast: first}
	for _, m := range v.markers[1:] {
		b.Extend(m.Position)
	}
	v.bounds = &b
}

// Markers returns the current MarkerSet.
func (v *View) Markers() []models.Marker {
	out := make([]models.Marker, len(v.markers))
	copy(out, v.markers)
	return out
}

// Bounds returns the fitted bounds, or nil if the map was never fitted.
func (v *View) Bounds() *models.Bounds {
	return v.bounds
}

// Data is the serializable state handed to the browser map script.
type Data struct {
	Initial models.MapView  `json:"initial"`
	Bounds  *models.Bounds  `json:"bounds"`
	Markers []models.Marker `json:"markers"`
	Icon    Icon            `json:"icon"`
	TileURL string          `json:"tile_url"`
	MaxZoom int             `json:"max_zoom"`
}

// Data returns the map state for rendering.
func (v *View) Data() Data {
	return Data{
		Initial: v.initial,
		Bounds:  v.bounds,
		Markers: v.Markers(),
		Icon:    v.icon,
		TileURL: v.tileURL,
		MaxZoom: v.maxZoom,
	}
}
