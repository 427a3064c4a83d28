package models

// Card is the display form of one brewery in the results list.
type Card struct {
	Anchor     string `json:"anchor"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Street     string `json:"street"`
	CityState  string `json:"city_state"`
	WebsiteURL string `json:"website_url,omitempty"`
}

// LatLng is a point on the map.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is a map pin bound to one brewery. Popup holds escaped HTML.
type Marker struct {
	ID       int    `json:"id"`
	Position LatLng `json:"position"`
	Popup    string `json:"popup"`
}

// Bounds is the rectangle that contains a set of markers.
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// Extend grows the bounds to include p.
func (b *Bounds) Extend(p LatLng) {
	b.SouthWest.Lat = min(b.SouthWest.Lat, p.Lat)
	b.SouthWest.Lon = min(b.SouthWest.Lon, p.Lon)
	b.NorthEast.Lat = max(b.NorthEast.Lat, p.Lat)
	b.NorthEast.Lon = max(b.NorthEast.Lon, p.Lon)
}

// MapView is a map center and zoom level.
type MapView struct {
	Center LatLng `json:"center"`
	Zoom   int    `json:"zoom"`
}
