package models

// SearchAPIResponse contains the rendered result of a brewery search.
type SearchAPIResponse struct {
	Query   Query    `json:"query"`
	Cards   []Card   `json:"cards"`
	Markers []Marker `json:"markers"`
	Bounds  *Bounds  `json:"bounds,omitempty"`
	Recent  []string `json:"recent"`
	Message string   `json:"message,omitempty"`
}

// HistoryAPIResponse lists the visitor's recent searches.
type HistoryAPIResponse struct {
	Recent []string `json:"recent"`
}
