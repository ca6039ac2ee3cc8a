package models

// SearchResult is one photo returned by the search endpoint: its public URL
// and the labels it was indexed under. Rendered once, then discarded.
type SearchResult struct {
	URL    string   `json:"url"`
	Labels []string `json:"labels"`
}
