// Package models defines the request and response shapes of the gateway API.
package models

// SearchRequest is the parsed form of an inbound /search body. At most one of
// Query/Queries matters; when both are present Queries[0] wins during
// normalization.
type SearchRequest struct {
	Query   string
	Queries []string
	Count   int
}
