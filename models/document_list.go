package models

import "time"

// DocumentList is one page of a document search result.
type DocumentList struct {
	// Documents holds the lightweight descriptors of the current page.
	Documents []DocumentInfo `json:"documents"`

	// TotalHits is the total number of documents matching the query across
	// all pages.
	TotalHits int64 `json:"totalHits"`

	// PageNumber is the zero-based index of this page.
	PageNumber int `json:"pageNumber"`

	// Links carries the pagination links returned by the server.
	Links []Link `json:"_links,omitempty"`
}

// DocumentInfo is the lightweight document descriptor used in search results.
// It carries enough to list and identify a document without fetching its
// fields.
type DocumentInfo struct {
	ID           int64      `json:"id"`
	GlobalID     string     `json:"globalId"`
	Name         string     `json:"name"`
	Created      *time.Time `json:"created,omitempty"`
	LastModified *time.Time `json:"lastModified,omitempty"`
	Form         *FormRef   `json:"form,omitempty"`
}

// Link is a HATEOAS navigation link.
type Link struct {
	Link string `json:"link"`
	Rel  string `json:"rel"`
}
