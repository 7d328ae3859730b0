// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

package models

import (
	"encoding/json"
	"time"
)

// SearchOperator joins the terms of an advanced query.
type SearchOperator string

const (
	OperatorAnd SearchOperator = "and"
	OperatorOr  SearchOperator = "or"
)

// QueryType selects which document attribute an advanced-query term matches
// against.
type QueryType string

const (
	// QueryCreated matches a creation-date range of the form "from;to".
	QueryCreated QueryType = "created"
	// QueryLastModified matches a last-modified date range.
	QueryLastModified QueryType = "lastModified"
	// QueryRecords restricts the search to a folder or notebook global ID.
	QueryRecords QueryType = "records"
	// QueryForm restricts the search to documents created from a form.
	QueryForm QueryType = "form"
	// QueryName matches the document name.
	QueryName QueryType = "name"
	// QueryTag matches document tags.
	QueryTag QueryType = "tag"
)

// SearchTerm is one term of an advanced document query.
type SearchTerm struct {
	Query     string    `json:"query"`
	QueryType QueryType `json:"queryType"`
}

// SearchQuery is the advanced document query accepted by the documents search
// endpoint via the advancedQuery parameter.
type SearchQuery struct {
	Operator SearchOperator `json:"operator"`
	Terms    []SearchTerm   `json:"terms"`
}

// NewSearchQuery builds a query joining terms with op.
func NewSearchQuery(op SearchOperator, terms ...SearchTerm) SearchQuery {
	return SearchQuery{Operator: op, Terms: terms}
}

// CreatedBetween matches documents created within [from, to], at day
// granularity.
func CreatedBetween(from, to time.Time) SearchTerm {
	return SearchTerm{
		Query:     from.Format("2006-01-02") + ";" + to.Format("2006-01-02"),
		QueryType: QueryCreated,
	}
}

// InRecord restricts the query to the folder or notebook with the given
// global ID (e.g. "NB12345").
func InRecord(globalID string) SearchTerm {
	return SearchTerm{Query: globalID, QueryType: QueryRecords}
}

// FromForm restricts the query to documents created from the form with the
// given global ID (e.g. "FM122").
func FromForm(globalID string) SearchTerm {
	return SearchTerm{Query: globalID, QueryType: QueryForm}
}

// Wire returns the JSON representation expected by the advancedQuery request
// parameter.
func (q SearchQuery) Wire() (string, error) {
	raw, err := json.Marshal(q)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
