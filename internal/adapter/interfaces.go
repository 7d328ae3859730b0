// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The rspace-summary Authors

// Package adapter provides the transport layer for talking to the RSpace ELN
// HTTP API.
//
// The primary abstraction is [ELNAdapter], which decouples the service layer
// from the wire protocol. The package ships a resty-based implementation
// ([NewELNAdapter]) that authenticates every request with the static apiKey
// header the RSpace API expects.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic
// error handling (e.g. [ErrUnauthorized] for 401, [ErrTooManyRequests] for
// 429). The adapter performs exactly one HTTP attempt per operation and keeps
// no response cache; rate limiting is the caller's problem to surface, not to
// retry around.
package adapter

import (
	"context"
	"io"

	"github.com/elntools/rspace-summary/models"
)

// ELNAdapter defines the RSpace API surface the application uses.
// Implementations are responsible for serialisation, api-key header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ELNAdapter interface {
	// Status probes the API with the cheapest authenticated call. It is the
	// canonical way to verify that the configured api key is still valid:
	// a regenerated key makes this return [ErrUnauthorized].
	Status(ctx context.Context) (models.Status, error)

	// Folder fetches a folder or notebook by numeric ID.
	Folder(ctx context.Context, folderID int64) (models.Folder, error)

	// Document fetches a full document, including its form fields.
	Document(ctx context.Context, documentID int64) (models.Document, error)

	// DocumentCSV fetches the CSV representation of a document: one row per
	// form field, with at least the columns ID, GlobalID, name, type,
	// lastModified, content.
	DocumentCSV(ctx context.Context, documentID int64) (string, error)

	// SearchDocuments runs an advanced query and returns the requested
	// zero-based result page.
	SearchDocuments(ctx context.Context, query models.SearchQuery, page, pageSize int) (models.DocumentList, error)

	// CreateDocument creates a new document, typically inside a notebook.
	CreateDocument(ctx context.Context, doc models.NewDocument) (models.Document, error)

	// UploadFile uploads the content of r to the RSpace gallery under the
	// given file name and returns the stored file descriptor.
	UploadFile(ctx context.Context, name string, r io.Reader) (models.FileInfo, error)

	// DownloadFile writes the content of the gallery file with the given ID
	// to w.
	DownloadFile(ctx context.Context, fileID int64, w io.Writer) error
}
