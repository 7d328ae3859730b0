package service

import (
	"context"
	"time"

	"github.com/elntools/rspace-summary/models"
)

// ParseOptions controls how the document CSV representation is turned into
// form fields. The zero value is not useful; callers take the values from
// config.Summary, whose defaults match the layout RSpace serves (field name
// in column 2, field content in column 5, header row skipped).
type ParseOptions struct {
	// KeyColumn is the CSV column used as field names.
	KeyColumn int
	// ValueColumn is the CSV column used as field values.
	ValueColumn int
	// KeepHeader disables skipping of the first row.
	KeepHeader bool
}

// FormService turns the CSV representation of a form-backed document into
// parsed fields.
type FormService interface {
	// ParseDocumentCSV parses raw, the CSV representation of one document,
	// into ordered form fields. Each row describes one field with at least
	// the columns ID, GlobalID, name, type, lastModified, content.
	// Returns an error if the CSV is malformed or a row is too short for
	// the configured columns.
	ParseDocumentCSV(raw string, opts ParseOptions) ([]models.FormField, error)
}

// SummaryService builds tabular summaries of the form documents of a
// notebook.
type SummaryService interface {
	// Collect finds every document in the notebook that was created from
	// the given form (by advanced query, paginated until exhausted),
	// fetches each document's CSV representation, and returns one parsed
	// record per document. Returns an error if any request or parse fails.
	Collect(ctx context.Context, notebookID, formID string) ([]models.FormRecord, error)

	// Build assembles the records into a table. Columns are the union of
	// all field names in first-seen order. A non-empty sortField sorts the
	// rows by that column; an unknown sortField is logged and leaves the
	// order unchanged.
	Build(records []models.FormRecord, sortField string) models.SummaryTable

	// RenderHTML renders the table as the HTML body of a summary document.
	// A non-zero fileID appends an RSpace file link of the form
	// "<fileId=N>"; zero appends a note that no file was uploaded.
	RenderHTML(table models.SummaryTable, fileID int64) string

	// WriteCSV writes the table to path, header row first.
	WriteCSV(table models.SummaryTable, path string) error
}

// PublishService pushes a built summary back into RSpace.
type PublishService interface {
	// Publish writes the summary CSV next to the notebook name, uploads it
	// to the gallery, and creates a summary document in the notebook whose
	// body holds the HTML table and a link to the uploaded file. With
	// noUpload set only the local CSV is written.
	// Returns what was produced, or an error if any step fails.
	Publish(ctx context.Context, notebookID string, table models.SummaryTable, noUpload bool) (models.PublishResult, error)
}

// RefreshJob is a background worker that periodically re-collects the form
// records of a notebook and reports them through a callback. The browser
// uses it to keep its document list current.
type RefreshJob interface {
	// Start launches the background goroutine. It collects every interval,
	// defaulting to 2 minutes if interval is zero or negative. Any
	// previously running job is stopped before the new one begins.
	Start(ctx context.Context, notebookID, formID string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated. Safe to call when the job is not running.
	Stop()
}
