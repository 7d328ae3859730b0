package models

// FormRecord is the parsed representation of one form-backed document:
// ordered name/value pairs plus the identity of the source document.
type FormRecord struct {
	// DocumentID is the numeric ID of the source document.
	DocumentID int64

	// GlobalID is the prefixed identifier of the source document.
	GlobalID string

	// Name is the name of the source document.
	Name string

	// Fields holds the form fields in document order.
	Fields []FormField
}

// FormField is a single parsed form field.
type FormField struct {
	Name  string
	Value string
}

// Value returns the value of the named field and whether it is present.
func (r FormRecord) Value(name string) (string, bool) {
	for _, f := range r.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return "", false
}

// SummaryTable is the tabular summary of a set of form records. Columns is
// the union of all field names in first-seen order; each row is aligned to
// Columns, with empty strings for fields a record does not have.
type SummaryTable struct {
	Columns []string
	Rows    [][]string
}

// PublishResult reports what Publish produced: the local CSV path and, unless
// the run was a dry run, the uploaded file and the created summary document.
type PublishResult struct {
	CSVPath  string
	File     *FileInfo
	Document *Document
}
