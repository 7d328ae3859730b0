package models

import "time"

// Document is a single structured RSpace document. Every document is backed
// by a form; the actual content lives in Fields, one entry per form field.
type Document struct {
	// ID is the numeric identifier of the document.
	ID int64 `json:"id"`

	// GlobalID is the prefixed identifier shown in the RSpace UI
	// (e.g. "SD12345").
	GlobalID string `json:"globalId"`

	// Name is the human-readable document name.
	Name string `json:"name"`

	// Created is the creation timestamp reported by the server.
	Created *time.Time `json:"created,omitempty"`

	// LastModified is the timestamp of the last modification.
	LastModified *time.Time `json:"lastModified,omitempty"`

	// ParentFolderID is the folder (or notebook) containing the document.
	ParentFolderID int64 `json:"parentFolderId,omitempty"`

	// Form references the form this document was created from.
	Form *FormRef `json:"form,omitempty"`

	// Fields holds the document content, one entry per form field.
	Fields []Field `json:"fields,omitempty"`

	// Owner is the RSpace user that owns the document.
	Owner *Person `json:"owner,omitempty"`
}

// Field is one form field of a document.
type Field struct {
	ID           int64      `json:"id"`
	GlobalID     string     `json:"globalId"`
	Name         string     `json:"name"`
	Type         string     `json:"type"`
	Content      string     `json:"content"`
	LastModified *time.Time `json:"lastModified,omitempty"`
}

// FormRef is a lightweight reference to the form a document was created from.
type FormRef struct {
	ID       int64  `json:"id"`
	GlobalID string `json:"globalId"`
	Name     string `json:"name"`
}

// Person identifies an RSpace user in document and folder responses.
type Person struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// NewDocument is the request payload for creating a document.
type NewDocument struct {
	// Name is the name of the document to create.
	Name string `json:"name"`

	// ParentFolderID places the new document inside a folder or notebook.
	// Zero means the user's workspace root.
	ParentFolderID int64 `json:"parentFolderId,omitempty"`

	// Fields holds the initial content. For basic documents a single field
	// with HTML content is enough.
	Fields []NewField `json:"fields,omitempty"`
}

// NewField is the content of one field in a document-creation request.
type NewField struct {
	Content string `json:"content"`
}
