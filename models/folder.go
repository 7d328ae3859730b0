package models

import "time"

// Folder is an RSpace folder. Notebooks are folders with Notebook set; their
// entries are regular documents.
type Folder struct {
	ID             int64      `json:"id"`
	GlobalID       string     `json:"globalId"`
	Name           string     `json:"name"`
	Created        *time.Time `json:"created,omitempty"`
	LastModified   *time.Time `json:"lastModified,omitempty"`
	ParentFolderID int64      `json:"parentFolderId,omitempty"`
	Notebook       bool       `json:"notebook"`
	Owner          *Person    `json:"owner,omitempty"`
}

// FileInfo describes a file in the RSpace gallery, as returned by the upload
// and file-info endpoints.
type FileInfo struct {
	ID          int64      `json:"id"`
	GlobalID    string     `json:"globalId"`
	Name        string     `json:"name"`
	Caption     string     `json:"caption,omitempty"`
	ContentType string     `json:"contentType"`
	Created     *time.Time `json:"created,omitempty"`
	Size        int64      `json:"size"`
	Version     int64      `json:"version,omitempty"`
}

// Status is the response of the API status endpoint. It is the cheapest call
// that exercises the api key, so clients use it as a connectivity probe.
type Status struct {
	Message       string `json:"message"`
	RSpaceVersion string `json:"rspaceVersion"`
}
