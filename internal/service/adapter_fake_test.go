package service

import (
	"context"
	"fmt"
	"io"

	"github.com/elntools/rspace-summary/models"
)

// fakeELN is a hand-rolled adapter.ELNAdapter test double. Fields configure
// canned responses; call counters and captured requests let tests assert on
// the traffic.
type fakeELN struct {
	status models.Status
	folder models.Folder
	pages  []models.DocumentList
	csv    map[int64]string
	file   models.FileInfo
	doc    models.Document

	statusErr error
	folderErr error
	searchErr error
	csvErr    error
	uploadErr error
	createErr error

	searchCalls  int
	uploadCalls  int
	uploadedName string
	uploadedBody []byte
	createdReq   models.NewDocument
}

func (f *fakeELN) Status(context.Context) (models.Status, error) {
	return f.status, f.statusErr
}

func (f *fakeELN) Folder(_ context.Context, folderID int64) (models.Folder, error) {
	if f.folderErr != nil {
		return models.Folder{}, f.folderErr
	}
	if folderID != f.folder.ID {
		return models.Folder{}, fmt.Errorf("unexpected folder id %d", folderID)
	}
	return f.folder, nil
}

func (f *fakeELN) Document(_ context.Context, documentID int64) (models.Document, error) {
	return models.Document{ID: documentID}, nil
}

func (f *fakeELN) DocumentCSV(_ context.Context, documentID int64) (string, error) {
	if f.csvErr != nil {
		return "", f.csvErr
	}
	raw, ok := f.csv[documentID]
	if !ok {
		return "", fmt.Errorf("no csv for document %d", documentID)
	}
	return raw, nil
}

func (f *fakeELN) SearchDocuments(_ context.Context, _ models.SearchQuery, page, _ int) (models.DocumentList, error) {
	f.searchCalls++
	if f.searchErr != nil {
		return models.DocumentList{}, f.searchErr
	}
	if page >= len(f.pages) {
		return models.DocumentList{PageNumber: page}, nil
	}
	return f.pages[page], nil
}

func (f *fakeELN) CreateDocument(_ context.Context, doc models.NewDocument) (models.Document, error) {
	if f.createErr != nil {
		return models.Document{}, f.createErr
	}
	f.createdReq = doc
	return f.doc, nil
}

func (f *fakeELN) UploadFile(_ context.Context, name string, r io.Reader) (models.FileInfo, error) {
	f.uploadCalls++
	if f.uploadErr != nil {
		return models.FileInfo{}, f.uploadErr
	}
	f.uploadedName = name
	body, err := io.ReadAll(r)
	if err != nil {
		return models.FileInfo{}, err
	}
	f.uploadedBody = body
	return f.file, nil
}

func (f *fakeELN) DownloadFile(_ context.Context, _ int64, w io.Writer) error {
	_, err := w.Write([]byte("content"))
	return err
}
