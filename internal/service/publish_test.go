package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/models"
)

func newTestPublishService(t *testing.T, eln *fakeELN) (PublishService, string) {
	t.Helper()

	cfg := testSummaryConfig()
	cfg.OutputDir = t.TempDir()

	log := logger.Nop()
	summarySvc := NewSummaryService(eln, NewFormService(log), cfg, log)
	return NewPublishService(eln, summarySvc, cfg, log), cfg.OutputDir
}

func testTable() models.SummaryTable {
	return models.SummaryTable{
		Columns: []string{"Sample", "Voltage"},
		Rows:    [][]string{{"quartz", "200"}},
	}
}

func TestPublish(t *testing.T) {
	eln := &fakeELN{
		folder: models.Folder{ID: 12345, GlobalID: "NB12345", Name: "TEM session", Notebook: true},
		file:   models.FileInfo{ID: 42, GlobalID: "GL42"},
		doc:    models.Document{ID: 777, GlobalID: "SD777"},
	}

	svc, outputDir := newTestPublishService(t, eln)
	result, err := svc.Publish(context.Background(), "NB12345", testTable(), false)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(outputDir, "TEM session_summary.csv"), result.CSVPath)
	raw, err := os.ReadFile(result.CSVPath)
	require.NoError(t, err)
	assert.Equal(t, "Sample,Voltage\nquartz,200\n", string(raw))

	assert.Equal(t, 1, eln.uploadCalls)
	assert.Equal(t, "TEM session_summary.csv", eln.uploadedName)
	assert.Equal(t, raw, eln.uploadedBody)
	require.NotNil(t, result.File)
	assert.Equal(t, "GL42", result.File.GlobalID)

	assert.Equal(t, "TEM session_summary", eln.createdReq.Name)
	assert.EqualValues(t, 12345, eln.createdReq.ParentFolderID)
	require.Len(t, eln.createdReq.Fields, 1)
	assert.Contains(t, eln.createdReq.Fields[0].Content, "Summary file: <fileId=42>")
	require.NotNil(t, result.Document)
	assert.Equal(t, "SD777", result.Document.GlobalID)
}

func TestPublish_DryRun(t *testing.T) {
	eln := &fakeELN{
		folder: models.Folder{ID: 12345, GlobalID: "NB12345", Name: "TEM session", Notebook: true},
	}

	svc, outputDir := newTestPublishService(t, eln)
	result, err := svc.Publish(context.Background(), "NB12345", testTable(), true)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(outputDir, "TEM session_summary.csv"))
	assert.NoError(t, statErr)

	assert.Zero(t, eln.uploadCalls)
	assert.Nil(t, result.File)
	assert.Nil(t, result.Document)
}

func TestPublish_BadNotebookID(t *testing.T) {
	svc, _ := newTestPublishService(t, &fakeELN{})

	_, err := svc.Publish(context.Background(), "not-an-id", testTable(), false)
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvalidGlobalID)
}

func TestPublish_FolderLookupFails(t *testing.T) {
	eln := &fakeELN{folderErr: assert.AnError}

	svc, _ := newTestPublishService(t, eln)
	_, err := svc.Publish(context.Background(), "NB12345", testTable(), false)

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestPublish_UploadFails(t *testing.T) {
	eln := &fakeELN{
		folder:    models.Folder{ID: 12345, GlobalID: "NB12345", Name: "TEM session", Notebook: true},
		uploadErr: assert.AnError,
	}

	svc, _ := newTestPublishService(t, eln)
	result, err := svc.Publish(context.Background(), "NB12345", testTable(), false)

	require.Error(t, err)
	// the local CSV survives a failed upload
	assert.FileExists(t, result.CSVPath)
}
