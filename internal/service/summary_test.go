package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/models"
)

func testSummaryConfig() config.Summary {
	return config.Summary{
		KeyColumn:   2,
		ValueColumn: 5,
		OutputDir:   ".",
		DateFrom:    "2020-01-01",
	}
}

func newTestSummaryService(eln *fakeELN) SummaryService {
	log := logger.Nop()
	return NewSummaryService(eln, NewFormService(log), testSummaryConfig(), log)
}

// ── Collect ─────────────────────────────────────────────────────────────────

func TestCollect_Paginates(t *testing.T) {
	eln := &fakeELN{
		pages: []models.DocumentList{
			{
				Documents: []models.DocumentInfo{
					{ID: 1, GlobalID: "SD1", Name: "entry 1"},
					{ID: 2, GlobalID: "SD2", Name: "entry 2"},
				},
				TotalHits:  3,
				PageNumber: 0,
			},
			{
				Documents:  []models.DocumentInfo{{ID: 3, GlobalID: "SD3", Name: "entry 3"}},
				TotalHits:  3,
				PageNumber: 1,
			},
		},
		csv: map[int64]string{
			1: "ID,GlobalID,name,type,lastModified,content\n10,FD10,Sample,string,2026-01-01,quartz\n",
			2: "ID,GlobalID,name,type,lastModified,content\n11,FD11,Sample,string,2026-01-02,calcite\n",
			3: "ID,GlobalID,name,type,lastModified,content\n12,FD12,Sample,string,2026-01-03,olivine\n",
		},
	}

	svc := newTestSummaryService(eln)
	records, err := svc.Collect(context.Background(), "NB12345", "FM122")

	require.NoError(t, err)
	assert.Equal(t, 2, eln.searchCalls)
	require.Len(t, records, 3)
	assert.Equal(t, "SD2", records[1].GlobalID)
	assert.Equal(t, "entry 2", records[1].Name)
	value, ok := records[2].Value("Sample")
	require.True(t, ok)
	assert.Equal(t, "olivine", value)
}

func TestCollect_NoMatches(t *testing.T) {
	eln := &fakeELN{pages: []models.DocumentList{{TotalHits: 0}}}

	svc := newTestSummaryService(eln)
	records, err := svc.Collect(context.Background(), "NB12345", "FM122")

	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, 1, eln.searchCalls)
}

func TestCollect_SearchError(t *testing.T) {
	eln := &fakeELN{searchErr: assert.AnError}

	svc := newTestSummaryService(eln)
	_, err := svc.Collect(context.Background(), "NB12345", "FM122")

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// ── Build ───────────────────────────────────────────────────────────────────

func buildRecords() []models.FormRecord {
	return []models.FormRecord{
		{GlobalID: "SD1", Fields: []models.FormField{
			{Name: "Sample", Value: "quartz"},
			{Name: "Voltage", Value: "300"},
		}},
		{GlobalID: "SD2", Fields: []models.FormField{
			{Name: "Sample", Value: "calcite"},
			{Name: "Voltage", Value: "200"},
			{Name: "Comment", Value: "weak signal"},
		}},
	}
}

func TestBuild_UnionColumnsInFirstSeenOrder(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	table := svc.Build(buildRecords(), "")

	assert.Equal(t, []string{"Sample", "Voltage", "Comment"}, table.Columns)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"quartz", "300", ""}, table.Rows[0])
	assert.Equal(t, []string{"calcite", "200", "weak signal"}, table.Rows[1])
}

func TestBuild_SortsByField(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	table := svc.Build(buildRecords(), "Voltage")

	assert.Equal(t, []string{"calcite", "200", "weak signal"}, table.Rows[0])
	assert.Equal(t, []string{"quartz", "300", ""}, table.Rows[1])
}

func TestBuild_UnknownSortFieldKeepsOrder(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	table := svc.Build(buildRecords(), "Current")

	assert.Equal(t, []string{"quartz", "300", ""}, table.Rows[0])
}

func TestBuild_NoRecords(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	table := svc.Build(nil, "")

	assert.Empty(t, table.Columns)
	assert.Empty(t, table.Rows)
}

// ── RenderHTML / WriteCSV ───────────────────────────────────────────────────

func TestRenderHTML(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	table := models.SummaryTable{
		Columns: []string{"Sample", "Comment"},
		Rows:    [][]string{{"quartz", "<b>fine</b>"}},
	}

	body := svc.RenderHTML(table, 42)

	assert.Contains(t, body, "<h1>Summary table</h1>")
	assert.Contains(t, body, "<th>Sample</th>")
	assert.Contains(t, body, "&lt;b&gt;fine&lt;/b&gt;")
	assert.Contains(t, body, "Summary file: <fileId=42>")
	assert.NotContains(t, body, "<b>fine</b>")
}

func TestRenderHTML_NoFile(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	body := svc.RenderHTML(models.SummaryTable{}, 0)

	assert.Contains(t, body, "No summary file was uploaded")
	assert.NotContains(t, body, "fileId=")
}

func TestWriteCSV(t *testing.T) {
	svc := newTestSummaryService(&fakeELN{})

	table := models.SummaryTable{
		Columns: []string{"Sample", "Voltage"},
		Rows:    [][]string{{"quartz", "200"}},
	}

	path := filepath.Join(t.TempDir(), "out.csv")
	require.NoError(t, svc.WriteCSV(table, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Sample,Voltage\nquartz,200\n", string(raw))
}
