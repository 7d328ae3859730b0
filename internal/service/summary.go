package service

import (
	"context"
	"encoding/csv"
	"fmt"
	"html"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/elntools/rspace-summary/internal/adapter"
	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/models"
)

// searchPageSize is the advanced-query page size. RSpace caps pages at 100;
// 20 keeps individual responses small.
const searchPageSize = 20

type summaryService struct {
	eln      adapter.ELNAdapter
	form     FormService
	cfg      config.Summary
	dateFrom time.Time
	log      *logger.Logger
}

func NewSummaryService(eln adapter.ELNAdapter, form FormService, cfg config.Summary, log *logger.Logger) SummaryService {
	// cfg is validated at startup; fall back anyway so a zero value cannot
	// produce an empty date term.
	dateFrom, err := time.Parse("2006-01-02", cfg.DateFrom)
	if err != nil {
		dateFrom = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	}

	return &summaryService{
		eln:      eln,
		form:     form,
		cfg:      cfg,
		dateFrom: dateFrom,
		log:      log,
	}
}

func (s *summaryService) Collect(ctx context.Context, notebookID, formID string) ([]models.FormRecord, error) {
	query := models.NewSearchQuery(models.OperatorAnd,
		models.CreatedBetween(s.dateFrom, time.Now()),
		models.InRecord(notebookID),
		models.FromForm(formID),
	)

	opts := ParseOptions{
		KeyColumn:   s.cfg.KeyColumn,
		ValueColumn: s.cfg.ValueColumn,
		KeepHeader:  s.cfg.KeepHeader,
	}

	var records []models.FormRecord
	for page := 0; ; page++ {
		list, err := s.eln.SearchDocuments(ctx, query, page, searchPageSize)
		if err != nil {
			return nil, fmt.Errorf("search documents: %w", err)
		}

		if page == 0 {
			s.log.Info().
				Str("notebook", notebookID).
				Str("form", formID).
				Int64("totalHits", list.TotalHits).
				Msg("found documents")
		}

		for _, doc := range list.Documents {
			raw, err := s.eln.DocumentCSV(ctx, doc.ID)
			if err != nil {
				return nil, fmt.Errorf("get csv for document %s: %w", doc.GlobalID, err)
			}

			fields, err := s.form.ParseDocumentCSV(raw, opts)
			if err != nil {
				return nil, fmt.Errorf("parse document %s: %w", doc.GlobalID, err)
			}

			records = append(records, models.FormRecord{
				DocumentID: doc.ID,
				GlobalID:   doc.GlobalID,
				Name:       doc.Name,
				Fields:     fields,
			})
		}

		if len(list.Documents) == 0 || int64(len(records)) >= list.TotalHits {
			break
		}
	}

	return records, nil
}

func (s *summaryService) Build(records []models.FormRecord, sortField string) models.SummaryTable {
	columnIndex := make(map[string]int)
	var columns []string
	for _, rec := range records {
		for _, f := range rec.Fields {
			if _, ok := columnIndex[f.Name]; !ok {
				columnIndex[f.Name] = len(columns)
				columns = append(columns, f.Name)
			}
		}
	}

	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		row := make([]string, len(columns))
		for _, f := range rec.Fields {
			row[columnIndex[f.Name]] = f.Value
		}
		rows = append(rows, row)
	}

	if sortField != "" {
		idx, ok := columnIndex[sortField]
		if !ok {
			s.log.Error().
				Str("sortField", sortField).
				Strs("columns", columns).
				Msg("sort field is not a summary column, leaving order unchanged")
		} else {
			sort.SliceStable(rows, func(i, j int) bool {
				return rows[i][idx] < rows[j][idx]
			})
		}
	}

	return models.SummaryTable{Columns: columns, Rows: rows}
}

func (s *summaryService) RenderHTML(table models.SummaryTable, fileID int64) string {
	var b strings.Builder
	b.WriteString("<h1>Summary table</h1>\n")

	b.WriteString("<table>\n<tr>")
	for _, col := range table.Columns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col))
		b.WriteString("</th>")
	}
	b.WriteString("</tr>\n")

	for _, row := range table.Rows {
		b.WriteString("<tr>")
		for _, cell := range row {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(cell))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")

	if fileID == 0 {
		b.WriteString("\nNo summary file was uploaded to RSpace")
	} else {
		fmt.Fprintf(&b, "\nSummary file: <fileId=%d>", fileID)
	}

	return b.String()
}

func (s *summaryService) WriteCSV(table models.SummaryTable, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create summary file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err = w.Write(table.Columns); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, row := range table.Rows {
		if err = w.Write(row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	w.Flush()
	if err = w.Error(); err != nil {
		return fmt.Errorf("flush summary file: %w", err)
	}
	return nil
}
