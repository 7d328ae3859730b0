package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/elntools/rspace-summary/internal/adapter"
	"github.com/elntools/rspace-summary/internal/config"
	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/models"
)

type publishService struct {
	eln     adapter.ELNAdapter
	summary SummaryService
	cfg     config.Summary
	log     *logger.Logger
}

func NewPublishService(eln adapter.ELNAdapter, summary SummaryService, cfg config.Summary, log *logger.Logger) PublishService {
	return &publishService{
		eln:     eln,
		summary: summary,
		cfg:     cfg,
		log:     log,
	}
}

func (p *publishService) Publish(ctx context.Context, notebookID string, table models.SummaryTable, noUpload bool) (models.PublishResult, error) {
	var result models.PublishResult

	numericID, err := models.NumericID(notebookID)
	if err != nil {
		return result, fmt.Errorf("resolve notebook id %q: %w", notebookID, err)
	}

	notebook, err := p.eln.Folder(ctx, numericID)
	if err != nil {
		return result, fmt.Errorf("get notebook %s: %w", notebookID, err)
	}
	if !notebook.Notebook {
		p.log.Warn().Str("globalId", notebook.GlobalID).Msg("target folder is not a notebook")
	}

	fileName := notebook.Name + "_summary.csv"
	result.CSVPath = filepath.Join(p.cfg.OutputDir, fileName)
	if err = p.summary.WriteCSV(table, result.CSVPath); err != nil {
		return result, fmt.Errorf("write summary csv: %w", err)
	}
	p.log.Info().Str("path", result.CSVPath).Msg("saved summary file")

	if noUpload {
		p.log.Info().Msg("no uploads requested, skipping summary file and document")
		return result, nil
	}

	f, err := os.Open(result.CSVPath)
	if err != nil {
		return result, fmt.Errorf("open summary csv: %w", err)
	}
	defer f.Close()

	info, err := p.eln.UploadFile(ctx, fileName, f)
	if err != nil {
		return result, fmt.Errorf("upload summary file: %w", err)
	}
	result.File = &info
	p.log.Info().Str("globalId", info.GlobalID).Msg("uploaded summary file")

	body := p.summary.RenderHTML(table, info.ID)
	doc, err := p.eln.CreateDocument(ctx, models.NewDocument{
		Name:           strings.TrimSuffix(fileName, ".csv"),
		ParentFolderID: notebook.ID,
		Fields:         []models.NewField{{Content: body}},
	})
	if err != nil {
		return result, fmt.Errorf("create summary document: %w", err)
	}
	result.Document = &doc
	p.log.Info().Str("globalId", doc.GlobalID).Msg("created summary document")

	return result, nil
}
