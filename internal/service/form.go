package service

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/elntools/rspace-summary/internal/logger"
	"github.com/elntools/rspace-summary/models"
)

type formService struct {
	log *logger.Logger
}

func NewFormService(log *logger.Logger) FormService {
	return &formService{log: log}
}

func (s *formService) ParseDocumentCSV(raw string, opts ParseOptions) ([]models.FormField, error) {
	reader := csv.NewReader(strings.NewReader(raw))
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read document csv: %w", err)
	}

	if !opts.KeepHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	need := opts.KeyColumn
	if opts.ValueColumn > need {
		need = opts.ValueColumn
	}

	fields := make([]models.FormField, 0, len(rows))
	for i, row := range rows {
		if need >= len(row) {
			return nil, fmt.Errorf("document csv row %d has %d columns, need at least %d", i, len(row), need+1)
		}
		fields = append(fields, models.FormField{
			Name:  row[opts.KeyColumn],
			Value: row[opts.ValueColumn],
		})
	}

	s.log.Debug().Int("fields", len(fields)).Msg("parsed document csv")
	return fields, nil
}
