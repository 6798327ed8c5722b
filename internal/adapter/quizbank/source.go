package quizbank

import (
	"context"
	"fmt"
	"strings"
	"time"

	"naplan-prep/internal/domain"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// SourceName tags quizzes read from the admin workbook.
const SourceName = "quizbank"

// Header names recognised in the first row, case-insensitively.
const (
	colID          = "quiz_id"
	colName        = "name"
	colStatus      = "status"
	colDateCreated = "date_created"
)

// Source reads quiz records from an XLSX workbook maintained by admins.
// It implements domain.QuizSource.
type Source struct {
	path   string
	sheet  string
	logger *zap.Logger
}

// NewSource creates a workbook source. An empty sheet means the first sheet.
func NewSource(path, sheet string, logger *zap.Logger) *Source {
	return &Source{path: path, sheet: sheet, logger: logger}
}

// Name implements domain.QuizSource
func (s *Source) Name() string {
	return SourceName
}

// FetchQuizzes implements domain.QuizSource
func (s *Source) FetchQuizzes(ctx context.Context) ([]domain.SourceQuiz, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(SourceName, fmt.Errorf("open %s: %w", s.path, err))
	}
	defer func() { _ = f.Close() }()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, domain.NewSourceUnavailableError(SourceName, fmt.Errorf("read sheet %q: %w", sheet, err))
	}
	if len(rows) == 0 {
		return []domain.SourceQuiz{}, nil
	}

	cols := headerIndex(rows[0])
	idCol, ok := cols[colID]
	if !ok {
		return nil, domain.NewSourceUnavailableError(SourceName, fmt.Errorf("sheet %q has no %s column", sheet, colID))
	}
	nameCol, ok := cols[colName]
	if !ok {
		return nil, domain.NewSourceUnavailableError(SourceName, fmt.Errorf("sheet %q has no %s column", sheet, colName))
	}

	quizzes := make([]domain.SourceQuiz, 0, len(rows)-1)
	for i, row := range rows[1:] {
		id := cell(row, idCol)
		if id == "" {
			if strings.Join(row, "") != "" {
				s.logger.Warn("Skipping quiz bank row without quiz_id", zap.Int("row", i+2))
			}
			continue
		}
		q := domain.SourceQuiz{
			ID:     id,
			Name:   cell(row, nameCol),
			Status: "active",
			Source: SourceName,
		}
		if c, ok := cols[colStatus]; ok && cell(row, c) != "" {
			q.Status = cell(row, c)
		}
		if c, ok := cols[colDateCreated]; ok {
			q.DateCreated = parseDate(cell(row, c))
		}
		quizzes = append(quizzes, q)
	}

	s.logger.Info("Read quizzes from quiz bank", zap.String("path", s.path), zap.Int("count", len(quizzes)))
	return quizzes, nil
}

func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		if _, dup := idx[key]; !dup {
			idx[key] = i
		}
	}
	return idx
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func parseDate(s string) time.Time {
	for _, layout := range []string{"2006-01-02", time.RFC3339, "2006-01-02 15:04:05", "01-02-06"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
