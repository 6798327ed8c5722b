package quizbank

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"naplan-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

func writeWorkbook(t *testing.T, sheet string, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()
	require.NoError(t, f.SetSheetName("Sheet1", sheet))
	for i, row := range rows {
		axis, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow(sheet, axis, &r))
	}
	path := filepath.Join(t.TempDir(), "bank.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestSource_FetchQuizzes(t *testing.T) {
	path := writeWorkbook(t, "Quizzes", [][]interface{}{
		{"Name", "Quiz_ID", "Status", "Date_Created"},
		{"Year 5 Writing Set 2", "wb-1", "", "2024-05-06"},
		{"Year 5 Spelling Hard", "wb-2", "draft", ""},
		{"No id here", "", "", ""},
	})

	src := NewSource(path, "Quizzes", zap.NewNop())
	assert.Equal(t, SourceName, src.Name())

	quizzes, err := src.FetchQuizzes(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 2)

	assert.Equal(t, domain.SourceQuiz{
		ID:          "wb-1",
		Name:        "Year 5 Writing Set 2",
		Status:      "active",
		DateCreated: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
		Source:      SourceName,
	}, quizzes[0])
	assert.Equal(t, "draft", quizzes[1].Status)
	assert.True(t, quizzes[1].DateCreated.IsZero())
}

func TestSource_DefaultsToFirstSheet(t *testing.T) {
	path := writeWorkbook(t, "Anything", [][]interface{}{
		{"quiz_id", "name"},
		{"x1", "Year 9 Reading"},
	})

	quizzes, err := NewSource(path, "", zap.NewNop()).FetchQuizzes(context.Background())
	require.NoError(t, err)
	require.Len(t, quizzes, 1)
	assert.Equal(t, "x1", quizzes[0].ID)
}

func TestSource_Errors(t *testing.T) {
	_, err := NewSource(filepath.Join(t.TempDir(), "missing.xlsx"), "", zap.NewNop()).FetchQuizzes(context.Background())
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeSourceUnavailable, de.Code)

	path := writeWorkbook(t, "Quizzes", [][]interface{}{{"title"}, {"Year 3 Reading"}})
	_, err = NewSource(path, "Quizzes", zap.NewNop()).FetchQuizzes(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no quiz_id column")
}

func TestWriteBundles(t *testing.T) {
	bundles := []*domain.Bundle{
		{
			BundleID: "year3_a", BundleName: "Year 3 Tier A", YearLevel: 3, Tier: domain.TierA,
			Subjects: []string{"Reading", "Writing"}, PriceCents: 4900, QuizCount: 2,
			QuizIDsOwn: []string{"q1", "q2"}, QuizIDsWithLower: []string{"q1", "q2"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteBundles(&buf, bundles))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(BundleSheet)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "bundle_id", rows[0][0])
	assert.Equal(t, []string{"year3_a", "Year 3 Tier A", "3", "A", "Reading, Writing", "4900", "2", "q1, q2", "q1, q2"}, rows[1])
}
