package seedmodels

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"naplan-prep/internal/domain"
)

// SeedQuiz defines the structure for a quiz item in the JSON seed file.
type SeedQuiz struct {
	ID          string `json:"quiz_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	DateCreated string `json:"date_created"`
}

// SeedFile is the top-level document of a seed file.
type SeedFile struct {
	Source  string     `json:"source"`
	Quizzes []SeedQuiz `json:"quizzes"`
}

// FileSource serves the quizzes of one seed file as a quiz source.
type FileSource struct {
	name    string
	quizzes []domain.SourceQuiz
}

// Load reads and converts a seed file. Quizzes without an ID or name are rejected.
func Load(path string) (*FileSource, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	var file SeedFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal seed data: %w", err)
	}
	return FromSeedFile(file)
}

// FromSeedFile converts decoded seed data into a source.
func FromSeedFile(file SeedFile) (*FileSource, error) {
	name := strings.TrimSpace(file.Source)
	if name == "" {
		name = "seed"
	}

	quizzes := make([]domain.SourceQuiz, 0, len(file.Quizzes))
	for i, q := range file.Quizzes {
		if strings.TrimSpace(q.ID) == "" || strings.TrimSpace(q.Name) == "" {
			return nil, fmt.Errorf("seed quiz %d: quiz_id and name are required", i)
		}
		status := q.Status
		if status == "" {
			status = "active"
		}
		var created time.Time
		if q.DateCreated != "" {
			t, err := time.Parse(time.RFC3339, q.DateCreated)
			if err != nil {
				return nil, fmt.Errorf("seed quiz %s: invalid date_created: %w", q.ID, err)
			}
			created = t.UTC()
		}
		quizzes = append(quizzes, domain.SourceQuiz{
			ID:          strings.TrimSpace(q.ID),
			Name:        q.Name,
			Status:      status,
			DateCreated: created,
			Source:      name,
		})
	}
	return &FileSource{name: name, quizzes: quizzes}, nil
}

func (s *FileSource) Name() string { return s.name }

func (s *FileSource) FetchQuizzes(ctx context.Context) ([]domain.SourceQuiz, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]domain.SourceQuiz, len(s.quizzes))
	copy(out, s.quizzes)
	return out, nil
}
