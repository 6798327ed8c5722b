package domain

import (
	"context"
	"time"
)

// SyncStatus is the outcome of a catalog sync run.
type SyncStatus string

const (
	SyncRunning   SyncStatus = "running"
	SyncSucceeded SyncStatus = "succeeded"
	SyncFailed    SyncStatus = "failed"
)

// SyncRun summarises one execution of the catalog sync.
type SyncRun struct {
	ID                 string
	StartedAt          time.Time
	FinishedAt         *time.Time
	Status             SyncStatus
	QuizzesFetched     int
	QuizzesParsed      int
	QuizzesUnparseable int
	QuizzesTrial       int
	BundlesUpserted    int
	BundlesDeactivated int
	PricingWarnings    []string
	Unparseable        []UnparseableQuiz
	Error              string
}

// QuizSource delivers raw quiz records from one upstream system.
type QuizSource interface {
	Name() string
	FetchQuizzes(ctx context.Context) ([]SourceQuiz, error)
}

// SyncService reconciles the quiz catalog and bundles with the quiz sources.
type SyncService interface {
	Run(ctx context.Context) (*SyncRun, error)
}
