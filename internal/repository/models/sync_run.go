package models

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"time"
)

// UnparseableEntry mirrors one entry of the stored unparseable report.
type UnparseableEntry struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Missing []string `json:"missing"`
}

// UnparseableList stores the unparseable report as JSON text.
type UnparseableList []UnparseableEntry

// Value implements the driver.Valuer interface
func (l UnparseableList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements the sql.Scanner interface
func (l *UnparseableList) Scan(value interface{}) error {
	return scanJSON(value, l, func() { *l = UnparseableList{} })
}

// SyncRun is the sync_runs row.
type SyncRun struct {
	ID                 string          `db:"id"`
	StartedAt          time.Time       `db:"started_at"`
	FinishedAt         sql.NullTime    `db:"finished_at"`
	Status             string          `db:"status"`
	QuizzesFetched     int             `db:"quizzes_fetched"`
	QuizzesParsed      int             `db:"quizzes_parsed"`
	QuizzesUnparseable int             `db:"quizzes_unparseable"`
	QuizzesTrial       int             `db:"quizzes_trial"`
	BundlesUpserted    int             `db:"bundles_upserted"`
	BundlesDeactivated int             `db:"bundles_deactivated"`
	PricingWarnings    StringSlice     `db:"pricing_warnings"`
	Unparseable        UnparseableList `db:"unparseable"`
	ErrorMessage       sql.NullString  `db:"error_message"`
}
