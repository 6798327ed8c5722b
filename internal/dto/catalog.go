package dto

import (
	"time"

	"naplan-prep/internal/domain"
)

// BundleResponse represents a purchasable bundle in the API response
// @Description Bundle information
type BundleResponse struct {
	BundleID         string   `json:"bundle_id"`
	BundleName       string   `json:"bundle_name"`
	Description      string   `json:"description"`
	YearLevel        int      `json:"year_level"`
	Tier             string   `json:"tier"`
	Subjects         []string `json:"subjects"`
	QuizIDsOwn       []string `json:"quiz_ids_own"`
	QuizIDsWithLower []string `json:"quiz_ids_with_lower"`
	QuizCount        int      `json:"quiz_count"`
	PriceCents       int64    `json:"price_cents"`
	IsActive         bool     `json:"is_active"`
}

// BundleListResponse wraps a list of bundles.
type BundleListResponse struct {
	Bundles []BundleResponse `json:"bundles"`
	Count   int              `json:"count"`
}

// NewBundleResponse converts a domain bundle.
func NewBundleResponse(b *domain.Bundle) BundleResponse {
	return BundleResponse{
		BundleID:         b.BundleID,
		BundleName:       b.BundleName,
		Description:      b.Description,
		YearLevel:        b.YearLevel,
		Tier:             string(b.Tier),
		Subjects:         nonNil(b.Subjects),
		QuizIDsOwn:       nonNil(b.QuizIDsOwn),
		QuizIDsWithLower: nonNil(b.QuizIDsWithLower),
		QuizCount:        b.QuizCount,
		PriceCents:       b.PriceCents,
		IsActive:         b.IsActive,
	}
}

// NewBundleListResponse converts a list of domain bundles.
func NewBundleListResponse(bundles []*domain.Bundle) BundleListResponse {
	out := make([]BundleResponse, len(bundles))
	for i, b := range bundles {
		out[i] = NewBundleResponse(b)
	}
	return BundleListResponse{Bundles: out, Count: len(out)}
}

// SyncRunResponse summarises a catalog sync.
// @Description Catalog sync summary
type SyncRunResponse struct {
	ID                 string     `json:"id"`
	Status             string     `json:"status"`
	StartedAt          time.Time  `json:"started_at"`
	FinishedAt         *time.Time `json:"finished_at,omitempty"`
	QuizzesFetched     int        `json:"quizzes_fetched"`
	QuizzesParsed      int        `json:"quizzes_parsed"`
	QuizzesUnparseable int        `json:"quizzes_unparseable"`
	QuizzesTrial       int        `json:"quizzes_trial"`
	BundlesUpserted    int        `json:"bundles_upserted"`
	BundlesDeactivated int        `json:"bundles_deactivated"`
	PricingWarnings    []string   `json:"pricing_warnings"`
	Error              string     `json:"error,omitempty"`
}

// NewSyncRunResponse converts a domain sync run.
func NewSyncRunResponse(run *domain.SyncRun) SyncRunResponse {
	return SyncRunResponse{
		ID:                 run.ID,
		Status:             string(run.Status),
		StartedAt:          run.StartedAt,
		FinishedAt:         run.FinishedAt,
		QuizzesFetched:     run.QuizzesFetched,
		QuizzesParsed:      run.QuizzesParsed,
		QuizzesUnparseable: run.QuizzesUnparseable,
		QuizzesTrial:       run.QuizzesTrial,
		BundlesUpserted:    run.BundlesUpserted,
		BundlesDeactivated: run.BundlesDeactivated,
		PricingWarnings:    nonNil(run.PricingWarnings),
		Error:              run.Error,
	}
}

// UnparseableResponse lists quizzes left out of the catalog by the latest sync.
type UnparseableResponse struct {
	Quizzes []domain.UnparseableQuiz `json:"quizzes"`
	Count   int                      `json:"count"`
}

// ParseQuizzesRequest asks for a dry run of the name parser.
type ParseQuizzesRequest struct {
	Names []string `json:"names" validate:"min=1,max=200,dive,notblank"`
}

// ParsePreviewResponse is the parser result for one name.
type ParsePreviewResponse struct {
	Name         string   `json:"name"`
	YearLevel    *int     `json:"year_level"`
	Subject      *string  `json:"subject"`
	Difficulty   *string  `json:"difficulty"`
	SetNumber    int      `json:"set_number"`
	IsFullLength bool     `json:"is_full_length"`
	IsTrial      bool     `json:"is_trial"`
	Tierable     bool     `json:"tierable"`
	Missing      []string `json:"missing"`
	Tier         *string  `json:"tier"`
}

// ParseQuizzesResponse wraps parser previews.
type ParseQuizzesResponse struct {
	Results []ParsePreviewResponse `json:"results"`
}

// NewParsePreviewResponse converts one parser preview.
func NewParsePreviewResponse(name string, p domain.ParsedQuiz, tierable bool, missing []string, tier *domain.Tier) ParsePreviewResponse {
	return ParsePreviewResponse{
		Name:         name,
		YearLevel:    p.YearLevel,
		Subject:      stringPtr(p.Subject),
		Difficulty:   stringPtr(p.Difficulty),
		SetNumber:    p.SetNumber,
		IsFullLength: p.IsFullLength,
		IsTrial:      p.IsTrial,
		Tierable:     tierable,
		Missing:      nonNil(missing),
		Tier:         stringPtr(tier),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func stringPtr[T ~string](v *T) *string {
	if v == nil {
		return nil
	}
	s := string(*v)
	return &s
}
