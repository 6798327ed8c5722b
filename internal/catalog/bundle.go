package catalog

import (
	"fmt"
	"sort"
	"strings"

	"naplan-prep/internal/domain"
)

// DefaultPricingYear is the row used when fallback pricing is enabled.
const DefaultPricingYear = 3

// BuildOptions controls bundle construction.
type BuildOptions struct {
	// FallbackToYear3 prices a year without its own pricing row from the Year 3 row.
	FallbackToYear3 bool
}

// PricingWarning records a price that did not come from the bundle's own year row.
type PricingWarning struct {
	BundleID  string
	YearLevel int
	UsedYear  int
}

func (w PricingWarning) String() string {
	return fmt.Sprintf("%s priced from year %d row (no row for year %d)", w.BundleID, w.UsedYear, w.YearLevel)
}

// BundleID returns the stable key of the bundle for a year and tier.
func BundleID(yearLevel int, tier domain.Tier) string {
	return fmt.Sprintf("year%d_%s", yearLevel, strings.ToLower(string(tier)))
}

// BuildBundles builds one bundle per tier that owns at least one quiz. Input
// quizzes must all belong to yearLevel; trials and untiered quizzes are ignored.
func BuildBundles(yearLevel int, quizzes []domain.TieredQuiz, pricing domain.PricingTable, opts BuildOptions) (map[string]*domain.Bundle, []PricingWarning, error) {
	own := make(map[domain.Tier][]domain.TieredQuiz)
	for _, q := range quizzes {
		if q.IsTrial || q.Tier == nil {
			continue
		}
		own[*q.Tier] = append(own[*q.Tier], q)
	}
	for tier := range own {
		sort.SliceStable(own[tier], func(i, j int) bool {
			return own[tier][i].TierOrder < own[tier][j].TierOrder
		})
	}

	priceYear := yearLevel
	if !pricing.HasYear(yearLevel) {
		if !opts.FallbackToYear3 || !pricing.HasYear(DefaultPricingYear) {
			if len(own) == 0 {
				return map[string]*domain.Bundle{}, nil, nil
			}
			return nil, nil, domain.NewPricingMissingError(yearLevel)
		}
		priceYear = DefaultPricingYear
	}

	bundles := make(map[string]*domain.Bundle)
	var warnings []PricingWarning
	var accumulated []domain.TieredQuiz

	for _, tier := range domain.Tiers {
		tierQuizzes := own[tier]
		accumulated = append(accumulated, tierQuizzes...)
		if len(tierQuizzes) == 0 {
			continue
		}

		price, ok := pricing.Price(priceYear, tier)
		if !ok {
			return nil, nil, domain.NewPricingMissingError(yearLevel).WithContext("tier", string(tier))
		}

		id := BundleID(yearLevel, tier)
		withLower := quizIDs(accumulated)
		subjects := distinctSubjects(accumulated)
		bundles[id] = &domain.Bundle{
			BundleID:         id,
			BundleName:       fmt.Sprintf("Year %d Tier %s", yearLevel, tier),
			Description:      describe(yearLevel, tier, len(tierQuizzes), len(withLower), subjects),
			YearLevel:        yearLevel,
			Subjects:         subjects,
			Tier:             tier,
			QuizIDsOwn:       quizIDs(tierQuizzes),
			QuizIDsWithLower: withLower,
			PriceCents:       price,
			IsActive:         true,
			QuizCount:        len(withLower),
		}
		if priceYear != yearLevel {
			warnings = append(warnings, PricingWarning{BundleID: id, YearLevel: yearLevel, UsedYear: priceYear})
		}
	}
	return bundles, warnings, nil
}

func quizIDs(quizzes []domain.TieredQuiz) []string {
	ids := make([]string, len(quizzes))
	for i, q := range quizzes {
		ids[i] = q.ID
	}
	return ids
}

func distinctSubjects(quizzes []domain.TieredQuiz) []string {
	seen := make(map[string]struct{})
	var subjects []string
	for _, q := range quizzes {
		name := q.SubjectName()
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		subjects = append(subjects, name)
	}
	sort.Strings(subjects)
	return subjects
}

func describe(yearLevel int, tier domain.Tier, ownCount, totalCount int, subjects []string) string {
	desc := fmt.Sprintf("Year %d tier %s practice: %d quizzes covering %s.",
		yearLevel, tier, ownCount, strings.Join(subjects, ", "))
	if totalCount > ownCount {
		desc += fmt.Sprintf(" %d quizzes when lower tiers are included.", totalCount)
	}
	return desc
}
