package catalog

import (
	"sort"

	"naplan-prep/internal/domain"
)

// Result is the outcome of reconciling one snapshot of quiz records.
type Result struct {
	// Quizzes holds every tierable quiz ordered by year level then tier_order.
	Quizzes     []domain.TieredQuiz
	Unparseable []domain.UnparseableQuiz
	Bundles     map[string]*domain.Bundle
	Warnings    []PricingWarning
	// YearErrors holds years whose bundles could not be built.
	YearErrors map[int]error

	Fetched    int
	Duplicates int
	Trials     int
}

// Parsed returns the number of quizzes that took part in tiering.
func (r *Result) Parsed() int {
	return len(r.Quizzes)
}

// BundleIDs returns the produced bundle IDs in sorted order.
func (r *Result) BundleIDs() []string {
	ids := make([]string, 0, len(r.Bundles))
	for id := range r.Bundles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SortedBundles returns the produced bundles ordered by year then tier.
func (r *Result) SortedBundles() []*domain.Bundle {
	bundles := make([]*domain.Bundle, 0, len(r.Bundles))
	for _, b := range r.Bundles {
		bundles = append(bundles, b)
	}
	domain.SortBundles(bundles)
	return bundles
}

// Reconcile parses, tiers and bundles a snapshot of quiz records. Records
// sharing an ID are counted once; the first occurrence wins. The input slice is
// not modified.
func Reconcile(records []domain.SourceQuiz, pricing domain.PricingTable, opts BuildOptions) *Result {
	res := &Result{
		Bundles:    make(map[string]*domain.Bundle),
		YearErrors: make(map[int]error),
		Fetched:    len(records),
	}

	byYear := make(map[int][]domain.ParsedQuiz)
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		if _, dup := seen[rec.ID]; dup {
			res.Duplicates++
			continue
		}
		seen[rec.ID] = struct{}{}

		p := ParseQuizName(rec.ID, rec.Name)
		if !Tierable(p) {
			res.Unparseable = append(res.Unparseable, domain.UnparseableQuiz{
				ID:      rec.ID,
				Name:    rec.Name,
				Missing: MissingForTiering(p),
			})
			continue
		}
		if p.IsTrial {
			res.Trials++
		}
		byYear[*p.YearLevel] = append(byYear[*p.YearLevel], p)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	sort.Ints(years)

	for _, year := range years {
		tiered := AssignTiers(byYear[year])
		res.Quizzes = append(res.Quizzes, tiered...)

		bundles, warnings, err := BuildBundles(year, tiered, pricing, opts)
		if err != nil {
			res.YearErrors[year] = err
			continue
		}
		for id, b := range bundles {
			res.Bundles[id] = b
		}
		res.Warnings = append(res.Warnings, warnings...)
	}
	return res
}
