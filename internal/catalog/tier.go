package catalog

import (
	"sort"

	"naplan-prep/internal/domain"
)

// ClassifyTier applies the tier rules to one quiz. Trials get no tier.
func ClassifyTier(p domain.ParsedQuiz) *domain.Tier {
	var t domain.Tier
	switch {
	case p.IsTrial:
		return nil
	case p.IsFullLength && p.SetNumber <= 1:
		t = domain.TierA
	case p.IsFullLength:
		t = domain.TierB
	case p.Difficulty != nil && *p.Difficulty == domain.DifficultyHard:
		t = domain.TierC
	default:
		// easy, medium and topic quizzes without a difficulty
		t = domain.TierB
	}
	return &t
}

// SortForTiering orders quizzes full-length first, then by set number, then by
// subject name. The quiz ID breaks remaining ties so the order never depends on
// the input order.
func SortForTiering(quizzes []domain.ParsedQuiz) []domain.ParsedQuiz {
	sorted := make([]domain.ParsedQuiz, len(quizzes))
	copy(sorted, quizzes)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.IsFullLength != b.IsFullLength {
			return a.IsFullLength
		}
		if a.SetNumber != b.SetNumber {
			return a.SetNumber < b.SetNumber
		}
		if a.SubjectName() != b.SubjectName() {
			return a.SubjectName() < b.SubjectName()
		}
		return a.ID < b.ID
	})
	return sorted
}

// AssignTiers tiers all quizzes of one year level. Every quiz, trials included,
// receives a 1-based tier_order following SortForTiering.
func AssignTiers(quizzes []domain.ParsedQuiz) []domain.TieredQuiz {
	sorted := SortForTiering(quizzes)
	tiered := make([]domain.TieredQuiz, len(sorted))
	for i, p := range sorted {
		tiered[i] = domain.TieredQuiz{
			ParsedQuiz: p,
			Tier:       ClassifyTier(p),
			TierOrder:  i + 1,
		}
	}
	return tiered
}
