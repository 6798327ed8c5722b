package catalog

import (
	"math/rand"
	"testing"

	"naplan-prep/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tierPtr(t domain.Tier) *domain.Tier { return &t }

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		input string
		want  *domain.Tier
	}{
		{"Year 3 Reading", tierPtr(domain.TierA)},
		{"Year 3 Reading Set 1", tierPtr(domain.TierA)},
		{"Year 3 Reading Set 2", tierPtr(domain.TierB)},
		{"Year 3 Writing Set 4", tierPtr(domain.TierB)},
		{"Year 5 Numeracy Easy", tierPtr(domain.TierB)},
		{"Year 5 Numeracy Medium Set 2", tierPtr(domain.TierB)},
		{"Year 5 Numeracy Hard", tierPtr(domain.TierC)},
		{"Year 5 Geometry Hard Set 3", tierPtr(domain.TierC)},
		{"Year 7 Number and Algebra", tierPtr(domain.TierB)},
		{"Year 9 Reading Trial", nil},
		{"Year 9 Reading Hard Sample", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ClassifyTier(ParseQuizName("x", tt.input))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortForTiering(t *testing.T) {
	in := []domain.ParsedQuiz{
		ParseQuizName("topic", "Year 3 Measurement"),
		ParseQuizName("writing-2", "Year 3 Writing Set 2"),
		ParseQuizName("reading-2", "Year 3 Reading Set 2"),
		ParseQuizName("reading-1", "Year 3 Reading"),
		ParseQuizName("hard-1", "Year 3 Spelling Hard"),
	}

	sorted := SortForTiering(in)

	ids := make([]string, len(sorted))
	for i, p := range sorted {
		ids[i] = p.ID
	}
	// full-length by set then subject, followed by the rest by set then subject
	assert.Equal(t, []string{"reading-1", "reading-2", "writing-2", "hard-1", "topic"}, ids)
	assert.Equal(t, "topic", in[0].ID, "input must not be reordered")
}

func TestAssignTiers_TierOrder(t *testing.T) {
	quizzes := []domain.ParsedQuiz{
		ParseQuizName("q1", "Year 5 Reading Set 2"),
		ParseQuizName("q2", "Year 5 Reading"),
		ParseQuizName("q3", "Year 5 Reading Trial"),
		ParseQuizName("q4", "Year 5 Numeracy Hard"),
	}

	tiered := AssignTiers(quizzes)
	require.Len(t, tiered, 4)

	for i, q := range tiered {
		assert.Equal(t, i+1, q.TierOrder)
	}
	assert.Equal(t, "q2", tiered[0].ID)
	assert.Equal(t, domain.TierA, *tiered[0].Tier)
	assert.Equal(t, "q1", tiered[1].ID)
	assert.Equal(t, domain.TierB, *tiered[1].Tier)

	var trial *domain.TieredQuiz
	for i := range tiered {
		if tiered[i].ID == "q3" {
			trial = &tiered[i]
		}
	}
	require.NotNil(t, trial)
	assert.Nil(t, trial.Tier)
	assert.Positive(t, trial.TierOrder)
}

func TestAssignTiers_IndependentOfInputOrder(t *testing.T) {
	names := []string{
		"Year 7 Reading",
		"Year 7 Reading Set 2",
		"Year 7 Writing Set 2",
		"Year 7 Grammar Set 2",
		"Year 7 Numeracy Hard",
		"Year 7 Numeracy Hard",
		"Year 7 Statistics Easy Set 3",
		"Year 7 Free Trial",
	}
	base := make([]domain.ParsedQuiz, len(names))
	for i, n := range names {
		base[i] = ParseQuizName(string(rune('a'+i)), n)
	}
	want := AssignTiers(base)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := make([]domain.ParsedQuiz, len(base))
		copy(shuffled, base)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, want, AssignTiers(shuffled))
	}
}

func TestAssignTiers_Empty(t *testing.T) {
	assert.Empty(t, AssignTiers(nil))
}
