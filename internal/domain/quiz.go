package domain

import (
	"sort"
	"strings"
	"time"
)

// Subject is one of the four NAPLAN test domains.
type Subject string

const (
	SubjectReading     Subject = "Reading"
	SubjectWriting     Subject = "Writing"
	SubjectMaths       Subject = "Maths"
	SubjectConventions Subject = "Conventions"
)

// Difficulty is the optional difficulty marker in a quiz name.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// Tier groups quizzes into purchasable bundles. A < B < C.
type Tier string

const (
	TierA Tier = "A"
	TierB Tier = "B"
	TierC Tier = "C"
)

// Tiers lists every tier from lowest to highest.
var Tiers = []Tier{TierA, TierB, TierC}

// Rank returns the position of the tier, 0 for unknown values.
func (t Tier) Rank() int {
	switch t {
	case TierA:
		return 1
	case TierB:
		return 2
	case TierC:
		return 3
	default:
		return 0
	}
}

// Valid reports whether t is one of A, B or C.
func (t Tier) Valid() bool {
	return t.Rank() > 0
}

// ParseTier accepts "a", "A", "tier_a" style inputs.
func ParseTier(s string) (Tier, bool) {
	s = strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(s)), "TIER_")
	t := Tier(s)
	return t, t.Valid()
}

// ValidYearLevels are the NAPLAN year levels.
var ValidYearLevels = []int{3, 5, 7, 9}

// IsValidYearLevel reports whether year is a NAPLAN year level.
func IsValidYearLevel(year int) bool {
	for _, y := range ValidYearLevels {
		if y == year {
			return true
		}
	}
	return false
}

// SourceQuiz is a raw quiz record as delivered by a quiz source.
type SourceQuiz struct {
	ID          string
	Name        string
	Status      string
	DateCreated time.Time
	Source      string
}

// ParsedQuiz is the structured reading of a quiz name. Nil fields were not found.
type ParsedQuiz struct {
	ID           string
	Name         string
	YearLevel    *int
	Subject      *Subject
	Difficulty   *Difficulty
	SetNumber    int
	IsFullLength bool
	IsTrial      bool
}

const (
	MissingYearLevel = "year_level"
	MissingSubject   = "subject"
)

// MissingFields lists the attributes required for tiering that the parser could not find.
func (p ParsedQuiz) MissingFields() []string {
	var missing []string
	if p.YearLevel == nil {
		missing = append(missing, MissingYearLevel)
	}
	if p.Subject == nil {
		missing = append(missing, MissingSubject)
	}
	return missing
}

// Parseable reports whether the quiz can take part in tiering.
func (p ParsedQuiz) Parseable() bool {
	return p.YearLevel != nil && p.Subject != nil
}

// SubjectName returns the subject or "" when unknown.
func (p ParsedQuiz) SubjectName() string {
	if p.Subject == nil {
		return ""
	}
	return string(*p.Subject)
}

// TieredQuiz is a parsed quiz with its tier assignment. Tier is nil for trials.
type TieredQuiz struct {
	ParsedQuiz
	Tier      *Tier
	TierOrder int
}

// UnparseableQuiz is reported when a quiz name lacks a year level or subject.
type UnparseableQuiz struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Missing []string `json:"missing"`
}

// Quiz is the persisted catalog entry for one quiz.
type Quiz struct {
	ID           string
	Name         string
	Source       string
	Status       string
	YearLevel    *int
	Subject      *Subject
	Difficulty   *Difficulty
	SetNumber    int
	IsFullLength bool
	IsTrial      bool
	Tier         *Tier
	TierOrder    int
	IsActive     bool
	ParseError   string
	DateCreated  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Bundle is a purchasable grouping of quizzes for one year level and tier.
type Bundle struct {
	BundleID         string
	BundleName       string
	Description      string
	YearLevel        int
	Subjects         []string
	Tier             Tier
	QuizIDsOwn       []string
	QuizIDsWithLower []string
	PriceCents       int64
	IsActive         bool
	QuizCount        int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// EntitledQuizIDs returns the quiz ids a purchase of b grants.
func (b *Bundle) EntitledQuizIDs(includeLower bool) []string {
	src := b.QuizIDsOwn
	if includeLower {
		src = b.QuizIDsWithLower
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// SortBundles orders bundles by year level then tier.
func SortBundles(bundles []*Bundle) {
	sort.SliceStable(bundles, func(i, j int) bool {
		if bundles[i].YearLevel != bundles[j].YearLevel {
			return bundles[i].YearLevel < bundles[j].YearLevel
		}
		return bundles[i].Tier.Rank() < bundles[j].Tier.Rank()
	})
}

// PricingTable maps year level to per-tier prices in cents.
type PricingTable map[int]map[Tier]int64

// Price returns the price for a year and tier.
func (p PricingTable) Price(yearLevel int, tier Tier) (int64, bool) {
	row, ok := p[yearLevel]
	if !ok {
		return 0, false
	}
	price, ok := row[tier]
	return price, ok
}

// HasYear reports whether a pricing row exists for the year.
func (p PricingTable) HasYear(yearLevel int) bool {
	_, ok := p[yearLevel]
	return ok
}
