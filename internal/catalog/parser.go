// Package catalog turns raw quiz names into tiered quizzes and priced bundles.
// Everything here is a pure function over its inputs; persistence belongs to callers.
package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"naplan-prep/internal/domain"
)

var (
	yearPattern       = regexp.MustCompile(`(?i)(?:year|grade)\s*(\d+)`)
	difficultyPattern = regexp.MustCompile(`(?i)\b(easy|medium|hard)\b`)
	setPattern        = regexp.MustCompile(`(?i)set\s*(\d+)`)
	trialPattern      = regexp.MustCompile(`(?i)trial|trail|sample|demo|free`)
	topicPattern      = regexp.MustCompile(`(?i)number\s*(?:&|and)\s*algebra|statistics|probability|measurement|geometry|data`)
)

// subjectRules are checked in order; the first hit wins.
var subjectRules = []struct {
	subject domain.Subject
	pattern *regexp.Regexp
}{
	{domain.SubjectWriting, regexp.MustCompile(`(?i)writing`)},
	{domain.SubjectReading, regexp.MustCompile(`(?i)reading`)},
	{domain.SubjectMaths, regexp.MustCompile(`(?i)numeracy|math|number\s*(?:&|and)\s*algebra|statistics|probability|measurement|geometry|data`)},
	{domain.SubjectConventions, regexp.MustCompile(`(?i)grammar|punctuation|spelling|convention|language`)},
}

// ParseQuizName extracts year level, subject, difficulty, set number and the
// full-length/trial flags from a free-text quiz name.
func ParseQuizName(id, name string) domain.ParsedQuiz {
	p := domain.ParsedQuiz{
		ID:        id,
		Name:      name,
		SetNumber: 1,
	}

	if m := yearPattern.FindStringSubmatch(name); m != nil {
		if year, err := strconv.Atoi(m[1]); err == nil && domain.IsValidYearLevel(year) {
			p.YearLevel = &year
		}
	}

	if m := difficultyPattern.FindStringSubmatch(name); m != nil {
		d := domain.Difficulty(strings.ToLower(m[1]))
		p.Difficulty = &d
	}

	if m := setPattern.FindStringSubmatch(name); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n > 0 {
			p.SetNumber = n
		}
	}

	p.IsTrial = trialPattern.MatchString(name)

	for _, rule := range subjectRules {
		if rule.pattern.MatchString(name) {
			s := rule.subject
			p.Subject = &s
			break
		}
	}

	p.IsFullLength = p.Difficulty == nil && !topicPattern.MatchString(name) && !p.IsTrial
	return p
}

// Tierable reports whether a parsed quiz can take part in tiering. Trials only
// need a year level since they never receive a tier.
func Tierable(p domain.ParsedQuiz) bool {
	if p.YearLevel == nil {
		return false
	}
	return p.IsTrial || p.Subject != nil
}

// MissingForTiering lists what keeps p out of tiering.
func MissingForTiering(p domain.ParsedQuiz) []string {
	if p.IsTrial && p.YearLevel != nil {
		return nil
	}
	return p.MissingFields()
}
