package feedback

import (
	"fmt"
	"strings"
)

const (
	coachItems       = 3
	listItems        = 3
	defaultOverall   = "You made good progress and can improve with practice. Keep going!"
	defaultCTA       = "Pick one weak topic and practice it today."
	defaultEncourage = "You can improve quickly with short daily practice. Focus on one topic at a time. Review mistakes and try again. You are getting better every week."
	defaultWeakness  = "Needs more practice consistency"
	defaultGrowth    = "Improve accuracy by checking answers"
)

// SubjectFeedback is the coaching feedback returned to clients.
type SubjectFeedback struct {
	OverallFeedback string      `json:"overall_feedback"`
	Coach           []CoachItem `json:"coach"`
	Strengths       []string    `json:"strengths"`
	Weaknesses      []string    `json:"weaknesses"`
	GrowthAreas     []string    `json:"growth_areas"`
	StudyTips       []string    `json:"study_tips"`
	CTA             string      `json:"cta"`
	Encouragement   string      `json:"encouragement"`
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// trimmedList drops blank entries and keeps at most n trimmed items.
func trimmedList(items []string, n int) []string {
	out := make([]string, 0, n)
	for _, it := range items {
		if len(out) == n {
			break
		}
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

// leadWith puts first at the front unless the current first entry already
// names topic.
func leadWith(items []string, topic, first string) []string {
	if len(items) > 0 && containsFold(items[0], topic) {
		return items
	}
	return append([]string{first}, items...)
}

// putTiming appends entry, or replaces the last entry when the list is full.
func putTiming(items []string, entry string) []string {
	if containsFold(strings.Join(items, " "), entry) {
		return items
	}
	if len(items) < listItems {
		return append(items, entry)
	}
	items[len(items)-1] = entry
	return items
}

func coerceCoach(raw []CoachItem, a PerformanceAnalysis) []CoachItem {
	items := make([]CoachItem, 0, coachItems)
	for _, it := range raw {
		if len(items) == coachItems {
			break
		}
		c := CoachItem{
			Insight: strings.TrimSpace(it.Insight),
			Reason:  strings.TrimSpace(it.Reason),
			Action:  strings.TrimSpace(it.Action),
		}
		if c.Insight != "" && c.Reason != "" && c.Action != "" {
			items = append(items, c)
		}
	}

	weakest, hasWeakest := a.WeakestTopic()
	mentioned := false
	if hasWeakest {
		for _, it := range items {
			if containsFold(it.Insight, weakest.Name) || containsFold(it.Reason, weakest.Name) {
				mentioned = true
				break
			}
		}
	}

	for len(items) < coachItems {
		if idx := len(items); idx < len(a.WeakTopics) {
			t := a.WeakTopics[idx]
			items = append(items, CoachItem{
				Insight: fmt.Sprintf("%s needs focused practice to improve.", t.Name),
				Reason:  fmt.Sprintf("You missed %d out of %d questions here.", int(t.Missed), int(t.Total)),
				Action:  fmt.Sprintf("Do 10 %s questions in 15 minutes today.", t.Name),
			})
			continue
		}
		items = append(items, CoachItem{
			Insight: "Small daily practice builds strong long-term skills.",
			Reason:  "Repeating key patterns helps you remember faster.",
			Action:  "Study for 15 minutes daily and review mistakes.",
		})
	}

	if hasWeakest && !mentioned {
		items[len(items)-1] = CoachItem{
			Insight: fmt.Sprintf("%s is the biggest improvement opportunity.", weakest.Name),
			Reason:  fmt.Sprintf("You missed %d out of %d questions in %s.", int(weakest.Missed), int(weakest.Total), weakest.Name),
			Action:  fmt.Sprintf("Practice 12 %s questions tomorrow (20 minutes).", weakest.Name),
		}
	}
	return items
}

// CoerceSubjectFeedback turns a model reply into complete feedback. The
// weakest topic always leads weaknesses and growth areas and appears in the
// coach items and study tips; pace is reflected in strengths or weaknesses and
// the time taken is mentioned in the overall feedback. raw may be nil.
func CoerceSubjectFeedback(raw *RawSubjectFeedback, a PerformanceAnalysis) SubjectFeedback {
	if raw == nil {
		raw = &RawSubjectFeedback{}
	}
	weakest, hasWeakest := a.WeakestTopic()
	timed := a.TimeTakenMinutes != nil && a.SecondsPerQuestion != nil

	strengths := trimmedList(raw.Strengths, listItems)
	for len(strengths) < listItems && len(strengths) < len(a.TopTopics) {
		t := a.TopTopics[len(strengths)]
		strengths = append(strengths, fmt.Sprintf("%s: %s%% accuracy", t.Name, formatNumber(t.Percentage)))
	}
	if a.Pace == PaceFast && timed {
		strengths = putTiming(strengths, fmt.Sprintf("Good speed: %ss per question", formatNumber(*a.SecondsPerQuestion)))
	}

	weaknesses := trimmedList(raw.Weaknesses, listItems)
	if hasWeakest {
		weaknesses = leadWith(weaknesses, weakest.Name, weakest.Name+": low accuracy")
	}
	for _, t := range a.WeakTopics {
		if len(weaknesses) >= listItems {
			break
		}
		if !containsFold(strings.Join(weaknesses, " "), t.Name) {
			weaknesses = append(weaknesses, fmt.Sprintf("%s: %s%% accuracy", t.Name, formatNumber(t.Percentage)))
		}
	}
	if len(weaknesses) > listItems {
		weaknesses = weaknesses[:listItems]
	}
	if a.Pace == PaceSlow && timed {
		weaknesses = putTiming(weaknesses, fmt.Sprintf("Too slow: %ss per question", formatNumber(*a.SecondsPerQuestion)))
	}
	for len(weaknesses) < listItems {
		weaknesses = append(weaknesses, defaultWeakness)
	}

	growth := trimmedList(raw.GrowthAreas, listItems)
	if hasWeakest {
		growth = leadWith(growth, weakest.Name, weakest.Name+": practice daily")
	}
	for _, t := range a.WeakTopics {
		if len(growth) >= listItems {
			break
		}
		if !containsFold(strings.Join(growth, " "), t.Name) {
			growth = append(growth, t.Name+": improve by revising mistakes")
		}
	}
	for len(growth) < listItems {
		growth = append(growth, defaultGrowth)
	}
	growth = growth[:listItems]

	tips := trimmedList(raw.StudyTips, listItems)
	if hasWeakest && !containsFold(strings.Join(tips, "\n"), weakest.Name) {
		tips = append([]string{fmt.Sprintf("Practice %s 10 minutes daily", weakest.Name)}, tips...)
	}
	if len(tips) > listItems {
		tips = tips[:listItems]
	}

	overall := strings.TrimSpace(raw.OverallFeedback)
	if overall == "" {
		overall = defaultOverall
	}
	if a.TimeTakenMinutes != nil && !containsFold(overall, "minute") && !containsFold(overall, "time") {
		overall = fmt.Sprintf("%s Time taken: %s minutes.", overall, formatNumber(*a.TimeTakenMinutes))
	}

	cta := strings.TrimSpace(raw.CTA)
	if cta == "" {
		cta = defaultCTA
	}
	encouragement := strings.TrimSpace(raw.Encouragement)
	if encouragement == "" {
		encouragement = defaultEncourage
	}

	return SubjectFeedback{
		OverallFeedback: overall,
		Coach:           coerceCoach(raw.Coach, a),
		Strengths:       strengths,
		Weaknesses:      weaknesses,
		GrowthAreas:     growth,
		StudyTips:       tips,
		CTA:             cta,
		Encouragement:   encouragement,
	}
}
