package feedback

import (
	"math"
	"sort"

	"naplan-prep/internal/domain"
)

// Subject labels shown in coaching feedback.
const (
	LabelNumeracy    = "Numeracy (Mathematics)"
	LabelConventions = "Language Conventions"
	LabelReading     = "Reading"
	LabelWriting     = "Writing"
	LabelGeneral     = "NAPLAN Assessment"
)

// SubjectLabel names the subject of a parsed quiz for coaching feedback.
func SubjectLabel(p domain.ParsedQuiz) string {
	if p.Subject == nil {
		return LabelGeneral
	}
	switch *p.Subject {
	case domain.SubjectMaths:
		return LabelNumeracy
	case domain.SubjectConventions:
		return LabelConventions
	case domain.SubjectReading:
		return LabelReading
	case domain.SubjectWriting:
		return LabelWriting
	}
	return LabelGeneral
}

// Pace labels.
const (
	PaceFast    = "fast"
	PaceSteady  = "steady"
	PaceSlow    = "slow"
	PaceUnknown = "unknown"
)

// millisecondDurationAbove separates durations recorded in milliseconds from
// those recorded in seconds.
const millisecondDurationAbove = 100000

// TimeMetrics summarises how long a quiz took.
type TimeMetrics struct {
	TimeTakenMinutes   *float64
	TotalQuestions     int
	SecondsPerQuestion *float64
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func floatPtr(v float64) *float64 { return &v }

// ComputeTimeMetrics derives minutes taken and seconds per question.
func ComputeTimeMetrics(duration Number, topics []TopicScore) TimeMetrics {
	var tm TimeMetrics
	if duration.Valid {
		secs := duration.Value
		if secs > millisecondDurationAbove {
			secs /= 1000
		}
		tm.TimeTakenMinutes = floatPtr(round1(secs / 60))
	}

	for _, t := range topics {
		tm.TotalQuestions += int(t.Total)
	}

	if tm.TimeTakenMinutes != nil && tm.TotalQuestions > 0 {
		tm.SecondsPerQuestion = floatPtr(round1(*tm.TimeTakenMinutes * 60 / float64(tm.TotalQuestions)))
	}
	return tm
}

// paceThresholds are the fast and slow seconds-per-question limits per year.
// Younger years get more time.
var paceThresholds = map[int][2]float64{
	3: {25, 70},
	5: {22, 60},
	7: {20, 55},
	9: {18, 50},
}

// PaceLabel classifies seconds per question for a year level.
func PaceLabel(year int, secondsPerQuestion *float64) string {
	if secondsPerQuestion == nil {
		return PaceUnknown
	}
	limits, ok := paceThresholds[year]
	if !ok {
		limits = [2]float64{20, 60}
	}
	switch spq := *secondsPerQuestion; {
	case spq < limits[0]:
		return PaceFast
	case spq > limits[1]:
		return PaceSlow
	default:
		return PaceSteady
	}
}

// TopicPerformance is one topic's result within an analysis.
type TopicPerformance struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
	Scored     float64 `json:"scored"`
	Total      float64 `json:"total"`
	Missed     float64 `json:"missed"`
}

// PerformanceAnalysis is the computed view of a quiz result that the model
// coaches on. YearLevel 0 means unknown.
type PerformanceAnalysis struct {
	YearLevel            int                `json:"year_level"`
	OverallPercentage    float64            `json:"overall_percentage"`
	Accuracy             float64            `json:"accuracy"`
	Grade                string             `json:"grade"`
	TimeTakenMinutes     *float64           `json:"time_taken_minutes"`
	TotalQuestions       int                `json:"total_questions"`
	SecondsPerQuestion   *float64           `json:"seconds_per_question"`
	Pace                 string             `json:"pace"`
	HighPerformanceCount int                `json:"high_performance_count"`
	LowPerformanceCount  int                `json:"low_performance_count"`
	TopTopics            []TopicPerformance `json:"top_topics"`
	WeakTopics           []TopicPerformance `json:"weak_topics"`
}

// WeakestTopic returns the lowest scoring topic, if any.
func (a PerformanceAnalysis) WeakestTopic() (TopicPerformance, bool) {
	if len(a.WeakTopics) == 0 {
		return TopicPerformance{}, false
	}
	return a.WeakTopics[0], true
}

const (
	highTopicPercent = 80
	lowTopicPercent  = 30
	highlightTopics  = 3
)

// AnalyzePerformance computes topic percentages, the strongest and weakest
// topics and pace. Topics without questions are left out. WeakTopics lists
// the lowest percentage first.
func AnalyzePerformance(data StudentData, duration Number, year int) PerformanceAnalysis {
	perf := make([]TopicPerformance, 0, len(data.Topics))
	high, low := 0, 0

	for _, t := range data.Topics {
		if t.Total == 0 {
			continue
		}
		pct := t.Scored * 100 / t.Total
		perf = append(perf, TopicPerformance{
			Name:       t.Name,
			Percentage: round1(pct),
			Scored:     t.Scored,
			Total:      t.Total,
			Missed:     round1(math.Max(0, t.Total-t.Scored)),
		})
		switch {
		case pct >= highTopicPercent:
			high++
		case pct <= lowTopicPercent:
			low++
		}
	}

	sort.SliceStable(perf, func(i, j int) bool {
		return perf[i].Percentage > perf[j].Percentage
	})

	n := len(perf)
	if n > highlightTopics {
		n = highlightTopics
	}
	top := append([]TopicPerformance{}, perf[:n]...)
	weak := make([]TopicPerformance, 0, n)
	for i := len(perf) - 1; i >= len(perf)-n; i-- {
		weak = append(weak, perf[i])
	}

	tm := ComputeTimeMetrics(duration, data.Topics)
	overall := round1(data.Percentage)

	return PerformanceAnalysis{
		YearLevel:            year,
		OverallPercentage:    overall,
		Accuracy:             overall,
		Grade:                data.Grade,
		TimeTakenMinutes:     tm.TimeTakenMinutes,
		TotalQuestions:       tm.TotalQuestions,
		SecondsPerQuestion:   tm.SecondsPerQuestion,
		Pace:                 PaceLabel(year, tm.SecondsPerQuestion),
		HighPerformanceCount: high,
		LowPerformanceCount:  low,
		TopTopics:            top,
		WeakTopics:           weak,
	}
}
