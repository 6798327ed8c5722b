package feedback

import (
	"fmt"
	"strconv"
	"strings"
)

// ToneGuidance returns the voice the coach should use for a year level.
func ToneGuidance(year int) string {
	switch year {
	case 3:
		return "Use very simple words, short sentences, warm and encouraging."
	case 5:
		return "Use simple clear language, slightly more detailed steps."
	case 7:
		return "Use confident coaching tone, practical strategies, more independence."
	case 9:
		return "Use mature, direct coaching tone, exam-strategy focus, self-reflection."
	default:
		return "Use supportive, clear, actionable tone."
	}
}

var coachStyleGuidelines = []string{
	"Use topic names and numbers in every point",
	"Be specific and actionable; give time/count targets",
	"Balance encouragement with honest focus areas",
	"Include timing insights when pace is fast/slow",
	"Keep language appropriate for the year level",
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func describeTopics(topics []TopicPerformance) string {
	if len(topics) == 0 {
		return "None"
	}
	parts := make([]string, 0, len(topics))
	for _, t := range topics {
		parts = append(parts, fmt.Sprintf("%s - %s%% correct (%d/%d questions, %d missed)",
			t.Name, formatNumber(t.Percentage), int(t.Scored), int(t.Total), int(t.Missed)))
	}
	return strings.Join(parts, "\n  - ")
}

func yearText(year int) string {
	if year == 0 {
		return "Unknown"
	}
	return strconv.Itoa(year)
}

// BuildSubjectPrompt renders the coaching instructions for one analysed result.
func BuildSubjectPrompt(a PerformanceAnalysis, subject string) string {
	timeText := "not recorded"
	if a.TimeTakenMinutes != nil {
		timeText = formatNumber(*a.TimeTakenMinutes) + " minutes"
	}
	speedText := "not available"
	if a.SecondsPerQuestion != nil {
		speedText = formatNumber(*a.SecondsPerQuestion) + " sec/question"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert AI Coach creating personalised feedback for a %s assessment.\n\n", subject)
	b.WriteString("AUDIENCE: Student + Parent/Teacher\n")
	fmt.Fprintf(&b, "YEAR LEVEL: Year %s\nTONE RULE: %s\n\n", yearText(a.YearLevel), ToneGuidance(a.YearLevel))

	b.WriteString("PERFORMANCE DATA:\n")
	fmt.Fprintf(&b, "Overall Score: %s%%\n", formatNumber(a.Accuracy))
	fmt.Fprintf(&b, "Time: %s | Speed: %s | Pace: %s\n", timeText, speedText, a.Pace)
	fmt.Fprintf(&b, "High performers (>=80%%): %d topics\n", a.HighPerformanceCount)
	fmt.Fprintf(&b, "Low performers (<=30%%): %d topics\n\n", a.LowPerformanceCount)
	fmt.Fprintf(&b, "STRONGEST TOPICS:\n  - %s\n\n", describeTopics(a.TopTopics))
	fmt.Fprintf(&b, "WEAKEST TOPICS:\n  - %s\n\n", describeTopics(a.WeakTopics))

	if w, ok := a.WeakestTopic(); ok {
		fmt.Fprintf(&b, `WEAKEST TOPIC REQUIREMENT:
The weakest performing topic is: %[1]q
Performance: %[2]s%% (%[3]d/%[4]d correct, %[5]d missed)
1) Include %[1]q as the FIRST item in weaknesses AND growth_areas.
2) Create at least ONE coach item about %[1]q with an actionable task.
3) Include a study_tip specifically for %[1]q.
If %[1]q is missing from weaknesses, the output is INVALID.

`, w.Name, formatNumber(w.Percentage), int(w.Scored), int(w.Total), int(w.Missed))
	}

	totalQuestions := "unknown"
	if a.TotalQuestions > 0 {
		totalQuestions = strconv.Itoa(a.TotalQuestions)
	}
	fmt.Fprintf(&b, `TIMING REQUIREMENT:
Time taken: %s
Total questions: %s
Speed: %s
Pace label: %s
- Mention timing in overall_feedback (1 sentence).
- If pace is "slow", include timing as a weakness point.
- If pace is "fast", include timing as a strength point (but warn about accuracy if needed).
- If pace is "steady", mention it positively.

`, timeText, totalQuestions, speedText, a.Pace)

	b.WriteString("Product Style Guidelines:\n- ")
	b.WriteString(strings.Join(coachStyleGuidelines, "\n- "))
	b.WriteString(`

OUTPUT REQUIREMENTS:
Return ONLY valid JSON (no markdown, no code blocks, no extra text).
{
  "overall_feedback": "EXACTLY 2 short sentences, max 14 words each.",
  "coach": [
    {"insight": "...", "reason": "...", "action": "..."},
    {"insight": "...", "reason": "...", "action": "..."},
    {"insight": "...", "reason": "...", "action": "..."}
  ],
  "strengths": ["3 points, max 10 words each"],
  "weaknesses": ["3 points, max 10 words each"],
  "growth_areas": ["3 points, max 10 words each"],
  "study_tips": ["up to 3 items, max 10 words each"],
  "cta": "One motivating call-to-action (12 words max)",
  "encouragement": "4-5 short sentences, supportive and specific."
}

CHECKLIST:
- weaknesses MUST exist and have 3 points
- weaknesses[0] MUST be the weakest topic name
- Include timing in overall_feedback (1 sentence)
- Use real topic names and real numbers
- Actions must include a number + time or quantity`)
	return b.String()
}
