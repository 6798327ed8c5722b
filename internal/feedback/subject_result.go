package feedback

import "time"

// Subject feedback statuses.
const (
	SubjectStatusDone    = "done"
	SubjectStatusPending = "awaiting_attempt"
	SubjectStatusFailed  = "failed"
)

// SubjectMeta describes how a subject feedback result was produced.
type SubjectMeta struct {
	Model         string    `json:"model"`
	GeneratedAt   time.Time `json:"generated_at"`
	Subject       string    `json:"subject"`
	QuizName      string    `json:"quiz_name"`
	YearLevel     int       `json:"year_level"`
	Status        string    `json:"status"`
	StatusMessage string    `json:"status_message"`
	ErrorDetail   string    `json:"error_detail,omitempty"`
}

// SubjectResult is the complete coaching response for one quiz result.
type SubjectResult struct {
	Success  bool                `json:"success"`
	Analysis PerformanceAnalysis `json:"performance_analysis"`
	Feedback SubjectFeedback     `json:"ai_feedback"`
	Meta     SubjectMeta         `json:"ai_feedback_meta"`
}

// NewSubjectResult wraps coerced feedback in a successful result.
func NewSubjectResult(a PerformanceAnalysis, fb SubjectFeedback, meta SubjectMeta) *SubjectResult {
	meta.Status = SubjectStatusDone
	meta.StatusMessage = "Feedback generated successfully"
	return &SubjectResult{Success: true, Analysis: a, Feedback: fb, Meta: meta}
}

// FailedSubjectResult reports a model failure. The feedback is built from the
// analysis alone so clients still have something to show.
func FailedSubjectResult(a PerformanceAnalysis, meta SubjectMeta, cause error) *SubjectResult {
	meta.Status = SubjectStatusFailed
	meta.StatusMessage = "AI generation failed"
	if cause != nil {
		meta.ErrorDetail = SanitizeText(cause.Error(), 260)
	}
	return &SubjectResult{Analysis: a, Feedback: CoerceSubjectFeedback(nil, a), Meta: meta}
}

// PlaceholderResult is returned for a session with no attempted questions.
// The model is not called.
func PlaceholderResult(meta SubjectMeta) *SubjectResult {
	meta.Status = SubjectStatusPending
	meta.StatusMessage = "Ready - awaiting first quiz attempt"
	return &SubjectResult{
		Success: true,
		Analysis: PerformanceAnalysis{
			YearLevel:  meta.YearLevel,
			Pace:       PaceUnknown,
			TopTopics:  []TopicPerformance{},
			WeakTopics: []TopicPerformance{},
		},
		Feedback: SubjectFeedback{
			OverallFeedback: "Complete your first quiz to unlock insights. Timing will appear after attempts.",
			Coach: []CoachItem{{
				Insight: "No completed attempt found yet.",
				Reason:  "We need answers to identify strengths and weaknesses.",
				Action:  "Try a short practice set for 5-10 minutes.",
			}},
			Strengths:   []string{},
			Weaknesses:  []string{},
			GrowthAreas: []string{},
			StudyTips: []string{
				"Start with a small set of questions",
				"Work in short focused sessions",
				"Review mistakes to learn faster",
			},
			CTA:           "Take your first quiz to unlock your AI Coach!",
			Encouragement: "You are ready to start. One small step today is progress.",
		},
		Meta: meta,
	}
}
