package feedback

import (
	"bytes"
	"encoding/json"
	"errors"
	"sort"
	"strconv"
	"strings"
)

// Number is a lenient numeric field. It decodes JSON numbers, numeric strings
// and extended-JSON wrappers such as {"$numberDecimal": "12.5"}. Anything else
// decodes without error and leaves the number unset.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a set Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

var extendedNumberKeys = []string{"$numberDecimal", "$numberInt", "$numberLong"}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(b []byte) error {
	*n = Number{}
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return nil
		}
		n.parse(s)
	case '{':
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(b, &obj); err != nil {
			return nil
		}
		for _, k := range extendedNumberKeys {
			raw, ok := obj[k]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil {
				n.parse(s)
			}
			return nil
		}
	default:
		var f float64
		if err := json.Unmarshal(b, &f); err == nil {
			*n = Num(f)
		}
	}
	return nil
}

// MarshalJSON implements json.Marshaler. An unset number encodes as null.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

func (n *Number) parse(s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*n = Num(f)
	}
}

// ScoreInput is the overall score block of a quiz result.
type ScoreInput struct {
	Percentage Number `json:"percentage"`
	Grade      string `json:"grade"`
	Points     Number `json:"points"`
	Available  Number `json:"available"`
}

// TopicInput is one entry of a topic breakdown with its raw count fields.
type TopicInput struct {
	Name   string
	Fields map[string]Number
}

// TopicsFromJSON decodes a topic breakdown object. Entries that are not JSON
// objects are skipped. Topics are returned in name order.
func TopicsFromJSON(breakdown map[string]json.RawMessage) []TopicInput {
	names := make([]string, 0, len(breakdown))
	for name := range breakdown {
		names = append(names, name)
	}
	sort.Strings(names)

	topics := make([]TopicInput, 0, len(names))
	for _, name := range names {
		raw := bytes.TrimSpace(breakdown[name])
		if len(raw) == 0 || raw[0] != '{' {
			continue
		}
		var fields map[string]Number
		if err := json.Unmarshal(raw, &fields); err != nil {
			continue
		}
		topics = append(topics, TopicInput{Name: name, Fields: fields})
	}
	return topics
}

// SubjectRequest is one finished quiz result to coach on. YearLevel 0 means
// the year is taken from the quiz name.
type SubjectRequest struct {
	QuizName  string
	YearLevel int
	Score     ScoreInput
	Topics    []TopicInput
	Duration  Number
}

// topicCountPairs are the accepted (scored, total) field names, checked in order.
var topicCountPairs = [][2]string{
	{"scored", "total"},
	{"points", "available"},
	{"points_scored", "points_available"},
	{"correct", "attempted"},
}

// TopicScoredTotal returns the first complete (scored, total) pair in fields.
func TopicScoredTotal(fields map[string]Number) (scored, total float64, ok bool) {
	for _, pair := range topicCountPairs {
		s, t := fields[pair[0]], fields[pair[1]]
		if s.Valid && t.Valid {
			return s.Value, t.Value, true
		}
	}
	return 0, 0, false
}

var (
	ErrNoTopics     = errors.New("missing or empty topic breakdown")
	ErrNoPercentage = errors.New("missing overall percentage")
)

// TopicScore is a topic reduced to scored and total counts.
type TopicScore struct {
	Name   string
	Scored float64
	Total  float64
}

// StudentData is a normalised quiz result.
type StudentData struct {
	Percentage float64
	Grade      string
	Topics     []TopicScore
}

// NormalizeStudentData reduces a raw result to a percentage and topic counts.
// The percentage comes from the score block, then points over available, then
// the topic totals.
func NormalizeStudentData(score ScoreInput, topics []TopicInput) (*StudentData, error) {
	data := &StudentData{Grade: strings.TrimSpace(score.Grade)}

	pct := score.Percentage
	if !pct.Valid && score.Points.Valid && score.Available.Valid && score.Available.Value > 0 {
		pct = Num(score.Points.Value * 100 / score.Available.Value)
	}

	for _, t := range topics {
		scored, total, ok := TopicScoredTotal(t.Fields)
		if !ok {
			continue
		}
		data.Topics = append(data.Topics, TopicScore{Name: t.Name, Scored: scored, Total: total})
	}
	if len(data.Topics) == 0 {
		return nil, ErrNoTopics
	}

	if !pct.Valid {
		var scored, total float64
		for _, t := range data.Topics {
			scored += t.Scored
			total += t.Total
		}
		if total > 0 {
			pct = Num(scored * 100 / total)
		}
	}
	if !pct.Valid {
		return nil, ErrNoPercentage
	}
	data.Percentage = pct.Value
	return data, nil
}

// IsNoAttempt reports whether the topics hold no questions at all.
func IsNoAttempt(topics []TopicScore) bool {
	var total float64
	for _, t := range topics {
		total += t.Total
	}
	return total <= 0
}
