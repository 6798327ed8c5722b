package feedback

import "fmt"

// MinAIWords is the shortest response worth sending to the model.
const MinAIWords = 20

// BuildPrompt renders the assessor instructions for one response.
func BuildPrompt(year int, textType TextType, writingPrompt, writing string) string {
	return fmt.Sprintf(`You are an Australian NAPLAN writing assessor.

YEAR: %[1]d
TEXT TYPE: %[2]s

Year expectations:
%[3]s

PROMPT:
%[4]s

STUDENT RESPONSE:
%[5]s

STRICT CONTENT RULES:
- Do not invent story details (characters, events, settings, actions) not in PROMPT or STUDENT RESPONSE.
- If the prompt is vague (e.g. "look at the picture"), do not guess the picture.

WRITING RULES:
- Use a neutral NAPLAN assessor voice in the third person.
- Do not refer to the writer as "the student".
- Do not quote the writing in overall.one_line_summary or overall.summary.
- Use Australian English spelling.

PROMPT RELEVANCE:
- score 0-100; verdict: on_topic | partially_on_topic | off_topic
- Include ONE evidence quote (8-25 words) from the writing.

EVIDENCE:
- Provide evidence_quote ONLY for Vocabulary, Punctuation, Spelling (8-15 exact words).

CRITERIA:
- Return ALL applicable NAPLAN criteria for this text type.
- Narrative only: include Persuasive Devices with score=null, max=null, suggestion="N/A (narrative)".
- For each criterion give a short suggestion (at most 2 sentences).

MAX SCORES:
Audience 6, Text Structure 6, Ideas 6, Persuasive Devices 5,
Vocabulary 6, Cohesion 5, Paragraphing 4,
Sentence Structure 6, Punctuation 5, Spelling 6.

OUTPUT:
Return ONLY valid ASCII JSON with these keys, no markdown:
{
  "meta": {"prompt_relevance": {"score": 0, "verdict": "on_topic", "note": "", "evidence": ""}},
  "overall": {
    "total_score": 0,
    "max_score": %[6]d,
    "band": "Below Minimum Standard",
    "one_line_summary": "",
    "summary": "",
    "strengths": [],
    "weaknesses": []
  },
  "review_sections": [
    {"id": "sentence_improvements", "title": "Make these sentences stronger", "items": []},
    {"id": "ideas_development", "title": "Ideas development suggestions", "items": []},
    {"id": "next_steps", "title": "Next time try this", "items": []},
    {"id": "mini_rewrite", "title": "Mini rewrite (example)", "items": []}
  ],
  "criteria": [{"name": "", "score": 0, "max": 0, "suggestion": "", "evidence_quote": ""}]
}
`, year, textType, YearExpectation(year), writingPrompt, writing, MaxTotal(textType))
}
