package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"quizapp/backend/apperr"
	"quizapp/backend/models"
)

const (
	systemPrompt      = "Return STRICT JSON only."
	defaultTopics     = "Percentages, Ratio & Proportion, Time & Work, Profit & Loss, Probability"
	defaultDifficulty = "basic"
	defaultPerTopic   = 3
	optionCount       = 4
)

// Completer is the external text-generation dependency. Implementations
// send a system instruction plus a user prompt and return the model's
// reply as one string.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

type QuestionService struct {
	Completer Completer
}

func NewQuestionService(completer Completer) *QuestionService {
	return &QuestionService{Completer: completer}
}

// BuildPrompt renders the generation instruction. Empty fields fall back
// to the defaults above.
func (s *QuestionService) BuildPrompt(req models.GenerateRequest) string {
	topics := defaultTopics
	if len(req.Topics) > 0 {
		topics = strings.Join(req.Topics, ", ")
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = defaultDifficulty
	}

	perTopic := req.PerTopic
	if perTopic <= 0 {
		perTopic = defaultPerTopic
	}

	return fmt.Sprintf(`
Generate %d multiple-choice questions PER TOPIC for: %s.
Difficulty: %s

Return STRICT JSON ONLY, like:
[
  {
    "topic": "Percentages",
    "question": "Example question?",
    "options": ["A", "B", "C", "D"],
    "answer": "A",
    "explain": "Short explanation"
  }
]

Rules:
- No extra text
- No commentary
- Options must be unique
- Answer must match one option
`, perTopic, topics, difficulty)
}

// Generate builds the prompt, calls the completer and normalizes its
// reply. Transport failures surface as GenerationError; replies that
// cannot be normalized surface as MalformedOutputError. Neither is
// retried here.
func (s *QuestionService) Generate(ctx context.Context, req models.GenerateRequest) ([]models.Question, error) {
	raw, err := s.Completer.Complete(ctx, systemPrompt, s.BuildPrompt(req))
	if err != nil {
		return nil, &apperr.GenerationError{Err: err}
	}
	return s.Normalize(raw)
}

// Normalize converts a free-form model reply into validated questions.
//
// The reply is first parsed as-is; if that fails the span between the
// first '[' and the last ']' is tried, which strips code fences and
// surrounding prose. Elements that fail validation are dropped and the
// valid remainder is kept; only when no element survives does the whole
// batch fail.
func (s *QuestionService) Normalize(raw string) ([]models.Question, error) {
	arr, err := parseArray(raw)
	if err != nil {
		return nil, &apperr.MalformedOutputError{Raw: raw, Err: err}
	}

	questions := make([]models.Question, 0, len(arr))
	for _, el := range arr {
		q, err := validateQuestion(el)
		if err != nil {
			continue
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		return nil, &apperr.MalformedOutputError{Raw: raw, Err: errors.New("no valid questions in reply")}
	}

	return questions, nil
}

func parseArray(raw string) ([]json.RawMessage, error) {
	var arr []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &arr); err == nil {
		return arr, nil
	}

	first := strings.Index(raw, "[")
	last := strings.LastIndex(raw, "]")
	if first == -1 || last == -1 || last <= first {
		return nil, errors.New("reply is not a JSON array")
	}

	if err := json.Unmarshal([]byte(raw[first:last+1]), &arr); err != nil {
		return nil, fmt.Errorf("extract JSON array: %w", err)
	}
	return arr, nil
}

func validateQuestion(el json.RawMessage) (models.Question, error) {
	var q models.Question
	if err := json.Unmarshal(el, &q); err != nil {
		return q, err
	}

	if q.Topic == "" || q.Question == "" || q.Answer == "" || q.Explain == "" {
		return q, errors.New("missing field")
	}
	if len(q.Options) != optionCount {
		return q, fmt.Errorf("expected %d options, got %d", optionCount, len(q.Options))
	}

	seen := make(map[string]bool, optionCount)
	answerFound := false
	for _, opt := range q.Options {
		if opt == "" || seen[opt] {
			return q, errors.New("options must be non-empty and unique")
		}
		seen[opt] = true
		if opt == q.Answer {
			answerFound = true
		}
	}
	if !answerFound {
		return q, errors.New("answer does not match any option")
	}

	return q, nil
}
