package services

import (
	"context"
	"errors"
	"testing"

	"quizapp/backend/apperr"
	"quizapp/backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validElement = `{"topic":"Percentages","question":"What is 10% of 50?","options":["5","10","15","20"],"answer":"5","explain":"50 * 0.1 = 5"}`

type stubCompleter struct {
	reply string
	err   error

	system string
	user   string
}

func (s *stubCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	s.system = system
	s.user = user
	return s.reply, s.err
}

func TestBuildPromptDefaults(t *testing.T) {
	svc := NewQuestionService(nil)

	prompt := svc.BuildPrompt(models.GenerateRequest{})

	assert.Contains(t, prompt, "Generate 3 multiple-choice questions PER TOPIC")
	assert.Contains(t, prompt, "Percentages, Ratio & Proportion, Time & Work, Profit & Loss, Probability")
	assert.Contains(t, prompt, "Difficulty: basic")
}

func TestBuildPromptWithRequest(t *testing.T) {
	svc := NewQuestionService(nil)

	prompt := svc.BuildPrompt(models.GenerateRequest{
		Topics:     []string{"Algebra", "Geometry"},
		Difficulty: "advanced",
		PerTopic:   5,
	})

	assert.Contains(t, prompt, "Generate 5 multiple-choice questions PER TOPIC for: Algebra, Geometry.")
	assert.Contains(t, prompt, "Difficulty: advanced")
}

func TestNormalizeCleanArray(t *testing.T) {
	svc := NewQuestionService(nil)

	questions, err := svc.Normalize("[" + validElement + "]")
	require.NoError(t, err)
	require.Len(t, questions, 1)

	q := questions[0]
	assert.Equal(t, "Percentages", q.Topic)
	assert.Equal(t, "5", q.Answer)
	assert.Len(t, q.Options, 4)
}

func TestNormalizeExtractsBracketedSpan(t *testing.T) {
	svc := NewQuestionService(nil)

	raw := "Here is your JSON:\n```json\n[" + validElement + "]\n```\nThanks!"
	questions, err := svc.Normalize(raw)
	require.NoError(t, err)
	assert.Len(t, questions, 1)
}

func TestNormalizeNotJSON(t *testing.T) {
	svc := NewQuestionService(nil)

	_, err := svc.Normalize("not json at all")

	var malformed *apperr.MalformedOutputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "not json at all", malformed.Raw)
}

func TestNormalizeDropsInvalidKeepsValid(t *testing.T) {
	svc := NewQuestionService(nil)

	duplicateOptions := `{"topic":"T","question":"Q?","options":["A","A","C","D"],"answer":"A","explain":"e"}`
	missingField := `{"topic":"T","options":["A","B","C","D"],"answer":"A","explain":"e"}`
	answerNotInOptions := `{"topic":"T","question":"Q?","options":["A","B","C","D"],"answer":"E","explain":"e"}`
	threeOptions := `{"topic":"T","question":"Q?","options":["A","B","C"],"answer":"A","explain":"e"}`

	raw := "[" + duplicateOptions + "," + validElement + "," + missingField + "," +
		answerNotInOptions + "," + threeOptions + "]"

	questions, err := svc.Normalize(raw)
	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "Percentages", questions[0].Topic)
}

func TestNormalizeFailsWhenNothingValid(t *testing.T) {
	svc := NewQuestionService(nil)

	_, err := svc.Normalize(`[{"topic":"T","question":"Q?","options":["A","A","C","D"],"answer":"A","explain":"e"}]`)

	var malformed *apperr.MalformedOutputError
	assert.ErrorAs(t, err, &malformed)
}

func TestGenerateWiresPromptAndSystemMessage(t *testing.T) {
	stub := &stubCompleter{reply: "[" + validElement + "]"}
	svc := NewQuestionService(stub)

	questions, err := svc.Generate(context.Background(), models.GenerateRequest{
		Topics:   []string{"Percentages"},
		PerTopic: 2,
	})
	require.NoError(t, err)
	assert.Len(t, questions, 1)

	assert.Equal(t, "Return STRICT JSON only.", stub.system)
	assert.Contains(t, stub.user, "Generate 2 multiple-choice questions PER TOPIC for: Percentages.")
}

func TestGenerateCompleterFailure(t *testing.T) {
	stub := &stubCompleter{err: errors.New("connection refused")}
	svc := NewQuestionService(stub)

	_, err := svc.Generate(context.Background(), models.GenerateRequest{})

	var genErr *apperr.GenerationError
	assert.ErrorAs(t, err, &genErr)
}
