package question

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"talentflow/interview/internal/policy"
	"talentflow/interview/internal/prompts"
)

type mockProvider struct {
	response string
	err      error
	prompts  []string
}

func (m *mockProvider) GenerateContent(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockProvider) GetProviderName() string { return "mock" }

func newTestGenerator(t *testing.T, provider *mockProvider) *Generator {
	t.Helper()
	pm, err := prompts.NewPromptManager()
	require.NoError(t, err)
	return NewGenerator(provider, pm, "fullstack", 5*time.Second, zap.NewNop())
}

func TestGenerateParsesModelOutput(t *testing.T) {
	provider := &mockProvider{
		response: `{"question":"Explain closures in JavaScript.","expected_topics":["closures","scope"],"hints":["think about lexical scoping"],"time_limit":999}`,
	}
	g := newTestGenerator(t, provider)

	q := g.Generate(context.Background(), policy.Medium, nil)

	assert.NotEmpty(t, q.ID)
	assert.Equal(t, "Explain closures in JavaScript.", q.Text)
	assert.Equal(t, policy.Medium, q.Difficulty)
	assert.Equal(t, []string{"closures", "scope"}, q.ExpectedTopics)
	assert.Equal(t, []string{"think about lexical scoping"}, q.Hints)
	// the model's time_limit is never trusted
	assert.Equal(t, policy.TimeLimit(policy.Medium), q.TimeLimit)
	assert.False(t, q.StartTime.IsZero())
}

func TestGenerateStripsCodeFences(t *testing.T) {
	provider := &mockProvider{
		response: "```json\n{\"question\":\"What is a goroutine?\",\"expected_topics\":[],\"hints\":[]}\n```",
	}
	g := newTestGenerator(t, provider)

	q := g.Generate(context.Background(), policy.Easy, nil)
	assert.Equal(t, "What is a goroutine?", q.Text)
}

func TestGenerateFallsBackOnProviderError(t *testing.T) {
	provider := &mockProvider{err: errors.New("upstream unavailable")}
	g := newTestGenerator(t, provider)

	q := g.Generate(context.Background(), policy.Hard, nil)

	assert.NotEmpty(t, q.Text)
	assert.Contains(t, fallbackPool[policy.Hard], q.Text)
	assert.Equal(t, policy.Hard, q.Difficulty)
	assert.Equal(t, policy.TimeLimit(policy.Hard), q.TimeLimit)
	assert.Equal(t, []string{"fullstack"}, q.ExpectedTopics)
}

func TestGenerateFallsBackOnInvalidSchema(t *testing.T) {
	cases := []struct {
		name     string
		response string
	}{
		{"not json", "here is your question: what is REST?"},
		{"empty question field", `{"question":"","expected_topics":[],"hints":[]}`},
		{"wrong shape", `["a","b"]`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGenerator(t, &mockProvider{response: tc.response})
			q := g.Generate(context.Background(), policy.Easy, nil)
			assert.Contains(t, fallbackPool[policy.Easy], q.Text)
		})
	}
}

func TestFallbackRotatesWithInterviewProgress(t *testing.T) {
	g := newTestGenerator(t, &mockProvider{err: errors.New("down")})

	first := g.Generate(context.Background(), policy.Easy, nil)
	second := g.Generate(context.Background(), policy.Easy, []string{first.Text})

	assert.NotEqual(t, first.Text, second.Text)
}

func TestGenerateIncludesPreviousQuestionsInPrompt(t *testing.T) {
	provider := &mockProvider{
		response: `{"question":"A fresh question","expected_topics":[],"hints":[]}`,
	}
	g := newTestGenerator(t, provider)

	g.Generate(context.Background(), policy.Medium, []string{"What is REST?"})

	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "What is REST?")
	assert.Contains(t, provider.prompts[0], "fullstack")
}

func TestFormatPrevious(t *testing.T) {
	assert.Equal(t, "None", formatPrevious(nil))
	assert.Equal(t, `["a","b"]`, formatPrevious([]string{"a", "b"}))
	// only the most recent window is forwarded
	assert.Equal(t, `["a","b","c"]`, formatPrevious([]string{"a", "b", "c", "d"}))
}
