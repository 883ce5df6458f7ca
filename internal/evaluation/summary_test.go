package evaluation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"talentflow/interview/internal/models"
	"talentflow/interview/internal/policy"
	"talentflow/interview/internal/prompts"
)

func newTestSummarizer(t *testing.T, provider *mockProvider) *Summarizer {
	t.Helper()
	pm, err := prompts.NewPromptManager()
	require.NoError(t, err)
	return NewSummarizer(provider, pm, 5*time.Second, zap.NewNop())
}

func scoredQuestions(scores ...float64) []models.Question {
	questions := make([]models.Question, len(scores))
	for i := range scores {
		score := scores[i]
		questions[i] = models.Question{
			Text:       fmt.Sprintf("question %d", i+1),
			Difficulty: policy.ForIndex(i),
			Score:      &score,
		}
	}
	return questions
}

func TestSummarizeReturnsModelNarrative(t *testing.T) {
	provider := &mockProvider{response: "  A thorough narrative about the candidate.  \n"}
	s := newTestSummarizer(t, provider)

	summary := s.Summarize(context.Background(), "Ada", scoredQuestions(2, 2, 3, 3, 5, 5), 20)

	assert.Equal(t, "A thorough narrative about the candidate.", summary)
	require.Len(t, provider.prompts, 1)
	assert.Contains(t, provider.prompts[0], "Ada")
	assert.Contains(t, provider.prompts[0], "20")
}

func TestSummarizeFallbackBands(t *testing.T) {
	cases := []struct {
		total          float64
		performance    string
		recommendation string
	}{
		{18, "excellent", "strong candidate for senior positions"},
		{13, "good", "suitable for mid-level positions"},
		{9, "satisfactory", "may need additional training"},
		{4, "needs improvement", "requires significant skill development"},
	}

	for _, tc := range cases {
		t.Run(tc.performance, func(t *testing.T) {
			s := newTestSummarizer(t, &mockProvider{err: errors.New("upstream unavailable")})
			summary := s.Summarize(context.Background(), "Grace", nil, tc.total)
			assert.Contains(t, summary, "Grace")
			assert.Contains(t, summary, tc.performance)
			assert.Contains(t, summary, tc.recommendation)
		})
	}
}

func TestSummarizeFallbackBandBoundaries(t *testing.T) {
	s := newTestSummarizer(t, &mockProvider{err: errors.New("down")})

	// 16/20 = 80% sits in the excellent band, 15.9 just below in good
	assert.Contains(t, s.Summarize(context.Background(), "X", nil, 16), "excellent")
	assert.Contains(t, s.Summarize(context.Background(), "X", nil, 15.9), "good")
	// 12/20 = 60% and 8/20 = 40% are inclusive lower bounds
	assert.Contains(t, s.Summarize(context.Background(), "X", nil, 12), "good")
	assert.Contains(t, s.Summarize(context.Background(), "X", nil, 8), "satisfactory")
}

func TestTierSubtotals(t *testing.T) {
	easy, medium, hard := tierSubtotals(scoredQuestions(1, 2, 2, 3, 4, 5))
	assert.Equal(t, 3.0, easy)
	assert.Equal(t, 5.0, medium)
	assert.Equal(t, 9.0, hard)
}

func TestTierSubtotalsSkipsUnscored(t *testing.T) {
	questions := scoredQuestions(1, 2, 2)
	questions[1].Score = nil

	easy, medium, hard := tierSubtotals(questions)
	assert.Equal(t, 1.0, easy)
	assert.Equal(t, 2.0, medium)
	assert.Equal(t, 0.0, hard)
}

func TestQuestionPerformanceListsEveryQuestion(t *testing.T) {
	report := questionPerformance(scoredQuestions(2, 1, 3))
	assert.Contains(t, report, "Q1 (easy): question 1")
	assert.Contains(t, report, "Q2 (easy): question 2")
	assert.Contains(t, report, "Q3 (medium): question 3")
	assert.Contains(t, report, "Score: 3/3")
}
