package evaluation

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"talentflow/interview/internal/llm"
	"talentflow/interview/internal/models"
	"talentflow/interview/internal/policy"
	"talentflow/interview/internal/prompts"
)

// Summarizer produces the final narrative for a completed interview. Tier
// subtotals are computed only for prompt construction; on external failure
// the narrative is derived deterministically from the score percentage.
type Summarizer struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	timeout  time.Duration
	logger   *zap.Logger
}

func NewSummarizer(provider llm.Provider, pm prompts.PromptProvider, timeout time.Duration, logger *zap.Logger) *Summarizer {
	return &Summarizer{
		provider: provider,
		prompts:  pm,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *Summarizer) Summarize(ctx context.Context, candidateName string, questions []models.Question, totalScore float64) string {
	easy, medium, hard := tierSubtotals(questions)

	data := map[string]string{
		"CandidateName":       candidateName,
		"TotalScore":          formatScore(totalScore),
		"TotalCeiling":        formatScore(policy.TotalCeiling()),
		"EasyScore":           formatScore(easy),
		"MediumScore":         formatScore(medium),
		"HardScore":           formatScore(hard),
		"QuestionPerformance": questionPerformance(questions),
	}

	prompt, err := s.prompts.BuildPrompt("summary", "default", data)
	if err != nil {
		s.logger.Error("Failed to build summary prompt", zap.Error(err))
		return s.fallback(candidateName, totalScore)
	}

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	content, err := s.provider.GenerateContent(callCtx, prompt)
	if err != nil {
		s.logger.Warn("Summary generation failed, using score bands", zap.Error(err))
		return s.fallback(candidateName, totalScore)
	}

	return strings.TrimSpace(content)
}

// fallback maps the score percentage to a fixed performance band and
// recommendation phrase.
func (s *Summarizer) fallback(candidateName string, totalScore float64) string {
	percentage := totalScore / policy.TotalCeiling() * 100

	var performance, recommendation string
	switch {
	case percentage >= 80:
		performance = "excellent"
		recommendation = "strong candidate for senior positions"
	case percentage >= 60:
		performance = "good"
		recommendation = "suitable for mid-level positions"
	case percentage >= 40:
		performance = "satisfactory"
		recommendation = "may need additional training"
	default:
		performance = "needs improvement"
		recommendation = "requires significant skill development"
	}

	return fmt.Sprintf("%s completed the technical interview with a score of %s/%s (%.0f%%), showing %s performance. The candidate is %s.",
		candidateName, formatScore(totalScore), formatScore(policy.TotalCeiling()), percentage, performance, recommendation)
}

// tierSubtotals splits the per-question scores by tier position:
// first two easy, middle two medium, last two hard.
func tierSubtotals(questions []models.Question) (easy, medium, hard float64) {
	for i, q := range questions {
		if q.Score == nil {
			continue
		}
		switch {
		case i < policy.QuestionsPerTier:
			easy += *q.Score
		case i < 2*policy.QuestionsPerTier:
			medium += *q.Score
		default:
			hard += *q.Score
		}
	}
	return easy, medium, hard
}

func questionPerformance(questions []models.Question) string {
	lines := make([]string, 0, len(questions))
	for i, q := range questions {
		score := 0.0
		if q.Score != nil {
			score = *q.Score
		}
		lines = append(lines, fmt.Sprintf("Q%d (%s): %s\nScore: %s/%s",
			i+1, q.Difficulty, q.Text, formatScore(score), formatScore(policy.MaxScore(q.Difficulty))))
	}
	return strings.Join(lines, "\n")
}

func formatScore(score float64) string {
	return strconv.FormatFloat(score, 'f', -1, 64)
}
