package evaluation

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"talentflow/interview/internal/llm"
	"talentflow/interview/internal/policy"
	"talentflow/interview/internal/prompts"
	"talentflow/interview/internal/utils"
)

// Result is one answer's evaluation. Score is always within
// [0, policy.MaxScore(difficulty)].
type Result struct {
	Score         float64  `json:"score"`
	Feedback      string   `json:"feedback"`
	Strengths     []string `json:"strengths"`
	Improvements  []string `json:"improvements"`
	TopicsCovered []string `json:"topics_covered"`
}

// Evaluator wraps the external model to score free-text answers. It never
// fails: on provider error or a schema violation it scores by a word-count
// heuristic tiered per difficulty.
type Evaluator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	timeout  time.Duration
	logger   *zap.Logger
}

func NewEvaluator(provider llm.Provider, pm prompts.PromptProvider, timeout time.Duration, logger *zap.Logger) *Evaluator {
	return &Evaluator{
		provider: provider,
		prompts:  pm,
		timeout:  timeout,
		logger:   logger,
	}
}

// Evaluate scores answer against the question's expected topics. The score
// is clamped to the tier ceiling even when the model claims otherwise.
func (e *Evaluator) Evaluate(ctx context.Context, questionText, answer string, expectedTopics []string, difficulty policy.Difficulty) Result {
	maxScore := policy.MaxScore(difficulty)

	data := map[string]string{
		"Difficulty":     string(difficulty),
		"Question":       questionText,
		"ExpectedTopics": strings.Join(expectedTopics, ", "),
		"Answer":         answer,
		"MaxScore":       strconv.FormatFloat(maxScore, 'f', -1, 64),
	}

	prompt, err := e.prompts.BuildPrompt("evaluation", string(difficulty), data)
	if err != nil {
		e.logger.Error("Failed to build evaluation prompt", zap.Error(err), zap.String("difficulty", string(difficulty)))
		return e.heuristic(answer, difficulty)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	content, err := e.provider.GenerateContent(callCtx, prompt)
	if err != nil {
		e.logger.Warn("Answer evaluation failed, using heuristic",
			zap.Error(err), zap.String("difficulty", string(difficulty)))
		return e.heuristic(answer, difficulty)
	}

	var result Result
	if err := json.Unmarshal([]byte(utils.StripFences(content)), &result); err != nil || result.Feedback == "" {
		e.logger.Warn("Answer evaluation returned an invalid schema, using heuristic",
			zap.String("difficulty", string(difficulty)))
		return e.heuristic(answer, difficulty)
	}

	result.Score = clamp(result.Score, maxScore)
	if result.Strengths == nil {
		result.Strengths = []string{}
	}
	if result.Improvements == nil {
		result.Improvements = []string{}
	}
	if result.TopicsCovered == nil {
		result.TopicsCovered = []string{}
	}
	return result
}

// heuristic is the deterministic fallback: a coarse score from the
// answer's word count, tiered per difficulty.
func (e *Evaluator) heuristic(answer string, difficulty policy.Difficulty) Result {
	words := len(strings.Fields(answer))

	var score float64
	switch difficulty {
	case policy.Easy:
		// easy questions expect short answers
		if words <= 5 {
			score = 1
		} else {
			score = 0.5
		}
	case policy.Medium:
		switch {
		case words >= 10:
			score = 2
		case words >= 5:
			score = 1
		default:
			score = 0.5
		}
	default: // hard
		switch {
		case words >= 20:
			score = 3
		case words >= 10:
			score = 2
		default:
			score = 1
		}
	}

	return Result{
		Score:         clamp(score, policy.MaxScore(difficulty)),
		Feedback:      "Answer evaluated based on content length and complexity.",
		Strengths:     []string{"Provided a response"},
		Improvements:  []string{"Could provide more technical detail"},
		TopicsCovered: []string{},
	}
}

func clamp(score, max float64) float64 {
	if score < 0 {
		return 0
	}
	if score > max {
		return max
	}
	return score
}
