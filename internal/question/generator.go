package question

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"talentflow/interview/internal/llm"
	"talentflow/interview/internal/models"
	"talentflow/interview/internal/policy"
	"talentflow/interview/internal/prompts"
	"talentflow/interview/internal/utils"
)

// Generator wraps the external model to produce interview questions.
// It never fails: on provider error or a schema violation in the model
// output it falls back to a built-in pool keyed by difficulty.
type Generator struct {
	provider llm.Provider
	prompts  prompts.PromptProvider
	topic    string
	timeout  time.Duration
	logger   *zap.Logger
}

func NewGenerator(provider llm.Provider, pm prompts.PromptProvider, topic string, timeout time.Duration, logger *zap.Logger) *Generator {
	return &Generator{
		provider: provider,
		prompts:  pm,
		topic:    topic,
		timeout:  timeout,
		logger:   logger,
	}
}

// draft is the schema the model must return. Anything else is treated as
// an adapter failure.
type draft struct {
	Question       string   `json:"question"`
	ExpectedTopics []string `json:"expected_topics"`
	Hints          []string `json:"hints"`
	TimeLimit      int      `json:"time_limit"`
}

// Generate produces the next question for the given tier, avoiding the
// texts in previous. TimeLimit always comes from policy, never from the
// model output.
func (g *Generator) Generate(ctx context.Context, difficulty policy.Difficulty, previous []string) models.Question {
	q := models.Question{
		ID:         uuid.New().String(),
		Difficulty: difficulty,
		TimeLimit:  policy.TimeLimit(difficulty),
		StartTime:  time.Now().UTC(),
	}

	data := map[string]string{
		"Topic":             g.topic,
		"Difficulty":        strings.ToUpper(string(difficulty)),
		"PreviousQuestions": formatPrevious(previous),
		"TimeLimit":         strconv.Itoa(policy.TimeLimit(difficulty)),
	}

	prompt, err := g.prompts.BuildPrompt("question", string(difficulty), data)
	if err != nil {
		g.logger.Error("Failed to build question prompt", zap.Error(err), zap.String("difficulty", string(difficulty)))
		return g.fallback(q, previous)
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	content, err := g.provider.GenerateContent(callCtx, prompt)
	if err != nil {
		g.logger.Warn("Question generation failed, using fallback pool",
			zap.Error(err), zap.String("difficulty", string(difficulty)))
		return g.fallback(q, previous)
	}

	var d draft
	if err := json.Unmarshal([]byte(utils.StripFences(content)), &d); err != nil || d.Question == "" {
		g.logger.Warn("Question generation returned an invalid schema, using fallback pool",
			zap.String("difficulty", string(difficulty)))
		return g.fallback(q, previous)
	}

	q.Text = d.Question
	q.ExpectedTopics = d.ExpectedTopics
	q.Hints = d.Hints
	if q.ExpectedTopics == nil {
		q.ExpectedTopics = []string{g.topic}
	}
	if q.Hints == nil {
		q.Hints = []string{}
	}
	return q
}

// fallback pool of short, clear, answerable questions
var fallbackPool = map[policy.Difficulty][]string{
	policy.Easy: {
		"What React hook manages component state?",
		"Which HTTP method updates existing data in REST?",
		"What command creates a new Node.js project?",
	},
	policy.Medium: {
		"Explain how React's virtual DOM improves performance.",
		"How does middleware work in Express.js?",
		"What is the difference between let and const in JavaScript?",
	},
	policy.Hard: {
		"Describe how React state updates asynchronously and how to handle it properly.",
		"Explain event delegation in JavaScript and why it is useful.",
		"How would you prevent memory leaks in a Node.js application?",
	},
}

func (g *Generator) fallback(q models.Question, previous []string) models.Question {
	pool := fallbackPool[q.Difficulty]
	// deterministic pick: rotate through the pool as the interview advances
	q.Text = pool[len(previous)%len(pool)]
	q.ExpectedTopics = []string{g.topic}
	q.Hints = []string{}
	return q
}

func formatPrevious(previous []string) string {
	if len(previous) == 0 {
		return "None"
	}
	if len(previous) > 3 {
		previous = previous[:3]
	}
	encoded, err := json.Marshal(previous)
	if err != nil {
		return "None"
	}
	return string(encoded)
}
