package interview

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"talentflow/interview/internal/evaluation"
	"talentflow/interview/internal/models"
	"talentflow/interview/internal/policy"
)

// timeExpiredSentinel is what the client submits when the question timer
// runs out.
const timeExpiredSentinel = "[No answer provided - Time expired]"

// QuestionGenerator produces the next interview question. Implementations
// must not fail; adapter unavailability is handled inside the adapter.
type QuestionGenerator interface {
	Generate(ctx context.Context, difficulty policy.Difficulty, previous []string) models.Question
}

// AnswerEvaluator scores a free-text answer. Implementations must not fail.
type AnswerEvaluator interface {
	Evaluate(ctx context.Context, questionText, answer string, expectedTopics []string, difficulty policy.Difficulty) evaluation.Result
}

// Summarizer produces the final narrative for a completed interview.
type Summarizer interface {
	Summarize(ctx context.Context, candidateName string, questions []models.Question, totalScore float64) string
}

// Service is the session state machine: it decides which question comes
// next, validates and persists answers, and completes sessions.
type Service struct {
	candidates CandidateRepository
	sessions   SessionRepository
	generator  QuestionGenerator
	evaluator  AnswerEvaluator
	summarizer Summarizer
	logger     *zap.Logger
	now        func() time.Time
}

func NewService(candidates CandidateRepository, sessions SessionRepository, generator QuestionGenerator, evaluator AnswerEvaluator, summarizer Summarizer, logger *zap.Logger) *Service {
	return &Service{
		candidates: candidates,
		sessions:   sessions,
		generator:  generator,
		evaluator:  evaluator,
		summarizer: summarizer,
		logger:     logger,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// StartResult is the outcome of Start: a fresh first question, a resumed
// question, or a read-only snapshot of a completed interview.
type StartResult struct {
	SessionID            string             `json:"session_id"`
	Question             *models.Question   `json:"question,omitempty"`
	Resuming             bool               `json:"resuming"`
	QuestionNumber       int                `json:"question_number,omitempty"`
	CurrentQuestionIndex int                `json:"current_question_index"`
	ElapsedTime          int                `json:"elapsed_time"`
	InterviewCompleted   bool               `json:"interview_completed,omitempty"`
	FinalScore           *float64           `json:"final_score,omitempty"`
	Summary              string             `json:"summary,omitempty"`
	Questions            []models.Question  `json:"questions,omitempty"`
	CompletedAt          *time.Time         `json:"completed_at,omitempty"`
	Message              string             `json:"message,omitempty"`
}

// SubmitResult is the outcome of SubmitAnswer.
type SubmitResult struct {
	Completed       bool               `json:"completed"`
	AlreadyAnswered bool               `json:"already_answered,omitempty"`
	Evaluation      *evaluation.Result `json:"evaluation,omitempty"`
	NextQuestion    *models.Question   `json:"next_question,omitempty"`
	QuestionNumber  int                `json:"question_number,omitempty"`
	FinalScore      float64            `json:"final_score,omitempty"`
	Summary         string             `json:"summary,omitempty"`
	Message         string             `json:"message,omitempty"`
}

// Start begins or resumes the interview for a candidate. For a completed
// candidate it returns the identical snapshot on every call, without
// mutation.
func (s *Service) Start(ctx context.Context, candidateID string) (*StartResult, error) {
	cand, err := s.candidates.GetByID(ctx, candidateID)
	if err != nil {
		if errors.Is(err, ErrCandidateNotFound) {
			return nil, notFoundErr("Candidate not found")
		}
		return nil, unavailableErr(err)
	}
	if !cand.HasContactInfo() {
		return nil, validationErr("Missing required candidate information")
	}

	sess, err := s.sessions.GetByCandidate(ctx, candidateID)
	if err != nil && !errors.Is(err, ErrSessionNotFound) {
		return nil, unavailableErr(err)
	}

	if sess != nil {
		if sess.IsCompleted {
			return completedSnapshot(cand, sess), nil
		}
		return s.resume(ctx, cand, sess)
	}

	// fresh session: easy question one of six
	now := s.now()
	sess = &models.InterviewSession{
		CandidateID: cand.ID,
		Questions:   []models.Question{},
		StartTime:   now,
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, unavailableErr(err)
	}
	if err := s.candidates.UpdateFields(ctx, cand.ID, map[string]any{"status": models.StatusInProgress}); err != nil {
		return nil, unavailableErr(err)
	}

	first := s.generator.Generate(ctx, policy.ForIndex(0), nil)
	if err := s.sessions.AppendQuestion(ctx, sess.ID, first, 0); err != nil {
		return nil, unavailableErr(err)
	}

	s.logger.Info("Interview started",
		zap.String("session_id", sess.ID),
		zap.String("candidate_id", cand.ID))

	return &StartResult{
		SessionID:      sess.ID,
		Question:       &first,
		QuestionNumber: 1,
	}, nil
}

// resume returns the first unanswered question. The scan is the source of
// truth; the stored pointer is derived and repaired when it disagrees.
func (s *Service) resume(ctx context.Context, cand *models.Candidate, sess *models.InterviewSession) (*StartResult, error) {
	idx := firstUnanswered(sess.Questions)

	if idx >= len(sess.Questions) {
		if len(sess.Questions) >= policy.QuestionCount {
			// crashed between the last answer write and completion:
			// finalize from the persisted scores instead of guessing
			total, summary, err := s.finalize(ctx, cand, sess)
			if err != nil {
				return nil, err
			}
			now := s.now()
			return &StartResult{
				SessionID:          sess.ID,
				InterviewCompleted: true,
				FinalScore:         &total,
				Summary:            summary,
				Questions:          sess.Questions,
				CompletedAt:        &now,
				Message:            "Interview already completed. Showing your results.",
			}, nil
		}
		// crashed between an answer write and the next question append:
		// issue the question that should exist at the scan index
		next := s.generator.Generate(ctx, policy.ForIndex(idx), sess.QuestionTexts())
		if err := s.sessions.AppendQuestion(ctx, sess.ID, next, idx); err != nil {
			return nil, unavailableErr(err)
		}
		return &StartResult{
			SessionID:            sess.ID,
			Question:             &next,
			Resuming:             true,
			QuestionNumber:       idx + 1,
			CurrentQuestionIndex: idx,
		}, nil
	}

	if idx != sess.CurrentQuestionIndex {
		s.logger.Warn("Session pointer disagrees with question list, repairing",
			zap.String("session_id", sess.ID),
			zap.Int("stored_index", sess.CurrentQuestionIndex),
			zap.Int("scan_index", idx))
		if err := s.sessions.SetIndex(ctx, sess.ID, idx); err != nil {
			return nil, unavailableErr(err)
		}
	}

	current := sess.Questions[idx]
	elapsed := int(s.now().Sub(current.StartTime).Seconds())
	if elapsed < 0 {
		elapsed = 0
	}

	return &StartResult{
		SessionID:            sess.ID,
		Question:             &current,
		Resuming:             true,
		QuestionNumber:       idx + 1,
		CurrentQuestionIndex: idx,
		ElapsedTime:          elapsed,
	}, nil
}

// SubmitAnswer validates, scores and persists one answer, then advances
// the session. It assumes a single active client per session; concurrent
// submissions to the same session are not serialized here.
func (s *Service) SubmitAnswer(ctx context.Context, sessionID, answer string) (*SubmitResult, error) {
	sess, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return nil, notFoundErr("Session not found")
		}
		return nil, unavailableErr(err)
	}

	idx := sess.CurrentQuestionIndex
	if idx >= len(sess.Questions) || idx >= policy.QuestionCount {
		return nil, invalidStateErr("No more questions available")
	}

	current := sess.Questions[idx]

	// retried request: never re-score an answered question
	if current.Answered() {
		if idx+1 >= policy.QuestionCount {
			return &SubmitResult{
				Completed: true,
				Message:   "Interview already completed",
			}, nil
		}
		return &SubmitResult{
			AlreadyAnswered: true,
			QuestionNumber:  idx + 2,
			Message:         "Moving to next question",
		}, nil
	}

	eval, screened := screenAnswer(answer)
	if !screened {
		eval = s.evaluator.Evaluate(ctx, current.Text, answer, current.ExpectedTopics, current.Difficulty)
	}

	if err := s.sessions.SetAnswer(ctx, sessionID, idx, answer, eval.Score, eval.Feedback, s.now()); err != nil {
		return nil, unavailableErr(err)
	}

	next := idx + 1
	if next >= policy.QuestionCount {
		// reload so the total is computed from persisted scores
		sess, err = s.sessions.GetByID(ctx, sessionID)
		if err != nil {
			return nil, unavailableErr(err)
		}
		cand, err := s.candidates.GetByID(ctx, sess.CandidateID)
		if err != nil {
			return nil, unavailableErr(err)
		}
		total, summary, err := s.finalize(ctx, cand, sess)
		if err != nil {
			return nil, err
		}
		return &SubmitResult{
			Completed:  true,
			FinalScore: total,
			Summary:    summary,
			Evaluation: &eval,
		}, nil
	}

	nextQuestion := s.generator.Generate(ctx, policy.ForIndex(next), sess.QuestionTexts())
	if err := s.sessions.AppendQuestion(ctx, sessionID, nextQuestion, next); err != nil {
		return nil, unavailableErr(err)
	}

	return &SubmitResult{
		Evaluation:     &eval,
		NextQuestion:   &nextQuestion,
		QuestionNumber: next + 1,
	}, nil
}

// finalize computes the total, generates the summary, and marks session
// and candidate completed. final_score is set exactly once, atomically
// with the completed status.
func (s *Service) finalize(ctx context.Context, cand *models.Candidate, sess *models.InterviewSession) (float64, string, error) {
	total := totalScore(sess.Questions)
	summary := s.summarizer.Summarize(ctx, cand.Name, sess.Questions, total)

	if err := s.sessions.Complete(ctx, sess.ID, s.now()); err != nil {
		return 0, "", unavailableErr(err)
	}
	if err := s.candidates.UpdateFields(ctx, cand.ID, map[string]any{
		"status":      models.StatusCompleted,
		"final_score": total,
		"summary":     summary,
	}); err != nil {
		return 0, "", unavailableErr(err)
	}

	s.logger.Info("Interview completed",
		zap.String("session_id", sess.ID),
		zap.String("candidate_id", cand.ID),
		zap.Float64("final_score", total))

	return total, summary, nil
}

func completedSnapshot(cand *models.Candidate, sess *models.InterviewSession) *StartResult {
	finalScore := 0.0
	if cand.FinalScore != nil {
		finalScore = *cand.FinalScore
	}
	return &StartResult{
		SessionID:          sess.ID,
		InterviewCompleted: true,
		FinalScore:         &finalScore,
		Summary:            cand.Summary,
		Questions:          sess.Questions,
		CompletedAt:        sess.EndTime,
		Message:            "Interview already completed. Showing your results.",
	}
}

// screenAnswer handles degenerate input without spending an external call:
// empty or expired answers, pure numbers, and fragments under 3 characters
// all score zero deterministically.
func screenAnswer(answer string) (evaluation.Result, bool) {
	trimmed := strings.TrimSpace(answer)

	if trimmed == "" || trimmed == timeExpiredSentinel {
		return evaluation.Result{
			Score:         0,
			Feedback:      "No answer provided.",
			Strengths:     []string{},
			Improvements:  []string{"No response given"},
			TopicsCovered: []string{},
		}, true
	}

	if isNumeric(trimmed) || len(trimmed) < 3 {
		return evaluation.Result{
			Score:         0,
			Feedback:      "Invalid or incomplete answer.",
			Strengths:     []string{},
			Improvements:  []string{"Please provide a proper technical answer"},
			TopicsCovered: []string{},
		}, true
	}

	return evaluation.Result{}, false
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(s) > 0
}

func firstUnanswered(questions []models.Question) int {
	for i := range questions {
		if !questions[i].Answered() {
			return i
		}
	}
	return len(questions)
}

// totalScore sums the persisted question scores, clamping each to its
// tier ceiling; missing scores count as zero.
func totalScore(questions []models.Question) float64 {
	var total float64
	for _, q := range questions {
		if q.Score == nil {
			continue
		}
		score := *q.Score
		if max := policy.MaxScore(q.Difficulty); score > max {
			score = max
		}
		if score < 0 {
			score = 0
		}
		total += score
	}
	return total
}
