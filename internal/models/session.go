package models

import (
	"time"

	"talentflow/interview/internal/policy"
)

// Question is one issued interview question, embedded in its session.
// Answer, Score, Feedback and EndTime become non-nil together, exactly once.
type Question struct {
	ID             string            `bson:"id" json:"id"`
	Text           string            `bson:"text" json:"text"`
	Difficulty     policy.Difficulty `bson:"difficulty" json:"difficulty"`
	TimeLimit      int               `bson:"time_limit" json:"time_limit"`
	ExpectedTopics []string          `bson:"expected_topics" json:"expected_topics"`
	Hints          []string          `bson:"hints" json:"hints"`
	Answer         *string           `bson:"answer" json:"answer"`
	Score          *float64          `bson:"score" json:"score"`
	Feedback       string            `bson:"feedback,omitempty" json:"feedback,omitempty"`
	StartTime      time.Time         `bson:"start_time" json:"start_time"`
	EndTime        *time.Time        `bson:"end_time,omitempty" json:"end_time,omitempty"`
}

// Answered reports whether an answer has been recorded for this question.
func (q *Question) Answered() bool {
	return q.Answer != nil
}

// InterviewSession is one candidate's run through the six-question
// interview. It is immutable once IsCompleted is true.
type InterviewSession struct {
	ID                   string     `bson:"_id,omitempty" json:"id"`
	CandidateID          string     `bson:"candidate_id" json:"candidate_id"`
	Questions            []Question `bson:"questions" json:"questions"`
	CurrentQuestionIndex int        `bson:"current_question_index" json:"current_question_index"`
	IsCompleted          bool       `bson:"is_completed" json:"is_completed"`
	StartTime            time.Time  `bson:"start_time" json:"start_time"`
	EndTime              *time.Time `bson:"end_time,omitempty" json:"end_time,omitempty"`
}

// QuestionTexts returns the text of every issued question, in order.
// The generator receives these to avoid repeating itself.
func (s *InterviewSession) QuestionTexts() []string {
	texts := make([]string, 0, len(s.Questions))
	for _, q := range s.Questions {
		texts = append(texts, q.Text)
	}
	return texts
}
