package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"talentflow/interview/internal/interview"
	"talentflow/interview/internal/models"
)

// SessionRepo wraps the sessions collection. Every mutation is one
// single-document update so each logical transition stays atomic at the
// storage layer.
type SessionRepo struct{ col *mongo.Collection }

func NewSessionRepo(db *mongo.Database) *SessionRepo {
	col := db.Collection("sessions")
	r := &SessionRepo{col: col}

	_, _ = r.col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "candidate_id", Value: 1}}},
		{Keys: bson.D{{Key: "is_completed", Value: 1}}},
	})

	return r
}

func (r *SessionRepo) Create(ctx context.Context, s *models.InterviewSession) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	_, err := r.col.InsertOne(ctx, s)
	return err
}

func (r *SessionRepo) GetByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	var s models.InterviewSession
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, interview.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) GetByCandidate(ctx context.Context, candidateID string) (*models.InterviewSession, error) {
	var s models.InterviewSession
	err := r.col.FindOne(ctx, bson.M{"candidate_id": candidateID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, interview.ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepo) AppendQuestion(ctx context.Context, sessionID string, q models.Question, index int) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": sessionID}, bson.M{
		"$push": bson.M{"questions": q},
		"$set":  bson.M{"current_question_index": index},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepo) SetAnswer(ctx context.Context, sessionID string, index int, answer string, score float64, feedback string, endTime time.Time) error {
	key := fmt.Sprintf("questions.%d", index)
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": sessionID}, bson.M{
		"$set": bson.M{
			key + ".answer":   answer,
			key + ".score":    score,
			key + ".feedback": feedback,
			key + ".end_time": endTime,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepo) SetIndex(ctx context.Context, sessionID string, index int) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": sessionID}, bson.M{
		"$set": bson.M{"current_question_index": index},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}

func (r *SessionRepo) Complete(ctx context.Context, sessionID string, endTime time.Time) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": sessionID}, bson.M{
		"$set": bson.M{
			"is_completed": true,
			"end_time":     endTime,
		},
	})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return interview.ErrSessionNotFound
	}
	return nil
}
