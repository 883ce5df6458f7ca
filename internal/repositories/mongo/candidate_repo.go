package mongo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"talentflow/interview/internal/interview"
	"talentflow/interview/internal/models"
)

// CandidateRepo wraps the candidates collection.
type CandidateRepo struct{ col *mongo.Collection }

// NewCandidateRepo ensures the unique email index plus the secondary
// indexes the dashboard listing relies on.
func NewCandidateRepo(db *mongo.Database) *CandidateRepo {
	col := db.Collection("candidates")
	r := &CandidateRepo{col: col}

	_, _ = r.col.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "final_score", Value: -1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}}},
	})

	return r
}

func (r *CandidateRepo) Create(ctx context.Context, c *models.Candidate) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	_, err := r.col.InsertOne(ctx, c)
	if mongo.IsDuplicateKeyError(err) {
		return interview.ErrDuplicateEmail
	}
	return err
}

func (r *CandidateRepo) GetByID(ctx context.Context, id string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, interview.ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepo) GetByEmail(ctx context.Context, email string) (*models.Candidate, error) {
	var c models.Candidate
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, interview.ErrCandidateNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CandidateRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	result, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": fields})
	if mongo.IsDuplicateKeyError(err) {
		return interview.ErrDuplicateEmail
	}
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return interview.ErrCandidateNotFound
	}
	return nil
}

func (r *CandidateRepo) List(ctx context.Context, filter interview.ListFilter) ([]models.Candidate, error) {
	query := bson.M{}
	if filter.Status != "" {
		query["status"] = filter.Status
	}

	direction := 1
	if filter.Descending {
		direction = -1
	}
	opts := options.Find().SetSort(bson.D{{Key: filter.SortBy, Value: direction}})

	cur, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.Candidate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
