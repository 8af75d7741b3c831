package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gradehub/resultportal-backend/internal/model"
)

// ErrResultNotFound signals that no record matches the lookup credentials.
// It is a domain-level miss, not a server error.
var ErrResultNotFound = errors.New("no matching result record")

// queryTimeout bounds every store call so a slow Mongo node fails closed
// instead of hanging the request.
const queryTimeout = 10 * time.Second

// ResultRepository handles result document access.
type ResultRepository struct {
	col *mongo.Collection
}

// NewResultRepository creates a new ResultRepository over the results
// collection.
func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{col: db.Collection("results")}
}

// EnsureIndexes creates the unique rollNo index. Safe to call on every
// startup; Mongo treats an existing identical index as a no-op.
func (r *ResultRepository) EnsureIndexes(ctx context.Context) error {
	opCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(opCtx, mongo.IndexModel{
		Keys:    bson.D{{Key: "rollNo", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create rollNo index: %w", err)
	}
	return nil
}

// Upsert replaces the record keyed by its roll number, inserting it if
// absent. Returns true when a new document was created. The replace is a
// single atomic document operation; no application-level transaction is
// involved.
func (r *ResultRepository) Upsert(ctx context.Context, rec *model.ResultRecord) (bool, error) {
	opCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.col.ReplaceOne(opCtx,
		bson.M{"rollNo": rec.RollNo},
		rec,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return false, fmt.Errorf("upsert result %s: %w", rec.RollNo, err)
	}
	return res.UpsertedCount > 0, nil
}

// FindByRollNoAndDOB retrieves a record matching both credentials exactly.
// The dob acts as a shared secret in place of per-student authentication.
func (r *ResultRepository) FindByRollNoAndDOB(ctx context.Context, rollNo, dob string) (*model.ResultRecord, error) {
	opCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rec := &model.ResultRecord{}
	err := r.col.FindOne(opCtx, bson.M{"rollNo": rollNo, "dob": dob}).Decode(rec)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrResultNotFound
		}
		return nil, fmt.Errorf("find result %s: %w", rollNo, err)
	}
	return rec, nil
}

// Count returns the number of stored result records.
func (r *ResultRepository) Count(ctx context.Context) (int64, error) {
	opCtx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(opCtx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count results: %w", err)
	}
	return n, nil
}
