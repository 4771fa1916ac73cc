package repositories

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

type ReportRepository struct {
	col *mongo.Collection
}

func NewReportRepository(db *mongo.Database) *ReportRepository {
	return &ReportRepository{col: db.Collection("reports")}
}

// Insert inserts a new report document.
func (r *ReportRepository) Insert(ctx context.Context, rep *models.Report) (*mongo.InsertOneResult, error) {
	now := time.Now()
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = now
	}
	rep.UpdatedAt = now
	return r.col.InsertOne(ctx, rep)
}

// FindByID returns a report by its ObjectID.
func (r *ReportRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Report, error) {
	var rep models.Report
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&rep); err != nil {
		return nil, err
	}
	return &rep, nil
}

// List returns reports sorted by created_at desc.
func (r *ReportRepository) List(ctx context.Context, limit int64) ([]models.Report, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	findOpts := options.Find().SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Report
	for cur.Next(ctx) {
		var rep models.Report
		if err := cur.Decode(&rep); err != nil {
			return nil, err
		}
		results = append(results, rep)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateStatus flips the report status and updated_at.
func (r *ReportRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, filePath string) error {
	set := bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}
	if filePath != "" {
		set["file_path"] = filePath
	}
	_, err := r.col.UpdateByID(ctx, id, bson.M{"$set": set})
	return err
}
