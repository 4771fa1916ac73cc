package repositories

import (
	"context"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

type MeetingRepository struct {
	col *mongo.Collection
}

func NewMeetingRepository(db *mongo.Database) *MeetingRepository {
	return &MeetingRepository{col: db.Collection("meetings")}
}

// IsExistByURL checks if a meeting exists for the given URL.
func (r *MeetingRepository) IsExistByURL(ctx context.Context, url string) (bool, error) {
	err := r.col.FindOne(ctx, bson.M{"url": url}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return err == nil, err
}

// UpsertByURL inserts the meeting or updates the existing document with the
// same URL. The stored document's ID is returned either way.
func (r *MeetingRepository) UpsertByURL(ctx context.Context, m *models.Meeting) (primitive.ObjectID, error) {
	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	set := bson.M{
		"updated_at":     m.UpdatedAt,
		"status":         m.Status,
		"custom_title":   m.CustomTitle,
		"notes":          m.Notes,
		"city":           m.City,
		"title":          m.Title,
		"location":       m.Location,
		"meeting_date":   m.MeetingDate,
		"topics":         m.Topics,
		"priority":       m.Priority,
		"priority_score": m.PriorityScore,
		"engagement":     m.Engagement,
		"ai_accuracy":    m.AIAccuracy,
		"summary":        m.Summary,
		"analysis":       m.Analysis,
	}
	if m.ThumbnailURL != "" {
		set["thumbnail_url"] = m.ThumbnailURL
	}

	res := r.col.FindOneAndUpdate(ctx,
		bson.M{"url": m.URL},
		bson.M{
			"$set":         set,
			"$setOnInsert": bson.M{"url": m.URL, "created_at": m.CreatedAt},
		},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	var stored models.Meeting
	if err := res.Decode(&stored); err != nil {
		return primitive.NilObjectID, err
	}
	m.ID = stored.ID
	m.CreatedAt = stored.CreatedAt
	return stored.ID, nil
}

// FindByID returns a meeting by its ObjectID.
func (r *MeetingRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Meeting, error) {
	var m models.Meeting
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

// FindByURL returns a meeting by its URL.
func (r *MeetingRepository) FindByURL(ctx context.Context, url string) (*models.Meeting, error) {
	var m models.Meeting
	if err := r.col.FindOne(ctx, bson.M{"url": url}).Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

type ListMeetingsOptions struct {
	Page     int
	PageSize int
	Priority string
	Location string
	Topic    string
	Status   string
}

// List returns meetings with filters and pagination, sorted by created_at desc.
func (r *MeetingRepository) List(ctx context.Context, opt ListMeetingsOptions) ([]models.Meeting, int64, error) {
	filter := bson.M{}
	if opt.Priority != "" {
		filter["priority"] = opt.Priority
	}
	if opt.Location != "" {
		filter["location"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opt.Location) + "$", Options: "i"}
	}
	if opt.Topic != "" {
		filter["topics"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(opt.Topic) + "$", Options: "i"}
	}
	if opt.Status != "" {
		filter["status"] = opt.Status
	}

	if opt.Page <= 0 {
		opt.Page = 1
	}
	if opt.PageSize <= 0 || opt.PageSize > 100 {
		opt.PageSize = 20
	}
	skip := int64((opt.Page - 1) * opt.PageSize)
	limit := int64(opt.PageSize)

	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().SetSkip(skip).SetLimit(limit).SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})
	cur, err := r.col.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var results []models.Meeting
	for cur.Next(ctx) {
		var m models.Meeting
		if err := cur.Decode(&m); err != nil {
			return nil, 0, err
		}
		results = append(results, m)
	}
	if err := cur.Err(); err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

// UpdateThumbnailURL sets thumbnail_url field.
func (r *MeetingRepository) UpdateThumbnailURL(ctx context.Context, id primitive.ObjectID, url string) error {
	_, err := r.col.UpdateByID(ctx, id, bson.M{
		"$set": bson.M{"thumbnail_url": url, "updated_at": time.Now()},
	})
	return err
}

// Delete removes a meeting document.
func (r *MeetingRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// FindAll streams every meeting, for analytics aggregation in memory.
func (r *MeetingRepository) FindAll(ctx context.Context) ([]models.Meeting, error) {
	cur, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var results []models.Meeting
	for cur.Next(ctx) {
		var m models.Meeting
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		results = append(results, m)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
