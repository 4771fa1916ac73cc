package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Report statuses.
const (
	ReportStatusGenerating = "generating"
	ReportStatusCompleted  = "completed"
	ReportStatusFailed     = "failed"
)

// Report represents a generated dashboard report document.
// Collection: reports
type Report struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
	Name      string             `bson:"name" json:"name"`
	Type      string             `bson:"type" json:"type"` // "summary", "analytics", "export"
	Status    string             `bson:"status" json:"status"`
	FilePath  string             `bson:"file_path,omitempty" json:"file_path,omitempty"`
	Config    ReportConfig       `bson:"config" json:"config"`
}

// ReportConfig captures the parameters a report was generated with.
type ReportConfig struct {
	From     time.Time `bson:"from,omitempty" json:"from,omitempty"`
	To       time.Time `bson:"to,omitempty" json:"to,omitempty"`
	Priority string    `bson:"priority,omitempty" json:"priority,omitempty"`
	Location string    `bson:"location,omitempty" json:"location,omitempty"`
}
