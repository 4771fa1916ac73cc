package dto

import (
	"time"

	"github.com/Ranjith1717-CPU/Civicscoop/models"
)

// CreateReportRequest is the POST /reports payload.
type CreateReportRequest struct {
	Name     string    `json:"name" binding:"required"`
	Type     string    `json:"type" binding:"required,oneof=summary analytics export"`
	From     time.Time `json:"from"`
	To       time.Time `json:"to"`
	Priority string    `json:"priority"`
	Location string    `json:"location"`
}

// ReportDTO exposes a generated report.
type ReportDTO struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Status    string    `json:"status"`
	FilePath  string    `json:"file_path,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewReportDTO constructs ReportDTO from models.Report.
func NewReportDTO(r models.Report) ReportDTO {
	return ReportDTO{
		ID:        r.ID.Hex(),
		Name:      r.Name,
		Type:      r.Type,
		Status:    r.Status,
		FilePath:  r.FilePath,
		CreatedAt: r.CreatedAt,
	}
}
