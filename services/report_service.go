package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ranjith1717-CPU/Civicscoop/dto"
	"github.com/Ranjith1717-CPU/Civicscoop/models"
	"github.com/Ranjith1717-CPU/Civicscoop/repositories"
)

// ReportService manages the report registry.
type ReportService struct {
	repo *repositories.ReportRepository
}

func NewReportService(repo *repositories.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// Create registers a report and marks it completed. Generation is
// metadata-only: the dashboard assembles report content client-side from the
// meetings and analytics endpoints.
func (s *ReportService) Create(ctx context.Context, req dto.CreateReportRequest) (*dto.ReportDTO, error) {
	rep := &models.Report{
		Name:   req.Name,
		Type:   req.Type,
		Status: models.ReportStatusGenerating,
		Config: models.ReportConfig{
			From:     req.From,
			To:       req.To,
			Priority: req.Priority,
			Location: req.Location,
		},
	}
	res, err := s.repo.Insert(ctx, rep)
	if err != nil {
		return nil, err
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	rep.ID = id

	if err := s.repo.UpdateStatus(ctx, id, models.ReportStatusCompleted, ""); err != nil {
		return nil, err
	}
	rep.Status = models.ReportStatusCompleted

	d := dto.NewReportDTO(*rep)
	return &d, nil
}

// List returns the most recent reports.
func (s *ReportService) List(ctx context.Context, limit int64) ([]dto.ReportDTO, error) {
	items, err := s.repo.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ReportDTO, 0, len(items))
	for _, r := range items {
		out = append(out, dto.NewReportDTO(r))
	}
	return out, nil
}
