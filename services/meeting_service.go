package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Ranjith1717-CPU/Civicscoop/analyzer"
	"github.com/Ranjith1717-CPU/Civicscoop/dto"
	"github.com/Ranjith1717-CPU/Civicscoop/models"
	"github.com/Ranjith1717-CPU/Civicscoop/repositories"
)

// MeetingService encapsulates business logic for meetings and DTO mapping.
type MeetingService struct {
	repo     *repositories.MeetingRepository
	analyzer *analyzer.Analyzer
}

func NewMeetingService(repo *repositories.MeetingRepository, a *analyzer.Analyzer) *MeetingService {
	return &MeetingService{repo: repo, analyzer: a}
}

// PriorityScore renders the dashboard priority score derived from the title
// length, clamped to [20,95].
func PriorityScore(title string) string {
	score := len(title) + 50
	if score > 95 {
		score = 95
	}
	if score < 20 {
		score = 20
	}
	return fmt.Sprintf("%d%%", score)
}

// EngagementLabel renders the dashboard engagement label from the analyzer
// estimate.
func EngagementLabel(estimate string) string {
	return estimate + " high engagement"
}

func statusFor(result analyzer.AnalysisResult) string {
	if result.Error != "" {
		return models.MeetingStatusFailed
	}
	return models.MeetingStatusAnalyzed
}

// AnalyzeAndStore runs the analyzer synchronously and upserts the meeting
// keyed by URL. The stored meeting is returned even when analysis failed,
// since error results are regular records.
func (s *MeetingService) AnalyzeAndStore(ctx context.Context, req dto.AnalyzeMeetingRequest) (*models.Meeting, error) {
	result := s.analyzer.Analyze(ctx, req.URL, analyzer.Options{
		CustomTitle: req.CustomTitle,
		Notes:       req.Notes,
	})
	return s.storeResult(ctx, req, *result)
}

// StoreAnalysis persists an analyzer result produced elsewhere (the worker
// path, where markup may have been rendered first).
func (s *MeetingService) StoreAnalysis(ctx context.Context, req dto.AnalyzeMeetingRequest, result analyzer.AnalysisResult) (*models.Meeting, error) {
	return s.storeResult(ctx, req, result)
}

func (s *MeetingService) storeResult(ctx context.Context, req dto.AnalyzeMeetingRequest, result analyzer.AnalysisResult) (*models.Meeting, error) {
	m := &models.Meeting{
		URL:           req.URL,
		CustomTitle:   req.CustomTitle,
		Notes:         req.Notes,
		Status:        statusFor(result),
		Title:         result.Title,
		Location:      result.Location,
		MeetingDate:   result.Date,
		Topics:        result.Topics,
		Priority:      result.Priority,
		PriorityScore: PriorityScore(result.Title),
		Engagement:    EngagementLabel(result.EngagementEstimate),
		AIAccuracy:    result.AIAccuracy,
		Summary:       result.Summary,
		Analysis:      result,
	}
	if _, err := s.repo.UpsertByURL(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

// RegisterPending upserts a bare pending meeting for a discovered URL,
// without running analysis. Returns the stored meeting and whether it was
// already known.
func (s *MeetingService) RegisterPending(ctx context.Context, url, city string) (*models.Meeting, bool, error) {
	exists, err := s.repo.IsExistByURL(ctx, url)
	if err != nil {
		return nil, false, err
	}
	if exists {
		m, err := s.repo.FindByURL(ctx, url)
		return m, true, err
	}
	m := &models.Meeting{
		URL:      url,
		City:     city,
		Status:   models.MeetingStatusPending,
		Title:    "",
		Location: "Unknown",
		Topics:   []string{},
	}
	if _, err := s.repo.UpsertByURL(ctx, m); err != nil {
		return nil, false, err
	}
	return m, false, nil
}

// GetByID loads a meeting by its ObjectID hex and returns a DTO.
func (s *MeetingService) GetByID(ctx context.Context, hexID string) (*dto.MeetingDTO, error) {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return nil, err
	}
	m, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	d := dto.NewMeetingDTO(*m)
	return &d, nil
}

type ListMeetingsInput struct {
	Page     int
	PageSize int
	Priority string
	Location string
	Topic    string
	Status   string
}

// List returns meetings with filters and pagination.
func (s *MeetingService) List(ctx context.Context, in ListMeetingsInput) (*dto.MeetingListDTO, error) {
	items, total, err := s.repo.List(ctx, repositories.ListMeetingsOptions{
		Page:     in.Page,
		PageSize: in.PageSize,
		Priority: in.Priority,
		Location: in.Location,
		Topic:    in.Topic,
		Status:   in.Status,
	})
	if err != nil {
		return nil, err
	}
	out := make([]dto.MeetingDTO, 0, len(items))
	for _, m := range items {
		out = append(out, dto.NewMeetingDTO(m))
	}
	page := in.Page
	if page <= 0 {
		page = 1
	}
	pageSize := in.PageSize
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}
	return &dto.MeetingListDTO{Items: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Delete removes a meeting by its ObjectID hex.
func (s *MeetingService) Delete(ctx context.Context, hexID string) error {
	id, err := primitive.ObjectIDFromHex(hexID)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
