package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Ranjith1717-CPU/Civicscoop/config"
	"github.com/Ranjith1717-CPU/Civicscoop/dto"
	"github.com/Ranjith1717-CPU/Civicscoop/services"
)

// AnalyzeMeetingHandler godoc
// @Summary      Analyze a meeting URL
// @Description  Fetch, analyze and store a civic meeting page; returns the stored meeting (failed analyses are stored too)
// @Tags         meetings
// @Accept       json
// @Param        request  body  dto.AnalyzeMeetingRequest  true  "Meeting URL with optional custom title and notes"
// @Produce      json
// @Success      200  {object}  dto.MeetingDTO
// @Failure      400  {object}  map[string]string
// @Router       /meetings/analyze [post]
func AnalyzeMeetingHandler(svc *services.MeetingService, evts *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.AnalyzeMeetingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		m, err := svc.AnalyzeAndStore(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		// publishing is best-effort on the sync path
		if evts != nil {
			if err := evts.PublishMeetingAnalyzed(c.Request.Context(), m); err != nil {
				config.Logger.Warnf("failed to publish meeting.analyzed for %s: %v", m.URL, err)
			}
		}
		c.JSON(http.StatusOK, dto.NewMeetingDTO(*m))
	}
}

// ListMeetingsHandler godoc
// @Summary      List meetings
// @Description  List stored meetings with filters and pagination
// @Tags         meetings
// @Param        page       query  int     false  "Page number (1-based)"
// @Param        page_size  query  int     false  "Page size (<=100)"
// @Param        priority   query  string  false  "Priority filter (critical/high/medium/low)"
// @Param        location   query  string  false  "Location filter (exact, case-insensitive)"
// @Param        topic      query  string  false  "Topic filter (exact, case-insensitive)"
// @Param        status     query  string  false  "Status filter (pending/analyzed/failed)"
// @Produce      json
// @Success      200  {object}  dto.MeetingListDTO
// @Router       /meetings [get]
func ListMeetingsHandler(svc *services.MeetingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in services.ListMeetingsInput
		in.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
		in.PageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
		in.Priority = c.Query("priority")
		in.Location = c.Query("location")
		in.Topic = c.Query("topic")
		in.Status = c.Query("status")

		out, err := svc.List(c.Request.Context(), in)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// GetMeetingHandler godoc
// @Summary      Get meeting by id
// @Description  Get a single meeting by ObjectID
// @Tags         meetings
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  dto.MeetingDTO
// @Failure      404  {object}  map[string]string
// @Router       /meetings/{id} [get]
func GetMeetingHandler(svc *services.MeetingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		m, err := svc.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusOK, m)
	}
}

// DeleteMeetingHandler godoc
// @Summary      Delete meeting
// @Description  Delete a meeting by ObjectID
// @Tags         meetings
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /meetings/{id} [delete]
func DeleteMeetingHandler(svc *services.MeetingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "deleted"})
	}
}

// GetAnalyticsHandler godoc
// @Summary      Dashboard analytics
// @Description  Totals, average accuracy and priority/location/topic distributions
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  dto.AnalyticsDTO
// @Router       /analytics [get]
func GetAnalyticsHandler(svc *services.AnalyticsService) gin.HandlerFunc {
	return func(c *gin.Context) {
		out, err := svc.Compute(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, out)
	}
}

// ListReportsHandler godoc
// @Summary      List reports
// @Description  List recent reports
// @Tags         reports
// @Param        limit  query  int  false  "Max results (<=100)"
// @Produce      json
// @Success      200  {array}  dto.ReportDTO
// @Router       /reports [get]
func ListReportsHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "50"), 10, 64)
		items, err := svc.List(c.Request.Context(), limit)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, items)
	}
}

// CreateReportHandler godoc
// @Summary      Create report
// @Description  Register a report over the stored meetings
// @Tags         reports
// @Accept       json
// @Param        request  body  dto.CreateReportRequest  true  "Report name, type and filters"
// @Produce      json
// @Success      201  {object}  dto.ReportDTO
// @Failure      400  {object}  map[string]string
// @Router       /reports [post]
func CreateReportHandler(svc *services.ReportService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.CreateReportRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		out, err := svc.Create(c.Request.Context(), req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusCreated, out)
	}
}
