package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/Mastercard-Code-For-Change-2-0/Team-2/docs"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/analytics"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/domain"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/dto"
	"github.com/Mastercard-Code-For-Change-2-0/Team-2/internal/service"
)

type Handler struct {
	analytics service.AnalyticsServicer
	router    *gin.Engine
	log       *zap.Logger
}

func NewHandler(analyticsService service.AnalyticsServicer, log *zap.Logger) *Handler {
	h := &Handler{
		analytics: analyticsService,
		router:    gin.Default(),
		log:       log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)

	h.router.POST("/engagements", h.trackEngagement)
	h.router.POST("/engagements/bulk", h.trackEngagementsBulk)

	events := h.router.Group("/events/:id")
	events.POST("/engagements", h.recordEngagement)
	events.GET("/trends", h.getTrends)
	events.POST("/feedback", h.submitFeedback)
	events.GET("/feedback/summary", h.getFeedbackSummary)
	events.POST("/funnel", h.recordFunnelEntry)
	events.GET("/funnel", h.getFunnel)
	events.GET("/funnel/trends", h.getFunnelTrends)
	events.GET("/funnel/dropoff", h.getFunnelDropoff)
	events.POST("/summary", h.rebuildSummary)
	events.GET("/summary", h.getSummary)

	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// validationError reports whether err is caller error rather than a fault in
// the service or its stores.
func validationError(err error) bool {
	return errors.Is(err, domain.ErrUnknownEngagementType) ||
		errors.Is(err, domain.ErrUnknownFunnelStage) ||
		errors.Is(err, domain.ErrUnknownGranularity) ||
		errors.Is(err, domain.ErrInvalidRating) ||
		errors.Is(err, domain.ErrInvalidAttendance) ||
		errors.Is(err, domain.ErrUnresolvedDay)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case validationError(err):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
	case errors.Is(err, domain.ErrDuplicateFeedback):
		c.JSON(http.StatusConflict, dto.ErrorResponse{
			Error:   "conflict",
			Message: err.Error(),
		})
	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// trackEngagement handles POST /engagements
// @Summary Track a single engagement
// @Description Publish a single engagement fact to the queue for asynchronous processing
// @Tags engagements
// @Accept json
// @Produce json
// @Param engagement body dto.TrackEngagementRequest true "Engagement data"
// @Success 202 {object} dto.TrackEngagementResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /engagements [post]
func (h *Handler) trackEngagement(c *gin.Context) {
	var req dto.TrackEngagementRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid engagement request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	event := engagementFromTrackRequest(&req)
	engagementID, err := h.analytics.TrackEngagement(c.Request.Context(), event)
	if err != nil {
		h.log.Error("Failed to track engagement",
			zap.Error(err),
			zap.String("event_id", req.EventID),
			zap.String("user_id", req.UserID))
		h.respondError(c, err)
		return
	}

	h.log.Info("Engagement accepted",
		zap.String("engagement_id", engagementID),
		zap.String("event_id", req.EventID))

	c.JSON(http.StatusAccepted, dto.TrackEngagementResponse{
		EngagementID: engagementID,
		Status:       "accepted",
	})
}

// trackEngagementsBulk handles POST /engagements/bulk
// @Summary Track multiple engagements
// @Description Publish multiple engagement facts in bulk to the queue
// @Tags engagements
// @Accept json
// @Produce json
// @Param engagements body dto.TrackEngagementsBulkRequest true "Bulk engagement data"
// @Success 202 {object} dto.TrackEngagementsBulkResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /engagements/bulk [post]
func (h *Handler) trackEngagementsBulk(c *gin.Context) {
	var bulkRequest dto.TrackEngagementsBulkRequest

	if err := c.ShouldBindJSON(&bulkRequest); err != nil {
		h.log.Warn("Invalid bulk engagement request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	events := make([]domain.EngagementEvent, 0, len(bulkRequest.Engagements))
	for i := range bulkRequest.Engagements {
		events = append(events, *engagementFromTrackRequest(&bulkRequest.Engagements[i]))
	}

	engagementIDs, failures, err := h.analytics.TrackEngagementsBulk(c.Request.Context(), events)
	if err != nil {
		h.log.Error("Failed to track bulk engagements",
			zap.Error(err),
			zap.Int("engagement_count", len(events)))
		h.respondError(c, err)
		return
	}

	h.log.Info("Bulk engagements processed",
		zap.Int("accepted", len(engagementIDs)),
		zap.Int("rejected", len(failures)),
		zap.Int("total", len(events)))

	c.JSON(http.StatusAccepted, dto.TrackEngagementsBulkResponse{
		Accepted:      len(engagementIDs),
		Rejected:      len(failures),
		EngagementIDs: engagementIDs,
		Errors:        failures,
	})
}

// recordEngagement handles POST /events/:id/engagements
// @Summary Record an engagement synchronously
// @Description Store an engagement fact and fold it into the event's daily metric, returning the updated metric
// @Tags engagements
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param engagement body dto.RecordEngagementRequest true "Engagement data"
// @Success 200 {object} domain.DailyMetric
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/engagements [post]
func (h *Handler) recordEngagement(c *gin.Context) {
	var req dto.RecordEngagementRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid engagement request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	event := &domain.EngagementEvent{
		EventID:   c.Param("id"),
		UserID:    req.UserID,
		Type:      domain.EngagementType(req.EngagementType),
		Timestamp: req.Timestamp,
		Metadata:  engagementMetadata(req.Metadata),
	}

	metric, err := h.analytics.RecordEngagement(c.Request.Context(), event)
	if err != nil {
		h.log.Error("Failed to record engagement",
			zap.Error(err),
			zap.String("event_id", event.EventID),
			zap.String("user_id", req.UserID))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metric)
}

// getTrends handles GET /events/:id/trends
// @Summary Get metric trends
// @Description Retrieve an event's metric series at hourly, daily, weekly or monthly granularity
// @Tags metrics
// @Produce json
// @Param id path string true "Event ID"
// @Param granularity query string false "Bucketing granularity" Enums(hourly, daily, weekly, monthly) example:"weekly"
// @Param from query string false "Start date (YYYY-MM-DD)" example:"2025-03-01"
// @Param to query string false "End date (YYYY-MM-DD)" example:"2025-03-31"
// @Success 200 {array} analytics.TrendBucket
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/trends [get]
func (h *Handler) getTrends(c *gin.Context) {
	var req dto.GetTrendsRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid trends request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	granularity, err := analytics.ParseGranularity(req.Granularity)
	if err != nil {
		h.respondError(c, err)
		return
	}

	buckets, err := h.analytics.GetTrends(c.Request.Context(), c.Param("id"), granularity, req.From, req.To)
	if err != nil {
		h.log.Error("Failed to get trends",
			zap.Error(err),
			zap.String("event_id", c.Param("id")),
			zap.String("granularity", string(granularity)))
		h.respondError(c, err)
		return
	}

	if buckets == nil {
		buckets = []analytics.TrendBucket{}
	}
	c.JSON(http.StatusOK, buckets)
}

// submitFeedback handles POST /events/:id/feedback
// @Summary Submit feedback
// @Description Store one user's feedback for an event; a second submission by the same user is rejected
// @Tags feedback
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param feedback body dto.SubmitFeedbackRequest true "Feedback data"
// @Success 201 {object} dto.SubmitFeedbackResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/feedback [post]
func (h *Handler) submitFeedback(c *gin.Context) {
	var req dto.SubmitFeedbackRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid feedback request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	record := &domain.FeedbackRecord{
		EventID: c.Param("id"),
		UserID:  req.UserID,
		Rating: domain.Rating{
			Overall:      req.Rating.Overall,
			Content:      req.Rating.Content,
			Organization: req.Rating.Organization,
			Venue:        req.Rating.Venue,
			Networking:   req.Rating.Networking,
		},
		Liked:            req.Liked,
		Disliked:         req.Disliked,
		Suggestions:      req.Suggestions,
		WouldRecommend:   req.WouldRecommend,
		WouldAttendAgain: req.WouldAttendAgain,
		AttendanceStatus: domain.AttendanceStatus(req.AttendanceStatus),
	}

	if err := h.analytics.SubmitFeedback(c.Request.Context(), record); err != nil {
		h.log.Error("Failed to submit feedback",
			zap.Error(err),
			zap.String("event_id", record.EventID),
			zap.String("user_id", req.UserID))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitFeedbackResponse{Status: "recorded"})
}

// getFeedbackSummary handles GET /events/:id/feedback/summary
// @Summary Get feedback summary
// @Description Aggregate an event's feedback into averages, a rating distribution, sentiment buckets and an NPS-style score
// @Tags feedback
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} analytics.FeedbackSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/feedback/summary [get]
func (h *Handler) getFeedbackSummary(c *gin.Context) {
	summary, err := h.analytics.SummarizeFeedback(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Failed to summarize feedback",
			zap.Error(err),
			zap.String("event_id", c.Param("id")))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// recordFunnelEntry handles POST /events/:id/funnel
// @Summary Record a funnel stage entry
// @Description Append one user's funnel stage entry for an event
// @Tags funnel
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param entry body dto.RecordFunnelEntryRequest true "Funnel entry data"
// @Success 201 {object} dto.RecordFunnelEntryResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/funnel [post]
func (h *Handler) recordFunnelEntry(c *gin.Context) {
	var req dto.RecordFunnelEntryRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid funnel entry request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	entry := &domain.FunnelEntry{
		EventID:   c.Param("id"),
		UserID:    req.UserID,
		Stage:     domain.FunnelStage(req.Stage),
		Timestamp: req.Timestamp,
	}

	if err := h.analytics.RecordFunnelEntry(c.Request.Context(), entry); err != nil {
		h.log.Error("Failed to record funnel entry",
			zap.Error(err),
			zap.String("event_id", entry.EventID),
			zap.String("user_id", req.UserID),
			zap.String("stage", req.Stage))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RecordFunnelEntryResponse{Status: "recorded"})
}

// getFunnel handles GET /events/:id/funnel
// @Summary Get funnel metrics
// @Description Compute stage counts, conversion rates and drop-offs over an event's funnel entries
// @Tags funnel
// @Produce json
// @Param id path string true "Event ID"
// @Param from query string false "Start date (YYYY-MM-DD)" example:"2025-03-01"
// @Param to query string false "End date (YYYY-MM-DD)" example:"2025-03-31"
// @Success 200 {object} analytics.FunnelMetrics
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/funnel [get]
func (h *Handler) getFunnel(c *gin.Context) {
	var req dto.FunnelRangeRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid funnel request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	metrics, err := h.analytics.ComputeFunnel(c.Request.Context(), c.Param("id"), req.From, req.To)
	if err != nil {
		h.log.Error("Failed to compute funnel",
			zap.Error(err),
			zap.String("event_id", c.Param("id")))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// getFunnelTrends handles GET /events/:id/funnel/trends
// @Summary Get funnel trends
// @Description Per-day distinct-user counts per funnel stage
// @Tags funnel
// @Produce json
// @Param id path string true "Event ID"
// @Param from query string false "Start date (YYYY-MM-DD)" example:"2025-03-01"
// @Param to query string false "End date (YYYY-MM-DD)" example:"2025-03-31"
// @Success 200 {array} analytics.FunnelTrendPoint
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/funnel/trends [get]
func (h *Handler) getFunnelTrends(c *gin.Context) {
	var req dto.FunnelRangeRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid funnel trends request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	points, err := h.analytics.FunnelTrends(c.Request.Context(), c.Param("id"), req.From, req.To)
	if err != nil {
		h.log.Error("Failed to get funnel trends",
			zap.Error(err),
			zap.String("event_id", c.Param("id")))
		h.respondError(c, err)
		return
	}

	if points == nil {
		points = []analytics.FunnelTrendPoint{}
	}
	c.JSON(http.StatusOK, points)
}

// getFunnelDropoff handles GET /events/:id/funnel/dropoff
// @Summary Get drop-off analysis
// @Description Classify user journeys and measure inter-stage latency for an event
// @Tags funnel
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} analytics.DropoffAnalysis
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/funnel/dropoff [get]
func (h *Handler) getFunnelDropoff(c *gin.Context) {
	analysis, err := h.analytics.AnalyzeDropoff(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Failed to analyze dropoff",
			zap.Error(err),
			zap.String("event_id", c.Param("id")))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analysis)
}

// rebuildSummary handles POST /events/:id/summary
// @Summary Rebuild the performance summary
// @Description Recompute and persist the event's aggregate summary from stored records
// @Tags summary
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.PerformanceSummary
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/summary [post]
func (h *Handler) rebuildSummary(c *gin.Context) {
	summary, err := h.analytics.BuildPerformanceSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Failed to rebuild performance summary",
			zap.Error(err),
			zap.String("event_id", c.Param("id")))
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// getSummary handles GET /events/:id/summary
// @Summary Get the performance summary
// @Description Retrieve the last persisted performance summary for an event
// @Tags summary
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} domain.PerformanceSummary
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/{id}/summary [get]
func (h *Handler) getSummary(c *gin.Context) {
	summary, err := h.analytics.GetPerformanceSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get performance summary",
			zap.Error(err),
			zap.String("event_id", c.Param("id")))
		h.respondError(c, err)
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error:   "not_found",
			Message: "no summary has been built for this event",
		})
		return
	}

	c.JSON(http.StatusOK, summary)
}

func engagementFromTrackRequest(req *dto.TrackEngagementRequest) *domain.EngagementEvent {
	return &domain.EngagementEvent{
		EventID:   req.EventID,
		UserID:    req.UserID,
		Type:      domain.EngagementType(req.EngagementType),
		Timestamp: req.Timestamp,
		Metadata:  engagementMetadata(req.Metadata),
	}
}

func engagementMetadata(m dto.EngagementMetadata) domain.EngagementMetadata {
	return domain.EngagementMetadata{
		IsUniqueVisitor: m.IsUniqueVisitor,
		Revenue:         m.Revenue,
		Refund:          m.Refund,
		Rating:          m.Rating,
		Source:          m.Source,
		Device:          m.Device,
	}
}
