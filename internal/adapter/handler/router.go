package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/meeting-summarizer-team/meeting-summarizer/internal/adapter/dto"
	"github.com/meeting-summarizer-team/meeting-summarizer/pkg/config"
	"github.com/meeting-summarizer-team/meeting-summarizer/web"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	meetingHandler *Meeting
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, meetingHandler *Meeting) *Router {
	return &Router{
		cfg:            cfg,
		meetingHandler: meetingHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/health", rt.healthCheck)
	api.POST("/upload-transcript", rt.meetingHandler.UploadTranscript)
	api.POST("/generate-summary", rt.meetingHandler.GenerateSummary)
	api.GET("/meeting/:id", rt.meetingHandler.GetMeeting)
	api.PUT("/meeting/:id/summary", rt.meetingHandler.UpdateSummary)
	api.POST("/share-summary", rt.meetingHandler.ShareSummary)
	api.GET("/meetings", rt.meetingHandler.ListMeetings)

	// Embedded client shell
	e.StaticFS("/", web.Static())
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return HandleSuccess(nil, c, dto.HealthResponse{
		Status:  "OK",
		Message: "Server is running",
	})
}
