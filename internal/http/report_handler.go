package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fed-sentiment/internal/domain"
	"fed-sentiment/internal/render"
	"fed-sentiment/internal/service"
)

const renderFailureMessage = "The report could not be rendered. Please try again later."

// ReportHandler sirve la pagina del reporte y el formulario de la encuesta.
type ReportHandler struct {
	logger  *zap.Logger
	reports *service.ReportService
	survey  *service.SurveyService
}

// NewReportHandler crea una instancia de ReportHandler con dependencias necesarias.
func NewReportHandler(logger *zap.Logger, reports *service.ReportService, survey *service.SurveyService) *ReportHandler {
	return &ReportHandler{
		logger:  logger,
		reports: reports,
		survey:  survey,
	}
}

// Show maneja GET /.
func (h *ReportHandler) Show(c *gin.Context) {
	sessionID, _ := GetSessionID(c)
	state, err := h.survey.State(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("load survey state failed", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Your session could not be loaded.")
		return
	}
	h.renderPage(c, state, nil)
}

// PostSurvey maneja POST /survey (action=update, submit o reset).
func (h *ReportHandler) PostSurvey(c *gin.Context) {
	sessionID, _ := GetSessionID(c)
	events := h.formEvents(c)

	var (
		state domain.SurveyState
		resp  *domain.SurveyResponse
		err   error
	)
	switch c.PostForm("action") {
	case "submit":
		var snapshot domain.SurveyResponse
		snapshot, state, err = h.survey.Submit(c.Request.Context(), sessionID, events)
		resp = &snapshot
	case "reset":
		state, err = h.survey.Reset(c.Request.Context(), sessionID)
	default:
		state, err = h.survey.Update(c.Request.Context(), sessionID, events)
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidControlValue) || errors.Is(err, service.ErrUnknownQuestion) {
			h.logger.Warn("invalid survey form", zap.Error(err))
			h.renderError(c, http.StatusBadRequest, "Invalid survey input.")
			return
		}
		h.logger.Error("survey update failed", zap.Error(err))
		h.renderError(c, http.StatusInternalServerError, "Your answers could not be saved.")
		return
	}
	h.renderPage(c, state, resp)
}

func (h *ReportHandler) formEvents(c *gin.Context) []domain.ControlEvent {
	var events []domain.ControlEvent
	for _, q := range h.survey.Questions() {
		if value, ok := c.GetPostForm(q.ID); ok {
			events = append(events, domain.ControlEvent{QuestionID: q.ID, Value: value})
		}
	}
	return events
}

func (h *ReportHandler) renderPage(c *gin.Context, state domain.SurveyState, resp *domain.SurveyResponse) {
	view := domain.SurveyView{
		Questions: h.survey.Questions(),
		Values:    state.Values,
		Response:  resp,
	}
	page, err := h.reports.Render(c.Request.Context(), view)
	if err != nil {
		h.logger.Error("render pass failed", zap.Error(err))
		h.renderError(c, http.StatusBadGateway, renderFailureMessage)
		return
	}
	c.HTML(http.StatusOK, render.PageTemplateName, page)
}

func (h *ReportHandler) renderError(c *gin.Context, status int, message string) {
	c.HTML(status, render.ErrorTemplateName, gin.H{"Message": message})
}
