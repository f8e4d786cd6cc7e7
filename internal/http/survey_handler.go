package http

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fed-sentiment/internal/domain"
	"fed-sentiment/internal/service"
)

const submitAcknowledgment = "Thank you for your responses!"

// SurveyHandler expone la encuesta como API JSON.
type SurveyHandler struct {
	logger *zap.Logger
	survey *service.SurveyService
}

// NewSurveyHandler crea una instancia de SurveyHandler.
func NewSurveyHandler(logger *zap.Logger, survey *service.SurveyService) *SurveyHandler {
	return &SurveyHandler{
		logger: logger,
		survey: survey,
	}
}

type controlsRequest struct {
	Controls map[string]any `json:"controls"`
}

// GetSurvey maneja GET /api/survey.
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	sessionID, _ := GetSessionID(c)
	state, err := h.survey.State(c.Request.Context(), sessionID)
	if err != nil {
		h.logger.Error("load survey state failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load survey"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"questions": h.survey.Questions(), "values": state.Values})
}

// UpdateControls maneja PATCH /api/survey.
func (h *SurveyHandler) UpdateControls(c *gin.Context) {
	events, ok := h.bindEvents(c, true)
	if !ok {
		return
	}
	sessionID, _ := GetSessionID(c)
	state, err := h.survey.Update(c.Request.Context(), sessionID, events)
	if err != nil {
		h.writeError(c, err, "could not update survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": state.Values})
}

// Submit maneja POST /api/survey/submit.
func (h *SurveyHandler) Submit(c *gin.Context) {
	events, ok := h.bindEvents(c, false)
	if !ok {
		return
	}
	sessionID, _ := GetSessionID(c)
	resp, _, err := h.survey.Submit(c.Request.Context(), sessionID, events)
	if err != nil {
		h.writeError(c, err, "could not submit survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "submitted", "message": submitAcknowledgment, "response": resp})
}

// Reset maneja DELETE /api/survey.
func (h *SurveyHandler) Reset(c *gin.Context) {
	sessionID, _ := GetSessionID(c)
	state, err := h.survey.Reset(c.Request.Context(), sessionID)
	if err != nil {
		h.writeError(c, err, "could not reset survey")
		return
	}
	c.JSON(http.StatusOK, gin.H{"values": state.Values})
}

func (h *SurveyHandler) bindEvents(c *gin.Context, required bool) ([]domain.ControlEvent, bool) {
	if !required && c.Request.ContentLength == 0 {
		return nil, true
	}
	var req controlsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid survey request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return nil, false
	}
	events, err := controlEvents(req.Controls)
	if err != nil {
		h.logger.Warn("invalid survey controls", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	return events, true
}

func (h *SurveyHandler) writeError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, service.ErrUnknownQuestion), errors.Is(err, service.ErrInvalidControlValue):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.logger.Error(fallback, zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// controlEvents convierte el JSON en eventos ordenados por id de pregunta.
func controlEvents(controls map[string]any) ([]domain.ControlEvent, error) {
	ids := make([]string, 0, len(controls))
	for id := range controls {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	events := make([]domain.ControlEvent, 0, len(ids))
	for _, id := range ids {
		var value string
		switch v := controls[id].(type) {
		case string:
			value = v
		case float64:
			value = strconv.FormatFloat(v, 'f', -1, 64)
		default:
			return nil, fmt.Errorf("%w: %s has unsupported type %T", service.ErrInvalidControlValue, id, v)
		}
		events = append(events, domain.ControlEvent{QuestionID: id, Value: value})
	}
	return events, nil
}
