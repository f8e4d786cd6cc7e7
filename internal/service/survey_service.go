package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"fed-sentiment/internal/domain"
)

const (
	ratingMin     = 1
	ratingMax     = 10
	ratingDefault = 5
)

var (
	ErrSurveyNotConfigured = errors.New("survey service not configured")
	ErrUnknownQuestion     = errors.New("unknown survey question")
	ErrInvalidControlValue = errors.New("invalid survey control value")
	ErrSessionRequired     = errors.New("survey session required")
)

var surveyQuestions = []domain.Question{
	{
		ID:           "Q1",
		Prompt:       "On a scale from 1 to 10, how would you rate the suitability of the approach undertaken by developed countries central banks in addressing current inflation trends? (1 = Not Suitable at All, 10 = Extremely Suitable)",
		Kind:         domain.QuestionRating,
		Min:          ratingMin,
		Max:          ratingMax,
		DefaultValue: strconv.Itoa(ratingDefault),
	},
	{
		ID:           "Q2",
		Prompt:       "On a scale from 1 to 10, how would you rate the suitability of the approach undertaken by developing countries central banks in addressing current inflation trends? (1 = Not Suitable at All, 10 = Extremely Suitable)",
		Kind:         domain.QuestionRating,
		Min:          ratingMin,
		Max:          ratingMax,
		DefaultValue: strconv.Itoa(ratingDefault),
	},
	{
		ID:           "Q3",
		Prompt:       `To what extent do you agree with the following statement: "The 2008 Global Financial Crisis (GFC) highlighted the critical importance of regulatory intervention and supervision over the banking system, a relevance further underscored by the Covid-19 pandemic."`,
		Kind:         domain.QuestionChoice,
		Options:      []string{"Strongly Agree", "Agree", "Neutral", "Disagree", "Strongly Disagree"},
		DefaultValue: "Neutral",
	},
	{
		ID:           "Q4",
		Prompt:       "Do you support the Bank of Japan's recent decision to hike interest rates for the first time since the Global Financial Crisis and end its yield curve control program?",
		Kind:         domain.QuestionChoice,
		Options:      []string{"Yes", "No", "Not sure"},
		DefaultValue: "Not sure",
	},
	{
		ID:           "Q5",
		Prompt:       "What are your thoughts on the use of quantitative easing as a tool for economic stabilization?",
		Kind:         domain.QuestionChoice,
		Options:      []string{"Strongly Support", "Support", "Oppose", "Strongly Oppose", "No Opinion"},
		DefaultValue: "No Opinion",
	},
	{
		ID:           "Q6",
		Prompt:       "Do you think that the Federal Reserve will cut interest rates at the June meeting?",
		Kind:         domain.QuestionChoice,
		Options:      []string{"Yes", "No", "Not sure"},
		DefaultValue: "Not sure",
	},
	{
		ID:           "Q7",
		Prompt:       "Please share any additional thoughts or insights on current monetary policies and their impact on the economy.",
		Kind:         domain.QuestionText,
		DefaultValue: "",
	},
}

// SurveyService maneja los controles de la encuesta y el envio.
type SurveyService struct {
	store  SurveyStateStore
	ttl    time.Duration
	logger *zap.Logger
	byID   map[string]domain.Question
}

// NewSurveyService crea el servicio. Sin store, las operaciones de sesion devuelven ErrSurveyNotConfigured.
func NewSurveyService(store SurveyStateStore, ttl time.Duration, logger *zap.Logger) *SurveyService {
	if logger == nil {
		logger = zap.NewNop()
	}
	byID := make(map[string]domain.Question, len(surveyQuestions))
	for _, q := range surveyQuestions {
		byID[q.ID] = q
	}
	return &SurveyService{
		store:  store,
		ttl:    ttl,
		logger: logger,
		byID:   byID,
	}
}

// Questions devuelve el catalogo fijo en orden de presentacion.
func (s *SurveyService) Questions() []domain.Question {
	out := make([]domain.Question, len(surveyQuestions))
	for i, q := range surveyQuestions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// DefaultState devuelve todos los controles en su valor por defecto.
func (s *SurveyService) DefaultState() domain.SurveyState {
	values := make(map[string]string, len(surveyQuestions))
	for _, q := range surveyQuestions {
		values[q.ID] = q.DefaultValue
	}
	return domain.SurveyState{Values: values}
}

// Apply devuelve un estado nuevo con el evento aplicado; state no se modifica.
func (s *SurveyService) Apply(state domain.SurveyState, event domain.ControlEvent) (domain.SurveyState, error) {
	q, ok := s.byID[strings.TrimSpace(event.QuestionID)]
	if !ok {
		return state, fmt.Errorf("%w: %q", ErrUnknownQuestion, event.QuestionID)
	}
	value, err := normalizeControlValue(q, event.Value)
	if err != nil {
		return state, err
	}
	next := s.normalize(state)
	next.Values[q.ID] = value
	return next, nil
}

// ApplyAll aplica eventos en orden. Ante el primer error devuelve el estado original.
func (s *SurveyService) ApplyAll(state domain.SurveyState, events []domain.ControlEvent) (domain.SurveyState, error) {
	next := s.normalize(state)
	for _, ev := range events {
		var err error
		next, err = s.Apply(next, ev)
		if err != nil {
			return state, err
		}
	}
	return next, nil
}

// Snapshot lee los siete controles de una vez.
func (s *SurveyService) Snapshot(state domain.SurveyState) domain.SurveyResponse {
	st := s.normalize(state)
	return domain.SurveyResponse{
		Q1: ratingValue(st.Values["Q1"]),
		Q2: ratingValue(st.Values["Q2"]),
		Q3: st.Values["Q3"],
		Q4: st.Values["Q4"],
		Q5: st.Values["Q5"],
		Q6: st.Values["Q6"],
		Q7: st.Values["Q7"],
	}
}

// State devuelve el estado de la sesion, o el de defecto si no existe.
func (s *SurveyService) State(ctx context.Context, sessionID string) (domain.SurveyState, error) {
	if s == nil || s.store == nil {
		return domain.SurveyState{}, ErrSurveyNotConfigured
	}
	if strings.TrimSpace(sessionID) == "" {
		return domain.SurveyState{}, ErrSessionRequired
	}
	state, found, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return domain.SurveyState{}, fmt.Errorf("load survey state: %w", err)
	}
	if !found {
		return s.DefaultState(), nil
	}
	return s.normalize(state), nil
}

// Update aplica eventos y guarda los valores de los controles.
func (s *SurveyService) Update(ctx context.Context, sessionID string, events []domain.ControlEvent) (domain.SurveyState, error) {
	state, err := s.State(ctx, sessionID)
	if err != nil {
		return domain.SurveyState{}, err
	}
	next, err := s.ApplyAll(state, events)
	if err != nil {
		return state, err
	}
	if err := s.store.Save(ctx, sessionID, next, s.ttl); err != nil {
		return state, fmt.Errorf("save survey state: %w", err)
	}
	return next, nil
}

// Submit aplica los eventos pendientes y devuelve la foto. La respuesta no se guarda.
func (s *SurveyService) Submit(ctx context.Context, sessionID string, events []domain.ControlEvent) (domain.SurveyResponse, domain.SurveyState, error) {
	state, err := s.Update(ctx, sessionID, events)
	if err != nil {
		return domain.SurveyResponse{}, state, err
	}
	resp := s.Snapshot(state)
	s.logger.Info("survey submitted", zap.String("session_id", sessionID))
	return resp, state, nil
}

// Reset descarta los valores guardados de la sesion y devuelve el estado por defecto.
func (s *SurveyService) Reset(ctx context.Context, sessionID string) (domain.SurveyState, error) {
	if s == nil || s.store == nil {
		return domain.SurveyState{}, ErrSurveyNotConfigured
	}
	if strings.TrimSpace(sessionID) == "" {
		return domain.SurveyState{}, ErrSessionRequired
	}
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return domain.SurveyState{}, fmt.Errorf("delete survey state: %w", err)
	}
	s.logger.Info("survey reset", zap.String("session_id", sessionID))
	return s.DefaultState(), nil
}

// normalize completa valores faltantes y descarta los que quedaron fuera de dominio.
func (s *SurveyService) normalize(state domain.SurveyState) domain.SurveyState {
	next := state.Clone()
	for _, q := range surveyQuestions {
		v, ok := next.Values[q.ID]
		if !ok {
			next.Values[q.ID] = q.DefaultValue
			continue
		}
		if nv, err := normalizeControlValue(q, v); err == nil {
			next.Values[q.ID] = nv
		} else {
			next.Values[q.ID] = q.DefaultValue
		}
	}
	for id := range next.Values {
		if _, ok := s.byID[id]; !ok {
			delete(next.Values, id)
		}
	}
	return next
}

func normalizeControlValue(q domain.Question, raw string) (string, error) {
	switch q.Kind {
	case domain.QuestionRating:
		n, err := parseRating(raw, q.Min, q.Max)
		if err != nil {
			return "", fmt.Errorf("%w: %s expects an integer, got %q", ErrInvalidControlValue, q.ID, raw)
		}
		return strconv.Itoa(n), nil
	case domain.QuestionChoice:
		if !q.HasOption(raw) {
			return "", fmt.Errorf("%w: %s does not accept %q", ErrInvalidControlValue, q.ID, raw)
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// parseRating lee un entero y lo acota a [lo, hi]; enteros fuera del rango de int tambien se acotan.
func parseRating(raw string, lo, hi int) (int, error) {
	raw = strings.TrimSpace(raw)
	n, err := strconv.Atoi(raw)
	if err != nil {
		if !errors.Is(err, strconv.ErrRange) {
			return 0, err
		}
		if strings.HasPrefix(raw, "-") {
			return lo, nil
		}
		return hi, nil
	}
	return clamp(n, lo, hi), nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func ratingValue(v string) int {
	n, err := parseRating(v, ratingMin, ratingMax)
	if err != nil {
		return ratingDefault
	}
	return n
}
