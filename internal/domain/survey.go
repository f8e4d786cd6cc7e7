package domain

// QuestionKind define el tipo de control de una pregunta.
type QuestionKind string

const (
	QuestionRating QuestionKind = "rating"
	QuestionChoice QuestionKind = "choice"
	QuestionText   QuestionKind = "text"
)

// Question describe un control de la encuesta.
type Question struct {
	ID           string       `json:"id"`
	Prompt       string       `json:"prompt"`
	Kind         QuestionKind `json:"kind"`
	Min          int          `json:"min,omitempty"`
	Max          int          `json:"max,omitempty"`
	Options      []string     `json:"options,omitempty"`
	DefaultValue string       `json:"default"`
}

// HasOption indica si value pertenece al conjunto cerrado de opciones.
func (q Question) HasOption(value string) bool {
	for _, opt := range q.Options {
		if opt == value {
			return true
		}
	}
	return false
}

// SurveyState guarda el valor actual de cada control de una sesion.
type SurveyState struct {
	Values map[string]string `json:"values"`
}

// Clone devuelve una copia independiente del estado.
func (s SurveyState) Clone() SurveyState {
	values := make(map[string]string, len(s.Values))
	for k, v := range s.Values {
		values[k] = v
	}
	return SurveyState{Values: values}
}

// ControlEvent es una interaccion del usuario sobre un control.
type ControlEvent struct {
	QuestionID string `json:"question_id"`
	Value      string `json:"value"`
}

// SurveyResponse es la foto de los siete controles al momento de enviar.
type SurveyResponse struct {
	Q1 int    `json:"Q1"`
	Q2 int    `json:"Q2"`
	Q3 string `json:"Q3"`
	Q4 string `json:"Q4"`
	Q5 string `json:"Q5"`
	Q6 string `json:"Q6"`
	Q7 string `json:"Q7"`
}
