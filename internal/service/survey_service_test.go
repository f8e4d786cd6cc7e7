package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap"

	"fed-sentiment/internal/domain"
)

func newTestSurveyService() *SurveyService {
	return NewSurveyService(NewMemorySurveyStateStore(), time.Hour, zap.NewNop())
}

func TestSurveyQuestions_Catalog(t *testing.T) {
	svc := newTestSurveyService()
	questions := svc.Questions()
	if len(questions) != 7 {
		t.Fatalf("expected 7 questions, got %d", len(questions))
	}
	for i, q := range questions {
		if q.ID != "Q"+strconv.Itoa(i+1) {
			t.Fatalf("unexpected question order at %d: %s", i, q.ID)
		}
		if q.Prompt == "" {
			t.Fatalf("question %s has empty prompt", q.ID)
		}
		if q.Kind == domain.QuestionChoice && !q.HasOption(q.DefaultValue) {
			t.Fatalf("question %s default %q not in options", q.ID, q.DefaultValue)
		}
	}

	questions[2].Options[0] = "tampered"
	if svc.Questions()[2].Options[0] != "Strongly Agree" {
		t.Fatalf("Questions must return a copy of the catalog")
	}
}

func TestSurveySnapshot_Defaults(t *testing.T) {
	svc := newTestSurveyService()
	got := svc.Snapshot(svc.DefaultState())
	want := domain.SurveyResponse{Q1: 5, Q2: 5, Q3: "Neutral", Q4: "Not sure", Q5: "No Opinion", Q6: "Not sure", Q7: ""}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("default snapshot mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(want, svc.Snapshot(domain.SurveyState{})); diff != "" {
		t.Fatalf("empty state must snapshot as defaults (-want +got):\n%s", diff)
	}
}

func TestSurveyApply_RatingsAreClamped(t *testing.T) {
	svc := newTestSurveyService()
	cases := []struct {
		raw  string
		want int
	}{
		{"-3", 1},
		{"0", 1},
		{"1", 1},
		{" 7 ", 7},
		{"10", 10},
		{"42", 10},
		{"99999999999999999999", 10},
		{"-99999999999999999999", 1},
		{"+3", 3},
	}
	for _, tc := range cases {
		state, err := svc.Apply(svc.DefaultState(), domain.ControlEvent{QuestionID: "Q2", Value: tc.raw})
		if err != nil {
			t.Fatalf("apply %q: %v", tc.raw, err)
		}
		if got := svc.Snapshot(state).Q2; got != tc.want {
			t.Fatalf("rating %q: expected %d, got %d", tc.raw, tc.want, got)
		}
	}

	if _, err := svc.Apply(svc.DefaultState(), domain.ControlEvent{QuestionID: "Q1", Value: "7.5"}); !errors.Is(err, ErrInvalidControlValue) {
		t.Fatalf("expected ErrInvalidControlValue for non-integer rating, got %v", err)
	}
	if _, err := svc.Apply(svc.DefaultState(), domain.ControlEvent{QuestionID: "Q1", Value: "1e+21"}); !errors.Is(err, ErrInvalidControlValue) {
		t.Fatalf("expected ErrInvalidControlValue for exponent notation, got %v", err)
	}
}

func TestSurveyApply_ChoicesStayInDomain(t *testing.T) {
	svc := newTestSurveyService()
	state, err := svc.Apply(svc.DefaultState(), domain.ControlEvent{QuestionID: "Q5", Value: "Strongly Support"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := svc.Snapshot(state).Q5; got != "Strongly Support" {
		t.Fatalf("expected Strongly Support, got %q", got)
	}

	before := svc.Snapshot(state)
	after, err := svc.Apply(state, domain.ControlEvent{QuestionID: "Q5", Value: "Maybe"})
	if !errors.Is(err, ErrInvalidControlValue) {
		t.Fatalf("expected ErrInvalidControlValue, got %v", err)
	}
	if diff := cmp.Diff(before, svc.Snapshot(after)); diff != "" {
		t.Fatalf("rejected event must not change state:\n%s", diff)
	}

	if _, err := svc.Apply(state, domain.ControlEvent{QuestionID: "Q9", Value: "Yes"}); !errors.Is(err, ErrUnknownQuestion) {
		t.Fatalf("expected ErrUnknownQuestion, got %v", err)
	}
}

func TestSurveyApply_DoesNotMutateInput(t *testing.T) {
	svc := newTestSurveyService()
	state := svc.DefaultState()
	next, err := svc.Apply(state, domain.ControlEvent{QuestionID: "Q7", Value: "rates should stay higher for longer"})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if state.Values["Q7"] != "" {
		t.Fatalf("input state mutated: %q", state.Values["Q7"])
	}
	if next.Values["Q7"] != "rates should stay higher for longer" {
		t.Fatalf("free text not captured: %q", next.Values["Q7"])
	}
}

func TestSurveyApplyAll_RollsBackOnError(t *testing.T) {
	svc := newTestSurveyService()
	state := svc.DefaultState()
	got, err := svc.ApplyAll(state, []domain.ControlEvent{
		{QuestionID: "Q1", Value: "9"},
		{QuestionID: "Q4", Value: "Perhaps"},
	})
	if !errors.Is(err, ErrInvalidControlValue) {
		t.Fatalf("expected ErrInvalidControlValue, got %v", err)
	}
	if got.Values["Q1"] != "5" {
		t.Fatalf("expected original state back, got Q1=%q", got.Values["Q1"])
	}
}

func TestSurveySubmit_IdempotentSnapshots(t *testing.T) {
	svc := newTestSurveyService()
	ctx := context.Background()

	events := []domain.ControlEvent{
		{QuestionID: "Q1", Value: "8"},
		{QuestionID: "Q3", Value: "Agree"},
		{QuestionID: "Q7", Value: "QT is overdue"},
	}
	first, _, err := svc.Submit(ctx, "s1", events)
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}
	second, _, err := svc.Submit(ctx, "s1", nil)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("submits with unchanged input differ (-first +second):\n%s", diff)
	}
	if first.Q1 != 8 || first.Q3 != "Agree" || first.Q7 != "QT is overdue" || first.Q2 != 5 {
		t.Fatalf("unexpected snapshot: %+v", first)
	}
}

func TestSurveySessions_AreIsolated(t *testing.T) {
	svc := newTestSurveyService()
	ctx := context.Background()

	if _, err := svc.Update(ctx, "alice", []domain.ControlEvent{{QuestionID: "Q6", Value: "Yes"}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	bob, err := svc.State(ctx, "bob")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if bob.Values["Q6"] != "Not sure" {
		t.Fatalf("expected bob to keep defaults, got %q", bob.Values["Q6"])
	}
	alice, _ := svc.State(ctx, "alice")
	if alice.Values["Q6"] != "Yes" {
		t.Fatalf("expected alice value kept, got %q", alice.Values["Q6"])
	}
}

func TestSurveyService_Validation(t *testing.T) {
	var nilSvc *SurveyService
	if _, err := nilSvc.State(context.Background(), "s1"); !errors.Is(err, ErrSurveyNotConfigured) {
		t.Fatalf("expected ErrSurveyNotConfigured, got %v", err)
	}

	svc := NewSurveyService(nil, time.Hour, nil)
	if _, err := svc.State(context.Background(), "s1"); !errors.Is(err, ErrSurveyNotConfigured) {
		t.Fatalf("expected ErrSurveyNotConfigured without store, got %v", err)
	}

	svc = newTestSurveyService()
	if _, _, err := svc.Submit(context.Background(), "  ", nil); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

type failingStore struct {
	SurveyStateStore
	err error
}

func (f failingStore) Save(context.Context, string, domain.SurveyState, time.Duration) error {
	return f.err
}

func TestSurveyUpdate_StoreFailure(t *testing.T) {
	store := failingStore{SurveyStateStore: NewMemorySurveyStateStore(), err: errors.New("redis down")}
	svc := NewSurveyService(store, time.Hour, zap.NewNop())
	if _, _, err := svc.Submit(context.Background(), "s1", nil); err == nil {
		t.Fatalf("expected store error to propagate")
	}
}

func TestSurveyState_NormalizesStoredValues(t *testing.T) {
	store := NewMemorySurveyStateStore()
	ctx := context.Background()
	_ = store.Save(ctx, "s1", domain.SurveyState{Values: map[string]string{"Q1": "99", "Q3": "bogus", "Qx": "junk"}}, time.Hour)

	svc := NewSurveyService(store, time.Hour, zap.NewNop())
	state, err := svc.State(ctx, "s1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Values["Q1"] != "10" || state.Values["Q3"] != "Neutral" {
		t.Fatalf("unexpected normalized values: %+v", state.Values)
	}
	if _, ok := state.Values["Qx"]; ok {
		t.Fatalf("unknown keys must be dropped")
	}
}

func TestSurveyReset_DropsStoredValues(t *testing.T) {
	svc := newTestSurveyService()
	ctx := context.Background()

	if _, err := svc.Update(ctx, "s1", []domain.ControlEvent{{QuestionID: "Q4", Value: "Yes"}}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if _, err := svc.Update(ctx, "s2", []domain.ControlEvent{{QuestionID: "Q4", Value: "No"}}); err != nil {
		t.Fatalf("update: %v", err)
	}

	reset, err := svc.Reset(ctx, "s1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if diff := cmp.Diff(svc.DefaultState(), reset); diff != "" {
		t.Fatalf("reset must return defaults (-want +got):\n%s", diff)
	}
	state, err := svc.State(ctx, "s1")
	if err != nil {
		t.Fatalf("state: %v", err)
	}
	if state.Values["Q4"] != "Not sure" {
		t.Fatalf("expected default after reset, got %q", state.Values["Q4"])
	}
	other, _ := svc.State(ctx, "s2")
	if other.Values["Q4"] != "No" {
		t.Fatalf("reset must not touch other sessions, got %q", other.Values["Q4"])
	}

	if _, err := svc.Reset(ctx, ""); !errors.Is(err, ErrSessionRequired) {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}
