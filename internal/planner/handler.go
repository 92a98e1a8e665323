package planner

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lufitapp/lufit/internal/auth"
	"github.com/lufitapp/lufit/internal/library"
	"github.com/lufitapp/lufit/internal/routines"
	"github.com/lufitapp/lufit/internal/telemetry/metrics"
	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=planner_mocks_test.go -package=planner_test

type exercisePicker interface {
	ListByMuscle(ctx context.Context, muscle, difficulty string, limit int) ([]library.Entry, error)
}

type planSaver interface {
	SaveGeneratedRoutine(ctx context.Context, userID int, params Params, plan []PlannedDay) (*routines.Routine, error)
}

type Handler struct {
	picker         exercisePicker
	saver          planSaver
	metricsManager *metrics.Manager
}

func NewHandler(picker exercisePicker, saver planSaver, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		picker:         picker,
		saver:          saver,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	plannerRouter := mainRouter.PathPrefix("/planner").Subrouter()
	plannerRouter.HandleFunc("/generate", handler.handleGenerate).Methods("POST", "OPTIONS").Name("planner-generate")
}

var (
	validGoals = map[string]bool{
		GoalGeneral:     true,
		GoalHypertrophy: true,
		GoalStrength:    true,
		GoalFatLoss:     true,
	}
	validLevels = map[string]bool{
		library.DifficultyBeginner:     true,
		library.DifficultyIntermediate: true,
		library.DifficultyAdvanced:     true,
	}
	validFocuses = map[string]bool{
		FocusBalanced: true,
		FocusUpper:    true,
		FocusLower:    true,
	}
)

func (handler *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "plannerHandler.generate")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var params Params
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "generate plan failed", http.StatusBadRequest)
		return
	}
	if params.Focus == "" {
		params.Focus = FocusBalanced
	}
	if params.Days < 3 || params.Days > 5 {
		http.Error(w, "error, days must be 3, 4 or 5", http.StatusBadRequest)
		return
	}
	if !validGoals[params.Goal] {
		http.Error(w, "error, unknown goal", http.StatusBadRequest)
		return
	}
	if !validLevels[params.Level] {
		http.Error(w, "error, unknown level", http.StatusBadRequest)
		return
	}
	if !validFocuses[params.Focus] {
		http.Error(w, "error, unknown focus", http.StatusBadRequest)
		return
	}

	plan, err := BuildPlan(ctx, params, handler.picker.ListByMuscle)
	if err != nil {
		log.Errorf("failed to build plan for user %d: %s", userID, err)
		http.Error(w, "generate plan failed", http.StatusInternalServerError)
		return
	}

	routine, err := handler.saver.SaveGeneratedRoutine(ctx, userID, params, plan)
	if errors.Is(err, routines.ErrRoutineLimitReached) {
		http.Error(w, "routine limit reached", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to save generated routine for user %d: %s", userID, err)
		http.Error(w, "generate plan failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterPlannerRuns.Inc()
	handler.metricsManager.CounterRoutinesCreated.Inc()

	respBytes, err := json.Marshal(routine)
	if err != nil {
		log.Errorf("marshal generated routine: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}
