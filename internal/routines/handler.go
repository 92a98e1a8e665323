package routines

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/lufitapp/lufit/internal/auth"
	"github.com/lufitapp/lufit/internal/telemetry/metrics"
	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=routines_mocks_test.go -package=routines_test

type routinesRepo interface {
	CreateRoutine(ctx context.Context, params CreateRoutineParams) (*Routine, error)
	ListRoutines(ctx context.Context, userID int) ([]Routine, error)
	GetRoutine(ctx context.Context, userID, routineID int) (*Routine, error)
	RenameRoutine(ctx context.Context, userID, routineID int, name string) error
	SetActiveRoutine(ctx context.Context, userID, routineID int) error
	DeleteRoutine(ctx context.Context, userID, routineID int) error
	DuplicateRoutine(ctx context.Context, userID, routineID int, newName string) (*Routine, error)

	ListWeeks(ctx context.Context, userID, routineID int) ([]Week, error)
	CreateWeek(ctx context.Context, userID, routineID int, name string) (*Week, error)
	GetWeek(ctx context.Context, userID, weekID int) (*Week, error)

	ListDayTitles(ctx context.Context, userID, weekID int) ([]DayTitle, error)
	AddDay(ctx context.Context, userID, weekID int) (*DayTitle, error)
	RenameDay(ctx context.Context, userID, weekID, dayIndex int, title string) error
	DeleteDay(ctx context.Context, userID, weekID, dayIndex int) error
	ReorderDays(ctx context.Context, userID, weekID int, orderedDayIndexes []int) error

	ListExercises(ctx context.Context, userID, weekID, dayIndex int) ([]Exercise, error)
	AddExercise(ctx context.Context, userID int, exercise Exercise) (*Exercise, error)
	UpdateExerciseTargets(ctx context.Context, userID, exerciseID, seriesTarget int, repsTarget string) error
	UpdateExerciseWeight(ctx context.Context, userID, exerciseID int, weight, unit string) error
	SetExerciseCompleted(ctx context.Context, userID, exerciseID int, completed bool, sensation *string) error
	DeleteExercise(ctx context.Context, userID, exerciseID int) error
	ReorderExercises(ctx context.Context, userID, weekID, dayIndex int, orderedIDs []int) error

	UpsertSet(ctx context.Context, userID int, set ExerciseSet) error
	ListSets(ctx context.Context, userID, exerciseID int) ([]ExerciseSet, error)
}

type Handler struct {
	repo           routinesRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo routinesRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	routinesRouter := mainRouter.PathPrefix("/routines").Subrouter()
	routinesRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("routines-list")
	routinesRouter.HandleFunc("", handler.handleCreate).Methods("POST", "OPTIONS").Name("routines-create")
	routinesRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("routines-get")
	routinesRouter.HandleFunc("/{id}", handler.handleRename).Methods("PUT", "OPTIONS").Name("routines-rename")
	routinesRouter.HandleFunc("/{id}", handler.handleDelete).Methods("DELETE", "OPTIONS").Name("routines-delete")
	routinesRouter.HandleFunc("/{id}/activate", handler.handleActivate).Methods("POST", "OPTIONS").Name("routines-activate")
	routinesRouter.HandleFunc("/{id}/duplicate", handler.handleDuplicate).Methods("POST", "OPTIONS").Name("routines-duplicate")
	routinesRouter.HandleFunc("/{id}/weeks", handler.handleListWeeks).Methods("GET", "OPTIONS").Name("weeks-list")
	routinesRouter.HandleFunc("/{id}/weeks", handler.handleCreateWeek).Methods("POST", "OPTIONS").Name("weeks-create")

	weeksRouter := mainRouter.PathPrefix("/weeks").Subrouter()
	weeksRouter.HandleFunc("/{id}/days", handler.handleListDays).Methods("GET", "OPTIONS").Name("days-list")
	weeksRouter.HandleFunc("/{id}/days", handler.handleAddDay).Methods("POST", "OPTIONS").Name("days-add")
	weeksRouter.HandleFunc("/{id}/days/order", handler.handleReorderDays).Methods("PUT", "OPTIONS").Name("days-reorder")
	weeksRouter.HandleFunc("/{id}/days/{day}", handler.handleRenameDay).Methods("PUT", "OPTIONS").Name("days-rename")
	weeksRouter.HandleFunc("/{id}/days/{day}", handler.handleDeleteDay).Methods("DELETE", "OPTIONS").Name("days-delete")
	weeksRouter.HandleFunc("/{id}/days/{day}/exercises", handler.handleListExercises).Methods("GET", "OPTIONS").Name("exercises-list")
	weeksRouter.HandleFunc("/{id}/days/{day}/exercises", handler.handleAddExercise).Methods("POST", "OPTIONS").Name("exercises-add")
	weeksRouter.HandleFunc("/{id}/days/{day}/exercises/order", handler.handleReorderExercises).Methods("PUT", "OPTIONS").Name("exercises-reorder")

	exercisesRouter := mainRouter.PathPrefix("/exercises").Subrouter()
	exercisesRouter.HandleFunc("/{id}", handler.handleUpdateExercise).Methods("PUT", "OPTIONS").Name("exercises-update")
	exercisesRouter.HandleFunc("/{id}", handler.handleDeleteExercise).Methods("DELETE", "OPTIONS").Name("exercises-delete")
	exercisesRouter.HandleFunc("/{id}/weight", handler.handleUpdateWeight).Methods("PUT", "OPTIONS").Name("exercises-weight")
	exercisesRouter.HandleFunc("/{id}/completed", handler.handleSetCompleted).Methods("PUT", "OPTIONS").Name("exercises-completed")
	exercisesRouter.HandleFunc("/{id}/sets", handler.handleListSets).Methods("GET", "OPTIONS").Name("sets-list")
	exercisesRouter.HandleFunc("/{id}/sets/{setIndex}", handler.handleUpsertSet).Methods("PUT", "OPTIONS").Name("sets-upsert")
}

func userIDOrAbort(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}

func pathID(r *http.Request, name string) (int, error) {
	return strconv.Atoi(mux.Vars(r)[name])
}

func writeJSON(w http.ResponseWriter, payload any, statusCode int) {
	respBytes, err := json.Marshal(payload)
	if err != nil {
		log.Errorf("marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, statusCode)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.list")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}

	routines, err := handler.repo.ListRoutines(ctx, userID)
	if err != nil {
		log.Errorf("failed to list routines for user %d: %s", userID, err)
		http.Error(w, "failed to list routines", http.StatusInternalServerError)
		return
	}
	writeJSON(w, routines, http.StatusOK)
}

type createRoutineRequest struct {
	Name    string `json:"name"`
	NumDays int    `json:"numDays"`
}

func (handler *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.create")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}

	var req createRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "create routine failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}
	if req.NumDays < 1 || req.NumDays > MaxDaysPerWeek {
		http.Error(w, "error, days must be between 1 and 7", http.StatusBadRequest)
		return
	}

	routine, err := handler.repo.CreateRoutine(ctx, CreateRoutineParams{
		UserID:  userID,
		Name:    req.Name,
		NumDays: req.NumDays,
	})
	if errors.Is(err, ErrRoutineLimitReached) {
		http.Error(w, "routine limit reached", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("failed to create routine for user %d: %s", userID, err)
		http.Error(w, "create routine failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRoutinesCreated.Inc()
	writeJSON(w, routine, http.StatusCreated)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.get")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	routine, err := handler.repo.GetRoutine(ctx, userID, routineID)
	if errors.Is(err, ErrRoutineNotFound) {
		http.Error(w, "routine not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get routine %d: %s", routineID, err)
		http.Error(w, "failed to get routine", http.StatusInternalServerError)
		return
	}
	writeJSON(w, routine, http.StatusOK)
}

func (handler *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.delete")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	err = handler.repo.DeleteRoutine(ctx, userID, routineID)
	switch {
	case errors.Is(err, ErrLastRoutine):
		http.Error(w, "cannot delete the only routine", http.StatusConflict)
		return
	case errors.Is(err, ErrRoutineNotFound):
		http.Error(w, "routine not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to delete routine %d: %s", routineID, err)
		http.Error(w, "delete routine failed", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]int{"deletedId": routineID}, http.StatusOK)
}

type renameRoutineRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) handleRename(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.rename")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var renameReq renameRoutineRequest
	if err := json.NewDecoder(r.Body).Decode(&renameReq); err != nil {
		http.Error(w, "rename routine failed", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(renameReq.Name) == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	err = handler.repo.RenameRoutine(ctx, userID, routineID, strings.TrimSpace(renameReq.Name))
	if errors.Is(err, ErrRoutineNotFound) {
		http.Error(w, "routine not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to rename routine %d: %s", routineID, err)
		http.Error(w, "rename routine failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "renamed")
}

func (handler *Handler) handleActivate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.activate")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetActiveRoutine(ctx, userID, routineID); err != nil {
		if errors.Is(err, ErrRoutineNotFound) {
			http.Error(w, "routine not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to activate routine %d: %s", routineID, err)
		http.Error(w, "activate routine failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "activated")
}

type duplicateRoutineRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) handleDuplicate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.duplicate")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req duplicateRoutineRequest
	if r.Body != nil {
		// name is optional, decode errors mean an empty body
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	copied, err := handler.repo.DuplicateRoutine(ctx, userID, routineID, req.Name)
	switch {
	case errors.Is(err, ErrRoutineLimitReached):
		http.Error(w, "routine limit reached", http.StatusConflict)
		return
	case errors.Is(err, ErrRoutineNotFound):
		http.Error(w, "routine not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to duplicate routine %d: %s", routineID, err)
		http.Error(w, "duplicate routine failed", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRoutinesCreated.Inc()
	writeJSON(w, copied, http.StatusCreated)
}

func (handler *Handler) handleListWeeks(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.listWeeks")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	weeks, err := handler.repo.ListWeeks(ctx, userID, routineID)
	if err != nil {
		log.Errorf("failed to list weeks of routine %d: %s", routineID, err)
		http.Error(w, "failed to list weeks", http.StatusInternalServerError)
		return
	}
	writeJSON(w, weeks, http.StatusOK)
}

type createWeekRequest struct {
	Name string `json:"name"`
}

func (handler *Handler) handleCreateWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.createWeek")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	routineID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req createWeekRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "create week failed", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "error, name empty", http.StatusBadRequest)
		return
	}

	week, err := handler.repo.CreateWeek(ctx, userID, routineID, req.Name)
	if errors.Is(err, ErrRoutineNotFound) {
		http.Error(w, "routine not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to create week in routine %d: %s", routineID, err)
		http.Error(w, "create week failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, week, http.StatusCreated)
}

func (handler *Handler) handleListDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.listDays")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	days, err := handler.repo.ListDayTitles(ctx, userID, weekID)
	if err != nil {
		log.Errorf("failed to list days of week %d: %s", weekID, err)
		http.Error(w, "failed to list days", http.StatusInternalServerError)
		return
	}
	writeJSON(w, days, http.StatusOK)
}

func (handler *Handler) handleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.addDay")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	day, err := handler.repo.AddDay(ctx, userID, weekID)
	if errors.Is(err, ErrWeekNotFound) {
		http.Error(w, "week not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to add day to week %d: %s", weekID, err)
		http.Error(w, "add day failed", http.StatusBadRequest)
		return
	}
	writeJSON(w, day, http.StatusCreated)
}

type renameDayRequest struct {
	Title string `json:"title"`
}

func (handler *Handler) handleRenameDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.renameDay")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	dayIndex, err := pathID(r, "day")
	if err != nil {
		http.Error(w, "error, day NaN", http.StatusBadRequest)
		return
	}

	var req renameDayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Title == "" {
		http.Error(w, "error, title empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.RenameDay(ctx, userID, weekID, dayIndex, req.Title); err != nil {
		if errors.Is(err, ErrDayNotFound) {
			http.Error(w, "day not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to rename day %d of week %d: %s", dayIndex, weekID, err)
		http.Error(w, "rename day failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "renamed")
}

func (handler *Handler) handleDeleteDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.deleteDay")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	dayIndex, err := pathID(r, "day")
	if err != nil {
		http.Error(w, "error, day NaN", http.StatusBadRequest)
		return
	}

	err = handler.repo.DeleteDay(ctx, userID, weekID, dayIndex)
	switch {
	case errors.Is(err, ErrLastDay):
		http.Error(w, "cannot delete the only day", http.StatusConflict)
		return
	case errors.Is(err, ErrWeekNotFound), errors.Is(err, ErrDayNotFound):
		http.Error(w, "day not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to delete day %d of week %d: %s", dayIndex, weekID, err)
		http.Error(w, "delete day failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "deleted")
}

type reorderRequest struct {
	Order []int `json:"order"`
}

func (handler *Handler) handleReorderDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.reorderDays")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Order) == 0 {
		http.Error(w, "error, order empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.ReorderDays(ctx, userID, weekID, req.Order); err != nil {
		if errors.Is(err, ErrWeekNotFound) || errors.Is(err, ErrDayNotFound) {
			http.Error(w, "day not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to reorder days of week %d: %s", weekID, err)
		http.Error(w, "reorder days failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "reordered")
}

func (handler *Handler) handleListExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.listExercises")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	dayIndex, err := pathID(r, "day")
	if err != nil {
		http.Error(w, "error, day NaN", http.StatusBadRequest)
		return
	}

	exercises, err := handler.repo.ListExercises(ctx, userID, weekID, dayIndex)
	if err != nil {
		log.Errorf("failed to list exercises of week %d day %d: %s", weekID, dayIndex, err)
		http.Error(w, "failed to list exercises", http.StatusInternalServerError)
		return
	}
	writeJSON(w, exercises, http.StatusOK)
}

type addExerciseRequest struct {
	LibraryID    *int    `json:"libraryId,omitempty"`
	CustomName   *string `json:"customName,omitempty"`
	SeriesTarget int     `json:"seriesTarget"`
	RepsTarget   string  `json:"repsTarget"`
	Weight       string  `json:"weight"`
	Unit         string  `json:"unit"`
}

func (handler *Handler) handleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.addExercise")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	dayIndex, err := pathID(r, "day")
	if err != nil {
		http.Error(w, "error, day NaN", http.StatusBadRequest)
		return
	}

	var req addExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "add exercise failed", http.StatusBadRequest)
		return
	}
	if req.SeriesTarget <= 0 {
		req.SeriesTarget = 3
	}

	exercise, err := handler.repo.AddExercise(ctx, userID, Exercise{
		WeekID:       weekID,
		DayIndex:     dayIndex,
		LibraryID:    req.LibraryID,
		CustomName:   req.CustomName,
		SeriesTarget: req.SeriesTarget,
		RepsTarget:   req.RepsTarget,
		Weight:       req.Weight,
		Unit:         req.Unit,
	})
	switch {
	case errors.Is(err, ErrExerciseIdentity):
		http.Error(w, "error, exercise needs library id or custom name", http.StatusBadRequest)
		return
	case errors.Is(err, ErrWeekNotFound):
		http.Error(w, "week not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to add exercise to week %d day %d: %s", weekID, dayIndex, err)
		http.Error(w, "add exercise failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, exercise, http.StatusCreated)
}

type updateExerciseRequest struct {
	SeriesTarget int    `json:"seriesTarget"`
	RepsTarget   string `json:"repsTarget"`
}

func (handler *Handler) handleUpdateExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.updateExercise")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	exerciseID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req updateExerciseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}
	if req.SeriesTarget <= 0 {
		http.Error(w, "error, series target must be positive", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateExerciseTargets(ctx, userID, exerciseID, req.SeriesTarget, req.RepsTarget); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update exercise %d: %s", exerciseID, err)
		http.Error(w, "update exercise failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]int{"updatedId": exerciseID}, http.StatusOK)
}

type updateWeightRequest struct {
	Weight string `json:"weight"`
	Unit   string `json:"unit"`
}

func (handler *Handler) handleUpdateWeight(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.updateWeight")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	exerciseID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req updateWeightRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "update weight failed", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UpdateExerciseWeight(ctx, userID, exerciseID, req.Weight, req.Unit); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to update weight of exercise %d: %s", exerciseID, err)
		http.Error(w, "update weight failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "updated")
}

type setCompletedRequest struct {
	Completed bool    `json:"completed"`
	Sensation *string `json:"sensation,omitempty"`
}

func (handler *Handler) handleSetCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.setCompleted")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	exerciseID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var req setCompletedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "update exercise failed", http.StatusBadRequest)
		return
	}
	if req.Sensation != nil && !ValidSensation(*req.Sensation) {
		http.Error(w, "error, sensation must be light, optimal or excessive", http.StatusBadRequest)
		return
	}

	if err := handler.repo.SetExerciseCompleted(ctx, userID, exerciseID, req.Completed, req.Sensation); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to set completed on exercise %d: %s", exerciseID, err)
		http.Error(w, "update exercise failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "updated")
}

func (handler *Handler) handleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.deleteExercise")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	exerciseID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.DeleteExercise(ctx, userID, exerciseID); err != nil {
		if errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to delete exercise %d: %s", exerciseID, err)
		http.Error(w, "delete exercise failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]int{"deletedId": exerciseID}, http.StatusOK)
}

func (handler *Handler) handleReorderExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.reorderExercises")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	weekID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	dayIndex, err := pathID(r, "day")
	if err != nil {
		http.Error(w, "error, day NaN", http.StatusBadRequest)
		return
	}

	var req reorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Order) == 0 {
		http.Error(w, "error, order empty", http.StatusBadRequest)
		return
	}

	if err := handler.repo.ReorderExercises(ctx, userID, weekID, dayIndex, req.Order); err != nil {
		if errors.Is(err, ErrWeekNotFound) || errors.Is(err, ErrExerciseNotFound) {
			http.Error(w, "exercise not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to reorder exercises of week %d day %d: %s", weekID, dayIndex, err)
		http.Error(w, "reorder exercises failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "reordered")
}

type upsertSetRequest struct {
	RepsDone   int     `json:"repsDone"`
	WeightDone float64 `json:"weightDone"`
	Completed  bool    `json:"completed"`
	Sensation  *string `json:"sensation,omitempty"`
}

func (handler *Handler) handleUpsertSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.upsertSet")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	exerciseID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}
	setIndex, err := pathID(r, "setIndex")
	if err != nil || setIndex < 1 {
		http.Error(w, "error, set index must be >= 1", http.StatusBadRequest)
		return
	}

	var req upsertSetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "log set failed", http.StatusBadRequest)
		return
	}
	if req.Sensation != nil && !ValidSensation(*req.Sensation) {
		http.Error(w, "error, sensation must be light, optimal or excessive", http.StatusBadRequest)
		return
	}

	err = handler.repo.UpsertSet(ctx, userID, ExerciseSet{
		ExerciseID: exerciseID,
		SetIndex:   setIndex,
		RepsDone:   req.RepsDone,
		WeightDone: req.WeightDone,
		Completed:  req.Completed,
		Sensation:  req.Sensation,
	})
	if errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	}
	if errors.Is(err, ErrSetIndexOutOfRange) {
		http.Error(w, "error, set index exceeds series target", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("failed to log set %d of exercise %d: %s", setIndex, exerciseID, err)
		http.Error(w, "log set failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "logged")
}

func (handler *Handler) handleListSets(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "routinesHandler.listSets")
	defer span.End()

	userID, ok := userIDOrAbort(w, r)
	if !ok {
		return
	}
	exerciseID, err := pathID(r, "id")
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	sets, err := handler.repo.ListSets(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to list sets of exercise %d: %s", exerciseID, err)
		http.Error(w, "failed to list sets", http.StatusInternalServerError)
		return
	}
	writeJSON(w, sets, http.StatusOK)
}
