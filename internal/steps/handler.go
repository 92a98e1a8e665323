package steps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lufitapp/lufit/internal/auth"
	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=steps_mocks_test.go -package=steps_test

type stepsRepo interface {
	Upsert(ctx context.Context, userID int, date string, stepCount int) error
	Get(ctx context.Context, userID int, date string) (*DailySteps, error)
	List(ctx context.Context, userID int, from, to string) ([]DailySteps, error)
}

type Handler struct {
	repo stepsRepo
}

func NewHandler(repo stepsRepo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	stepsRouter := mainRouter.PathPrefix("/steps").Subrouter()
	stepsRouter.HandleFunc("", handler.handleSave).Methods("POST", "OPTIONS").Name("steps-save")
	stepsRouter.HandleFunc("/today", handler.handleGetToday).Methods("GET", "OPTIONS").Name("steps-today")
	stepsRouter.HandleFunc("/range", handler.handleListRange).Methods("GET", "OPTIONS").Name("steps-range")
}

type saveStepsRequest struct {
	// Date is optional, empty means today
	Date  string `json:"date,omitempty"`
	Steps int    `json:"steps"`
}

func (handler *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stepsHandler.save")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req saveStepsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "save steps failed", http.StatusBadRequest)
		return
	}
	if req.Steps < 0 {
		http.Error(w, "error, steps must not be negative", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = Today()
	}
	if !ValidDate(req.Date) {
		http.Error(w, "error, date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Upsert(ctx, userID, req.Date, req.Steps); err != nil {
		log.Errorf("failed to save steps for user %d on %s: %s", userID, req.Date, err)
		http.Error(w, "save steps failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteTextResponseOK(w, "saved")
}

func (handler *Handler) handleGetToday(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stepsHandler.getToday")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	today := Today()
	entry, err := handler.repo.Get(ctx, userID, today)
	if errors.Is(err, ErrNoEntry) {
		// a day with no entry reads as zero steps
		entry = &DailySteps{UserID: userID, Date: today}
	} else if err != nil {
		log.Errorf("failed to get steps for user %d: %s", userID, err)
		http.Error(w, "failed to get steps", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal steps response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleListRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "stepsHandler.listRange")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if !ValidDate(from) || !ValidDate(to) {
		http.Error(w, "error, from and to must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	entries, err := handler.repo.List(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list steps for user %d: %s", userID, err)
		http.Error(w, "failed to list steps", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []DailySteps{}
	}

	respBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal steps list response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
