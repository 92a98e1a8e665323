package weightlog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/lufitapp/lufit/internal/auth"
	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/internal/users"
	"github.com/lufitapp/lufit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=weightlog_mocks_test.go -package=weightlog_test

type weightLogRepo interface {
	Add(ctx context.Context, entry Entry) (*Entry, error)
	List(ctx context.Context, userID int) ([]Entry, error)
}

type Handler struct {
	repo weightLogRepo
}

func NewHandler(repo weightLogRepo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	weightRouter := mainRouter.PathPrefix("/weight").Subrouter()
	weightRouter.HandleFunc("", handler.handleAdd).Methods("POST", "OPTIONS").Name("weight-add")
	weightRouter.HandleFunc("", handler.handleList).Methods("GET", "OPTIONS").Name("weight-list")
}

type addEntryRequest struct {
	Weight float64 `json:"weight"`
	// Date is optional, empty means today
	Date string `json:"date,omitempty"`
	Unit string `json:"unit"`
}

func (handler *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "weightLogHandler.add")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var req addEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "log weight failed", http.StatusBadRequest)
		return
	}
	if req.Weight <= 0 {
		http.Error(w, "error, weight must be positive", http.StatusBadRequest)
		return
	}
	if req.Unit == "" {
		req.Unit = "kg"
	}
	if !users.ValidUnit(req.Unit) {
		http.Error(w, "error, unit must be kg or lb", http.StatusBadRequest)
		return
	}
	if req.Date == "" {
		req.Date = time.Now().Format(DateLayout)
	}
	if !ValidDate(req.Date) {
		http.Error(w, "error, date must be YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Add(ctx, Entry{
		UserID: userID,
		Weight: req.Weight,
		Date:   req.Date,
		Unit:   req.Unit,
	})
	if err != nil {
		log.Errorf("failed to log weight for user %d: %s", userID, err)
		http.Error(w, "log weight failed", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal weight log entry: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (handler *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "weightLogHandler.list")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	entries, err := handler.repo.List(ctx, userID)
	if err != nil {
		log.Errorf("failed to list weight log of user %d: %s", userID, err)
		http.Error(w, "failed to list weight log", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	respBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal weight log response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
