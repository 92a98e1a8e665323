package library

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=library_mocks_test.go -package=library_test

type libraryRepo interface {
	Search(ctx context.Context, query string, limit int) ([]Entry, error)
	Get(ctx context.Context, id int) (*Entry, error)
}

const defaultSearchLimit = 20

type Handler struct {
	repo libraryRepo
}

func NewHandler(repo libraryRepo) *Handler {
	return &Handler{repo: repo}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	libraryRouter := mainRouter.PathPrefix("/library").Subrouter()
	libraryRouter.HandleFunc("", handler.handleSearch).Methods("GET", "OPTIONS").Name("library-search")
	libraryRouter.HandleFunc("/{id}", handler.handleGet).Methods("GET", "OPTIONS").Name("library-get")
}

func (handler *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "libraryHandler.search")
	defer span.End()

	query := strings.TrimSpace(r.URL.Query().Get("q"))

	limit := defaultSearchLimit
	if limitParam := r.URL.Query().Get("limit"); limitParam != "" {
		parsed, err := strconv.Atoi(limitParam)
		if err != nil || parsed < 1 {
			http.Error(w, "error, limit invalid", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	entries, err := handler.repo.Search(ctx, query, limit)
	if err != nil {
		log.Errorf("failed to search exercise library for %q: %s", query, err)
		http.Error(w, "library search failed", http.StatusInternalServerError)
		return
	}
	if entries == nil {
		entries = []Entry{}
	}

	respBytes, err := json.Marshal(entries)
	if err != nil {
		log.Errorf("marshal library search response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "libraryHandler.get")
	defer span.End()

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	entry, err := handler.repo.Get(ctx, id)
	if errors.Is(err, ErrEntryNotFound) {
		http.Error(w, "library entry not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get library entry %d: %s", id, err)
		http.Error(w, "failed to get library entry", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(entry)
	if err != nil {
		log.Errorf("marshal library entry response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}
