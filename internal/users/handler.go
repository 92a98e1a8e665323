package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lufitapp/lufit/internal/auth"
	"github.com/lufitapp/lufit/internal/middleware"
	"github.com/lufitapp/lufit/internal/routines"
	"github.com/lufitapp/lufit/internal/telemetry/metrics"
	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) (*User, error)
	Get(ctx context.Context, id int) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	SaveProfile(ctx context.Context, profile Profile) error
}

// starterSeeder creates the template routine every fresh account starts with.
type starterSeeder interface {
	CreateRoutine(ctx context.Context, params routines.CreateRoutineParams) (*routines.Routine, error)
}

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   int    `json:"userId"`
	Username string `json:"username"`
}

type ProfileResponse struct {
	Profile
	BMI float64 `json:"bmi"`
}

type Handler struct {
	repo           usersRepo
	starterSeeder  starterSeeder
	authService    *auth.Service
	metricsManager *metrics.Manager
}

func NewHandler(
	repo usersRepo,
	starterSeeder starterSeeder,
	authService *auth.Service,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		starterSeeder:  starterSeeder,
		authService:    authService,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	loginRateLimitAllowedPerMin int,
) {
	accountSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	accountSubrouter.
		HandleFunc("/register", handler.handleRegister).
		Methods("POST", "OPTIONS").Name("register")
	accountSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	accountSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// rate limit the account endpoints to prevent credential stuffing
	accountSubrouter.Use(middleware.RateLimit(
		rateLimiter, "login", loginRateLimitAllowedPerMin, handler.metricsManager,
	))

	profileSubrouter := mainRouter.PathPrefix("/profile").Subrouter()
	profileSubrouter.
		HandleFunc("", handler.handleGetProfile).
		Methods("GET", "OPTIONS").Name("profile-get")
	profileSubrouter.
		HandleFunc("", handler.handleSaveProfile).
		Methods("POST", "PUT", "OPTIONS").Name("profile-save")
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

func (handler *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.register")
	defer span.End()

	var regReq credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&regReq); err != nil {
		log.Errorf("register, unmarshal json params: %s", err)
		http.Error(w, "register failed", http.StatusBadRequest)
		return
	}

	username := strings.ToLower(strings.TrimSpace(regReq.Username))
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if regReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	passwordHash, err := pkg.HashPassword(regReq.Password)
	if err != nil {
		log.Errorf("register failed, hash password: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	addedUser, err := handler.repo.Add(ctx, User{
		Username:     username,
		PasswordHash: passwordHash,
		Email:        strings.TrimSpace(regReq.Email),
		IsVerified:   true,
	})
	if errors.Is(err, ErrUsernameTaken) {
		http.Error(w, "error, username taken", http.StatusConflict)
		return
	}
	if err != nil {
		log.Errorf("register failed for [%s]: %s", username, err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}

	span.SetAttributes(attribute.Int("user.id", addedUser.ID))

	// every new account starts with the template routine, already active
	if _, err := handler.starterSeeder.CreateRoutine(ctx, routines.CreateRoutineParams{
		UserID:      addedUser.ID,
		Name:        "Mi Rutina Principal",
		NumDays:     len(routines.DefaultRoutineTemplate),
		SeedDefault: true,
	}); err != nil {
		log.Errorf("register, seed starter routine for user %d: %s", addedUser.ID, err)
	}

	// registration logs the user straight in
	token, err := handler.authService.Login(ctx, addedUser.ID, time.Now())
	if err != nil {
		log.Errorf("register failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterRegistrations.Inc()
	log.Tracef("new user registered: %s", username)

	respBytes, err := json.Marshal(LoginResponse{
		Token:    token,
		UserID:   addedUser.ID,
		Username: addedUser.Username,
	})
	if err != nil {
		log.Errorf("register failed, marshal response: %s", err)
		http.Error(w, "register failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respBytes, http.StatusCreated)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.login")
	defer span.End()

	var loginReq credentialsRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Errorf("login, unmarshal json params: %s", err)
			http.Error(w, "login failed", http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		loginReq = credentialsRequest{
			Username: r.Form.Get("username"),
			Password: r.Form.Get("password"),
		}
	}

	username := strings.ToLower(strings.TrimSpace(loginReq.Username))
	if username == "" {
		http.Error(w, "error, username empty", http.StatusBadRequest)
		return
	}
	if loginReq.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.GetByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		log.Tracef("[username] failed login attempt for user: %s", username)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}
	if err != nil {
		log.Errorf("login failed for [%s]: %s", username, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	if !pkg.CheckPasswordHash(loginReq.Password, user.PasswordHash) {
		log.Tracef("[password] failed login attempt for user: %s", username)
		http.Error(w, "error, wrong credentials", http.StatusBadRequest)
		return
	}

	token, err := handler.authService.Login(ctx, user.ID, time.Now())
	if err != nil {
		log.Errorf("login failed, generate token error: %s", err)
		http.Error(w, "generate token error", http.StatusInternalServerError)
		return
	}

	handler.metricsManager.CounterLogins.Inc()
	log.Tracef("new login success: %s", username)
	pkg.WriteJSONResponseOK(w, fmt.Sprintf(
		`{"token": "%s", "userId": %d, "username": "%s"}`,
		token, user.ID, user.Username,
	))
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.logout")
	defer span.End()

	authToken := r.Header.Get("X-LUFIT-TOKEN")
	if authToken == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := handler.authService.Logout(r.Context(), authToken); err != nil {
		log.Tracef("[failed logout] => %s: %s", r.URL.Path, err)
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}

func (handler *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.getProfile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	profile, err := handler.repo.GetProfile(ctx, userID)
	if errors.Is(err, ErrProfileNotFound) {
		http.Error(w, "profile not set up", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get profile for user %d: %s", userID, err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(ProfileResponse{
		Profile: *profile,
		BMI:     profile.BMI(),
	})
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "failed to get profile", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (handler *Handler) handleSaveProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "usersHandler.saveProfile")
	defer span.End()

	userID, ok := auth.UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("save profile, unmarshal json params: %s", err)
		http.Error(w, "save profile failed", http.StatusBadRequest)
		return
	}

	if profile.Weight <= 0 || profile.Height <= 0 || profile.Age <= 0 || profile.Gender == "" {
		http.Error(w, "error, profile fields missing", http.StatusBadRequest)
		return
	}
	if profile.DailyStepsGoal <= 0 {
		profile.DailyStepsGoal = 10000
	}
	if profile.PreferredUnit == "" {
		profile.PreferredUnit = "kg"
	}
	if !ValidUnit(profile.PreferredUnit) {
		http.Error(w, "error, unit must be kg or lb", http.StatusBadRequest)
		return
	}

	profile.UserID = userID
	if err := handler.repo.SaveProfile(ctx, profile); err != nil {
		log.Errorf("failed to save profile for user %d: %s", userID, err)
		http.Error(w, "save profile failed", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile saved for user %d", userID)
	pkg.WriteTextResponseOK(w, "profile-saved")
}
