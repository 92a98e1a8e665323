package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/lufitapp/lufit/internal/telemetry/tracing"
	"github.com/lufitapp/lufit/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrProfileNotFound = errors.New("user profile not found")
	ErrUsernameTaken   = errors.New("username taken")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, user User) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`INSERT INTO users (username, password_hash, email, is_verified)
			VALUES ($1, $2, $3, $4)
		RETURNING id, created_at;`,
		user.Username, user.PasswordHash, user.Email, user.IsVerified,
	)
	if err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}

	if !rows.Next() {
		// pgx can surface the insert error only after the first Next call
		if err := rows.Err(); err != nil && pkg.IsUniqueViolationError(err) {
			return nil, ErrUsernameTaken
		}
		return nil, errors.New("unexpected error [no rows next]")
	}

	if err := rows.Scan(&user.ID, &user.CreatedAt); err != nil {
		return nil, fmt.Errorf("rows scan: %w", err)
	}

	span.SetAttributes(attribute.Int("user.id", user.ID))

	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var user User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, COALESCE(email, ''), is_verified, created_at
			FROM users WHERE id = $1;`,
		id,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.IsVerified, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	err = r.db.QueryRow(
		ctx,
		`SELECT id, username, password_hash, COALESCE(email, ''), is_verified, created_at
			FROM users WHERE username = $1;`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.IsVerified, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repo) GetProfile(ctx context.Context, userID int) (_ *Profile, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	var profile Profile
	err = r.db.QueryRow(
		ctx,
		`SELECT user_id, weight, height, age, gender, daily_steps_goal, preferred_unit, created_at
			FROM user_profile WHERE user_id = $1;`,
		userID,
	).Scan(
		&profile.UserID, &profile.Weight, &profile.Height, &profile.Age,
		&profile.Gender, &profile.DailyStepsGoal, &profile.PreferredUnit, &profile.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// SaveProfile creates or replaces the profile of a user.
func (r *Repo) SaveProfile(ctx context.Context, profile Profile) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.saveProfile")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", profile.UserID))

	_, err = r.db.Exec(
		ctx,
		`INSERT INTO user_profile
				(user_id, weight, height, age, gender, daily_steps_goal, preferred_unit)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (user_id) DO UPDATE SET
				weight = EXCLUDED.weight,
				height = EXCLUDED.height,
				age = EXCLUDED.age,
				gender = EXCLUDED.gender,
				daily_steps_goal = EXCLUDED.daily_steps_goal,
				preferred_unit = EXCLUDED.preferred_unit;`,
		profile.UserID, profile.Weight, profile.Height, profile.Age,
		profile.Gender, profile.DailyStepsGoal, profile.PreferredUnit,
	)
	return err
}

// UpdateProfileWeight keeps the profile weight in sync with the latest
// weight log entry.
func (r *Repo) UpdateProfileWeight(ctx context.Context, userID int, weight float64) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.updateProfileWeight")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	tag, err := r.db.Exec(
		ctx,
		`UPDATE user_profile SET weight = $1 WHERE user_id = $2;`,
		weight, userID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrProfileNotFound
	}
	return nil
}
