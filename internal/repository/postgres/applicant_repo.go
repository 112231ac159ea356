package postgres

import (
	"context"
	"errors"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// PostgreSQL error codes
const (
	pgUniqueViolation = "23505"
)

type applicantRepo struct {
	db *database.Postgres
}

func NewApplicantRepository(db *database.Postgres) domain.ApplicantRepository {
	return &applicantRepo{db: db}
}

func (r *applicantRepo) ExistsByEmailPhone(ctx context.Context, email, phone string) (bool, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return false, err
	}

	query := `SELECT EXISTS (SELECT 1 FROM applicants WHERE email = $1 AND phone = $2)`
	var exists bool
	if err := pool.QueryRow(ctx, query, email, phone).Scan(&exists); err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

func (r *applicantRepo) Create(ctx context.Context, applicant *domain.Applicant) (*domain.Applicant, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	if applicant.ID == "" {
		applicant.ID = uuid.NewString()
	}

	query := `
		INSERT INTO applicants (
			id, email, phone, reddit_handle,
			twitter_handle, youtube_handle, facebook_handle,
			identity_verified, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	stored := *applicant
	err = pool.QueryRow(ctx, query,
		applicant.ID, applicant.Email, applicant.Phone, applicant.RedditHandle,
		applicant.TwitterHandle, applicant.YoutubeHandle, applicant.FacebookHandle,
		applicant.IdentityVerified,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			// Constraint backstop for the check-then-insert race: a losing
			// concurrent insert reports the same duplicate outcome as the
			// fast-path existence check.
			return nil, domain.ErrDuplicateApplicant
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Internal(errors.New("applicant insert returned no row"))
		}
		return nil, apperror.Internal(err)
	}
	return &stored, nil
}

func (r *applicantRepo) GetByEmail(ctx context.Context, email string) (*domain.Applicant, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, email, phone, reddit_handle,
		       twitter_handle, youtube_handle, facebook_handle,
		       identity_verified, created_at, updated_at
		FROM applicants WHERE email = $1`

	var a domain.Applicant
	err = pool.QueryRow(ctx, query, email).Scan(
		&a.ID, &a.Email, &a.Phone, &a.RedditHandle,
		&a.TwitterHandle, &a.YoutubeHandle, &a.FacebookHandle,
		&a.IdentityVerified, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, apperror.Internal(err)
	}
	return &a, nil
}
