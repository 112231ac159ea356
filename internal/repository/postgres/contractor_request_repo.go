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

type contractorRequestRepo struct {
	db *database.Postgres
}

func NewContractorRequestRepository(db *database.Postgres) domain.ContractorRequestRepository {
	return &contractorRequestRepo{db: db}
}

func (r *contractorRequestRepo) ExistsForCompany(ctx context.Context, applicantID, companySlug string) (bool, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return false, err
	}

	query := `SELECT EXISTS (
		SELECT 1 FROM contractor_requests WHERE applicant_id = $1 AND company_slug = $2
	)`
	var exists bool
	if err := pool.QueryRow(ctx, query, applicantID, companySlug).Scan(&exists); err != nil {
		return false, apperror.Internal(err)
	}
	return exists, nil
}

func (r *contractorRequestRepo) Create(ctx context.Context, request *domain.ContractorRequest) (*domain.ContractorRequest, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}

	if request.ID == "" {
		request.ID = uuid.NewString()
	}

	query := `
		INSERT INTO contractor_requests (
			id, applicant_id, email, company_slug, company_name,
			status, joined_community_channel, can_start_job,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	stored := *request
	err = pool.QueryRow(ctx, query,
		request.ID, request.ApplicantID, request.Email, request.CompanySlug, request.CompanyName,
		request.Status, request.JoinedCommunityChannel, request.CanStartJob,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrDuplicateContractorRequest
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.Internal(errors.New("contractor request insert returned no row"))
		}
		return nil, apperror.Internal(err)
	}
	return &stored, nil
}
