package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const msgDuplicateApplicant = "A user with this email and phone number combination already exists."

type intakeUsecase struct {
	applicantRepo domain.ApplicantRepository
	verifier      domain.IdentityVerifier
	validate      *validator.Validate
}

func NewIntakeUsecase(applicantRepo domain.ApplicantRepository, verifier domain.IdentityVerifier, validate *validator.Validate) domain.IntakeUsecase {
	return &intakeUsecase{
		applicantRepo: applicantRepo,
		verifier:      verifier,
		validate:      validate,
	}
}

func (uc *intakeUsecase) CheckUserExists(ctx context.Context, req *domain.CheckUserExistsRequest) (bool, error) {
	if req == nil || strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Phone) == "" {
		return false, apperror.BadRequest("Email and phone are required")
	}
	return uc.applicantRepo.ExistsByEmailPhone(ctx, req.Email, req.Phone)
}

// SubmitQualification runs the qualification intake: validate, verify the
// claimed Reddit handle, then a guarded insert. The existence check before
// the insert is a fast path for a friendlier message; the unique constraint
// is the real authority.
func (uc *intakeUsecase) SubmitQualification(ctx context.Context, req *domain.QualificationRequest) (*domain.MatchedCompany, error) {
	if req == nil {
		req = &domain.QualificationRequest{}
	}
	if err := uc.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(validation.FormatFirstError(err))
	}

	if err := uc.verifier.VerifyUser(ctx, req.RedditUsername); err != nil {
		return nil, apperror.BadRequest(fmt.Sprintf(
			"Reddit user '%s' does not exist. Please check the username and try again.",
			req.RedditUsername,
		))
	}

	exists, err := uc.applicantRepo.ExistsByEmailPhone(ctx, req.Email, req.Phone)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperror.BadRequest(msgDuplicateApplicant)
	}

	applicant := &domain.Applicant{
		Email:            req.Email,
		Phone:            req.Phone,
		RedditHandle:     req.RedditUsername,
		TwitterHandle:    normalizeHandle(req.TwitterUsername),
		YoutubeHandle:    normalizeHandle(req.YoutubeUsername),
		FacebookHandle:   normalizeHandle(req.FacebookUsername),
		IdentityVerified: true,
	}

	if _, err := uc.applicantRepo.Create(ctx, applicant); err != nil {
		if errors.Is(err, domain.ErrDuplicateApplicant) {
			// Lost the check-then-insert race; same outcome as the fast path.
			return nil, apperror.BadRequest(msgDuplicateApplicant)
		}
		return nil, err
	}

	return domain.MatchCompany(req), nil
}

// normalizeHandle maps absent or blank optional handles to nil so they are
// stored as NULL, never as an empty string.
func normalizeHandle(h *string) *string {
	if h == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*h)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
