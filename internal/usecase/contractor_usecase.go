package usecase

import (
	"context"
	"errors"

	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

const msgDuplicateContractorRequest = "You have already requested to join this company. Please check your email for updates."

type contractorUsecase struct {
	requestRepo   domain.ContractorRequestRepository
	applicantRepo domain.ApplicantRepository
	validate      *validator.Validate
}

func NewContractorUsecase(requestRepo domain.ContractorRequestRepository, applicantRepo domain.ApplicantRepository, validate *validator.Validate) domain.ContractorUsecase {
	return &contractorUsecase{
		requestRepo:   requestRepo,
		applicantRepo: applicantRepo,
		validate:      validate,
	}
}

func (uc *contractorUsecase) SubmitJoinRequest(ctx context.Context, req *domain.ContractorJoinRequest) error {
	if req == nil {
		req = &domain.ContractorJoinRequest{}
	}
	if err := uc.validate.Struct(req); err != nil {
		return apperror.BadRequest(validation.FormatFirstError(err))
	}

	applicant, err := uc.applicantRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if applicant == nil {
		return apperror.NotFound("User not found. Please complete the qualification form first.")
	}

	exists, err := uc.requestRepo.ExistsForCompany(ctx, applicant.ID, req.CompanySlug)
	if err != nil {
		return err
	}
	if exists {
		return apperror.BadRequest(msgDuplicateContractorRequest)
	}

	request := &domain.ContractorRequest{
		ApplicantID: applicant.ID,
		Email:       req.Email,
		CompanySlug: req.CompanySlug,
		CompanyName: req.CompanyName,
		Status:      domain.StatusPending,
		// Requesting to join is recorded as already having joined the
		// community channel.
		JoinedCommunityChannel: true,
		CanStartJob:            false,
	}

	if _, err := uc.requestRepo.Create(ctx, request); err != nil {
		if errors.Is(err, domain.ErrDuplicateContractorRequest) {
			return apperror.BadRequest(msgDuplicateContractorRequest)
		}
		return err
	}
	return nil
}
