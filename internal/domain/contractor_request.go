package domain

import (
	"context"
	"time"
)

// Contractor request lifecycle states. Only StatusPending is assigned by this
// service; transitions happen in admin tooling.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ContractorRequest records an Applicant's request to join a specific
// company. At most one request may exist per (applicant, companySlug) pair.
type ContractorRequest struct {
	ID                     string    `json:"id"`
	ApplicantID            string    `json:"applicantId"`
	Email                  string    `json:"email"`
	CompanySlug            string    `json:"companySlug"`
	CompanyName            string    `json:"companyName"`
	Status                 string    `json:"status"`
	JoinedCommunityChannel bool      `json:"joinedCommunityChannel"`
	CanStartJob            bool      `json:"canStartJob"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// ContractorJoinRequest is the contractor-request payload.
type ContractorJoinRequest struct {
	Email       string `json:"email" validate:"required,email"`
	CompanySlug string `json:"companySlug" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
}

type ContractorRequestRepository interface {
	ExistsForCompany(ctx context.Context, applicantID, companySlug string) (bool, error)
	// Create inserts the request and returns the stored row. A unique
	// (applicant, companySlug) violation comes back as
	// ErrDuplicateContractorRequest.
	Create(ctx context.Context, request *ContractorRequest) (*ContractorRequest, error)
}

type ContractorUsecase interface {
	SubmitJoinRequest(ctx context.Context, req *ContractorJoinRequest) error
}
