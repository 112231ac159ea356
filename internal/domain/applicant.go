package domain

import (
	"context"
	"time"
)

// Applicant is a person who submitted the qualification form with a verified
// Reddit handle. Records are append-mostly: created once, read for existence
// checks, mutated only by administrative tooling outside this service.
type Applicant struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Phone            string    `json:"phone"`
	RedditHandle     string    `json:"redditHandle"`
	TwitterHandle    *string   `json:"twitterHandle"`
	YoutubeHandle    *string   `json:"youtubeHandle"`
	FacebookHandle   *string   `json:"facebookHandle"`
	IdentityVerified bool      `json:"identityVerified"`
	CreatedAt        time.Time `json:"createdAt"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// QualificationRequest is the social-qualify-form payload. The three optional
// handles are pointers so that an absent field persists as NULL, never as an
// empty string.
type QualificationRequest struct {
	Email            string  `json:"email" validate:"required,email"`
	Phone            string  `json:"phone" validate:"required,valid_phone"`
	RedditUsername   string  `json:"redditUsername" validate:"required"`
	TwitterUsername  *string `json:"twitterUsername"`
	YoutubeUsername  *string `json:"youtubeUsername"`
	FacebookUsername *string `json:"facebookUsername"`
}

// CheckUserExistsRequest is the duplicate-preemption payload used by the
// front end before showing the full form.
type CheckUserExistsRequest struct {
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ApplicantRepository interface {
	ExistsByEmailPhone(ctx context.Context, email, phone string) (bool, error)
	// Create inserts the applicant and returns the stored row. A unique
	// (email, phone) violation comes back as ErrDuplicateApplicant.
	Create(ctx context.Context, applicant *Applicant) (*Applicant, error)
	// GetByEmail returns (nil, nil) when no applicant matches.
	GetByEmail(ctx context.Context, email string) (*Applicant, error)
}

// IdentityVerifier confirms that a claimed external account handle genuinely
// exists. Implementations must collapse every failure cause into a single
// not-verified error so callers cannot distinguish a provider outage from a
// bad handle.
type IdentityVerifier interface {
	VerifyUser(ctx context.Context, username string) error
}

type IntakeUsecase interface {
	CheckUserExists(ctx context.Context, req *CheckUserExistsRequest) (bool, error)
	SubmitQualification(ctx context.Context, req *QualificationRequest) (*MatchedCompany, error)
}
