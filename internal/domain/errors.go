package domain

import "errors"

// Sentinel persistence outcomes. Repositories return these for uniqueness
// violations so the usecase layer can phrase the user-facing message; every
// other storage failure surfaces as an application error with the driver
// message attached.
var (
	ErrDuplicateApplicant         = errors.New("applicant with this email and phone already exists")
	ErrDuplicateContractorRequest = errors.New("contractor request for this company already exists")
)
