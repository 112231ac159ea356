package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-intake-backend/internal/delivery/http/middleware"
	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockIntakeUsecase struct {
	mock.Mock
}

func (m *MockIntakeUsecase) CheckUserExists(ctx context.Context, req *domain.CheckUserExistsRequest) (bool, error) {
	args := m.Called(ctx, req)
	return args.Bool(0), args.Error(1)
}

func (m *MockIntakeUsecase) SubmitQualification(ctx context.Context, req *domain.QualificationRequest) (*domain.MatchedCompany, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchedCompany), args.Error(1)
}

type MockContractorUsecase struct {
	mock.Mock
}

func (m *MockContractorUsecase) SubmitJoinRequest(ctx context.Context, req *domain.ContractorJoinRequest) error {
	return m.Called(ctx, req).Error(0)
}

func newTestRouter(intakeUC domain.IntakeUsecase, contractorUC domain.ContractorUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	api := r.Group("/api")
	if intakeUC != nil {
		NewIntakeHandler(api, intakeUC)
	}
	if contractorUC != nil {
		NewContractorHandler(api, contractorUC)
	}
	return r
}

func doJSON(r *gin.Engine, path, contentType, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCheckUserExistsEndpoint(t *testing.T) {
	t.Run("Should report the existence boolean at the top level", func(t *testing.T) {
		uc := new(MockIntakeUsecase)
		uc.On("CheckUserExists", mock.Anything, &domain.CheckUserExistsRequest{Email: "a@b.com", Phone: "+1"}).Return(false, nil)

		w := doJSON(newTestRouter(uc, nil), "/api/check-user-exists", "application/json", `{"email":"a@b.com","phone":"+1"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.Equal(t, false, body["userExists"])
	})

	t.Run("Should surface the missing-fields message", func(t *testing.T) {
		uc := new(MockIntakeUsecase)
		uc.On("CheckUserExists", mock.Anything, mock.Anything).Return(false, apperror.BadRequest("Email and phone are required"))

		w := doJSON(newTestRouter(uc, nil), "/api/check-user-exists", "application/json", `{"email":"a@b.com"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Email and phone are required")
	})
}

func TestSubmitQualificationEndpoint(t *testing.T) {
	t.Run("Should reject invalid JSON raw bytes with the fixed message", func(t *testing.T) {
		uc := new(MockIntakeUsecase)

		w := doJSON(newTestRouter(uc, nil), "/api/social-qualify-form", "application/octet-stream", `{"email": broken`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid JSON in request body", body["message"])
		uc.AssertNotCalled(t, "SubmitQualification", mock.Anything, mock.Anything)
	})

	t.Run("Should wrap the matched company in the success envelope", func(t *testing.T) {
		uc := new(MockIntakeUsecase)
		uc.On("SubmitQualification", mock.Anything, mock.Anything).Return(&domain.MatchedCompany{
			Name:    "Brightline Social",
			Slug:    "brightline-social",
			PayRate: 25,
			Bonus:   500,
		}, nil)

		w := doJSON(newTestRouter(uc, nil), "/api/social-qualify-form", "application/json",
			`{"email":"a@b.com","phone":"+15550100","redditUsername":"honest_worker"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Success bool `json:"success"`
			Data    struct {
				MatchedCompany domain.MatchedCompany `json:"matchedCompany"`
			} `json:"data"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, "brightline-social", body.Data.MatchedCompany.Slug)
		assert.Equal(t, float64(25), body.Data.MatchedCompany.PayRate)
	})

	t.Run("Should pass a text body through the decoder", func(t *testing.T) {
		uc := new(MockIntakeUsecase)
		uc.On("SubmitQualification", mock.Anything, mock.MatchedBy(func(req *domain.QualificationRequest) bool {
			return req.RedditUsername == "honest_worker"
		})).Return(&domain.MatchedCompany{Slug: "brightline-social"}, nil)

		w := doJSON(newTestRouter(uc, nil), "/api/social-qualify-form", "text/plain",
			`{"email":"a@b.com","phone":"+15550100","redditUsername":"honest_worker"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		uc.AssertExpectations(t)
	})
}

func TestContractorRequestEndpoint(t *testing.T) {
	t.Run("Should return 404 for an unknown applicant", func(t *testing.T) {
		uc := new(MockContractorUsecase)
		uc.On("SubmitJoinRequest", mock.Anything, mock.Anything).
			Return(apperror.NotFound("User not found. Please complete the qualification form first."))

		w := doJSON(newTestRouter(nil, uc), "/api/contractor-request", "application/json",
			`{"email":"a@b.com","companySlug":"weird--slug!!","companyName":"Weird"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "User not found. Please complete the qualification form first.")
	})

	t.Run("Should confirm an accepted request", func(t *testing.T) {
		uc := new(MockContractorUsecase)
		uc.On("SubmitJoinRequest", mock.Anything, mock.Anything).Return(nil)

		w := doJSON(newTestRouter(nil, uc), "/api/contractor-request", "application/json",
			`{"email":"a@b.com","companySlug":"brightline-social","companyName":"Brightline Social"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, true, body["success"])
		assert.NotEmpty(t, body["message"])
	})

	t.Run("Should attach the underlying message to persistence failures", func(t *testing.T) {
		uc := new(MockContractorUsecase)
		uc.On("SubmitJoinRequest", mock.Anything, mock.Anything).
			Return(apperror.Internal(assert.AnError))

		w := doJSON(newTestRouter(nil, uc), "/api/contractor-request", "application/json",
			`{"email":"a@b.com","companySlug":"x","companyName":"X"}`)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "Internal server error:")
	})
}
