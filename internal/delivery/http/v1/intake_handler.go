package v1

import (
	"errors"
	"net/http"

	"go-intake-backend/internal/delivery/http/bodyparser"
	"go-intake-backend/internal/delivery/http/response"
	"go-intake-backend/internal/domain"
	"go-intake-backend/pkg/apperror"
	"go-intake-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

const msgInvalidJSON = "Invalid JSON in request body"

type IntakeHandler struct {
	intakeUC domain.IntakeUsecase
}

// NewIntakeHandler registers the applicant intake routes (public, no auth
// required)
func NewIntakeHandler(public *gin.RouterGroup, intakeUC domain.IntakeUsecase) {
	handler := &IntakeHandler{
		intakeUC: intakeUC,
	}

	public.POST("/check-user-exists", handler.CheckUserExists)
	public.POST("/social-qualify-form", handler.SubmitQualification)
}

// CheckUserExistsResponse is the contract of the duplicate-preemption
// endpoint; the front end reads userExists at the top level.
type CheckUserExistsResponse struct {
	Success    bool `json:"success"`
	UserExists bool `json:"userExists"`
}

// CheckUserExists godoc
// @Summary      Check whether an applicant already exists
// @Description  Reports whether an applicant with the given email and phone pair has already qualified. Used by the front end to pre-empt duplicate submissions.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.CheckUserExistsRequest  true  "Email and phone pair"
// @Success      200      {object}  v1.CheckUserExistsResponse
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /check-user-exists [post]
func (h *IntakeHandler) CheckUserExists(c *gin.Context) {
	var req domain.CheckUserExistsRequest
	if !decodeBody(c, &req) {
		return
	}

	exists, err := h.intakeUC.CheckUserExists(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, CheckUserExistsResponse{Success: true, UserExists: exists})
}

// SubmitQualification godoc
// @Summary      Submit the social qualification form
// @Description  Validates the submission, verifies the claimed Reddit account, and records the applicant with a matched company recommendation.
// @Tags         intake
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.QualificationRequest  true  "Qualification Form Data"
// @Success      200      {object}  response.Response{data=domain.MatchedCompany}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /social-qualify-form [post]
func (h *IntakeHandler) SubmitQualification(c *gin.Context) {
	var req domain.QualificationRequest
	if !decodeBody(c, &req) {
		return
	}

	company, err := h.intakeUC.SubmitQualification(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Congratulations, you qualify! We've matched you with a company.", gin.H{
		"matchedCompany": company,
	})
}

// decodeBody normalizes the request body into out. A body that claims JSON
// but does not parse fails the request with the fixed invalid-JSON message;
// a missing body leaves out zero-valued so required-field validation phrases
// the error.
func decodeBody(c *gin.Context, out interface{}) bool {
	if _, err := bodyparser.Decode(c.Request, out); err != nil {
		var perr *bodyparser.ParseError
		if errors.As(err, &perr) {
			logger.Log.Warn("Rejected malformed request body",
				"origin", perr.Origin, "path", c.FullPath(), "error", perr.Err)
		}
		c.Error(apperror.BadRequest(msgInvalidJSON))
		return false
	}
	return true
}
