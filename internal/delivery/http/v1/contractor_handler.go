package v1

import (
	"net/http"

	"go-intake-backend/internal/delivery/http/response"
	"go-intake-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContractorHandler struct {
	contractorUC domain.ContractorUsecase
}

// NewContractorHandler registers the contractor join-request route (public,
// no auth required)
func NewContractorHandler(public *gin.RouterGroup, contractorUC domain.ContractorUsecase) {
	handler := &ContractorHandler{
		contractorUC: contractorUC,
	}

	public.POST("/contractor-request", handler.SubmitJoinRequest)
}

// SubmitJoinRequest godoc
// @Summary      Submit a contractor join request
// @Description  Records a qualified applicant's request to join a specific company. The applicant must have completed the qualification form first.
// @Tags         contractor
// @Accept       json
// @Produce      json
// @Param        payload  body      domain.ContractorJoinRequest  true  "Join Request Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /contractor-request [post]
func (h *ContractorHandler) SubmitJoinRequest(c *gin.Context) {
	var req domain.ContractorJoinRequest
	if !decodeBody(c, &req) {
		return
	}

	if err := h.contractorUC.SubmitJoinRequest(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Your request has been submitted. We will contact you by email once it has been reviewed.", nil)
}
