package handlers

import (
	"net/http"

	request "insurance_backoffice/internal/adapter/http/dto/request"
	response "insurance_backoffice/internal/adapter/http/dto/response"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles HTTP requests for claims and their lifecycle.
type ClaimHandler struct {
	usecase usecase.IClaimUseCase
}

func NewClaimHandler(uc usecase.IClaimUseCase) *ClaimHandler {
	return &ClaimHandler{usecase: uc}
}

// SubmitClaim godoc
// @Summary      Submit a claim
// @Description  New claims always start as PENDING.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        body  body      request.ClaimRequest  true  "Claim"
// @Success      201   {object}  response.ClaimResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /claims [post]
func (h *ClaimHandler) SubmitClaim(c *gin.Context) {
	var payload request.ClaimRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Submit(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromClaim(created))
}

// UpdateClaim godoc
// @Summary      Edit a claim
// @Description  Status and settledAmount follow the claim lifecycle.
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "Claim id"
// @Param        body  body      request.ClaimPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.ClaimResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /claims/{id} [patch]
func (h *ClaimHandler) UpdateClaim(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload request.ClaimPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	patch, fe := payload.ToPatch()
	if !fe.Empty() {
		abortWith(c, validationFailed(fe))
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, patch)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(updated))
}

// TransitionClaim godoc
// @Summary      Move a claim to a new status
// @Tags         claims
// @Accept       json
// @Produce      json
// @Param        id    path      int                        true  "Claim id"
// @Param        body  body      request.TransitionRequest  true  "Target status"
// @Success      200   {object}  response.ClaimResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /claims/{id}/transition [post]
func (h *ClaimHandler) TransitionClaim(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload request.TransitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	status, settled, fe := payload.ToTransition()
	if !fe.Empty() {
		abortWith(c, validationFailed(fe))
		return
	}

	updated, err := h.usecase.Transition(c.Request.Context(), id, status, settled)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(updated))
}

// GetClaim godoc
// @Summary      Get a claim
// @Tags         claims
// @Produce      json
// @Param        id   path      int  true  "Claim id"
// @Success      200  {object}  response.ClaimResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /claims/{id} [get]
func (h *ClaimHandler) GetClaim(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claim, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaim(claim))
}

// ListClaims godoc
// @Summary      List claims in creation order
// @Tags         claims
// @Produce      json
// @Success      200  {array}  response.ClaimResponse
// @Router       /claims [get]
func (h *ClaimHandler) ListClaims(c *gin.Context) {
	claims, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}
