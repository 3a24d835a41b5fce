package handlers

import (
	"net/http"
	"strconv"

	request "insurance_backoffice/internal/adapter/http/dto/request"
	response "insurance_backoffice/internal/adapter/http/dto/response"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// PolicyHandler handles HTTP requests for policies.
type PolicyHandler struct {
	usecase usecase.IPolicyUseCase
	claims  usecase.IClaimUseCase
}

func NewPolicyHandler(uc usecase.IPolicyUseCase, claims usecase.IClaimUseCase) *PolicyHandler {
	return &PolicyHandler{usecase: uc, claims: claims}
}

// CreatePolicy godoc
// @Summary      Create a policy for an existing customer
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        body  body      request.PolicyRequest  true  "Policy"
// @Success      201   {object}  response.PolicyResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /policies [post]
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var payload request.PolicyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPolicy(created))
}

// UpdatePolicy godoc
// @Summary      Update a policy
// @Tags         policies
// @Accept       json
// @Produce      json
// @Param        id    path      int                         true  "Policy id"
// @Param        body  body      request.PolicyPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.PolicyResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /policies/{id} [patch]
func (h *PolicyHandler) UpdatePolicy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload request.PolicyPatchRequest
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
	c.JSON(http.StatusOK, response.FromPolicy(updated))
}

// GetPolicy godoc
// @Summary      Get a policy
// @Tags         policies
// @Produce      json
// @Param        id   path      int  true  "Policy id"
// @Success      200  {object}  response.PolicyResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /policies/{id} [get]
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	policy, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicy(policy))
}

// ListPolicies godoc
// @Summary      List policies in creation order
// @Description  With withCustomer=true every policy carries its owner.
// @Tags         policies
// @Produce      json
// @Param        withCustomer  query    bool  false  "Inline the owning customer"
// @Success      200           {array}  response.PolicyResponse
// @Router       /policies [get]
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	withCustomer, _ := strconv.ParseBool(c.Query("withCustomer"))
	if withCustomer {
		pairs, err := h.usecase.ListWithCustomers(c.Request.Context())
		if err != nil {
			abortWith(c, mapError(err))
			return
		}
		c.JSON(http.StatusOK, response.FromPoliciesWithCustomer(pairs))
		return
	}

	policies, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(policies))
}

// ListPolicyClaims godoc
// @Summary      List the claims filed against a policy
// @Tags         policies
// @Produce      json
// @Param        id   path     int  true  "Policy id"
// @Success      200  {array}  response.ClaimResponse
// @Failure      404  {object} pkg.HTTPError
// @Router       /policies/{id}/claims [get]
func (h *PolicyHandler) ListPolicyClaims(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	claims, err := h.claims.ListByPolicyID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromClaims(claims))
}
