package handlers

import (
	"net/http"

	request "insurance_backoffice/internal/adapter/http/dto/request"
	response "insurance_backoffice/internal/adapter/http/dto/response"
	"insurance_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
)

// CustomerHandler handles HTTP requests for customers.
type CustomerHandler struct {
	usecase  usecase.ICustomerUseCase
	policies usecase.IPolicyUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase, policies usecase.IPolicyUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc, policies: policies}
}

// CreateCustomer godoc
// @Summary      Create a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        body  body      request.CustomerRequest  true  "Customer"
// @Success      201   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /customers [post]
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), payload.ToInput())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCustomer(created))
}

// UpdateCustomer godoc
// @Summary      Update a customer
// @Tags         customers
// @Accept       json
// @Produce      json
// @Param        id    path      int                           true  "Customer id"
// @Param        body  body      request.CustomerPatchRequest  true  "Fields to change"
// @Success      200   {object}  response.CustomerResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError
// @Router       /customers/{id} [patch]
func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var payload request.CustomerPatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWith(c, errInvalidRequest)
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), id, payload.ToPatch())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(updated))
}

// GetCustomer godoc
// @Summary      Get a customer
// @Tags         customers
// @Produce      json
// @Param        id   path      int  true  "Customer id"
// @Success      200  {object}  response.CustomerResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /customers/{id} [get]
func (h *CustomerHandler) GetCustomer(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	customer, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

// ListCustomers godoc
// @Summary      List customers in creation order
// @Tags         customers
// @Produce      json
// @Success      200  {array}  response.CustomerResponse
// @Router       /customers [get]
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

// ListCustomerPolicies godoc
// @Summary      List the policies owned by a customer
// @Tags         customers
// @Produce      json
// @Param        id   path     int  true  "Customer id"
// @Success      200  {array}  response.PolicyResponse
// @Failure      404  {object} pkg.HTTPError
// @Router       /customers/{id}/policies [get]
func (h *CustomerHandler) ListCustomerPolicies(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	policies, err := h.policies.ListByCustomerID(c.Request.Context(), id)
	if err != nil {
		abortWith(c, mapError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPolicies(policies))
}
