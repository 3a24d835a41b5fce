package routes

import (
	"insurance_backoffice/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPing      = "/ping"
	PathCustomers = "/customers"
	PathPolicies  = "/policies"
	PathClaims    = "/claims"
	PathDashboard = "/dashboard"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCustomerRoutes(rg *gin.RouterGroup, h *handlers.CustomerHandler) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
		customers.GET("/:id", h.GetCustomer)
		customers.PATCH("/:id", h.UpdateCustomer)
		customers.GET("/:id/policies", h.ListCustomerPolicies)
	}
}

func addPolicyRoutes(rg *gin.RouterGroup, h *handlers.PolicyHandler) {
	policies := rg.Group(PathPolicies)
	{
		policies.POST("", h.CreatePolicy)
		policies.GET("", h.ListPolicies)
		policies.GET("/:id", h.GetPolicy)
		policies.PATCH("/:id", h.UpdatePolicy)
		policies.GET("/:id/claims", h.ListPolicyClaims)
	}
}

func addClaimRoutes(rg *gin.RouterGroup, h *handlers.ClaimHandler) {
	claims := rg.Group(PathClaims)
	{
		claims.POST("", h.SubmitClaim)
		claims.GET("", h.ListClaims)
		claims.GET("/:id", h.GetClaim)
		claims.PATCH("/:id", h.UpdateClaim)
		claims.POST("/:id/transition", h.TransitionClaim)
	}
}

func addDashboardRoutes(rg *gin.RouterGroup, h *handlers.DashboardHandler) {
	dashboard := rg.Group(PathDashboard)
	{
		dashboard.GET("", h.Summary)
		dashboard.GET("/counts", h.Counts)
		dashboard.GET("/recent/:kind", h.Recent)
	}
}
