package handler

import (
	"errors"
	"net/http"

	"github.com/ZulfikarHD/labelgen/internal/labelgen/service"
	"github.com/ZulfikarHD/labelgen/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers is the HTTP handler set for the label tracking API.
type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Workstation   *WorkstationHandler
	Order         *OrderHandler
	Label         *LabelHandler
	Specification *SpecificationHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(services.Auth),
		User:          NewUserHandler(services.User, services.Auth),
		Workstation:   NewWorkstationHandler(services.Workstation),
		Order:         NewOrderHandler(services.Order, services.Export),
		Label:         NewLabelHandler(services.Label),
		Specification: NewSpecificationHandler(services.Spec),
	}
}

// RegisterRoutes wires the API under /api/v1. Mutating order and user
// management routes sit behind the admin gate; inspection actions stay
// open to operators.
func RegisterRoutes(r *gin.Engine, h *Handlers, jwtSecret string, auth *service.AuthService) {
	api := r.Group("/api/v1")

	api.POST("/auth/login", h.Auth.Login)

	authed := api.Group("", middleware.JWTAuth(jwtSecret, auth, auth))
	{
		authed.POST("/auth/logout", h.Auth.Logout)
		authed.GET("/auth/me", h.Auth.Me)
		authed.PUT("/auth/password", h.Auth.ChangePassword)

		authed.GET("/specifications/:poNumber", h.Specification.Get)
		authed.GET("/specifications/:poNumber/validate", h.Specification.Validate)
		authed.GET("/specifications/:poNumber/raw", h.Specification.Raw)

		authed.GET("/orders", h.Order.List)
		authed.GET("/orders/:id", h.Order.Get)
		authed.GET("/orders/:id/labels", h.Label.ListByOrder)
		authed.GET("/orders/:id/export", h.Order.Export)

		authed.GET("/labels/:id", h.Label.Get)
		authed.POST("/labels/:id/start", h.Label.Start)
		authed.POST("/labels/:id/finish", h.Label.Finish)

		authed.GET("/workstations", h.Workstation.List)
		authed.GET("/workstations/:id", h.Workstation.Get)
	}

	admin := authed.Group("", middleware.AdminOnly())
	{
		admin.POST("/orders", h.Order.Register)
		admin.PUT("/orders/:id/status", h.Order.AdvanceStatus)
		admin.PUT("/orders/:id/team", h.Order.AssignTeam)
		admin.DELETE("/orders/:id", h.Order.Delete)

		admin.GET("/users", h.User.List)
		admin.POST("/users", h.User.Create)
		admin.GET("/users/:id", h.User.Get)
		admin.PUT("/users/:id", h.User.Update)
		admin.DELETE("/users/:id", h.User.Delete)
		admin.PUT("/users/:id/password", h.User.ResetPassword)
		admin.GET("/users/:id/labels", h.User.InspectedLabels)

		admin.POST("/workstations", h.Workstation.Create)
		admin.PUT("/workstations/:id", h.Workstation.Update)
		admin.DELETE("/workstations/:id", h.Workstation.Delete)
		admin.PUT("/workstations/:id/toggle", h.Workstation.ToggleActive)
	}
}

func respondOK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "success", "data": data})
}

func respondCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "success", "data": data})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// respondServiceError maps the service sentinel errors onto HTTP
// statuses. Anything unmapped is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrPONotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidCredential):
		respondError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrAlreadyExists), errors.Is(err, service.ErrWorkstationInUse):
		respondError(c, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrOrderCompleted),
		errors.Is(err, service.ErrLabelNotStarted),
		errors.Is(err, service.ErrLabelStarted),
		errors.Is(err, service.ErrLabelFinished),
		errors.Is(err, service.ErrSelfDelete),
		errors.Is(err, service.ErrMmeaInschiet):
		respondError(c, http.StatusUnprocessableEntity, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, err.Error())
	}
}
