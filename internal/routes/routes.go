package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tajrubatahsin16/LanguageShala-server/internal/enrollment"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/handlers"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/middleware"
	"github.com/tajrubatahsin16/LanguageShala-server/internal/store"
	"github.com/tajrubatahsin16/LanguageShala-server/models"
)

// Deps is everything route registration needs. Handlers receive
// interfaces so tests can stand up the full router over fakes.
type Deps struct {
	TokenSecret []byte
	Users       store.UserStore
	Classes     store.ClassStore
	Selections  store.SelectionStore
	Payments    store.PaymentStore
	Coordinator *enrollment.Coordinator
}

// SetupRoutes registers every route. Listings and registration are
// public; every mutating route is behind the auth gate, with role guards
// on the privileged ones.
func SetupRoutes(r *gin.Engine, d Deps) {
	tokens := &handlers.TokenHandler{Secret: d.TokenSecret}
	users := &handlers.UserHandler{Users: d.Users}
	classes := &handlers.ClassHandler{Classes: d.Classes}
	selections := &handlers.SelectionHandler{Selections: d.Selections, Coordinator: d.Coordinator}
	payments := &handlers.PaymentHandler{Ledger: d.Payments, Coordinator: d.Coordinator}

	requireAuth := middleware.RequireAuth(d.TokenSecret)
	requireAdmin := middleware.RequireRole(d.Users, models.RoleAdmin)
	requireInstructor := middleware.RequireRole(d.Users, models.RoleInstructor)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "LanguageShala is running")
	})

	// Credential issuance trusts the upstream identity provider; see
	// handlers.TokenHandler.
	r.POST("/jwt", tokens.Issue)

	// Users and roles.
	r.GET("/users", requireAuth, requireAdmin, users.List)
	r.POST("/users", users.Register)
	r.GET("/users/admin/:email", requireAuth, users.CheckAdmin)
	r.PATCH("/users/admin/:id", requireAuth, requireAdmin, users.PromoteAdmin)
	r.GET("/users/instructor/:email", requireAuth, users.CheckInstructor)
	r.PATCH("/users/instructor/:id", requireAuth, requireAdmin, users.PromoteInstructor)
	r.GET("/allInstructors", users.ListInstructors)

	// Class offerings.
	r.GET("/allClasses", classes.ListAll)
	r.GET("/approvedClasses", classes.ListApproved)
	r.GET("/classes", classes.ListByEmail)
	r.GET("/classes/:id", classes.Get)
	r.POST("/classes", requireAuth, requireInstructor, classes.Create)
	r.PUT("/classes/:id", requireAuth, requireInstructor, classes.Update)
	r.PATCH("/classes/:id", requireAuth, requireAdmin, classes.SetFeedback)
	r.PATCH("/classes/approved/:id", requireAuth, requireAdmin, classes.Approve)
	r.PATCH("/classes/denied/:id", requireAuth, requireAdmin, classes.Deny)

	// Selections.
	r.POST("/selectedClasses", requireAuth, selections.Select)
	r.GET("/selectedClasses", requireAuth, selections.List)
	r.GET("/selectedClasses/:id", requireAuth, selections.Get)
	r.DELETE("/selectedClasses/:id", requireAuth, selections.Cancel)

	// Payments.
	r.POST("/create-payment-intent", requireAuth, payments.CreateIntent)
	r.POST("/payments", requireAuth, payments.Finalize)
	r.GET("/payments", payments.List)
}
