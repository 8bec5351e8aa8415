package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/middleware"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
)

// Router wires every handler onto the engine. The paths, methods, and guard
// placement mirror the route table the frontend was built against.
type Router struct {
	Auth         *AuthHandler
	Students     *StudentHandler
	Classes      *ClassHandler
	TakenCourses *TakenCourseHandler
	Payments     *PaymentHandler
	Metrics      *MetricsHandler

	AuthService *service.AuthService
	Roles       middleware.RoleSource
}

// Register attaches all routes to the engine.
func (rt *Router) Register(r *gin.Engine) {
	authed := middleware.JWT(rt.AuthService)
	admin := middleware.RequireAdmin(rt.Roles)
	instructor := middleware.RequireInstructor(rt.Roles)

	r.GET("/", rt.Metrics.Liveness)
	r.GET("/health", rt.Metrics.Health)
	r.GET("/metrics", rt.Metrics.Prometheus)

	r.POST("/jwt", rt.Auth.IssueToken)

	r.POST("/payment-intent", rt.Payments.CreateIntent)
	r.POST("/payments", authed, rt.Payments.Checkout)
	r.GET("/payments", authed, rt.Payments.History)
	r.GET("/payments/export", authed, rt.Payments.Export)

	r.GET("/classes", rt.Classes.ListApproved)
	// Legacy duplicate of /classes, kept because deployed clients call it.
	r.GET("/classes/all", rt.Classes.ListApproved)
	r.GET("/classes/top-six", rt.Classes.TopSix)
	r.POST("/classes", authed, instructor, rt.Classes.Create)
	r.GET("/classes/myClasses", authed, instructor, rt.Classes.ListOwned)
	r.GET("/classes/myClasses/:id", authed, instructor, rt.Classes.GetOwned)
	r.PUT("/classes/myClasses/:id", authed, instructor, rt.Classes.UpdateDetails)
	r.PUT("/classes/manageClasses/:id", authed, admin, rt.Classes.Moderate)

	r.POST("/students", rt.Students.Register)
	r.GET("/students", authed, admin, rt.Students.List)
	r.PUT("/students/:id", authed, admin, rt.Students.UpdateRole)
	r.GET("/students/admin/:email", authed, rt.Students.AdminFlag)
	r.GET("/students/instructor/:email", authed, rt.Students.InstructorFlag)

	r.POST("/taken-courses", rt.TakenCourses.Add)
	r.DELETE("/taken-courses/:id", rt.TakenCourses.Remove)
	r.GET("/taken-courses", authed, rt.TakenCourses.ListPending)
	r.GET("/taken-courses/enrolled", authed, rt.TakenCourses.ListEnrolled)
	r.GET("/taken-courses/single/:id", authed, rt.TakenCourses.Get)
}
