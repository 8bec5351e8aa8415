package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

// StudentHandler exposes registration, the admin roster, and role endpoints.
type StudentHandler struct {
	students *service.StudentService
}

// NewStudentHandler constructs StudentHandler.
func NewStudentHandler(students *service.StudentService) *StudentHandler {
	return &StudentHandler{students: students}
}

// Register godoc
// @Summary Register a student
// @Tags Students
// @Accept json
// @Produce json
// @Param body body service.RegisterStudentRequest true "Student profile"
// @Success 200 {object} models.InsertResult
// @Router /students [post]
func (h *StudentHandler) Register(c *gin.Context) {
	var req service.RegisterStudentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	student, created, err := h.students.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.Message(c, service.MsgAlreadyRegistered)
		return
	}
	response.OK(c, models.InsertResult{Acknowledged: true, InsertedID: student.ID})
}

// List godoc
// @Summary List all students
// @Tags Students
// @Produce json
// @Param email query string true "Caller email"
// @Success 200 {array} models.Student
// @Router /students [get]
func (h *StudentHandler) List(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		response.OK(c, []models.Student{})
		return
	}
	if !requireOwnEmail(c, email) {
		return
	}

	students, err := h.students.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, students)
}

// UpdateRole godoc
// @Summary Set a student's role
// @Tags Students
// @Accept json
// @Produce json
// @Param id path string true "Student ID"
// @Param email query string true "Caller email"
// @Param body body service.UpdateRoleRequest true "New role"
// @Success 200 {object} models.UpdateResult
// @Router /students/{id} [put]
func (h *StudentHandler) UpdateRole(c *gin.Context) {
	if !requireOwnEmail(c, c.Query("email")) {
		return
	}

	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	result, err := h.students.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// AdminFlag godoc
// @Summary Check whether an email holds the admin role
// @Tags Students
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} map[string]bool
// @Router /students/admin/{email} [get]
func (h *StudentHandler) AdminFlag(c *gin.Context) {
	email := c.Param("email")
	if !requireOwnEmail(c, email) {
		return
	}

	ok, err := h.students.HasRole(c.Request.Context(), email, models.RoleAdmin)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"admin": ok})
}

// InstructorFlag godoc
// @Summary Check whether an email holds the instructor role
// @Tags Students
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} map[string]bool
// @Router /students/instructor/{email} [get]
func (h *StudentHandler) InstructorFlag(c *gin.Context) {
	email := c.Param("email")
	if !requireOwnEmail(c, email) {
		return
	}

	ok, err := h.students.HasRole(c.Request.Context(), email, models.RoleInstructor)
	if err != nil {
		response.Error(c, err)
		return
	}
	// The flag is published under "admin" regardless of the role asked about.
	// Clients already read that field name, so it stays.
	response.OK(c, gin.H{"admin": ok})
}
