package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/bushido-bootcamp/enroll-api/internal/models"
	"github.com/bushido-bootcamp/enroll-api/internal/service"
	appErrors "github.com/bushido-bootcamp/enroll-api/pkg/errors"
	"github.com/bushido-bootcamp/enroll-api/pkg/response"
)

// TakenCourseHandler exposes the pending list (the "cart") endpoints.
type TakenCourseHandler struct {
	courses *service.TakenCourseService
}

// NewTakenCourseHandler constructs TakenCourseHandler.
func NewTakenCourseHandler(courses *service.TakenCourseService) *TakenCourseHandler {
	return &TakenCourseHandler{courses: courses}
}

// Add godoc
// @Summary Add a class to the pending list
// @Tags TakenCourses
// @Accept json
// @Produce json
// @Param body body service.AddTakenCourseRequest true "Class to add"
// @Success 200 {object} models.InsertResult
// @Router /taken-courses [post]
func (h *TakenCourseHandler) Add(c *gin.Context) {
	var req service.AddTakenCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid request body"))
		return
	}

	item, created, err := h.courses.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !created {
		response.Message(c, service.MsgCourseAlreadyAdded)
		return
	}
	response.OK(c, models.InsertResult{Acknowledged: true, InsertedID: item.ID})
}

// Remove godoc
// @Summary Remove a pending list row
// @Tags TakenCourses
// @Produce json
// @Param id path string true "Row ID"
// @Success 200 {object} models.DeleteResult
// @Router /taken-courses/{id} [delete]
func (h *TakenCourseHandler) Remove(c *gin.Context) {
	result, err := h.courses.Remove(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, result)
}

// ListPending godoc
// @Summary List a student's pending rows
// @Tags TakenCourses
// @Produce json
// @Param email query string true "Student email"
// @Success 200 {array} models.TakenCourse
// @Router /taken-courses [get]
func (h *TakenCourseHandler) ListPending(c *gin.Context) {
	h.listByState(c, false)
}

// ListEnrolled godoc
// @Summary List a student's confirmed rows
// @Tags TakenCourses
// @Produce json
// @Param email query string true "Student email"
// @Success 200 {array} models.TakenCourse
// @Router /taken-courses/enrolled [get]
func (h *TakenCourseHandler) ListEnrolled(c *gin.Context) {
	h.listByState(c, true)
}

func (h *TakenCourseHandler) listByState(c *gin.Context, enrolled bool) {
	email := c.Query("email")
	if email == "" {
		response.OK(c, []models.TakenCourse{})
		return
	}
	if !requireOwnEmail(c, email) {
		return
	}

	var (
		items []models.TakenCourse
		err   error
	)
	if enrolled {
		items, err = h.courses.ListEnrolled(c.Request.Context(), email)
	} else {
		items, err = h.courses.ListPending(c.Request.Context(), email)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, items)
}

// Get godoc
// @Summary Get a single pending list row
// @Tags TakenCourses
// @Produce json
// @Param id path string true "Row ID"
// @Param email query string true "Student email"
// @Success 200 {object} models.TakenCourse
// @Router /taken-courses/single/{id} [get]
func (h *TakenCourseHandler) Get(c *gin.Context) {
	email := c.Query("email")
	if !requireOwnEmail(c, email) {
		return
	}

	item, err := h.courses.Get(c.Request.Context(), email, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, item)
}
