package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/classtrack/attendance-api/internal/api/metrics"
	"github.com/classtrack/attendance-api/internal/core/ports"
)

// StudentHandler handles HTTP requests for attendance records. Status codes
// for failures are decided by the central error handler; handlers only bind,
// validate, call the service and render success bodies.
type StudentHandler struct {
	service ports.StudentService
}

func NewStudentHandler(service ports.StudentService) *StudentHandler {
	return &StudentHandler{service: service}
}

type studentRequest struct {
	StudentID   string `json:"studentID" validate:"required"`
	StudentName string `json:"studentName" validate:"required"`
	CourseName  string `json:"courseName" validate:"required"`
	Date        string `json:"date" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (r studentRequest) input() ports.StudentInput {
	return ports.StudentInput{
		StudentID:   r.StudentID,
		StudentName: r.StudentName,
		CourseName:  r.CourseName,
		Date:        r.Date,
	}
}

// Create registers a new attendance record.
//
// @Summary      Create a student record
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        body  body      studentRequest  true  "Student record"
// @Success      201   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Security     BearerAuth
// @Router       /student [post]
func (h *StudentHandler) Create(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.service.Create(c.Request().Context(), req.input()); err != nil {
		metrics.StudentOpsTotal.WithLabelValues("create", "failure").Inc()
		return err
	}

	metrics.StudentOpsTotal.WithLabelValues("create", "success").Inc()
	return c.JSON(http.StatusCreated, messageResponse{Message: "Student created successfully"})
}

// List returns every attendance record.
//
// @Summary      List student records
// @Tags         students
// @Produce      json
// @Success      200  {array}   domain.Student
// @Failure      401  {object}  map[string]string
// @Security     BearerAuth
// @Router       /students [get]
func (h *StudentHandler) List(c echo.Context) error {
	students, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, students)
}

// Get returns a single attendance record.
//
// @Summary      Get a student record
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Success      200  {object}  domain.Student
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /student/{id} [get]
func (h *StudentHandler) Get(c echo.Context) error {
	student, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, student)
}

// Update replaces every field of an existing record. The payload's
// studentID is accepted for symmetry with create but the path id wins;
// records are never renamed.
//
// @Summary      Update a student record
// @Tags         students
// @Accept       json
// @Produce      json
// @Param        id    path      string          true  "Student ID"
// @Param        body  body      studentRequest  true  "Replacement record"
// @Success      200   {object}  messageResponse
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Security     BearerAuth
// @Router       /student/{id} [put]
func (h *StudentHandler) Update(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	var req studentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if _, err := h.service.Update(c.Request().Context(), c.Param("id"), req.input()); err != nil {
		metrics.StudentOpsTotal.WithLabelValues("update", "failure").Inc()
		return err
	}

	metrics.StudentOpsTotal.WithLabelValues("update", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Student updated successfully"})
}

// Delete removes an attendance record.
//
// @Summary      Delete a student record
// @Tags         students
// @Produce      json
// @Param        id   path      string  true  "Student ID"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Security     BearerAuth
// @Router       /student/{id} [delete]
func (h *StudentHandler) Delete(c echo.Context) error {
	if _, err := ctxUsername(c); err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		metrics.StudentOpsTotal.WithLabelValues("delete", "failure").Inc()
		return err
	}

	metrics.StudentOpsTotal.WithLabelValues("delete", "success").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Student deleted successfully"})
}
