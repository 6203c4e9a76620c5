package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/middleware"
)

// StudentController handles resident registry endpoints
type StudentController struct {
	studentService *services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService *services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// RegisterStudent handles student enrollment
// @Summary Register a student
// @Description Enrolls a new resident; student code and email must be unused
// @Tags students
// @Accept json
// @Produce json
// @Param request body dto.CreateStudentRequest true "Student information"
// @Success 201 {object} dto.APIResponse{data=dto.StudentResponse} "Student registered"
// @Failure 400 {object} dto.APIResponse "Invalid request data"
// @Failure 409 {object} dto.APIResponse "Student code or email already registered"
// @Router /students [post]
func (c *StudentController) RegisterStudent(ctx *gin.Context) {
	var req dto.CreateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.RegisterStudent(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// GetStudentByID retrieves a student by internal ID
// @Summary Get student by ID
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [get]
func (c *StudentController) GetStudentByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	student, err := c.studentService.GetStudentByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// GetStudentByCode retrieves a student by institutional code
// @Summary Get student by code
// @Tags students
// @Produce json
// @Param studentId path string true "Institutional student code"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/by-student-id/{studentId} [get]
func (c *StudentController) GetStudentByCode(ctx *gin.Context) {
	student, err := c.studentService.GetStudentByCode(ctx, ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// GetActiveStudents lists enrolled residents
// @Summary List active students
// @Tags students
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.StudentResponse}
// @Router /students [get]
func (c *StudentController) GetActiveStudents(ctx *gin.Context) {
	students, err := c.studentService.GetActiveStudents(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponses(students)))
}

// UpdateStudent changes a resident's profile
// @Summary Update student profile
// @Description Updates profile fields; the student code itself is immutable
// @Tags students
// @Accept json
// @Produce json
// @Param id path int true "Student ID"
// @Param request body dto.UpdateStudentRequest true "Updated profile"
// @Success 200 {object} dto.APIResponse{data=dto.StudentResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 409 {object} dto.APIResponse "Email already registered"
// @Router /students/{id} [put]
func (c *StudentController) UpdateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	student, err := c.studentService.UpdateStudent(ctx, id, req.Name, req.Email, req.RoomNumber, req.PhoneNumber)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewStudentResponse(student)))
}

// DeactivateStudent soft-deletes a resident
// @Summary Deactivate student
// @Description Soft-deletes a resident; history is preserved
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student deactivated"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id} [delete]
func (c *StudentController) DeactivateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.DeactivateStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student deactivated"))
}

// ReactivateStudent re-enrolls a resident
// @Summary Reactivate student
// @Tags students
// @Produce json
// @Param id path int true "Student ID"
// @Success 200 {object} dto.APIResponse "Student reactivated"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /students/{id}/activate [post]
func (c *StudentController) ReactivateStudent(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := c.studentService.ReactivateStudent(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student reactivated"))
}
