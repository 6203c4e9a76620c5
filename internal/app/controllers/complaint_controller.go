package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/deepam/hostelmess/internal/app/models"
	"github.com/deepam/hostelmess/internal/app/models/dto"
	"github.com/deepam/hostelmess/internal/app/services"
	"github.com/deepam/hostelmess/internal/middleware"
)

// ComplaintController handles complaint workflow endpoints
type ComplaintController struct {
	complaintService *services.ComplaintService
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService *services.ComplaintService) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
	}
}

// SubmitComplaint handles complaint submission
// @Summary Submit a complaint
// @Description Files a new complaint ticket; it enters the workflow as SUBMITTED
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Complaint information"
// @Success 201 {object} dto.APIResponse{data=dto.ComplaintResponse} "Complaint submitted"
// @Failure 400 {object} dto.APIResponse "Invalid request data or inactive student"
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Failure 500 {object} dto.APIResponse "Internal server error"
// @Router /complaints [post]
func (c *ComplaintController) SubmitComplaint(ctx *gin.Context) {
	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaint, err := c.complaintService.SubmitComplaint(ctx, req.ToModel())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(dto.NewComplaintResponse(complaint)))
}

// GetComplaintByID retrieves a complaint by ID
// @Summary Get complaint by ID
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse}
// @Failure 404 {object} dto.APIResponse "Complaint not found"
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetComplaintByID(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	complaint, err := c.complaintService.GetComplaintByID(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponse(complaint)))
}

// GetOpenComplaints lists the staff triage queue
// @Summary List open complaints
// @Description Open tickets ordered most urgent first, oldest first within a priority
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse}
// @Router /complaints/open [get]
func (c *ComplaintController) GetOpenComplaints(ctx *gin.Context) {
	complaints, err := c.complaintService.GetOpenComplaints(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(complaints)))
}

// GetAllComplaints lists every complaint
// @Summary List all complaints
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse}
// @Router /complaints [get]
func (c *ComplaintController) GetAllComplaints(ctx *gin.Context) {
	complaints, err := c.complaintService.GetAllComplaints(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(complaints)))
}

// GetComplaintsByStudent lists one student's complaints
// @Summary List complaints by student
// @Tags complaints
// @Produce json
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]dto.ComplaintResponse}
// @Failure 404 {object} dto.APIResponse "Student not found"
// @Router /complaints/student/{studentId} [get]
func (c *ComplaintController) GetComplaintsByStudent(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "studentId")
	if !ok {
		return
	}

	complaints, err := c.complaintService.GetComplaintsByStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponses(complaints)))
}

// UpdateComplaintStatus drives a complaint through the workflow
// @Summary Update complaint status
// @Description Moves a complaint to IN_PROGRESS, RESOLVED or CLOSED subject to the workflow guards
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Param status query string true "Target status" Enums(IN_PROGRESS, RESOLVED, CLOSED)
// @Param notes query string false "Resolution notes, stored when resolving"
// @Param resolvedBy query string false "Resolver identity, stored when resolving"
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintResponse} "Status updated"
// @Failure 400 {object} dto.APIResponse "Invalid target status or guard violation"
// @Failure 404 {object} dto.APIResponse "Complaint not found"
// @Router /complaints/{id}/status [put]
func (c *ComplaintController) UpdateComplaintStatus(ctx *gin.Context) {
	id, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateComplaintStatusRequest
	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	target, err := models.ParseComplaintStatus(req.Status)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid complaint status")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail.WithDetails(err.Error())))
		return
	}

	complaint, err := c.complaintService.UpdateComplaintStatus(ctx, id, target, req.ResolutionNotes, req.ResolvedBy)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewComplaintResponse(complaint)))
}

// GetComplaintStats returns workload counters
// @Summary Complaint workload counters
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.ComplaintStatsResponse}
// @Router /complaints/stats [get]
func (c *ComplaintController) GetComplaintStats(ctx *gin.Context) {
	pending, inProgress, urgentOpen, err := c.complaintService.GetComplaintStats(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.ComplaintStatsResponse{
		Pending:    pending,
		InProgress: inProgress,
		UrgentOpen: urgentOpen,
	}))
}

// GetPendingCount counts complaints still in SUBMITTED
// @Summary Pending complaints count
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse{data=int64}
// @Router /complaints/stats/pending-count [get]
func (c *ComplaintController) GetPendingCount(ctx *gin.Context) {
	count, err := c.complaintService.CountPendingComplaints(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(count))
}

// GetUrgentCount counts open complaints with URGENT priority
// @Summary Urgent open complaints count
// @Tags complaints
// @Produce json
// @Success 200 {object} dto.APIResponse{data=int64}
// @Router /complaints/stats/urgent-count [get]
func (c *ComplaintController) GetUrgentCount(ctx *gin.Context) {
	count, err := c.complaintService.CountUrgentOpenComplaints(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(count))
}

// pathID parses a positive int64 path parameter, writing the error
// response itself when the value is malformed.
func pathID(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid "+name)
		errorDetail = errorDetail.WithDetails(name + " must be a positive number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return 0, false
	}
	return id, true
}
