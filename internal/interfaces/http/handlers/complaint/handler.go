package complaint

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ecomplaint/internal/application/complaint/usecases"
	"ecomplaint/internal/shared/authorization"
	"ecomplaint/internal/shared/constants"
	"ecomplaint/internal/shared/errors"
	"ecomplaint/internal/shared/logger"
	"ecomplaint/internal/shared/utils"
)

type Handler struct {
	fileComplaintUC usecases.FileComplaintExecutor
	listMineUC      usecases.ListMyComplaintsExecutor
	listAllUC       usecases.ListAllComplaintsExecutor
	getComplaintUC  usecases.GetComplaintExecutor
	getEvidenceUC   usecases.GetEvidenceExecutor
	updateUC        usecases.UpdateComplaintExecutor
	dashboardUC     usecases.GetDashboardExecutor
	logger          logger.Interface
}

func NewHandler(
	fileComplaintUC usecases.FileComplaintExecutor,
	listMineUC usecases.ListMyComplaintsExecutor,
	listAllUC usecases.ListAllComplaintsExecutor,
	getComplaintUC usecases.GetComplaintExecutor,
	getEvidenceUC usecases.GetEvidenceExecutor,
	updateUC usecases.UpdateComplaintExecutor,
	dashboardUC usecases.GetDashboardExecutor,
) *Handler {
	return &Handler{
		fileComplaintUC: fileComplaintUC,
		listMineUC:      listMineUC,
		listAllUC:       listAllUC,
		getComplaintUC:  getComplaintUC,
		getEvidenceUC:   getEvidenceUC,
		updateUC:        updateUC,
		dashboardUC:     dashboardUC,
		logger:          logger.NewLogger(),
	}
}

// FileComplaint handles POST /api/complaints
func (h *Handler) FileComplaint(c *gin.Context) {
	var form FileComplaintForm
	if err := c.ShouldBind(&form); err != nil {
		h.logger.Warnw("invalid form for file complaint", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request form"))
		return
	}

	userEmail, _ := currentIdentity(c)

	cmd, err := form.ToCommand(userEmail, evidenceFileHeader(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.fileComplaintUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Complaint filed successfully")
}

// ListMyComplaints handles GET /api/complaints
func (h *Handler) ListMyComplaints(c *gin.Context) {
	userEmail, _ := currentIdentity(c)

	result, err := h.listMineUC.Execute(c.Request.Context(), usecases.ListMyComplaintsQuery{
		OwnerEmail: userEmail,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total)
}

// GetComplaint handles GET /api/complaints/:id
func (h *Handler) GetComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userEmail, userRole := currentIdentity(c)

	result, err := h.getComplaintUC.Execute(c.Request.Context(), usecases.GetComplaintQuery{
		ComplaintID: complaintID,
		UserEmail:   userEmail,
		UserRole:    userRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// DownloadEvidence handles GET /api/complaints/:id/evidence
func (h *Handler) DownloadEvidence(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userEmail, userRole := currentIdentity(c)

	result, err := h.getEvidenceUC.Execute(c.Request.Context(), usecases.GetEvidenceQuery{
		ComplaintID: complaintID,
		UserEmail:   userEmail,
		UserRole:    userRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.FileAttachment(result.Path, result.Filename)
}

// ListAllComplaints handles GET /api/admin/complaints
func (h *Handler) ListAllComplaints(c *gin.Context) {
	result, err := h.listAllUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Complaints, result.Total)
}

// UpdateComplaint handles PATCH /api/admin/complaints/:id
func (h *Handler) UpdateComplaint(c *gin.Context) {
	complaintID, err := parseComplaintID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateComplaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body"))
		return
	}

	userEmail, _ := currentIdentity(c)

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(complaintID, userEmail))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Complaint updated successfully", result)
}

// Dashboard handles GET /api/dashboard
func (h *Handler) Dashboard(c *gin.Context) {
	userEmail, userRole := currentIdentity(c)

	result, err := h.dashboardUC.Execute(c.Request.Context(), usecases.GetDashboardQuery{
		UserEmail: userEmail,
		UserRole:  userRole,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response := DashboardResponse{
		Total:    result.Total,
		Pending:  result.Pending,
		Resolved: result.Resolved,
	}
	if userRole.IsAdmin() {
		response.Filed = &result.Filed
		response.InProgress = &result.InProgress
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

func parseComplaintID(c *gin.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errors.NewBadRequestError("invalid complaint ID")
	}
	return id, nil
}

func currentIdentity(c *gin.Context) (string, authorization.UserRole) {
	email := c.GetString(constants.ContextKeyUserEmail)
	role := authorization.ParseUserRole(c.GetString(constants.ContextKeyUserRole))
	return email, role
}
