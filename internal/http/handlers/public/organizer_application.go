package public

import (
	"errors"
	"strconv"

	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
)

// SubmitApplicationRequest 提交主办方申请请求
type SubmitApplicationRequest struct {
	OrgName      string `json:"org_name" binding:"required"`
	Description  string `json:"description" binding:"required"`
	ContactPhone string `json:"contact_phone"`
	Website      string `json:"website"`
}

// SubmitOrganizerApplication 提交主办方申请
func (h *Handler) SubmitOrganizerApplication(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	var req SubmitApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	application, err := h.ApplicationService.Submit(uid, service.SubmitApplicationInput{
		OrgName:      req.OrgName,
		Description:  req.Description,
		ContactPhone: req.ContactPhone,
		Website:      req.Website,
	})
	if err != nil {
		respondApplicationSubmitError(c, err)
		return
	}

	response.Success(c, applicationResponse(application))
}

// CheckOrganizerApplication 查询当前用户最新申请状态
func (h *Handler) CheckOrganizerApplication(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	application, err := h.ApplicationService.GetLatestByUser(uid)
	if err != nil {
		respondError(c, response.CodeInternal, "error.application_fetch_failed", err)
		return
	}
	if application == nil {
		response.Success(c, gin.H{"exists": false})
		return
	}

	response.Success(c, gin.H{
		"exists": true,
		"id":     application.ID,
		"status": application.Status,
	})
}

// GetOrganizerApplication 查询申请详情（仅本人）
func (h *Handler) GetOrganizerApplication(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	application, err := h.ApplicationService.GetByID(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrApplicationNotFound) {
			respondError(c, response.CodeNotFound, "error.application_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.application_fetch_failed", err)
		return
	}
	// 非本人申请按不存在处理
	if application.UserID != uid {
		respondError(c, response.CodeNotFound, "error.application_not_found", nil)
		return
	}

	response.Success(c, applicationResponse(application))
}

func applicationResponse(application *models.OrganizerApplication) gin.H {
	return gin.H{
		"id":            application.ID,
		"org_name":      application.OrgName,
		"description":   application.Description,
		"contact_phone": application.ContactPhone,
		"website":       application.Website,
		"status":        application.Status,
		"feedback":      application.Feedback,
		"reviewed_at":   application.ReviewedAt,
		"created_at":    application.CreatedAt,
	}
}
