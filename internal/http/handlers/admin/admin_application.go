package admin

import (
	"errors"
	"strconv"
	"strings"

	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/repository"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewApplicationRequest 审核主办方申请请求
type ReviewApplicationRequest struct {
	Status   string `json:"status" binding:"required"`
	Feedback string `json:"feedback"`
}

// GetOrganizerApplications 主办方申请列表
func (h *Handler) GetOrganizerApplications(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.OrganizerApplicationListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
		Keyword:  strings.TrimSpace(c.Query("keyword")),
	}
	if userIDRaw := strings.TrimSpace(c.Query("user_id")); userIDRaw != "" {
		raw, err := strconv.ParseUint(userIDRaw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.UserID = uint(raw)
	}
	createdFrom, err := parseTimeNullable(strings.TrimSpace(c.Query("created_from")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	createdTo, err := parseTimeNullable(strings.TrimSpace(c.Query("created_to")))
	if err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}
	filter.CreatedFrom = createdFrom
	filter.CreatedTo = createdTo

	applications, total, err := h.ApplicationService.List(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.application_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, applications, pagination)
}

// ReviewOrganizerApplication 审核主办方申请
// 通过后用户角色提升为 organizer，终态不可重复审核。
func (h *Handler) ReviewOrganizerApplication(c *gin.Context) {
	adminID, ok := getAdminID(c)
	if !ok {
		return
	}

	rawID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || rawID == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	var req ReviewApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	application, err := h.ApplicationService.Review(uint(rawID), adminID, req.Status, req.Feedback)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrApplicationNotFound):
			respondError(c, response.CodeNotFound, "error.application_not_found", nil)
		case errors.Is(err, service.ErrApplicationFinal):
			respondError(c, response.CodeBadRequest, "error.application_final", nil)
		case errors.Is(err, service.ErrInvalidApplicationStatus):
			respondError(c, response.CodeBadRequest, "error.application_status_invalid", nil)
		default:
			respondError(c, response.CodeInternal, "error.application_review_failed", err)
		}
		return
	}

	response.Success(c, application)
}
