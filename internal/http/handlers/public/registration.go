package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/event-horizon/internal/constants"
	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/models"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
)

// RegisterForEvent 报名活动
// 容量已满时进入候补队列，响应中的 status 区分 confirmed/waitlisted。
func (h *Handler) RegisterForEvent(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	event, ok := h.resolvePublishedEvent(c)
	if !ok {
		return
	}

	registration, err := h.RegistrationService.Register(uid, event.ID)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}

	response.Success(c, gin.H{
		"registration": registration,
		"waitlisted":   registration.Status == constants.RegistrationStatusWaitlisted,
	})
}

// CancelRegistration 取消报名
// 取消确认席位时立即晋升最早候补。
func (h *Handler) CancelRegistration(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}
	event, ok := h.resolvePublishedEvent(c)
	if !ok {
		return
	}

	promoted, err := h.RegistrationService.Cancel(uid, event.ID)
	if err != nil {
		respondRegistrationError(c, err)
		return
	}

	data := gin.H{"canceled": true}
	if promoted != nil {
		data["promoted_user_id"] = promoted.UserID
	}
	response.Success(c, data)
}

// GetMyRegistrations 获取当前用户报名列表
func (h *Handler) GetMyRegistrations(c *gin.Context) {
	uid, ok := getUserID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	registrations, total, err := h.RegistrationService.ListMine(uid, page, pageSize)
	if err != nil {
		respondError(c, response.CodeInternal, "error.registration_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, registrations, buildPagination(page, pageSize, total))
}

func (h *Handler) resolvePublishedEvent(c *gin.Context) (*models.Event, bool) {
	slug := strings.TrimSpace(c.Param("slug"))
	found, err := h.EventService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.event_not_found", nil)
			return nil, false
		}
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return nil, false
	}
	return found, true
}
