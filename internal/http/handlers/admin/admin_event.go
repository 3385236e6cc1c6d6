package admin

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/repository"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AdminEventRequest 创建/更新活动请求
type AdminEventRequest struct {
	Slug        string    `json:"slug" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	CategoryID  *uint     `json:"category_id"`
	OrganizerID uint      `json:"organizer_id"`
	Venue       string    `json:"venue"`
	StartsAt    time.Time `json:"starts_at" binding:"required"`
	EndsAt      time.Time `json:"ends_at"`
	Capacity    int       `json:"capacity"`
	TicketPrice float64   `json:"ticket_price"`
	Currency    string    `json:"currency"`
	CoverImage  string    `json:"cover_image"`
	Tags        []string  `json:"tags"`
}

func (r AdminEventRequest) toServiceInput() service.CreateEventInput {
	return service.CreateEventInput{
		Slug:        r.Slug,
		Title:       r.Title,
		Description: r.Description,
		CategoryID:  r.CategoryID,
		Venue:       r.Venue,
		StartsAt:    r.StartsAt,
		EndsAt:      r.EndsAt,
		Capacity:    r.Capacity,
		TicketPrice: decimal.NewFromFloat(r.TicketPrice),
		Currency:    r.Currency,
		CoverImage:  r.CoverImage,
		Tags:        r.Tags,
	}
}

// GetAdminEvents 后台活动列表
func (h *Handler) GetAdminEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.EventListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: strings.TrimSpace(c.Query("category_id")),
		Keyword:    strings.TrimSpace(c.Query("keyword")),
		Status:     strings.TrimSpace(c.Query("status")),
	}
	if organizerRaw := strings.TrimSpace(c.Query("organizer_id")); organizerRaw != "" {
		raw, err := strconv.ParseUint(organizerRaw, 10, 64)
		if err != nil {
			respondError(c, response.CodeBadRequest, "error.bad_request", err)
			return
		}
		filter.OrganizerID = uint(raw)
	}

	events, total, err := h.EventService.ListAdmin(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, events, pagination)
}

// GetAdminEvent 后台活动详情
func (h *Handler) GetAdminEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	event, err := h.EventService.GetByID(id)
	if err != nil {
		respondEventError(c, err)
		return
	}
	response.Success(c, event)
}

// CreateEvent 创建活动（草稿）
func (h *Handler) CreateEvent(c *gin.Context) {
	var req AdminEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	organizerID := req.OrganizerID
	if organizerID == 0 {
		// 未指定主办方时归属当前操作管理员
		adminID, ok := getAdminID(c)
		if !ok {
			return
		}
		organizerID = adminID
	}

	event, err := h.EventService.Create(organizerID, req.toServiceInput())
	if err != nil {
		respondEventError(c, err)
		return
	}
	response.Success(c, event)
}

// UpdateEvent 更新活动
func (h *Handler) UpdateEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	var req AdminEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", err)
		return
	}

	event, err := h.EventService.Update(id, req.toServiceInput())
	if err != nil {
		respondEventError(c, err)
		return
	}
	response.Success(c, event)
}

// PublishEvent 发布活动
func (h *Handler) PublishEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	event, err := h.EventService.Publish(id)
	if err != nil {
		respondEventError(c, err)
		return
	}
	response.Success(c, event)
}

// CancelEvent 取消活动并通知报名用户
func (h *Handler) CancelEvent(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	event, err := h.EventService.Cancel(id)
	if err != nil {
		respondEventError(c, err)
		return
	}
	response.Success(c, event)
}

// GetEventRegistrations 活动报名列表
func (h *Handler) GetEventRegistrations(c *gin.Context) {
	id, ok := parseEventID(c)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	if _, err := h.EventService.GetByID(id); err != nil {
		respondEventError(c, err)
		return
	}

	registrations, total, err := h.RegistrationService.ListByEvent(id, repository.RegistrationListFilter{
		Page:     page,
		PageSize: pageSize,
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		respondError(c, response.CodeInternal, "error.registration_fetch_failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, registrations, pagination)
}

func parseEventID(c *gin.Context) (uint, bool) {
	raw, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || raw == 0 {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return 0, false
	}
	return uint(raw), true
}

func respondEventError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondError(c, response.CodeNotFound, "error.event_not_found", nil)
	case errors.Is(err, service.ErrSlugExists):
		respondError(c, response.CodeBadRequest, "error.slug_exists", nil)
	case errors.Is(err, service.ErrEventInputInvalid):
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
	case errors.Is(err, service.ErrInvalidEventTime):
		respondError(c, response.CodeBadRequest, "error.event_time_invalid", nil)
	case errors.Is(err, service.ErrInvalidEventStatus):
		respondError(c, response.CodeBadRequest, "error.event_status_invalid", nil)
	case errors.Is(err, service.ErrEventCanceled):
		respondError(c, response.CodeBadRequest, "error.event_canceled", nil)
	default:
		respondError(c, response.CodeInternal, "error.event_save_failed", err)
	}
}
