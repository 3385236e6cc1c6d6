package public

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/repository"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
)

const defaultSuggestLimit = 10

// GetEvents 获取已发布活动列表
func (h *Handler) GetEvents(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	filter := repository.EventListFilter{
		Page:       page,
		PageSize:   pageSize,
		CategoryID: c.Query("category_id"),
		Keyword:    strings.TrimSpace(c.Query("search")),
	}
	if from := parseTimeQuery(c.Query("starts_from")); from != nil {
		filter.StartsFrom = from
	}
	if to := parseTimeQuery(c.Query("starts_to")); to != nil {
		filter.StartsTo = to
	}

	events, total, err := h.EventService.ListPublic(filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	response.SuccessWithPage(c, events, buildPagination(page, pageSize, total))
}

// GetEventBySlug 获取已发布活动详情
func (h *Handler) GetEventBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	event, err := h.EventService.GetPublicBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, response.CodeNotFound, "error.event_not_found", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	confirmed, err := h.RegistrationService.CountConfirmed(event.ID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}

	response.Success(c, gin.H{
		"event":           event,
		"confirmed_count": confirmed,
	})
}

// SuggestEvents 活动标题联想
func (h *Handler) SuggestEvents(c *gin.Context) {
	prefix := strings.TrimSpace(c.Query("q"))

	limit := defaultSuggestLimit
	if h.SettingService != nil {
		if configured, err := h.SettingService.GetSuggestLimit(defaultSuggestLimit); err == nil {
			limit = configured
		}
	}

	titles, err := h.EventService.SuggestTitles(prefix, limit)
	if err != nil {
		respondError(c, response.CodeInternal, "error.event_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"suggestions": titles})
}

func parseTimeQuery(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil
	}
	return &parsed
}
