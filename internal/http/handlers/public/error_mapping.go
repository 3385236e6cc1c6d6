package public

import (
	"errors"

	"github.com/event-horizon/internal/http/response"
	"github.com/event-horizon/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

var registrationErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.event_not_found"},
	{target: service.ErrEventNotPublished, code: response.CodeBadRequest, key: "error.event_not_published"},
	{target: service.ErrEventCanceled, code: response.CodeBadRequest, key: "error.event_canceled"},
	{target: service.ErrEventStarted, code: response.CodeBadRequest, key: "error.event_started"},
	{target: service.ErrAlreadyRegistered, code: response.CodeBadRequest, key: "error.already_registered"},
	{target: service.ErrRegistrationNotFound, code: response.CodeNotFound, key: "error.registration_not_found"},
}

var applicationSubmitErrorRules = []mappedHandlerError{
	{target: service.ErrReasonRequired, code: response.CodeBadRequest, key: "error.application_reason_required"},
	{target: service.ErrApplicationPending, code: response.CodeBadRequest, key: "error.application_pending"},
	{target: service.ErrAlreadyOrganizer, code: response.CodeBadRequest, key: "error.already_organizer"},
	{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.user_not_found"},
}

func respondRegistrationError(c *gin.Context, err error) {
	respondWithMappedError(c, err, registrationErrorRules, response.CodeInternal, "error.registration_failed")
}

func respondApplicationSubmitError(c *gin.Context, err error) {
	respondWithMappedError(c, err, applicationSubmitErrorRules, response.CodeInternal, "error.application_submit_failed")
}
