package service

import (
	"strings"

	"github.com/event-horizon/internal/constants"
)

// 主办方申请状态机：待审核可流转到已通过或已驳回，两个终态不再变化
var allowedApplicationTransitions = map[string]map[string]bool{
	constants.ApplicationStatusPending: {
		constants.ApplicationStatusAccepted: true,
		constants.ApplicationStatusRejected: true,
	},
}

// isApplicationTransitionAllowed 校验申请状态流转是否合法
func isApplicationTransitionAllowed(from, to string) bool {
	next, ok := allowedApplicationTransitions[strings.ToLower(strings.TrimSpace(from))]
	if !ok {
		return false
	}
	return next[strings.ToLower(strings.TrimSpace(to))]
}

// isApplicationFinal 判断申请是否已终审
func isApplicationFinal(status string) bool {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case constants.ApplicationStatusAccepted, constants.ApplicationStatusRejected:
		return true
	default:
		return false
	}
}
