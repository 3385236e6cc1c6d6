package i18n

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// 支持的语言标识
const (
	LocaleZH = "zh-CN"
	LocaleTW = "zh-TW"
	LocaleEN = "en-US"
)

var supported = []language.Tag{
	language.MustParse(LocaleZH),
	language.MustParse(LocaleTW),
	language.MustParse(LocaleEN),
}

var matcher = language.NewMatcher(supported)

// ResolveLocale 解析请求语言（lang 参数优先，其次 Accept-Language）
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return LocaleZH
	}
	if lang := Normalize(c.Query("lang")); lang != "" {
		return lang
	}
	header := strings.TrimSpace(c.GetHeader("Accept-Language"))
	if header == "" {
		return LocaleZH
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return LocaleZH
	}
	_, index, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return LocaleZH
	}
	switch index {
	case 1:
		return LocaleTW
	case 2:
		return LocaleEN
	default:
		return LocaleZH
	}
}

// Normalize 归一化语言标识，无法识别时返回空串
func Normalize(locale string) string {
	l := strings.ToLower(strings.TrimSpace(locale))
	switch {
	case l == "":
		return ""
	case strings.HasPrefix(l, "zh-tw"), strings.HasPrefix(l, "zh-hk"), strings.HasPrefix(l, "zh-mo"):
		return LocaleTW
	case strings.HasPrefix(l, "zh"):
		return LocaleZH
	case strings.HasPrefix(l, "en"):
		return LocaleEN
	default:
		return ""
	}
}

// T 按语言查找文案，未命中时回退简体中文，仍未命中返回 key 本身
func T(locale, key string) string {
	if key == "" {
		return ""
	}
	if catalog, ok := messages[normalizeOrDefault(locale)]; ok {
		if msg, ok := catalog[key]; ok {
			return msg
		}
	}
	if msg, ok := messages[LocaleZH][key]; ok {
		return msg
	}
	return key
}

// Sprintf 按语言查找带占位符的文案并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	format := T(locale, key)
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func normalizeOrDefault(locale string) string {
	if normalized := Normalize(locale); normalized != "" {
		return normalized
	}
	return LocaleZH
}
