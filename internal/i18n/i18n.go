// Package i18n 提供词法、语法以及命令行消息的多语言目录
package i18n

import (
	"fmt"
	"strings"
	"sync"
)

// Language 语言类型
type Language string

const (
	LangEnglish Language = "en"
	LangChinese Language = "zh"
)

var (
	currentLang = LangEnglish
	mu          sync.RWMutex
)

// SetLanguage 设置当前语言
func SetLanguage(lang Language) {
	mu.Lock()
	defer mu.Unlock()
	currentLang = lang
}

// ParseLanguage 解析命令行或配置里的语言名
//
// 接受 en、zh 以及 zh-cn、zh_TW 这类地区写法，大小写不敏感。
func ParseLanguage(name string) (Language, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch {
	case name == "" || name == "en" || strings.HasPrefix(name, "en-") || strings.HasPrefix(name, "en_"):
		return LangEnglish, nil
	case name == "zh" || name == "chinese" || strings.HasPrefix(name, "zh-") || strings.HasPrefix(name, "zh_"):
		return LangChinese, nil
	}
	return LangEnglish, fmt.Errorf("unknown language %q", name)
}

// GetLanguage 获取当前语言
func GetLanguage() Language {
	mu.RLock()
	defer mu.RUnlock()
	return currentLang
}

// T 翻译消息（支持格式化参数）
//
// 当前语言缺少该条目时回退到英文，仍然找不到则原样返回消息 ID。
func T(msgID string, args ...interface{}) string {
	msg, ok := lookup(GetLanguage(), msgID)
	if !ok {
		return msgID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

func lookup(lang Language, msgID string) (string, bool) {
	if lang == LangChinese {
		if msg, ok := messagesZH[msgID]; ok {
			return msg, true
		}
	}
	msg, ok := messagesEN[msgID]
	return msg, ok
}
