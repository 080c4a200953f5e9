package main

import (
	"os"
	"runtime"
	"strings"

	"github.com/tangzhangming/javamin/internal/i18n"
)

// initLanguage 初始化消息语言
// 优先级: 命令行参数 > 环境变量 JAVAMIN_LANG > 操作系统语言 > 默认英文
func initLanguage(langOverride string) error {
	// 1. 命令行参数优先
	if langOverride != "" {
		lang, err := i18n.ParseLanguage(langOverride)
		i18n.SetLanguage(lang)
		return err
	}

	// 2. 检查环境变量
	if envLang := os.Getenv("JAVAMIN_LANG"); envLang != "" {
		lang, _ := i18n.ParseLanguage(envLang)
		i18n.SetLanguage(lang)
		return nil
	}

	// 3. 检测操作系统语言
	if detectChineseOS() {
		i18n.SetLanguage(i18n.LangChinese)
		return nil
	}

	i18n.SetLanguage(i18n.LangEnglish)
	return nil
}

// detectChineseOS 检测操作系统是否为中文环境
func detectChineseOS() bool {
	if runtime.GOOS == "windows" && detectWindowsChinese() {
		return true
	}

	// Unix/Linux/Mac: 检查环境变量
	for _, v := range []string{"LC_ALL", "LC_MESSAGES", "LANGUAGE", "LANG"} {
		if val := os.Getenv(v); val != "" {
			lower := strings.ToLower(val)
			return strings.HasPrefix(lower, "zh") || strings.Contains(lower, "chinese")
		}
	}

	return false
}
