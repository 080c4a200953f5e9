//go:build windows

package main

import "syscall"

var (
	kernel32                     = syscall.NewLazyDLL("kernel32.dll")
	procGetUserDefaultUILanguage = kernel32.NewProc("GetUserDefaultUILanguage")
)

// detectWindowsChinese 使用 Windows API 检测是否为中文系统
func detectWindowsChinese() bool {
	ret, _, _ := procGetUserDefaultUILanguage.Call()
	// 主语言 ID 在低 10 位，LANG_CHINESE = 0x04
	return uint16(ret)&0x3FF == 0x04
}
