//go:build !windows

package main

func detectWindowsChinese() bool {
	return false
}
