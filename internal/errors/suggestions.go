package errors

import (
	"strings"

	"github.com/tangzhangming/javamin/internal/i18n"
)

// ============================================================================
// 修复建议
// ============================================================================

// hintsForConstruct 根据不支持的结构给出修复建议
func hintsForConstruct(construct string) []string {
	switch {
	case construct == "lambda expression" || construct == "method reference":
		return []string{i18n.T(i18n.DiagHintLambda)}
	case strings.HasPrefix(construct, "labeled "):
		return []string{i18n.T(i18n.DiagHintLabel)}
	}
	return []string{i18n.T(i18n.DiagHintUnsupported, construct)}
}

// hintsForCode 根据语法错误码给出修复建议
func hintsForCode(code string) []string {
	switch code {
	case U0002:
		return []string{i18n.T(i18n.DiagHintMalformed)}
	}
	return nil
}
