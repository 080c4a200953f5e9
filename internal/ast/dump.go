package ast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/tangzhangming/javamin/internal/token"
)

// ============================================================================
// 结构化输出
// ============================================================================

var (
	positionType = reflect.TypeOf(token.Position{})
	kindType     = reflect.TypeOf(Kind(0))
	flagType     = reflect.TypeOf(Flag(0))
)

// Dump 把节点渲染为不含位置信息的 S 表达式
//
// 两棵树结构相同当且仅当 Dump 结果相同，用于比较 parse(P) 与 parse(minify(P))。
// nil 切片与空切片输出相同。
func Dump(n Node) string {
	var sb strings.Builder
	dumpValue(&sb, reflect.ValueOf(n))
	return sb.String()
}

func dumpValue(sb *strings.Builder, v reflect.Value) {
	if !v.IsValid() {
		sb.WriteString("nil")
		return
	}

	switch v.Type() {
	case kindType:
		sb.WriteString(Kind(v.Int()).String())
		return
	case flagType:
		dumpFlags(sb, Flag(v.Uint()))
		return
	}

	switch v.Kind() {
	case reflect.Interface, reflect.Ptr:
		if v.IsNil() {
			sb.WriteString("nil")
			return
		}
		dumpValue(sb, v.Elem())

	case reflect.Struct:
		t := v.Type()
		sb.WriteString("(")
		sb.WriteString(t.Name())
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if f.Type == positionType {
				continue
			}
			sb.WriteString(" ")
			sb.WriteString(f.Name)
			sb.WriteString("=")
			dumpValue(sb, v.Field(i))
		}
		sb.WriteString(")")

	case reflect.Slice:
		sb.WriteString("[")
		for i := 0; i < v.Len(); i++ {
			if i > 0 {
				sb.WriteString(" ")
			}
			dumpValue(sb, v.Index(i))
		}
		sb.WriteString("]")

	case reflect.String:
		sb.WriteString(strconv.Quote(v.String()))

	case reflect.Bool:
		sb.WriteString(strconv.FormatBool(v.Bool()))

	default:
		fmt.Fprint(sb, v.Interface())
	}
}

func dumpFlags(sb *strings.Builder, f Flag) {
	var names []string
	for _, kf := range keywordFlags {
		if f&kf.flag != 0 {
			names = append(names, kf.word)
		}
	}
	if f&FlagInterface != 0 {
		names = append(names, "interface")
	}
	if f&FlagVarargs != 0 {
		names = append(names, "varargs")
	}
	sb.WriteString("{" + strings.Join(names, ",") + "}")
}
