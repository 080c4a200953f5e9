package ast

// ============================================================================
// 修饰符标志位
// ============================================================================

// Flag 声明修饰符位集合
type Flag uint32

const (
	FlagPublic Flag = 1 << iota
	FlagProtected
	FlagPrivate
	FlagAbstract
	FlagDefault
	FlagStatic
	FlagFinal
	FlagTransient
	FlagVolatile
	FlagSynchronized
	FlagNative
	FlagStrictfp

	// 以下标志不对应修饰符关键字
	FlagInterface // 类声明是接口
	FlagVarargs   // 参数是可变参数 T...
)

// keywordFlags 按规范顺序排列的关键字修饰符
var keywordFlags = []struct {
	flag Flag
	word string
}{
	{FlagPublic, "public"},
	{FlagProtected, "protected"},
	{FlagPrivate, "private"},
	{FlagAbstract, "abstract"},
	{FlagDefault, "default"},
	{FlagStatic, "static"},
	{FlagFinal, "final"},
	{FlagTransient, "transient"},
	{FlagVolatile, "volatile"},
	{FlagSynchronized, "synchronized"},
	{FlagNative, "native"},
	{FlagStrictfp, "strictfp"},
}

// FlagForKeyword 返回修饰符关键字对应的标志，不是修饰符时返回 0
func FlagForKeyword(word string) Flag {
	for _, kf := range keywordFlags {
		if kf.word == word {
			return kf.flag
		}
	}
	return 0
}

// Has 判断是否包含全部给定标志
func (f Flag) Has(flags Flag) bool {
	return f&flags == flags
}

// Keywords 返回修饰符关键字，顺序固定为
// public protected private abstract default static final transient volatile synchronized native strictfp
func (m *Modifiers) Keywords() []string {
	if m == nil {
		return nil
	}
	var words []string
	for _, kf := range keywordFlags {
		if m.Flags&kf.flag != 0 {
			words = append(words, kf.word)
		}
	}
	return words
}

// IsInterface 判断修饰符是否标记了接口
func (m *Modifiers) IsInterface() bool {
	return m != nil && m.Flags.Has(FlagInterface)
}

// IsVarargs 判断参数修饰符是否标记了可变参数
func (m *Modifiers) IsVarargs() bool {
	return m != nil && m.Flags.Has(FlagVarargs)
}

// IsEmpty 没有任何关键字和注解
func (m *Modifiers) IsEmpty() bool {
	return m == nil || (len(m.Keywords()) == 0 && len(m.Annotations) == 0)
}
