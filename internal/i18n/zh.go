package i18n

var messagesZH = map[string]string{
	// ========== 词法分析器 ==========
	ErrUnexpectedChar:      "意外字符 '%c'",
	ErrUnterminatedComment: "未闭合的块注释",
	ErrUnterminatedString:  "未闭合的字符串",
	ErrUnterminatedChar:    "未闭合的字符字面量",
	ErrEmptyChar:           "空的字符字面量",
	ErrInvalidEscape:       "无效的转义序列 '\\%c'",
	ErrInvalidHexNumber:    "无效的十六进制数: %s",
	ErrInvalidBinaryNumber: "无效的二进制数: %s",
	ErrInvalidExponent:     "无效的数字: 需要指数部分",

	// ========== 语法分析器 ==========
	ErrExpectedType:          "需要类型",
	ErrExpectedToken:         "需要 %s",
	ErrUnexpectedToken:       "意外的符号: %s",
	ErrExpectedExpression:    "需要表达式",
	ErrExpectedStatement:     "需要语句",
	ErrExpectedIdentifier:    "需要标识符",
	ErrExpectedTypeDecl:      "需要类或接口声明",
	ErrExpectedMember:        "需要类成员",
	ErrExpectedCaseDefault:   "需要 'case' 或 'default'",
	ErrInvalidAssignTarget:   "无效的赋值目标",
	ErrEnumNotSupported:      "不支持 enum 声明",
	ErrAnnotationDeclaration: "不支持注解类型声明",
	ErrExpressionTooDeep:     "表达式嵌套过深",
	ErrTooManyErrors:         "错误过多，停止解析",

	// ========== 命令行 ==========
	CliUsage: `javamin - Java 源码压缩与格式化工具

用法:
  javamin <命令> [选项] [文件]

命令:
  min      输出文件的最少 token 形式
  fmt      格式化输出文件
  check    检查压缩结果是否幂等
  batch    对目录下所有源文件执行压缩或检查
  tokens   输出文件的 token 序列
  ast      输出文件的语法树
  version  显示版本信息
  help     显示帮助

命令选项:
  -o file       输出到文件 (min, fmt)
  -w            直接改写源文件 (min, fmt, batch)
  -mode m       minimal 或 pretty (batch)
  -json         以 JSON 输出批处理报告
  -workers n    并发数 (batch)
  -v            输出详细日志 (batch)

全局选项:
  -lang en|zh   消息语言
  -config path  指定 javamin.toml
  -no-color     关闭诊断着色

文件参数为 "-" 时从标准输入读取。
`,
	CliUnknownCommand: "未知命令: %s",
	CliMissingFile:    "缺少输入文件",
	CliReadFailed:     "无法读取 %s: %v",
	CliWriteFailed:    "无法写入 %s: %v",
	CliConfigFailed:   "无法加载配置 %s: %v",
	CliCheckOK:        "%s: 通过",
	CliCheckFailed:    "%s: 压缩结果不稳定",
	CliBatchSummary:   "共 %d 个文件，成功 %d，失败 %d，跳过 %d",
	CliVersion:        "javamin 版本 %s",
	CliServerUsage: `javamin-ls - Java 格式化语言服务器

用法:
  javamin-ls [选项]

选项:
  -log file     调试日志写入文件（需要 JAVAMIN_LSP_DEBUG=1）
  -config path  指定 javamin.toml
  -version      显示版本信息

服务器通过标准输入输出使用 LSP 协议通信。
`,

	// ========== 诊断 ==========
	DiagErrorCount:       "发现 %d 个错误",
	DiagHintUnsupported:  "请改写 %s，只使用压缩器支持的语法",
	DiagHintLambda:       "用匿名类代替 lambda 或方法引用",
	DiagHintLabel:        "调整循环结构，避免使用标签",
	DiagHintMalformed:    "语法树不是由内置解析器生成的，请检查调用方",
	DiagNoteAllOrNothing: "该文件没有产生任何输出",
}
