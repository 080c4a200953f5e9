package i18n

// ============================================================================
// 消息 ID
// ============================================================================

// 词法分析器
const (
	ErrUnexpectedChar      = "lexer.unexpected_char"
	ErrUnterminatedComment = "lexer.unterminated_comment"
	ErrUnterminatedString  = "lexer.unterminated_string"
	ErrUnterminatedChar    = "lexer.unterminated_char"
	ErrEmptyChar           = "lexer.empty_char"
	ErrInvalidEscape       = "lexer.invalid_escape"
	ErrInvalidHexNumber    = "lexer.invalid_hex"
	ErrInvalidBinaryNumber = "lexer.invalid_binary"
	ErrInvalidExponent     = "lexer.invalid_exponent"
)

// 语法分析器
const (
	ErrExpectedType          = "parser.expected_type"
	ErrExpectedToken         = "parser.expected_token"
	ErrUnexpectedToken       = "parser.unexpected_token"
	ErrExpectedExpression    = "parser.expected_expression"
	ErrExpectedStatement     = "parser.expected_statement"
	ErrExpectedIdentifier    = "parser.expected_identifier"
	ErrExpectedTypeDecl      = "parser.expected_type_decl"
	ErrExpectedMember        = "parser.expected_member"
	ErrExpectedCaseDefault   = "parser.expected_case_default"
	ErrInvalidAssignTarget   = "parser.invalid_assign_target"
	ErrEnumNotSupported      = "parser.enum_not_supported"
	ErrAnnotationDeclaration = "parser.annotation_declaration"
	ErrExpressionTooDeep     = "parser.expression_too_deep"
	ErrTooManyErrors         = "parser.too_many_errors"
)

// 命令行
const (
	CliUsage          = "cli.usage"
	CliUnknownCommand = "cli.unknown_command"
	CliMissingFile    = "cli.missing_file"
	CliReadFailed     = "cli.read_failed"
	CliWriteFailed    = "cli.write_failed"
	CliConfigFailed   = "cli.config_failed"
	CliCheckOK        = "cli.check_ok"
	CliCheckFailed    = "cli.check_failed"
	CliBatchSummary   = "cli.batch_summary"
	CliVersion        = "cli.version"
	CliServerUsage    = "cli.server_usage"
)

// 诊断
const (
	DiagErrorCount       = "diag.error_count"
	DiagHintUnsupported  = "diag.hint_unsupported"
	DiagHintLambda       = "diag.hint_lambda"
	DiagHintLabel        = "diag.hint_label"
	DiagHintMalformed    = "diag.hint_malformed"
	DiagNoteAllOrNothing = "diag.note_all_or_nothing"
)
