package i18n

var messagesEN = map[string]string{
	// ========== Lexer ==========
	ErrUnexpectedChar:      "unexpected character '%c'",
	ErrUnterminatedComment: "unterminated block comment",
	ErrUnterminatedString:  "unterminated string",
	ErrUnterminatedChar:    "unterminated character literal",
	ErrEmptyChar:           "empty character literal",
	ErrInvalidEscape:       "invalid escape sequence '\\%c'",
	ErrInvalidHexNumber:    "invalid hex number: %s",
	ErrInvalidBinaryNumber: "invalid binary number: %s",
	ErrInvalidExponent:     "invalid number: expected exponent",

	// ========== Parser ==========
	ErrExpectedType:          "expected type",
	ErrExpectedToken:         "expected %s",
	ErrUnexpectedToken:       "unexpected token: %s",
	ErrExpectedExpression:    "expected expression",
	ErrExpectedStatement:     "expected statement",
	ErrExpectedIdentifier:    "expected identifier",
	ErrExpectedTypeDecl:      "expected class or interface declaration",
	ErrExpectedMember:        "expected class member",
	ErrExpectedCaseDefault:   "expected 'case' or 'default'",
	ErrInvalidAssignTarget:   "invalid assignment target",
	ErrEnumNotSupported:      "enum declarations are not supported",
	ErrAnnotationDeclaration: "annotation type declarations are not supported",
	ErrExpressionTooDeep:     "expression nested too deeply",
	ErrTooManyErrors:         "too many errors, giving up",

	// ========== CLI ==========
	CliUsage: `javamin - Java source minifier and pretty printer

Usage:
  javamin <command> [options] [file]

Commands:
  min      print the minimal-token form of a file
  fmt      pretty-print a file
  check    verify that minification is idempotent
  batch    minify or check every source file under a directory
  tokens   dump the token stream of a file
  ast      dump the syntax tree of a file
  version  print version information
  help     show this help

Command options:
  -o file       write output to file (min, fmt)
  -w            rewrite files in place (min, fmt, batch)
  -mode m       minimal or pretty (batch)
  -json         print the batch report as JSON
  -workers n    number of concurrent workers (batch)
  -v            verbose logging (batch)

Global options:
  -lang en|zh   message language
  -config path  javamin.toml to use
  -no-color     disable colored diagnostics

A file argument of "-" reads from standard input.
`,
	CliUnknownCommand: "unknown command: %s",
	CliMissingFile:    "missing input file",
	CliReadFailed:     "cannot read %s: %v",
	CliWriteFailed:    "cannot write %s: %v",
	CliConfigFailed:   "cannot load config %s: %v",
	CliCheckOK:        "%s: ok",
	CliCheckFailed:    "%s: minified output is not stable",
	CliBatchSummary:   "%d files, %d ok, %d failed, %d skipped",
	CliVersion:        "javamin version %s",
	CliServerUsage: `javamin-ls - language server for Java formatting

Usage:
  javamin-ls [options]

Options:
  -log file     write debug logs to file (with JAVAMIN_LSP_DEBUG=1)
  -config path  javamin.toml to use
  -version      print version information

The server talks LSP over standard input and output.
`,

	// ========== Diagnostics ==========
	DiagErrorCount:       "found %d error(s)",
	DiagHintUnsupported:  "rewrite the %s using constructs the minifier supports",
	DiagHintLambda:       "replace the lambda or method reference with an anonymous class",
	DiagHintLabel:        "restructure the loop so it does not need a label",
	DiagHintMalformed:    "the syntax tree did not come from the bundled parser; check the producer",
	DiagNoteAllOrNothing: "no output was written for this file",
}
