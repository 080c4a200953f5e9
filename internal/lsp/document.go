package lsp

import (
	"strings"
	"sync"
	"unicode/utf16"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"

	"github.com/tangzhangming/javamin/internal/ast"
	"github.com/tangzhangming/javamin/internal/parser"
	"github.com/tangzhangming/javamin/internal/token"
)

// Document 表示一个打开的文档
type Document struct {
	URI     string
	Content string
	Version int
	Lines   []string // 按行分割的内容

	// 缓存的解析结果
	Unit      *ast.CompilationUnit
	ParseErrs []parser.Error

	// 是否需要重新解析
	dirty bool
}

// DocumentManager 文档管理器
type DocumentManager struct {
	documents map[string]*Document
	mu        sync.RWMutex
}

// NewDocumentManager 创建文档管理器
func NewDocumentManager() *DocumentManager {
	return &DocumentManager{
		documents: make(map[string]*Document),
	}
}

// Open 打开文档
func (dm *DocumentManager) Open(uri, content string, version int) *Document {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc := &Document{
		URI:     uri,
		Content: content,
		Version: version,
		Lines:   splitLines(content),
		dirty:   true,
	}

	// 立即解析
	doc.parse()

	dm.documents[uri] = doc
	return doc
}

// Close 关闭文档
func (dm *DocumentManager) Close(uri string) {
	dm.mu.Lock()
	defer dm.mu.Unlock()
	delete(dm.documents, uri)
}

// Get 获取文档
func (dm *DocumentManager) Get(uri string) *Document {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return dm.documents[uri]
}

// Len 打开的文档数
func (dm *DocumentManager) Len() int {
	dm.mu.RLock()
	defer dm.mu.RUnlock()
	return len(dm.documents)
}

// ContentChange 一次内容变更，Range 为 nil 表示省略了 range
type ContentChange struct {
	Range       *protocol.Range `json:"range,omitempty"`
	RangeLength uint32          `json:"rangeLength,omitempty"`
	Text        string          `json:"text"`
}

// didChangeParams textDocument/didChange 的参数
type didChangeParams struct {
	TextDocument   protocol.VersionedTextDocumentIdentifier `json:"textDocument"`
	ContentChanges []ContentChange                          `json:"contentChanges"`
}

// ApplyChange 应用一次内容变更，Range 为 nil 时整篇替换
func (dm *DocumentManager) ApplyChange(uri string, change ContentChange, version int) {
	dm.mu.Lock()
	defer dm.mu.Unlock()

	doc, ok := dm.documents[uri]
	if !ok {
		return
	}

	if change.Range == nil {
		doc.Content = change.Text
	} else {
		doc.Content = applyTextEdit(doc.Content, *change.Range, change.Text)
	}
	doc.Lines = splitLines(doc.Content)
	doc.Version = version
	doc.dirty = true
	doc.parse()
}

// maxDocumentSize 文档大小限制（2MB）
const maxDocumentSize = 2 * 1024 * 1024

// parse 解析文档
func (doc *Document) parse() {
	if !doc.dirty {
		return
	}

	if len(doc.Content) > maxDocumentSize {
		doc.Unit = nil
		doc.ParseErrs = []parser.Error{{
			Pos:     token.Position{Line: 1, Column: 1},
			Message: "document too large to parse",
		}}
		doc.dirty = false
		return
	}

	p := parser.New(doc.Content, doc.Filename())
	doc.Unit = p.Parse()
	doc.ParseErrs = p.Errors()
	doc.dirty = false
}

// Filename 文档对应的文件路径，非 file 协议的 URI 原样返回
func (doc *Document) Filename() string {
	return uriToPath(doc.URI)
}

// GetLine 获取指定行内容
func (doc *Document) GetLine(line int) string {
	if line < 0 || line >= len(doc.Lines) {
		return ""
	}
	return doc.Lines[line]
}

// EndPosition 文档末尾的位置
func (doc *Document) EndPosition() protocol.Position {
	last := len(doc.Lines) - 1
	if last < 0 {
		return protocol.Position{}
	}
	return protocol.Position{Line: uint32(last), Character: utf16Len(doc.Lines[last])}
}

// splitLines 将内容按行分割
func splitLines(content string) []string {
	// 处理不同的换行符
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	return strings.Split(content, "\n")
}

// applyTextEdit 应用文本编辑
func applyTextEdit(content string, rang protocol.Range, newText string) string {
	lines := splitLines(content)

	startLine := clamp(int(rang.Start.Line), 0, len(lines)-1)
	endLine := clamp(int(rang.End.Line), 0, len(lines)-1)
	startLineText := lines[startLine]
	endLineText := lines[endLine]
	startChar := byteOffset(startLineText, rang.Start.Character)
	endChar := byteOffset(endLineText, rang.End.Character)
	if startLine == endLine && endChar < startChar {
		endChar = startChar
	}

	var result strings.Builder

	// 开始位置之前的内容
	for i := 0; i < startLine; i++ {
		result.WriteString(lines[i])
		result.WriteString("\n")
	}
	result.WriteString(startLineText[:startChar])

	result.WriteString(newText)

	// 结束位置之后的内容
	result.WriteString(endLineText[endChar:])
	for i := endLine + 1; i < len(lines); i++ {
		result.WriteString("\n")
		result.WriteString(lines[i])
	}

	return result.String()
}

// ============================================================================
// UTF-16 列号
// ============================================================================

// byteOffset 把 LSP 的 UTF-16 列号换算成行内字节偏移，超出行尾时取行尾。
// 落在代理对中间的列号向后取到下一个字符。
func byteOffset(line string, character uint32) int {
	units := 0
	for i, r := range line {
		if units >= int(character) {
			return i
		}
		units += utf16.RuneLen(r)
	}
	return len(line)
}

// utf16Len 行的 UTF-16 长度
func utf16Len(line string) uint32 {
	n := 0
	for _, r := range line {
		n += utf16.RuneLen(r)
	}
	return uint32(n)
}

func clamp(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// uriToPath 将 URI 转换为文件路径
func uriToPath(docURI string) string {
	if !strings.HasPrefix(docURI, uri.FileScheme+"://") {
		return docURI
	}
	u, err := uri.Parse(docURI)
	if err != nil {
		return docURI
	}
	return u.Filename()
}
