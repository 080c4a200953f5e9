// Package lsp 通过 JSON-RPC 2.0 提供 Java 格式化语言服务
//
// 支持 textDocument/formatting、textDocument/rangeFormatting、
// 自定义的 javamin/minify 请求，以及打开和修改文档时发布诊断。
package lsp

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/segmentio/encoding/json"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/tangzhangming/javamin/internal/formatter"
)

// 服务器信息
const (
	ServerName    = "javamin-ls"
	ServerVersion = "0.1.0"
)

// MethodMinify 自定义请求：返回文档的最小化文本
const MethodMinify = "javamin/minify"

// Server LSP 服务器
type Server struct {
	// 文档管理
	documents *DocumentManager

	// 格式化默认选项（来自 javamin.toml）
	options *formatter.Options

	// 日志
	logger *zap.Logger

	conn jsonrpc2.Conn
	mu   sync.Mutex

	// 服务器状态：initialize 之前只接受 initialize 和 exit，shutdown 之后只接受 exit
	initialized bool
	shutdown    bool
	exited      chan struct{}
	exitOnce    sync.Once
}

// NewServer 创建 LSP 服务器，logger 和 options 可以为 nil
func NewServer(logger *zap.Logger, options *formatter.Options) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	if options == nil {
		options = formatter.DefaultOptions()
	}
	return &Server{
		documents: NewDocumentManager(),
		options:   options,
		logger:    logger,
		exited:    make(chan struct{}),
	}
}

// Documents 返回文档管理器
func (s *Server) Documents() *DocumentManager {
	return s.documents
}

// Serve 在 rwc 上运行服务器，直到收到 exit、连接断开或 ctx 取消
func (s *Server) Serve(ctx context.Context, rwc io.ReadWriteCloser) error {
	conn := jsonrpc2.NewConn(jsonrpc2.NewStream(rwc))
	s.mu.Lock()
	s.conn = conn
	s.mu.Unlock()

	s.logger.Info("server started")
	conn.Go(ctx, s.handle)

	select {
	case <-ctx.Done():
		conn.Close()
		return ctx.Err()
	case <-s.exited:
		s.logger.Info("exit notification received")
		return conn.Close()
	case <-conn.Done():
		s.logger.Info("client disconnected")
		return nil
	}
}

// handle 分发请求和通知
func (s *Server) handle(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	s.logger.Debug("received", zap.String("method", req.Method()))

	s.mu.Lock()
	initialized, shutdown := s.initialized, s.shutdown
	s.mu.Unlock()

	switch method := req.Method(); {
	case method == protocol.MethodExit:
	case shutdown:
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidRequest, "server is shutting down"))
	case !initialized && method != protocol.MethodInitialize:
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.ServerNotInitialized, "server not initialized"))
	}

	switch req.Method() {
	case protocol.MethodInitialize:
		return s.handleInitialize(ctx, reply, req)
	case protocol.MethodInitialized:
		return reply(ctx, nil, nil)
	case protocol.MethodShutdown:
		s.mu.Lock()
		s.shutdown = true
		s.mu.Unlock()
		return reply(ctx, nil, nil)
	case protocol.MethodExit:
		s.exitOnce.Do(func() { close(s.exited) })
		return reply(ctx, nil, nil)
	case protocol.MethodTextDocumentDidOpen:
		return s.handleDidOpen(ctx, reply, req)
	case protocol.MethodTextDocumentDidChange:
		return s.handleDidChange(ctx, reply, req)
	case protocol.MethodTextDocumentDidClose:
		return s.handleDidClose(ctx, reply, req)
	case protocol.MethodTextDocumentFormatting:
		return s.handleFormatting(ctx, reply, req)
	case protocol.MethodTextDocumentRangeFormatting:
		return s.handleRangeFormatting(ctx, reply, req)
	case MethodMinify:
		return s.handleMinify(ctx, reply, req)
	case "$/cancelRequest", "$/setTrace":
		return reply(ctx, nil, nil)
	}

	s.logger.Debug("unknown method", zap.String("method", req.Method()))
	return jsonrpc2.MethodNotFoundHandler(ctx, reply, req)
}

// decode 解析参数，失败时回复 InvalidParams
func (s *Server) decode(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request, v interface{}) bool {
	if err := json.Unmarshal(req.Params(), v); err != nil {
		s.logger.Error("bad params", zap.String("method", req.Method()), zap.Error(err))
		_ = reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, err.Error()))
		return false
	}
	return true
}

// handleInitialize 处理初始化请求
func (s *Server) handleInitialize(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.InitializeParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}
	s.logger.Info("initialize", zap.String("root", string(params.RootURI)))

	s.mu.Lock()
	s.initialized = true
	s.mu.Unlock()

	result := protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindIncremental,
			},
			DocumentFormattingProvider:      true,
			DocumentRangeFormattingProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    ServerName,
			Version: ServerVersion,
		},
	}
	return reply(ctx, result, nil)
}

// handleDidOpen 处理文档打开
func (s *Server) handleDidOpen(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidOpenTextDocumentParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}

	docURI := string(params.TextDocument.URI)
	s.logger.Debug("document opened", zap.String("uri", docURI))
	s.documents.Open(docURI, params.TextDocument.Text, int(params.TextDocument.Version))

	if err := reply(ctx, nil, nil); err != nil {
		return err
	}
	return s.publishDiagnostics(ctx, docURI)
}

// handleDidChange 处理文档变更
func (s *Server) handleDidChange(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params didChangeParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}

	docURI := string(params.TextDocument.URI)
	for _, change := range params.ContentChanges {
		s.documents.ApplyChange(docURI, change, int(params.TextDocument.Version))
	}

	if err := reply(ctx, nil, nil); err != nil {
		return err
	}
	return s.publishDiagnostics(ctx, docURI)
}

// handleDidClose 处理文档关闭
func (s *Server) handleDidClose(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DidCloseTextDocumentParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}

	s.logger.Debug("document closed", zap.String("uri", string(params.TextDocument.URI)))
	s.documents.Close(string(params.TextDocument.URI))

	if err := reply(ctx, nil, nil); err != nil {
		return err
	}
	// 清除诊断
	return s.notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
}

// handleFormatting 处理文档格式化请求
func (s *Server) handleFormatting(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentFormattingParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}

	doc := s.documents.Get(string(params.TextDocument.URI))
	if doc == nil {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}

	edits, err := s.formatDocument(doc, params.Options)
	if err != nil {
		// 格式化失败时返回空编辑，错误已经通过诊断发布
		s.logger.Debug("format failed", zap.String("uri", doc.URI), zap.Error(err))
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	return reply(ctx, edits, nil)
}

// handleRangeFormatting 处理范围格式化请求
func (s *Server) handleRangeFormatting(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params protocol.DocumentRangeFormattingParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}

	doc := s.documents.Get(string(params.TextDocument.URI))
	if doc == nil {
		return reply(ctx, []protocol.TextEdit{}, nil)
	}

	edits, err := s.formatRange(doc, params.Range, params.Options)
	if err != nil {
		s.logger.Debug("range format failed", zap.String("uri", doc.URI), zap.Error(err))
		return reply(ctx, []protocol.TextEdit{}, nil)
	}
	return reply(ctx, edits, nil)
}

// handleMinify 处理 javamin/minify 请求
func (s *Server) handleMinify(ctx context.Context, reply jsonrpc2.Replier, req jsonrpc2.Request) error {
	var params MinifyParams
	if !s.decode(ctx, reply, req, &params) {
		return nil
	}

	docURI := string(params.TextDocument.URI)
	doc := s.documents.Get(docURI)
	if doc == nil {
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InvalidParams, fmt.Sprintf("document not open: %s", docURI)))
	}

	result, err := s.minifyDocument(doc)
	if err != nil {
		return reply(ctx, nil, jsonrpc2.NewError(jsonrpc2.InternalError, err.Error()))
	}
	return reply(ctx, result, nil)
}

// publishDiagnostics 发布诊断信息
func (s *Server) publishDiagnostics(ctx context.Context, docURI string) error {
	doc := s.documents.Get(docURI)
	if doc == nil {
		return nil
	}

	return s.notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(docURI),
		Version:     uint32(doc.Version),
		Diagnostics: s.getDiagnostics(doc),
	})
}

// notify 发送通知
func (s *Server) notify(ctx context.Context, method string, params interface{}) error {
	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn == nil {
		return nil
	}
	if err := conn.Notify(ctx, method, params); err != nil {
		s.logger.Error("notify failed", zap.String("method", method), zap.Error(err))
		return err
	}
	return nil
}
