// Package lsp serves parse notes, their quick fixes and folding ranges over
// the Language Server Protocol.
package lsp

import (
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"sillyfmt/internal/config"
	"sillyfmt/internal/driver"
)

const lsName = "sillyfmt"

var log = commonlog.GetLogger("sillyfmt.lsp")

// Server keeps the open documents and reparses them on every change.
type Server struct {
	handler protocol.Handler
	server  *server.Server
	version string

	mu       sync.Mutex
	opts     driver.Options
	openDocs map[protocol.DocumentUri]document
}

type document struct {
	text    string
	version protocol.Integer
	result  *driver.ParseResult
}

// NewServer builds a server that parses with opts until a workspace
// sillyfmt.toml says otherwise.
func NewServer(version string, opts driver.Options) *Server {
	s := &Server{
		version:  version,
		opts:     opts,
		openDocs: make(map[protocol.DocumentUri]document),
	}
	s.handler = protocol.Handler{
		Initialize:               s.initialize,
		Initialized:              s.initialized,
		Shutdown:                 s.shutdown,
		SetTrace:                 s.setTrace,
		TextDocumentDidOpen:      s.didOpen,
		TextDocumentDidChange:    s.didChange,
		TextDocumentDidClose:     s.didClose,
		TextDocumentFoldingRange: s.foldingRange,
		TextDocumentCodeAction:   s.codeAction,
	}
	s.server = server.NewServer(&s.handler, lsName, false)
	return s
}

// RunStdio serves until the client disconnects.
func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(_ *glsp.Context, params *protocol.InitializeParams) (any, error) {
	root := ""
	if params.RootURI != nil && *params.RootURI != "" {
		root = uriToPath(*params.RootURI)
	} else if params.RootPath != nil {
		root = *params.RootPath
	}
	if root != "" {
		s.loadWorkspaceConfig(root)
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindIncremental),
	}
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) loadWorkspaceConfig(root string) {
	cfg, err := config.Discover(root)
	if err != nil {
		log.Warningf("ignoring workspace config: %s", err)
		return
	}
	opts, err := driver.OptionsFromConfig(cfg)
	if err != nil {
		log.Warningf("ignoring workspace config: %s", err)
		return
	}
	if cfg.Path != "" {
		log.Infof("using %s", cfg.Path)
	}
	s.mu.Lock()
	opts.MaxDiagnostics = s.opts.MaxDiagnostics
	s.opts = opts
	s.mu.Unlock()
}

func (s *Server) initialized(_ *glsp.Context, _ *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(_ *glsp.Context) error {
	protocol.SetTraceValue(protocol.TraceValueOff)
	return nil
}

func (s *Server) setTrace(_ *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) didOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	doc := params.TextDocument
	s.update(ctx, doc.URI, doc.Version, doc.Text)
	return nil
}

func (s *Server) didChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	text := s.openDocs[uri].text
	s.mu.Unlock()
	s.update(ctx, uri, params.TextDocument.Version, applyChanges(text, params.ContentChanges))
	return nil
}

func (s *Server) didClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	uri := params.TextDocument.URI
	s.mu.Lock()
	delete(s.openDocs, uri)
	s.mu.Unlock()
	// очищаем диагностики закрытого документа
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

func (s *Server) foldingRange(_ *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	s.mu.Lock()
	doc, ok := s.openDocs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok || doc.result == nil {
		return []protocol.FoldingRange{}, nil
	}
	return buildFoldingRanges(doc.result), nil
}

func (s *Server) codeAction(_ *glsp.Context, params *protocol.CodeActionParams) (any, error) {
	s.mu.Lock()
	doc, ok := s.openDocs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok || doc.result == nil {
		return []protocol.CodeAction{}, nil
	}
	return buildCodeActions(params.TextDocument.URI, doc.result, params.Range), nil
}

// update reparses text and publishes its notes.
func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, version protocol.Integer, text string) {
	s.mu.Lock()
	opts := s.opts
	s.mu.Unlock()
	// спаны должны совпадать с буфером редактора
	opts.Balance = false

	name := uriToPath(uri)
	if name == "" {
		name = uri
	}
	res := driver.ParseText(name, text, opts)
	log.Debugf("%s v%d: %d notes", uri, version, res.Bag.Len())

	s.mu.Lock()
	s.openDocs[uri] = document{text: text, version: version, result: res}
	s.mu.Unlock()

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Version:     uinteger(version),
		Diagnostics: buildDiagnostics(uri, res),
	})
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}

func uinteger(v protocol.Integer) *protocol.UInteger {
	if v < 0 {
		return nil
	}
	u := protocol.UInteger(v)
	return &u
}
