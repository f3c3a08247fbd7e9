package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// stdioServer speaks MCP over newline-delimited JSON-RPC on in/out. Nothing
// else may write to out.
//
// Input lines pass through route before reaching the mcp-go stdio server so
// that calls to unknown tools get the same METHOD_NOT_FOUND answer as over
// HTTP.
type stdioServer struct {
	mcp    *tools.MCPServer
	server *mcpserver.StdioServer
	in     io.Reader
	out    *syncWriter
	logger *logger.Logger
}

func newStdioServer(mcp *tools.MCPServer, in io.Reader, out io.Writer, logger *logger.Logger) *stdioServer {
	server := mcpserver.NewStdioServer(mcp.MCPServer)
	server.SetErrorLogger(log.New(logger, "", 0))

	return &stdioServer{
		mcp:    mcp,
		server: server,
		in:     in,
		out:    &syncWriter{w: out},
		logger: logger,
	}
}

// run returns nil when in reaches EOF or ctx is cancelled.
func (s *stdioServer) run(ctx context.Context) error {
	s.logger.Info().Msg("Granola MCP Server running on stdio")

	pr, pw := io.Pipe()
	defer pr.Close()
	go s.route(pw)

	err := s.server.Listen(ctx, pr, s.out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// route copies input lines to pw, answering rejected tool calls directly on
// out. pw is closed with the read error once in is exhausted.
func (s *stdioServer) route(pw *io.PipeWriter) {
	reader := bufio.NewReader(s.in)
	for {
		line, err := reader.ReadBytes('\n')
		if len(line) > 0 {
			if resp := s.mcp.RejectUnknownTool(bytes.TrimSpace(line)); resp != nil {
				if werr := s.writeMessage(resp); werr != nil {
					s.logger.Err(werr).Msg("error writing response")
				}
			} else if _, werr := pw.Write(line); werr != nil {
				return
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil
			}
			pw.CloseWithError(err)
			return
		}
	}
}

func (s *stdioServer) writeMessage(msg any) error {
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(s.out, "%s\n", b)
	return err
}

// shutdown is a no-op: cancelling the run context stops the read loop.
func (s *stdioServer) shutdown(context.Context) error {
	return nil
}

// syncWriter serializes writes of the routed answers and of the mcp-go
// server, one JSON message per Write.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w.Write(p)
}
