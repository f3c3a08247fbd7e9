package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerName is announced to MCP clients and reported by the HTTP version
// endpoint.
const ServerName = "granola-mcp-server"

const serverInstructions = "Tools over your Granola meeting notes. get_personal_notes lists recent notes of meetings you took part in; check_call_participation explains whether you took part in the meeting behind one note."

// Definitions describes both tools with their input schemas.
func Definitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool(ToolGetPersonalNotes,
			mcp.WithDescription("Retrieve personal Granola notes from the past days where you were a participant in the call"),
			mcp.WithNumber(argDays,
				mcp.Description("Number of days to look back (default: 7)"),
				mcp.DefaultNumber(7),
				mcp.Min(0),
			),
			mcp.WithNumber(argLimit,
				mcp.Description("Maximum number of notes to retrieve (default: 50)"),
				mcp.DefaultNumber(50),
				mcp.Min(0),
			),
		),
		mcp.NewTool(ToolCheckCallParticipation,
			mcp.WithDescription("Check if you were a participant in a specific call/meeting"),
			mcp.WithString(argNoteID,
				mcp.Description("The ID of the note/meeting to check"),
				mcp.Required(),
			),
		),
	}
}

// MCPServer is the mcp-go server with tool-name routing in front of it:
// a tools/call request naming an unregistered tool is answered with
// METHOD_NOT_FOUND, like the HTTP JSON-RPC transport does.
type MCPServer struct {
	*server.MCPServer

	known map[string]struct{}
}

// NewMCPServer registers every tool of t on a new MCP server. A failing tool
// call is answered with a JSON-RPC internal error carrying the
// [ToolError] message.
func NewMCPServer(t *Toolset, version string) *MCPServer {
	s := &MCPServer{
		MCPServer: server.NewMCPServer(
			ServerName,
			version,
			server.WithToolCapabilities(true),
			server.WithRecovery(),
			server.WithInstructions(serverInstructions),
		),
		known: make(map[string]struct{}),
	}

	for _, tool := range Definitions() {
		s.AddTool(tool, t.handler(tool.Name))
		s.known[tool.Name] = struct{}{}
	}

	return s
}

// HandleMessage answers one JSON-RPC message.
func (s *MCPServer) HandleMessage(ctx context.Context, message json.RawMessage) mcp.JSONRPCMessage {
	if resp := s.RejectUnknownTool(message); resp != nil {
		return resp
	}
	return s.MCPServer.HandleMessage(ctx, message)
}

// RejectUnknownTool returns the METHOD_NOT_FOUND response for a tools/call
// request naming an unregistered tool, and nil for any other message.
func (s *MCPServer) RejectUnknownTool(message []byte) mcp.JSONRPCMessage {
	var req struct {
		JSONRPC string        `json:"jsonrpc"`
		Method  mcp.MCPMethod `json:"method"`
		ID      mcp.RequestId `json:"id"`
		Params  struct {
			Name string `json:"name"`
		} `json:"params"`
	}
	if err := json.Unmarshal(message, &req); err != nil || req.JSONRPC != mcp.JSONRPC_VERSION || req.Method != mcp.MethodToolsCall || req.ID.IsNil() {
		return nil
	}
	if _, ok := s.known[req.Params.Name]; ok {
		return nil
	}

	err := fmt.Errorf("%w: %s", ErrMethodNotFound, req.Params.Name)
	return mcp.NewJSONRPCError(req.ID, mcp.METHOD_NOT_FOUND, err.Error(), nil)
}

func (t *Toolset) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := t.Call(ctx, name, request.GetArguments())
		if err != nil {
			return nil, err
		}

		text, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return nil, &ToolError{Tool: name, Err: err}
		}

		return mcp.NewToolResultText(string(text)), nil
	}
}
