package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/granola-notes-mcp/internal/logger"
	"github.com/MKhiriev/granola-notes-mcp/internal/utils"
)

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
	ID      json.RawMessage `json:"id,omitempty"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  any             `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

var nullID = json.RawMessage("null")

// jsonRPC serves one JSON-RPC 2.0 call per request. Method names are tool
// names and params are tool arguments. Protocol and tool errors are reported
// in the envelope with HTTP 200.
func (h *Handler) jsonRPC(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req rpcRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Warn().Err(err).Msg("malformed json-rpc body")
		h.writeRPC(w, rpcResponse{ID: nullID, Error: &rpcError{Code: codeParseError, Message: "Parse error: " + err.Error()}})
		return
	}

	id := req.ID
	if len(id) == 0 {
		id = nullID
	}

	args, err := validateRPCRequest(req)
	if err != nil {
		h.writeRPC(w, rpcResponse{ID: id, Error: &rpcError{Code: codeInvalidRequest, Message: "Invalid Request: " + err.Error()}})
		return
	}

	log.Info().Str("method", req.Method).Msg("json-rpc call")

	result, err := h.toolset.Call(r.Context(), req.Method, args)
	if err != nil {
		h.writeRPC(w, rpcResponse{ID: id, Error: &rpcError{Code: codeFromError(err), Message: err.Error()}})
		return
	}

	h.writeRPC(w, rpcResponse{ID: id, Result: result})
}

// validateRPCRequest checks the envelope and decodes params into tool
// arguments. Absent or null params read as no arguments.
func validateRPCRequest(req rpcRequest) (map[string]any, error) {
	if req.JSONRPC != jsonRPCVersion {
		return nil, ErrInvalidJSONRPCVersion
	}
	if req.Method == "" {
		return nil, ErrEmptyMethod
	}

	params := bytes.TrimSpace(req.Params)
	if len(params) == 0 || bytes.Equal(params, nullID) {
		return map[string]any{}, nil
	}
	if params[0] != '{' {
		return nil, ErrParamsNotObject
	}

	var args map[string]any
	if err := json.Unmarshal(params, &args); err != nil {
		return nil, ErrParamsNotObject
	}
	return args, nil
}

func (h *Handler) writeRPC(w http.ResponseWriter, resp rpcResponse) {
	resp.JSONRPC = jsonRPCVersion
	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing json-rpc response")
	}
}
