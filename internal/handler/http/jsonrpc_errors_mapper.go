package http

import (
	"errors"

	"github.com/MKhiriev/granola-notes-mcp/internal/tools"
)

var errorCodeMap = map[error]int{
	tools.ErrMethodNotFound: codeMethodNotFound,
	tools.ErrInvalidParams:  codeInvalidParams,
}

func codeFromError(err error) int {
	for target, code := range errorCodeMap {
		if errors.Is(err, target) {
			return code
		}
	}
	return codeInternalError
}
