package asseterrors

import "github.com/veedubyou/castel-site/src/server/internal/errors/api"

const (
	ScriptNotFoundCode    = api.ErrorCode("script_not_found")
	ScriptUnavailableCode = api.ErrorCode("script_unavailable")
)
