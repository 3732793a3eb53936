package blogerrors

import "github.com/veedubyou/castel-site/src/server/internal/errors/api"

const (
	PostNotFoundCode = api.ErrorCode("post_not_found")
)
