package contacterrors

import "github.com/veedubyou/castel-site/src/server/internal/errors/api"

const (
	BadContactDataCode     = api.ErrorCode("bad_contact_data")
	TooManySubmissionsCode = api.ErrorCode("too_many_submissions")
	RelayFailedCode        = api.ErrorCode("contact_relay_failed")
)
