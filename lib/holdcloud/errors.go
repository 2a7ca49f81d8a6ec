package holdcloud

import "github.com/holdcloud/hcctl/lib/httpvalidation"

// Error kinds returned by the client. See package httpvalidation.
type (
	AuthError      = httpvalidation.AuthError
	NotFoundError  = httpvalidation.NotFoundError
	ConflictError  = httpvalidation.ConflictError
	RemoteError    = httpvalidation.RemoteError
	TransportError = httpvalidation.TransportError
)

var (
	IsUnauthorized = httpvalidation.IsUnauthorized
	IsNotFound     = httpvalidation.IsNotFound
	IsConflict     = httpvalidation.IsConflict
)
