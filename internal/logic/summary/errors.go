package summary

import "errors"

// ErrMalformedResource is returned by Validate for resources lacking a uid or name.
var ErrMalformedResource = errors.New("malformed resource")
