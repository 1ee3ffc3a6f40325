package httpserver

import "errors"

// ErrNotReady is returned by Ping before the server accepts connections.
var ErrNotReady = errors.New("server is not ready")
