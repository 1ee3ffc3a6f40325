package tracing

import "errors"

// ErrUnknownExporter is returned for an exporter name other than none, stdout or otlp.
var ErrUnknownExporter = errors.New("unknown trace exporter")
