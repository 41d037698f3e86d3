package gocursor

import "github.com/edaniels/golog"

// Logger is used by components that were not handed a logger of their own.
var Logger = golog.Global().Named("gocursor")
