package cli

import (
	"io"
	"log/slog"
)

// Context carries the collaborators a command run writes to.
type Context struct {
	Out    io.Writer
	Logger *slog.Logger
}
