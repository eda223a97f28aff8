package logs

import (
	"io"
	"os"
)

// Writer receives terminal log output and debug dumps.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
