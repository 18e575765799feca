package consoles

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abiosoft/lineprefix"
)

type writerConsole struct {
	out      io.Writer
	prefixes []string
	now      func() time.Time
}

func NewStdErrConsole() Console {
	return NewWriterConsole(os.Stderr)
}

// NewWriterConsole creates a console that writes to w. Every line written
// starts with the current time and the pushed prefixes.
func NewWriterConsole(w io.Writer) Console {
	result := &writerConsole{
		now: time.Now,
	}

	result.out = lineprefix.New(lineprefix.Writer(w), lineprefix.PrefixFunc(func() string {
		return result.Prepare("")
	}))

	return result
}

func (o *writerConsole) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(o.out, format, a...)
}

func (o *writerConsole) PushPrefix(format string, a ...any) {
	o.prefixes = append(o.prefixes, fmt.Sprintf(format, a...))
}

func (o *writerConsole) PopPrefix() {
	o.prefixes = o.prefixes[:len(o.prefixes)-1]
}

func (o *writerConsole) Prepare(format string, a ...any) string {
	builder := strings.Builder{}
	builder.WriteString("[")
	builder.WriteString(o.now().Format("15:04:05"))
	builder.WriteString("] ")
	for _, prefix := range o.prefixes {
		builder.WriteString(prefix)
	}
	builder.WriteString(fmt.Sprintf(format, a...))
	return builder.String()
}
