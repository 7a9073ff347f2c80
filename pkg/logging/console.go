package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

// Verbosity controls which entries the Console writes to its sink.
type Verbosity int

const (
	// VerbosityQuiet writes nothing
	VerbosityQuiet Verbosity = iota
	// VerbosityNormal writes info and error entries
	VerbosityNormal
	// VerbosityVerbose is accepted for parity with -v; it behaves like normal
	VerbosityVerbose
	// VerbosityVeryVerbose additionally writes debug entries
	VerbosityVeryVerbose
)

// VerbosityFromCount maps the number of -v flags to a console verbosity
func VerbosityFromCount(n int) Verbosity {
	switch {
	case n <= 0:
		return VerbosityNormal
	case n == 1:
		return VerbosityVerbose
	default:
		return VerbosityVeryVerbose
	}
}

// DefaultContext tags entries when the caller does not name one
const DefaultContext = "modsync"

var (
	contextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Console is the logging helper shared by the publisher and the permission
// repairer. Every entry goes to zerolog; entries allowed by the verbosity
// are also written as "[context] message" lines to the sink.
//
// A nil *Console discards everything.
type Console struct {
	out       io.Writer
	verbosity Verbosity
	logger    zerolog.Logger
	cwdPrefix string
	decorated bool
}

// NewConsole creates a Console writing to out
func NewConsole(out io.Writer, verbosity Verbosity) *Console {
	c := &Console{
		out:       out,
		verbosity: verbosity,
		logger:    GetLogger("console"),
	}
	if cwd, err := os.Getwd(); err == nil {
		c.cwdPrefix = cwd + string(os.PathSeparator)
	}
	return c
}

// SetDecorated enables lipgloss styling of the context tag and errors
func (c *Console) SetDecorated(decorated bool) *Console {
	c.decorated = decorated
	return c
}

// SetVerbosity changes the console verbosity
func (c *Console) SetVerbosity(v Verbosity) *Console {
	c.verbosity = v
	return c
}

// SetLogger replaces the zerolog logger entries are forwarded to
func (c *Console) SetLogger(logger zerolog.Logger) *Console {
	c.logger = logger
	return c
}

// SetWorkingDir changes the prefix stripped from messages
func (c *Console) SetWorkingDir(dir string) *Console {
	c.cwdPrefix = strings.TrimSuffix(dir, string(os.PathSeparator)) + string(os.PathSeparator)
	return c
}

// Verbosity returns the console verbosity
func (c *Console) Verbosity() Verbosity {
	if c == nil {
		return VerbosityQuiet
	}
	return c.verbosity
}

// Info logs an informational entry
func (c *Console) Info(context, message string) {
	c.log(zerolog.InfoLevel, context, message)
}

// Infof logs a formatted informational entry
func (c *Console) Infof(context, format string, args ...interface{}) {
	c.log(zerolog.InfoLevel, context, fmt.Sprintf(format, args...))
}

// Debug logs an entry only shown on the console in very verbose mode
func (c *Console) Debug(context, message string) {
	c.log(zerolog.DebugLevel, context, message)
}

// Debugf logs a formatted debug entry
func (c *Console) Debugf(context, format string, args ...interface{}) {
	c.log(zerolog.DebugLevel, context, fmt.Sprintf(format, args...))
}

// Warn logs a warning entry
func (c *Console) Warn(context, message string) {
	c.log(zerolog.WarnLevel, context, message)
}

// Error logs an error entry
func (c *Console) Error(context, message string) {
	c.log(zerolog.ErrorLevel, context, message)
}

// Errorf logs a formatted error entry
func (c *Console) Errorf(context, format string, args ...interface{}) {
	c.log(zerolog.ErrorLevel, context, fmt.Sprintf(format, args...))
}

func (c *Console) log(level zerolog.Level, context, message string) {
	if c == nil {
		return
	}
	if context == "" {
		context = DefaultContext
	}
	if c.cwdPrefix != "" {
		message = strings.ReplaceAll(message, c.cwdPrefix, "")
	}

	c.logger.WithLevel(level).Str("context", context).Msg(message)

	if !c.shouldWrite(level) {
		return
	}
	c.write(level, context, message)
}

func (c *Console) shouldWrite(level zerolog.Level) bool {
	if c.out == nil || c.verbosity == VerbosityQuiet {
		return false
	}
	if level <= zerolog.DebugLevel {
		return c.verbosity >= VerbosityVeryVerbose
	}
	return true
}

func (c *Console) write(level zerolog.Level, context, message string) {
	tag := "[" + context + "]"
	if c.decorated {
		tag = contextStyle.Render(tag)
		if level >= zerolog.ErrorLevel {
			message = errorStyle.Render(message)
		}
	}

	fmt.Fprintf(c.out, "%s %s\n", tag, message)
}
