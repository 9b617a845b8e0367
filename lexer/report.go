package lexer

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

type Error struct {
	Pos     Pos
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("%s:%d:%d %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
}

func (e Error) WithoutPos() Error {
	return Error{Message: e.Message}
}

// Reporter is the sink for scanning diagnostics. Scanning never stops on a
// diagnostic, so a Reporter may be called any number of times per Next.
type Reporter interface {
	Report(e Error)
}

// ErrorList collects diagnostics for later inspection.
type ErrorList []Error

func (l *ErrorList) Report(e Error) {
	*l = append(*l, e)
}

// WriteReporter prints diagnostics in the classic two-line format:
//
//	Illegal character: $
//	  at 2:5
type WriteReporter struct {
	W io.Writer
}

func (r WriteReporter) Report(e Error) {
	fmt.Fprintf(r.W, "%s\n  at %d:%d\n", e.Message, e.Pos.Line, e.Pos.Col)
}

// LogReporter forwards diagnostics to a logrus logger with the position
// attached as fields.
type LogReporter struct {
	Logger logrus.FieldLogger
}

func (r LogReporter) Report(e Error) {
	r.Logger.WithFields(logrus.Fields{
		"file": e.Pos.File,
		"line": e.Pos.Line,
		"col":  e.Pos.Col,
	}).Error(e.Message)
}
