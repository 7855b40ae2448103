package formatter

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("formatter")

// Formatter runs generated Go source through gofmt
type Formatter struct{}

// NewFormatter creates a new Formatter instance
func NewFormatter() *Formatter {
	return &Formatter{}
}

// Format returns code formatted the way gofmt would print it. Blank input
// formats to an empty string.
func (f *Formatter) Format(code string) (string, error) {
	if strings.TrimSpace(code) == "" {
		return "", nil
	}

	formatted, err := format.Source([]byte(code))
	if err != nil {
		return "", fmt.Errorf("failed to parse Go code: %w", err)
	}

	log.Debugf("formatted %d bytes of Go source", len(formatted))
	return string(formatted), nil
}
