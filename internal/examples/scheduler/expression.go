package scheduler

import (
	"strings"
	"time"

	"github.com/louisbranch/capbridge/apperr"
)

// Expression is a parsed schedule expression.
type Expression struct {
	raw   string
	every time.Duration
	// align rounds the next run to the interval boundary (@hourly, @daily).
	align bool
}

const minInterval = time.Second

// ParseExpression accepts "@every <duration>", "@hourly" and "@daily".
func ParseExpression(raw string) (Expression, error) {
	text := strings.TrimSpace(raw)
	switch {
	case text == "@hourly":
		return Expression{raw: text, every: time.Hour, align: true}, nil
	case text == "@daily" || text == "@midnight":
		return Expression{raw: text, every: 24 * time.Hour, align: true}, nil
	case strings.HasPrefix(text, "@every "):
		d, err := time.ParseDuration(strings.TrimSpace(strings.TrimPrefix(text, "@every ")))
		if err != nil {
			return Expression{}, apperr.Errorf(apperr.CodeInvalidInput, "invalid expression %q: %v", raw, err)
		}
		if d < minInterval {
			return Expression{}, apperr.Errorf(apperr.CodeInvalidInput, "invalid expression %q: interval must be at least %s", raw, minInterval)
		}
		return Expression{raw: text, every: d}, nil
	case text == "":
		return Expression{}, apperr.InvalidInput("expression is required")
	default:
		return Expression{}, apperr.Errorf(apperr.CodeInvalidInput, "unsupported expression %q", raw)
	}
}

// Next returns the first run strictly after from.
func (e Expression) Next(from time.Time) time.Time {
	if e.every <= 0 {
		return time.Time{}
	}
	if e.align {
		return from.UTC().Truncate(e.every).Add(e.every)
	}
	return from.Add(e.every)
}

func (e Expression) String() string {
	return e.raw
}
