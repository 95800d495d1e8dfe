package equation

import (
	"strconv"
	"strings"

	"github.com/verte-zerg/linequiz/internal/model"
)

// Format renders a line in the canonical form accepted by Parse.
func Format(l model.Line) string {
	var b strings.Builder
	b.WriteString("y=")
	switch l.M {
	case 1:
	case -1:
		b.WriteByte('-')
	default:
		b.WriteString(formatFloat(l.M))
	}
	b.WriteByte('x')
	if l.B != 0 {
		if l.B > 0 {
			b.WriteByte('+')
		}
		b.WriteString(formatFloat(l.B))
	}
	return b.String()
}

func formatFloat(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
