package journal

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/linequiz/internal/equation"
	"github.com/verte-zerg/linequiz/internal/model"
)

// RenderSummary prints the session tally and a per-round table.
func RenderSummary(w io.Writer, tally model.Tally, rounds []model.RoundSummary) error {
	if tally.Total == 0 {
		_, err := fmt.Fprintln(w, "No answers submitted.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Answers: %d\n", tally.Total); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Correct: %d\n", tally.Correct); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Incorrect: %d\n", tally.Incorrect); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.1f%%\n", tally.Accuracy()*100); err != nil {
		return err
	}
	if len(rounds) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}

	headers := []string{"Round", "Point", "Attempts", "Correct", "Solved on"}
	tableRows := make([][]string, 0, len(rounds))
	for _, r := range rounds {
		solved := "-"
		if r.FirstCorrect > 0 {
			solved = humanize.Ordinal(r.FirstCorrect) + " try"
		}
		tableRows = append(tableRows, []string{
			fmt.Sprintf("%d", r.Round),
			FormatPoint(r.Target),
			fmt.Sprintf("%d", r.Attempts),
			fmt.Sprintf("%d", r.Correct),
			solved,
		})
	}
	rightAlign := map[int]bool{0: true, 2: true, 3: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// FormatPoint renders a point as "(x, y)" with the shortest float text.
func FormatPoint(p model.Point) string {
	return fmt.Sprintf("(%s, %s)", humanize.Ftoa(p.X), humanize.Ftoa(p.Y))
}

// FormatAttempt renders one history row relative to now.
func FormatAttempt(a model.Attempt, now time.Time) string {
	mark := "x"
	if a.Correct {
		mark = "v"
	}
	answer := strings.TrimSpace(a.Input)
	if a.Line != nil {
		answer = equation.Format(*a.Line)
	} else if answer == "" {
		answer = "(empty)"
	}
	return fmt.Sprintf("%s %s  %s  %s", mark, answer, FormatPoint(a.Target), humanize.RelTime(a.SubmittedAt, now, "ago", "from now"))
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		if rightAlignCols[i] {
			b.WriteString(runewidth.FillLeft(cell, widths[i]))
		} else {
			b.WriteString(runewidth.FillRight(cell, widths[i]))
		}
	}
	return strings.TrimRight(b.String(), " ")
}
