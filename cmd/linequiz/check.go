package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/linequiz/internal/equation"
	"github.com/verte-zerg/linequiz/internal/journal"
	"github.com/verte-zerg/linequiz/internal/model"
	"github.com/verte-zerg/linequiz/internal/plot"
	"github.com/verte-zerg/linequiz/internal/quiz"
)

var errIncorrect = errors.New("answer is incorrect")

var (
	checkX    float64
	checkY    float64
	checkPlot bool
)

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check EQUATION",
		Short: "Grade one equation against a point",
		Args:  cobra.ExactArgs(1),
		RunE:  runCheckCmd,
	}
	cmd.Flags().Float64Var(&checkX, "x", defaultPointX, "target point x")
	cmd.Flags().Float64Var(&checkY, "y", defaultPointY, "target point y")
	cmd.Flags().BoolVar(&checkPlot, "plot", false, "draw the plane with the line and point")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	target := model.Point{X: checkX, Y: checkY}
	line, err := equation.Parse(args[0])
	if err != nil {
		return fmt.Errorf("failed to parse equation: %w", err)
	}
	correct := quiz.Evaluate(target, &line)

	out := cmd.OutOrStdout()
	verdict := "incorrect"
	if correct {
		verdict = "correct"
	}
	if _, err := fmt.Fprintf(out, "Point: %s\nLine: %s\nAt x=%g: y=%g (want %g)\nVerdict: %s\n",
		journal.FormatPoint(target), equation.Format(line), target.X, line.At(target.X), target.Y, verdict); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if checkPlot {
		width, height := plot.TerminalSize()
		cols, rows := plot.FitSize(width, height-5)
		rendered := plot.Render(plot.Plane{Target: target, Line: &line}, plot.Options{
			Cols:   cols,
			Rows:   rows,
			Margin: defaultMargin,
			Color:  plot.ShouldUseColor(os.Stdout),
		})
		if _, err := fmt.Fprintln(out, rendered); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if !correct {
		return errIncorrect
	}
	return nil
}
