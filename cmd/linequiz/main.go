// Package main provides the CLI entrypoint for linequiz.
package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/linequiz/internal/config"
	"github.com/verte-zerg/linequiz/internal/journal"
	"github.com/verte-zerg/linequiz/internal/model"
	"github.com/verte-zerg/linequiz/internal/quiz"
	"github.com/verte-zerg/linequiz/internal/tui"
)

const (
	defaultPointX     = 3.0
	defaultPointY     = 7.0
	defaultMargin     = 4
	defaultFeedbackMs = 1200
	defaultHistory    = 5
)

var (
	quizPointX     float64
	quizPointY     float64
	quizRandom     bool
	quizSeed       int64
	quizMargin     int
	quizFeedbackMs int
	quizHistory    int
	quizBanner     bool
	quizConfigPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "linequiz",
		Short:         "Slope-intercept line quiz",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runQuizCmd,
	}

	rootCmd.Flags().Float64Var(&quizPointX, "x", defaultPointX, "target point x")
	rootCmd.Flags().Float64Var(&quizPointY, "y", defaultPointY, "target point y")
	rootCmd.Flags().BoolVar(&quizRandom, "random", false, "start from a random target point")
	rootCmd.Flags().Int64Var(&quizSeed, "seed", 0, "seed for random target points (0 uses the clock)")
	rootCmd.Flags().IntVar(&quizMargin, "margin", defaultMargin, "plot margin in braille dots")
	rootCmd.Flags().IntVar(&quizFeedbackMs, "feedback-ms", defaultFeedbackMs, "how long feedback stays visible")
	rootCmd.Flags().IntVar(&quizHistory, "history", defaultHistory, "number of recent answers shown")
	rootCmd.Flags().BoolVar(&quizBanner, "banner", true, "draw the decorative wave banner")
	rootCmd.Flags().StringVar(&quizConfigPath, "config", "", "config file (.toml, .yaml or .yml)")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

func runQuizCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd, configPath())
	if err != nil {
		return err
	}

	j, err := journal.Open(journal.MemoryDSN)
	if err != nil {
		return fmt.Errorf("failed to open journal: %w", err)
	}
	defer func() {
		if cerr := j.Close(); cerr != nil {
			logErrf("failed to close journal: %v\n", cerr)
		}
	}()

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gen := quiz.NewGenerator(seed)
	if cfg.RandomPoint {
		cfg.Target = gen.Point()
	}
	session := quiz.NewSession(cfg.Target, gen)
	// Banner curves draw from a source independent of the target sequence.
	banner := rand.New(rand.NewSource(seed + 1))
	m := tui.NewModel(cfg, session, j, banner)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	rounds, err := j.Rounds(context.Background(), session.ID())
	if err != nil {
		logErrf("failed to load rounds: %v\n", err)
	}
	if err := journal.RenderSummary(cmd.OutOrStdout(), m.Tally(), rounds); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// configPath returns --config when given, otherwise the first existing file in the
// linequiz config directory.
func configPath() string {
	if quizConfigPath != "" {
		return quizConfigPath
	}
	return config.ResolveConfigPath()
}

// resolveConfig merges the config file at path under the command's flags.
func resolveConfig(cmd *cobra.Command, path string) (model.Config, error) {
	fileCfg, err := config.LoadConfig(path)
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyFloatConfig(cmd, "x", &quizPointX, fileCfg.Quiz.PointX)
	applyFloatConfig(cmd, "y", &quizPointY, fileCfg.Quiz.PointY)
	applyBoolConfig(cmd, "random", &quizRandom, fileCfg.Quiz.RandomPoint)
	applyInt64Config(cmd, "seed", &quizSeed, fileCfg.Quiz.Seed)
	applyIntConfig(cmd, "margin", &quizMargin, fileCfg.Display.Margin)
	applyIntConfig(cmd, "feedback-ms", &quizFeedbackMs, fileCfg.Display.FeedbackMs)
	applyIntConfig(cmd, "history", &quizHistory, fileCfg.Display.History)
	applyBoolConfig(cmd, "banner", &quizBanner, fileCfg.Display.Banner)

	cfg := model.Config{
		Target:      model.Point{X: quizPointX, Y: quizPointY},
		RandomPoint: quizRandom,
		Seed:        quizSeed,
		Margin:      quizMargin,
		FeedbackMs:  quizFeedbackMs,
		History:     quizHistory,
		Banner:      quizBanner,
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.ResolveConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# linequiz configuration
# Uncomment a value to enable it. CLI flags override config values.

[quiz]
# point-x = %.1f          # Target point x
# point-y = %.1f          # Target point y
# random-point = false    # Start from a random target point
# seed = 0                # Seed for random points (0 uses the clock)

[display]
# margin = %d             # Plot margin in braille dots
# feedback-ms = %d     # How long feedback stays visible
# history = %d            # Number of recent answers shown
# banner = true           # Draw the decorative wave banner
`,
		defaultPointX,
		defaultPointY,
		defaultMargin,
		defaultFeedbackMs,
		defaultHistory,
	)
}

func validateConfig(cfg model.Config) error {
	if !inAxisRange(cfg.Target.X) || !inAxisRange(cfg.Target.Y) {
		return fmt.Errorf("--x and --y must be between %g and %g", model.AxisMin, model.AxisMax)
	}
	if cfg.Margin < 0 {
		return fmt.Errorf("--margin must be >= 0")
	}
	if cfg.FeedbackMs <= 0 {
		return fmt.Errorf("--feedback-ms must be > 0")
	}
	if cfg.History < 0 {
		return fmt.Errorf("--history must be >= 0")
	}
	return nil
}

func inAxisRange(v float64) bool {
	return v >= model.AxisMin && v <= model.AxisMax
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
