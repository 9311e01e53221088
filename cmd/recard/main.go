// Package main provides the CLI entrypoint for recard.
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/recard/internal/config"
	"github.com/verte-zerg/recard/internal/deck"
	"github.com/verte-zerg/recard/internal/logging"
	"github.com/verte-zerg/recard/internal/policy"
	"github.com/verte-zerg/recard/internal/random"
	"github.com/verte-zerg/recard/internal/session"
	"github.com/verte-zerg/recard/internal/tui"
)

var (
	trainSource  string
	trainVerbose bool

	checkSource string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "recard",
		Short:         "Terminal spaced-repetition flashcard trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainCmd,
	}

	rootCmd.Flags().StringVar(&trainSource, "source", "", "deck file path or URL (default: config, then XDG data dir)")
	rootCmd.Flags().BoolVar(&trainVerbose, "verbose", false, "log at debug level")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCheckCmd())

	return rootCmd
}

func runTrainCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &trainSource, fileCfg.Deck.Source)
	sourcePath := resolveSourcePath(trainSource)

	settings, err := fileCfg.Game.Settings()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	logger, closeLog, err := logging.New(config.DefaultLogPath(), trainVerbose)
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer closeLog()

	st := session.New(settings)
	rnd := random.New()
	pol := policy.New(rnd, logger)
	parser := deck.NewParser(logger)

	model := tui.NewModel(st, pol, parser, rnd, logger, sourcePath)
	defer model.Close()
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	// The alternate screen is gone; say goodbye where it stays visible.
	fmt.Print(model.FinalView())
	return nil
}

func resolveSourcePath(source string) string {
	if source != "" {
		return source
	}
	return config.DefaultDeckPath()
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
	path := config.DefaultConfigPath()
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

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a deck file without starting a session",
		Args:  cobra.NoArgs,
		RunE:  runCheckCmd,
	}
	cmd.Flags().StringVar(&checkSource, "source", "", "deck file path or URL")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "source", &checkSource, fileCfg.Deck.Source)
	sourcePath := resolveSourcePath(checkSource)

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	parser := deck.NewParser(logger)
	col, err := parser.Load(sourcePath)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintf(out, "%s: %d items\n", sourcePath, len(col.Items)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	counts := map[string]int{}
	for _, item := range col.Items {
		for _, category := range item.Categories {
			counts[category]++
		}
	}
	categories := make([]string, 0, len(counts))
	for category := range counts {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		if _, err := fmt.Fprintf(out, "  %s: %d\n", category, counts[category]); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	if *target != "" {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# recard configuration
# Uncomment a value to enable it. CLI flags override config values.

[deck]
# source = "~/.local/share/recard/deck.json"   # Deck file path or URL

[game]
# Any value set here is skipped during the interactive settings scene.
# mode = "free"                # ten-cards | free | timed | lives | random
# side = "front"               # front | back
# flip = false                 # May the question side flip between cards
# time = 0                     # Time limit in seconds (0 = unlimited)
# lives = 0                    # Lives (0 = unlimited)
# hints = 0                    # Hints (0 = unlimited)
# cards = 0                    # Cards per run (0 = unlimited)
# selection = "date"           # date | random
# hint-strategy = "sort-letters"  # sort-letters | some-words
`
}
