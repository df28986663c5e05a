package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/synthetica/internal/app"
	"github.com/abhisek/synthetica/internal/llm"
	"github.com/abhisek/synthetica/internal/session"
	"github.com/abhisek/synthetica/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "synthetica",
	Short: "Olympiad proof synthesis in the terminal",
	Long: "Synthetica Mathematica solves, generates and co-develops IMO-level proofs with a " +
		"reasoning model, showing formalizations, reasoning traces and proof graphs.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		envFile, _ := cmd.Flags().GetString("env-file")
		if envFile != "" {
			return llm.LoadDotEnv(envFile)
		}
		return llm.LoadDotEnv()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(cmd)
		if err != nil {
			return err
		}
		defer rt.Close()

		svgDir, _ := cmd.Flags().GetString("svg-dir")
		return app.Run(cmd.Context(), app.Deps{
			Client: rt.client,
			State:  session.New(rt.lang),
			Logger: rt.logger,
			Model:  rt.provider.ModelID(),
			SVGDir: svgDir,
		})
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("db", "", "Path to SQLite database file (overrides SYNTHETICA_DB env var)")
	pf.String("lang", "", "Display and output language: en or hi (overrides SYNTHETICA_LANG)")
	pf.Bool("demo", false, "Use canned responses instead of a model")
	pf.String("log-level", "", "Log level: debug, info, warn, error (overrides SYNTHETICA_LOG_LEVEL)")
	pf.String("log-file", "", "Log file path")
	pf.String("env-file", "", "Load environment variables from this file instead of .env")

	rootCmd.Flags().String("svg-dir", "synthetica-svg", "Directory for exported SVGs")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(classicsCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then SYNTHETICA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openStore opens the telemetry database for the llm subcommands.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

func warnf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
}

// ExecuteContext runs the root command with ctx as the base context of
// every subcommand.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
