package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/abhisek/mathstudio/internal/app"
	"github.com/abhisek/mathstudio/internal/config"
	"github.com/abhisek/mathstudio/internal/logging"
)

var (
	vp     = config.New()
	cfg    *config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "mathstudio",
	Short: "Middle-school math practice engine",
	Long: "mathstudio serves, generates and checks practice problems for proportion, " +
		"geometry, equations, linear functions and circular sectors.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(".env"); err != nil {
			return err
		}
		configFile, _ := cmd.Flags().GetString("config")
		c, err := config.Load(vp, configFile)
		if err != nil {
			return err
		}
		l, err := logging.New(c.Log)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		cfg, logger = c, l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "Path to a config file (yaml, json or toml)")
	flags.String("db", "", "Path to SQLite database file (overrides MATHSTUDIO_DB env var)")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.Uint64("seed", 0, "Random seed; 0 seeds from the clock")

	bindFlag(vp, "db", "db")
	bindFlag(vp, "log.level", "log-level")
	bindFlag(vp, "seed", "seed")

	rootCmd.AddCommand(problemCmd)
	rootCmd.AddCommand(challengeCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(practiceCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(problemsCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// bindFlag lets a set flag override the viper key. Unset flags fall
// through to env, file and defaults.
func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}

// openApp opens the configured store and engine. Callers must Close it.
func openApp(cmd *cobra.Command) (*app.App, error) {
	return app.Open(cmd.Context(), cfg, logger)
}
