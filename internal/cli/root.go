package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FabLrc/GithubCICDChecker/internal/config"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
	"github.com/FabLrc/GithubCICDChecker/internal/tui"
)

// BuildInfo contains version information for the CLI, injected at build time
// via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

//nolint:gochecknoglobals // Package-level logger shared across commands, guarded by loggerMutex.
var (
	globalLogger zerolog.Logger
	loggerMutex  sync.RWMutex
)

// GetLogger returns the configured logger for use by commands.
// Returns a zero-value logger (which discards output) if called before
// Execute has initialized logging.
func GetLogger() zerolog.Logger {
	loggerMutex.RLock()
	defer loggerMutex.RUnlock()
	return globalLogger
}

func setGlobalLoggerRef(logger zerolog.Logger) {
	loggerMutex.Lock()
	defer loggerMutex.Unlock()
	globalLogger = logger
}

// newRootCmd creates the root command with global flags registered.
func newRootCmd(flags *GlobalFlags, info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.AppName,
		Short: "Évalue la posture CI/CD d'un dépôt GitHub",
		Long: `cicdcheck analyse un dépôt GitHub et évalue sa posture CI/CD à travers
30 checks répartis en 6 catégories : pipeline CI, tests, qualité de code,
sécurité, déploiement et documentation.

Chaque check produit un statut (réussi, échoué, avertissement ou ignoré),
une preuve et une suggestion de remédiation. Le score global et la note
reflètent uniquement les checks réellement évalués. Une analyse IA
optionnelle, via GitHub Models, complète le rapport avec des
recommandations priorisées.`,
		Version: formatVersion(info),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			v := viper.New()
			if err := BindGlobalFlags(v, cmd); err != nil {
				return fmt.Errorf("failed to bind global flags: %w", err)
			}

			if !IsValidOutputFormat(flags.Output) {
				return errors.Wrapf(errors.ErrInvalidOutputFormat, "%q (valid: text, json)", flags.Output)
			}

			if flags.NoColor {
				// Setting NO_COLOR makes every downstream detector agree:
				// lipgloss profiles, the console log writer, and the tables.
				_ = os.Setenv("NO_COLOR", "1")
			}
			tui.CheckNoColor()

			cfg, cfgErr := resolveConfig(cmd.Context(), cmd)

			logger, err := InitLogger(flags.Verbose, flags.Quiet, cfg.Log)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			setGlobalLoggerRef(logger)

			if cfgErr != nil {
				logger.Warn().Err(cfgErr).Msg("failed to load config, using defaults")
			}

			return nil
		},
		SilenceUsage: true,
	}

	AddGlobalFlags(rootCmd, flags)

	AddScanCommand(rootCmd)
	AddChecksCommand(rootCmd)
	AddServeCommand(rootCmd)
	AddVersionCommand(rootCmd, info)

	return rootCmd
}

// resolveConfig loads the effective configuration, honoring the --config
// persistent flag when set. On failure it returns the defaults along with the
// load error so the caller decides how loudly to complain.
func resolveConfig(ctx context.Context, cmd *cobra.Command) (*config.Config, error) {
	path := ""
	if f := cmd.Root().PersistentFlags().Lookup("config"); f != nil {
		path = f.Value.String()
	}

	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromPaths(ctx, path, "")
	} else {
		cfg, err = config.Load(ctx)
	}
	if err != nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

// loadConfig is the command-side variant of resolveConfig: load failures are
// logged as warnings and the defaults keep the command running.
func loadConfig(ctx context.Context, cmd *cobra.Command) *config.Config {
	cfg, err := resolveConfig(ctx, cmd)
	if err != nil {
		logger := GetLogger()
		logger.Warn().Err(err).Msg("failed to load config, using defaults")
	}
	return cfg
}

// formatVersion formats build information for the --version flag.
func formatVersion(info BuildInfo) string {
	version := versionOrDev(info.Version)
	if info.Commit != "" && info.Date != "" {
		return fmt.Sprintf("%s (commit: %s, built: %s)", version, info.Commit, info.Date)
	}
	return version
}

func versionOrDev(version string) string {
	if version == "" {
		return "dev"
	}
	return version
}

// Execute runs the root command with the given build information.
// The caller maps the returned error to an exit code via ExitCodeForError.
func Execute(ctx context.Context, info BuildInfo) error {
	flags := &GlobalFlags{}
	rootCmd := newRootCmd(flags, info)
	rootCmd.SilenceErrors = true

	defer CloseLogFile()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil && !stderrors.Is(err, errors.ErrJSONErrorOutput) {
		// Single French-first error line on stderr. Commands that already
		// emitted a JSON error document signal it with ErrJSONErrorOutput.
		tui.NewTTYOutput(os.Stderr).Error(err)
	}
	return err
}
