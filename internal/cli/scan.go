package cli

import (
	"context"
	stderrors "errors"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FabLrc/GithubCICDChecker/internal/advisory"
	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/clock"
	"github.com/FabLrc/GithubCICDChecker/internal/config"
	"github.com/FabLrc/GithubCICDChecker/internal/ctxutil"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/engine"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
	"github.com/FabLrc/GithubCICDChecker/internal/github"
	"github.com/FabLrc/GithubCICDChecker/internal/scoring"
	"github.com/FabLrc/GithubCICDChecker/internal/tui"
)

// snapshotter assembles a repository snapshot. Satisfied by github.Client.
type snapshotter interface {
	Snapshot(ctx context.Context, repo domain.Repo) (*domain.RepositorySnapshot, error)
}

// reviewer produces an AI review of a score report. Satisfied by
// advisory.Reviewer.
type reviewer interface {
	Review(ctx context.Context, report *domain.ScoreReport, workflowYAML string) (*domain.Review, error)
}

// scanOptions holds the scan command's flag values.
type scanOptions struct {
	token   string
	ai      bool
	noAI    bool
	timeout time.Duration
}

// scanDeps groups the scan flow's collaborators so tests can swap the
// network-facing pieces for fakes.
type scanDeps struct {
	clock          clock.Clock
	newSnapshotter func(cfg *config.Config, token string) (snapshotter, error)
	newReviewer    func(cfg *config.Config, cat *catalog.Catalog, token string) (reviewer, error)
}

func defaultScanDeps() *scanDeps {
	return &scanDeps{
		clock: clock.RealClock{},
		newSnapshotter: func(cfg *config.Config, token string) (snapshotter, error) {
			opts := []github.Option{
				github.WithTimeout(cfg.GitHub.Timeout),
				github.WithCommitSample(cfg.GitHub.CommitSample),
			}
			if cfg.GitHub.APIBaseURL != "" {
				opts = append(opts, github.WithBaseURL(cfg.GitHub.APIBaseURL))
			}
			return github.New(token, opts...)
		},
		newReviewer: func(cfg *config.Config, cat *catalog.Catalog, token string) (reviewer, error) {
			opts := []advisory.Option{
				advisory.WithModel(cfg.AI.Model),
				advisory.WithMaxTokens(cfg.AI.MaxTokens),
				advisory.WithTemperature(cfg.AI.Temperature),
			}
			if cfg.AI.BaseURL != "" {
				opts = append(opts, advisory.WithBaseURL(cfg.AI.BaseURL))
			}
			if cfg.AI.Timeout > 0 {
				opts = append(opts, advisory.WithHTTPClient(&http.Client{Timeout: cfg.AI.Timeout}))
			}
			return advisory.New(token, cat, opts...)
		},
	}
}

// AddScanCommand adds the scan command to the root command.
func AddScanCommand(root *cobra.Command) {
	root.AddCommand(newScanCmd())
}

func newScanCmd() *cobra.Command {
	opts := &scanOptions{}

	cmd := &cobra.Command{
		Use:   "scan <owner/repo>",
		Short: "Analyse la posture CI/CD d'un dépôt GitHub",
		Long: `Analyse un dépôt GitHub : collecte les workflows, runs, protection de
branche, fichiers, commits et releases, évalue les 30 checks du catalogue
et affiche le rapport noté.

Le dépôt s'indique au format owner/repo ou par son URL GitHub. Sans token,
seuls les dépôts publics sont analysables et l'analyse IA reste inactive.`,
		Example: `  cicdcheck scan octocat/hello-world
  cicdcheck scan https://github.com/golang/go --no-ai
  cicdcheck scan octocat/hello-world --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runScan(cmd.Context(), cmd, os.Stdout, args[0], opts, defaultScanDeps())
			// If the JSON error document was already written, silence
			// cobra but keep the error for the exit code.
			if stderrors.Is(err, errors.ErrJSONErrorOutput) {
				cmd.SilenceErrors = true
			}
			return err
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "token GitHub (prioritaire sur la variable d'environnement)")
	cmd.Flags().BoolVar(&opts.ai, "ai", false, "force l'analyse IA même si désactivée en configuration")
	cmd.Flags().BoolVar(&opts.noAI, "no-ai", false, "désactive l'analyse IA pour ce scan")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "délai maximal de collecte des données (défaut : configuration)")
	cmd.MarkFlagsMutuallyExclusive("ai", "no-ai")

	return cmd
}

func runScan(ctx context.Context, cmd *cobra.Command, w io.Writer, arg string, opts *scanOptions, deps *scanDeps) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	repo, err := github.ParseRepo(arg)
	if err != nil {
		return failCommand(out, outputFormat, err)
	}

	cfg := loadConfig(ctx, cmd)
	githubToken := opts.token
	if githubToken == "" {
		githubToken = cfg.GitHub.Token()
	}
	aiToken := opts.token
	if aiToken == "" {
		aiToken = cfg.AI.Token()
	}
	timeout := cfg.GitHub.Timeout
	if opts.timeout > 0 {
		timeout = opts.timeout
	}
	aiEnabled := cfg.AI.Enabled
	if opts.ai {
		aiEnabled = true
	}
	if opts.noAI {
		aiEnabled = false
	}

	logger := GetLogger()
	ctx = logger.WithContext(ctx)

	cat, err := catalog.Default()
	if err != nil {
		return failCommand(out, outputFormat, err)
	}

	sn, err := deps.newSnapshotter(cfg, githubToken)
	if err != nil {
		return failCommand(out, outputFormat, err)
	}

	logger.Info().Str("repo", repo.FullName()).Msg("assembling repository snapshot")
	snapCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	snap, err := sn.Snapshot(snapCtx, repo)
	if err != nil {
		return failCommand(out, outputFormat, err)
	}

	results, err := engine.NewRunner(cat).Run(ctx, snap)
	if err != nil {
		return failCommand(out, outputFormat, err)
	}

	report := scoring.Aggregate(repo, results, cat, deps.clock.Now())

	var advisoryErr error
	if aiEnabled {
		report.Review, advisoryErr = requestReview(ctx, deps, cfg, cat, aiToken, report, snap)
		if advisoryErr != nil {
			logger.Debug().Err(advisoryErr).Msg("AI review unavailable")
		}
	}

	if outputFormat == OutputJSON {
		return out.JSON(report)
	}

	renderScanReport(w, report, cat, advisoryState{enabled: aiEnabled, err: advisoryErr})
	return nil
}

// requestReview runs the optional AI review. Failures never fail the scan;
// the caller renders the degraded state instead.
func requestReview(ctx context.Context, deps *scanDeps, cfg *config.Config, cat *catalog.Catalog, token string, report *domain.ScoreReport, snap *domain.RepositorySnapshot) (*domain.Review, error) {
	rev, err := deps.newReviewer(cfg, cat, token)
	if err != nil {
		return nil, err
	}
	return rev.Review(ctx, report, firstWorkflowYAML(snap))
}

// firstWorkflowYAML returns the content of the repository's first workflow
// file, which grounds the AI review in the actual pipeline definition.
func firstWorkflowYAML(snap *domain.RepositorySnapshot) string {
	if !snap.Workflows.Known {
		return ""
	}
	for _, wf := range snap.Workflows.Value {
		if wf.Content != "" {
			return wf.Content
		}
	}
	return ""
}

// failCommand reports a command failure in the requested format. In JSON mode
// the error document is the command's output, so the returned error carries
// ErrJSONErrorOutput alongside the original cause.
func failCommand(out tui.Output, outputFormat string, err error) error {
	if outputFormat == OutputJSON {
		out.Error(err)
		return stderrors.Join(errors.ErrJSONErrorOutput, err)
	}
	return err
}
