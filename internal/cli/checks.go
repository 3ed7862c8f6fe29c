package cli

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/ctxutil"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
	"github.com/FabLrc/GithubCICDChecker/internal/tui"
)

// AddChecksCommand adds the checks command to the root command.
func AddChecksCommand(root *cobra.Command) {
	root.AddCommand(newChecksCmd())
}

func newChecksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "checks",
		Short: "Liste les checks du catalogue",
		Long: `Affiche les 30 checks évalués par cicdcheck, avec leur identifiant,
leur catégorie et ce qu'ils vérifient. Aucune requête réseau n'est émise.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := runChecks(cmd.Context(), cmd, os.Stdout)
			if stderrors.Is(err, errors.ErrJSONErrorOutput) {
				cmd.SilenceErrors = true
			}
			return err
		},
	}
}

func runChecks(ctx context.Context, cmd *cobra.Command, w io.Writer) error {
	if err := ctxutil.Canceled(ctx); err != nil {
		return err
	}

	outputFormat := cmd.Flag("output").Value.String()
	tui.CheckNoColor()
	out := tui.NewOutput(w, outputFormat)

	cat, err := catalog.Default()
	if err != nil {
		return failCommand(out, outputFormat, err)
	}

	if outputFormat == OutputJSON {
		return out.JSON(cat.Definitions())
	}

	defs := cat.Definitions()
	rows := make([][]string, 0, len(defs))
	for _, def := range defs {
		rows = append(rows, []string{def.ID, def.Category.Label(), def.Title, def.Description})
	}

	columns := tui.AutoSize([]tui.TableColumn{
		{Name: "ID"},
		{Name: "CATÉGORIE"},
		{Name: "TITRE"},
		{Name: "DESCRIPTION"},
	}, rows, tui.TerminalWidth())

	table := tui.NewTable(w, columns)
	table.WriteHeader()
	for _, row := range rows {
		table.WriteRow(row...)
	}

	styles := tui.NewOutputStyles()
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.Dim.Render(fmt.Sprintf("%d checks dans %d catégories", cat.Len(), len(constants.CategoryOrder()))))

	return nil
}
