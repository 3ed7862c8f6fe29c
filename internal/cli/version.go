package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/tui"
)

// AddVersionCommand adds the version command to the root command.
func AddVersionCommand(root *cobra.Command, info BuildInfo) {
	root.AddCommand(newVersionCmd(info))
}

func newVersionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Affiche la version de " + constants.AppName,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runVersion(cmd, os.Stdout, info)
		},
	}
}

func runVersion(cmd *cobra.Command, w io.Writer, info BuildInfo) error {
	outputFormat := cmd.Flag("output").Value.String()
	if outputFormat == OutputJSON {
		out := tui.NewOutput(w, outputFormat)
		return out.JSON(map[string]string{
			"version":    versionOrDev(info.Version),
			"commit":     info.Commit,
			"built":      info.Date,
			"go_version": runtime.Version(),
		})
	}

	_, _ = fmt.Fprintf(w, "%s %s\n", constants.AppName, formatVersion(info))
	return nil
}
