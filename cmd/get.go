package cmd

import (
	"github.com/spf13/cobra"

	"zkconf/internal/vpath"
)

// getCmd represents the get command.
var getCmd = &cobra.Command{
	Use:   "get NAME",
	Short: "Print a document's content",
	Long: `Print the raw content of one configuration document to stdout.
NAME is a virtual path like includes/defaults.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runGet,
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func runGet(cmd *cobra.Command, args []string) error {
	path, err := vpath.Parse(args[0])
	if err != nil {
		return err
	}

	inv, err := newInvocation()
	if err != nil {
		return operational(err)
	}
	st, err := inv.openStore(cmd.Context())
	if err != nil {
		return operational(err)
	}
	defer st.Close()

	data, err := st.Get(path.FlatName())
	if err != nil {
		return operational(err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return operational(err)
}
