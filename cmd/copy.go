package cmd

import (
	"github.com/spf13/cobra"
)

// copyCmd represents the copy command.
var copyCmd = &cobra.Command{
	Use:   "copy SOURCE TARGET",
	Short: "Duplicate a document under a new name",
	Long: `Copy the content of the document SOURCE to TARGET, leaving SOURCE in
place. TARGET is subject to the same virtual-directory collision check as
any other write.`,
	Args: cobra.ExactArgs(2),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	src, dst, err := parseSourceTarget(args)
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

	if err := st.Copy(src.FlatName(), dst.FlatName()); err != nil {
		return operational(err)
	}
	inv.notice("Copied %s to %s", src, dst)
	return nil
}
