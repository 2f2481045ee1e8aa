package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"zkconf/internal/cli"
	"zkconf/internal/config"
	"zkconf/internal/store"
	"zkconf/internal/vpath"
	"zkconf/pkg/logging"
)

// Exit codes for CLI commands. Stable so scripts can branch on them.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeUsage indicates an invalid or missing mode of operation, or a
	// delete blocked by structural child znodes.
	ExitCodeUsage = 1
	// ExitCodeOperational indicates any operational failure: connection
	// problems, a missing root znode, failed reads or writes, a declined
	// confirmation.
	ExitCodeOperational = 2
)

var (
	rootServer     string
	rootZNode      string
	rootConfigPath string
	rootVerbosity  int
	rootQuiet      bool
	rootNoColor    bool
)

// rootCmd represents the base command for the zkconf application.
var rootCmd = &cobra.Command{
	Use:   "zkconf",
	Short: "Manage configuration documents stored in ZooKeeper",
	Long: `zkconf stores configuration documents as flat children of a single
ZooKeeper znode while letting you address them with slash-separated paths.
A document called /includes/defaults.yaml is stored as the child node
"includes--defaults.yaml"; listings reconstruct the virtual directory tree
from those names.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	// Errors are printed by Execute so quiet mode can suppress them while
	// keeping exit codes intact.
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(logging.LevelFromVerbosity(rootVerbosity), os.Stderr)
		if rootNoColor || rootQuiet {
			text.DisableColors()
		}
	},
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the build-time version.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "zkconf version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if !rootQuiet {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(getExitCode(err))
}

// operationalError tags failures that happened while performing a valid
// command, as opposed to Cobra's own usage errors.
type operationalError struct {
	err error
}

// Error returns the underlying message.
func (e *operationalError) Error() string {
	return e.err.Error()
}

// Unwrap exposes the underlying error to errors.As chains.
func (e *operationalError) Unwrap() error {
	return e.err
}

// operational wraps a command failure for exit-code mapping. nil passes
// through so RunE bodies can return it unconditionally.
func operational(err error) error {
	if err == nil {
		return nil
	}
	return &operationalError{err: err}
}

// getExitCode maps the error taxonomy onto exit codes.
func getExitCode(err error) int {
	// A delete blocked by structural children is a usage-level condition:
	// the user is told to remove the children with another tool first.
	var notEmpty *store.NotEmptyError
	if errors.As(err, &notEmpty) {
		return ExitCodeUsage
	}

	var connErr *store.ConnectionError
	var missingRoot *store.MissingRootError
	var notFound *store.NotFoundError
	var collision *vpath.CollisionError
	var declined *cli.UserDeclinedError
	if errors.As(err, &connErr) || errors.As(err, &missingRoot) ||
		errors.As(err, &notFound) || errors.As(err, &collision) ||
		errors.As(err, &declined) {
		return ExitCodeOperational
	}

	var opErr *operationalError
	if errors.As(err, &opErr) {
		return ExitCodeOperational
	}

	// Anything else came from Cobra itself: unknown command, bad flags.
	return ExitCodeUsage
}

func init() {
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.PersistentFlags().StringVar(&rootServer, "server", "", fmt.Sprintf("ZooKeeper quorum address, comma-separated (default from settings, %s)", config.DefaultServer))
	rootCmd.PersistentFlags().StringVar(&rootZNode, "znode", "", fmt.Sprintf("Root znode holding all documents (default from settings, %s)", config.DefaultZNode))
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", config.DefaultPathOrPanic(), "Settings directory")
	rootCmd.PersistentFlags().CountVarP(&rootVerbosity, "verbose", "v", "Increase log verbosity (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&rootQuiet, "quiet", "q", false, "Suppress human-readable messages, keep exit codes")
	rootCmd.PersistentFlags().BoolVar(&rootNoColor, "no-color", false, "Disable colored output")
}
