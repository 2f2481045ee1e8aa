package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/jedib0t/go-pretty/v6/text"

	"zkconf/internal/config"
	"zkconf/internal/store"
)

// invocation carries the settings resolved for one command run: the loaded
// settings file with flag overrides applied. Constructed once per run and
// passed along explicitly; there is no ambient connection state.
type invocation struct {
	settings config.Settings
	quiet    bool
}

// newInvocation loads the settings file and applies flag overrides.
func newInvocation() (*invocation, error) {
	settings, err := config.Load(rootConfigPath)
	if err != nil {
		return nil, err
	}
	if rootServer != "" {
		settings.Server = rootServer
	}
	if rootZNode != "" {
		settings.ZNode = rootZNode
	}
	return &invocation{settings: settings, quiet: rootQuiet}, nil
}

// openStore establishes the ZooKeeper session, with a progress spinner on
// stderr unless quiet mode is enabled.
func (inv *invocation) openStore(ctx context.Context) (*store.Store, error) {
	var s *spinner.Spinner
	if !inv.quiet {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
		s.Suffix = fmt.Sprintf(" connecting to %s...", inv.settings.Server)
		s.Start()
	}

	st, err := store.Open(ctx, store.Options{
		Servers:        inv.settings.Servers(),
		RootZNode:      inv.settings.ZNode,
		SessionTimeout: time.Duration(inv.settings.SessionTimeout),
	})

	if s != nil {
		s.Stop()
	}
	return st, err
}

// notice prints a human-facing message unless quiet mode is enabled.
func (inv *invocation) notice(format string, args ...interface{}) {
	if inv.quiet {
		return
	}
	fmt.Fprintln(os.Stdout, fmt.Sprintf(format, args...))
}

// emptyNotice prints a yellow "nothing here" style message unless quiet.
func (inv *invocation) emptyNotice(message string) {
	if inv.quiet {
		return
	}
	fmt.Fprintln(os.Stdout, text.FgYellow.Sprint(message))
}
