package cli

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"zkconf/pkg/logging"
)

const fallbackEditor = "vi"

// editorCommand resolves the user's editor: $VISUAL, then $EDITOR, then vi.
// The value may carry arguments ("code --wait"), split on whitespace.
func editorCommand() []string {
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if value := os.Getenv(env); strings.TrimSpace(value) != "" {
			return strings.Fields(value)
		}
	}
	return []string{fallbackEditor}
}

// Edit writes content to a temp file, runs the user's editor on it, and
// reads the result back. The temp file keeps the document's extension so
// editors pick up syntax highlighting. The second return value reports
// whether the content actually changed.
func Edit(name string, content []byte) ([]byte, bool, error) {
	pattern := "zkconf-*" + filepath.Ext(name)
	tmp, err := os.CreateTemp("", pattern)
	if err != nil {
		return nil, false, fmt.Errorf("cannot create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		return nil, false, fmt.Errorf("cannot write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, false, err
	}

	argv := append(editorCommand(), tmpPath)
	logging.Debug("editor", "Running %v", argv)

	cmd := exec.Command(argv[0], argv[1:]...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return nil, false, fmt.Errorf("editor %s failed: %w", argv[0], err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, false, fmt.Errorf("cannot read edited file back: %w", err)
	}
	return edited, !bytes.Equal(content, edited), nil
}
