package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// UserDeclinedError indicates the user answered "no" to a confirmation
// prompt. The command is abandoned without touching the store.
type UserDeclinedError struct {
	// Action is the operation that was declined, for the final message.
	Action string
}

// Error names the declined action.
func (e *UserDeclinedError) Error() string {
	return fmt.Sprintf("aborted: %s", e.Action)
}

// Is allows errors.Is() to match any UserDeclinedError.
func (e *UserDeclinedError) Is(target error) bool {
	_, ok := target.(*UserDeclinedError)
	return ok
}

// Confirm asks a yes/no question and reads one line from in. Only "y" and
// "yes" (case-insensitive) count as consent; everything else, including an
// empty line or EOF, declines.
func Confirm(in io.Reader, out io.Writer, prompt string) (bool, error) {
	if _, err := fmt.Fprintf(out, "%s [y/N]: ", prompt); err != nil {
		return false, err
	}

	reader := bufio.NewReader(in)
	line, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
