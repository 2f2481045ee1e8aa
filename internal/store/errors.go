package store

import (
	"fmt"
	"strings"
)

// ConnectionError indicates the ZooKeeper quorum could not be reached or no
// session was established before the deadline.
type ConnectionError struct {
	// Servers is the quorum address list that was tried.
	Servers []string
	// Reason is the underlying error, when the client reported one.
	Reason error
}

// Error returns a user-friendly message naming the quorum.
func (e *ConnectionError) Error() string {
	msg := fmt.Sprintf("cannot connect to ZooKeeper at %s", strings.Join(e.Servers, ","))
	if e.Reason != nil {
		msg += ": " + e.Reason.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *ConnectionError) Unwrap() error {
	return e.Reason
}

// Is allows errors.Is() to match any ConnectionError.
func (e *ConnectionError) Is(target error) bool {
	_, ok := target.(*ConnectionError)
	return ok
}

// MissingRootError indicates the configured root znode does not exist. The
// root is never created implicitly; provisioning it is an operator action.
type MissingRootError struct {
	// ZNode is the configured root path.
	ZNode string
}

// Error returns a message with the expected remedy.
func (e *MissingRootError) Error() string {
	return fmt.Sprintf("configuration znode %s does not exist; create it before using this tool", e.ZNode)
}

// Is allows errors.Is() to match any MissingRootError.
func (e *MissingRootError) Is(target error) bool {
	_, ok := target.(*MissingRootError)
	return ok
}

// NotFoundError indicates the requested document is absent.
type NotFoundError struct {
	// Path is the virtual path of the missing document.
	Path string
}

// Error returns the missing document's virtual path.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no such document: %s", e.Path)
}

// Is allows errors.Is() to match any NotFoundError.
func (e *NotFoundError) Is(target error) bool {
	_, ok := target.(*NotFoundError)
	return ok
}

// NotEmptyError indicates a delete hit a node that has structural ZooKeeper
// children. Those children were created outside this tool's flat naming
// convention and must be removed with another tool first.
type NotEmptyError struct {
	// Path is the virtual path of the refused document.
	Path string
}

// Error returns a message instructing the user how to proceed.
func (e *NotEmptyError) Error() string {
	return fmt.Sprintf("%s has child znodes; remove them with a ZooKeeper client before deleting it here", e.Path)
}

// Is allows errors.Is() to match any NotEmptyError.
func (e *NotEmptyError) Is(target error) bool {
	_, ok := target.(*NotEmptyError)
	return ok
}
