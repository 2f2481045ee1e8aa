package vpath

import (
	"fmt"
	"strings"
)

// CollisionError reports a write that would shadow an implied virtual
// directory: some existing document lives "underneath" the candidate name,
// so the candidate already appears as a directory in listings.
type CollisionError struct {
	// Path is the virtual path that was refused.
	Path string
	// Existing is one of the flat names nested beneath it.
	Existing string
}

// Error returns a user-facing message naming the conflicting document.
func (e *CollisionError) Error() string {
	return fmt.Sprintf("%s is a virtual directory (for example %s is stored beneath it) and cannot be written as a document", e.Path, e.Existing)
}

// Is allows errors.Is() to match any CollisionError.
func (e *CollisionError) Is(target error) bool {
	_, ok := target.(*CollisionError)
	return ok
}

// CheckCollision refuses a candidate flat name when any sibling begins with
// the candidate followed by the separator token. Overwriting an identical
// name is allowed, as is nesting new documents beneath an existing plain
// document — ZooKeeper has no directories, so only the file-over-directory
// direction is ambiguous.
func CheckCollision(candidate string, siblings []string) error {
	prefix := candidate + Separator
	for _, sibling := range siblings {
		if strings.HasPrefix(sibling, prefix) {
			return &CollisionError{
				Path:     DecodeFlat(candidate).String(),
				Existing: DecodeFlat(sibling).String(),
			}
		}
	}
	return nil
}
