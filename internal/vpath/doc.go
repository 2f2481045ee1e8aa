// Package vpath maps user-facing virtual paths onto the flat node names
// used beneath the configuration znode.
//
// Documents are addressed like files in a directory tree ("includes/defaults.yaml")
// but ZooKeeper stores every document as a single direct child of one parent
// node. The mapping joins path segments with a reserved separator token, so
// the virtual hierarchy exists purely by naming convention. The package also
// enforces the one invariant that convention needs: a document must not be
// written over a name that other documents already use as a virtual directory.
package vpath
