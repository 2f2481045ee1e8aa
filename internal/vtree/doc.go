// Package vtree reconstructs the virtual directory tree implied by a flat
// set of encoded node names and renders it as a box-drawing diagram.
//
// The tree is rebuilt from scratch for every listing; it is derived,
// read-only state and never the source of truth.
package vtree
