// Package store wraps the ZooKeeper client with the flat-document model:
// every configuration document is one direct child of a single configured
// root znode, named by the vpath flat encoding.
//
// One command invocation opens one session, performs its operations, and
// closes. There is no retry layer; failures surface immediately as the
// typed errors in this package.
package store
