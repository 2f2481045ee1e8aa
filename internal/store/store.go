package store

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/go-zookeeper/zk"

	"zkconf/internal/vpath"
	"zkconf/pkg/logging"
)

// DefaultSessionTimeout bounds both the ZooKeeper session and how long Open
// waits for the initial connection.
const DefaultSessionTimeout = 10 * time.Second

// Conn is the slice of the ZooKeeper client API the store consumes.
// *zk.Conn satisfies it; tests substitute an in-memory fake.
type Conn interface {
	Children(path string) ([]string, *zk.Stat, error)
	Get(path string) ([]byte, *zk.Stat, error)
	Set(path string, data []byte, version int32) (*zk.Stat, error)
	Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error)
	Exists(path string) (bool, *zk.Stat, error)
	Delete(path string, version int32) error
	Close()
}

// Options configures a session against one quorum and one root znode.
type Options struct {
	// Servers is the quorum address list, e.g. ["zk1:2181", "zk2:2181"].
	Servers []string
	// RootZNode is the parent node all documents live directly beneath.
	RootZNode string
	// SessionTimeout falls back to DefaultSessionTimeout when zero.
	SessionTimeout time.Duration
}

// Entry describes one stored document for long listings.
type Entry struct {
	// FlatName is the raw child name under the root znode.
	FlatName string
	// Size is the stored content length in bytes.
	Size int
	// Version is ZooKeeper's data version counter.
	Version int32
	// Modified is the node's last modification time.
	Modified time.Time
}

// Store performs document operations against the flat children of one root
// znode. It owns the connection for the duration of a command invocation.
type Store struct {
	conn Conn
	root string
}

// Open connects to the quorum, waits for a live session, and verifies the
// root znode exists. The root is never created here.
func Open(ctx context.Context, opts Options) (*Store, error) {
	timeout := opts.SessionTimeout
	if timeout <= 0 {
		timeout = DefaultSessionTimeout
	}

	logging.Debug("store", "Connecting to %v (session timeout %s)", opts.Servers, timeout)
	conn, events, err := zk.Connect(opts.Servers, timeout,
		zk.WithLogger(logging.Printf{Subsystem: "zk"}),
		zk.WithLogInfo(false))
	if err != nil {
		return nil, &ConnectionError{Servers: opts.Servers, Reason: err}
	}

	if err := waitForSession(ctx, events, timeout); err != nil {
		conn.Close()
		return nil, &ConnectionError{Servers: opts.Servers, Reason: err}
	}

	s, err := New(conn, opts.RootZNode)
	if err != nil {
		conn.Close()
		return nil, err
	}
	logging.Debug("store", "Session established, root znode %s present", opts.RootZNode)
	return s, nil
}

// New wraps an already-connected client, verifying the root znode exists.
func New(conn Conn, rootZNode string) (*Store, error) {
	ok, _, err := conn.Exists(rootZNode)
	if err != nil {
		return nil, &ConnectionError{Servers: nil, Reason: err}
	}
	if !ok {
		return nil, &MissingRootError{ZNode: rootZNode}
	}
	return &Store{conn: conn, root: rootZNode}, nil
}

// waitForSession blocks until the client reports a live session, the
// context is done, or the timeout elapses.
func waitForSession(ctx context.Context, events <-chan zk.Event, timeout time.Duration) error {
	deadline := time.NewTimer(timeout)
	defer deadline.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return errors.New("connection closed before a session was established")
			}
			switch ev.State {
			case zk.StateHasSession:
				return nil
			case zk.StateAuthFailed:
				return errors.New("authentication failed")
			}
		case <-deadline.C:
			return errors.New("timed out waiting for a session")
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

// Close tears the session down. Safe to call after a failed operation.
func (s *Store) Close() {
	s.conn.Close()
}

func (s *Store) nodePath(flat string) string {
	return s.root + "/" + flat
}

// List returns every flat document name under the root znode, sorted
// lexicographically. ZooKeeper does not guarantee child order, so sorting
// here is what makes listings and tree rendering deterministic.
func (s *Store) List() ([]string, error) {
	children, _, err := s.conn.Children(s.root)
	if err != nil {
		if errors.Is(err, zk.ErrNoNode) {
			return nil, &MissingRootError{ZNode: s.root}
		}
		return nil, err
	}
	sort.Strings(children)
	return children, nil
}

// ListEntries returns the sorted flat names together with per-node stat
// metadata for long listings.
func (s *Store) ListEntries() ([]Entry, error) {
	names, err := s.List()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(names))
	for _, name := range names {
		ok, stat, err := s.conn.Exists(s.nodePath(name))
		if err != nil {
			return nil, err
		}
		if !ok {
			// Deleted between the listing and the stat; skip it.
			continue
		}
		entries = append(entries, Entry{
			FlatName: name,
			Size:     int(stat.DataLength),
			Version:  stat.Version,
			Modified: time.UnixMilli(stat.Mtime),
		})
	}
	return entries, nil
}

// Get returns the raw content of one document.
func (s *Store) Get(flat string) ([]byte, error) {
	data, _, err := s.conn.Get(s.nodePath(flat))
	if err != nil {
		if errors.Is(err, zk.ErrNoNode) {
			return nil, &NotFoundError{Path: vpath.DecodeFlat(flat).String()}
		}
		return nil, err
	}
	return data, nil
}

// Put creates or overwrites one document. The write is refused when the
// name is already in use as a virtual directory by other documents.
func (s *Store) Put(flat string, data []byte) error {
	siblings, err := s.List()
	if err != nil {
		return err
	}
	if err := vpath.CheckCollision(flat, siblings); err != nil {
		return err
	}

	path := s.nodePath(flat)
	ok, _, err := s.conn.Exists(path)
	if err != nil {
		return err
	}
	if ok {
		_, err = s.conn.Set(path, data, -1)
		return err
	}

	_, err = s.conn.Create(path, data, 0, zk.WorldACL(zk.PermAll))
	if errors.Is(err, zk.ErrNodeExists) {
		// Created concurrently since the Exists check; overwrite.
		_, err = s.conn.Set(path, data, -1)
	}
	return err
}

// Delete removes one document. Deleting an absent document is a no-op
// success, so the default delete path is idempotent for scripts.
func (s *Store) Delete(flat string) error {
	err := s.conn.Delete(s.nodePath(flat), -1)
	switch {
	case err == nil, errors.Is(err, zk.ErrNoNode):
		return nil
	case errors.Is(err, zk.ErrNotEmpty):
		return &NotEmptyError{Path: vpath.DecodeFlat(flat).String()}
	default:
		return err
	}
}

// Copy duplicates a document under a new name, subject to the same
// collision guard as any other write.
func (s *Store) Copy(src, dst string) error {
	data, err := s.Get(src)
	if err != nil {
		return err
	}
	return s.Put(dst, data)
}

// Move copies the document and then deletes the source. The two steps are
// not atomic: a failure after the write leaves both names present, which is
// recoverable by hand and loses no data.
func (s *Store) Move(src, dst string) error {
	if err := s.Copy(src, dst); err != nil {
		return err
	}
	return s.Delete(src)
}
