package store

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/go-zookeeper/zk"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zkconf/internal/vpath"
)

const testRoot = "/configuration"

// fakeConn is an in-memory stand-in for the ZooKeeper client. Nodes are
// keyed by full znode path; a path maps to its content.
type fakeConn struct {
	nodes    map[string][]byte
	versions map[string]int32

	// deleteErr, when set, is returned by Delete to simulate a crash or a
	// session loss between a move's write and its source delete.
	deleteErr error
	closed    bool
}

func newFakeConn(docs map[string]string) *fakeConn {
	c := &fakeConn{
		nodes:    map[string][]byte{testRoot: {}},
		versions: map[string]int32{},
	}
	for name, content := range docs {
		c.nodes[testRoot+"/"+name] = []byte(content)
	}
	return c
}

func (c *fakeConn) hasStructuralChildren(path string) bool {
	prefix := path + "/"
	for p := range c.nodes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

func (c *fakeConn) stat(path string) *zk.Stat {
	return &zk.Stat{
		Version:    c.versions[path],
		DataLength: int32(len(c.nodes[path])),
		Mtime:      time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC).UnixMilli(),
	}
}

func (c *fakeConn) Children(path string) ([]string, *zk.Stat, error) {
	if _, ok := c.nodes[path]; !ok {
		return nil, nil, zk.ErrNoNode
	}
	var children []string
	prefix := path + "/"
	for p := range c.nodes {
		if !strings.HasPrefix(p, prefix) {
			continue
		}
		local := strings.TrimPrefix(p, prefix)
		if !strings.Contains(local, "/") {
			children = append(children, local)
		}
	}
	return children, c.stat(path), nil
}

func (c *fakeConn) Get(path string) ([]byte, *zk.Stat, error) {
	data, ok := c.nodes[path]
	if !ok {
		return nil, nil, zk.ErrNoNode
	}
	return data, c.stat(path), nil
}

func (c *fakeConn) Set(path string, data []byte, version int32) (*zk.Stat, error) {
	if _, ok := c.nodes[path]; !ok {
		return nil, zk.ErrNoNode
	}
	c.nodes[path] = data
	c.versions[path]++
	return c.stat(path), nil
}

func (c *fakeConn) Create(path string, data []byte, flags int32, acl []zk.ACL) (string, error) {
	if _, ok := c.nodes[path]; ok {
		return "", zk.ErrNodeExists
	}
	parent := path[:strings.LastIndex(path, "/")]
	if _, ok := c.nodes[parent]; !ok {
		return "", zk.ErrNoNode
	}
	c.nodes[path] = data
	return path, nil
}

func (c *fakeConn) Exists(path string) (bool, *zk.Stat, error) {
	if _, ok := c.nodes[path]; !ok {
		return false, nil, nil
	}
	return true, c.stat(path), nil
}

func (c *fakeConn) Delete(path string, version int32) error {
	if c.deleteErr != nil {
		return c.deleteErr
	}
	if _, ok := c.nodes[path]; !ok {
		return zk.ErrNoNode
	}
	if c.hasStructuralChildren(path) {
		return zk.ErrNotEmpty
	}
	delete(c.nodes, path)
	return nil
}

func (c *fakeConn) Close() {
	c.closed = true
}

func newTestStore(t *testing.T, docs map[string]string) (*Store, *fakeConn) {
	t.Helper()
	conn := newFakeConn(docs)
	s, err := New(conn, testRoot)
	require.NoError(t, err)
	return s, conn
}

func TestNewMissingRoot(t *testing.T) {
	conn := &fakeConn{nodes: map[string][]byte{}, versions: map[string]int32{}}
	_, err := New(conn, testRoot)

	var missing *MissingRootError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, testRoot, missing.ZNode)
}

func TestListSortsChildren(t *testing.T) {
	s, _ := newTestStore(t, map[string]string{"b": "2", "a": "1"})

	names, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestListEmpty(t *testing.T) {
	s, _ := newTestStore(t, nil)

	names, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestGet(t *testing.T) {
	s, _ := newTestStore(t, map[string]string{"base.yaml": "key: value"})

	data, err := s.Get("base.yaml")
	require.NoError(t, err)
	assert.Equal(t, []byte("key: value"), data)
}

func TestGetMissing(t *testing.T) {
	s, _ := newTestStore(t, nil)

	_, err := s.Get("includes--defaults.yaml")
	var notFound *NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "/includes/defaults.yaml", notFound.Path)
}

func TestPutCreatesAndOverwrites(t *testing.T) {
	s, conn := newTestStore(t, nil)

	require.NoError(t, s.Put("base.yaml", []byte("v1")))
	assert.Equal(t, []byte("v1"), conn.nodes[testRoot+"/base.yaml"])

	require.NoError(t, s.Put("base.yaml", []byte("v2")))
	assert.Equal(t, []byte("v2"), conn.nodes[testRoot+"/base.yaml"])
}

func TestPutRefusesVirtualDirCollision(t *testing.T) {
	s, conn := newTestStore(t, map[string]string{"a--b": "nested"})

	err := s.Put("a", []byte("shadow"))
	var collision *vpath.CollisionError
	require.ErrorAs(t, err, &collision)
	assert.NotContains(t, conn.nodes, testRoot+"/a")

	// A sibling under the same implied directory is not a collision.
	require.NoError(t, s.Put("a--c", []byte("sibling")))
}

func TestDeleteIsIdempotent(t *testing.T) {
	s, _ := newTestStore(t, map[string]string{"base.yaml": "x"})

	require.NoError(t, s.Delete("base.yaml"))
	require.NoError(t, s.Delete("base.yaml"))
}

func TestDeleteWithStructuralChildren(t *testing.T) {
	s, conn := newTestStore(t, map[string]string{"base.yaml": "x"})
	// A child created outside the flat naming convention.
	conn.nodes[testRoot+"/base.yaml/lock"] = []byte{}

	err := s.Delete("base.yaml")
	var notEmpty *NotEmptyError
	require.ErrorAs(t, err, &notEmpty)
	assert.Equal(t, "/base.yaml", notEmpty.Path)
}

func TestCopy(t *testing.T) {
	s, conn := newTestStore(t, map[string]string{"base.yaml": "content"})

	require.NoError(t, s.Copy("base.yaml", "backup--base.yaml"))
	assert.Equal(t, []byte("content"), conn.nodes[testRoot+"/backup--base.yaml"])
	assert.Contains(t, conn.nodes, testRoot+"/base.yaml")
}

func TestCopyMissingSource(t *testing.T) {
	s, _ := newTestStore(t, nil)

	err := s.Copy("missing", "target")
	assert.True(t, errors.Is(err, &NotFoundError{}))
}

func TestMove(t *testing.T) {
	s, conn := newTestStore(t, map[string]string{"old.yaml": "content"})

	require.NoError(t, s.Move("old.yaml", "new.yaml"))
	assert.Equal(t, []byte("content"), conn.nodes[testRoot+"/new.yaml"])
	assert.NotContains(t, conn.nodes, testRoot+"/old.yaml")
}

func TestMoveIsNotAtomic(t *testing.T) {
	// A failure between the target write and the source delete leaves both
	// documents present. That is the documented behavior, not data loss.
	s, conn := newTestStore(t, map[string]string{"old.yaml": "content"})
	conn.deleteErr = errors.New("session lost")

	err := s.Move("old.yaml", "new.yaml")
	require.Error(t, err)
	assert.Contains(t, conn.nodes, testRoot+"/old.yaml")
	assert.Contains(t, conn.nodes, testRoot+"/new.yaml")
}

func TestListEntries(t *testing.T) {
	s, _ := newTestStore(t, map[string]string{
		"b.yaml": "bb",
		"a.yaml": "a",
	})

	entries, err := s.ListEntries()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.yaml", entries[0].FlatName)
	assert.Equal(t, 1, entries[0].Size)
	assert.Equal(t, "b.yaml", entries[1].FlatName)
	assert.Equal(t, 2, entries[1].Size)
	assert.Equal(t, 2024, entries[0].Modified.UTC().Year())
}

func TestCloseClosesConnection(t *testing.T) {
	s, conn := newTestStore(t, nil)
	s.Close()
	assert.True(t, conn.closed)
}
