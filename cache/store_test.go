package cache

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"
)

type storeTestSuite struct {
	suite.Suite
	newStore func() (Store, error)
	store    Store
	ctx      context.Context
}

func (ts *storeTestSuite) SetupTest() {
	var err error
	ts.store, err = ts.newStore()
	ts.Require().NoError(err)
	ts.ctx = context.Background()
}

func (ts *storeTestSuite) TearDownTest() {
	ts.NoError(ts.store.Close())
}

func (ts *storeTestSuite) create(n *Node) *Node {
	ts.Require().NoError(ts.store.CreateNode(ts.ctx, n))
	return n
}

func (ts *storeTestSuite) TestCreateAndGet() {
	root := ts.create(NewDirectory("s1", "/data", "data", nil))
	ts.NotZero(root.ID)
	ts.Len(root.UUID, 36)
	ts.False(root.CreatedAt.IsZero())

	got, err := ts.store.GetNode(ts.ctx, "s1", "/data")
	ts.Require().NoError(err)
	ts.Equal(root.ID, got.ID)
	ts.Equal(root.UUID, got.UUID)
	ts.Equal(KindDirectory, got.Kind)
	ts.Equal("data", got.Name)
	ts.Nil(got.ParentID)

	file := ts.create(NewFile("s1", "/data/Report.PDF", "Report.PDF", &root.ID))
	got, err = ts.store.GetNode(ts.ctx, "s1", "/data/Report.PDF")
	ts.Require().NoError(err)
	ts.Equal(file.ID, got.ID)
	ts.Equal("Report", got.Name)
	ts.Equal("pdf", got.FileExt)
	ts.Require().NotNil(got.ParentID)
	ts.Equal(root.ID, *got.ParentID)
	ts.NotEqual(root.ID, file.ID)
}

func (ts *storeTestSuite) TestGetMissing() {
	_, err := ts.store.GetNode(ts.ctx, "s1", "/nope")
	ts.ErrorIs(err, ErrNodeNotFound)

	ts.create(NewDirectory("s1", "/data", "data", nil))
	_, err = ts.store.GetNode(ts.ctx, "s2", "/data")
	ts.ErrorIs(err, ErrNodeNotFound, "lookups are scoped by storage key")
}

func (ts *storeTestSuite) TestCreateDuplicate() {
	ts.create(NewDirectory("s1", "/data", "data", nil))
	err := ts.store.CreateNode(ts.ctx, NewDirectory("s1", "/data", "data", nil))
	ts.ErrorIs(err, ErrNodeExists)

	ts.NoError(ts.store.CreateNode(ts.ctx, NewDirectory("s2", "/data", "data", nil)), "same path, other storage")
}

func (ts *storeTestSuite) TestListChildren() {
	root := ts.create(NewDirectory("s1", "/data", "data", nil))
	sub := ts.create(NewDirectory("s1", "/data/sub", "sub", &root.ID))
	ts.create(NewFile("s1", "/data/b.txt", "b.txt", &root.ID))
	ts.create(NewFile("s1", "/data/a.txt", "a.txt", &root.ID))
	ts.create(NewFile("s1", "/data/sub/c.txt", "c.txt", &sub.ID))
	ts.create(NewDirectory("s2", "/other", "other", nil))

	children, err := ts.store.ListChildren(ts.ctx, "s1", &root.ID)
	ts.Require().NoError(err)
	ts.Equal([]string{"/data/a.txt", "/data/b.txt", "/data/sub"}, paths(children))

	children, err = ts.store.ListChildren(ts.ctx, "s1", &sub.ID)
	ts.Require().NoError(err)
	ts.Equal([]string{"/data/sub/c.txt"}, paths(children))

	roots, err := ts.store.ListChildren(ts.ctx, "s1", nil)
	ts.Require().NoError(err)
	ts.Equal([]string{"/data"}, paths(roots))

	children, err = ts.store.ListChildren(ts.ctx, "s2", &root.ID)
	ts.Require().NoError(err)
	ts.Empty(children)
}

func (ts *storeTestSuite) TestListNodes() {
	root := ts.create(NewDirectory("s1", "/data", "data", nil))
	ts.create(NewFile("s1", "/data/z.bin", "z.bin", &root.ID))
	ts.create(NewFile("s1", "/data/a.bin", "a.bin", &root.ID))
	ts.create(NewDirectory("s2", "/other", "other", nil))

	nodes, err := ts.store.ListNodes(ts.ctx, "s1")
	ts.Require().NoError(err)
	ts.Equal([]string{"/data", "/data/a.bin", "/data/z.bin"}, paths(nodes))

	nodes, err = ts.store.ListNodes(ts.ctx, "missing")
	ts.Require().NoError(err)
	ts.Empty(nodes)
}

func (ts *storeTestSuite) TestGetOrCreate() {
	first, created, err := GetOrCreate(ts.ctx, ts.store, NewDirectory("s1", "/data", "data", nil))
	ts.Require().NoError(err)
	ts.True(created)

	second, created, err := GetOrCreate(ts.ctx, ts.store, NewDirectory("s1", "/data", "data", nil))
	ts.Require().NoError(err)
	ts.False(created)
	ts.Equal(first.ID, second.ID)
	ts.Equal(first.UUID, second.UUID)

	nodes, err := ts.store.ListNodes(ts.ctx, "s1")
	ts.Require().NoError(err)
	ts.Len(nodes, 1)
}

func paths(nodes []Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.Path)
	}
	return out
}

func TestMemoryStore(t *testing.T) {
	suite.Run(t, &storeTestSuite{newStore: func() (Store, error) {
		return NewMemoryStore(), nil
	}})
}

func TestSqliteStore(t *testing.T) {
	suite.Run(t, &storeTestSuite{newStore: func() (Store, error) {
		return OpenGorm(GormOptions{Driver: DriverSqlite, DSN: "file::memory:", MaxOpenConns: 1})
	}})
}

func TestBadgerStore(t *testing.T) {
	suite.Run(t, &storeTestSuite{newStore: func() (Store, error) {
		return OpenBadger(BadgerOptions{InMemory: true})
	}})
}

func TestGetOrCreate_Concurrent(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	ids := make([]uint, 8)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			n, _, err := GetOrCreate(ctx, store, NewDirectory("s1", "/data", "data", nil))
			if err == nil {
				ids[i] = n.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		if id != ids[0] || id == 0 {
			t.Fatalf("expected one node, got ids %v", ids)
		}
	}
}
