// Package treesync mirrors the structure of a remote tree into a cache.Store from one raw listing.
package treesync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/apex/log"

	"github.com/c2fo/netstorage"
	"github.com/c2fo/netstorage/cache"
	"github.com/c2fo/netstorage/listing"
	"github.com/c2fo/netstorage/utils"
)

// ErrNotAFile is returned by OpenNode for directory nodes.
var ErrNotAFile = errors.New("cached node is not a file")

// Result summarises one sync pass.
type Result struct {
	StorageKey  string
	Root        string
	Directories int
	Files       int
	Created     int
	Existing    int
	Elapsed     time.Duration
}

// Builder upserts a cache.Node for every directory and file of a remote listing. Passes over the same storage key
// are serialized; passes over different keys may run concurrently.
type Builder struct {
	lister netstorage.Lister
	store  cache.Store

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewBuilder(lister netstorage.Lister, store cache.Store) *Builder {
	return &Builder{
		lister: lister,
		store:  store,
		locks:  make(map[string]*sync.Mutex),
	}
}

func (b *Builder) lock(storageKey string) func() {
	b.mu.Lock()
	l, ok := b.locks[storageKey]
	if !ok {
		l = &sync.Mutex{}
		b.locks[storageKey] = l
	}
	b.mu.Unlock()

	l.Lock()
	return l.Unlock
}

// Sync lists rootPath (recursively when asked) and records every entry under storageKey. Entries already cached
// are left alone and nothing is ever removed. Entries listed directly under rootPath get no parent; any other
// entry needs its directory to be cached already, either from an earlier pass or from earlier in this listing.
func (b *Builder) Sync(ctx context.Context, storageKey, rootPath string, recursive bool) (*Result, error) {
	unlock := b.lock(storageKey)
	defer unlock()

	start := time.Now()
	root := utils.NormPath(rootPath)
	logger := log.WithFields(log.Fields{"storage": storageKey, "root": root, "recursive": recursive})

	if err := b.lister.EnsureConnected(ctx); err != nil {
		return nil, err
	}
	lines, err := b.lister.List(rootPath, recursive)
	if err != nil {
		return nil, err
	}

	res := &Result{StorageKey: storageKey, Root: root}
	parents := map[string]*uint{}

	for _, e := range listing.Entries(lines, rootPath) {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		parentID, err := b.parentOf(ctx, storageKey, root, e, parents)
		if err != nil {
			return res, err
		}

		var node *cache.Node
		switch e.Kind {
		case listing.Directory:
			node = cache.NewDirectory(storageKey, e.Path, e.Name, parentID)
			res.Directories++
		case listing.File:
			node = cache.NewFile(storageKey, e.Path, e.Name, parentID)
			res.Files++
		default:
			continue
		}

		stored, created, err := cache.GetOrCreate(ctx, b.store, node)
		if err != nil {
			return res, fmt.Errorf("cache %q: %w", e.Path, err)
		}
		if created {
			res.Created++
			logger.WithFields(log.Fields{"path": stored.Path, "kind": stored.Kind}).Debug("cached node")
		} else {
			res.Existing++
		}
		if stored.IsDir() {
			parents[stored.Path] = utils.Ptr(stored.ID)
		}
	}

	res.Elapsed = time.Since(start)
	logger.WithFields(log.Fields{
		"directories": res.Directories,
		"files":       res.Files,
		"created":     res.Created,
		"existing":    res.Existing,
		"elapsed":     res.Elapsed,
	}).Info("sync complete")
	return res, nil
}

func (b *Builder) parentOf(ctx context.Context, storageKey, root string, e listing.Entry, seen map[string]*uint) (*uint, error) {
	if dirKey(e.Dir) == "" || dirKey(e.Dir) == dirKey(root) {
		return nil, nil
	}
	if id, ok := seen[e.Dir]; ok {
		return id, nil
	}

	parent, err := b.store.GetNode(ctx, storageKey, e.Dir)
	if errors.Is(err, cache.ErrNodeNotFound) {
		return nil, &netstorage.ConsistencyError{StorageKey: storageKey, Path: e.Path, Parent: e.Dir}
	}
	if err != nil {
		return nil, fmt.Errorf("cache %q: %w", e.Dir, err)
	}
	if !parent.IsDir() {
		return nil, &netstorage.ConsistencyError{StorageKey: storageKey, Path: e.Path, Parent: e.Dir}
	}

	seen[e.Dir] = utils.Ptr(parent.ID)
	return seen[e.Dir], nil
}

// dirKey maps "." to "" so that a ".:" header of a listing of the login directory matches an empty root.
func dirKey(dir string) string {
	if dir == "." {
		return ""
	}
	return dir
}

// OpenNode opens the remote file behind a cached file node.
func OpenNode(ctx context.Context, storage netstorage.Storage, node *cache.Node) (netstorage.File, error) {
	if !node.IsFile() {
		return nil, fmt.Errorf("%q: %w", node.Path, ErrNotAFile)
	}
	return storage.Open(ctx, node.Path)
}
