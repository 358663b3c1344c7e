// Package cache holds the local copy of remote tree structure: one Node per directory or file, linked to its
// parent directory.
package cache

import (
	"context"
	"errors"
)

var (
	// ErrNodeNotFound is returned by GetNode when no node has the requested natural key.
	ErrNodeNotFound = errors.New("cached node not found")
	// ErrNodeExists is returned by CreateNode when the natural key is already taken.
	ErrNodeExists = errors.New("cached node already exists")
)

// Store persists cached nodes. Implementations must be safe for concurrent use.
type Store interface {
	// GetNode returns the node for (storageKey, path) or ErrNodeNotFound.
	GetNode(ctx context.Context, storageKey, path string) (*Node, error)

	// CreateNode inserts node, filling in its ID, UUID and timestamps. ErrNodeExists when (StorageKey, Path) is
	// taken.
	CreateNode(ctx context.Context, node *Node) error

	// ListChildren returns the direct children of parentID, or the root level nodes when parentID is nil, sorted by
	// path.
	ListChildren(ctx context.Context, storageKey string, parentID *uint) ([]Node, error)

	// ListNodes returns every node of storageKey sorted by path.
	ListNodes(ctx context.Context, storageKey string) ([]Node, error)

	Close() error
}

// GetOrCreate looks node up by its natural key and creates it only when the lookup reports ErrNodeNotFound. Any
// other lookup error is returned as is. created is false when an existing node is returned.
func GetOrCreate(ctx context.Context, store Store, node *Node) (existing *Node, created bool, err error) {
	found, err := store.GetNode(ctx, node.StorageKey, node.Path)
	switch {
	case err == nil:
		return found, false, nil
	case !errors.Is(err, ErrNodeNotFound):
		return nil, false, err
	}

	err = store.CreateNode(ctx, node)
	if errors.Is(err, ErrNodeExists) {
		// lost a race with another writer
		found, err = store.GetNode(ctx, node.StorageKey, node.Path)
		return found, false, err
	}
	if err != nil {
		return nil, false, err
	}
	return node, true, nil
}
