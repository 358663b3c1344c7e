package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hashicorp/go-uuid"
)

type nodeKey struct {
	storageKey string
	path       string
}

// MemoryStore keeps nodes in process memory. Nothing survives Close.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID uint
	nodes  map[nodeKey]Node
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nodes: make(map[nodeKey]Node)}
}

func (s *MemoryStore) GetNode(ctx context.Context, storageKey, path string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.nodes[nodeKey{storageKey, path}]
	if !ok {
		return nil, ErrNodeNotFound
	}
	return &n, nil
}

func (s *MemoryStore) CreateNode(ctx context.Context, node *Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	k := nodeKey{node.StorageKey, node.Path}
	if _, ok := s.nodes[k]; ok {
		return ErrNodeExists
	}
	if node.UUID == "" {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return err
		}
		node.UUID = id
	}

	s.nextID++
	now := time.Now()
	node.ID = s.nextID
	node.CreatedAt = now
	node.UpdatedAt = now

	stored := *node
	stored.Parent = nil
	s.nodes[k] = stored
	return nil
}

func (s *MemoryStore) ListChildren(ctx context.Context, storageKey string, parentID *uint) ([]Node, error) {
	return s.filter(ctx, func(n Node) bool {
		if n.StorageKey != storageKey {
			return false
		}
		if parentID == nil {
			return n.ParentID == nil
		}
		return n.ParentID != nil && *n.ParentID == *parentID
	})
}

func (s *MemoryStore) ListNodes(ctx context.Context, storageKey string) ([]Node, error) {
	return s.filter(ctx, func(n Node) bool {
		return n.StorageKey == storageKey
	})
}

func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nodes = make(map[nodeKey]Node)
	return nil
}

func (s *MemoryStore) filter(ctx context.Context, keep func(Node) bool) ([]Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var nodes []Node
	for _, n := range s.nodes {
		if keep(n) {
			nodes = append(nodes, n)
		}
	}
	sortByPath(nodes)
	return nodes, nil
}

func sortByPath(nodes []Node) {
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].Path < nodes[j].Path
	})
}

var _ Store = (*MemoryStore)(nil)
