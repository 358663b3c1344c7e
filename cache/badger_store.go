package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/hashicorp/go-uuid"
)

// Key layout:
//
//	n:<storage>\x00<path>               JSON encoded Node
//	c:<storage>\x00<parent>\x00<path>   child index, value is the child path
//	s:node-id                           id sequence
//
// <parent> is the decimal parent id, or "-" for root level nodes.
const (
	prefixNode  = "n:"
	prefixChild = "c:"
	keySequence = "s:node-id"

	sequenceBandwidth = 100
)

// BadgerOptions configures OpenBadger.
type BadgerOptions struct {
	Dir      string
	InMemory bool
}

// BadgerStore keeps nodes in an embedded badger database.
type BadgerStore struct {
	db  *badger.DB
	seq *badger.Sequence
}

func OpenBadger(opts BadgerOptions) (*BadgerStore, error) {
	var bopts badger.Options
	if opts.InMemory {
		bopts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if opts.Dir == "" {
			return nil, errors.New("badger cache requires a directory")
		}
		bopts = badger.DefaultOptions(opts.Dir)
	}
	bopts = bopts.WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(bopts)
	if err != nil {
		return nil, fmt.Errorf("open badger cache: %w", err)
	}

	seq, err := db.GetSequence([]byte(keySequence), sequenceBandwidth)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open badger id sequence: %w", err)
	}

	return &BadgerStore{db: db, seq: seq}, nil
}

func nodeKeyBytes(storageKey, path string) []byte {
	return []byte(prefixNode + storageKey + "\x00" + path)
}

func nodePrefix(storageKey string) []byte {
	return []byte(prefixNode + storageKey + "\x00")
}

func childPrefix(storageKey string, parentID *uint) []byte {
	parent := "-"
	if parentID != nil {
		parent = strconv.FormatUint(uint64(*parentID), 10)
	}
	return []byte(prefixChild + storageKey + "\x00" + parent + "\x00")
}

func (s *BadgerStore) GetNode(ctx context.Context, storageKey, path string) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var n *Node
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		n, err = getNode(txn, nodeKeyBytes(storageKey, path))
		return err
	})
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (s *BadgerStore) CreateNode(ctx context.Context, node *Node) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if node.UUID == "" {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return err
		}
		node.UUID = id
	}

	next, err := s.seq.Next()
	if err != nil {
		return err
	}
	now := time.Now()
	stored := *node
	stored.ID = uint(next + 1)
	stored.Parent = nil
	stored.CreatedAt = now
	stored.UpdatedAt = now

	value, err := json.Marshal(&stored)
	if err != nil {
		return err
	}

	for i := 0; i < minTxRetries; i++ {
		err = s.db.Update(func(txn *badger.Txn) error {
			key := nodeKeyBytes(stored.StorageKey, stored.Path)
			_, err := txn.Get(key)
			if err == nil {
				return ErrNodeExists
			}
			if !errors.Is(err, badger.ErrKeyNotFound) {
				return err
			}

			if err := txn.Set(key, value); err != nil {
				return err
			}
			child := append(childPrefix(stored.StorageKey, stored.ParentID), stored.Path...)
			return txn.Set(child, []byte(stored.Path))
		})
		if !errors.Is(err, badger.ErrConflict) {
			break
		}
	}
	if err != nil {
		return err
	}

	*node = stored
	return nil
}

func (s *BadgerStore) ListChildren(ctx context.Context, storageKey string, parentID *uint) ([]Node, error) {
	var nodes []Node
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = childPrefix(storageKey, parentID)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var path string
			err := it.Item().Value(func(val []byte) error {
				path = string(val)
				return nil
			})
			if err != nil {
				return err
			}
			n, err := getNode(txn, nodeKeyBytes(storageKey, path))
			if err != nil {
				return err
			}
			nodes = append(nodes, *n)
		}
		return nil
	})
	return nodes, err
}

func (s *BadgerStore) ListNodes(ctx context.Context, storageKey string) ([]Node, error) {
	var nodes []Node
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		opts.Prefix = nodePrefix(storageKey)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var n Node
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &n)
			})
			if err != nil {
				return err
			}
			nodes = append(nodes, n)
		}
		return nil
	})
	return nodes, err
}

func (s *BadgerStore) Close() error {
	seqErr := s.seq.Release()
	if err := s.db.Close(); err != nil {
		return err
	}
	return seqErr
}

func getNode(txn *badger.Txn, key []byte) (*Node, error) {
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}

	var n Node
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &n)
	})
	if err != nil {
		return nil, err
	}
	return &n, nil
}

var _ Store = (*BadgerStore)(nil)
