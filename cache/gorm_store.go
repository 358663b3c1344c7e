package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/apex/log"
	"github.com/hashicorp/go-uuid"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverSqlite = "sqlite"
	DriverMysql  = "mysql"

	minTxRetries = 3
)

// GormOptions configures OpenGorm.
type GormOptions struct {
	Driver string
	DSN    string
	// ConnectRetries is the number of connection attempts before giving up. Values below one mean one attempt.
	ConnectRetries int
	RetryDelay     time.Duration
	TxRetries      int
	// MaxOpenConns is applied to the pool when positive. An in-memory sqlite database needs exactly one.
	MaxOpenConns int
}

// GormStore keeps nodes in a relational database through gorm.
type GormStore struct {
	db        *gorm.DB
	txRetries int
}

// OpenGorm connects to the configured database, retrying failed connects, and migrates the nodes table.
func OpenGorm(opts GormOptions) (*GormStore, error) {
	var dialector gorm.Dialector
	switch opts.Driver {
	case DriverSqlite:
		dialector = sqlite.Open(opts.DSN)
	case DriverMysql:
		dialector = mysql.Open(opts.DSN)
	default:
		return nil, fmt.Errorf("unsupported cache driver %q", opts.Driver)
	}

	gormConfig := &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	retryCount := 1
	for {
		db, err = gorm.Open(dialector, gormConfig)
		if err == nil {
			break
		}
		if retryCount >= opts.ConnectRetries {
			return nil, fmt.Errorf("open %s cache: %w", opts.Driver, err)
		}
		log.WithFields(log.Fields{"driver": opts.Driver, "attempt": retryCount}).WithError(err).Warn("cache connect failed, retrying")
		retryCount++
		time.Sleep(opts.RetryDelay)
	}

	if opts.MaxOpenConns > 0 {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
	}

	return NewGormStore(db, opts.TxRetries)
}

// NewGormStore wraps an already open database and migrates the nodes table.
func NewGormStore(db *gorm.DB, txRetries int) (*GormStore, error) {
	if err := db.AutoMigrate(&Node{}); err != nil {
		return nil, fmt.Errorf("migrate cache: %w", err)
	}
	if txRetries < minTxRetries {
		txRetries = minTxRetries
	}
	return &GormStore{db: db, txRetries: txRetries}, nil
}

// DB returns the underlying gorm handle.
func (s *GormStore) DB() *gorm.DB {
	return s.db
}

func (s *GormStore) GetNode(ctx context.Context, storageKey, path string) (*Node, error) {
	var n Node
	err := s.db.WithContext(ctx).
		Where("storage_key = ? AND path = ?", storageKey, path).
		First(&n).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNodeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &n, nil
}

func (s *GormStore) CreateNode(ctx context.Context, node *Node) error {
	if node.UUID == "" {
		id, err := uuid.GenerateUUID()
		if err != nil {
			return err
		}
		node.UUID = id
	}

	return s.withTxRetry(s.db.WithContext(ctx), func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Node{}).
			Where("storage_key = ? AND path = ?", node.StorageKey, node.Path).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrNodeExists
		}

		err = tx.Create(node).Error
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrNodeExists
		}
		return err
	})
}

func (s *GormStore) ListChildren(ctx context.Context, storageKey string, parentID *uint) ([]Node, error) {
	var nodes []Node
	q := s.db.WithContext(ctx).Where("storage_key = ?", storageKey)
	if parentID == nil {
		q = q.Where("parent_id IS NULL")
	} else {
		q = q.Where("parent_id = ?", *parentID)
	}
	err := q.Order("path").Find(&nodes).Error
	return nodes, err
}

func (s *GormStore) ListNodes(ctx context.Context, storageKey string) ([]Node, error) {
	var nodes []Node
	err := s.db.WithContext(ctx).
		Where("storage_key = ?", storageKey).
		Order("path").
		Find(&nodes).Error
	return nodes, err
}

func (s *GormStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// withTxRetry runs fn in a transaction, retrying failed transactions. ErrNodeExists is final.
func (s *GormStore) withTxRetry(db *gorm.DB, fn func(tx *gorm.DB) error) error {
	var err error
	for i := 0; i < s.txRetries; i++ {
		err = db.Transaction(fn)
		if err == nil || errors.Is(err, ErrNodeExists) {
			break
		}
		if ctxErr := db.Statement.Context.Err(); ctxErr != nil {
			break
		}
	}
	return err
}

var _ Store = (*GormStore)(nil)
