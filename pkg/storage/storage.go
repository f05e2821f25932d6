// Package storage provides the local key/value cache the ledger client uses in place of
// browser local storage. Values are plain strings keyed by name, backed by LevelDB.
package storage

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	lvlstorage "github.com/syndtr/goleveldb/leveldb/storage"
)

var (
	// ErrNotFound is returned when a key has never been written
	ErrNotFound = errors.New("not found")
)

// TransactionCountKey is the key the cached on-chain transaction count lives under.
const TransactionCountKey = "transactionCount"

// KV is a minimal string key/value store.
type KV interface {
	io.Closer

	GetItem(key string) (string, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

var _ KV = (*LevelKV)(nil)

// LevelKV implements KV on top of a LevelDB database.
type LevelKV struct {
	dir string
	db  *leveldb.DB
}

// NewLevelDB opens (or creates) a LevelDB database in dir.
func NewLevelDB(dir string) (*LevelKV, error) {
	db, err := leveldb.OpenFile(dir, &opt.Options{NoWriteMerge: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage at %s: %w", dir, err)
	}
	return &LevelKV{dir: dir, db: db}, nil
}

// NewInMemory returns a LevelDB-backed KV that never touches disk.
func NewInMemory() (*LevelKV, error) {
	db, err := leveldb.Open(lvlstorage.NewMemStorage(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open in-memory storage: %w", err)
	}
	return &LevelKV{db: db}, nil
}

func (l *LevelKV) GetItem(key string) (string, error) {
	value, err := l.db.Get([]byte(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", key, err)
	}
	return string(value), nil
}

func (l *LevelKV) SetItem(key, value string) error {
	if err := l.db.Put([]byte(key), []byte(value), nil); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (l *LevelKV) RemoveItem(key string) error {
	return l.db.Delete([]byte(key), nil)
}

// Dir returns the on-disk location, empty for in-memory stores.
func (l *LevelKV) Dir() string {
	return l.dir
}

func (l *LevelKV) Close() error {
	return l.db.Close()
}

// LoadTransactionCount reads the cached transaction count. A missing or unparsable
// entry is reported with ok=false rather than an error.
func LoadTransactionCount(kv KV) (count uint64, ok bool) {
	raw, err := kv.GetItem(TransactionCountKey)
	if err != nil {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// SaveTransactionCount writes the transaction count as a plain decimal string.
func SaveTransactionCount(kv KV, count uint64) error {
	return kv.SetItem(TransactionCountKey, strconv.FormatUint(count, 10))
}
