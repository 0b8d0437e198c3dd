package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"recapper/article"

	bolt "go.etcd.io/bbolt"
)

var bucketName = []byte("articles")

type cachedArticle struct {
	Article  *article.Article `json:"article"`
	StoredAt time.Time        `json:"stored_at"`
}

// BoltDBStorage caches fetched articles in a BoltDB file. Entries older than
// TTL are treated as missing; a zero TTL keeps entries forever.
type BoltDBStorage struct {
	DBPath string
	TTL    time.Duration
	db     *bolt.DB
	mu     sync.RWMutex
	now    func() time.Time
}

// Init initializes the BoltDB database
func (s *BoltDBStorage) Init() error {
	dbDir := filepath.Dir(s.DBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory for BoltDB: %w", err)
	}

	db, err := bolt.Open(s.DBPath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return fmt.Errorf("failed to open BoltDB: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	})
	if err != nil {
		db.Close()
		return fmt.Errorf("failed to create bucket: %w", err)
	}

	s.db = db
	if s.now == nil {
		s.now = time.Now
	}
	return nil
}

// Get implements article.Cache
func (s *BoltDBStorage) Get(url string) (*article.Article, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var entry *cachedArticle
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketName).Get([]byte(url))
		if v == nil {
			return nil
		}
		entry = &cachedArticle{}
		return json.Unmarshal(v, entry)
	})
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached article: %w", err)
	}
	if entry == nil || entry.Article == nil {
		return nil, false, nil
	}
	if s.TTL > 0 && s.now().Sub(entry.StoredAt) > s.TTL {
		return nil, false, nil
	}
	return entry.Article, true, nil
}

// Put implements article.Cache
func (s *BoltDBStorage) Put(a *article.Article) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(cachedArticle{Article: a, StoredAt: s.now()})
	if err != nil {
		return fmt.Errorf("failed to encode article: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(a.URL), data)
	})
}

// Clear removes all data from storage
func (s *BoltDBStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.DeleteBucket(bucketName); err != nil {
			return err
		}
		_, err := tx.CreateBucket(bucketName)
		return err
	})
}

// Close closes the BoltDB database
func (s *BoltDBStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Ensure BoltDBStorage implements article.Cache interface
var _ article.Cache = (*BoltDBStorage)(nil)
