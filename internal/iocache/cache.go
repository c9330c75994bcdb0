// Package iocache keeps responses of the data source in a Badger key-value
// store, so repeated runs do not download the same data again.
package iocache

import (
	"errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/gnames/gnfmt"
	"github.com/gnames/gnsys"
)

// response is the cached form of an HTTP response body.
type response struct {
	URL       string
	Body      []byte
	FetchedAt int64
}

// Cache stores response bodies keyed by URL. Entries expire after TTL.
type Cache struct {
	dir string
	ttl time.Duration
	db  *badger.DB
}

// New creates a cache at the directory. Entries live for ttl.
func New(dir string, ttl time.Duration) *Cache {
	return &Cache{dir: dir, ttl: ttl}
}

// Open opens the Badger database for the cache, creating its directory
// if needed.
func (c *Cache) Open() error {
	if c.db != nil {
		slog.Warn("Cache database is already open")
		return nil
	}

	err := gnsys.MakeDir(c.dir)
	if err != nil {
		return CacheOpenError(c.dir, err)
	}

	options := badger.DefaultOptions(c.dir)
	options.Logger = nil // Disable badger's internal logging

	db, err := badger.Open(options)
	if err != nil {
		return CacheOpenError(c.dir, err)
	}

	c.db = db
	slog.Debug("Cache database opened", "dir", c.dir)
	return nil
}

// Close closes the Badger database.
func (c *Cache) Close() error {
	if c.db == nil {
		return nil
	}

	err := c.db.Close()
	c.db = nil
	if err != nil {
		slog.Error("Cannot close cache database", "error", err)
		return err
	}
	return nil
}

// Get returns a cached body of the URL. The second value is false if
// the URL is not cached or the entry expired.
func (c *Cache) Get(url string) ([]byte, bool, error) {
	if c.db == nil {
		return nil, false, CacheNotOpenError()
	}

	var valBytes []byte
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(url))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		valBytes, err = item.ValueCopy(nil)
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if valBytes == nil {
		return nil, false, nil
	}

	enc := gnfmt.GNgob{}
	var resp response
	if err = enc.Decode(valBytes, &resp); err != nil {
		slog.Warn("Cannot decode cached response", "url", url, "error", err)
		return nil, false, nil
	}
	slog.Debug("Cache hit", "url", url,
		"fetched_at", time.Unix(resp.FetchedAt, 0).Format(time.RFC3339))
	return resp.Body, true, nil
}

// Set caches a body of the URL.
func (c *Cache) Set(url string, body []byte) error {
	if c.db == nil {
		return CacheNotOpenError()
	}

	enc := gnfmt.GNgob{}
	valBytes, err := enc.Encode(response{
		URL:       url,
		Body:      body,
		FetchedAt: time.Now().Unix(),
	})
	if err != nil {
		return err
	}

	return c.db.Update(func(txn *badger.Txn) error {
		e := badger.NewEntry([]byte(url), valBytes).WithTTL(c.ttl)
		return txn.SetEntry(e)
	})
}

// Clear removes all cached responses.
func (c *Cache) Clear() error {
	if c.db == nil {
		return CacheNotOpenError()
	}
	if err := c.db.DropAll(); err != nil {
		return CacheClearError(c.dir, err)
	}
	slog.Info("Cache cleaned up", "dir", c.dir)
	return nil
}
