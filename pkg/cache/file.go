package cache

import (
	"bytes"
	"context"
	"encoding/binary"
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// entryMagic prefixes every file written by [FileCache]. It is followed by an
// 8-byte big-endian expiry in Unix nanoseconds (0 for none) and the payload.
var entryMagic = []byte("adc1")

const (
	entryExt    = ".entry"
	headerBytes = 4 + 8
)

// FileCache keeps rendered artifacts and fetched graph documents under a
// local directory, one file per key. Files are sharded by the first two hex
// digits of the key hash and replaced atomically, so a concurrent reader
// (a --watch loop next to a one-off render) never sees a partial entry.
type FileCache struct {
	dir string
}

// NewFileCache opens dir as a cache, creating it if needed.
func NewFileCache(dir string) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileCache{dir: dir}, nil
}

// Get returns the payload stored under key. Expired and unreadable entries
// are removed and reported as a miss.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	path := c.path(key)
	raw, err := os.ReadFile(path)
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	data, expires, ok := decodeEntry(raw)
	if !ok || (!expires.IsZero() && time.Now().After(expires)) {
		_ = os.Remove(path)
		return nil, false, nil
	}
	return data, true, nil
}

// Set writes data under key. A ttl of 0 keeps the entry until Delete or Clear.
func (c *FileCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	var expires time.Time
	if ttl > 0 {
		expires = time.Now().Add(ttl)
	}

	path := c.path(key)
	shard := filepath.Dir(path)
	if err := os.MkdirAll(shard, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(shard, ".tmp-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err := tmp.Write(encodeEntry(data, expires)); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Delete removes key. Deleting a missing key is not an error.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	err := os.Remove(c.path(key))
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Clear removes every entry, stray temp files and the emptied shard
// directories. It returns the number of entries removed.
func (c *FileCache) Clear() (int, error) {
	removed := 0
	var shards []string
	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != c.dir {
				shards = append(shards, path)
			}
			return nil
		}
		if err := os.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
			return err
		}
		if strings.HasSuffix(path, entryExt) {
			removed++
		}
		return nil
	})
	for _, dir := range shards {
		_ = os.Remove(dir)
	}
	return removed, err
}

// Dir returns the cache directory.
func (c *FileCache) Dir() string { return c.dir }

// Close is a no-op.
func (c *FileCache) Close() error { return nil }

func (c *FileCache) path(key string) string {
	h := Hash([]byte(key))
	return filepath.Join(c.dir, h[:2], h[2:]+entryExt)
}

func encodeEntry(data []byte, expires time.Time) []byte {
	buf := make([]byte, headerBytes, headerBytes+len(data))
	copy(buf, entryMagic)
	if !expires.IsZero() {
		binary.BigEndian.PutUint64(buf[4:], uint64(expires.UnixNano()))
	}
	return append(buf, data...)
}

func decodeEntry(raw []byte) (data []byte, expires time.Time, ok bool) {
	if len(raw) < headerBytes || !bytes.Equal(raw[:4], entryMagic) {
		return nil, time.Time{}, false
	}
	if ns := binary.BigEndian.Uint64(raw[4:headerBytes]); ns != 0 {
		expires = time.Unix(0, int64(ns))
	}
	return raw[headerBytes:], expires, true
}

var _ Cache = (*FileCache)(nil)
