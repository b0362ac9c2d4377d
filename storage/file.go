package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"sync"

	"github.com/viant/afs"
)

// fileStorage persists all values as a single JSON snapshot. Writes go to a
// sibling location first and are then moved over the snapshot, so a reader
// never observes a partially written state.
type fileStorage struct {
	mu     sync.RWMutex
	URL    string
	fs     afs.Service
	values map[string]string
}

// NewFile returns a Storage backed by a JSON snapshot at the given URL.
// A missing snapshot is treated as empty state.
func NewFile(URL string) (Storage, error) {
	ret := &fileStorage{
		URL:    URL,
		fs:     afs.New(),
		values: map[string]string{},
	}
	if err := ret.load(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (f *fileStorage) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	value, ok := f.values[key]
	return value, ok
}

func (f *fileStorage) Put(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
	return f.save()
}

func (f *fileStorage) Delete(keys ...string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, key := range keys {
		delete(f.values, key)
	}
	return f.save()
}

func (f *fileStorage) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values = map[string]string{}
	return f.save()
}

func (f *fileStorage) save() error {
	ctx := context.Background()
	data, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return err
	}
	tmp := f.URL + ".tmp"
	if err = f.fs.Upload(ctx, tmp, 0o600, bytes.NewReader(data)); err != nil {
		return err
	}
	return f.fs.Move(ctx, tmp, f.URL)
}

func (f *fileStorage) load() error {
	ctx := context.Background()
	if ok, _ := f.fs.Exists(ctx, f.URL); !ok {
		return nil
	}
	data, err := f.fs.DownloadWithURL(ctx, f.URL)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, &f.values)
}
