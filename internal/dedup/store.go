package dedup

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"sync"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gofrs/flock"
)

// Store persists the set of links that were already notified. The run
// loads it once at start and saves it once at the end; concurrent runs
// against the same store are unsafe (read-modify-write), serial
// scheduling is the caller's job.
type Store interface {
	Load() (mapset.Set[string], error)
	Save(seen mapset.Set[string]) error
}

// FileStore keeps the seen set as a sorted JSON array of links, which
// keeps diffs readable when the file sits in a repo or artifact. A
// missing or corrupt file degrades to an empty set: worst case is one
// duplicate notification, preferred over losing the run.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (fs *FileStore) Load() (mapset.Set[string], error) {
	data, err := os.ReadFile(fs.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read %s, starting fresh: %v", fs.Path, err)
		}
		return mapset.NewSet[string](), nil
	}

	var links []string
	if err := json.Unmarshal(data, &links); err != nil {
		log.Printf("⚠️ Failed to parse %s, starting fresh: %v", fs.Path, err)
		return mapset.NewSet[string](), nil
	}
	return mapset.NewSet(links...), nil
}

func (fs *FileStore) Save(seen mapset.Set[string]) error {
	links := seen.ToSlice()
	sort.Strings(links)

	// plain UTF-8, no & noise in links with query strings
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(links); err != nil {
		return fmt.Errorf("marshal seen links: %w", err)
	}

	if dir := filepath.Dir(fs.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create state directory: %w", err)
		}
	}

	// Advisory lock so an overlapping run cannot interleave its write
	// with ours; it does not make overlapping runs correct.
	lock := flock.New(fs.Path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock seen file: %w", err)
	}
	defer lock.Unlock()

	if err := os.WriteFile(fs.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write seen file: %w", err)
	}
	log.Printf("💾 Saved %d seen links to %s", len(links), fs.Path)
	return nil
}

// MemoryStore is the test substitute for FileStore.
type MemoryStore struct {
	mu    sync.Mutex
	links mapset.Set[string]
}

func NewMemoryStore(links ...string) *MemoryStore {
	return &MemoryStore{links: mapset.NewSet(links...)}
}

func (ms *MemoryStore) Load() (mapset.Set[string], error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.links.Clone(), nil
}

func (ms *MemoryStore) Save(seen mapset.Set[string]) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.links = seen.Clone()
	return nil
}
