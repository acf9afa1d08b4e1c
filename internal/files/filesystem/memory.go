package filesystem

import (
	"fmt"
	"io/fs"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

type memoryFileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

func (f *memoryFileInfo) Name() string       { return f.name }
func (f *memoryFileInfo) Size() int64        { return f.size }
func (f *memoryFileInfo) Mode() fs.FileMode  { return f.mode }
func (f *memoryFileInfo) ModTime() time.Time { return f.modTime }
func (f *memoryFileInfo) IsDir() bool        { return f.mode.IsDir() }
func (f *memoryFileInfo) Sys() interface{}   { return nil }

type memoryEntry struct {
	path    string
	content []byte
	info    *memoryFileInfo
}

type memoryFile struct {
	entry   *memoryEntry
	relPath string
}

func (f *memoryFile) Path() string         { return f.entry.path }
func (f *memoryFile) RelativePath() string { return f.relPath }
func (f *memoryFile) Info() FileInfo       { return f.entry.info }

func (f *memoryFile) ReadContent() ([]byte, error) {
	return append([]byte(nil), f.entry.content...), nil
}

type memoryDirectory struct {
	path string
	fs   *MemoryFileSystem
}

func (d *memoryDirectory) Path() string { return d.path }

func (d *memoryDirectory) Walk(fn func(File, error) error) error {
	entries := d.fs.entriesUnder(d.path)

	var skipped []string
	for _, entry := range entries {
		if underAny(entry.path, skipped) {
			continue
		}

		rel := strings.TrimPrefix(strings.TrimPrefix(entry.path, d.path), "/")
		if rel == "" {
			rel = "."
		}

		var callbackErr error
		func() {
			defer func() {
				if r := recover(); r != nil {
					callbackErr = fmt.Errorf("walk callback panicked at %s: %v", entry.path, r)
				}
			}()
			callbackErr = fn(&memoryFile{entry: entry, relPath: rel}, nil)
		}()

		if callbackErr == fs.SkipDir && entry.info.IsDir() {
			skipped = append(skipped, entry.path)
			continue
		}
		if callbackErr == fs.SkipDir || callbackErr == fs.SkipAll {
			return nil
		}
		if callbackErr != nil {
			return callbackErr
		}
	}
	return nil
}

func underAny(p string, dirs []string) bool {
	for _, d := range dirs {
		if p == d || strings.HasPrefix(p, d+"/") {
			return true
		}
	}
	return false
}

// MemoryFileSystem implements FileSystemProvider in memory.
// Paths are slash-separated; relative paths resolve against the root.
// Safe for concurrent use.
type MemoryFileSystem struct {
	mu      sync.RWMutex
	entries map[string]*memoryEntry
	root    string
}

// NewMemoryFileSystem creates an in-memory filesystem rooted at root.
func NewMemoryFileSystem(root string) *MemoryFileSystem {
	root = path.Clean(filepath.ToSlash(root))
	mfs := &MemoryFileSystem{
		entries: make(map[string]*memoryEntry),
		root:    root,
	}
	mfs.addDir(root)
	return mfs
}

// Root returns the directory relative paths resolve against.
func (mfs *MemoryFileSystem) Root() string { return mfs.root }

// AddFile adds a file, creating parent directories as needed.
func (mfs *MemoryFileSystem) AddFile(filePath string, content string) {
	mfs.AddFileWithTime(filePath, content, time.Now())
}

// AddFileWithTime adds a file with a specific modification time.
func (mfs *MemoryFileSystem) AddFileWithTime(filePath string, content string, modTime time.Time) {
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	mfs.put(mfs.resolve(filePath), []byte(content), modTime)
}

func (mfs *MemoryFileSystem) resolve(p string) string {
	p = filepath.ToSlash(p)
	if p == "" || p == "." {
		return mfs.root
	}
	if !path.IsAbs(p) {
		p = path.Join(mfs.root, p)
	}
	return path.Clean(p)
}

func (mfs *MemoryFileSystem) put(abs string, content []byte, modTime time.Time) {
	mfs.entries[abs] = &memoryEntry{
		path:    abs,
		content: content,
		info: &memoryFileInfo{
			name:    path.Base(abs),
			size:    int64(len(content)),
			mode:    0644,
			modTime: modTime,
		},
	}
	for dir := path.Dir(abs); ; dir = path.Dir(dir) {
		if _, ok := mfs.entries[dir]; ok {
			break
		}
		mfs.addDir(dir)
		if dir == "/" || dir == "." {
			break
		}
	}
}

func (mfs *MemoryFileSystem) addDir(dir string) {
	mfs.entries[dir] = &memoryEntry{
		path: dir,
		info: &memoryFileInfo{
			name:    path.Base(dir),
			mode:    0755 | fs.ModeDir,
			modTime: time.Now(),
		},
	}
}

func (mfs *MemoryFileSystem) entriesUnder(base string) []*memoryEntry {
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()

	var out []*memoryEntry
	for p, e := range mfs.entries {
		if p == base || base == "/" || strings.HasPrefix(p, base+"/") {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].path < out[j].path })
	return out
}

func (mfs *MemoryFileSystem) lookup(p string) (*memoryEntry, string, bool) {
	abs := mfs.resolve(p)
	mfs.mu.RLock()
	defer mfs.mu.RUnlock()
	e, ok := mfs.entries[abs]
	return e, abs, ok
}

// Open implements FileSystemProvider.Open
func (mfs *MemoryFileSystem) Open(openPath string) (Directory, error) {
	e, abs, ok := mfs.lookup(openPath)
	if !ok {
		return nil, fmt.Errorf("failed to access path %s: %w", openPath, fs.ErrNotExist)
	}
	if !e.info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", openPath)
	}
	return &memoryDirectory{path: abs, fs: mfs}, nil
}

// ReadFile implements FileSystemProvider.ReadFile
func (mfs *MemoryFileSystem) ReadFile(filePath string) ([]byte, error) {
	e, _, ok := mfs.lookup(filePath)
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: filePath, Err: fs.ErrNotExist}
	}
	if e.info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	return append([]byte(nil), e.content...), nil
}

// WriteFile implements FileSystemProvider.WriteFile
func (mfs *MemoryFileSystem) WriteFile(filePath string, data []byte) error {
	abs := mfs.resolve(filePath)
	mfs.mu.Lock()
	defer mfs.mu.Unlock()
	if e, ok := mfs.entries[abs]; ok && e.info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", filePath)
	}
	mfs.put(abs, append([]byte(nil), data...), time.Now())
	return nil
}

// Stat implements FileSystemProvider.Stat
func (mfs *MemoryFileSystem) Stat(statPath string) (FileInfo, error) {
	e, _, ok := mfs.lookup(statPath)
	if !ok {
		return nil, &fs.PathError{Op: "stat", Path: statPath, Err: fs.ErrNotExist}
	}
	return e.info, nil
}
