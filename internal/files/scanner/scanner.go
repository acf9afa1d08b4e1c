package scanner

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mdrepo/mdrmeta/internal/checksum"
	"github.com/mdrepo/mdrmeta/internal/files/filesystem"
	"github.com/mdrepo/mdrmeta/pkg/mdrmeta"
)

// StdinName is the display name used for documents read from standard input.
const StdinName = "<stdin>"

// Scanner discovers metadata documents from command-line paths.
// Scanner is safe for concurrent use as long as the provided calculator
// and fsProvider are, and "-" is not scanned concurrently.
type Scanner struct {
	calculator checksum.Calculator
	fsProvider filesystem.FileSystemProvider
	stdin      io.Reader
}

// NewScanner creates a scanner over the OS filesystem reading "-" from os.Stdin.
// Panics if calculator is nil.
func NewScanner(calculator checksum.Calculator) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: filesystem.NewOSFileSystem(),
		stdin:      os.Stdin,
	}
}

// NewScannerWithFS creates a scanner with a custom filesystem provider and stdin.
// Panics if calculator or fsProvider is nil. A nil stdin rejects "-".
func NewScannerWithFS(calculator checksum.Calculator, fsProvider filesystem.FileSystemProvider, stdin io.Reader) *Scanner {
	if calculator == nil {
		panic("calculator cannot be nil")
	}
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	return &Scanner{
		calculator: calculator,
		fsProvider: fsProvider,
		stdin:      stdin,
	}
}

// Scan resolves every path in order. Directories contribute their metadata
// documents in lexical order, skipping hidden subdirectories; a directory
// without any is an error. Files named directly are taken whatever their
// extension so that decoding can report it.
func (s *Scanner) Scan(paths []string) (mdrmeta.ScanResult, error) {
	var files []mdrmeta.SourceFile
	stdinUsed := false

	for _, path := range paths {
		if path == mdrmeta.StdinPath {
			if stdinUsed {
				return mdrmeta.ScanResult{}, fmt.Errorf("standard input can only be read once")
			}
			stdinUsed = true
			file, err := s.readStdin()
			if err != nil {
				return mdrmeta.ScanResult{}, err
			}
			files = append(files, file)
			continue
		}

		info, err := s.fsProvider.Stat(path)
		if err != nil {
			return mdrmeta.ScanResult{}, fmt.Errorf("failed to access %s: %w", path, err)
		}

		if !info.IsDir() {
			content, err := s.fsProvider.ReadFile(path)
			if err != nil {
				return mdrmeta.ScanResult{}, fmt.Errorf("failed to read %s: %w", path, err)
			}
			files = append(files, s.describe(path, filepath.ToSlash(path), info, content))
			continue
		}

		found, err := s.scanDirectory(path)
		if err != nil {
			return mdrmeta.ScanResult{}, err
		}
		if len(found) == 0 {
			return mdrmeta.ScanResult{}, fmt.Errorf("no metadata files (%s) found in %s",
				strings.Join(mdrmeta.MetadataExtensions, ", "), path)
		}
		files = append(files, found...)
	}

	return mdrmeta.ScanResult{Files: files}, nil
}

func (s *Scanner) scanDirectory(root string) ([]mdrmeta.SourceFile, error) {
	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var files []mdrmeta.SourceFile
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking %s: %w", root, err)
		}

		info := file.Info()
		if info.IsDir() {
			if file.RelativePath() != "." && strings.HasPrefix(info.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !mdrmeta.IsMetadataPath(info.Name()) {
			return nil
		}

		content, err := file.ReadContent()
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file.Path(), err)
		}
		files = append(files, s.describe(file.Path(), file.RelativePath(), info, content))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return files, nil
}

func (s *Scanner) readStdin() (mdrmeta.SourceFile, error) {
	if s.stdin == nil {
		return mdrmeta.SourceFile{}, fmt.Errorf("standard input is not available")
	}
	content, err := io.ReadAll(s.stdin)
	if err != nil {
		return mdrmeta.SourceFile{}, fmt.Errorf("failed to read standard input: %w", err)
	}
	return mdrmeta.SourceFile{
		Path:         mdrmeta.StdinPath,
		RelativePath: mdrmeta.StdinPath,
		Name:         StdinName,
		Content:      content,
		SizeBytes:    int64(len(content)),
		Checksum:     s.calculator.CalculateNormalized(content),
		ChecksumRaw:  s.calculator.CalculateRaw(content),
	}, nil
}

func (s *Scanner) describe(path, relPath string, info filesystem.FileInfo, content []byte) mdrmeta.SourceFile {
	return mdrmeta.SourceFile{
		Path:         path,
		RelativePath: relPath,
		Name:         info.Name(),
		Extension:    filepath.Ext(info.Name()),
		Content:      content,
		SizeBytes:    info.Size(),
		Checksum:     s.calculator.CalculateNormalized(content),
		ChecksumRaw:  s.calculator.CalculateRaw(content),
		ModifiedAt:   info.ModTime(),
	}
}

// Verify Scanner implements the interface at compile time
var _ mdrmeta.FileScanner = (*Scanner)(nil)
