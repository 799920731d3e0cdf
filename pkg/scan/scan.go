package scan

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/yurykabanov/rotator/pkg/domain"
)

// Scanner lists rotation candidates directly from the local filesystem.
type Scanner struct{}

func New() *Scanner {
	return &Scanner{}
}

// Scan returns the immediate children of path whose kind matches target.
// Symlinks count as whatever they point at, so a link to a directory is a
// directory candidate. Scan order is the lexical order of os.ReadDir.
func (s *Scanner) Scan(path string, target domain.TargetType) ([]domain.Entry, error) {
	root, err := os.Stat(path)
	if err != nil {
		return nil, &domain.PathUnavailableError{Path: path, Err: err}
	}

	if !root.IsDir() {
		return nil, &domain.PathUnavailableError{Path: path, Err: errors.New("not a directory")}
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return nil, &domain.PathUnavailableError{Path: path, Err: err}
	}

	var entries []domain.Entry

	for _, child := range children {
		childPath := filepath.Join(path, child.Name())

		// Stat, not Lstat: symlinked entries resolve to their real kind.
		info, err := os.Stat(childPath)
		if err != nil {
			// Broken link or entry vanished mid-scan; not a candidate.
			continue
		}

		switch target {
		case domain.TargetDirectory:
			if !info.IsDir() {
				continue
			}
		default:
			if !info.Mode().IsRegular() {
				continue
			}
		}

		entries = append(entries, domain.Entry{
			Path: childPath,
			Kind: target,
			Info: info,
		})
	}

	return entries, nil
}
