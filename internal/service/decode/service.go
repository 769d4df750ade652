//go:generate mockgen -destination=./mocks/service_mock.go -package=decode_test github.com/mdbview/mdbview/internal/service/decode Service

// Package decode adapts pkg/mdb's pure Decode function to the CLI layer:
// it owns reading the file through osfs.FileSystem and turns a hard decode
// error into a wrapped, file-scoped sentinel.
package decode

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mdbview/mdbview/internal/service/osfs"
	"github.com/mdbview/mdbview/pkg/mdb"
)

var (
	// ErrFailedToOpenFile wraps an os-level failure to open the given path.
	ErrFailedToOpenFile = errors.New("failed to open mdb file")
	// ErrFailedToReadFile wraps an os-level failure to read the opened file.
	ErrFailedToReadFile = errors.New("failed to read mdb file")
	// ErrFailedToDecode wraps a hard decode-layer failure (e.g. file too small).
	ErrFailedToDecode = errors.New("failed to decode mdb file")
)

// Service reads and decodes an mdb file from disk.
type Service interface {
	DecodeFile(path string) (mdb.Root, error)
}

type service struct {
	log *slog.Logger
	fs  osfs.FileSystem
}

// NewService builds a decode Service backed by fs.
func NewService(log *slog.Logger, fs osfs.FileSystem) Service {
	return &service{log: log, fs: fs}
}

func (s *service) DecodeFile(path string) (mdb.Root, error) {
	s.log.Info("decoding mdb file", slog.String("file", path))

	f, err := s.fs.Open(path)
	if err != nil {
		return mdb.Root{}, fmt.Errorf("%w %q: %w", ErrFailedToOpenFile, path, err)
	}
	defer f.Close()

	buf, err := io.ReadAll(f)
	if err != nil {
		return mdb.Root{}, fmt.Errorf("%w %q: %w", ErrFailedToReadFile, path, err)
	}

	s.log.Debug("file read", slog.Int("bytes", len(buf)))

	root, err := mdb.Decode(buf)
	if err != nil {
		return mdb.Root{}, fmt.Errorf("%w %q: %w", ErrFailedToDecode, path, err)
	}

	s.log.Info("decode completed",
		slog.Bool("header_valid", root.HeaderValid),
		slog.String("generation", root.Generation.String()),
		slog.Int("single_ex", len(root.SingleExes)),
		slog.Int("grouped_ex", len(root.GroupedExs)),
	)

	return root, nil
}
