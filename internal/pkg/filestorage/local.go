package filestorage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/yigit/classworks/internal/pkg/logger"
)

// LocalStorage handles saving report files to the local filesystem.
type LocalStorage struct {
	basePath string // The root directory where files will be stored
}

var _ FileStorage = (*LocalStorage)(nil)

// NewLocalStorage creates a new LocalStorage instance rooted at basePath.
// The directory is created lazily on the first save.
func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{basePath: basePath}
}

// BasePath returns the storage root
func (ls *LocalStorage) BasePath() string {
	return ls.basePath
}

// ensureDir creates the storage root if it does not exist yet
func (ls *LocalStorage) ensureDir() error {
	if err := os.MkdirAll(ls.basePath, os.ModePerm); err != nil {
		logger.Error().Err(err).Str("path", ls.basePath).Msg("Failed to create storage directory")
		return fmt.Errorf("failed to create storage directory %s: %w", ls.basePath, err)
	}
	return nil
}

// SaveFile writes into a uniquely named temporary file and renames it into place,
// so a failed export never leaves a truncated report behind.
func (ls *LocalStorage) SaveFile(name string, write WriteFunc) (*FileInfo, error) {
	if err := ls.ensureDir(); err != nil {
		return nil, err
	}

	dstPath := ls.GetFullPath(name)
	tmpPath := filepath.Join(ls.basePath, "."+uuid.New().String()+".tmp")

	tmp, err := os.Create(tmpPath)
	if err != nil {
		logger.Error().Err(err).Str("path", tmpPath).Msg("Failed to create temporary file")
		return nil, fmt.Errorf("failed to create temporary file: %w", err)
	}

	if err := write(tmp); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return nil, fmt.Errorf("failed to close %s: %w", name, err)
	}

	if err := os.Rename(tmpPath, dstPath); err != nil {
		_ = os.Remove(tmpPath)
		logger.Error().Err(err).Str("path", dstPath).Msg("Failed to move file into place")
		return nil, fmt.Errorf("failed to save %s: %w", name, err)
	}

	stat, err := os.Stat(dstPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat %s: %w", dstPath, err)
	}

	logger.Debug().Str("path", dstPath).Int64("size", stat.Size()).Msg("File saved successfully")
	return &FileInfo{
		Path:     dstPath,
		Filename: name,
		FileSize: stat.Size(),
	}, nil
}

// GetFullPath returns the full filesystem path for a given file name
func (ls *LocalStorage) GetFullPath(name string) string {
	return filepath.Join(ls.basePath, name)
}
