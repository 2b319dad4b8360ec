package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"uptime/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

const (
	recordExt = ".json"
	dirPerm   = 0o750
	filePerm  = 0o640
)

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Store хранит каждую запись отдельным JSON файлом <baseDir>/<collection>/<key>.json.
// Только точечные операции, листинга нет.
type Store struct {
	baseDir     string
	collections map[string]struct{}
	log         *slog.Logger
}

// New создает директории коллекций и возвращает хранилище.
func New(baseDir string, log *slog.Logger, collections ...string) (*Store, error) {
	s := &Store{
		baseDir:     baseDir,
		collections: make(map[string]struct{}, len(collections)),
		log:         log.With(slog.String("component", "file_store")),
	}

	for _, c := range collections {
		if !keyPattern.MatchString(c) {
			return nil, fmt.Errorf("collection %q: %w", c, storage.ErrInvalidKey)
		}
		if err := os.MkdirAll(filepath.Join(baseDir, c), dirPerm); err != nil {
			return nil, fmt.Errorf("create collection dir %q: %w", c, err)
		}
		s.collections[c] = struct{}{}
	}

	return s, nil
}

// BaseDir returns the root data directory.
func (s *Store) BaseDir() string {
	return s.baseDir
}

func (s *Store) path(collection, key string) (string, error) {
	if _, ok := s.collections[collection]; !ok {
		return "", fmt.Errorf("collection %q: %w", collection, storage.ErrInvalidKey)
	}
	if !keyPattern.MatchString(key) {
		return "", fmt.Errorf("key %q: %w", key, storage.ErrInvalidKey)
	}

	return filepath.Join(s.baseDir, collection, key+recordExt), nil
}

// Create записывает новую запись. Существующий файл никогда не перезаписывается.
func (s *Store) Create(ctx context.Context, collection, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(collection, key)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("open %s/%s: %w", collection, key, err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s/%s: %w", collection, key, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s/%s: %w", collection, key, err)
	}

	s.log.Debug("record created", slog.String("collection", collection), slog.String("key", key))
	return nil
}

// Read возвращает сырое содержимое записи.
func (s *Store) Read(ctx context.Context, collection, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(collection, key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("read %s/%s: %w", collection, key, err)
	}

	return data, nil
}

// Update полностью заменяет существующую запись. Запись пишется во временный
// файл и переименовывается на место, читатели не видят частичного содержимого.
func (s *Store) Update(ctx context.Context, collection, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(collection, key)
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("stat %s/%s: %w", collection, key, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp for %s/%s: %w", collection, key, err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp for %s/%s: %w", collection, key, err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp for %s/%s: %w", collection, key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp for %s/%s: %w", collection, key, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename %s/%s into place: %w", collection, key, err)
	}

	s.log.Debug("record updated", slog.String("collection", collection), slog.String("key", key))
	return nil
}

// Delete удаляет запись.
func (s *Store) Delete(ctx context.Context, collection, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(collection, key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("remove %s/%s: %w", collection, key, err)
	}

	s.log.Debug("record deleted", slog.String("collection", collection), slog.String("key", key))
	return nil
}
