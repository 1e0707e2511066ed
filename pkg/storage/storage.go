// Package storage manages files in a per-application directory.
//
// Every app gets one directory (by default ~/.<appname>), optionally split
// into subdirectories. Names are resolved inside that directory; a name or
// subdirectory that would escape it is rejected.
package storage

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bytedance/sonic"
	"go.uber.org/zap"

	"github.com/go-drift/droid/pkg/errors"
	"github.com/go-drift/droid/pkg/logging"
)

// ErrInvalidPath is returned for names that are empty or leave the app directory.
var ErrInvalidPath = stderrors.New("storage: path escapes app directory")

// Option configures a FileManager.
type Option func(*FileManager)

// WithBaseDir places the app directory at dir instead of the home directory.
func WithBaseDir(dir string) Option {
	return func(m *FileManager) { m.dir = dir }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(m *FileManager) { m.logger = logging.OrNop(logger) }
}

// FileManager reads and writes files under one app directory.
type FileManager struct {
	appName string
	dir     string
	logger  *zap.Logger
}

// NewFileManager creates the app directory if needed.
func NewFileManager(appName string, opts ...Option) (*FileManager, error) {
	m := &FileManager{appName: appName, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(m)
	}
	if m.dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, errors.Wrap("storage.New", errors.KindStorage, err)
		}
		m.dir = filepath.Join(home, "."+strings.ToLower(appName))
	}
	m.logger = m.logger.Named("storage").With(zap.String("app", appName))

	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return nil, errors.Wrap("storage.New", errors.KindStorage, err)
	}
	m.logger.Debug("app directory ready", zap.String("dir", m.dir))
	return m, nil
}

// Dir returns the app directory.
func (m *FileManager) Dir() string { return m.dir }

// WriteFile writes content to name inside subdir, creating subdir as needed.
// Pass "" for the app directory itself.
func (m *FileManager) WriteFile(name, content, subdir string) error {
	return m.write("storage.WriteFile", name, []byte(content), subdir)
}

// ReadFile returns the content of name inside subdir.
func (m *FileManager) ReadFile(name, subdir string) (string, error) {
	data, err := m.read("storage.ReadFile", name, subdir)
	return string(data), err
}

// DeleteFile removes name inside subdir.
func (m *FileManager) DeleteFile(name, subdir string) error {
	path, err := m.path(name, subdir)
	if err != nil {
		return errors.Wrap("storage.DeleteFile", errors.KindStorage, err)
	}
	if err := os.Remove(path); err != nil {
		m.logger.Error("delete failed", zap.String("file", path), zap.Error(err))
		return errors.Wrap("storage.DeleteFile", errors.KindStorage, err)
	}
	m.logger.Info("file deleted", zap.String("file", path))
	return nil
}

// ListFiles returns the names of regular files in subdir, sorted. A missing
// subdir yields an empty list.
func (m *FileManager) ListFiles(subdir string) ([]string, error) {
	dir, err := m.resolveDir(subdir)
	if err != nil {
		return nil, errors.Wrap("storage.ListFiles", errors.KindStorage, err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return []string{}, nil
		}
		return nil, errors.Wrap("storage.ListFiles", errors.KindStorage, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// Exists reports whether name exists inside subdir.
func (m *FileManager) Exists(name, subdir string) bool {
	path, err := m.path(name, subdir)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// SaveJSON encodes v as indented JSON into name.
func (m *FileManager) SaveJSON(name string, v any, subdir string) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.Wrap("storage.SaveJSON", errors.KindStorage, err)
	}
	return m.write("storage.SaveJSON", name, data, subdir)
}

// LoadJSON decodes name into v.
func (m *FileManager) LoadJSON(name string, v any, subdir string) error {
	data, err := m.read("storage.LoadJSON", name, subdir)
	if err != nil {
		return err
	}
	if err := sonic.Unmarshal(data, v); err != nil {
		return errors.Wrap("storage.LoadJSON", errors.KindStorage, fmt.Errorf("decode %s: %w", name, err))
	}
	return nil
}

func (m *FileManager) write(op, name string, data []byte, subdir string) error {
	path, err := m.path(name, subdir)
	if err != nil {
		return errors.Wrap(op, errors.KindStorage, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(op, errors.KindStorage, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		m.logger.Error("write failed", zap.String("file", path), zap.Error(err))
		return errors.Wrap(op, errors.KindStorage, err)
	}
	m.logger.Info("file written", zap.String("file", path), zap.Int("bytes", len(data)))
	return nil
}

func (m *FileManager) read(op, name, subdir string) ([]byte, error) {
	path, err := m.path(name, subdir)
	if err != nil {
		return nil, errors.Wrap(op, errors.KindStorage, err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		m.logger.Debug("read failed", zap.String("file", path), zap.Error(err))
		return nil, errors.Wrap(op, errors.KindStorage, err)
	}
	m.logger.Debug("file read", zap.String("file", path))
	return data, nil
}

func (m *FileManager) resolveDir(subdir string) (string, error) {
	if subdir == "" {
		return m.dir, nil
	}
	if !filepath.IsLocal(subdir) {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, subdir)
	}
	return filepath.Join(m.dir, subdir), nil
}

func (m *FileManager) path(name, subdir string) (string, error) {
	if name == "" || !filepath.IsLocal(name) || filepath.Base(name) != name {
		return "", fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	dir, err := m.resolveDir(subdir)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}
