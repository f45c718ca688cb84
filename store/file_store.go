package store

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/todo/models"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

const (
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatTOML = "toml"

	checksumSuffix = ".checksum"
	tempSuffix     = ".tmp"

	dirPerm  = 0o755
	filePerm = 0o644
)

// FilePersistence stores the snapshot as a single JSON, YAML or TOML document.
// Every Save writes a temporary file and renames it over the target; that
// rename is the only commit point. A SHA-256 sidecar is refreshed afterwards
// and checked on Load, but it is advisory: a mismatch or a failed refresh is
// logged and never fails the operation.
type FilePersistence struct {
	fs     afero.Fs
	path   string
	format string
	logger *slog.Logger
}

var _ Persistence = (*FilePersistence)(nil)

// NewFilePersistence creates a file backend on fs.
// An empty format is inferred from the file extension.
// Use afero.NewOsFs() for real files, or afero.NewMemMapFs() for testing.
func NewFilePersistence(fsys afero.Fs, path, format string) (*FilePersistence, error) {
	if path == "" {
		return nil, errors.New("data file path cannot be empty")
	}
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatFromPath(path)
	}
	switch format {
	case FormatJSON, FormatYAML, FormatTOML:
	default:
		return nil, fmt.Errorf("unsupported data format: %s. Supported formats are json, yaml, toml", format)
	}

	return &FilePersistence{fs: fsys, path: path, format: format, logger: slog.Default()}, nil
}

// OpenFile opens a Store backed by a file on the operating system filesystem.
func OpenFile(path, format string, opts ...Option) (*Store, error) {
	p, err := NewFilePersistence(afero.NewOsFs(), path, format)
	if err != nil {
		return nil, err
	}
	return Open(p, opts...)
}

// FormatFromPath infers the document format from a file extension.
// Unknown extensions default to JSON.
func FormatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatJSON
	}
}

func (p *FilePersistence) setLogger(logger *slog.Logger) {
	p.logger = logger
}

// Location returns the data file path.
func (p *FilePersistence) Location() string {
	return p.path
}

// Close is a no-op; files are only held open during Load and Save.
func (p *FilePersistence) Close() error {
	return nil
}

// Load reads and decodes the data file.
func (p *FilePersistence) Load() (models.TaskList, error) {
	data, err := afero.ReadFile(p.fs, p.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.TaskList{}, nil
		}
		return models.TaskList{}, ioError("read", p.path, err)
	}

	p.verifyChecksum(data)

	if len(bytes.TrimSpace(data)) == 0 {
		return models.TaskList{}, nil
	}

	list, err := decodeTaskList(p.format, data)
	if err != nil {
		return models.TaskList{}, corruptionError("decode", p.path, err)
	}
	return list, nil
}

// Save encodes list and atomically replaces the data file.
func (p *FilePersistence) Save(list models.TaskList) error {
	list = normalizeTaskList(list)

	data, err := encodeTaskList(p.format, list)
	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", p.format, err)
	}

	if dir := filepath.Dir(p.path); dir != "." && dir != "" {
		if err := p.fs.MkdirAll(dir, dirPerm); err != nil {
			return ioError("mkdir", dir, err)
		}
	}

	if err := p.writeAtomic(p.path, data); err != nil {
		return ioError("write", p.path, err)
	}

	// The data file is committed; the sidecar cannot undo that.
	checksumPath := p.path + checksumSuffix
	if err := p.writeAtomic(checksumPath, []byte(calculateChecksum(data))); err != nil {
		p.logger.Warn("checksum not refreshed", "path", checksumPath, "error", err)
		if rmErr := p.fs.Remove(checksumPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			p.logger.Warn("stale checksum left behind", "path", checksumPath, "error", rmErr)
		}
	}
	return nil
}

// verifyChecksum compares data with the sidecar and reports whether they match.
// A missing or unreadable sidecar counts as a match.
func (p *FilePersistence) verifyChecksum(data []byte) bool {
	checksumPath := p.path + checksumSuffix
	expected, err := afero.ReadFile(p.fs, checksumPath)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			p.logger.Warn("checksum unreadable", "path", checksumPath, "error", err)
		}
		return true
	}

	want := strings.TrimSpace(string(expected))
	if got := calculateChecksum(data); want != got {
		p.logger.Warn("checksum mismatch, data file changed outside todo", "path", p.path, "expected", want, "actual", got)
		return false
	}
	return true
}

func (p *FilePersistence) writeAtomic(target string, data []byte) error {
	tmp := target + tempSuffix
	defer func() { _ = p.fs.Remove(tmp) }()

	f, err := p.fs.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return p.fs.Rename(tmp, target)
}

// calculateChecksum computes the SHA256 checksum of the given data.
func calculateChecksum(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

func normalizeTaskList(list models.TaskList) models.TaskList {
	tasks := make([]models.Task, len(list.Tasks))
	for i, t := range list.Tasks {
		t.CreatedAt = t.CreatedAt.UTC()
		tasks[i] = t
	}
	models.SortByID(tasks)
	return models.TaskList{NextID: list.NextID, Tasks: tasks}
}

func encodeTaskList(format string, list models.TaskList) ([]byte, error) {
	switch format {
	case FormatJSON:
		data, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	case FormatYAML:
		return yaml.Marshal(list)
	case FormatTOML:
		return toml.Marshal(list)
	default:
		return nil, fmt.Errorf("unsupported data format for saving: %s", format)
	}
}

// decodeTaskList parses a snapshot document. JSON and YAML also accept a bare
// sequence of task records, the layout written by the first release.
func decodeTaskList(format string, data []byte) (models.TaskList, error) {
	var list models.TaskList

	switch format {
	case FormatJSON:
		trimmed := bytes.TrimSpace(data)
		if trimmed[0] == '[' {
			var tasks []models.Task
			if err := strictJSON(trimmed, &tasks); err != nil {
				return list, err
			}
			return models.TaskList{Tasks: tasks}, nil
		}
		err := strictJSON(trimmed, &list)
		return list, err
	case FormatYAML:
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return list, err
		}
		if len(node.Content) > 0 && node.Content[0].Kind == yaml.SequenceNode {
			var tasks []models.Task
			if err := strictYAML(data, &tasks); err != nil {
				return list, err
			}
			return models.TaskList{Tasks: tasks}, nil
		}
		err := strictYAML(data, &list)
		return list, err
	case FormatTOML:
		err := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&list)
		return list, err
	default:
		return list, fmt.Errorf("unsupported data format for loading: %s", format)
	}
}

func strictJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("unexpected data after task document")
	}
	return nil
}

func strictYAML(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
