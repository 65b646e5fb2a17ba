package storage

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
)

const (
	latestFile = "latest"
	fileSource = "file"
)

type fileConfig interface {
	DataDir() string
}

// FileStorage keeps published snapshots as <segment>.json files in one directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(config fileConfig) *FileStorage {
	return &FileStorage{dir: config.DataDir()}
}

// SaveTable writes the snapshot as latest.json and as <YYYY-MM-DD>.json.
func (s *FileStorage) SaveTable(ctx context.Context, table *rates.Table) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "saveTableFile")
	defer span.Finish()

	raw, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encode table")
	}
	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Wrap(err, "create data dir")
	}

	for _, segment := range []string{latestFile, table.Date.Format(rates.DateLayout)} {
		path := s.path(segment)
		if err = os.WriteFile(path, raw, 0o644); err != nil {
			return errors.Wrapf(err, "write %s", path)
		}
		logger.Info("snapshot written", zap.String("path", path))
	}
	return nil
}

// Fetch reads a previously written snapshot, so the directory can serve
// lookups the same way the published artifacts do.
func (s *FileStorage) Fetch(ctx context.Context, segment string) (*rates.Table, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "fetchTableFile")
	defer span.Finish()
	span.SetTag("segment", segment)

	raw, err := os.ReadFile(s.path(segment))
	if err != nil {
		return nil, customerr.FetchFailed(fileSource, err)
	}

	table := &rates.Table{}
	if err = json.Unmarshal(raw, table); err != nil {
		return nil, customerr.ParseFailed(fileSource, err)
	}
	return table, nil
}

func (s *FileStorage) path(segment string) string {
	return filepath.Join(s.dir, filepath.Base(segment)+".json")
}
