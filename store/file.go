package store

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chatboard/domain"
)

var errEmptyDocument = fmt.Errorf("document is empty")

// FileStore keeps the document in a single JSON file, like the historical
// data.json. Saves go through a temp file plus rename so a crash midway
// through a write cannot leave a half-written document behind.
type FileStore struct {
	path string
	log  *slog.Logger
}

func NewFileStore(path string, log *slog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (s *FileStore) Load() domain.Document {
	raw, err := os.ReadFile(s.path)
	switch {
	case os.IsNotExist(err):
		return s.initialize("no data file, starting empty")
	case err != nil:
		s.log.Error("data file read failed, falling back to empty state", "error", err)
		return domain.EmptyDocument()
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		s.log.Warn("data file is corrupt, reinitializing", "error", err)
		return s.initialize("corrupt data file replaced by empty state")
	}
	return doc
}

func (s *FileStore) Save(doc domain.Document) error {
	raw, err := encodeDocument(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace data file: %w", err)
	}
	return nil
}

func (s *FileStore) initialize(reason string) domain.Document {
	doc := domain.EmptyDocument()
	if err := s.Save(doc); err != nil {
		s.log.Error("initializing empty data file failed", "error", err)
	} else {
		s.log.Info(reason, "path", s.path)
	}
	return doc
}
