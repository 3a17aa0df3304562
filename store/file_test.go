package store

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"chatboard/domain"

	"github.com/stretchr/testify/require"
)

func Test_FileStore_FirstLoadCreatesDataFile(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path, slog.Default())

	doc := s.Load()
	req.Equal(domain.EmptyDocument(), doc)

	raw, err := os.ReadFile(path)
	req.NoError(err)
	req.JSONEq(`{"users": [], "channels": []}`, string(raw))
}

func Test_FileStore_SaveLoadRoundTrip(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path, slog.Default())

	doc := domain.EmptyDocument()
	doc.Users = append(doc.Users, domain.User{
		ID: 1, Username: "alice", Email: "alice@example.com", Channels: []int{},
	})
	doc.Channels = append(doc.Channels, domain.Channel{
		ID: 1, Name: "general", Creator: "alice",
		Members: []domain.Member{domain.NewMember(1, "alice")},
	})

	req.NoError(s.Save(doc))
	req.Equal(doc, s.Load())
}

func Test_FileStore_SaveIsHumanReadable(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "data.json")
	s := NewFileStore(path, slog.Default())

	req.NoError(s.Save(domain.EmptyDocument()))

	raw, err := os.ReadFile(path)
	req.NoError(err)
	// Indented JSON, not a single compact line.
	req.Contains(string(raw), "\n")
	req.True(json.Valid(raw))
}

func Test_FileStore_CorruptFileSelfHeals(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "data.json")
	req.NoError(os.WriteFile(path, []byte("{{{"), 0o644))

	s := NewFileStore(path, slog.Default())
	req.Equal(domain.EmptyDocument(), s.Load())

	// The healed empty document replaced the corrupt file.
	raw, err := os.ReadFile(path)
	req.NoError(err)
	req.JSONEq(`{"users": [], "channels": []}`, string(raw))
}

func Test_FileStore_EmptyFileSelfHeals(t *testing.T) {
	req := require.New(t)
	path := filepath.Join(t.TempDir(), "data.json")
	req.NoError(os.WriteFile(path, []byte("   "), 0o644))

	s := NewFileStore(path, slog.Default())
	req.Equal(domain.EmptyDocument(), s.Load())
}

func Test_FileStore_SaveLeavesNoTempFilesBehind(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	s := NewFileStore(filepath.Join(dir, "data.json"), slog.Default())

	req.NoError(s.Save(domain.EmptyDocument()))
	req.NoError(s.Save(domain.EmptyDocument()))

	entries, err := os.ReadDir(dir)
	req.NoError(err)
	req.Len(entries, 1)
	req.Equal("data.json", entries[0].Name())
}
