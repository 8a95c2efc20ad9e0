package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/notemark/notemark/internal/models"
)

// noteMetadata is the JSON sidecar stored next to each note's markdown file.
// Keeping the markdown itself plain means notes stay editable outside the app.
type noteMetadata struct {
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FSStorage keeps one <title>.md plus one <title>.meta.json per note under
// a root directory.
type FSStorage struct {
	rootDir string
}

// NewFSStorage uses the default root directory, ~/.notemark.
func NewFSStorage() (*FSStorage, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolving home directory: %w", err)
	}
	return &FSStorage{rootDir: filepath.Join(home, ".notemark")}, nil
}

// NewFSStorageAt uses a custom root directory.
func NewFSStorageAt(rootDir string) *FSStorage {
	return &FSStorage{rootDir: rootDir}
}

// Init creates the root directory if needed.
func (s *FSStorage) Init() error {
	if err := os.MkdirAll(s.rootDir, 0755); err != nil {
		return fmt.Errorf("creating notes directory %s: %w", s.rootDir, err)
	}
	return nil
}

func (s *FSStorage) notePath(title string) string {
	return filepath.Join(s.rootDir, sanitizeTitle(title)+".md")
}

func (s *FSStorage) metadataPath(title string) string {
	return filepath.Join(s.rootDir, sanitizeTitle(title)+".meta.json")
}

// sanitizeTitle makes a title safe to use as a file name.
func sanitizeTitle(title string) string {
	title = strings.ReplaceAll(title, "/", "_")
	return strings.ReplaceAll(title, "\\", "_")
}

func (s *FSStorage) ListNotes() ([]*models.Note, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(s.rootDir)
	if err != nil {
		return nil, fmt.Errorf("reading notes directory: %w", err)
	}

	var notes []*models.Note
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		title := strings.TrimSuffix(name, ".md")
		note, err := s.ReadNote(title)
		if err != nil {
			// A markdown file without a readable sidecar is skipped, not fatal.
			continue
		}
		notes = append(notes, note)
	}

	sort.Slice(notes, func(i, j int) bool {
		return notes[i].UpdatedAt.After(notes[j].UpdatedAt)
	})

	return notes, nil
}

func (s *FSStorage) ReadNote(title string) (*models.Note, error) {
	content, err := os.ReadFile(s.notePath(title))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, title)
		}
		return nil, fmt.Errorf("reading note %s: %w", title, err)
	}

	meta, err := s.readMetadata(title)
	if err != nil {
		return nil, err
	}

	return &models.Note{
		Title:     meta.Title,
		Content:   string(content),
		CreatedAt: meta.CreatedAt,
		UpdatedAt: meta.UpdatedAt,
	}, nil
}

func (s *FSStorage) WriteNote(note *models.Note) error {
	if err := s.Init(); err != nil {
		return err
	}

	if err := writeFileAtomic(s.notePath(note.Title), []byte(note.Content)); err != nil {
		return fmt.Errorf("writing note %s: %w", note.Title, err)
	}

	meta := noteMetadata{
		Title:     note.Title,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding metadata for %s: %w", note.Title, err)
	}
	if err := writeFileAtomic(s.metadataPath(note.Title), data); err != nil {
		return fmt.Errorf("writing metadata for %s: %w", note.Title, err)
	}
	return nil
}

func (s *FSStorage) DeleteNote(title string) error {
	path := s.notePath(title)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", ErrNoteNotFound, title)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("deleting note %s: %w", title, err)
	}
	if err := os.Remove(s.metadataPath(title)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting metadata for %s: %w", title, err)
	}
	return nil
}

func (s *FSStorage) RenameNote(oldTitle string, note *models.Note) error {
	if err := s.WriteNote(note); err != nil {
		return err
	}
	if sanitizeTitle(oldTitle) == sanitizeTitle(note.Title) {
		return nil
	}
	return s.DeleteNote(oldTitle)
}

func (s *FSStorage) readMetadata(title string) (*noteMetadata, error) {
	data, err := os.ReadFile(s.metadataPath(title))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNoteNotFound, title)
		}
		return nil, fmt.Errorf("reading metadata for %s: %w", title, err)
	}

	var meta noteMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parsing metadata for %s: %w", title, err)
	}
	return &meta, nil
}

// writeFileAtomic writes to a temp file and renames it into place so a
// crash never leaves a half-written note.
func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
