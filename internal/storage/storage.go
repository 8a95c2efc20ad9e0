package storage

import (
	"errors"

	"github.com/notemark/notemark/internal/models"
)

// ErrNoteNotFound is returned when a title has no note on disk.
var ErrNoteNotFound = errors.New("note not found")

// Storage persists notes.
type Storage interface {
	// Init prepares the backing store (creates directories, etc.).
	Init() error

	// ListNotes returns all notes, newest UpdatedAt first.
	ListNotes() ([]*models.Note, error)

	// ReadNote loads a note by title.
	ReadNote(title string) (*models.Note, error)

	// WriteNote saves a note, creating or replacing it.
	WriteNote(note *models.Note) error

	// DeleteNote removes a note by title.
	DeleteNote(title string) error

	// RenameNote moves a note from oldTitle to note.Title.
	RenameNote(oldTitle string, note *models.Note) error
}
