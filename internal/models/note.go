package models

import (
	"strings"
	"time"
)

// Note is a single markdown document with its metadata.
type Note struct {
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewNote creates a note with both timestamps set to now.
func NewNote(title, content string) *Note {
	now := time.Now()
	return &Note{
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Touch marks the note as modified.
func (n *Note) Touch() {
	n.UpdatedAt = time.Now()
}

// Preview returns the first non-empty, non-heading content line, for
// display under the title in the note list.
func (n *Note) Preview() string {
	for _, line := range strings.Split(n.Content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return line
	}
	return ""
}
