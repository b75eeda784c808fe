package note

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("note: note not found")
	ErrDuplicateName = errors.New("note: name already taken")
	ErrNotOwner      = errors.New("note: caller does not own this note")
)

// Filter narrows a note listing. Nil fields are ignored.
type Filter struct {
	Name   *string
	UserID *string
}

// NoteRepository is the storage contract for note records.
type NoteRepository interface {
	CreateNote(ctx context.Context, n Note) (Note, error)
	FindNote(ctx context.Context, noteID string) (*Note, error)
	UpdateNote(ctx context.Context, noteID, name, content string) (*Note, error)
	DeleteNote(ctx context.Context, noteID string) error
	ListNotes(ctx context.Context, filter Filter) ([]Note, error)
}

// NoteService is the surface the HTTP handlers depend on. Mutations enforce
// ownership; listing deliberately does not.
type NoteService interface {
	CreateNote(ctx context.Context, params CreateNoteParams, ownerID string) (Note, error)
	UpdateNote(ctx context.Context, noteID string, params UpdateNoteParams, callerID string) (*Note, error)
	DeleteNote(ctx context.Context, noteID, callerID string) error
	ListNotes(ctx context.Context, filter Filter) ([]Note, error)
}
