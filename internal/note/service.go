package note

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo NoteRepository
}

var _ NoteService = (*Service)(nil)

func NewService(repo NoteRepository) *Service {
	return &Service{repo: repo}
}

type CreateNoteParams struct {
	Name    string
	Content string
}

type UpdateNoteParams struct {
	Name    string
	Content string
}

// CreateNote persists a new note owned by ownerID. The owner always comes
// from the authenticated caller, never from the payload.
func (s *Service) CreateNote(ctx context.Context, params CreateNoteParams, ownerID string) (Note, error) {
	n := Note{
		ID:      uuid.NewString(),
		Name:    params.Name,
		Content: params.Content,
		UserID:  ownerID,
	}

	created, err := s.repo.CreateNote(ctx, n)
	if err != nil {
		return created, fmt.Errorf("create note %q: %w", params.Name, err)
	}
	return created, nil
}

// UpdateNote applies the patch after checking the caller owns the note. The
// read and the write are separate statements; two concurrent updates to the
// same note are last-write-wins.
func (s *Service) UpdateNote(ctx context.Context, noteID string, params UpdateNoteParams, callerID string) (*Note, error) {
	existing, err := s.repo.FindNote(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("find note with id %s: %w", noteID, err)
	}

	if existing.UserID != callerID {
		return nil, ErrNotOwner
	}

	updated, err := s.repo.UpdateNote(ctx, noteID, params.Name, params.Content)
	if err != nil {
		return nil, fmt.Errorf("update note with id %s: %w", noteID, err)
	}
	return updated, nil
}

// DeleteNote removes the note after the same ownership check as UpdateNote.
func (s *Service) DeleteNote(ctx context.Context, noteID, callerID string) error {
	existing, err := s.repo.FindNote(ctx, noteID)
	if err != nil {
		return fmt.Errorf("find note with id %s: %w", noteID, err)
	}

	if existing.UserID != callerID {
		return ErrNotOwner
	}

	if err := s.repo.DeleteNote(ctx, noteID); err != nil {
		return fmt.Errorf("delete note with id %s: %w", noteID, err)
	}
	return nil
}

// ListNotes returns notes matching the caller-supplied filter, newest first.
// Listing is not scoped to the caller: any authenticated user sees all notes.
func (s *Service) ListNotes(ctx context.Context, filter Filter) ([]Note, error) {
	notes, err := s.repo.ListNotes(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return notes, nil
}
