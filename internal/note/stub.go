package note

import (
	"context"
	"errors"
)

// StubService is a test double for NoteService with per-method overrides.
type StubService struct {
	CreateNoteFunc func(ctx context.Context, params CreateNoteParams, ownerID string) (Note, error)
	UpdateNoteFunc func(ctx context.Context, noteID string, params UpdateNoteParams, callerID string) (*Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID, callerID string) error
	ListNotesFunc  func(ctx context.Context, filter Filter) ([]Note, error)
}

var _ NoteService = (*StubService)(nil)

func (s *StubService) CreateNote(ctx context.Context, params CreateNoteParams, ownerID string) (Note, error) {
	if s.CreateNoteFunc == nil {
		return Note{}, errors.New("CreateNote not implemented by stub")
	}
	return s.CreateNoteFunc(ctx, params, ownerID)
}

func (s *StubService) UpdateNote(ctx context.Context, noteID string, params UpdateNoteParams, callerID string) (*Note, error) {
	if s.UpdateNoteFunc == nil {
		return nil, errors.New("UpdateNote not implemented by stub")
	}
	return s.UpdateNoteFunc(ctx, noteID, params, callerID)
}

func (s *StubService) DeleteNote(ctx context.Context, noteID, callerID string) error {
	if s.DeleteNoteFunc == nil {
		return errors.New("DeleteNote not implemented by stub")
	}
	return s.DeleteNoteFunc(ctx, noteID, callerID)
}

func (s *StubService) ListNotes(ctx context.Context, filter Filter) ([]Note, error) {
	if s.ListNotesFunc == nil {
		return nil, errors.New("ListNotes not implemented by stub")
	}
	return s.ListNotesFunc(ctx, filter)
}

// StubRepo is a test double for NoteRepository with per-method overrides.
type StubRepo struct {
	CreateNoteFunc func(ctx context.Context, n Note) (Note, error)
	FindNoteFunc   func(ctx context.Context, noteID string) (*Note, error)
	UpdateNoteFunc func(ctx context.Context, noteID, name, content string) (*Note, error)
	DeleteNoteFunc func(ctx context.Context, noteID string) error
	ListNotesFunc  func(ctx context.Context, filter Filter) ([]Note, error)
}

var _ NoteRepository = (*StubRepo)(nil)

func (r *StubRepo) CreateNote(ctx context.Context, n Note) (Note, error) {
	if r.CreateNoteFunc == nil {
		return Note{}, errors.New("CreateNote not implemented by stub")
	}
	return r.CreateNoteFunc(ctx, n)
}

func (r *StubRepo) FindNote(ctx context.Context, noteID string) (*Note, error) {
	if r.FindNoteFunc == nil {
		return nil, errors.New("FindNote not implemented by stub")
	}
	return r.FindNoteFunc(ctx, noteID)
}

func (r *StubRepo) UpdateNote(ctx context.Context, noteID, name, content string) (*Note, error) {
	if r.UpdateNoteFunc == nil {
		return nil, errors.New("UpdateNote not implemented by stub")
	}
	return r.UpdateNoteFunc(ctx, noteID, name, content)
}

func (r *StubRepo) DeleteNote(ctx context.Context, noteID string) error {
	if r.DeleteNoteFunc == nil {
		return errors.New("DeleteNote not implemented by stub")
	}
	return r.DeleteNoteFunc(ctx, noteID)
}

func (r *StubRepo) ListNotes(ctx context.Context, filter Filter) ([]Note, error) {
	if r.ListNotesFunc == nil {
		return nil, errors.New("ListNotes not implemented by stub")
	}
	return r.ListNotesFunc(ctx, filter)
}
