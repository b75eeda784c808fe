package note_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hmondejar/notekit/internal/auth"
	"github.com/hmondejar/notekit/internal/note"
	"github.com/hmondejar/notekit/internal/pkg/message"
	"github.com/hmondejar/notekit/internal/pkg/web"
)

func newNoteRequest(method, target, callerID string, params any) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	ctx := req.Context()
	if callerID != "" {
		ctx = auth.ContextWithUser(ctx, callerID)
	}
	if params != nil {
		ctx = web.NewContextWithParams(ctx, params)
	}
	return req.WithContext(ctx)
}

func TestHandler_CreateNote(t *testing.T) {
	t.Parallel()

	t.Run("no authenticated user", func(t *testing.T) {
		t.Parallel()

		handler := note.NewHandler(&note.StubService{})

		req := newNoteRequest(http.MethodPost, "/notes", "", note.NoteRequest{Name: "n", Content: "c"})
		rec := httptest.NewRecorder()
		handler.CreateNote(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("note is created with the caller as owner", func(t *testing.T) {
		t.Parallel()

		svc := &note.StubService{
			CreateNoteFunc: func(_ context.Context, params note.CreateNoteParams, owner string) (note.Note, error) {
				return note.Note{ID: noteID, Name: params.Name, Content: params.Content, UserID: owner}, nil
			},
		}
		handler := note.NewHandler(svc)

		req := newNoteRequest(http.MethodPost, "/notes", ownerID, note.NoteRequest{Name: "groceries", Content: "milk"})
		rec := httptest.NewRecorder()
		handler.CreateNote(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusCreated {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusCreated)
		}
		web.AssertContentType(t, res)

		body := web.DecodeJSONResponse(t, res)
		data, ok := body["data"].(map[string]any)
		if !ok {
			t.Fatalf("body[%q] = %v, want an object", "data", body["data"])
		}
		if data["user"] != ownerID {
			t.Errorf("data[%q] = %v, want: %q", "user", data["user"], ownerID)
		}
	})

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()

		svc := &note.StubService{
			CreateNoteFunc: func(_ context.Context, _ note.CreateNoteParams, _ string) (note.Note, error) {
				return note.Note{}, note.ErrDuplicateName
			},
		}
		handler := note.NewHandler(svc)

		req := newNoteRequest(http.MethodPost, "/notes", ownerID, note.NoteRequest{Name: "groceries", Content: "milk"})
		rec := httptest.NewRecorder()
		handler.CreateNote(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusBadRequest {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusBadRequest)
		}

		body := web.DecodeJSONResponse(t, res)
		if body["error"] != message.NoteNameTaken {
			t.Errorf("body[%q] = %v, want: %q", "error", body["error"], message.NoteNameTaken)
		}
	})
}

func TestHandler_UpdateNote(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		svcErr     error
		wantStatus int
		wantMsg    string
	}{
		{
			name:       "note does not exist",
			svcErr:     note.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantMsg:    message.NoteNotFound,
		},
		{
			name:       "caller does not own the note",
			svcErr:     note.ErrNotOwner,
			wantStatus: http.StatusUnauthorized,
			wantMsg:    message.NoteNotOwner,
		},
		{
			name:       "owner updates the note",
			wantStatus: http.StatusOK,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &note.StubService{
				UpdateNoteFunc: func(_ context.Context, id string, params note.UpdateNoteParams, _ string) (*note.Note, error) {
					if tt.svcErr != nil {
						return nil, tt.svcErr
					}
					return &note.Note{ID: id, Name: params.Name, Content: params.Content, UserID: ownerID}, nil
				},
			}
			handler := note.NewHandler(svc)

			req := newNoteRequest(http.MethodPut, "/notes/"+noteID, ownerID, note.NoteRequest{Name: "renamed", Content: "changed"})
			req.SetPathValue("id", noteID)
			rec := httptest.NewRecorder()
			handler.UpdateNote(rec, req)

			res := rec.Result()
			defer res.Body.Close()

			if res.StatusCode != tt.wantStatus {
				t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, tt.wantStatus)
			}

			body := web.DecodeJSONResponse(t, res)
			if tt.wantMsg != "" {
				if body["error"] != tt.wantMsg {
					t.Errorf("body[%q] = %v, want: %q", "error", body["error"], tt.wantMsg)
				}
				return
			}

			data, ok := body["data"].(map[string]any)
			if !ok {
				t.Fatalf("body[%q] = %v, want an object", "data", body["data"])
			}
			if data["name"] != "renamed" {
				t.Errorf("data[%q] = %v, want: %q", "name", data["name"], "renamed")
			}
		})
	}
}

func TestHandler_DeleteNote(t *testing.T) {
	t.Parallel()

	t.Run("caller does not own the note", func(t *testing.T) {
		t.Parallel()

		svc := &note.StubService{
			DeleteNoteFunc: func(_ context.Context, _, _ string) error {
				return note.ErrNotOwner
			},
		}
		handler := note.NewHandler(svc)

		req := newNoteRequest(http.MethodDelete, "/notes/"+noteID, otherID, nil)
		req.SetPathValue("id", noteID)
		rec := httptest.NewRecorder()
		handler.DeleteNote(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusUnauthorized {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusUnauthorized)
		}
	})

	t.Run("owner deletes the note", func(t *testing.T) {
		t.Parallel()

		svc := &note.StubService{
			DeleteNoteFunc: func(_ context.Context, id, caller string) error {
				if id != noteID {
					t.Errorf("id = %q, want: %q", id, noteID)
				}
				if caller != ownerID {
					t.Errorf("caller = %q, want: %q", caller, ownerID)
				}
				return nil
			},
		}
		handler := note.NewHandler(svc)

		req := newNoteRequest(http.MethodDelete, "/notes/"+noteID, ownerID, nil)
		req.SetPathValue("id", noteID)
		rec := httptest.NewRecorder()
		handler.DeleteNote(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}
	})
}

func TestHandler_ListNotes(t *testing.T) {
	t.Parallel()

	t.Run("count matches the result length", func(t *testing.T) {
		t.Parallel()

		svc := &note.StubService{
			ListNotesFunc: func(_ context.Context, _ note.Filter) ([]note.Note, error) {
				return []note.Note{
					{ID: "n1", Name: "first", UserID: ownerID},
					{ID: "n2", Name: "second", UserID: otherID},
				}, nil
			},
		}
		handler := note.NewHandler(svc)

		req := newNoteRequest(http.MethodGet, "/notes", ownerID, nil)
		rec := httptest.NewRecorder()
		handler.ListNotes(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Errorf("res.StatusCode = %d, want: %d", res.StatusCode, http.StatusOK)
		}

		body := web.DecodeJSONResponse(t, res)
		if body["count"] != float64(2) {
			t.Errorf("body[%q] = %v, want: 2", "count", body["count"])
		}
		data, ok := body["data"].([]any)
		if !ok {
			t.Fatalf("body[%q] = %v, want an array", "data", body["data"])
		}
		if len(data) != 2 {
			t.Errorf("len(data) = %d, want: 2", len(data))
		}
	})

	t.Run("query filters reach the service", func(t *testing.T) {
		t.Parallel()

		var gotFilter note.Filter
		svc := &note.StubService{
			ListNotesFunc: func(_ context.Context, filter note.Filter) ([]note.Note, error) {
				gotFilter = filter
				return []note.Note{}, nil
			},
		}
		handler := note.NewHandler(svc)

		req := newNoteRequest(http.MethodGet, "/notes?name=groceries&user="+otherID, ownerID, nil)
		rec := httptest.NewRecorder()
		handler.ListNotes(rec, req)

		res := rec.Result()
		defer res.Body.Close()

		if gotFilter.Name == nil || *gotFilter.Name != "groceries" {
			t.Errorf("filter.Name = %v, want: %q", gotFilter.Name, "groceries")
		}
		if gotFilter.UserID == nil || *gotFilter.UserID != otherID {
			t.Errorf("filter.UserID = %v, want: %q", gotFilter.UserID, otherID)
		}

		body := web.DecodeJSONResponse(t, res)
		if body["count"] != float64(0) {
			t.Errorf("body[%q] = %v, want: 0", "count", body["count"])
		}
	})
}
