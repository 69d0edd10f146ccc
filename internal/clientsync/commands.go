package clientsync

import (
	"context"

	"notevault-be/internal/dto"
	"notevault-be/internal/service"
)

// Command is one user-initiated mutation: Apply performs the backend call,
// Reconcile merges the authoritative response into the workspace. Reconcile
// must only run after a successful Apply — a failed Apply leaves the
// workspace exactly as it was, with no partial list mutation.
type Command interface {
	Apply(ctx context.Context) error
	Reconcile(ws *Workspace)
}

// Run executes a command against the workspace, reconciling only on success.
func Run(ctx context.Context, ws *Workspace, cmd Command) error {
	if err := cmd.Apply(ctx); err != nil {
		return err
	}
	cmd.Reconcile(ws)
	return nil
}

// CreateNote creates a fresh placeholder note and opens it in the editor.
type CreateNote struct {
	Notes  service.INoteService
	UserId string

	created *dto.NoteResponse
}

func (c *CreateNote) Apply(ctx context.Context) error {
	note, err := c.Notes.Create(ctx, c.UserId)
	if err != nil {
		return err
	}
	c.created = note
	return nil
}

func (c *CreateNote) Reconcile(ws *Workspace) {
	ws.prepend(c.created)
	ws.Select(c.created)
}

// SaveNote persists the draft's title, content and category set for the
// selected note. The draft is re-snapshotted from the returned entity, not
// from the pre-mutation optimistic values.
type SaveNote struct {
	Notes  service.INoteService
	UserId string
	NoteId string
	Draft  Draft

	updated *dto.NoteResponse
}

func (c *SaveNote) Apply(ctx context.Context) error {
	note, err := c.Notes.Update(ctx, c.UserId, &dto.UpdateNoteRequest{
		Id:          c.NoteId,
		Title:       c.Draft.Title,
		Content:     c.Draft.Content,
		CategoryIds: c.Draft.CategoryIds,
	})
	if err != nil {
		return err
	}
	c.updated = note
	return nil
}

func (c *SaveNote) Reconcile(ws *Workspace) {
	ws.replace(c.updated)
	if ws.Selected != nil && ws.Selected.Id == c.updated.Id {
		ws.Selected = c.updated
		ws.snapshotDraft(c.updated)
	}
}

// DeleteNote removes a note; the selection clears when it was the one open.
type DeleteNote struct {
	Notes  service.INoteService
	UserId string
	NoteId string
}

func (c *DeleteNote) Apply(ctx context.Context) error {
	return c.Notes.Delete(ctx, c.UserId, c.NoteId)
}

func (c *DeleteNote) Reconcile(ws *Workspace) {
	ws.removeById(c.NoteId)
	if ws.Selected != nil && ws.Selected.Id == c.NoteId {
		ws.Select(nil)
	}
}

// PublishNote flips the note public; Unpublish reverses it. Both reconcile
// from the authoritative response so the publish timestamp is the backend's.
type PublishNote struct {
	Notes  service.INoteService
	UserId string
	NoteId string

	updated *dto.NoteResponse
}

func (c *PublishNote) Apply(ctx context.Context) error {
	note, err := c.Notes.Publish(ctx, c.UserId, c.NoteId)
	if err != nil {
		return err
	}
	c.updated = note
	return nil
}

func (c *PublishNote) Reconcile(ws *Workspace) {
	reconcileUpdated(ws, c.updated)
}

type UnpublishNote struct {
	Notes  service.INoteService
	UserId string
	NoteId string

	updated *dto.NoteResponse
}

func (c *UnpublishNote) Apply(ctx context.Context) error {
	note, err := c.Notes.Unpublish(ctx, c.UserId, c.NoteId)
	if err != nil {
		return err
	}
	c.updated = note
	return nil
}

func (c *UnpublishNote) Reconcile(ws *Workspace) {
	reconcileUpdated(ws, c.updated)
}

func reconcileUpdated(ws *Workspace, note *dto.NoteResponse) {
	ws.replace(note)
	if ws.Selected != nil && ws.Selected.Id == note.Id {
		ws.Selected = note
		ws.snapshotDraft(note)
	}
}
