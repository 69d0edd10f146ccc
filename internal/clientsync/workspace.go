package clientsync

import "notevault-be/internal/dto"

// Workspace is the in-memory view state a client keeps between mutations:
// the authoritative notes list, the note open in the editor, and the
// editable draft fields. Draft fields are always snapshotted from the last
// successfully persisted entity, never mutated into the committed shape —
// mutations re-derive them from the backend's response.
type Workspace struct {
	Notes    []*dto.NoteResponse
	Selected *dto.NoteResponse
	Draft    Draft
}

// Draft holds the editable fields. Category toggles mutate only
// CategoryIds; nothing reaches a backend until an explicit save fires.
type Draft struct {
	Title       string
	Content     string
	CategoryIds []string
}

func NewWorkspace(notes []*dto.NoteResponse) *Workspace {
	return &Workspace{Notes: notes}
}

// Select opens a note in the editor and snapshots the draft from it.
func (w *Workspace) Select(note *dto.NoteResponse) {
	w.Selected = note
	if note == nil {
		w.Draft = Draft{}
		return
	}
	w.snapshotDraft(note)
}

// ToggleCategory flips an id in the draft's selected set. Pure view-state:
// no backend call.
func (w *Workspace) ToggleCategory(categoryId string) {
	for i, id := range w.Draft.CategoryIds {
		if id == categoryId {
			w.Draft.CategoryIds = append(w.Draft.CategoryIds[:i], w.Draft.CategoryIds[i+1:]...)
			return
		}
	}
	w.Draft.CategoryIds = append(w.Draft.CategoryIds, categoryId)
}

func (w *Workspace) snapshotDraft(note *dto.NoteResponse) {
	ids := make([]string, len(note.Categories))
	for i, c := range note.Categories {
		ids[i] = c.Id
	}
	w.Draft = Draft{
		Title:       note.Title,
		Content:     note.Content,
		CategoryIds: ids,
	}
}

func (w *Workspace) prepend(note *dto.NoteResponse) {
	w.Notes = append([]*dto.NoteResponse{note}, w.Notes...)
}

func (w *Workspace) replace(note *dto.NoteResponse) {
	for i, n := range w.Notes {
		if n.Id == note.Id {
			w.Notes[i] = note
			return
		}
	}
}

func (w *Workspace) removeById(id string) {
	filtered := w.Notes[:0]
	for _, n := range w.Notes {
		if n.Id != id {
			filtered = append(filtered, n)
		}
	}
	w.Notes = filtered
}
