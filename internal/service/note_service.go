package service

import (
	"context"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/pkg/logger"
	"notevault-be/internal/repository/contract"
)

// Every note starts from the same placeholder; the editor overwrites it on
// the first save.
const (
	defaultNoteTitle   = "New Note"
	defaultNoteContent = "<p>Start writing your note here...</p>"
)

type INoteService interface {
	List(ctx context.Context, userId string) ([]*dto.NoteResponse, error)
	Show(ctx context.Context, userId, id string) (*dto.NoteResponse, error)
	Create(ctx context.Context, userId string) (*dto.NoteResponse, error)
	Update(ctx context.Context, userId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error)
	SetCategories(ctx context.Context, userId string, req *dto.SetNoteCategoriesRequest) (*dto.NoteResponse, error)
	Delete(ctx context.Context, userId, id string) error
	Publish(ctx context.Context, userId, id string) (*dto.NoteResponse, error)
	Unpublish(ctx context.Context, userId, id string) (*dto.NoteResponse, error)
}

type noteService struct {
	provider contract.Provider
	logger   logger.ILogger
}

func NewNoteService(provider contract.Provider, sysLogger logger.ILogger) INoteService {
	return &noteService{
		provider: provider,
		logger:   sysLogger,
	}
}

func (s *noteService) List(ctx context.Context, userId string) ([]*dto.NoteResponse, error) {
	notes, err := s.provider.Notes().ListByUser(ctx, userId)
	if err != nil {
		return nil, err
	}
	return toNoteResponses(notes), nil
}

func (s *noteService) Show(ctx context.Context, userId, id string) (*dto.NoteResponse, error) {
	note, err := s.provider.Notes().Get(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Create(ctx context.Context, userId string) (*dto.NoteResponse, error) {
	note, err := s.provider.Notes().Create(ctx, &entity.Note{
		Title:   defaultNoteTitle,
		Content: defaultNoteContent,
		UserId:  userId,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("note", "note created", map[string]interface{}{"note_id": note.Id, "user_id": userId})
	return toNoteResponse(note), nil
}

// Update persists the scalar fields, then rewrites the category link set,
// and returns the authoritative post-mutation note from the second call.
func (s *noteService) Update(ctx context.Context, userId string, req *dto.UpdateNoteRequest) (*dto.NoteResponse, error) {
	_, err := s.provider.Notes().Update(ctx, &entity.Note{
		Id:      req.Id,
		UserId:  userId,
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	note, err := s.provider.Notes().SetCategories(ctx, req.Id, userId, req.CategoryIds)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) SetCategories(ctx context.Context, userId string, req *dto.SetNoteCategoriesRequest) (*dto.NoteResponse, error) {
	note, err := s.provider.Notes().SetCategories(ctx, req.Id, userId, req.CategoryIds)
	if err != nil {
		return nil, err
	}
	return toNoteResponse(note), nil
}

func (s *noteService) Delete(ctx context.Context, userId, id string) error {
	if err := s.provider.Notes().Delete(ctx, id, userId); err != nil {
		return err
	}
	s.logger.Info("note", "note deleted", map[string]interface{}{"note_id": id, "user_id": userId})
	return nil
}

func (s *noteService) Publish(ctx context.Context, userId, id string) (*dto.NoteResponse, error) {
	note, err := s.provider.Notes().Publish(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	s.logger.Info("note", "note published", map[string]interface{}{"note_id": id})
	return toNoteResponse(note), nil
}

func (s *noteService) Unpublish(ctx context.Context, userId, id string) (*dto.NoteResponse, error) {
	note, err := s.provider.Notes().Unpublish(ctx, id, userId)
	if err != nil {
		return nil, err
	}
	s.logger.Info("note", "note unpublished", map[string]interface{}{"note_id": id})
	return toNoteResponse(note), nil
}
