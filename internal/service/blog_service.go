package service

import (
	"context"
	"fmt"

	"notevault-be/internal/apperror"
	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/pkg/logger"
	"notevault-be/internal/repository/contract"
)

// IBlogService is the public read surface: published notes only, no
// authentication. When the active backend is remote and a call fails, the
// service falls back to the local store once before giving up. This is
// best-effort degradation, not consistency: the two stores are never merged.
type IBlogService interface {
	ListPublished(ctx context.Context) ([]*dto.BlogNoteResponse, error)
	GetPublished(ctx context.Context, id string) (*dto.BlogNoteResponse, error)
}

type blogService struct {
	provider  contract.Provider
	fallback  contract.Provider
	clientURL string
	logger    logger.ILogger
}

// NewBlogService takes the active provider plus an optional local fallback;
// fallback is nil when the active provider already is the local store.
func NewBlogService(provider, fallback contract.Provider, clientURL string, sysLogger logger.ILogger) IBlogService {
	return &blogService{
		provider:  provider,
		fallback:  fallback,
		clientURL: clientURL,
		logger:    sysLogger,
	}
}

func (s *blogService) ListPublished(ctx context.Context) ([]*dto.BlogNoteResponse, error) {
	notes, err := s.provider.Notes().ListPublished(ctx)
	if err != nil && s.fallback != nil {
		s.logger.Warn("blog", "remote list failed, degrading to local store", map[string]interface{}{"error": err.Error()})
		notes, err = s.fallback.Notes().ListPublished(ctx)
	}
	if err != nil {
		return nil, err
	}

	out := make([]*dto.BlogNoteResponse, len(notes))
	for i, n := range notes {
		out[i] = s.toBlogResponse(n)
	}
	return out, nil
}

func (s *blogService) GetPublished(ctx context.Context, id string) (*dto.BlogNoteResponse, error) {
	note, err := s.provider.Notes().GetPublished(ctx, id)
	if err != nil && s.fallback != nil && !apperror.IsNotFound(err) {
		s.logger.Warn("blog", "remote lookup failed, degrading to local store", map[string]interface{}{"note_id": id, "error": err.Error()})
		note, err = s.fallback.Notes().GetPublished(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return s.toBlogResponse(note), nil
}

func (s *blogService) toBlogResponse(n *entity.Note) *dto.BlogNoteResponse {
	return &dto.BlogNoteResponse{
		Id:          n.Id,
		Title:       n.Title,
		Content:     n.Content,
		PublishedAt: n.PublishedAt,
		Categories:  toCategoryResponses(n.Categories),
		UpdatedAt:   n.UpdatedAt,
		ShareURL:    fmt.Sprintf("%s/blog/%s", s.clientURL, n.Id),
	}
}
