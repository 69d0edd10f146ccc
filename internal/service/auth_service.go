package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"notevault-be/internal/dto"
	"notevault-be/internal/entity"
	"notevault-be/internal/pkg/logger"
	"notevault-be/internal/repository/contract"
	"notevault-be/internal/repository/memory"
	"notevault-be/pkg/events"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Logout(ctx context.Context, tokenId string) error
	CurrentUser(ctx context.Context, userId string) (*dto.UserDTO, error)
	// OnAuthStateChange subscribes to the session-change stream. Only the
	// remote backend emits events; in local mode the handler is never
	// invoked spontaneously and callers poll CurrentUser instead. The
	// returned function cancels the subscription.
	OnAuthStateChange(handler func(events.AuthStateEvent)) (func(), error)
}

type authService struct {
	provider    contract.Provider
	sessions    *memory.SessionRepository
	bus         *events.AuthStateBus
	logger      logger.ILogger
	remoteMode  bool
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewAuthService(
	provider contract.Provider,
	sessions *memory.SessionRepository,
	bus *events.AuthStateBus,
	sysLogger logger.ILogger,
	remoteMode bool,
	jwtSecret string,
	tokenExpiry time.Duration,
) IAuthService {
	return &authService{
		provider:    provider,
		sessions:    sessions,
		bus:         bus,
		logger:      sysLogger,
		remoteMode:  remoteMode,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.provider.Users().Register(ctx, req.Email, req.Password, req.Name)
	if err != nil {
		return nil, err
	}
	return s.openSession(user)
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.provider.Users().Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.openSession(user)
}

// openSession issues the bearer token, records the live session and, in
// remote mode, publishes the SIGNED_IN event.
func (s *authService) openSession(user *entity.User) (*dto.AuthResponse, error) {
	tokenId := uuid.New().String()
	now := time.Now()

	claims := jwt.MapClaims{
		"user_id": user.Id,
		"jti":     tokenId,
		"exp":     now.Add(s.tokenExpiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, err
	}

	s.sessions.Save(&memory.Session{
		TokenId:  tokenId,
		User:     *user,
		IssuedAt: now,
	})

	if s.remoteMode {
		if err := s.bus.Publish(events.AuthStateEvent{Type: events.EventSignedIn, User: user}); err != nil {
			s.logger.Warn("auth", "failed to publish SIGNED_IN event", map[string]interface{}{"error": err.Error()})
		}
	}

	s.logger.Info("auth", "session opened", map[string]interface{}{"user_id": user.Id})

	return &dto.AuthResponse{
		AccessToken: signedToken,
		User:        toUserDTO(user),
	}, nil
}

func (s *authService) Logout(ctx context.Context, tokenId string) error {
	s.sessions.Delete(tokenId)

	if err := s.provider.Users().ClearCurrentUser(ctx); err != nil {
		return err
	}

	if s.remoteMode {
		if err := s.bus.Publish(events.AuthStateEvent{Type: events.EventSignedOut}); err != nil {
			s.logger.Warn("auth", "failed to publish SIGNED_OUT event", map[string]interface{}{"error": err.Error()})
		}
	}
	return nil
}

// CurrentUser returns nil without error when nobody matches: the single
// User-or-nothing shape both backends share.
func (s *authService) CurrentUser(ctx context.Context, userId string) (*dto.UserDTO, error) {
	user, err := s.provider.Users().Get(ctx, userId)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	u := toUserDTO(user)
	return &u, nil
}

func (s *authService) OnAuthStateChange(handler func(events.AuthStateEvent)) (func(), error) {
	if !s.remoteMode {
		// Local mode: no session-change stream exists; hand back an inert
		// subscription.
		return func() {}, nil
	}
	return s.bus.Subscribe(handler)
}
