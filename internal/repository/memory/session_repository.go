package memory

import (
	"time"

	"github.com/patrickmn/go-cache"

	"notevault-be/internal/entity"
)

// Session is a live sign-in: the token id issued at login mapped to the
// account's public fields. Exactly one user per session; expiry matches the
// token lifetime.
type Session struct {
	TokenId  string
	User     entity.User
	IssuedAt time.Time
}

type SessionRepository struct {
	cache *cache.Cache
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	// Purge interval is coarse; expired sessions only need to disappear
	// eventually since token expiry is enforced at the JWT layer too.
	return &SessionRepository{
		cache: cache.New(ttl, 10*time.Minute),
	}
}

func (r *SessionRepository) Save(session *Session) {
	r.cache.Set(session.TokenId, session, cache.DefaultExpiration)
}

func (r *SessionRepository) Get(tokenId string) (*Session, bool) {
	if x, found := r.cache.Get(tokenId); found {
		return x.(*Session), true
	}
	return nil, false
}

func (r *SessionRepository) Delete(tokenId string) {
	r.cache.Delete(tokenId)
}
