package localstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/google/uuid"

	"notevault-be/internal/apperror"
	"notevault-be/internal/entity"
)

// localSalt is the fixed salt for the fallback credential digest. This is
// explicitly a fallback-only mechanism for the no-backend mode, not secure
// credential storage; the remote backend owns real password handling.
const localSalt = "salt_key_2024"

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password + localSalt))
	return hex.EncodeToString(sum[:])
}

type userRepository struct {
	store *Store
}

func (r *userRepository) loadUsers() ([]entity.LocalCredential, error) {
	var users []entity.LocalCredential
	if _, err := r.store.read(keyUsers, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) Register(ctx context.Context, email, password string, name *string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := r.loadUsers()
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == email {
			return nil, apperror.AlreadyExists("user already exists")
		}
	}

	cred := entity.LocalCredential{
		Id:           uuid.New().String(),
		Email:        email,
		PasswordHash: hashPassword(password),
		Name:         name,
		CreatedAt:    time.Now().UTC(),
	}
	users = append(users, cred)
	if err := r.store.write(keyUsers, users); err != nil {
		return nil, err
	}

	user := &entity.User{Id: cred.Id, Email: cred.Email, Name: cred.Name}
	if err := r.store.write(keyCurrentUser, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := r.loadUsers()
	if err != nil {
		return nil, err
	}

	digest := hashPassword(password)
	for _, u := range users {
		if u.Email == email && u.PasswordHash == digest {
			user := &entity.User{Id: u.Id, Email: u.Email, Name: u.Name}
			if err := r.store.write(keyCurrentUser, user); err != nil {
				return nil, err
			}
			return user, nil
		}
	}
	return nil, apperror.InvalidCredentials()
}

func (r *userRepository) Get(ctx context.Context, id string) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users, err := r.loadUsers()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if u.Id == id {
			return &entity.User{Id: u.Id, Email: u.Email, Name: u.Name}, nil
		}
	}
	return nil, apperror.NotFound("user")
}

func (r *userRepository) SetCurrentUser(ctx context.Context, user *entity.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.write(keyCurrentUser, user)
}

// CurrentUser returns the simulated session's public user fields, or nil
// without error when nobody is signed in.
func (r *userRepository) CurrentUser(ctx context.Context) (*entity.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	var user entity.User
	found, err := r.store.read(keyCurrentUser, &user)
	if err != nil {
		return nil, err
	}
	if !found || user.Id == "" {
		return nil, nil
	}
	return &user, nil
}

func (r *userRepository) ClearCurrentUser(ctx context.Context) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.remove(keyCurrentUser)
}
