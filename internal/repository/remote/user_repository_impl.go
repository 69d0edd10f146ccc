package remote

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"notevault-be/internal/apperror"
	"notevault-be/internal/entity"
	"notevault-be/internal/mapper"
	"notevault-be/internal/model"
	"notevault-be/internal/repository/contract"
)

type userRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func newUserRepository(db *gorm.DB) contract.UserRepository {
	return &userRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *userRepositoryImpl) Register(ctx context.Context, email, password string, name *string) (*entity.User, error) {
	var existing model.User
	err := r.db.WithContext(ctx).First(&existing, "email = ?", email).Error
	if err == nil {
		return nil, apperror.AlreadyExists("user already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, translate(err, "user")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.Generic(err)
	}
	hashStr := string(hash)

	// Profile metadata carries both keys the session system exposes; the
	// mapper resolves "name" first, "full_name" second.
	var meta []byte
	if name != nil {
		meta, _ = json.Marshal(map[string]string{"name": *name, "full_name": *name})
	}

	m := &model.User{
		Id:              uuid.New().String(),
		Email:           email,
		PasswordHash:    &hashStr,
		RawUserMetaData: meta,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, translate(err, "user")
	}
	return r.mapper.ToEntity(m), nil
}

func (r *userRepositoryImpl) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).First(&m, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.InvalidCredentials()
	}
	if err != nil {
		return nil, translate(err, "user")
	}

	if m.PasswordHash == nil {
		return nil, apperror.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*m.PasswordHash), []byte(password)); err != nil {
		return nil, apperror.InvalidCredentials()
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *userRepositoryImpl) Get(ctx context.Context, id string) (*entity.User, error) {
	var m model.User
	err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, "user")
	}
	return r.mapper.ToEntity(&m), nil
}

// The remote backend's session system owns the notion of "current user";
// the process keeps no ambient session state in remote mode. These exist to
// satisfy the shared contract and are resolved per-token by the auth layer.

func (r *userRepositoryImpl) SetCurrentUser(ctx context.Context, user *entity.User) error {
	return nil
}

func (r *userRepositoryImpl) CurrentUser(ctx context.Context) (*entity.User, error) {
	return nil, nil
}

func (r *userRepositoryImpl) ClearCurrentUser(ctx context.Context) error {
	return nil
}
