package remote

import (
	"gorm.io/gorm"

	"notevault-be/internal/repository/contract"
)

// Provider is the remote backend adapter: it translates the repository
// contract into queries against the hosted relational service. Ownership of
// note rows is additionally enforced server-side by the backend's row-level
// policy; the explicit user filters here mirror that contract.
type Provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

func (p *Provider) Name() string {
	return "remote"
}

func (p *Provider) Notes() contract.NoteRepository {
	return newNoteRepository(p.db)
}

func (p *Provider) Categories() contract.CategoryRepository {
	return newCategoryRepository(p.db)
}

func (p *Provider) Users() contract.UserRepository {
	return newUserRepository(p.db)
}
