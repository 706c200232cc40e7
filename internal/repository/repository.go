package repository

import (
	"context"
	"database/sql"

	"blogserver/internal/models"
)

type Users interface {
	Create(ctx context.Context, u models.User) (string, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	Update(ctx context.Context, id, username, email string) (bool, error)
	UsernamesByIDs(ctx context.Context, ids []string) (map[string]string, error)
}

type Posts interface {
	Create(ctx context.Context, p models.BlogPost) (string, error)
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	List(ctx context.Context) ([]models.BlogPost, error)
	Update(ctx context.Context, id, title, content string) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	AppendComment(ctx context.Context, postID string, c models.Comment) error
}

type Repository struct {
	Users Users
	Posts Posts
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
	}
}
