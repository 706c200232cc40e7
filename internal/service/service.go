package service

import (
	"context"

	"blogserver/internal/models"
	"blogserver/internal/repository"
)

type Authorization interface {
	Register(ctx context.Context, username, password, email string) (string, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (string, error)
}

// Users exposes owner-gated account mutation.
type Users interface {
	Update(ctx context.Context, callerID, targetID, username, email string) error
}

// Blog exposes post CRUD and comment append. Reads return PostView with the
// author reference expanded to a username.
type Blog interface {
	Create(ctx context.Context, authorID, title, content string) (string, error)
	List(ctx context.Context) ([]PostView, error)
	GetByID(ctx context.Context, id string) (*PostView, error)
	Update(ctx context.Context, callerID, id, title, content string) error
	Delete(ctx context.Context, callerID, id string) error
	AddComment(ctx context.Context, callerID, postID, text string) error
}

// AuthorRef is the read-time expansion of a post's author id.
type AuthorRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// PostView is a BlogPost shaped for responses: the stored author id is
// resolved to a username at the service boundary, never inside storage.
type PostView struct {
	ID          string           `json:"id"`
	BlogTitle   string           `json:"blogtitle"`
	BlogContent string           `json:"blogcontent"`
	Author      AuthorRef        `json:"author"`
	Comments    []models.Comment `json:"comments"`
}

//
// Root Service aggregates all sub-services.
//

type Service struct {
	Authorization
	Users
	Blog
}

// NewService wires the repository layer into concrete services.
// signingKey is the shared JWT secret.
func NewService(repos *repository.Repository, signingKey string) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, signingKey),
		Users:         NewUserService(repos.Users),
		Blog:          NewBlogService(repos.Posts, repos.Users),
	}
}
