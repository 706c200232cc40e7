package service

import (
	"context"
	"errors"

	"blogserver/internal/models"
	"blogserver/internal/repository"
)

var ErrPostNotFound = errors.New("blog post not found")

type BlogService struct {
	posts repository.Posts
	users repository.Users
}

func NewBlogService(posts repository.Posts, users repository.Users) *BlogService {
	return &BlogService{posts: posts, users: users}
}

// Create stores a new post authored by the caller.
func (s *BlogService) Create(ctx context.Context, authorID, title, content string) (string, error) {
	return s.posts.Create(ctx, models.BlogPost{
		BlogTitle:   title,
		BlogContent: content,
		AuthorID:    authorID,
	})
}

// List returns every post with the author expanded to a username.
func (s *BlogService) List(ctx context.Context) ([]PostView, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(posts))
	seen := map[string]bool{}
	for _, p := range posts {
		if !seen[p.AuthorID] {
			seen[p.AuthorID] = true
			ids = append(ids, p.AuthorID)
		}
	}
	names, err := s.users.UsernamesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	views := make([]PostView, 0, len(posts))
	for _, p := range posts {
		views = append(views, toView(p, names[p.AuthorID]))
	}
	return views, nil
}

// GetByID returns one post with the author expanded to a username.
func (s *BlogService) GetByID(ctx context.Context, id string) (*PostView, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrPostNotFound
	}

	names, err := s.users.UsernamesByIDs(ctx, []string{p.AuthorID})
	if err != nil {
		return nil, err
	}
	v := toView(*p, names[p.AuthorID])
	return &v, nil
}

// Update overwrites title and content. Only the post's author may update it;
// existence is checked before ownership.
func (s *BlogService) Update(ctx context.Context, callerID, id, title, content string) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.AuthorID != callerID {
		return ErrNotOwner
	}

	ok, err := s.posts.Update(ctx, id, title, content)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}

// Delete removes a post. Only the post's author may delete it.
func (s *BlogService) Delete(ctx context.Context, callerID, id string) error {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	if p.AuthorID != callerID {
		return ErrNotOwner
	}

	ok, err := s.posts.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrPostNotFound
	}
	return nil
}

// AddComment appends {text, caller} to the post's comment list. Any
// authenticated user may comment; there is no ownership check.
func (s *BlogService) AddComment(ctx context.Context, callerID, postID, text string) error {
	p, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if p == nil {
		return ErrPostNotFound
	}
	return s.posts.AppendComment(ctx, postID, models.Comment{
		Text:     text,
		AuthorID: callerID,
	})
}

func toView(p models.BlogPost, username string) PostView {
	comments := p.Comments
	if comments == nil {
		comments = []models.Comment{}
	}
	return PostView{
		ID:          p.ID,
		BlogTitle:   p.BlogTitle,
		BlogContent: p.BlogContent,
		Author:      AuthorRef{ID: p.AuthorID, Username: username},
		Comments:    comments,
	}
}
