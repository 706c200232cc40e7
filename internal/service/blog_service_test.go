package service

import (
	"context"
	"errors"
	"testing"

	"blogserver/internal/models"
)

// mockPostRepo is a lightweight in-test mock for repository.Posts.
type mockPostRepo struct {
	CreateFn        func(p models.BlogPost) (string, error)
	GetByIDFn       func(id string) (*models.BlogPost, error)
	ListFn          func() ([]models.BlogPost, error)
	UpdateFn        func(id, title, content string) (bool, error)
	DeleteFn        func(id string) (bool, error)
	AppendCommentFn func(postID string, c models.Comment) error

	updateCalls  int
	deleteCalls  int
	commentCalls []models.Comment
}

func (m *mockPostRepo) Create(_ context.Context, p models.BlogPost) (string, error) {
	return m.CreateFn(p)
}

func (m *mockPostRepo) GetByID(_ context.Context, id string) (*models.BlogPost, error) {
	return m.GetByIDFn(id)
}

func (m *mockPostRepo) List(_ context.Context) ([]models.BlogPost, error) {
	return m.ListFn()
}

func (m *mockPostRepo) Update(_ context.Context, id, title, content string) (bool, error) {
	m.updateCalls++
	return m.UpdateFn(id, title, content)
}

func (m *mockPostRepo) Delete(_ context.Context, id string) (bool, error) {
	m.deleteCalls++
	return m.DeleteFn(id)
}

func (m *mockPostRepo) AppendComment(_ context.Context, postID string, c models.Comment) error {
	m.commentCalls = append(m.commentCalls, c)
	return m.AppendCommentFn(postID, c)
}

func ownedPost(id, author string) *models.BlogPost {
	return &models.BlogPost{
		ID:          id,
		BlogTitle:   "Hi",
		BlogContent: "World",
		AuthorID:    author,
		Comments:    []models.Comment{},
	}
}

func TestBlogService_Create_SetsAuthorFromCaller(t *testing.T) {
	var stored models.BlogPost
	posts := &mockPostRepo{
		CreateFn: func(p models.BlogPost) (string, error) {
			stored = p
			return "p-1", nil
		},
	}
	svc := NewBlogService(posts, &mockUserRepo{})

	id, err := svc.Create(context.Background(), "u-7", "Hi", "World")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != "p-1" {
		t.Fatalf("id: got %q", id)
	}
	if stored.AuthorID != "u-7" {
		t.Fatalf("author: got %q, want u-7", stored.AuthorID)
	}
}

func TestBlogService_List_ExpandsAuthors(t *testing.T) {
	posts := &mockPostRepo{
		ListFn: func() ([]models.BlogPost, error) {
			return []models.BlogPost{
				*ownedPost("p-1", "u-7"),
				*ownedPost("p-2", "u-9"),
				*ownedPost("p-3", "u-7"),
			}, nil
		},
	}
	var askedIDs []string
	users := &mockUserRepo{
		UsernamesFn: func(ids []string) (map[string]string, error) {
			askedIDs = ids
			return map[string]string{"u-7": "alice", "u-9": "bob"}, nil
		},
	}
	svc := NewBlogService(posts, users)

	views, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}
	if views[0].Author.Username != "alice" || views[1].Author.Username != "bob" || views[2].Author.Username != "alice" {
		t.Fatalf("authors not expanded: %+v", views)
	}
	// duplicate author ids are looked up once
	if len(askedIDs) != 2 {
		t.Fatalf("expected 2 distinct ids in lookup, got %v", askedIDs)
	}
}

func TestBlogService_GetByID(t *testing.T) {
	posts := &mockPostRepo{
		GetByIDFn: func(id string) (*models.BlogPost, error) {
			if id == "p-1" {
				p := ownedPost("p-1", "u-7")
				p.Comments = []models.Comment{{Text: "first", AuthorID: "u-9"}}
				return p, nil
			}
			return nil, nil
		},
	}
	users := &mockUserRepo{
		UsernamesFn: func(ids []string) (map[string]string, error) {
			return map[string]string{"u-7": "alice"}, nil
		},
	}
	svc := NewBlogService(posts, users)

	v, err := svc.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Author.Username != "alice" || len(v.Comments) != 1 {
		t.Fatalf("unexpected view: %+v", v)
	}

	if _, err := svc.GetByID(context.Background(), "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}

func TestBlogService_Update_OwnerOnly(t *testing.T) {
	posts := &mockPostRepo{
		GetByIDFn: func(id string) (*models.BlogPost, error) {
			if id == "p-1" {
				return ownedPost("p-1", "u-7"), nil
			}
			return nil, nil
		},
		UpdateFn: func(id, title, content string) (bool, error) { return true, nil },
	}
	svc := NewBlogService(posts, &mockUserRepo{})

	// not the author → ErrNotOwner, repo Update never runs
	err := svc.Update(context.Background(), "u-2", "p-1", "New", "Text")
	if !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if posts.updateCalls != 0 {
		t.Fatalf("Update must not run for a non-owner")
	}

	// missing post is reported before ownership
	err = svc.Update(context.Background(), "u-2", "missing", "New", "Text")
	if !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	// the author may update
	if err := svc.Update(context.Background(), "u-7", "p-1", "New", "Text"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts.updateCalls != 1 {
		t.Fatalf("expected one Update call, got %d", posts.updateCalls)
	}
}

func TestBlogService_Delete_OwnerOnly(t *testing.T) {
	posts := &mockPostRepo{
		GetByIDFn: func(id string) (*models.BlogPost, error) {
			if id == "p-1" {
				return ownedPost("p-1", "u-7"), nil
			}
			return nil, nil
		},
		DeleteFn: func(id string) (bool, error) { return true, nil },
	}
	svc := NewBlogService(posts, &mockUserRepo{})

	if err := svc.Delete(context.Background(), "u-2", "p-1"); !errors.Is(err, ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if posts.deleteCalls != 0 {
		t.Fatalf("Delete must not run for a non-owner")
	}

	if err := svc.Delete(context.Background(), "u-7", "missing"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}

	if err := svc.Delete(context.Background(), "u-7", "p-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestBlogService_AddComment_AnyAuthenticatedUser(t *testing.T) {
	posts := &mockPostRepo{
		GetByIDFn: func(id string) (*models.BlogPost, error) {
			if id == "p-1" {
				return ownedPost("p-1", "u-7"), nil
			}
			return nil, nil
		},
		AppendCommentFn: func(postID string, c models.Comment) error { return nil },
	}
	svc := NewBlogService(posts, &mockUserRepo{})

	// a non-author can comment
	if err := svc.AddComment(context.Background(), "u-9", "p-1", "nice post"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts.commentCalls) != 1 || posts.commentCalls[0].AuthorID != "u-9" {
		t.Fatalf("comment author must be the caller: %+v", posts.commentCalls)
	}

	if err := svc.AddComment(context.Background(), "u-9", "missing", "hi"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("expected ErrPostNotFound, got %v", err)
	}
}
