package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"blogserver/internal/models"

	"github.com/google/uuid"
)

type PostRepository struct {
	db *sql.DB
}

func NewPostRepository(db *sql.DB) *PostRepository {
	return &PostRepository{db: db}
}

var _ Posts = (*PostRepository)(nil)

const (
	insertPostSQL     = `INSERT INTO blog_posts (id, blogtitle, blogcontent, author) VALUES (?, ?, ?, ?)`
	selectPostByIDSQL = `SELECT id, blogtitle, blogcontent, author FROM blog_posts WHERE id = ?`
	selectPostsSQL    = `SELECT id, blogtitle, blogcontent, author FROM blog_posts ORDER BY rowid`
	updatePostSQL     = `UPDATE blog_posts SET blogtitle = ?, blogcontent = ? WHERE id = ?`
	deletePostSQL     = `DELETE FROM blog_posts WHERE id = ?`
	insertCommentSQL  = `INSERT INTO post_comments (post_id, author, text) VALUES (?, ?, ?)`
	// seq order is append order
	selectCommentsSQL = `SELECT post_id, author, text FROM post_comments WHERE post_id = ? ORDER BY seq`
	selectAllComments = `SELECT post_id, author, text FROM post_comments ORDER BY seq`
)

// Create inserts a new post with a generated id and returns it.
func (r *PostRepository) Create(ctx context.Context, p models.BlogPost) (string, error) {
	id := p.ID
	if id == "" {
		id = uuid.NewString()
	}
	if _, err := r.db.ExecContext(ctx, insertPostSQL, id, p.BlogTitle, p.BlogContent, p.AuthorID); err != nil {
		return "", fmt.Errorf("insert blog post: %w", err)
	}
	return id, nil
}

// GetByID fetches a post with its comments in append order.
// Returns (nil, nil) if not found.
func (r *PostRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var p models.BlogPost
	err := r.db.QueryRowContext(ctx, selectPostByIDSQL, id).
		Scan(&p.ID, &p.BlogTitle, &p.BlogContent, &p.AuthorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select blog post %q: %w", id, err)
	}

	rows, err := r.db.QueryContext(ctx, selectCommentsSQL, id)
	if err != nil {
		return nil, fmt.Errorf("select comments for post %q: %w", id, err)
	}
	defer func() { _ = rows.Close() }()

	p.Comments = []models.Comment{}
	for rows.Next() {
		var postID string
		var c models.Comment
		if err := rows.Scan(&postID, &c.AuthorID, &c.Text); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		p.Comments = append(p.Comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return &p, nil
}

// List returns all posts with their comments, posts in creation order.
func (r *PostRepository) List(ctx context.Context) ([]models.BlogPost, error) {
	rows, err := r.db.QueryContext(ctx, selectPostsSQL)
	if err != nil {
		return nil, fmt.Errorf("select blog posts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := []models.BlogPost{}
	index := map[string]int{}
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(&p.ID, &p.BlogTitle, &p.BlogContent, &p.AuthorID); err != nil {
			return nil, fmt.Errorf("scan blog post row: %w", err)
		}
		p.Comments = []models.Comment{}
		index[p.ID] = len(posts)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate blog post rows: %w", err)
	}

	crows, err := r.db.QueryContext(ctx, selectAllComments)
	if err != nil {
		return nil, fmt.Errorf("select comments: %w", err)
	}
	defer func() { _ = crows.Close() }()

	for crows.Next() {
		var postID string
		var c models.Comment
		if err := crows.Scan(&postID, &c.AuthorID, &c.Text); err != nil {
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		if i, ok := index[postID]; ok {
			posts[i].Comments = append(posts[i].Comments, c)
		}
	}
	if err := crows.Err(); err != nil {
		return nil, fmt.Errorf("iterate comment rows: %w", err)
	}
	return posts, nil
}

// Update overwrites title and content. The bool result reports whether a row matched.
func (r *PostRepository) Update(ctx context.Context, id, title, content string) (bool, error) {
	res, err := r.db.ExecContext(ctx, updatePostSQL, title, content, id)
	if err != nil {
		return false, fmt.Errorf("update blog post %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for blog post %q: %w", id, err)
	}
	return n > 0, nil
}

// Delete removes a post; its comments go with it via ON DELETE CASCADE.
// The bool result reports whether a row matched.
func (r *PostRepository) Delete(ctx context.Context, id string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deletePostSQL, id)
	if err != nil {
		return false, fmt.Errorf("delete blog post %q: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected for blog post %q: %w", id, err)
	}
	return n > 0, nil
}

// AppendComment adds a comment to the end of the post's comment list.
func (r *PostRepository) AppendComment(ctx context.Context, postID string, c models.Comment) error {
	if _, err := r.db.ExecContext(ctx, insertCommentSQL, postID, c.AuthorID, c.Text); err != nil {
		return fmt.Errorf("insert comment for post %q: %w", postID, err)
	}
	return nil
}
