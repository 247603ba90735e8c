package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

// Create inserts a post inside its own transaction. created_at and seq are
// assigned by the database on commit, so feed order follows commit order.
func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (id, owner_id, caption, media_url, media_kind, stored_name)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, owner_id, caption, media_url, media_kind, stored_name, created_at, seq`

	var savedPost model.Post
	err := r.db.WithTx(ctx, func(tx pgx.Tx) error {
		return tx.QueryRow(ctx, query,
			post.ID, post.OwnerID, post.Caption, post.MediaURL, string(post.MediaKind), post.StoredName,
		).Scan(
			&savedPost.ID, &savedPost.OwnerID, &savedPost.Caption, &savedPost.MediaURL,
			&savedPost.MediaKind, &savedPost.StoredName, &savedPost.CreatedAt, &savedPost.Seq,
		)
	})
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return savedPost, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (model.Post, error) {
	query := `SELECT id, owner_id, caption, media_url, media_kind, stored_name, created_at, seq
			  FROM posts WHERE id = $1`

	var post model.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.OwnerID, &post.Caption, &post.MediaURL,
		&post.MediaKind, &post.StoredName, &post.CreatedAt, &post.Seq,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

// ListAll returns the global feed: every post, newest first, seq breaking
// created_at ties. The owner email is joined at read time, not stored on
// the post.
func (r *PostRepository) ListAll(ctx context.Context) ([]model.PostWithOwner, error) {
	query := `
		SELECT p.id, p.owner_id, p.caption, p.media_url, p.media_kind, p.stored_name,
		       p.created_at, p.seq, u.email
		FROM posts p
		JOIN users u ON u.id = p.owner_id
		ORDER BY p.created_at DESC, p.seq DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	var posts []model.PostWithOwner
	for rows.Next() {
		var post model.PostWithOwner
		err := rows.Scan(
			&post.ID, &post.OwnerID, &post.Caption, &post.MediaURL,
			&post.MediaKind, &post.StoredName, &post.CreatedAt, &post.Seq,
			&post.OwnerEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM posts WHERE id = $1`
	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}
	return nil
}
