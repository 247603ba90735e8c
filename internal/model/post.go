package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PostStore defines persistence operations for posts.
type PostStore interface {
	Create(ctx context.Context, post Post) (Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (Post, error)
	// ListAll returns every post, newest first, with the owner's email
	// joined in at read time.
	ListAll(ctx context.Context) ([]PostWithOwner, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Post represents a stored media post.
type Post struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Caption    string
	MediaURL   string
	MediaKind  MediaKind
	StoredName string
	CreatedAt  time.Time
	// Seq is assigned by the database per insert and breaks created_at
	// ties in the feed.
	Seq int64
}

// MediaKind enumerates supported media types.
type MediaKind string

const (
	// MediaKindImage is any non-video upload.
	MediaKindImage MediaKind = "image"
	// MediaKindVideo is an upload with a video/* content type.
	MediaKindVideo MediaKind = "video"
)

// MediaKindFromContentType classifies an upload by its MIME content type.
func MediaKindFromContentType(contentType string) MediaKind {
	if len(contentType) >= 6 && contentType[:6] == "video/" {
		return MediaKindVideo
	}
	return MediaKindImage
}

// PostWithOwner is a post joined with its owner's email.
type PostWithOwner struct {
	Post
	OwnerEmail string
}

// FeedEntry is a post annotated for a particular viewer.
type FeedEntry struct {
	Post
	OwnerEmail string
	IsOwner    bool
}

// CreatePostParams contains parameters to create a post through an upload.
type CreatePostParams struct {
	UserID      uuid.UUID
	Filename    string
	ContentType string
	Caption     string
}
