package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
)

// Post orchestrates the post lifecycle: upload through the blob store,
// ownership-checked deletion and feed assembly.
type Post struct {
	postStore model.PostStore
	userStore model.UserStore
	blobStore model.BlobStore
	logger    *logger.Logger
}

func NewPost(
	postStore model.PostStore,
	userStore model.UserStore,
	blobStore model.BlobStore,
	logger *logger.Logger,
) *Post {
	return &Post{
		postStore: postStore,
		userStore: userStore,
		blobStore: blobStore,
		logger:    logger,
	}
}

// UploadParams carries one upload request.
type UploadParams struct {
	UserID      uuid.UUID
	File        io.Reader
	Filename    string
	ContentType string
	Caption     string
}

// Upload streams the file to a temporary artifact, hands it to the blob
// store, and persists the post. The temporary artifact is removed on every
// exit path. No post row exists unless the blob store call succeeded.
func (s *Post) Upload(ctx context.Context, params UploadParams) (model.Post, error) {
	user, err := s.userStore.GetByID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, model.ErrUnauthorized
		}
		return model.Post{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !user.IsActive {
		return model.Post{}, model.ErrUnauthorized
	}
	if params.Filename == "" {
		return model.Post{}, fmt.Errorf("%w: filename is required", model.ErrInvalidArgument)
	}

	size, tempPath, err := s.spoolToTemp(params.File, params.Filename)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to spool upload: %w", err)
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			s.logger.Error("Failed to remove temporary upload artifact", "path", tempPath, "error", err)
		}
	}()

	tempFile, err := os.Open(tempPath)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to reopen temporary artifact: %w", err)
	}
	defer tempFile.Close()

	upload, err := s.blobStore.Upload(ctx, tempFile, size, params.Filename, params.ContentType)
	if err != nil {
		s.logger.Error("Blob store upload failed", "filename", params.Filename, "error", err)
		return model.Post{}, fmt.Errorf("%w: %v", model.ErrUploadFailed, err)
	}

	post := model.Post{
		ID:         uuid.New(),
		OwnerID:    user.ID,
		Caption:    params.Caption,
		MediaURL:   upload.URL,
		MediaKind:  model.MediaKindFromContentType(params.ContentType),
		StoredName: upload.StoredName,
	}

	saved, err := s.postStore.Create(ctx, post)
	if err != nil {
		// The remote object is already up; try to take it back down. If
		// that also fails the orphaned blob is logged and accepted.
		if removeErr := s.blobStore.Remove(ctx, upload.StoredName); removeErr != nil {
			s.logger.Error("Orphaned blob left in storage after failed commit",
				"stored_name", upload.StoredName,
				"error", removeErr)
		}
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return saved, nil
}

// Delete removes a post owned by the caller. A non-owner gets ErrForbidden
// regardless of whether they could otherwise see the post.
func (s *Post) Delete(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error {
	post, err := s.postStore.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	if post.OwnerID != userID {
		return model.ErrForbidden
	}

	if err := s.postStore.Delete(ctx, postID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		return fmt.Errorf("failed to delete post: %w", err)
	}

	if err := s.blobStore.Remove(ctx, post.StoredName); err != nil {
		s.logger.Error("Failed to delete object from storage", "stored_name", post.StoredName, "error", err)
	}

	return nil
}

// ListFeed returns the global feed annotated for the viewer: all posts,
// newest first, each with its owner's email and an is_owner flag.
func (s *Post) ListFeed(ctx context.Context, userID uuid.UUID) ([]model.FeedEntry, error) {
	posts, err := s.postStore.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	feed := make([]model.FeedEntry, 0, len(posts))
	for _, post := range posts {
		feed = append(feed, model.FeedEntry{
			Post:       post.Post,
			OwnerEmail: post.OwnerEmail,
			IsOwner:    post.OwnerID == userID,
		})
	}

	return feed, nil
}

// spoolToTemp copies the request stream to a local temporary file so the
// blob store sees a complete, sized artifact. The caller removes the file.
func (s *Post) spoolToTemp(reader io.Reader, filename string) (int64, string, error) {
	tempFile, err := os.CreateTemp("", "upload-*"+filepath.Ext(filename))
	if err != nil {
		return 0, "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	size, err := io.Copy(tempFile, reader)
	closeErr := tempFile.Close()
	if err != nil {
		_ = os.Remove(tempFile.Name())
		return 0, "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if closeErr != nil {
		_ = os.Remove(tempFile.Name())
		return 0, "", fmt.Errorf("failed to close temporary file: %w", closeErr)
	}

	return size, tempFile.Name(), nil
}
