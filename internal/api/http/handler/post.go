package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Vish501/Video-Sharing-Application/internal/api/http/httpctx"
	"github.com/Vish501/Video-Sharing-Application/internal/logger"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
	"github.com/Vish501/Video-Sharing-Application/internal/service"
)

// maxUploadMemory caps the parsed multipart body held in memory before
// spilling to disk.
const maxUploadMemory = 32 << 20

// PostService defines post lifecycle operations.
type PostService interface {
	Upload(ctx context.Context, params service.UploadParams) (model.Post, error)
	Delete(ctx context.Context, userID uuid.UUID, postID uuid.UUID) error
	ListFeed(ctx context.Context, userID uuid.UUID) ([]model.FeedEntry, error)
}

// Post handles HTTP endpoints for uploading, deleting and listing posts.
type Post struct {
	service PostService
	logger  *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(service PostService, logger *logger.Logger) *Post {
	return &Post{service: service, logger: logger}
}

type postResponse struct {
	ID         uuid.UUID `json:"id"`
	UserID     uuid.UUID `json:"user_id"`
	Caption    string    `json:"caption"`
	URL        string    `json:"url"`
	StoredName string    `json:"stored_name"`
	MediaKind  string    `json:"media_kind"`
	CreatedAt  time.Time `json:"created_at"`
}

type feedEntryResponse struct {
	postResponse
	Email   string `json:"email"`
	IsOwner bool   `json:"is_owner"`
}

type feedResponse struct {
	Posts []feedEntryResponse `json:"posts"`
}

func toPostResponse(p model.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		UserID:     p.OwnerID,
		Caption:    p.Caption,
		URL:        p.MediaURL,
		StoredName: p.StoredName,
		MediaKind:  string(p.MediaKind),
		CreatedAt:  p.CreatedAt,
	}
}

// Upload accepts a multipart form with a required "file" part and an
// optional "caption" field, and creates a post.
func (h *Post) Upload(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpctx.UserID(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid multipart body"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file part is required"})
		return
	}
	defer file.Close()

	post, err := h.service.Upload(r.Context(), service.UploadParams{
		UserID:      userID,
		File:        file,
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Caption:     r.FormValue("caption"),
	})
	if err != nil {
		handleError(w, h.logger, "Post handler: upload failed", err)
		return
	}

	h.logger.Info("Post handler: post created",
		"post_id", post.ID,
		"user_id", userID,
		"media_kind", post.MediaKind)

	writeJSON(w, http.StatusCreated, toPostResponse(post))
}

// Delete removes a post owned by the authenticated user.
func (h *Post) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpctx.UserID(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	postID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, model.ErrInvalidArgument)
		return
	}

	if err := h.service.Delete(r.Context(), userID, postID); err != nil {
		handleError(w, h.logger, "Post handler: deletion failed", err)
		return
	}

	h.logger.Info("Post handler: post deleted", "post_id", postID, "user_id", userID)

	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// Feed returns every post, newest first, annotated for the caller.
func (h *Post) Feed(w http.ResponseWriter, r *http.Request) {
	userID, ok := httpctx.UserID(r.Context())
	if !ok {
		writeError(w, model.ErrUnauthorized)
		return
	}

	entries, err := h.service.ListFeed(r.Context(), userID)
	if err != nil {
		handleError(w, h.logger, "Post handler: feed listing failed", err)
		return
	}

	posts := make([]feedEntryResponse, 0, len(entries))
	for _, entry := range entries {
		posts = append(posts, feedEntryResponse{
			postResponse: toPostResponse(entry.Post),
			Email:        entry.OwnerEmail,
			IsOwner:      entry.IsOwner,
		})
	}

	writeJSON(w, http.StatusOK, feedResponse{Posts: posts})
}
