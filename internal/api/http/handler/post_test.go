package handler

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Vish501/Video-Sharing-Application/internal/api/http/httpctx"
	"github.com/Vish501/Video-Sharing-Application/internal/model"
	"github.com/Vish501/Video-Sharing-Application/internal/service"
	"github.com/Vish501/Video-Sharing-Application/internal/testutil"
)

func multipartBody(t *testing.T, filename, contentType, caption string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	if caption != "" {
		require.NoError(t, writer.WriteField("caption", caption))
	}
	require.NoError(t, writer.Close())

	return body, writer.FormDataContentType()
}

func TestPost_Upload(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	postID := uuid.New()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		svc := new(mockPostService)
		svc.On("Upload", mock.Anything, mock.MatchedBy(func(p service.UploadParams) bool {
			return p.UserID == userID && p.Filename == "clip.mp4" &&
				p.ContentType == "video/mp4" && p.Caption == "first clip"
		})).Return(model.Post{
			ID:        postID,
			OwnerID:   userID,
			Caption:   "first clip",
			MediaURL:  "http://localhost:9000/media-posts/abc.mp4",
			MediaKind: model.MediaKindVideo,
			CreatedAt: time.Now(),
		}, nil)

		h := NewPost(svc, testutil.MakeNoopLogger())

		body, contentType := multipartBody(t, "clip.mp4", "video/mp4", "first clip", []byte("mp4data"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/upload", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(httpctx.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), postID.String())
		assert.Contains(t, rec.Body.String(), `"media_kind":"video"`)
		svc.AssertExpectations(t)
	})

	t.Run("missing file part", func(t *testing.T) {
		t.Parallel()

		svc := new(mockPostService)
		h := NewPost(svc, testutil.MakeNoopLogger())

		body := new(bytes.Buffer)
		writer := multipart.NewWriter(body)
		require.NoError(t, writer.WriteField("caption", "no file"))
		require.NoError(t, writer.Close())

		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/upload", body)
		req.Header.Set("Content-Type", writer.FormDataContentType())
		req = req.WithContext(httpctx.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "Upload")
	})

	t.Run("gateway failure", func(t *testing.T) {
		t.Parallel()

		svc := new(mockPostService)
		svc.On("Upload", mock.Anything, mock.AnythingOfType("service.UploadParams")).
			Return(model.Post{}, model.ErrUploadFailed)

		h := NewPost(svc, testutil.MakeNoopLogger())

		body, contentType := multipartBody(t, "pic.jpg", "image/jpeg", "", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/upload", body)
		req.Header.Set("Content-Type", contentType)
		req = req.WithContext(httpctx.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusBadGateway, rec.Code)
	})

	t.Run("missing identity", func(t *testing.T) {
		t.Parallel()

		h := NewPost(new(mockPostService), testutil.MakeNoopLogger())

		body, contentType := multipartBody(t, "pic.jpg", "image/jpeg", "", []byte("jpegdata"))
		req := httptest.NewRequest(http.MethodPost, "/api/v1/posts/upload", body)
		req.Header.Set("Content-Type", contentType)
		rec := httptest.NewRecorder()

		h.Upload(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestPost_Delete(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	postID := uuid.New()

	tests := []struct {
		name       string
		pathID     string
		serviceErr error
		wantStatus int
		wantCall   bool
	}{
		{
			name:       "success",
			pathID:     postID.String(),
			wantStatus: http.StatusOK,
			wantCall:   true,
		},
		{
			name:       "malformed id",
			pathID:     "not-a-uuid",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown post",
			pathID:     postID.String(),
			serviceErr: model.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCall:   true,
		},
		{
			name:       "foreign post",
			pathID:     postID.String(),
			serviceErr: model.ErrForbidden,
			wantStatus: http.StatusForbidden,
			wantCall:   true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := new(mockPostService)
			if tt.wantCall {
				svc.On("Delete", mock.Anything, userID, postID).Return(tt.serviceErr)
			}

			h := NewPost(svc, testutil.MakeNoopLogger())

			req := httptest.NewRequest(http.MethodDelete, "/api/v1/posts/"+tt.pathID, nil)
			req = req.WithContext(httpctx.WithUserID(req.Context(), userID))

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.pathID)
			req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))

			rec := httptest.NewRecorder()

			h.Delete(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"success":true}`, rec.Body.String())
			}
			if !tt.wantCall {
				svc.AssertNotCalled(t, "Delete")
			}
		})
	}
}

func TestPost_Feed(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	otherID := uuid.New()

	t.Run("annotated entries", func(t *testing.T) {
		t.Parallel()

		entries := []model.FeedEntry{
			{
				Post:       model.Post{ID: uuid.New(), OwnerID: userID, MediaKind: model.MediaKindImage},
				OwnerEmail: "me@example.com",
				IsOwner:    true,
			},
			{
				Post:       model.Post{ID: uuid.New(), OwnerID: otherID, MediaKind: model.MediaKindVideo},
				OwnerEmail: "other@example.com",
				IsOwner:    false,
			},
		}

		svc := new(mockPostService)
		svc.On("ListFeed", mock.Anything, userID).Return(entries, nil)

		h := NewPost(svc, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		req = req.WithContext(httpctx.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Feed(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_owner":true`)
		assert.Contains(t, rec.Body.String(), `"email":"other@example.com"`)
	})

	t.Run("empty feed", func(t *testing.T) {
		t.Parallel()

		svc := new(mockPostService)
		svc.On("ListFeed", mock.Anything, userID).Return([]model.FeedEntry{}, nil)

		h := NewPost(svc, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		req = req.WithContext(httpctx.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Feed(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"posts":[]}`, rec.Body.String())
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		svc := new(mockPostService)
		svc.On("ListFeed", mock.Anything, userID).Return([]model.FeedEntry(nil), assert.AnError)

		h := NewPost(svc, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1/feed", nil)
		req = req.WithContext(httpctx.WithUserID(req.Context(), userID))
		rec := httptest.NewRecorder()

		h.Feed(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestHealth(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	Health(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}
