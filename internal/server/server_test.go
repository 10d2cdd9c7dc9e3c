package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mentorly/internal/config"
	"mentorly/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPostService is a mock of the PostService interface
type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) post(args mock.Arguments) (*models.AchievementPost, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AchievementPost), args.Error(1)
}

func (m *MockPostService) Save(ctx context.Context, post *models.AchievementPost) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, post))
}

func (m *MockPostService) FindAll(ctx context.Context) ([]models.AchievementPost, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.AchievementPost), args.Error(1)
}

func (m *MockPostService) FindByID(ctx context.Context, id string) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, id))
}

func (m *MockPostService) Update(ctx context.Context, post *models.AchievementPost) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, post))
}

func (m *MockPostService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockPostService) AddLike(ctx context.Context, postID, userID, userName string) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, postID, userID, userName))
}

func (m *MockPostService) RemoveLike(ctx context.Context, postID, userID string) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, postID, userID))
}

func (m *MockPostService) AddComment(ctx context.Context, postID string, comment models.Comment) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, postID, comment))
}

func (m *MockPostService) UpdateComment(ctx context.Context, postID, commentID, content string) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, postID, commentID, content))
}

func (m *MockPostService) DeleteComment(ctx context.Context, postID, commentID string) (*models.AchievementPost, error) {
	return m.post(m.Called(ctx, postID, commentID))
}

func (m *MockPostService) FindByUserID(ctx context.Context, userID string) ([]models.AchievementPost, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.AchievementPost), args.Error(1)
}

func (m *MockPostService) FindLikedByUser(ctx context.Context, userID string) ([]models.AchievementPost, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]models.AchievementPost), args.Error(1)
}

func (m *MockPostService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// MockFileStore is a mock of the FileStore interface
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	body, _ := io.ReadAll(r)
	args := m.Called(ctx, filename, string(body))
	return args.String(0), args.Error(1)
}

const postID = "65f1c0ffee00000000000001"

func setupApp(t *testing.T) (*fiber.App, *MockPostService, *MockFileStore) {
	t.Helper()
	t.Setenv("APP_ENV", "test")
	cfg := &config.Config{
		Env:             "test",
		Port:            "8080",
		UploadDir:       t.TempDir(),
		UploadMaxSizeMB: 1,
		AllowedOrigins:  "*",
	}
	svc := new(MockPostService)
	files := new(MockFileStore)
	s := NewServerWithDeps(cfg, svc, files, nil, nil)
	return s.NewApp(), svc, files
}

func samplePost() *models.AchievementPost {
	return &models.AchievementPost{
		ID:           postID,
		AuthorID:     "anonymous",
		AuthorName:   "Anonymous User",
		Skill:        "Go",
		Title:        "Learned generics",
		TemplateType: models.TemplateTodayILearned,
		Comments:     []models.Comment{{ID: "c1", Content: "nice"}},
		LikedUserIDs: []string{"u1", "u2"},
		PostedDate:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = strings.NewReader(b)
		default:
			raw, err := json.Marshal(b)
			require.NoError(t, err)
			reader = bytes.NewReader(raw)
		}
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func validPostBody() map[string]any {
	return map[string]any{
		"skill":        "Go",
		"title":        "Learned generics",
		"templateType": "TODAY_I_LEARNED",
		"templateData": map[string]string{"templateTitle": "TIL", "whatYouLearned": "type params"},
	}
}

func TestHealthCheck(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, map[string]string{"status": "UP"}, decode[map[string]string](t, resp))
}

func TestReadinessCheck(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("Ping", mock.Anything).Return(nil).Once()
	svc.On("Ping", mock.Anything).Return(errors.New("no primary")).Once()

	resp := doJSON(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCreateAchievementPost(t *testing.T) {
	tests := []struct {
		name           string
		body           any
		mockSetup      func(svc *MockPostService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: validPostBody(),
			mockSetup: func(svc *MockPostService) {
				svc.On("Save", mock.Anything, mock.MatchedBy(func(p *models.AchievementPost) bool {
					return p.AuthorID == "anonymous" && p.AuthorName == "Anonymous User" &&
						p.ProfileImageURL == "" && p.Title == "Learned generics"
				})).Return(samplePost(), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Missing Title",
			body:           map[string]any{"skill": "Go", "templateType": "TODAY_I_LEARNED"},
			mockSetup:      func(*MockPostService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Unknown Template",
			body:           map[string]any{"skill": "Go", "title": "t", "templateType": "ESSAY"},
			mockSetup:      func(*MockPostService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Malformed JSON",
			body:           `{"title":`,
			mockSetup:      func(*MockPostService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Store Failure",
			body: validPostBody(),
			mockSetup: func(svc *MockPostService) {
				svc.On("Save", mock.Anything, mock.Anything).Return(nil, errors.New("write concern timeout"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, svc, _ := setupApp(t)
			tt.mockSetup(svc)

			resp := doJSON(t, app, http.MethodPost, "/api/v1/achievement-posts", tt.body)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			svc.AssertExpectations(t)
		})
	}
}

func TestCreateAchievementPost_ResponseShape(t *testing.T) {
	app, svc, _ := setupApp(t)
	post := samplePost()
	post.Comments = nil
	post.LikedUserIDs = nil
	svc.On("Save", mock.Anything, mock.Anything).Return(post, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/achievement-posts", validPostBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"comments":[]`)
	assert.Contains(t, string(raw), `"likedUserIds":[]`)
	assert.Contains(t, string(raw), `"noOfLikes":0`)
}

func TestStoreFailure_InternalErrorBody(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("FindAll", mock.Anything).Return([]models.AchievementPost(nil), errors.New("socket closed"))

	resp := doJSON(t, app, http.MethodGet, "/api/v1/achievement-posts", nil)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	body := decode[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeInternal, body.Code)
}

func TestGetAchievementPost(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("FindByID", mock.Anything, postID).Return(samplePost(), nil)
	svc.On("FindByID", mock.Anything, "missing").Return(nil, models.NewNotFoundError("AchievementPost", "missing"))

	resp := doJSON(t, app, http.MethodGet, "/api/v1/achievement-posts/"+postID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	dto := decode[models.AchievementPostDto](t, resp)
	assert.Equal(t, postID, dto.ID)
	assert.Equal(t, 2, dto.NoOfLikes)
	require.Len(t, dto.Comments, 1)
	assert.Equal(t, "c1", dto.Comments[0].ID)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/achievement-posts/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body := decode[models.ErrorResponse](t, resp)
	assert.Equal(t, models.CodeNotFound, body.Code)
}

func TestUpdateAchievementPost(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("FindByID", mock.Anything, postID).Return(samplePost(), nil)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(p *models.AchievementPost) bool {
		return p.Title == "Shipped v2" && p.Skill == "Rust" && len(p.Comments) == 1 && len(p.LikedUserIDs) == 2
	})).Return(&models.AchievementPost{ID: postID, Title: "Shipped v2"}, nil)

	body := validPostBody()
	body["title"] = "  Shipped v2 "
	body["skill"] = "Rust"
	resp := doJSON(t, app, http.MethodPut, "/api/v1/achievement-posts/"+postID, body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	svc.AssertExpectations(t)
}

func TestUpdateAchievementPost_NotFoundAndInvalid(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("FindByID", mock.Anything, "missing").Return(nil, models.NewNotFoundError("AchievementPost", "missing"))

	resp := doJSON(t, app, http.MethodPut, "/api/v1/achievement-posts/missing", validPostBody())
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, "/api/v1/achievement-posts/"+postID, map[string]any{"title": ""})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	svc.AssertNotCalled(t, "FindByID", mock.Anything, postID)
}

func TestDeleteAchievementPost(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("Delete", mock.Anything, postID).Return(nil)
	svc.On("Delete", mock.Anything, "missing").Return(models.NewNotFoundError("AchievementPost", "missing"))

	resp := doJSON(t, app, http.MethodDelete, "/api/v1/achievement-posts/"+postID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/achievement-posts/missing", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLikeAndUnlike(t *testing.T) {
	app, svc, _ := setupApp(t)
	liked := samplePost()
	liked.LikedUserIDs = []string{"anonymous"}
	svc.On("AddLike", mock.Anything, postID, "anonymous", "Anonymous User").Return(liked, nil)
	svc.On("RemoveLike", mock.Anything, postID, "anonymous").Return(&models.AchievementPost{ID: postID}, nil)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/achievement-posts/"+postID+"/like", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, decode[models.AchievementPostDto](t, resp).NoOfLikes)

	resp = doJSON(t, app, http.MethodDelete, "/api/v1/achievement-posts/"+postID+"/like", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, decode[models.AchievementPostDto](t, resp).NoOfLikes)
}

func TestComments(t *testing.T) {
	app, svc, _ := setupApp(t)
	svc.On("AddComment", mock.Anything, postID, mock.MatchedBy(func(c models.Comment) bool {
		return c.Content == "Great work" && c.AuthorID == "anonymous" && c.AuthorName == "Anonymous User"
	})).Return(samplePost(), nil)
	svc.On("UpdateComment", mock.Anything, postID, "c1", "edited").Return(samplePost(), nil)
	svc.On("DeleteComment", mock.Anything, postID, "c1").Return(samplePost(), nil)
	svc.On("AddComment", mock.Anything, "missing", mock.Anything).
		Return(nil, models.NewNotFoundError("AchievementPost", "missing"))

	base := "/api/v1/achievement-posts/" + postID + "/comments"

	resp := doJSON(t, app, http.MethodPost, base, map[string]string{"content": " Great work "})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPut, base+"/c1", map[string]string{"content": "edited"})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, base+"/c1", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, base, map[string]string{"content": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/v1/achievement-posts/missing/comments", map[string]string{"content": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	svc.AssertExpectations(t)
}

func TestListEndpoints(t *testing.T) {
	app, svc, _ := setupApp(t)
	all := []models.AchievementPost{*samplePost(), {ID: "65f1c0ffee00000000000002"}}
	svc.On("FindAll", mock.Anything).Return(all, nil)
	svc.On("FindByUserID", mock.Anything, "anonymous").Return([]models.AchievementPost{*samplePost()}, nil)
	svc.On("FindByUserID", mock.Anything, "u7").Return([]models.AchievementPost{}, nil)
	svc.On("FindLikedByUser", mock.Anything, "anonymous").Return([]models.AchievementPost(nil), nil)

	tests := []struct {
		path     string
		expected int
	}{
		{"/api/v1/achievement-posts", 2},
		{"/api/v1/achievement-posts/feed", 2},
		{"/api/v1/achievement-posts/me", 1},
		{"/api/v1/achievement-posts/user/u7", 0},
		{"/api/v1/achievement-posts/liked", 0},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodGet, tt.path, nil)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var dtos []models.AchievementPostDto
			require.NoError(t, json.Unmarshal(raw, &dtos))
			assert.Len(t, dtos, tt.expected)
			assert.True(t, strings.HasPrefix(string(raw), "["))
		})
	}
	svc.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestUploadFile(t *testing.T) {
	app, _, files := setupApp(t)
	files.On("Store", mock.Anything, "badge.png", "png-bytes").Return("/uploads/abc.png", nil)
	files.On("Store", mock.Anything, "empty.png", "").Return("", models.NewValidationError("file is empty"))

	body, contentType := multipartBody(t, "file", "badge.png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/uploads/abc.png", decode[models.UploadResponse](t, resp).URL)

	body, contentType = multipartBody(t, "file", "empty.png", "")
	req = httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "Could not upload the file: file is empty", string(raw))
}

func TestUploadFile_MissingField(t *testing.T) {
	app, _, files := setupApp(t)

	body, contentType := multipartBody(t, "image", "badge.png", "png-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
	req.Header.Set("Content-Type", contentType)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.True(t, strings.HasPrefix(string(raw), "Could not upload the file: "))
	files.AssertNotCalled(t, "Store", mock.Anything, mock.Anything, mock.Anything)
}

func TestCORSHeaders(t *testing.T) {
	app, _, _ := setupApp(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/achievement-posts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "PUT")
}

func TestUnknownRoute(t *testing.T) {
	app, _, _ := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/nothing-here", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
