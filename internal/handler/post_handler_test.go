package handler_test

import (
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/handler"
	"github.com/jihoon-lab/coinboard-api/internal/middleware"
	"github.com/jihoon-lab/coinboard-api/internal/service"
)

type mockPostService struct {
	listResp   dto.PostListResponse
	getResp    dto.PostResponse
	getErr     error
	detailResp dto.PostDetailResponse
	createResp dto.PostResponse
	createErr  error
	mutErr     error

	lastActor  service.Actor
	lastImage  *multipart.FileHeader
	lastSearch string
	lastPage   int
}

func (m *mockPostService) List(_ context.Context, search string, page int) (dto.PostListResponse, error) {
	m.lastSearch = search
	m.lastPage = page
	return m.listResp, nil
}

func (m *mockPostService) Get(_ context.Context, _ uint) (dto.PostResponse, error) {
	return m.getResp, m.getErr
}

func (m *mockPostService) GetWithComments(_ context.Context, _ uint) (dto.PostDetailResponse, error) {
	return m.detailResp, m.getErr
}

func (m *mockPostService) Create(_ context.Context, actor service.Actor, _ dto.CreatePostRequest, image *multipart.FileHeader) (dto.PostResponse, error) {
	m.lastActor = actor
	m.lastImage = image
	return m.createResp, m.createErr
}

func (m *mockPostService) Update(_ context.Context, actor service.Actor, _ uint, _ dto.UpdatePostRequest) error {
	m.lastActor = actor
	return m.mutErr
}

func (m *mockPostService) Delete(_ context.Context, actor service.Actor, _ uint) error {
	m.lastActor = actor
	return m.mutErr
}

func sessionLocals(id uint, nickname, role string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals(middleware.LocalsUserID, id)
		c.Locals(middleware.LocalsNickname, nickname)
		c.Locals(middleware.LocalsRole, role)
		return c.Next()
	}
}

func newPostApp(svc *mockPostService, locals fiber.Handler) *fiber.App {
	app := fiber.New()
	if locals != nil {
		app.Use(locals)
	}
	handler.NewPostHandler(svc, zerolog.New(io.Discard)).Register(app, middleware.RequireAuth())
	return app
}

func TestPostHandlerList(t *testing.T) {
	svc := &mockPostService{listResp: dto.PostListResponse{
		Posts:       []dto.PostResponse{{ID: 1, Title: "공지"}},
		TotalPages:  3,
		CurrentPage: 2,
	}}
	app := newPostApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts?page=2&search=코인", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, 2, svc.lastPage)
	require.Equal(t, "코인", svc.lastSearch)

	var listing dto.PostListResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &listing))
	require.Equal(t, 3, listing.TotalPages)
	require.Len(t, listing.Posts, 1)
}

func TestPostHandlerGetNotFound(t *testing.T) {
	svc := &mockPostService{getErr: service.ErrNotFound}
	app := newPostApp(svc, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/99", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, "게시글을 찾을 수 없습니다.", decodeEnvelope(t, resp).Message)
}

func TestPostHandlerGetBadID(t *testing.T) {
	app := newPostApp(&mockPostService{}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/posts/abc", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPostHandlerCreateRequiresAuth(t *testing.T) {
	app := newPostApp(&mockPostService{}, nil)

	req := jsonRequest(t, http.MethodPost, "/create-post", dto.CreatePostRequest{Title: "제목", Content: "내용"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "로그인이 필요합니다.", decodeEnvelope(t, resp).Message)
}

func TestPostHandlerCreate(t *testing.T) {
	svc := &mockPostService{createResp: dto.PostResponse{ID: 10, Title: "제목"}}
	app := newPostApp(svc, sessionLocals(4, "작성자", "user"))

	req := jsonRequest(t, http.MethodPost, "/create-post", dto.CreatePostRequest{Title: "제목", Content: "내용"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "게시글이 등록되었습니다.", decodeEnvelope(t, resp).Message)
	require.Equal(t, uint(4), svc.lastActor.ID)
	require.Equal(t, "작성자", svc.lastActor.Nickname)
	require.Nil(t, svc.lastImage, "json bodies carry no attachment")
}

func TestPostHandlerUpdateNotOwner(t *testing.T) {
	svc := &mockPostService{mutErr: service.ErrNotFound}
	app := newPostApp(svc, sessionLocals(4, "작성자", "user"))

	req := jsonRequest(t, http.MethodPost, "/edit-post/5", dto.UpdatePostRequest{Title: "수정", Content: "본문"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestPostHandlerDelete(t *testing.T) {
	svc := &mockPostService{}
	app := newPostApp(svc, sessionLocals(4, "작성자", "admin"))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/delete-post/5", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "게시글이 삭제되었습니다.", decodeEnvelope(t, resp).Message)
	require.Equal(t, "admin", svc.lastActor.Role)
}
