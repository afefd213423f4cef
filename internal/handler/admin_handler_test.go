package handler_test

import (
	"context"
	"encoding/json"
	"io"
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

type mockAdminService struct {
	dashboard  dto.DashboardResponse
	users      []dto.AdminUserResponse
	posts      []dto.PostResponse
	comments   []dto.ModerationCommentResponse
	activity   []dto.ActivityLogResponse
	visits     []dto.DailyVisitResponse
	roleErr    error
	mutErr     error
	lastRole   string
	lastSearch string
}

func (m *mockAdminService) Dashboard(_ context.Context) (dto.DashboardResponse, error) {
	return m.dashboard, nil
}

func (m *mockAdminService) ListPosts(_ context.Context) ([]dto.PostResponse, error) {
	return m.posts, nil
}

func (m *mockAdminService) ListUsers(_ context.Context, search string) ([]dto.AdminUserResponse, error) {
	m.lastSearch = search
	return m.users, nil
}

func (m *mockAdminService) UpdateRole(_ context.Context, _ uint, role string) error {
	m.lastRole = role
	return m.roleErr
}

func (m *mockAdminService) SuspendUser(_ context.Context, _ uint) error { return m.mutErr }
func (m *mockAdminService) DeleteUser(_ context.Context, _ uint) error  { return m.mutErr }
func (m *mockAdminService) HidePost(_ context.Context, _ uint) error    { return m.mutErr }
func (m *mockAdminService) MakeNotice(_ context.Context, _ uint) error  { return m.mutErr }
func (m *mockAdminService) DeletePost(_ context.Context, _ uint) error  { return m.mutErr }

func (m *mockAdminService) ListComments(_ context.Context) ([]dto.ModerationCommentResponse, error) {
	return m.comments, nil
}

func (m *mockAdminService) DeleteComment(_ context.Context, _ uint) error { return m.mutErr }

func (m *mockAdminService) ActivityLog(_ context.Context) ([]dto.ActivityLogResponse, error) {
	return m.activity, nil
}

func (m *mockAdminService) DailyVisits(_ context.Context) ([]dto.DailyVisitResponse, error) {
	return m.visits, nil
}

func newAdminApp(svc *mockAdminService, locals fiber.Handler) *fiber.App {
	app := fiber.New()
	if locals != nil {
		app.Use(locals)
	}
	group := app.Group("/admin", middleware.RequireAuth(), middleware.RequireRole("admin"))
	handler.NewAdminHandler(svc, zerolog.New(io.Discard)).Register(group)
	return app
}

func TestAdminHandlerGuards(t *testing.T) {
	app := newAdminApp(&mockAdminService{}, nil)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	member := newAdminApp(&mockAdminService{}, sessionLocals(2, "일반인", "user"))
	resp, err = member.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	require.Equal(t, "접근 권한이 없습니다.", decodeEnvelope(t, resp).Message)
}

func TestAdminHandlerDashboard(t *testing.T) {
	svc := &mockAdminService{dashboard: dto.DashboardResponse{Users: 3, Posts: 8, Comments: 21}}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var summary dto.DashboardResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &summary))
	require.Equal(t, int64(8), summary.Posts)
}

func TestAdminHandlerListUsers(t *testing.T) {
	svc := &mockAdminService{users: []dto.AdminUserResponse{{ID: 1, Nickname: "코린이"}}}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/get-users?search=코린", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "코린", svc.lastSearch)
}

func TestAdminHandlerUpdateRole(t *testing.T) {
	svc := &mockAdminService{}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	req := jsonRequest(t, http.MethodPost, "/admin/update-role/4", dto.UpdateRoleRequest{Role: "admin"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "회원 권한이 변경되었습니다.", decodeEnvelope(t, resp).Message)
	require.Equal(t, "admin", svc.lastRole)
}

func TestAdminHandlerUpdateRoleAlias(t *testing.T) {
	svc := &mockAdminService{}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	req := jsonRequest(t, http.MethodPost, "/admin/change-role/4", dto.UpdateRoleRequest{Role: "user"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "user", svc.lastRole)
}

func TestAdminHandlerUpdateRoleInvalid(t *testing.T) {
	svc := &mockAdminService{roleErr: service.ErrInvalidRole}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	req := jsonRequest(t, http.MethodPost, "/admin/update-role/4", dto.UpdateRoleRequest{Role: "superuser"})
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "잘못된 권한 값입니다.", decodeEnvelope(t, resp).Message)
}

func TestAdminHandlerSuspendUserNotFound(t *testing.T) {
	svc := &mockAdminService{mutErr: service.ErrNotFound}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/admin/suspend-user/99", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAdminHandlerDailyVisits(t *testing.T) {
	svc := &mockAdminService{visits: []dto.DailyVisitResponse{{VisitDate: "2024-03-02", VisitCount: 14}}}
	app := newAdminApp(svc, sessionLocals(1, "운영자", "admin"))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/admin/daily-visits", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var visits []dto.DailyVisitResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, resp).Data, &visits))
	require.Len(t, visits, 1)
	require.Equal(t, "2024-03-02", visits[0].VisitDate)
}
