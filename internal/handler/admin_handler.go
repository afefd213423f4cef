package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/service"
	"github.com/jihoon-lab/coinboard-api/internal/utils"
)

// AdminHandler handles the moderation routes. The router mounts it
// behind RequireAuth and RequireRole("admin"); the handlers themselves
// assume an admin session.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler constructs an admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_handler").Logger(),
	}
}

// Register wires the moderation routes. /change-role is a retained
// alias of /update-role; older admin pages still post to it.
func (h *AdminHandler) Register(router fiber.Router) {
	router.Get("/", h.dashboard)
	router.Get("/posts", h.listPosts)
	router.Get("/get-users", h.listUsers)
	router.Post("/update-role/:id", h.updateRole)
	router.Post("/change-role/:id", h.updateRole)
	router.Post("/suspend-user/:id", h.suspendUser)
	router.Post("/delete-user/:id", h.deleteUser)
	router.Post("/hide-post/:id", h.hidePost)
	router.Post("/make-notice/:id", h.makeNotice)
	router.Post("/delete-post/:id", h.deletePost)
	router.Get("/get-comments", h.listComments)
	router.Post("/delete-comment/:id", h.deleteComment)
	router.Get("/get-activity-log", h.activityLog)
	router.Get("/daily-visits", h.dailyVisits)
}

func (h *AdminHandler) dashboard(c *fiber.Ctx) error {
	summary, err := h.service.Dashboard(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to build dashboard summary")
		return utils.SendError(c, fiber.StatusInternalServerError, "대시보드 조회에 실패했습니다.")
	}
	return utils.SendSuccess(c, "", summary)
}

func (h *AdminHandler) listPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPosts(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list posts for moderation")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글 불러오기 실패")
	}
	return utils.SendSuccess(c, "", posts)
}

func (h *AdminHandler) listUsers(c *fiber.Ctx) error {
	users, err := h.service.ListUsers(c.Context(), c.Query("search"))
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list users")
		return utils.SendError(c, fiber.StatusInternalServerError, "회원 목록 조회 실패")
	}
	return utils.SendSuccess(c, "", users)
}

func (h *AdminHandler) updateRole(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	var payload dto.UpdateRoleRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 권한 값입니다.")
	}

	if err := h.service.UpdateRole(c.Context(), id, payload.Role); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			return utils.SendError(c, fiber.StatusBadRequest, "잘못된 권한 값입니다.")
		case errors.Is(err, service.ErrNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "회원을 찾을 수 없습니다.")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update role")
			return utils.SendError(c, fiber.StatusInternalServerError, "회원 권한 변경에 실패했습니다.")
		}
	}

	return utils.SendSuccess(c, "회원 권한이 변경되었습니다.", nil)
}

func (h *AdminHandler) suspendUser(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.SuspendUser(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "회원을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to suspend user")
		return utils.SendError(c, fiber.StatusInternalServerError, "회원 정지에 실패했습니다.")
	}

	return utils.SendSuccess(c, "회원이 정지되었습니다.", nil)
}

func (h *AdminHandler) deleteUser(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.DeleteUser(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "회원을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete user")
		return utils.SendError(c, fiber.StatusInternalServerError, "회원 탈퇴 실패")
	}

	return utils.SendSuccess(c, "회원 탈퇴 완료", nil)
}

func (h *AdminHandler) hidePost(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.HidePost(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to hide post")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글 숨기기에 실패했습니다.")
	}

	return utils.SendSuccess(c, "게시글을 숨겼습니다.", nil)
}

func (h *AdminHandler) makeNotice(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.MakeNotice(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to make notice")
		return utils.SendError(c, fiber.StatusInternalServerError, "공지 설정에 실패했습니다.")
	}

	return utils.SendSuccess(c, "게시글을 공지로 설정했습니다.", nil)
}

func (h *AdminHandler) deletePost(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.DeletePost(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete post")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글 삭제에 실패했습니다.")
	}

	return utils.SendSuccess(c, "게시글이 삭제되었습니다.", nil)
}

func (h *AdminHandler) listComments(c *fiber.Ctx) error {
	comments, err := h.service.ListComments(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list comments for moderation")
		return utils.SendError(c, fiber.StatusInternalServerError, "서버 오류로 댓글 조회에 실패했습니다.")
	}
	return utils.SendSuccess(c, "", comments)
}

func (h *AdminHandler) deleteComment(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.DeleteComment(c.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "댓글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "댓글 삭제에 실패했습니다.")
	}

	return utils.SendSuccess(c, "댓글이 삭제되었습니다.", nil)
}

func (h *AdminHandler) activityLog(c *fiber.Ctx) error {
	entries, err := h.service.ActivityLog(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list activity log")
		return utils.SendError(c, fiber.StatusInternalServerError, "활동 로그 조회 실패")
	}
	return utils.SendSuccess(c, "", entries)
}

func (h *AdminHandler) dailyVisits(c *fiber.Ctx) error {
	visits, err := h.service.DailyVisits(c.Context())
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list daily visits")
		return utils.SendError(c, fiber.StatusInternalServerError, "일일 방문자 조회에 실패했습니다.")
	}
	return utils.SendSuccess(c, "", visits)
}
