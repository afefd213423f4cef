package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/service"
	"github.com/jihoon-lab/coinboard-api/internal/utils"
)

// CommentHandler handles comment routes.
type CommentHandler struct {
	service service.CommentService
	logger  zerolog.Logger
}

// NewCommentHandler constructs a comment handler.
func NewCommentHandler(service service.CommentService, logger zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		service: service,
		logger:  logger.With().Str("component", "comment_handler").Logger(),
	}
}

// Register wires the comment routes.
func (h *CommentHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/comments/:postId", h.list)
	router.Post("/create-comment/:postId", auth, h.create)
	router.Post("/delete-comment/:id", auth, h.delete)
}

func (h *CommentHandler) list(c *fiber.Ctx) error {
	postID, err := parseParamID(c, "postId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	comments, err := h.service.ListByPost(c.Context(), postID)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list comments")
		return utils.SendError(c, fiber.StatusInternalServerError, "댓글을 불러오는 데 실패했습니다.")
	}

	return utils.SendSuccess(c, "", comments)
}

func (h *CommentHandler) create(c *fiber.Ctx) error {
	postID, err := parseParamID(c, "postId")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	var payload dto.CreateCommentRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "댓글 내용을 입력해주세요.")
	}

	comment, err := h.service.Create(c.Context(), actorFromContext(c), postID, payload)
	if err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "댓글 내용을 입력해주세요.")
		case errors.Is(err, service.ErrNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to create comment")
			return utils.SendError(c, fiber.StatusInternalServerError, "댓글 작성에 실패했습니다.")
		}
	}

	return utils.SendSuccess(c, "댓글이 등록되었습니다.", comment)
}

func (h *CommentHandler) delete(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.Delete(c.Context(), actorFromContext(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "댓글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete comment")
		return utils.SendError(c, fiber.StatusInternalServerError, "댓글 삭제에 실패했습니다.")
	}

	return utils.SendSuccess(c, "댓글이 삭제되었습니다.", nil)
}
