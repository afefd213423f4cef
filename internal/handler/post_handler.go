package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jihoon-lab/coinboard-api/internal/dto"
	"github.com/jihoon-lab/coinboard-api/internal/service"
	"github.com/jihoon-lab/coinboard-api/internal/utils"
)

// PostHandler handles board post routes.
type PostHandler struct {
	service service.PostService
	logger  zerolog.Logger
}

// NewPostHandler constructs a post handler.
func NewPostHandler(service service.PostService, logger zerolog.Logger) *PostHandler {
	return &PostHandler{
		service: service,
		logger:  logger.With().Str("component", "post_handler").Logger(),
	}
}

// Register wires the post routes. The board front end's historical
// paths are kept: /posts/:id is the bare row, /post/:id includes the
// comment thread.
func (h *PostHandler) Register(router fiber.Router, auth fiber.Handler) {
	router.Get("/posts", h.list)
	router.Get("/posts/:id", h.get)
	router.Get("/post/:id", h.detail)
	router.Post("/create-post", auth, h.create)
	router.Post("/edit-post/:id", auth, h.update)
	router.Post("/delete-post/:id", auth, h.delete)
}

func (h *PostHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		page = 1
	}

	listing, err := h.service.List(c.Context(), c.Query("search"), page)
	if err != nil {
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list posts")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글 불러오기 실패")
	}

	return utils.SendSuccess(c, "", listing)
}

func (h *PostHandler) get(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	post, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load post")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글을 불러오는 데 실패했습니다.")
	}

	return utils.SendSuccess(c, "", post)
}

func (h *PostHandler) detail(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	detail, err := h.service.GetWithComments(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load post detail")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글을 불러오는 데 실패했습니다.")
	}

	return utils.SendSuccess(c, "", detail)
}

func (h *PostHandler) create(c *fiber.Ctx) error {
	var payload dto.CreatePostRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "제목과 내용을 작성해주세요.")
	}

	// The image part is optional; a multipart form without it is fine.
	image, err := c.FormFile("image")
	if err != nil {
		image = nil
	}

	post, err := h.service.Create(c.Context(), actorFromContext(c), payload, image)
	if err != nil {
		if isValidationError(err) {
			return utils.SendError(c, fiber.StatusBadRequest, "제목과 내용을 작성해주세요.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to create post")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글 작성에 실패했습니다.")
	}

	return utils.SendSuccess(c, "게시글이 등록되었습니다.", post)
}

func (h *PostHandler) update(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	var payload dto.UpdatePostRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "제목과 내용을 작성해주세요.")
	}

	if err := h.service.Update(c.Context(), actorFromContext(c), id, payload); err != nil {
		switch {
		case isValidationError(err):
			return utils.SendError(c, fiber.StatusBadRequest, "제목과 내용을 작성해주세요.")
		case errors.Is(err, service.ErrNotFound):
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to update post")
			return utils.SendError(c, fiber.StatusInternalServerError, "게시글 수정에 실패했습니다.")
		}
	}

	return utils.SendSuccess(c, "게시글이 수정되었습니다.", nil)
}

func (h *PostHandler) delete(c *fiber.Ctx) error {
	id, err := parseParamID(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "잘못된 요청입니다.")
	}

	if err := h.service.Delete(c.Context(), actorFromContext(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "게시글을 찾을 수 없습니다.")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to delete post")
		return utils.SendError(c, fiber.StatusInternalServerError, "게시글 삭제에 실패했습니다.")
	}

	return utils.SendSuccess(c, "게시글이 삭제되었습니다.", nil)
}
