package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/yotwinapp/yotwin/internal/models"
	"github.com/yotwinapp/yotwin/internal/services"
)

type boardPayload struct {
	ImageURI string `json:"imageUri"`
}

func boardView(board models.VisionBoard) fiber.Map {
	return fiber.Map{
		"id":                board.ID,
		"imageUri":          board.ImageURI,
		"weekStartDate":     board.WeekStartDate,
		"completedSessions": board.CompletedSessions,
		"totalSessions":     board.TotalSessions,
		"isCompleted":       board.IsCompleted,
		"createdAt":         board.CreatedAt,
		"progressPercent":   services.ProgressPercent(board),
	}
}

func (handler *Handler) GetCurrentBoard(c *fiber.Ctx) error {
	board, found, err := handler.boards.Current()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load vision board")
	}
	if !found {
		return c.JSON(fiber.Map{"board": nil})
	}
	return c.JSON(fiber.Map{"board": boardView(board)})
}

func (handler *Handler) GetBoardAlbum(c *fiber.Ctx) error {
	boards, err := handler.boards.Album()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load album")
	}
	views := make([]fiber.Map, 0, len(boards))
	for _, board := range boards {
		views = append(views, boardView(board))
	}
	return c.JSON(views)
}

func (handler *Handler) UploadBoard(c *fiber.Ctx) error {
	payload := boardPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid payload")
	}

	board, err := handler.boards.Upload(payload.ImageURI, handler.now())
	if errors.Is(err, services.ErrBoardImageRequired) {
		return apiError(c, fiber.StatusBadRequest, "image uri is required")
	}
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to save vision board")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"board": boardView(board)})
}
