package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/yotwinapp/yotwin/internal/models"
)

var ErrBoardImageRequired = errors.New("vision board image is required")

type VisionBoardRepository interface {
	ListAll() ([]models.VisionBoard, error)
	FindCurrent() (models.VisionBoard, bool, error)
	FindByWeek(weekStartDate string) (models.VisionBoard, bool, error)
	Save(board *models.VisionBoard) error
	SetCurrent(boardID string) error
	ClearCurrent() error
}

type VisionBoardService struct {
	boards   VisionBoardRepository
	location *time.Location
}

func NewVisionBoardService(boards VisionBoardRepository, location *time.Location) *VisionBoardService {
	if location == nil {
		location = time.UTC
	}
	return &VisionBoardService{
		boards:   boards,
		location: location,
	}
}

// ProgressPercent is the share of the image revealed, capped at 100.
func ProgressPercent(board models.VisionBoard) float64 {
	if board.TotalSessions <= 0 {
		return 100
	}
	percent := float64(board.CompletedSessions) / float64(board.TotalSessions) * 100
	if percent > 100 {
		return 100
	}
	return percent
}

func (service *VisionBoardService) Current() (models.VisionBoard, bool, error) {
	return service.boards.FindCurrent()
}

func (service *VisionBoardService) Album() ([]models.VisionBoard, error) {
	return service.boards.ListAll()
}

// Upload installs an image for the current week. An unfinished board from
// the same week keeps its progress and only swaps the image; otherwise a
// fresh board starts at zero. Either way the board becomes current.
func (service *VisionBoardService) Upload(imageURI string, now time.Time) (models.VisionBoard, error) {
	imageURI = strings.TrimSpace(imageURI)
	if imageURI == "" {
		return models.VisionBoard{}, ErrBoardImageRequired
	}

	weekAnchor := FormatDay(WeekStart(now, service.location))
	board, found, err := service.boards.FindByWeek(weekAnchor)
	if err != nil {
		return models.VisionBoard{}, err
	}

	if found {
		board.ImageURI = imageURI
	} else {
		board = models.VisionBoard{
			ID:            uuid.NewString(),
			ImageURI:      imageURI,
			WeekStartDate: weekAnchor,
			TotalSessions: models.DefaultBoardSessionTarget,
			CreatedAt:     now,
		}
	}

	if err := service.boards.Save(&board); err != nil {
		return models.VisionBoard{}, err
	}
	if err := service.boards.SetCurrent(board.ID); err != nil {
		return models.VisionBoard{}, err
	}
	board.IsCurrent = true
	return board, nil
}

// IncrementProgress reveals one more step on the current board. No current
// board, or a board already complete, is a no-op; the bool reports whether
// an increment happened.
func (service *VisionBoardService) IncrementProgress() (models.VisionBoard, bool, error) {
	board, found, err := service.boards.FindCurrent()
	if err != nil {
		return models.VisionBoard{}, false, err
	}
	if !found || board.IsCompleted {
		return board, false, nil
	}

	board.CompletedSessions++
	board.IsCompleted = board.CompletedSessions >= board.TotalSessions
	if err := service.boards.Save(&board); err != nil {
		return models.VisionBoard{}, false, err
	}
	return board, true, nil
}
