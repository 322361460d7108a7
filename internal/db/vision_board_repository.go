package db

import (
	"github.com/yotwinapp/yotwin/internal/models"
	"gorm.io/gorm"
)

type VisionBoardRepository struct {
	database *gorm.DB
}

func NewVisionBoardRepository(database *gorm.DB) *VisionBoardRepository {
	return &VisionBoardRepository{database: database}
}

func (repo *VisionBoardRepository) ListAll() ([]models.VisionBoard, error) {
	boards := make([]models.VisionBoard, 0)
	if err := repo.database.Order("created_at DESC, id DESC").Find(&boards).Error; err != nil {
		return nil, err
	}
	return boards, nil
}

func (repo *VisionBoardRepository) FindCurrent() (models.VisionBoard, bool, error) {
	board := models.VisionBoard{}
	result := repo.database.Where("is_current = ?", true).Limit(1).Find(&board)
	if result.Error != nil {
		return models.VisionBoard{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.VisionBoard{}, false, nil
	}
	return board, true, nil
}

func (repo *VisionBoardRepository) FindByWeek(weekStartDate string) (models.VisionBoard, bool, error) {
	board := models.VisionBoard{}
	result := repo.database.
		Where("week_start_date = ? AND is_completed = ?", weekStartDate, false).
		Order("created_at DESC, id DESC").
		Limit(1).
		Find(&board)
	if result.Error != nil {
		return models.VisionBoard{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.VisionBoard{}, false, nil
	}
	return board, true, nil
}

func (repo *VisionBoardRepository) Save(board *models.VisionBoard) error {
	return repo.database.Save(board).Error
}

// SetCurrent makes boardID the single current board.
func (repo *VisionBoardRepository) SetCurrent(boardID string) error {
	return repo.database.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.VisionBoard{}).
			Where("is_current = ?", true).
			Update("is_current", false).Error; err != nil {
			return err
		}
		return tx.Model(&models.VisionBoard{}).
			Where("id = ?", boardID).
			Update("is_current", true).Error
	})
}

// ClearCurrent drops the current pointer; the board itself stays in the album.
func (repo *VisionBoardRepository) ClearCurrent() error {
	return repo.database.Model(&models.VisionBoard{}).
		Where("is_current = ?", true).
		Update("is_current", false).Error
}
