package repository

import (
	"time"

	"kitinstall/internal/db"
	"kitinstall/internal/model"
)

type HistoryRepository struct{}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

func (r *HistoryRepository) Save(runID string, result model.InstallResult) error {
	errMsg := ""
	if result.Err != nil {
		errMsg = result.Err.Error()
	}

	history := model.History{
		RunID:       runID,
		GroupName:   result.Group,
		URL:         result.URL,
		LocalPath:   result.Path,
		Status:      result.Status,
		ErrMsg:      errMsg,
		InstalledAt: time.Now(),
	}

	return db.DB.Create(&history).Error
}

type Stats struct {
	Total     int64
	Installed int64
	Skipped   int64
	Failed    int64
}

func (r *HistoryRepository) GetStats() (Stats, error) {
	var stats Stats
	if err := db.DB.Model(&model.History{}).Count(&stats.Total).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.History{}).
		Where("status = ?", model.OutcomeInstalled).
		Count(&stats.Installed).Error; err != nil {
		return stats, err
	}

	if err := db.DB.Model(&model.History{}).
		Where("status = ?", model.OutcomeSkipped).
		Count(&stats.Skipped).Error; err != nil {
		return stats, err
	}

	stats.Failed = stats.Total - stats.Installed - stats.Skipped
	return stats, nil
}

func (r *HistoryRepository) GetRecent(limit int) ([]model.History, error) {
	var histories []model.History
	result := db.DB.
		Order("installed_at desc").
		Order("id desc").
		Limit(limit).
		Find(&histories)

	return histories, result.Error
}

func (r *HistoryRepository) GetRun(runID string) ([]model.History, error) {
	var histories []model.History
	result := db.DB.
		Where("run_id = ?", runID).
		Order("id asc").
		Find(&histories)

	return histories, result.Error
}
