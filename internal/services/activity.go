package services

import (
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/stylehub/internal/models"
)

// ActivityService appends audit-trail records. Writes are fire-and-forget:
// a logging failure must never abort the operation being logged.
type ActivityService struct {
	db *gorm.DB
}

// NewActivityService constructs ActivityService.
func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

// Record persists one activity entry, swallowing any storage error.
func (s *ActivityService) Record(userID uuid.UUID, action, description, ip, userAgent string) {
	entry := models.ActivityLog{
		UserID:      &userID,
		Action:      action,
		Description: description,
		IPAddress:   ip,
		UserAgent:   userAgent,
	}

	if err := s.db.Create(&entry).Error; err != nil {
		log.Printf("activity log write failed (%s): %v", action, err)
	}
}

// ForUser returns the most recent entries for a single user.
func (s *ActivityService) ForUser(userID uuid.UUID, limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 50
	}

	var logs []models.ActivityLog
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

// All returns the most recent entries across every user, with user info.
func (s *ActivityService) All(limit int) ([]models.ActivityLog, error) {
	if limit <= 0 {
		limit = 100
	}

	var logs []models.ActivityLog
	err := s.db.Preload("User").
		Order("created_at desc").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}
