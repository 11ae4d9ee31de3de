package database

import (
	"diagnostik-backend/models"

	"gorm.io/gorm"
)

// SubmissionStore is the GORM-backed store for accepted submissions.
type SubmissionStore struct {
	db *gorm.DB
}

func NewSubmissionStore(db *gorm.DB) *SubmissionStore {
	return &SubmissionStore{db: db}
}

// FindByEmail fetches at most one submission by exact email match.
// Returns gorm.ErrRecordNotFound when no submission exists.
func (s *SubmissionStore) FindByEmail(email string) (*models.Submission, error) {
	var sub models.Submission
	if err := s.db.Where("user_email = ?", email).First(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Insert writes one submission. A duplicate email surfaces as
// gorm.ErrDuplicatedKey via the driver's error translation.
func (s *SubmissionStore) Insert(sub *models.Submission) error {
	return s.db.Create(sub).Error
}

func (s *SubmissionStore) List(limit, offset int) ([]models.Submission, error) {
	var subs []models.Submission
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&subs).Error
	return subs, err
}

func (s *SubmissionStore) Count() (int64, error) {
	var n int64
	err := s.db.Model(&models.Submission{}).Count(&n).Error
	return n, err
}
