// Package storage persists users, complaints and comments through GORM.
// Relational integrity (unique emails, comment/complaint foreign keys)
// is delegated to the database and surfaced as sentinel errors here.
package storage

import (
	"errors"

	"gorm.io/gorm"

	"hostelhub/backend/internal/models"
)

var (
	// ErrDuplicateEmail is returned when a create hits the unique
	// index on users.email.
	ErrDuplicateEmail = errors.New("email already registered")
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")
)

type Storage interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uint) (*models.User, error)
	UpdateUser(user *models.User) error

	CreateComplaint(complaint *models.Complaint) error
	GetComplaintsByUser(userID uint) ([]models.Complaint, error)
	GetAllComplaints() ([]models.Complaint, error)
	UpdateComplaintStatus(id uint, status string) error

	CreateComment(comment *models.Comment) error
	GetCommentThread(complaintID uint) ([]models.CommentThreadEntry, error)

	CountComplaintsByStatus() ([]models.StatusCount, error)
	CountComplaintsByCategory() ([]models.CategoryCount, error)
}

// Service is the gorm-backed Storage implementation. The *gorm.DB it
// wraps manages its own connection pool; each call checks a connection
// out for the duration of the query only.
type Service struct {
	DB *gorm.DB
}

func NewService(db *gorm.DB) *Service {
	return &Service{DB: db}
}

// CreateUser inserts a new user. Requires the DB to be opened with
// TranslateError so unique-index violations map to ErrDuplicateEmail.
func (s *Service) CreateUser(user *models.User) error {
	if err := s.DB.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (s *Service) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	err := s.DB.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.DB.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Service) UpdateUser(user *models.User) error {
	return s.DB.Save(user).Error
}

// CreateComplaint inserts a complaint with the default Open status
// unless one is already set.
func (s *Service) CreateComplaint(complaint *models.Complaint) error {
	if complaint.Status == "" {
		complaint.Status = models.StatusOpen
	}
	return s.DB.Create(complaint).Error
}

// GetComplaintsByUser returns the caller's complaints, newest first.
func (s *Service) GetComplaintsByUser(userID uint) ([]models.Complaint, error) {
	complaints := make([]models.Complaint, 0)
	err := s.DB.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&complaints).Error
	if err != nil {
		return nil, err
	}
	return complaints, nil
}

// GetAllComplaints returns every complaint across all users, newest first.
func (s *Service) GetAllComplaints() ([]models.Complaint, error) {
	complaints := make([]models.Complaint, 0)
	if err := s.DB.Order("created_at DESC").Find(&complaints).Error; err != nil {
		return nil, err
	}
	return complaints, nil
}

// UpdateComplaintStatus sets the status of the complaint with the given
// id. An update against a missing id affects no rows and is not an
// error, matching the original service's contract.
func (s *Service) UpdateComplaintStatus(id uint, status string) error {
	return s.DB.Model(&models.Complaint{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// CreateComment appends a comment to a complaint's thread. Existence of
// the complaint is not checked here; the foreign key constraint rejects
// orphaned references.
func (s *Service) CreateComment(comment *models.Comment) error {
	return s.DB.Create(comment).Error
}

// GetCommentThread returns the complaint's comments joined with their
// authors' public identity, oldest first.
func (s *Service) GetCommentThread(complaintID uint) ([]models.CommentThreadEntry, error) {
	entries := make([]models.CommentThreadEntry, 0)
	err := s.DB.Model(&models.Comment{}).
		Select("comments.id, comments.message, comments.created_at, users.name AS author_name, users.role AS author_role").
		Joins("JOIN users ON users.id = comments.user_id").
		Where("comments.complaint_id = ?", complaintID).
		Order("comments.created_at ASC").
		Scan(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Service) CountComplaintsByStatus() ([]models.StatusCount, error) {
	counts := make([]models.StatusCount, 0)
	err := s.DB.Model(&models.Complaint{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

// CountComplaintsByCategory groups complaints by category, folding NULL
// categories into the literal "Uncategorized" bucket.
func (s *Service) CountComplaintsByCategory() ([]models.CategoryCount, error) {
	counts := make([]models.CategoryCount, 0)
	err := s.DB.Model(&models.Complaint{}).
		Select("COALESCE(category, 'Uncategorized') AS category, COUNT(*) AS count").
		Group("category").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}
