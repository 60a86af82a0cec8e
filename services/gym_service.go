package services

import (
	"errors"
	"time"

	"backend/authz"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type GymService struct {
	DB          *gorm.DB
	Repo        *repository.GymRepository
	BookingRepo *repository.BookingRepository
	Policy      *authz.Policy
}

func NewGymService(db *gorm.DB, repo *repository.GymRepository, bookingRepo *repository.BookingRepository, policy *authz.Policy) *GymService {
	return &GymService{DB: db, Repo: repo, BookingRepo: bookingRepo, Policy: policy}
}

// ListClasses is public: anyone may browse a gym's schedule.
func (s *GymService) ListClasses(gymID uint) ([]entity.GymClass, error) {
	ok, err := s.Repo.Exists(gymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrNotFound
	}
	return s.Repo.ListClasses(gymID)
}

type CreateClassReq struct {
	Name            string    `json:"name" binding:"required"`
	Description     string    `json:"description"`
	Category        string    `json:"category"`
	TrainerName     string    `json:"trainerName"`
	StartAt         time.Time `json:"startAt" binding:"required"`
	EndAt           time.Time `json:"endAt" binding:"required"`
	MaxParticipants int       `json:"maxParticipants" binding:"gte=0"`
	Price           int64     `json:"price" binding:"gte=0"`
}

func (s *GymService) CreateClass(callerID, gymID uint, req *CreateClassReq) (*entity.GymClass, error) {
	ok, err := s.Policy.CanManageGym(callerID, gymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}
	if !req.EndAt.After(req.StartAt) {
		return nil, apperr.ErrInvalidBody
	}

	c := entity.GymClass{
		Name:            req.Name,
		Description:     req.Description,
		Category:        req.Category,
		TrainerName:     req.TrainerName,
		StartAt:         req.StartAt,
		EndAt:           req.EndAt,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		GymID:           gymID,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateClass(tx, &c)
	})
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListBookings is gym-operator only: who signed up for a class.
func (s *GymService) ListBookings(callerID, classID uint) ([]repository.BookingRow, error) {
	c, err := s.Repo.GetClass(classID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}
	ok, err := s.Policy.CanManageGym(callerID, c.GymID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.ErrForbidden
	}
	return s.BookingRepo.ListForClass(classID)
}

// Book reserves a spot for the caller. One booking per user per class.
func (s *GymService) Book(callerID, classID uint) (*entity.ClassBooking, error) {
	if _, err := s.Repo.GetClass(classID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, err
	}

	exists, err := s.BookingRepo.ExistsForUser(classID, callerID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrInvalidBody
	}

	b := entity.ClassBooking{
		ClassID: classID,
		UserID:  callerID,
		Status:  entity.BookingPending,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.BookingRepo.Create(tx, &b)
	})
	if err != nil {
		return nil, err
	}
	return &b, nil
}
