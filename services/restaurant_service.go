package services

import (
	"errors"

	"backend/authz"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"

	"gorm.io/gorm"
)

type RestaurantService struct {
	DB       *gorm.DB
	Repo     *repository.RestaurantRepository
	MealRepo *repository.MealRepository
	Policy   *authz.Policy
}

func NewRestaurantService(db *gorm.DB, repo *repository.RestaurantRepository, mealRepo *repository.MealRepository, policy *authz.Policy) *RestaurantService {
	return &RestaurantService{DB: db, Repo: repo, MealRepo: mealRepo, Policy: policy}
}

// ListMeals returns the menu across every restaurant the caller operates.
func (s *RestaurantService) ListMeals(callerID uint, limit int) ([]entity.Meal, error) {
	ids, err := s.Policy.RestaurantIDs(callerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []entity.Meal{}, nil
	}
	return s.MealRepo.ListForRestaurants(ids, limit)
}

type CreateMealReq struct {
	Name         string `json:"name" binding:"required"`
	Description  string `json:"description"`
	Price        int64  `json:"price" binding:"gte=0"`
	ImageURL     string `json:"imageUrl"`
	Available    *bool  `json:"available"`
	RestaurantID uint   `json:"restaurantId"`
}

// CreateMeal adds a meal to one of the caller's restaurants. When the
// caller runs a single restaurant the id may be omitted.
func (s *RestaurantService) CreateMeal(callerID uint, req *CreateMealReq) (*entity.Meal, error) {
	ids, err := s.Policy.RestaurantIDs(callerID)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, apperr.ErrForbidden
	}

	restID := req.RestaurantID
	if restID == 0 {
		restID = ids[0]
	} else {
		linked := false
		for _, id := range ids {
			if id == restID {
				linked = true
				break
			}
		}
		if !linked {
			return nil, apperr.ErrForbidden
		}
	}

	m := entity.Meal{
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		ImageURL:     req.ImageURL,
		Available:    true,
		RestaurantID: restID,
	}
	if req.Available != nil {
		m.Available = *req.Available
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.MealRepo.Create(tx, &m)
	})
	if err != nil {
		return nil, err
	}
	return &m, nil
}

type UpdateMealReq struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int64  `json:"price" binding:"omitempty,gte=0"`
	ImageURL    *string `json:"imageUrl"`
	Available   *bool   `json:"available"`
}

func (s *RestaurantService) UpdateMeal(callerID, mealID uint, req *UpdateMealReq) error {
	m, err := s.MealRepo.Get(mealID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.ErrNotFound
		}
		return err
	}

	ok, err := s.Policy.CanManageRestaurant(callerID, m.RestaurantID)
	if err != nil {
		return err
	}
	if !ok {
		return apperr.ErrForbidden
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}
	if req.Available != nil {
		fields["available"] = *req.Available
	}
	if len(fields) == 0 {
		return apperr.ErrInvalidBody
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.MealRepo.Update(tx, mealID, fields)
	})
}
