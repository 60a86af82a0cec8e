package services

import (
	"errors"
	"strings"
	"time"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/repository"
	"backend/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	DB        *gorm.DB
	UserRepo  *repository.UserRepository
	JWTSecret string
	JWTTTL    time.Duration
}

func NewAuthService(db *gorm.DB, userRepo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{DB: db, UserRepo: userRepo, JWTSecret: secret, JWTTTL: ttl}
}

type RegisterReq struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Role      string `json:"role" binding:"omitempty,oneof=customer restaurant_owner gym_owner driver"`
}

type AuthRes struct {
	Token string      `json:"token"`
	User  entity.User `json:"user"`
	Roles []string    `json:"roles"`
}

// Register creates the user plus their initial role. Admin is never
// self-assignable; it only comes from seeding or another admin.
func (s *AuthService) Register(req *RegisterReq) (*AuthRes, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	taken, err := s.UserRepo.EmailTaken(email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, apperr.ErrInvalidBody
	}

	role := entity.Role(req.Role)
	if role == "" {
		role = entity.RoleCustomer
	}
	if !role.IsValid() || role == entity.RoleAdmin {
		return nil, apperr.ErrInvalidBody
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := entity.User{
		Email:     email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.UserRepo.Create(tx, &u); err != nil {
			return err
		}
		return s.UserRepo.AddRole(tx, u.ID, role)
	})
	if err != nil {
		return nil, err
	}

	return s.issue(&u, []entity.Role{role})
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *AuthService) Login(req *LoginReq) (*AuthRes, error) {
	u, err := s.UserRepo.GetByEmail(strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.Password)) != nil {
		return nil, apperr.ErrUnauthenticated
	}

	roles, err := s.UserRepo.Roles(u.ID)
	if err != nil {
		return nil, err
	}
	return s.issue(u, roles)
}

func (s *AuthService) Me(userID uint) (*entity.User, []entity.Role, error) {
	u, err := s.UserRepo.Get(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.ErrNotFound
		}
		return nil, nil, err
	}
	roles, err := s.UserRepo.Roles(userID)
	if err != nil {
		return nil, nil, err
	}
	return u, roles, nil
}

func (s *AuthService) issue(u *entity.User, roles []entity.Role) (*AuthRes, error) {
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	token, err := utils.GenerateToken(u.ID, names, s.JWTSecret, s.JWTTTL)
	if err != nil {
		return nil, err
	}
	return &AuthRes{Token: token, User: *u, Roles: names}, nil
}
