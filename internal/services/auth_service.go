package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserNameTaken        = errors.New("userName already exists")
	ErrInvalidCredentials   = errors.New("invalid userName or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidAccessCode    = errors.New("invalid congregation access code")
	ErrInactiveUser         = errors.New("user account is inactive")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles authentication related business logic.
type AuthService struct {
	userRepo repository.UserRepository
	congRepo repository.CongregationRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, congRepo repository.CongregationRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		congRepo: congRepo,
	}
}

// SignupInput represents the required information to register a volunteer.
type SignupInput struct {
	UserName   string
	Nombre     string
	Password   string
	AccessCode string
}

// Signup registers a new volunteer under the congregation whose access
// code was presented.
func (s *AuthService) Signup(input SignupInput) (*models.User, error) {
	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		return nil, fmt.Errorf("userName is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	congregation, err := s.congRepo.FindByAccessCode(strings.TrimSpace(input.AccessCode))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidAccessCode
		}
		return nil, fmt.Errorf("failed to check access code: %w", err)
	}

	if _, err := s.userRepo.FindByUserName(userName); err == nil {
		return nil, ErrUserNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check userName: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	user := &models.User{
		UserName:       userName,
		Nombre:         strings.TrimSpace(input.Nombre),
		PasswordHash:   string(hashedPassword),
		Role:           models.RoleVolunteer,
		CongregationID: congregation.ID,
		Active:         true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	UserName string
	Password string
}

// Login verifies credentials and returns the authenticated user.
func (s *AuthService) Login(input LoginInput) (*models.User, error) {
	user, err := s.userRepo.FindByUserName(input.UserName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.Active {
		return nil, ErrInactiveUser
	}

	return user, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
