package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ppam-app/ppam-scheduler/internal/constants"
	"github.com/ppam-app/ppam-scheduler/internal/models"
	"github.com/ppam-app/ppam-scheduler/internal/participation"
	"github.com/ppam-app/ppam-scheduler/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUnknownRuleType  = errors.New("unknown participation rule type")
	ErrInvalidRuleValue = errors.New("invalid participation rule value")
	ErrUnknownDay       = errors.New("unknown day name in availability map")
)

// UserService handles volunteer administration.
type UserService struct {
	userRepo repository.UserRepository
	cache    *participation.Cache
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, cache *participation.Cache) *UserService {
	return &UserService{
		userRepo: userRepo,
		cache:    cache,
	}
}

// ListUsers returns users matching the filter.
func (s *UserService) ListUsers(filter repository.UserFilter) ([]models.User, int64, error) {
	users, total, err := s.userRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

// CreateUserInput represents an admin-created volunteer.
type CreateUserInput struct {
	UserName       string
	Nombre         string
	Email          string
	Phone          string
	Password       string
	Role           models.UserRole
	CongregationID uint64
	Privileges     []string
}

// CreateUser creates a volunteer on behalf of an administrator.
func (s *UserService) CreateUser(input CreateUserInput) (*models.User, error) {
	userName := strings.TrimSpace(input.UserName)
	if userName == "" {
		return nil, fmt.Errorf("userName is required")
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
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

	role := input.Role
	if role == "" {
		role = models.RoleVolunteer
	}

	user := &models.User{
		UserName:       userName,
		Nombre:         strings.TrimSpace(input.Nombre),
		Email:          strings.TrimSpace(input.Email),
		Phone:          strings.TrimSpace(input.Phone),
		PasswordHash:   string(hashedPassword),
		Role:           role,
		CongregationID: input.CongregationID,
		Active:         true,
		Privileges:     input.Privileges,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// UpdateUserInput represents a partial admin edit of a volunteer.
type UpdateUserInput struct {
	Nombre     *string
	Email      *string
	Phone      *string
	Role       *models.UserRole
	Active     *bool
	Privileges *[]string
}

// UpdateUser applies a partial update to a volunteer.
func (s *UserService) UpdateUser(id uint64, input UpdateUserInput) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if input.Nombre != nil {
		user.Nombre = strings.TrimSpace(*input.Nombre)
	}
	if input.Email != nil {
		user.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		user.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.Role != nil {
		user.Role = *input.Role
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Privileges != nil {
		user.Privileges = *input.Privileges
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}

// ReplaceRules replaces a volunteer's participation rules wholesale.
// Rules have no partial update and no versioning.
func (s *UserService) ReplaceRules(id uint64, rules []participation.Rule) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	for _, rule := range rules {
		if err := validateRule(rule); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.UpdateRules(id, models.RuleList(rules)); err != nil {
		return nil, fmt.Errorf("failed to update rules: %w", err)
	}

	s.cache.InvalidateUser(user.UserName)

	user.Rules = models.RuleList(rules)
	return user, nil
}

// UpdateAvailability replaces a volunteer's weekly availability map.
func (s *UserService) UpdateAvailability(id uint64, availability models.AvailabilityMap) (*models.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	for day := range availability {
		if _, ok := participation.DayOffsets[day]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownDay, day)
		}
	}

	if err := s.userRepo.UpdateAvailability(id, availability); err != nil {
		return nil, fmt.Errorf("failed to update availability: %w", err)
	}

	user.Availability = availability
	return user, nil
}

// DeleteUser soft deletes a volunteer. The validator keeps seeing soft
// state only, never a hard delete.
func (s *UserService) DeleteUser(id uint64) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	s.cache.InvalidateUser(user.UserName)
	return nil
}

func validateRule(rule participation.Rule) error {
	switch rule.Type {
	case participation.RuleMaxPerMonth, participation.RuleMaxPerWeek:
		if rule.Value < 1 {
			return fmt.Errorf("%w: %s requires a positive limit", ErrInvalidRuleValue, rule.Type)
		}
	case participation.RuleSpecificWeeks:
		if len(rule.Weeks) == 0 {
			return fmt.Errorf("%w: %s requires at least one week", ErrInvalidRuleValue, rule.Type)
		}
		for _, week := range rule.Weeks {
			if week < 1 || week > 5 {
				return fmt.Errorf("%w: week %d out of range 1-5", ErrInvalidRuleValue, week)
			}
		}
	case participation.RuleAlternatingWeeks, participation.RuleWeeklyAvailability:
		// No value needed.
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRuleType, rule.Type)
	}
	return nil
}
