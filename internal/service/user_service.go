package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"admin-dashboard/internal/domain"
	"admin-dashboard/internal/repository"
)

var (
	// ErrUserExists is returned when the username or email is already taken.
	ErrUserExists = errors.New("user with given email or username already exists")
	// ErrInvalidCredentials indicates that provided login credentials are incorrect.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAccountDeactivated is returned on login against a soft-deleted account.
	ErrAccountDeactivated = errors.New("account is deactivated")
	// ErrWrongPassword indicates the supplied current password does not match.
	ErrWrongPassword = errors.New("current password is incorrect")
	// ErrSelfDeactivation is returned when an admin tries to deactivate themselves.
	ErrSelfDeactivation = errors.New("cannot delete your own account")
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// RegisterInput carries the fields accepted at registration and admin
// user creation.
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     domain.Role
	Profile  domain.Profile
}

// ProfilePatch updates only the fields that were provided.
type ProfilePatch struct {
	FirstName  *string
	LastName   *string
	Avatar     *string
	Phone      *string
	Department *string
}

// UpdateUserInput carries a partial account update. Role and IsActive
// are applied only when the caller is an admin.
type UpdateUserInput struct {
	Username *string
	Email    *string
	Profile  *ProfilePatch
	Role     *domain.Role
	IsActive *bool
}

// UserService covers the account lifecycle: registration, login,
// profile and settings updates, password management and deactivation.
type UserService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context, filter repository.UserFilter) ([]domain.User, int, error)
	Create(ctx context.Context, in RegisterInput) (*domain.User, string, error)
	Update(ctx context.Context, id string, in UpdateUserInput, asAdmin bool) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error)
	UpdateSettings(ctx context.Context, id string, settings json.RawMessage) (*domain.User, error)
	ChangePassword(ctx context.Context, id, current, next string) error
	ResetPassword(ctx context.Context, id, supplied string) (string, error)
	Deactivate(ctx context.Context, id, actorID string) error
	EnsureDefaultAdmin(ctx context.Context, username, email, password string) error
}

type userService struct {
	users              repository.UserRepository
	bcryptCost         int
	generatedPasswordN int
}

func NewUserService(users repository.UserRepository, bcryptCost, generatedPasswordLength int) UserService {
	return &userService{
		users:              users,
		bcryptCost:         bcryptCost,
		generatedPasswordN: generatedPasswordLength,
	}
}

func (s *userService) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	if err := validateRegistration(in); err != nil {
		return nil, err
	}

	if err := s.checkAvailability(ctx, in.Username, in.Email, ""); err != nil {
		return nil, err
	}

	hash, err := HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     strings.TrimSpace(in.Username),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		Role:         role,
		Profile:      in.Profile,
		IsActive:     true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDeactivated
	}

	now := time.Now().UTC()
	user.LastLogin = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) List(ctx context.Context, filter repository.UserFilter) ([]domain.User, int, error) {
	users, total, err := s.users.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, total, nil
}

// Create is the admin variant of Register: a missing password is
// generated and returned once alongside the account.
func (s *userService) Create(ctx context.Context, in RegisterInput) (*domain.User, string, error) {
	generated := ""
	if in.Password == "" {
		password, err := GeneratePassword(s.generatedPasswordN)
		if err != nil {
			return nil, "", err
		}
		in.Password = password
		generated = password
	}

	user, err := s.Register(ctx, in)
	if err != nil {
		return nil, "", err
	}
	return user, generated, nil
}

func (s *userService) Update(ctx context.Context, id string, in UpdateUserInput, asAdmin bool) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	username := user.Username
	email := user.Email
	if in.Username != nil {
		username = strings.TrimSpace(*in.Username)
	}
	if in.Email != nil {
		email = strings.ToLower(strings.TrimSpace(*in.Email))
	}
	if username != user.Username || !strings.EqualFold(email, user.Email) {
		if err := s.checkAvailability(ctx, username, email, user.ID); err != nil {
			return nil, err
		}
	}
	user.Username = username
	user.Email = email

	if in.Profile != nil {
		user.Profile = mergeProfile(user.Profile, *in.Profile)
	}

	// role/isActive are silently dropped for non-admin requesters
	if asAdmin {
		if in.Role != nil {
			user.Role = *in.Role
		}
		if in.IsActive != nil {
			user.IsActive = *in.IsActive
		}
	}

	if err := s.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, id string, patch ProfilePatch) (*domain.User, error) {
	return s.Update(ctx, id, UpdateUserInput{Profile: &patch}, false)
}

func (s *userService) UpdateSettings(ctx context.Context, id string, settings json.RawMessage) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	merged, err := mergeSettings(user.Settings, settings)
	if err != nil {
		return nil, err
	}
	user.Settings = merged

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return sanitizeUser(user), nil
}

func (s *userService) ChangePassword(ctx context.Context, id, current, next string) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if !CheckPassword(user.PasswordHash, current) {
		return ErrWrongPassword
	}
	if err := validatePassword(next); err != nil {
		return err
	}

	hash, err := HashPassword(next, s.bcryptCost)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.users.Update(ctx, user)
}

// ResetPassword replaces the credential outright. When no password is
// supplied a random one is generated and returned; it is never stored
// in plaintext and cannot be retrieved again.
func (s *userService) ResetPassword(ctx context.Context, id, supplied string) (string, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNotFound
		}
		return "", err
	}

	generated := ""
	password := supplied
	if password == "" {
		password, err = GeneratePassword(s.generatedPasswordN)
		if err != nil {
			return "", err
		}
		generated = password
	}

	hash, err := HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	return generated, nil
}

func (s *userService) Deactivate(ctx context.Context, id, actorID string) error {
	if id == actorID {
		return ErrSelfDeactivation
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	user.IsActive = false
	return s.users.Update(ctx, user)
}

func (s *userService) EnsureDefaultAdmin(ctx context.Context, username, email, password string) error {
	_, err := s.users.GetByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	_, err = s.Register(ctx, RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
		Role:     domain.RoleAdmin,
		Profile: domain.Profile{
			FirstName:  "Admin",
			LastName:   "User",
			Department: "Management",
		},
	})
	return err
}

func (s *userService) checkAvailability(ctx context.Context, username, email, selfID string) error {
	if existing, err := s.users.GetByUsername(ctx, username); err == nil && existing.ID != selfID {
		return ErrUserExists
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	if existing, err := s.users.GetByEmail(ctx, email); err == nil && existing.ID != selfID {
		return ErrUserExists
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return err
	}
	return nil
}

func validateRegistration(in RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 {
		return fmt.Errorf("%w: username must be at least 3 characters long", ErrValidation)
	}
	if !usernamePattern.MatchString(username) {
		return fmt.Errorf("%w: username must contain only letters, numbers, and underscores", ErrValidation)
	}
	if !strings.Contains(in.Email, "@") {
		return fmt.Errorf("%w: must be a valid email", ErrValidation)
	}
	return validatePassword(in.Password)
}

func validatePassword(password string) error {
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	var hasLower, hasUpper, hasDigit bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		}
	}
	if !hasLower || !hasUpper || !hasDigit {
		return fmt.Errorf("%w: password must include uppercase, lowercase, and number", ErrValidation)
	}
	return nil
}

func mergeProfile(current domain.Profile, patch ProfilePatch) domain.Profile {
	if patch.FirstName != nil {
		current.FirstName = *patch.FirstName
	}
	if patch.LastName != nil {
		current.LastName = *patch.LastName
	}
	if patch.Avatar != nil {
		current.Avatar = *patch.Avatar
	}
	if patch.Phone != nil {
		current.Phone = *patch.Phone
	}
	if patch.Department != nil {
		current.Department = *patch.Department
	}
	return current
}

// mergeSettings overlays the incoming top-level keys onto the stored
// settings object.
func mergeSettings(current, incoming json.RawMessage) (json.RawMessage, error) {
	merged := map[string]json.RawMessage{}
	if len(current) > 0 {
		if err := json.Unmarshal(current, &merged); err != nil {
			merged = map[string]json.RawMessage{}
		}
	}
	overlay := map[string]json.RawMessage{}
	if len(incoming) > 0 {
		if err := json.Unmarshal(incoming, &overlay); err != nil {
			return nil, fmt.Errorf("%w: settings must be a JSON object", ErrValidation)
		}
	}
	for k, v := range overlay {
		merged[k] = v
	}
	out, err := json.Marshal(merged)
	if err != nil {
		return nil, fmt.Errorf("merge settings: %w", err)
	}
	return out, nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	clean := *user
	clean.PasswordHash = ""
	return &clean
}
