package services

import (
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
	"github.com/maojude27/FInal-project-itmajor/utils"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordInUse      = errors.New("this password is already in use by another user")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService owns registration, login and profile management for both
// roles; the role column decides which login endpoint finds the account.
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
	log       zerolog.Logger
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration, log zerolog.Logger) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
		log:       log.With().Str("service", "auth").Logger(),
	}
}

// Register creates a user with the given role after the password policy,
// duplicate-email and cross-user password collision checks.
func (s *AuthService) Register(email, password, name, contact, address, role string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if err := utils.ValidatePassword(password); err != nil {
		return nil, err
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	// Reject a password any existing user already has. O(n) bcrypt
	// compares per registration, kept from the original behavior.
	hashes, err := s.userRepo.AllPasswordHashes()
	if err != nil {
		return nil, err
	}
	for _, h := range hashes {
		if bcrypt.CompareHashAndPassword([]byte(h), []byte(password)) == nil {
			return nil, ErrPasswordInUse
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    email,
		Password: string(hashed),
		Name:     strings.TrimSpace(name),
		Contact:  strings.TrimSpace(contact),
		Address:  strings.TrimSpace(address),
		Role:     role,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	s.log.Info().Uint("user_id", user.ID).Str("role", role).Msg("user registered")
	return user, nil
}

// Login authenticates against accounts of the given role only.
func (s *AuthService) Login(email, password, role string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.userRepo.FindByEmailAndRole(email, role)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *AuthService) Profile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// ProfilePatch lists every field a profile edit may change; nil means
// leave alone. Replaces the original's string-built UPDATE clause.
type ProfilePatch struct {
	Name         *string
	Email        *string
	Contact      *string
	Address      *string
	Password     *string
	ProfileImage *string
}

func (s *AuthService) UpdateProfile(userID uint, patch *ProfilePatch) (*entity.User, error) {
	updates := map[string]any{}
	if patch.Name != nil {
		updates["name"] = strings.TrimSpace(*patch.Name)
	}
	if patch.Email != nil {
		updates["email"] = strings.ToLower(strings.TrimSpace(*patch.Email))
	}
	if patch.Contact != nil {
		updates["contact"] = strings.TrimSpace(*patch.Contact)
	}
	if patch.Address != nil {
		updates["address"] = *patch.Address
	}
	if patch.Password != nil && *patch.Password != "" {
		if err := utils.ValidatePassword(*patch.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		updates["password"] = string(hashed)
	}
	if patch.ProfileImage != nil && *patch.ProfileImage != "" {
		updates["profile_image"] = *patch.ProfileImage
	}

	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, err
		}
	}
	return s.userRepo.FindByID(userID)
}
