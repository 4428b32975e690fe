package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/printventory/printventory-backend/internal/users"
	pkgauth "github.com/printventory/printventory-backend/pkg/auth"
	"github.com/printventory/printventory-backend/pkg/config"
	"github.com/printventory/printventory-backend/pkg/db"
	"github.com/printventory/printventory-backend/pkg/db/models"
	pkgerrors "github.com/printventory/printventory-backend/pkg/errors"
	"github.com/printventory/printventory-backend/pkg/security"
)

// DefaultRole is assigned when registration omits the role field.
const DefaultRole = "Manager"

// Service defines account registration and credential verification.
type Service interface {
	Register(ctx context.Context, input RegisterInput) (*UserResponse, error)
	Login(ctx context.Context, input LoginInput) (*LoginResponse, error)
}

type hasher interface {
	Hash(password string) (string, error)
	Verify(password, encoded string) (bool, error)
}

type configHasher struct {
	cfg config.PasswordConfig
}

func (h configHasher) Hash(password string) (string, error) {
	return security.HashPassword(password, h.cfg)
}

func (h configHasher) Verify(password, encoded string) (bool, error) {
	return security.VerifyPassword(password, encoded)
}

type service struct {
	repo   users.Repository
	jwtCfg config.JWTConfig
	hasher hasher
	now    func() time.Time
}

// NewService builds the auth service with the required dependencies.
func NewService(repo users.Repository, jwtCfg config.JWTConfig, passwordCfg config.PasswordConfig) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("users repository required")
	}
	if jwtCfg.Secret == "" {
		return nil, fmt.Errorf("jwt secret required")
	}
	return &service{
		repo:   repo,
		jwtCfg: jwtCfg,
		hasher: configHasher{cfg: passwordCfg},
		now:    time.Now,
	}, nil
}

func (s *service) Register(ctx context.Context, input RegisterInput) (*UserResponse, error) {
	username := strings.TrimSpace(input.Username)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	role := strings.TrimSpace(input.Role)
	if role == "" {
		role = DefaultRole
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	user := &models.User{
		Username:     username,
		PasswordHash: hash,
		Email:        email,
		Role:         role,
	}
	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "Username or email already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create user")
	}

	resp := toUserResponse(created)
	return &resp, nil
}

func (s *service) Login(ctx context.Context, input LoginInput) (*LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, strings.TrimSpace(input.Username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load user")
	}

	ok, err := s.hasher.Verify(input.Password, user.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !ok {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "Invalid credentials")
	}

	token, err := pkgauth.MintAccessToken(s.jwtCfg, s.now(), pkgauth.AccessTokenPayload{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint token")
	}

	return &LoginResponse{
		Success: true,
		Token:   token,
		User:    toUserResponse(user),
	}, nil
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	}
}
