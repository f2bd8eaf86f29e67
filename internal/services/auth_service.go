package services

import (
	"context"
	"time"

	"stockroom/internal/models"
	"stockroom/internal/repositories"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

// Claims is the verified content of an access token.
type Claims struct {
	UserID    string
	TokenID   string
	ExpiresAt time.Time
}

type tokenClaims struct {
	UserID string `json:"userId"`
	jwt.StandardClaims
}

// RegisterInput holds the fields of a new account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// AuthService handles business logic for authentication and authorization.
type AuthService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	opts      options
}

// NewAuthService creates a new AuthService signing tokens with jwtSecret.
func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, opts ...Option) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		opts:      buildOptions(opts),
	}
}

// RegisterUser hashes the password and stores a new user. Email uniqueness is
// enforced by the store.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterInput) (*models.User, error) {
	hashed, err := hashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:    in.Email,
		Password: hashed,
	}
	user.SetName(in.FirstName, in.LastName)

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	s.opts.notify(ctx, EventUserRegistered, UserEvent{UserID: user.ID, Email: user.Email})
	return user, nil
}

// LoginUser authenticates a user and returns the user with a fresh token.
// Unknown emails and wrong passwords both yield ErrInvalidCredentials.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.IssueToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// IssueToken signs a token for userID that expires after the configured TTL.
func (s *AuthService) IssueToken(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Id:        uuid.New().String(),
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(s.opts.tokenTTL).Unix(),
		},
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

// VerifyToken checks the signature, expiry and revocation state of a token.
func (s *AuthService) VerifyToken(ctx context.Context, tokenString string) (*Claims, error) {
	var tc tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &tc, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if !token.Valid || tc.UserID == "" {
		return nil, ErrInvalidToken
	}

	if s.opts.denylist != nil && tc.Id != "" {
		revoked, err := s.opts.denylist.IsRevoked(ctx, tc.Id)
		if err != nil {
			s.opts.logger.WithError(err).Warn("token denylist lookup failed")
		}
		if revoked {
			return nil, errors.Wrap(ErrInvalidToken, "token revoked")
		}
	}

	return &Claims{
		UserID:    tc.UserID,
		TokenID:   tc.Id,
		ExpiresAt: time.Unix(tc.ExpiresAt, 0),
	}, nil
}

// ResolveUser loads the user a verified token was issued for.
func (s *AuthService) ResolveUser(ctx context.Context, claims *Claims) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// ChangePassword replaces the user's password after checking the old one.
func (s *AuthService) ChangePassword(ctx context.Context, user *models.User, oldPassword, newPassword string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return ErrWrongPassword
	}

	hashed, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.userRepo.Update(ctx, user)
}

// Logout revokes the token described by claims until it would have expired.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if s.opts.denylist == nil || claims.TokenID == "" {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	return s.opts.denylist.Revoke(ctx, claims.TokenID, ttl)
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "failed to hash password")
	}
	return string(hashed), nil
}
