package services

import (
	"errors"
	"time"

	"github.com/JoonHyoungLee-Seoul/vanta/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrInvalidCredentials = errors.New("id or password does not match")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
)

type AuthService struct {
	db        *gorm.DB
	jwtSecret []byte
	tokenTTL  time.Duration
	adminIDs  map[uint]struct{}
}

func NewAuthService(db *gorm.DB, jwtSecret string, expirationHours int, adminUserIDs []uint) *AuthService {
	admins := make(map[uint]struct{}, len(adminUserIDs))
	for _, id := range adminUserIDs {
		admins[id] = struct{}{}
	}
	return &AuthService{
		db:        db,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  time.Duration(expirationHours) * time.Hour,
		adminIDs:  admins,
	}
}

func (s *AuthService) HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) GenerateToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.tokenTTL).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

func (s *AuthService) ValidateToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, ErrTokenExpired
		}
		return 0, ErrTokenInvalid
	}
	if !token.Valid {
		return 0, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrTokenInvalid
	}
	rawID, ok := claims["user_id"].(float64)
	if !ok {
		return 0, ErrTokenInvalid
	}
	return uint(rawID), nil
}

func (s *AuthService) Login(userID, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.Where("user_id = ?", userID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.GenerateToken(user.ID)
	if err != nil {
		return nil, "", err
	}
	return &user, token, nil
}

// Authenticate resolves a bearer token to its user. A well-formed token whose
// subject no longer exists is treated the same as a bad token.
func (s *AuthService) Authenticate(tokenString string) (*models.User, error) {
	userID, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	return &user, nil
}

// AuthenticateOptional returns nil instead of an error for endpoints where
// authentication is advisory.
func (s *AuthService) AuthenticateOptional(tokenString string) *models.User {
	if tokenString == "" {
		return nil
	}
	user, err := s.Authenticate(tokenString)
	if err != nil {
		return nil
	}
	return user
}

// IsAdmin checks the configured allow-list. An empty list means nobody is an
// admin, not that everybody is.
func (s *AuthService) IsAdmin(userID uint) bool {
	_, ok := s.adminIDs[userID]
	return ok
}
