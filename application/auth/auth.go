package auth

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	redisrepo "github.com/stockwise/ims/repository/redis"
)

// Claims is the token payload shared by every service. The role travels in
// the token so services can authorize without calling the user service.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenValidator checks a bearer token and returns the caller's identity.
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (uint64, constant.Role, error)
}

type validatorImpl struct {
	config    *config.Config
	redisRepo redisrepo.Repository
}

// NewValidator builds a TokenValidator backed by the shared session store.
func NewValidator(config *config.Config, redisRepo redisrepo.Repository) TokenValidator {
	return &validatorImpl{config: config, redisRepo: redisRepo}
}

func (v *validatorImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, constant.Role, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(v.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	sessionUserID, err := v.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}
	if sessionUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	role := constant.Role(claims.Role)
	if !constant.Roles[role] {
		return 0, "", fmt.Errorf("unknown role in token")
	}

	return userID, role, nil
}

// GenerateToken signs a new token for the user. The returned jti keys the
// session entry in Redis.
func GenerateToken(cfg *config.Config, userID uint64, role constant.Role) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Auth.JWTExpiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        newUUID.String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(cfg.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
