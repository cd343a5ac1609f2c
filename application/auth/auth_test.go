package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stockwise/ims/application/auth"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	redismocks "github.com/stockwise/ims/mocks/repository/redis"
	"github.com/stretchr/testify/mock"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:     "test-secret",
			JWTExpiration: time.Hour,
		},
	}
}

func TestValidateToken(t *testing.T) {
	cfg := testConfig()

	t.Run("success: valid token with a live session", func(t *testing.T) {
		token, jti, err := auth.GenerateToken(cfg, 42, constant.RoleAdmin)
		if err != nil {
			t.Fatal(err)
		}

		redisRepo := redismocks.NewRepository(t)
		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(42), nil).Once()

		userID, role, err := auth.NewValidator(cfg, redisRepo).ValidateToken(context.Background(), token)
		if err != nil {
			t.Fatalf("ValidateToken() error = %v", err)
		}
		if userID != 42 {
			t.Fatalf("userID = %d, want 42", userID)
		}
		if role != constant.RoleAdmin {
			t.Fatalf("role = %s, want admin", role)
		}
	})

	t.Run("error: session revoked", func(t *testing.T) {
		token, jti, err := auth.GenerateToken(cfg, 42, constant.RoleAdmin)
		if err != nil {
			t.Fatal(err)
		}

		redisRepo := redismocks.NewRepository(t)
		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(0), errors.New("redis: nil")).Once()

		_, _, err = auth.NewValidator(cfg, redisRepo).ValidateToken(context.Background(), token)
		if err == nil {
			t.Fatal("ValidateToken() accepted a revoked session")
		}
	})

	t.Run("error: session belongs to a different user", func(t *testing.T) {
		token, jti, err := auth.GenerateToken(cfg, 42, constant.RoleAdmin)
		if err != nil {
			t.Fatal(err)
		}

		redisRepo := redismocks.NewRepository(t)
		redisRepo.On("GetSession", mock.Anything, jti).Return(uint64(7), nil).Once()

		_, _, err = auth.NewValidator(cfg, redisRepo).ValidateToken(context.Background(), token)
		if err == nil {
			t.Fatal("ValidateToken() accepted a mismatched session")
		}
	})

	t.Run("error: token signed with a different secret", func(t *testing.T) {
		other := &config.Config{Auth: config.AuthConfig{JWTSecret: "other-secret", JWTExpiration: time.Hour}}
		token, _, err := auth.GenerateToken(other, 42, constant.RoleAdmin)
		if err != nil {
			t.Fatal(err)
		}

		redisRepo := redismocks.NewRepository(t)
		_, _, err = auth.NewValidator(cfg, redisRepo).ValidateToken(context.Background(), token)
		if err == nil {
			t.Fatal("ValidateToken() accepted a token with a bad signature")
		}
	})

	t.Run("error: garbage token", func(t *testing.T) {
		redisRepo := redismocks.NewRepository(t)
		_, _, err := auth.NewValidator(cfg, redisRepo).ValidateToken(context.Background(), "not-a-token")
		if err == nil {
			t.Fatal("ValidateToken() accepted garbage")
		}
	})
}
