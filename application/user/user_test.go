package user_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	appuser "github.com/stockwise/ims/application/user"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	redismocks "github.com/stockwise/ims/mocks/repository/redis"
	usermocks "github.com/stockwise/ims/mocks/repository/user"
	"github.com/stockwise/ims/model"
	cerr "github.com/stockwise/ims/utils/errors"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret",
			JWTExpiration:  time.Hour,
			SessionExpTime: time.Hour,
		},
	}
}

func TestUserApp_Register(t *testing.T) {
	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.RegisterRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
		wantRole constant.Role
	}{
		{
			name: "success: register with default role",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.RegisterRequest{
				Username: "budi",
				Email:    "budi@example.com",
				FullName: "Budi Santoso",
				Password: "secret123",
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "budi", IncludeInactive: true}).
					Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "budi@example.com", IncludeInactive: true}).
					Return(nil, nil).Once()
				f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(u *model.UserEntity) bool {
					return u.Username == "budi" && u.Role == constant.RoleWarehouseStaff && u.PasswordHash != "secret123"
				})).Return(&model.UserEntity{
					ID:       1,
					Username: "budi",
					Email:    "budi@example.com",
					Role:     constant.RoleWarehouseStaff,
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: username taken by a deactivated account",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.RegisterRequest{
				Username: "budi",
				Email:    "new@example.com",
				FullName: "Budi Santoso",
				Password: "secret123",
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "budi", IncludeInactive: true}).
					Return(&model.UserEntity{ID: 1, Username: "budi", IsActive: false}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: email already registered",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.RegisterRequest{
				Username: "siti",
				Email:    "budi@example.com",
				FullName: "Siti Aminah",
				Password: "secret123",
			},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "siti", IncludeInactive: true}).
					Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "budi@example.com", IncludeInactive: true}).
					Return(&model.UserEntity{ID: 1}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Username != tt.req.Username {
				t.Fatalf("Register() username = %s, want %s", got.Username, tt.req.Username)
			}
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	if err != nil {
		t.Fatal(err)
	}

	type fields struct {
		userRepo  *usermocks.UserRepository
		redisRepo *redismocks.Repository
	}
	tests := []struct {
		name     string
		fields   fields
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: login by username stores a session",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Identifier: "budi", Password: "secret123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "budi"}).Return(&model.UserEntity{
					ID:           1,
					Username:     "budi",
					Email:        "budi@example.com",
					PasswordHash: string(hash),
					Role:         constant.RoleAdmin,
					IsActive:     true,
				}, nil).Once()

				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: login by email",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Identifier: "budi@example.com", Password: "secret123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "budi@example.com"}).Return(&model.UserEntity{
					ID:           1,
					Username:     "budi",
					Email:        "budi@example.com",
					PasswordHash: string(hash),
					Role:         constant.RoleWarehouseStaff,
					IsActive:     true,
				}, nil).Once()

				f.redisRepo.On("SetSession", mock.Anything, mock.AnythingOfType("string"), uint64(1), time.Hour).
					Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: wrong password",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Identifier: "budi", Password: "wrong"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "budi"}).Return(&model.UserEntity{
					ID:           1,
					PasswordHash: string(hash),
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: unknown user",
			fields: fields{
				userRepo:  usermocks.NewUserRepository(t),
				redisRepo: redismocks.NewRepository(t),
			},
			req: &model.LoginRequest{Identifier: "ghost", Password: "secret123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "ghost"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appuser.NewUserApp(testConfig(), tt.fields.userRepo, tt.fields.redisRepo)

			got, err := app.Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}
			if got.Token == "" {
				t.Fatal("Login() returned an empty token")
			}
		})
	}
}

func TestUserApp_DeactivateUser(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("SoftDelete", mock.Anything, uint64(1)).Return(nil).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		if err := app.DeactivateUser(context.Background(), 1); err != nil {
			t.Fatalf("DeactivateUser() error = %v", err)
		}
	})

	t.Run("error: user not found", func(t *testing.T) {
		userRepo := usermocks.NewUserRepository(t)
		redisRepo := redismocks.NewRepository(t)
		userRepo.On("SoftDelete", mock.Anything, uint64(9)).Return(sql.ErrNoRows).Once()

		app := appuser.NewUserApp(testConfig(), userRepo, redisRepo)
		err := app.DeactivateUser(context.Background(), 9)

		var ce cerr.CustomError
		if !errors.As(err, &ce) {
			t.Fatalf("error type = %T, want CustomError", err)
		}
		if ce.ErrorCode() != constant.ErrorTypeCode[constant.ErrNotFound] {
			t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[constant.ErrNotFound])
		}
	})
}
