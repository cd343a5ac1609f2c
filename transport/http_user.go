package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stockwise/ims/application/auth"
	userapp "github.com/stockwise/ims/application/user"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/utils/errors"
	validatorx "github.com/stockwise/ims/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type UserHandler struct {
	UserApp userapp.UserApp
}

func NewUserTransport(userApp userapp.UserApp, validator auth.TokenValidator) http.Handler {
	router := mux.NewRouter()

	rh := &UserHandler{UserApp: userApp}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Public routes
	router.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	router.HandleFunc("/login", rh.Login).Methods(http.MethodPost)

	// User management, admin only
	router.HandleFunc("/users", requireRoles(rh.ListUsers)).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", requireRoles(rh.GetUser)).Methods(http.MethodGet)
	router.HandleFunc("/users/{id}", requireRoles(rh.UpdateUser)).Methods(http.MethodPut)
	router.HandleFunc("/users/{id}", requireRoles(rh.DeactivateUser)).Methods(http.MethodDelete)

	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(validator))

	return router
}

// Register handler
// @Summary Register user
// @Description Register a new user with a role
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Failure 400 {object} errors.CustomError
// @Router /register [post]
func (s *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeCreated(w, res)
}

// Login handler
// @Summary Login user
// @Description Login with username or email and receive JWT token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Failure 400 {object} errors.CustomError
// @Router /login [post]
func (s *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.UserApp.Login(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

func (s *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, total, err := s.UserApp.ListUsers(r.Context(),
		queryBool(r, "include_inactive"),
		queryInt(r, "page"),
		queryInt(r, "per_page"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"items":       users,
		"total_count": total,
	})
}

func (s *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	user, err := s.UserApp.GetUser(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, user)
}

func (s *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	user, err := s.UserApp.UpdateUser(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, user)
}

func (s *UserHandler) DeactivateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.UserApp.DeactivateUser(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id, "is_active": false})
}
