package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stockwise/ims/application/auth"
	orderapp "github.com/stockwise/ims/application/order"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	utilsContext "github.com/stockwise/ims/utils/context"
	"github.com/stockwise/ims/utils/errors"
	validatorx "github.com/stockwise/ims/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type OrderHandler struct {
	OrderApp orderapp.OrderApp
}

func NewOrderTransport(orderApp orderapp.OrderApp, validator auth.TokenValidator, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &OrderHandler{OrderApp: orderApp}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/orders", rh.CreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/orders", rh.ListOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}", rh.GetOrder).Methods(http.MethodGet)
	router.HandleFunc("/orders/{id}", requireRoles(rh.DeleteOrder)).Methods(http.MethodDelete)
	router.HandleFunc("/orders/{id}/status", requireRoles(rh.UpdateStatus, constant.RoleWarehouseStaff)).Methods(http.MethodPut)
	router.HandleFunc("/orders/{id}/cancel", rh.CancelOrder).Methods(http.MethodPost)

	// expiration callback from the queue worker
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/orders/{id}/expire", rh.ExpireOrder).Methods(http.MethodPost)

	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(validator))

	return router
}

// CreateOrder handler
// @Summary Create order
// @Description Create an order, reserving stock for every line
// @Tags Orders
// @Accept json
// @Produce json
// @Param request body model.OrderRequest true "Order Request"
// @Success 201 {object} model.OrderResponse
// @Failure 409 {object} errors.CustomError "insufficient stock, data lists the short lines"
// @Router /orders [post]
func (s *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	userID, ok := utilsContext.GetUserID(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}
	req.CustomerID = userID

	res, err := s.OrderApp.CreateOrder(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, res)
}

func (s *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filter := &model.OrderFilter{
		Status:  constant.OrderStatus(r.URL.Query().Get("status")),
		Page:    queryInt(r, "page"),
		PerPage: queryInt(r, "per_page"),
	}

	// non-staff callers only see their own orders
	role, _ := utilsContext.GetUserRole(r.Context())
	if role == constant.RoleAdmin || role == constant.RoleWarehouseStaff {
		filter.CustomerID = queryUint64(r, "customer_id")
	} else {
		filter.CustomerID, _ = utilsContext.GetUserID(r.Context())
	}

	items, total, err := s.OrderApp.ListOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{
		"items":       items,
		"total_count": total,
	})
}

func (s *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	detail, err := s.OrderApp.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	role, _ := utilsContext.GetUserRole(r.Context())
	if role != constant.RoleAdmin && role != constant.RoleWarehouseStaff {
		userID, _ := utilsContext.GetUserID(r.Context())
		if detail.CustomerID != userID {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
	}
	writeSuccess(w, detail)
}

// UpdateStatus handler
// @Summary Update order status
// @Description Move an order along its status graph; shipping deducts stock
// @Tags Orders
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param request body model.UpdateOrderStatusRequest true "New Status"
// @Success 200 {object} model.Order
// @Failure 400 {object} errors.CustomError
// @Router /orders/{id}/status [put]
func (s *OrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateOrderStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	order, err := s.OrderApp.UpdateStatus(r.Context(), id, constant.OrderStatus(req.Status))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, order)
}

func (s *OrderHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	role, _ := utilsContext.GetUserRole(r.Context())
	if role != constant.RoleAdmin && role != constant.RoleWarehouseStaff {
		detail, err := s.OrderApp.GetOrder(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		userID, _ := utilsContext.GetUserID(r.Context())
		if detail.CustomerID != userID {
			writeError(w, errors.SetCustomError(constant.ErrForbidden))
			return
		}
	}

	if err := s.OrderApp.CancelOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id, "status": constant.OrderStatusCancelled})
}

func (s *OrderHandler) ExpireOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.ExpireOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id, "status": constant.OrderStatusCancelled})
}

func (s *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.OrderApp.DeleteOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id})
}
