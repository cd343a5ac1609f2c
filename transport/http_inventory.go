package transport

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stockwise/ims/application/auth"
	inventoryapp "github.com/stockwise/ims/application/inventory"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	utilsContext "github.com/stockwise/ims/utils/context"
	"github.com/stockwise/ims/utils/errors"
	validatorx "github.com/stockwise/ims/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type InventoryHandler struct {
	InventoryApp inventoryapp.InventoryApp
}

func NewInventoryTransport(inventoryApp inventoryapp.InventoryApp, validator auth.TokenValidator, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &InventoryHandler{InventoryApp: inventoryApp}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/inventory", rh.ListInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory", requireRoles(rh.CreateInventory, constant.RoleWarehouseStaff)).Methods(http.MethodPost)
	router.HandleFunc("/inventory/stats", rh.Stats).Methods(http.MethodGet)
	router.HandleFunc("/inventory/adjust", requireRoles(rh.AdjustStock, constant.RoleWarehouseStaff)).Methods(http.MethodPost)
	router.HandleFunc("/inventory/{product_id}", rh.GetInventory).Methods(http.MethodGet)
	router.HandleFunc("/inventory/{product_id}", requireRoles(rh.UpdateInventory, constant.RoleWarehouseStaff)).Methods(http.MethodPut)
	router.HandleFunc("/inventory/{product_id}", requireRoles(rh.DeleteInventory)).Methods(http.MethodDelete)

	router.HandleFunc("/stock-check", rh.BulkStockCheck).Methods(http.MethodPost)
	router.HandleFunc("/movements", rh.ListMovements).Methods(http.MethodGet)

	router.HandleFunc("/alerts", rh.ListAlerts).Methods(http.MethodGet)
	router.HandleFunc("/alerts/check", requireRoles(rh.CheckLowStock, constant.RoleWarehouseStaff)).Methods(http.MethodPost)
	router.HandleFunc("/alerts/stats", rh.AlertStats).Methods(http.MethodGet)
	router.HandleFunc("/alerts/suggestions", rh.ReorderSuggestions).Methods(http.MethodGet)
	router.HandleFunc("/alerts/{id}/resolve", requireRoles(rh.ResolveAlert, constant.RoleWarehouseStaff)).Methods(http.MethodPut)
	router.HandleFunc("/alerts/{id}/ignore", requireRoles(rh.IgnoreAlert, constant.RoleWarehouseStaff)).Methods(http.MethodPut)

	// sibling-service routes, API-key guarded
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/inventory", rh.CreateInventory).Methods(http.MethodPost)
	internal.HandleFunc("/inventory/adjust", rh.AdjustStock).Methods(http.MethodPost)
	internal.HandleFunc("/inventory/reserve", rh.ReserveStock).Methods(http.MethodPost)
	internal.HandleFunc("/inventory/release", rh.ReleaseStock).Methods(http.MethodPost)
	internal.HandleFunc("/inventory/confirm-deduction", rh.ConfirmDeduction).Methods(http.MethodPost)
	internal.HandleFunc("/inventory/return", rh.ReturnStock).Methods(http.MethodPost)
	internal.HandleFunc("/inventory/check", rh.BulkStockCheck).Methods(http.MethodPost)
	internal.HandleFunc("/alerts/check", rh.CheckLowStock).Methods(http.MethodPost)

	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(validator))

	return router
}

func (s *InventoryHandler) CreateInventory(w http.ResponseWriter, r *http.Request) {
	var req model.CreateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	inv, err := s.InventoryApp.CreateInventory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, inv)
}

func (s *InventoryHandler) ListInventory(w http.ResponseWriter, r *http.Request) {
	filter := &model.InventoryFilter{
		ProductID: queryUint64(r, "product_id"),
		SKU:       r.URL.Query().Get("sku"),
		LowStock:  queryBool(r, "low_stock"),
		Page:      queryInt(r, "page"),
		PerPage:   queryInt(r, "per_page"),
	}

	items, total, err := s.InventoryApp.ListInventory(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{
		"items":       items,
		"total_count": total,
	})
}

func (s *InventoryHandler) GetInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	inv, err := s.InventoryApp.GetInventory(r.Context(), productID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, inv)
}

func (s *InventoryHandler) UpdateInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateInventoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	inv, err := s.InventoryApp.UpdateInventory(r.Context(), productID, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, inv)
}

func (s *InventoryHandler) DeleteInventory(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.InventoryApp.DeleteInventory(r.Context(), productID); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"product_id": productID})
}

func (s *InventoryHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.InventoryApp.Stats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, stats)
}

// AdjustStock handler
// @Summary Adjust stock
// @Description Apply a manual stock movement to a product's inventory
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.AdjustStockRequest true "Adjust Stock Request"
// @Success 200 {object} model.Inventory
// @Failure 400 {object} errors.CustomError
// @Failure 409 {object} errors.CustomError
// @Router /inventory/adjust [post]
func (s *InventoryHandler) AdjustStock(w http.ResponseWriter, r *http.Request) {
	var req model.AdjustStockRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if req.ReferenceType == "" {
		req.ReferenceType = constant.ReferenceManual
	}
	if userID, ok := utilsContext.GetUserID(r.Context()); ok {
		req.CreatedBy = userID
	}

	inv, err := s.InventoryApp.AdjustStock(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, inv)
}

func (s *InventoryHandler) ReserveStock(w http.ResponseWriter, r *http.Request) {
	s.stockOp(w, r, s.InventoryApp.ReserveStock)
}

func (s *InventoryHandler) ReleaseStock(w http.ResponseWriter, r *http.Request) {
	s.stockOp(w, r, s.InventoryApp.ReleaseStock)
}

func (s *InventoryHandler) ConfirmDeduction(w http.ResponseWriter, r *http.Request) {
	s.stockOp(w, r, s.InventoryApp.ConfirmDeduction)
}

func (s *InventoryHandler) ReturnStock(w http.ResponseWriter, r *http.Request) {
	s.stockOp(w, r, s.InventoryApp.ReturnStock)
}

func (s *InventoryHandler) stockOp(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, req *model.StockOpRequest) (*model.Inventory, error)) {
	var req model.StockOpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if userID, ok := utilsContext.GetUserID(r.Context()); ok {
		req.CreatedBy = userID
	}

	inv, err := op(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, inv)
}

func (s *InventoryHandler) closeAlert(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id, userID uint64) (*model.LowStockAlert, error)) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	userID, _ := utilsContext.GetUserID(r.Context())

	alert, err := op(r.Context(), id, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, alert)
}

// BulkStockCheck handler
// @Summary Bulk stock check
// @Description Report availability for a set of products in one call
// @Tags Inventory
// @Accept json
// @Produce json
// @Param request body model.BulkStockCheckRequest true "Stock Check Request"
// @Success 200 {array} model.StockCheckResult
// @Router /stock-check [post]
func (s *InventoryHandler) BulkStockCheck(w http.ResponseWriter, r *http.Request) {
	var req model.BulkStockCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	results, err := s.InventoryApp.BulkStockCheck(r.Context(), req.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, results)
}

func (s *InventoryHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	filter := &model.MovementFilter{
		ProductID:    queryUint64(r, "product_id"),
		MovementType: constant.MovementType(r.URL.Query().Get("movement_type")),
		Page:         queryInt(r, "page"),
		PerPage:      queryInt(r, "per_page"),
	}

	items, total, err := s.InventoryApp.ListMovements(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{
		"items":       items,
		"total_count": total,
	})
}

// CheckLowStock handler
// @Summary Run low-stock check
// @Description Scan inventory and open alerts for products at or below reorder level
// @Tags Alerts
// @Produce json
// @Success 200 {array} model.LowStockAlert
// @Router /alerts/check [post]
func (s *InventoryHandler) CheckLowStock(w http.ResponseWriter, r *http.Request) {
	created, err := s.InventoryApp.CheckLowStock(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{
		"created": created,
		"count":   len(created),
	})
}

func (s *InventoryHandler) ListAlerts(w http.ResponseWriter, r *http.Request) {
	status := constant.AlertStatus(r.URL.Query().Get("status"))

	views, err := s.InventoryApp.ListAlerts(r.Context(), status)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, views)
}

func (s *InventoryHandler) ResolveAlert(w http.ResponseWriter, r *http.Request) {
	s.closeAlert(w, r, s.InventoryApp.ResolveAlert)
}

func (s *InventoryHandler) IgnoreAlert(w http.ResponseWriter, r *http.Request) {
	s.closeAlert(w, r, s.InventoryApp.IgnoreAlert)
}

func (s *InventoryHandler) AlertStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.InventoryApp.AlertStats(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, stats)
}

func (s *InventoryHandler) ReorderSuggestions(w http.ResponseWriter, r *http.Request) {
	items, err := s.InventoryApp.ReorderSuggestions(r.Context(), queryInt(r, "limit"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, items)
}
