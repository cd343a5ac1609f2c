package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stockwise/ims/application/auth"
	supplierapp "github.com/stockwise/ims/application/supplier"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	utilsContext "github.com/stockwise/ims/utils/context"
	"github.com/stockwise/ims/utils/errors"
	validatorx "github.com/stockwise/ims/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type SupplierHandler struct {
	SupplierApp supplierapp.SupplierApp
}

func NewSupplierTransport(supplierApp supplierapp.SupplierApp, validator auth.TokenValidator) http.Handler {
	router := mux.NewRouter()

	rh := &SupplierHandler{SupplierApp: supplierApp}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/suppliers", rh.ListSuppliers).Methods(http.MethodGet)
	router.HandleFunc("/suppliers", requireRoles(rh.CreateSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/suppliers/{id}", rh.GetSupplier).Methods(http.MethodGet)
	router.HandleFunc("/suppliers/{id}", requireRoles(rh.UpdateSupplier)).Methods(http.MethodPut)
	router.HandleFunc("/suppliers/{id}", requireRoles(rh.DeleteSupplier)).Methods(http.MethodDelete)

	router.HandleFunc("/product-suppliers", rh.ListProductSuppliers).Methods(http.MethodGet)
	router.HandleFunc("/product-suppliers", requireRoles(rh.LinkProductSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/product-suppliers/{id}", requireRoles(rh.UpdateProductSupplier)).Methods(http.MethodPut)
	router.HandleFunc("/product-suppliers/{id}", requireRoles(rh.UnlinkProductSupplier)).Methods(http.MethodDelete)

	router.HandleFunc("/purchase-orders", rh.ListPurchaseOrders).Methods(http.MethodGet)
	router.HandleFunc("/purchase-orders", requireRoles(rh.CreatePurchaseOrder, constant.RoleWarehouseStaff)).Methods(http.MethodPost)
	router.HandleFunc("/purchase-orders/stats", rh.PurchaseOrderStats).Methods(http.MethodGet)
	router.HandleFunc("/purchase-orders/{id}", rh.GetPurchaseOrder).Methods(http.MethodGet)
	router.HandleFunc("/purchase-orders/{id}", requireRoles(rh.DeletePurchaseOrder)).Methods(http.MethodDelete)
	router.HandleFunc("/purchase-orders/{id}/respond", requireRoles(rh.RespondToPurchaseOrder, constant.RoleSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/purchase-orders/{id}/preparing", requireRoles(rh.MarkPreparing, constant.RoleSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/purchase-orders/{id}/ship", requireRoles(rh.ShipPurchaseOrder, constant.RoleSupplier)).Methods(http.MethodPost)
	router.HandleFunc("/purchase-orders/{id}/receive", requireRoles(rh.ConfirmReceipt, constant.RoleWarehouseStaff)).Methods(http.MethodPost)

	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(validator))

	return router
}

func (s *SupplierHandler) CreateSupplier(w http.ResponseWriter, r *http.Request) {
	var req model.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sup, err := s.SupplierApp.CreateSupplier(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, sup)
}

func (s *SupplierHandler) ListSuppliers(w http.ResponseWriter, r *http.Request) {
	filter := &model.SupplierFilter{
		IncludeInactive: queryBool(r, "include_inactive"),
		Search:          r.URL.Query().Get("search"),
		Page:            queryInt(r, "page"),
		PerPage:         queryInt(r, "per_page"),
	}

	items, total, err := s.SupplierApp.ListSuppliers(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{
		"items":       items,
		"total_count": total,
	})
}

func (s *SupplierHandler) GetSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sup, err := s.SupplierApp.GetSupplier(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sup)
}

func (s *SupplierHandler) UpdateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	sup, err := s.SupplierApp.UpdateSupplier(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, sup)
}

func (s *SupplierHandler) DeleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SupplierApp.DeleteSupplier(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id, "is_active": false})
}

func (s *SupplierHandler) LinkProductSupplier(w http.ResponseWriter, r *http.Request) {
	var req model.ProductSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	ps, err := s.SupplierApp.LinkProductSupplier(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, ps)
}

func (s *SupplierHandler) ListProductSuppliers(w http.ResponseWriter, r *http.Request) {
	filter := &model.ProductSupplierFilter{
		ProductID:  queryUint64(r, "product_id"),
		SupplierID: queryUint64(r, "supplier_id"),
		ActiveOnly: queryBool(r, "active_only"),
		Page:       queryInt(r, "page"),
		PerPage:    queryInt(r, "per_page"),
	}

	items, err := s.SupplierApp.ListProductSuppliers(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, items)
}

func (s *SupplierHandler) UpdateProductSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateProductSupplierRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	ps, err := s.SupplierApp.UpdateProductSupplier(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, ps)
}

func (s *SupplierHandler) UnlinkProductSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SupplierApp.UnlinkProductSupplier(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id})
}

// CreatePurchaseOrder handler
// @Summary Create purchase order
// @Description Open a purchase request against a supplier for one product
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Param request body model.CreatePORequest true "Create PO Request"
// @Success 201 {object} model.PurchaseOrder
// @Failure 400 {object} errors.CustomError "below minimum order quantity or inactive relationship"
// @Router /purchase-orders [post]
func (s *SupplierHandler) CreatePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePORequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if userID, ok := utilsContext.GetUserID(r.Context()); ok {
		req.CreatedBy = &userID
	}

	po, err := s.SupplierApp.CreatePurchaseOrder(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, po)
}

func (s *SupplierHandler) ListPurchaseOrders(w http.ResponseWriter, r *http.Request) {
	filter := &model.POFilter{
		Status:           constant.POStatus(r.URL.Query().Get("status")),
		SupplierID:       queryUint64(r, "supplier_id"),
		SupplierResponse: constant.SupplierResponse(r.URL.Query().Get("supplier_response")),
		Limit:            queryInt(r, "limit"),
	}

	items, err := s.SupplierApp.ListPurchaseOrders(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, items)
}

func (s *SupplierHandler) GetPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	po, err := s.SupplierApp.GetPurchaseOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, po)
}

// RespondToPurchaseOrder handler
// @Summary Respond to purchase order
// @Description Record the supplier's approval, partial approval or rejection
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Param id path int true "Purchase Order ID"
// @Param request body model.SupplierResponseRequest true "Supplier Response"
// @Success 200 {object} model.PurchaseOrder
// @Failure 400 {object} errors.CustomError
// @Router /purchase-orders/{id}/respond [post]
func (s *SupplierHandler) RespondToPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.SupplierResponseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	po, err := s.SupplierApp.RespondToPurchaseOrder(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, po)
}

func (s *SupplierHandler) MarkPreparing(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	po, err := s.SupplierApp.MarkPreparing(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, po)
}

func (s *SupplierHandler) ShipPurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ShipmentUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	po, err := s.SupplierApp.ShipPurchaseOrder(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, po)
}

// ConfirmReceipt handler
// @Summary Confirm receipt
// @Description Mark a shipped purchase order received and restock its lines
// @Tags PurchaseOrders
// @Accept json
// @Produce json
// @Param id path int true "Purchase Order ID"
// @Param request body model.ConfirmReceiptRequest true "Receipt Confirmation"
// @Success 200 {object} model.ConfirmReceiptResponse
// @Router /purchase-orders/{id}/receive [post]
func (s *SupplierHandler) ConfirmReceipt(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ConfirmReceiptRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.SupplierApp.ConfirmReceipt(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *SupplierHandler) DeletePurchaseOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.SupplierApp.DeletePurchaseOrder(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id})
}

func (s *SupplierHandler) PurchaseOrderStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.SupplierApp.PurchaseOrderStats(r.Context(), queryUint64(r, "supplier_id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, stats)
}
