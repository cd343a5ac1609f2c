package transport

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/stockwise/ims/application/auth"
	catalogapp "github.com/stockwise/ims/application/catalog"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/utils/errors"
	validatorx "github.com/stockwise/ims/utils/validator"
	httpSwagger "github.com/swaggo/http-swagger"
)

type CatalogHandler struct {
	CatalogApp catalogapp.CatalogApp
}

func NewCatalogTransport(catalogApp catalogapp.CatalogApp, validator auth.TokenValidator, internalAPIKey string) http.Handler {
	router := mux.NewRouter()

	rh := &CatalogHandler{CatalogApp: catalogApp}

	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	router.HandleFunc("/products", rh.ListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products", requireRoles(rh.CreateProduct, constant.RoleWarehouseStaff)).Methods(http.MethodPost)
	router.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)
	router.HandleFunc("/products/{id}", requireRoles(rh.UpdateProduct, constant.RoleWarehouseStaff)).Methods(http.MethodPut)
	router.HandleFunc("/products/{id}", requireRoles(rh.DeleteProduct)).Methods(http.MethodDelete)

	router.HandleFunc("/categories", rh.ListCategories).Methods(http.MethodGet)
	router.HandleFunc("/categories", requireRoles(rh.CreateCategory, constant.RoleWarehouseStaff)).Methods(http.MethodPost)
	router.HandleFunc("/categories/{id}", rh.GetCategory).Methods(http.MethodGet)
	router.HandleFunc("/categories/{id}", requireRoles(rh.UpdateCategory, constant.RoleWarehouseStaff)).Methods(http.MethodPut)
	router.HandleFunc("/categories/{id}", requireRoles(rh.DeleteCategory)).Methods(http.MethodDelete)

	// sibling-service routes, API-key guarded
	internal := router.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(internalAPIKey))
	internal.HandleFunc("/products/batch", rh.GetProductsBatch).Methods(http.MethodPost)
	internal.HandleFunc("/products/{id}", rh.GetProduct).Methods(http.MethodGet)

	router.Use(LoggingMiddleware())
	router.Use(AuthMiddleware(validator))

	return router
}

// CreateProduct handler
// @Summary Create product
// @Description Create a catalog product; an empty inventory record is opened for it
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body model.CreateProductRequest true "Create Product Request"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.CustomError
// @Router /products [post]
func (s *CatalogHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req model.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	product, err := s.CatalogApp.CreateProduct(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, product)
}

// ListProducts handler
// @Summary List products
// @Tags Catalog
// @Produce json
// @Param page query int false "Page"
// @Param per_page query int false "Per page"
// @Param search query string false "Name or SKU search"
// @Success 200 {object} model.ProductListResponse
// @Router /products [get]
func (s *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := &model.ProductFilter{
		CategoryID:      queryUint64(r, "category_id"),
		SupplierID:      queryUint64(r, "supplier_id"),
		LifecycleState:  r.URL.Query().Get("lifecycle_state"),
		Search:          r.URL.Query().Get("search"),
		IncludeInactive: queryBool(r, "include_inactive"),
		Page:            queryInt(r, "page"),
		PerPage:         queryInt(r, "per_page"),
	}

	res, err := s.CatalogApp.ListProducts(r.Context(), filter)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, res)
}

func (s *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	product, err := s.CatalogApp.GetProduct(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, product)
}

func (s *CatalogHandler) GetProductsBatch(w http.ResponseWriter, r *http.Request) {
	var req model.ProductBatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	products, err := s.CatalogApp.GetProductsBatch(r.Context(), req.IDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, products)
}

func (s *CatalogHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	product, err := s.CatalogApp.UpdateProduct(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, product)
}

func (s *CatalogHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CatalogApp.DeleteProduct(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id, "is_active": false})
}

func (s *CatalogHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	category, err := s.CatalogApp.CreateCategory(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeCreated(w, category)
}

func (s *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := s.CatalogApp.ListCategories(r.Context(), queryBool(r, "include_inactive"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, categories)
}

func (s *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	category, err := s.CatalogApp.GetCategory(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, category)
}

func (s *CatalogHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.CategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}
	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	category, err := s.CatalogApp.UpdateCategory(r.Context(), id, &req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, category)
}

func (s *CatalogHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.CatalogApp.DeleteCategory(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	writeSuccess(w, map[string]interface{}{"id": id, "is_active": false})
}
