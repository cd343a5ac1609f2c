package catalog

import (
	"context"

	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	categoryrepo "github.com/stockwise/ims/repository/category"
	productrepo "github.com/stockwise/ims/repository/product"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stockwise/ims/utils/errors"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

const (
	defaultWarehouseLocation = "Warehouse-A"
	defaultReorderLevel      = 100
	defaultMaxStockLevel     = 1000
)

type CatalogApp interface {
	CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error)
	ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error)
	GetProduct(ctx context.Context, id uint64) (*model.Product, error)
	GetProductsBatch(ctx context.Context, ids []uint64) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uint64) error

	CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error)
	GetCategory(ctx context.Context, id uint64) (*model.Category, error)
	UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.Category, error)
	DeleteCategory(ctx context.Context, id uint64) error
}

type catalogAppImpl struct {
	config          *config.Config
	productRepo     productrepo.ProductRepository
	categoryRepo    categoryrepo.CategoryRepository
	inventoryClient svcclient.InventoryClient
}

func NewCatalogApp(
	config *config.Config,
	productRepo productrepo.ProductRepository,
	categoryRepo categoryrepo.CategoryRepository,
	inventoryClient svcclient.InventoryClient,
) CatalogApp {
	return &catalogAppImpl{
		config:          config,
		productRepo:     productRepo,
		categoryRepo:    categoryRepo,
		inventoryClient: inventoryClient,
	}
}

// CreateProduct inserts a product and asks the inventory service to open an
// empty stock record for it. The inventory call is best effort; the product
// exists either way.
func (s *catalogAppImpl) CreateProduct(ctx context.Context, req *model.CreateProductRequest) (*model.Product, error) {
	existing, err := s.productRepo.GetBySKU(ctx, req.SKU)
	if err != nil {
		logger.Error("[CreateProduct] get by sku", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrDuplicate)
	}

	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			logger.Error("[CreateProduct] get category", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if category == nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	if req.LifecycleState == "" {
		req.LifecycleState = constant.LifecycleActive
	}

	product, err := s.productRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[CreateProduct] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if s.inventoryClient != nil {
		err := s.inventoryClient.CreateInventory(ctx, &model.CreateInventoryRequest{
			ProductID:         product.ID,
			SKU:               product.SKU,
			Quantity:          0,
			WarehouseLocation: defaultWarehouseLocation,
			ReorderLevel:      defaultReorderLevel,
			MaxStockLevel:     defaultMaxStockLevel,
		})
		if err != nil {
			logger.Warn("[CreateProduct] inventory record not created",
				zap.Uint64("product_id", product.ID),
				zap.String("error", err.Error()))
		}
	}

	return product, nil
}

func (s *catalogAppImpl) ListProducts(ctx context.Context, filter *model.ProductFilter) (*model.ProductListResponse, error) {
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PerPage <= 0 {
		filter.PerPage = 20
	}

	items, total, err := s.productRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProducts] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ProductListResponse{
		Items:      items,
		TotalCount: total,
		Page:       filter.Page,
		PerPage:    filter.PerPage,
	}, nil
}

func (s *catalogAppImpl) GetProduct(ctx context.Context, id uint64) (*model.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetProduct] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

// GetProductsBatch serves sibling services that resolve many products in one
// round trip. Unknown ids are simply absent from the result.
func (s *catalogAppImpl) GetProductsBatch(ctx context.Context, ids []uint64) ([]model.Product, error) {
	if len(ids) == 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	products, err := s.productRepo.GetManyByIDs(ctx, ids)
	if err != nil {
		logger.Error("[GetProductsBatch] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

func (s *catalogAppImpl) UpdateProduct(ctx context.Context, id uint64, req *model.UpdateProductRequest) (*model.Product, error) {
	if req.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *req.CategoryID)
		if err != nil {
			logger.Error("[UpdateProduct] get category", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrInternal)
		}
		if category == nil {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
	}

	product, err := s.productRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateProduct] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return product, nil
}

// DeleteProduct deactivates a product. Rows stay so old orders and movements
// keep their references.
func (s *catalogAppImpl) DeleteProduct(ctx context.Context, id uint64) error {
	if err := s.productRepo.SoftDelete(ctx, id); err != nil {
		logger.Error("[DeleteProduct] soft delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *catalogAppImpl) CreateCategory(ctx context.Context, req *model.CategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[CreateCategory] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return category, nil
}

func (s *catalogAppImpl) ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	categories, err := s.categoryRepo.List(ctx, includeInactive)
	if err != nil {
		logger.Error("[ListCategories] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return categories, nil
}

func (s *catalogAppImpl) GetCategory(ctx context.Context, id uint64) (*model.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetCategory] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return category, nil
}

func (s *catalogAppImpl) UpdateCategory(ctx context.Context, id uint64, req *model.CategoryRequest) (*model.Category, error) {
	category, err := s.categoryRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateCategory] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if category == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return category, nil
}

func (s *catalogAppImpl) DeleteCategory(ctx context.Context, id uint64) error {
	if err := s.categoryRepo.SoftDelete(ctx, id); err != nil {
		logger.Error("[DeleteCategory] soft delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
