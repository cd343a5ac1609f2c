package catalog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	appcatalog "github.com/stockwise/ims/application/catalog"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	categorymocks "github.com/stockwise/ims/mocks/repository/category"
	productmocks "github.com/stockwise/ims/mocks/repository/product"
	svcmocks "github.com/stockwise/ims/mocks/thirdparty/svcclient"
	"github.com/stockwise/ims/model"
	cerr "github.com/stockwise/ims/utils/errors"
	"github.com/stretchr/testify/mock"
)

type catalogFields struct {
	productRepo     *productmocks.ProductRepository
	categoryRepo    *categorymocks.CategoryRepository
	inventoryClient *svcmocks.InventoryClient
}

func newCatalogFields(t *testing.T) catalogFields {
	return catalogFields{
		productRepo:     productmocks.NewProductRepository(t),
		categoryRepo:    categorymocks.NewCategoryRepository(t),
		inventoryClient: svcmocks.NewInventoryClient(t),
	}
}

func newCatalogApp(f catalogFields) appcatalog.CatalogApp {
	return appcatalog.NewCatalogApp(&config.Config{}, f.productRepo, f.categoryRepo, f.inventoryClient)
}

func assertErrCode(t *testing.T, err error, code constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[code] {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[code])
	}
}

func TestCatalogApp_CreateProduct(t *testing.T) {
	categoryID := uint64(3)

	t.Run("success: opens an empty inventory record", func(t *testing.T) {
		f := newCatalogFields(t)
		f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(nil, nil).Once()
		f.categoryRepo.On("GetByID", mock.Anything, uint64(3)).Return(&model.Category{ID: 3, IsActive: true}, nil).Once()
		f.productRepo.On("Create", mock.Anything, mock.MatchedBy(func(req *model.CreateProductRequest) bool {
			return req.SKU == "SKU-001" && req.LifecycleState == "active"
		})).Return(&model.Product{ID: 1, SKU: "SKU-001"}, nil).Once()

		f.inventoryClient.On("CreateInventory", mock.Anything, mock.MatchedBy(func(req *model.CreateInventoryRequest) bool {
			return req.ProductID == 1 && req.SKU == "SKU-001" && req.Quantity == 0
		})).Return(nil).Once()

		product, err := newCatalogApp(f).CreateProduct(context.Background(), &model.CreateProductRequest{
			SKU:        "SKU-001",
			Name:       "USB Cable",
			UnitPrice:  decimal.NewFromInt(10),
			CategoryID: &categoryID,
		})
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if product.ID != 1 {
			t.Fatalf("ID = %d, want 1", product.ID)
		}
	})

	t.Run("success: inventory outage does not block product creation", func(t *testing.T) {
		f := newCatalogFields(t)
		f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(nil, nil).Once()
		f.productRepo.On("Create", mock.Anything, mock.Anything).
			Return(&model.Product{ID: 1, SKU: "SKU-001"}, nil).Once()
		f.inventoryClient.On("CreateInventory", mock.Anything, mock.Anything).
			Return(errors.New("connection refused")).Once()

		product, err := newCatalogApp(f).CreateProduct(context.Background(), &model.CreateProductRequest{
			SKU:       "SKU-001",
			Name:      "USB Cable",
			UnitPrice: decimal.NewFromInt(10),
		})
		if err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if product == nil {
			t.Fatal("CreateProduct() returned nil product")
		}
	})

	t.Run("error: duplicate SKU", func(t *testing.T) {
		f := newCatalogFields(t)
		f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").
			Return(&model.Product{ID: 1, SKU: "SKU-001"}, nil).Once()

		_, err := newCatalogApp(f).CreateProduct(context.Background(), &model.CreateProductRequest{
			SKU:       "SKU-001",
			Name:      "USB Cable",
			UnitPrice: decimal.NewFromInt(10),
		})
		assertErrCode(t, err, constant.ErrDuplicate)
	})

	t.Run("error: unknown category", func(t *testing.T) {
		f := newCatalogFields(t)
		f.productRepo.On("GetBySKU", mock.Anything, "SKU-001").Return(nil, nil).Once()
		f.categoryRepo.On("GetByID", mock.Anything, uint64(3)).Return(nil, nil).Once()

		_, err := newCatalogApp(f).CreateProduct(context.Background(), &model.CreateProductRequest{
			SKU:        "SKU-001",
			Name:       "USB Cable",
			UnitPrice:  decimal.NewFromInt(10),
			CategoryID: &categoryID,
		})
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestCatalogApp_GetProductsBatch(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newCatalogFields(t)
		f.productRepo.On("GetManyByIDs", mock.Anything, []uint64{1, 2}).Return([]model.Product{
			{ID: 1, SKU: "SKU-001"},
			{ID: 2, SKU: "SKU-002"},
		}, nil).Once()

		products, err := newCatalogApp(f).GetProductsBatch(context.Background(), []uint64{1, 2})
		if err != nil {
			t.Fatalf("GetProductsBatch() error = %v", err)
		}
		if len(products) != 2 {
			t.Fatalf("products = %d, want 2", len(products))
		}
	})

	t.Run("error: empty id list", func(t *testing.T) {
		f := newCatalogFields(t)
		_, err := newCatalogApp(f).GetProductsBatch(context.Background(), nil)
		assertErrCode(t, err, constant.ErrInvalidRequest)
	})
}

func TestCatalogApp_ListProducts(t *testing.T) {
	f := newCatalogFields(t)
	f.productRepo.On("List", mock.Anything, mock.MatchedBy(func(filter *model.ProductFilter) bool {
		return filter.Page == 1 && filter.PerPage == 20
	})).Return([]model.Product{{ID: 1}}, int64(1), nil).Once()

	res, err := newCatalogApp(f).ListProducts(context.Background(), &model.ProductFilter{})
	if err != nil {
		t.Fatalf("ListProducts() error = %v", err)
	}
	if res.TotalCount != 1 || res.Page != 1 || res.PerPage != 20 {
		t.Fatalf("response = %+v, want defaults applied", res)
	}
}
