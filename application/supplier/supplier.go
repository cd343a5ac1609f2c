package supplier

import (
	"context"
	"database/sql"
	stderrors "errors"

	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	psrepo "github.com/stockwise/ims/repository/productsupplier"
	porepo "github.com/stockwise/ims/repository/purchaseorder"
	supplierrepo "github.com/stockwise/ims/repository/supplier"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stockwise/ims/utils/errors"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

type SupplierApp interface {
	CreateSupplier(ctx context.Context, req *model.SupplierRequest) (*model.Supplier, error)
	ListSuppliers(ctx context.Context, filter *model.SupplierFilter) ([]model.Supplier, int64, error)
	GetSupplier(ctx context.Context, id uint64) (*model.Supplier, error)
	UpdateSupplier(ctx context.Context, id uint64, req *model.SupplierRequest) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id uint64) error

	LinkProductSupplier(ctx context.Context, req *model.ProductSupplierRequest) (*model.ProductSupplier, error)
	ListProductSuppliers(ctx context.Context, filter *model.ProductSupplierFilter) ([]model.ProductSupplier, error)
	UpdateProductSupplier(ctx context.Context, id uint64, req *model.UpdateProductSupplierRequest) (*model.ProductSupplier, error)
	UnlinkProductSupplier(ctx context.Context, id uint64) error

	CreatePurchaseOrder(ctx context.Context, req *model.CreatePORequest) (*model.PurchaseOrder, error)
	GetPurchaseOrder(ctx context.Context, id uint64) (*model.PurchaseOrder, error)
	ListPurchaseOrders(ctx context.Context, filter *model.POFilter) ([]model.PurchaseOrder, error)
	RespondToPurchaseOrder(ctx context.Context, id uint64, req *model.SupplierResponseRequest) (*model.PurchaseOrder, error)
	MarkPreparing(ctx context.Context, id uint64) (*model.PurchaseOrder, error)
	ShipPurchaseOrder(ctx context.Context, id uint64, req *model.ShipmentUpdateRequest) (*model.PurchaseOrder, error)
	ConfirmReceipt(ctx context.Context, id uint64, req *model.ConfirmReceiptRequest) (*model.ConfirmReceiptResponse, error)
	DeletePurchaseOrder(ctx context.Context, id uint64) error
	PurchaseOrderStats(ctx context.Context, supplierID uint64) (*model.POStats, error)
}

type supplierAppImpl struct {
	config          *config.Config
	supplierRepo    supplierrepo.SupplierRepository
	psRepo          psrepo.ProductSupplierRepository
	poRepo          porepo.PurchaseOrderRepository
	catalogClient   svcclient.CatalogClient
	inventoryClient svcclient.InventoryClient
}

func NewSupplierApp(
	config *config.Config,
	supplierRepo supplierrepo.SupplierRepository,
	psRepo psrepo.ProductSupplierRepository,
	poRepo porepo.PurchaseOrderRepository,
	catalogClient svcclient.CatalogClient,
	inventoryClient svcclient.InventoryClient,
) SupplierApp {
	return &supplierAppImpl{
		config:          config,
		supplierRepo:    supplierRepo,
		psRepo:          psRepo,
		poRepo:          poRepo,
		catalogClient:   catalogClient,
		inventoryClient: inventoryClient,
	}
}

func (s *supplierAppImpl) CreateSupplier(ctx context.Context, req *model.SupplierRequest) (*model.Supplier, error) {
	sup, err := s.supplierRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[CreateSupplier] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return sup, nil
}

func (s *supplierAppImpl) ListSuppliers(ctx context.Context, filter *model.SupplierFilter) ([]model.Supplier, int64, error) {
	items, total, err := s.supplierRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListSuppliers] list", zap.String("error", err.Error()))
		return nil, 0, errors.SetCustomError(constant.ErrInternal)
	}
	return items, total, nil
}

func (s *supplierAppImpl) GetSupplier(ctx context.Context, id uint64) (*model.Supplier, error) {
	sup, err := s.supplierRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetSupplier] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sup == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return sup, nil
}

func (s *supplierAppImpl) UpdateSupplier(ctx context.Context, id uint64, req *model.SupplierRequest) (*model.Supplier, error) {
	sup, err := s.supplierRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateSupplier] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sup == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return sup, nil
}

func (s *supplierAppImpl) DeleteSupplier(ctx context.Context, id uint64) error {
	if err := s.supplierRepo.SoftDelete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[DeleteSupplier] soft delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// LinkProductSupplier records that a supplier can source a product, with the
// commercial terms for the pair. The product must exist in the catalog.
func (s *supplierAppImpl) LinkProductSupplier(ctx context.Context, req *model.ProductSupplierRequest) (*model.ProductSupplier, error) {
	sup, err := s.supplierRepo.GetByID(ctx, req.SupplierID)
	if err != nil {
		logger.Error("[LinkProductSupplier] get supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sup == nil || !sup.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if s.catalogClient != nil {
		if _, err := s.catalogClient.GetProduct(ctx, req.ProductID); err != nil {
			var se *svcclient.StatusError
			if stderrors.As(err, &se) && se.StatusCode == 404 {
				return nil, errors.SetCustomError(constant.ErrNotFound)
			}
			logger.Error("[LinkProductSupplier] catalog lookup", zap.String("error", err.Error()))
			return nil, errors.SetCustomError(constant.ErrDependencyUnavailable)
		}
	}

	exists, err := s.psRepo.Exists(ctx, req.ProductID, req.SupplierID)
	if err != nil {
		logger.Error("[LinkProductSupplier] exists", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if exists {
		return nil, errors.SetCustomError(constant.ErrDuplicate)
	}

	ps, err := s.psRepo.Create(ctx, req)
	if err != nil {
		logger.Error("[LinkProductSupplier] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return ps, nil
}

func (s *supplierAppImpl) ListProductSuppliers(ctx context.Context, filter *model.ProductSupplierFilter) ([]model.ProductSupplier, error) {
	items, err := s.psRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListProductSuppliers] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

func (s *supplierAppImpl) UpdateProductSupplier(ctx context.Context, id uint64, req *model.UpdateProductSupplierRequest) (*model.ProductSupplier, error) {
	ps, err := s.psRepo.Update(ctx, id, req)
	if err != nil {
		logger.Error("[UpdateProductSupplier] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ps == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return ps, nil
}

func (s *supplierAppImpl) UnlinkProductSupplier(ctx context.Context, id uint64) error {
	if err := s.psRepo.Delete(ctx, id); err != nil {
		if err == sql.ErrNoRows {
			return errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UnlinkProductSupplier] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}
