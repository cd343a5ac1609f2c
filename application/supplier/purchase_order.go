package supplier

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	porepo "github.com/stockwise/ims/repository/purchaseorder"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stockwise/ims/utils/errors"
	"github.com/stockwise/ims/utils/logger"
	"go.uber.org/zap"
)

// CreatePurchaseOrder opens a purchase request against a supplier. The
// product-supplier relationship and the minimum order quantity are checked
// before anything is written.
func (s *supplierAppImpl) CreatePurchaseOrder(ctx context.Context, req *model.CreatePORequest) (*model.PurchaseOrder, error) {
	sup, err := s.supplierRepo.GetByID(ctx, req.SupplierID)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] get supplier", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if sup == nil || !sup.IsActive {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	ps, err := s.psRepo.FindOne(ctx, req.ProductID, req.SupplierID)
	if err != nil {
		logger.Error("[CreatePurchaseOrder] find relationship", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if ps == nil || !ps.IsActive {
		return nil, errors.SetCustomError(constant.ErrInactiveRelationship)
	}
	if req.RequestedQuantity < ps.MinimumOrderQuantity {
		logger.Info("[CreatePurchaseOrder] below minimum order quantity",
			zap.Uint64("supplier_id", req.SupplierID),
			zap.Uint64("product_id", req.ProductID),
			zap.Int64("requested", req.RequestedQuantity),
			zap.Int64("minimum", ps.MinimumOrderQuantity))
		return nil, errors.SetCustomError(constant.ErrBelowMinimumOrderQty)
	}

	// product lookup is fail-closed, the SKU on the PO comes from the catalog
	product, err := s.catalogClient.GetProduct(ctx, req.ProductID)
	if err != nil {
		var se *svcclient.StatusError
		if stderrors.As(err, &se) && se.StatusCode == 404 {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[CreatePurchaseOrder] catalog lookup", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrDependencyUnavailable)
	}

	total := ps.SupplierUnitPrice.Mul(decimal.NewFromInt(req.RequestedQuantity))
	po, err := s.poRepo.Create(ctx, &model.PurchaseOrder{
		PONumber:          generatePONumber(),
		SupplierID:        req.SupplierID,
		ProductID:         req.ProductID,
		SKU:               product.SKU,
		RequestedQuantity: req.RequestedQuantity,
		UnitPrice:         ps.SupplierUnitPrice,
		TotalAmount:       total,
		Notes:             req.Notes,
		CreatedBy:         req.CreatedBy,
	})
	if err != nil {
		logger.Error("[CreatePurchaseOrder] insert", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.poRepo.InsertItem(ctx, &model.PurchaseOrderItem{
		POID:      po.ID,
		ProductID: po.ProductID,
		SKU:       po.SKU,
		Quantity:  po.RequestedQuantity,
		UnitPrice: po.UnitPrice,
	})
	if err != nil {
		logger.Error("[CreatePurchaseOrder] insert item", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return po, nil
}

func (s *supplierAppImpl) GetPurchaseOrder(ctx context.Context, id uint64) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[GetPurchaseOrder] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return po, nil
}

func (s *supplierAppImpl) ListPurchaseOrders(ctx context.Context, filter *model.POFilter) ([]model.PurchaseOrder, error) {
	items, err := s.poRepo.List(ctx, filter)
	if err != nil {
		logger.Error("[ListPurchaseOrders] list", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return items, nil
}

// RespondToPurchaseOrder records the supplier's answer. Approval moves the PO
// to confirmed, rejection closes it. A partial approval must name a quantity
// below the requested one.
func (s *supplierAppImpl) RespondToPurchaseOrder(ctx context.Context, id uint64, req *model.SupplierResponseRequest) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[RespondToPurchaseOrder] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if po.Status != constant.POStatusPending || po.SupplierResponse != constant.SupplierResponsePending {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	upd := &porepo.ResponseUpdate{
		Response:              constant.SupplierResponse(req.Response),
		SupplierNotes:         req.SupplierNotes,
		EstimatedDeliveryDate: req.EstimatedDeliveryDate,
	}

	switch upd.Response {
	case constant.SupplierResponseApproved:
		upd.Status = constant.POStatusConfirmed
		qty := po.RequestedQuantity
		upd.ApprovedQuantity = &qty
	case constant.SupplierResponsePartiallyApproved:
		if req.ApprovedQuantity == nil || *req.ApprovedQuantity <= 0 || *req.ApprovedQuantity >= po.RequestedQuantity {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		upd.Status = constant.POStatusConfirmed
		upd.ApprovedQuantity = req.ApprovedQuantity
	case constant.SupplierResponseRejected:
		if req.RejectionReason == "" {
			return nil, errors.SetCustomError(constant.ErrInvalidRequest)
		}
		upd.Status = constant.POStatusRejected
		upd.RejectionReason = req.RejectionReason
	default:
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	updated, err := s.poRepo.UpdateResponse(ctx, id, upd)
	if err != nil {
		logger.Error("[RespondToPurchaseOrder] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if updated == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	return updated, nil
}

func (s *supplierAppImpl) MarkPreparing(ctx context.Context, id uint64) (*model.PurchaseOrder, error) {
	return s.transition(ctx, id, constant.POStatusPreparing)
}

// ShipPurchaseOrder moves a preparing PO to shipped and records tracking
// details when the supplier provides them.
func (s *supplierAppImpl) ShipPurchaseOrder(ctx context.Context, id uint64, req *model.ShipmentUpdateRequest) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[ShipPurchaseOrder] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !constant.IsValidPOTransition(po.Status, constant.POStatusShipped) {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	updated, err := s.poRepo.UpdateShipment(ctx, id, constant.POStatusShipped, req.TrackingNumber, req.ActualDeliveryDate)
	if err != nil {
		logger.Error("[ShipPurchaseOrder] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

// ConfirmReceipt marks a shipped PO as received and restocks each line
// through the inventory service. A line whose adjustment fails is reported
// back but does not block the receipt; the caller retries those lines with a
// manual adjustment.
func (s *supplierAppImpl) ConfirmReceipt(ctx context.Context, id uint64, req *model.ConfirmReceiptRequest) (*model.ConfirmReceiptResponse, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[ConfirmReceipt] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !constant.IsValidPOTransition(po.Status, constant.POStatusReceived) {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	lines, err := s.poRepo.GetItems(ctx, id)
	if err != nil {
		logger.Error("[ConfirmReceipt] get items", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if len(lines) == 0 {
		qty := po.RequestedQuantity
		if po.ApprovedQuantity != nil {
			qty = *po.ApprovedQuantity
		}
		lines = []model.PurchaseOrderItem{{POID: po.ID, ProductID: po.ProductID, SKU: po.SKU, Quantity: qty}}
	}

	lineErrors := make([]model.POLineError, 0)
	for _, line := range lines {
		qty := line.Quantity
		if line.ProductID == po.ProductID && po.ApprovedQuantity != nil {
			qty = *po.ApprovedQuantity
		}
		err := s.inventoryClient.AdjustStock(ctx, &model.AdjustStockRequest{
			ProductID:     line.ProductID,
			Quantity:      qty,
			MovementType:  constant.MovementIn,
			ReferenceType: constant.ReferencePurchaseOrder,
			ReferenceID:   &po.ID,
			Notes:         fmt.Sprintf("Receipt of %s", po.PONumber),
		})
		if err != nil {
			logger.Error("[ConfirmReceipt] restock line failed",
				zap.Uint64("po_id", po.ID),
				zap.Uint64("product_id", line.ProductID),
				zap.String("error", err.Error()))
			lineErrors = append(lineErrors, model.POLineError{ProductID: line.ProductID, Error: err.Error()})
		}
	}

	updated, err := s.poRepo.MarkReceived(ctx, id, req.Notes)
	if err != nil {
		logger.Error("[ConfirmReceipt] mark received", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.ConfirmReceiptResponse{
		PurchaseOrder: updated,
		Successful:    len(lineErrors) == 0,
		LineErrors:    lineErrors,
	}, nil
}

// DeletePurchaseOrder removes a PO that never went anywhere. Anything past
// rejection or the initial pending state is history and stays.
func (s *supplierAppImpl) DeletePurchaseOrder(ctx context.Context, id uint64) error {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[DeletePurchaseOrder] get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	if po.Status != constant.POStatusPending && po.Status != constant.POStatusRejected {
		return errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	if err := s.poRepo.Delete(ctx, id); err != nil {
		logger.Error("[DeletePurchaseOrder] delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *supplierAppImpl) PurchaseOrderStats(ctx context.Context, supplierID uint64) (*model.POStats, error) {
	stats, err := s.poRepo.Stats(ctx, supplierID)
	if err != nil {
		logger.Error("[PurchaseOrderStats] query", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return stats, nil
}

func (s *supplierAppImpl) transition(ctx context.Context, id uint64, to constant.POStatus) (*model.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[TransitionPO] get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if po == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}
	if !constant.IsValidPOTransition(po.Status, to) {
		return nil, errors.SetCustomError(constant.ErrInvalidOrderStatus)
	}

	updated, err := s.poRepo.UpdateStatus(ctx, id, to)
	if err != nil {
		logger.Error("[TransitionPO] update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return updated, nil
}

func generatePONumber() string {
	suffix := strings.ToUpper(uuid.NewString()[:8])
	return fmt.Sprintf("PO-%s-%s", time.Now().Format("20060102"), suffix)
}
