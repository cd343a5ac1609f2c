package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stretchr/testify/mock"
)

func TestInventoryApp_CheckLowStock(t *testing.T) {
	candidates := []model.LowStockCandidate{
		{ProductID: 1, SKU: "SKU-001", Quantity: 3, AvailableQuantity: 3, ReorderLevel: 10},
		{ProductID: 2, SKU: "SKU-002", Quantity: 0, AvailableQuantity: 0, ReorderLevel: 5},
	}

	t.Run("success: opens alerts only for products without one", func(t *testing.T) {
		f := newInvFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.inventoryRepo.On("ListLowStockCandidatesTx", mock.Anything, tx).Return(candidates, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).Return([]svcclient.ProductInfo{
			{ID: 1, SKU: "SKU-001", IsActive: true, LifecycleState: constant.LifecycleActive},
			{ID: 2, SKU: "SKU-002", IsActive: true, LifecycleState: constant.LifecycleActive},
		}, nil).Once()

		// product 1 already has an active alert
		f.alertRepo.On("ActiveProductIDsTx", mock.Anything, tx).Return(map[uint64]bool{1: true}, nil).Once()

		f.alertRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(c *model.LowStockCandidate) bool {
			return c.ProductID == 2
		})).Return(&model.LowStockAlert{
			ID:        10,
			ProductID: 2,
			SKU:       "SKU-002",
			Status:    constant.AlertStatusActive,
		}, nil).Once()

		created, err := newApp(f).CheckLowStock(context.Background())
		if err != nil {
			t.Fatalf("CheckLowStock() error = %v", err)
		}
		if len(created) != 1 || created[0].ProductID != 2 {
			t.Fatalf("created = %+v, want one alert for product 2", created)
		}
	})

	t.Run("success: second run creates nothing", func(t *testing.T) {
		f := newInvFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.inventoryRepo.On("ListLowStockCandidatesTx", mock.Anything, tx).Return(candidates, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).Return([]svcclient.ProductInfo{
			{ID: 1, IsActive: true, LifecycleState: constant.LifecycleActive},
			{ID: 2, IsActive: true, LifecycleState: constant.LifecycleActive},
		}, nil).Once()

		f.alertRepo.On("ActiveProductIDsTx", mock.Anything, tx).Return(map[uint64]bool{1: true, 2: true}, nil).Once()

		created, err := newApp(f).CheckLowStock(context.Background())
		if err != nil {
			t.Fatalf("CheckLowStock() error = %v", err)
		}
		if len(created) != 0 {
			t.Fatalf("created = %d alerts, want 0", len(created))
		}
	})

	t.Run("success: discontinued products are skipped", func(t *testing.T) {
		f := newInvFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.inventoryRepo.On("ListLowStockCandidatesTx", mock.Anything, tx).Return(candidates, nil).Once()

		// product 2 is still is_active but was moved out of the active
		// lifecycle; it must not alert
		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).Return([]svcclient.ProductInfo{
			{ID: 1, IsActive: true, LifecycleState: constant.LifecycleActive},
			{ID: 2, IsActive: true, LifecycleState: constant.LifecycleDiscontinued},
		}, nil).Once()

		f.alertRepo.On("ActiveProductIDsTx", mock.Anything, tx).Return(map[uint64]bool{}, nil).Once()

		f.alertRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(c *model.LowStockCandidate) bool {
			return c.ProductID == 1
		})).Return(&model.LowStockAlert{ID: 11, ProductID: 1}, nil).Once()

		created, err := newApp(f).CheckLowStock(context.Background())
		if err != nil {
			t.Fatalf("CheckLowStock() error = %v", err)
		}
		if len(created) != 1 || created[0].ProductID != 1 {
			t.Fatalf("created = %+v, want one alert for product 1", created)
		}
	})

	t.Run("success: catalog outage fails open when configured", func(t *testing.T) {
		f := newInvFields(t)
		f.config = &config.Config{
			Services: config.ServicesConfig{LowStockFailOpen: true},
		}
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.inventoryRepo.On("ListLowStockCandidatesTx", mock.Anything, tx).Return(candidates, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).
			Return(nil, errors.New("connection refused")).Once()

		f.alertRepo.On("ActiveProductIDsTx", mock.Anything, tx).Return(map[uint64]bool{}, nil).Once()
		f.alertRepo.On("InsertTx", mock.Anything, tx, mock.Anything).
			Return(&model.LowStockAlert{ID: 12}, nil).Twice()

		created, err := newApp(f).CheckLowStock(context.Background())
		if err != nil {
			t.Fatalf("CheckLowStock() error = %v", err)
		}
		if len(created) != 2 {
			t.Fatalf("created = %d alerts, want 2", len(created))
		}
	})

	t.Run("error: catalog outage fails closed when configured", func(t *testing.T) {
		f := newInvFields(t)
		f.config = &config.Config{
			Services: config.ServicesConfig{LowStockFailOpen: false},
		}
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		f.inventoryRepo.On("ListLowStockCandidatesTx", mock.Anything, tx).Return(candidates, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).
			Return(nil, errors.New("connection refused")).Once()

		_, err := newApp(f).CheckLowStock(context.Background())
		assertErrCode(t, err, constant.ErrDependencyUnavailable)
	})
}

func TestInventoryApp_ListAlerts(t *testing.T) {
	t.Run("success: names resolved from the catalog", func(t *testing.T) {
		f := newInvFields(t)
		f.alertRepo.On("ListViews", mock.Anything, constant.AlertStatusActive).Return([]model.AlertView{
			{LowStockAlert: model.LowStockAlert{ID: 1, ProductID: 1}},
			{LowStockAlert: model.LowStockAlert{ID: 2, ProductID: 9}},
		}, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 9}).Return([]svcclient.ProductInfo{
			{ID: 1, Name: "USB Cable", IsActive: true, LifecycleState: constant.LifecycleActive},
		}, nil).Once()

		views, err := newApp(f).ListAlerts(context.Background(), "")
		if err != nil {
			t.Fatalf("ListAlerts() error = %v", err)
		}
		if views[0].ProductName != "USB Cable" {
			t.Fatalf("ProductName = %q, want %q", views[0].ProductName, "USB Cable")
		}
		if views[1].ProductName != "Unknown Product" {
			t.Fatalf("ProductName = %q, want %q", views[1].ProductName, "Unknown Product")
		}
	})

	t.Run("success: alerts for discontinued products are hidden", func(t *testing.T) {
		f := newInvFields(t)
		f.alertRepo.On("ListViews", mock.Anything, constant.AlertStatusActive).Return([]model.AlertView{
			{LowStockAlert: model.LowStockAlert{ID: 1, ProductID: 1}},
			{LowStockAlert: model.LowStockAlert{ID: 2, ProductID: 2}},
		}, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).Return([]svcclient.ProductInfo{
			{ID: 1, Name: "USB Cable", IsActive: true, LifecycleState: constant.LifecycleActive},
			{ID: 2, Name: "Old Charger", IsActive: true, LifecycleState: constant.LifecycleDiscontinued},
		}, nil).Once()

		views, err := newApp(f).ListAlerts(context.Background(), "")
		if err != nil {
			t.Fatalf("ListAlerts() error = %v", err)
		}
		if len(views) != 1 || views[0].ProductID != 1 {
			t.Fatalf("views = %+v, want only the alert for product 1", views)
		}
	})

	t.Run("success: catalog outage omits names", func(t *testing.T) {
		f := newInvFields(t)
		f.alertRepo.On("ListViews", mock.Anything, constant.AlertStatusActive).Return([]model.AlertView{
			{LowStockAlert: model.LowStockAlert{ID: 1, ProductID: 1}},
		}, nil).Once()

		f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1}).
			Return(nil, errors.New("connection refused")).Once()

		views, err := newApp(f).ListAlerts(context.Background(), constant.AlertStatusActive)
		if err != nil {
			t.Fatalf("ListAlerts() error = %v", err)
		}
		if views[0].ProductName != "Unknown Product" {
			t.Fatalf("ProductName = %q, want %q", views[0].ProductName, "Unknown Product")
		}
	})
}

func TestInventoryApp_ResolveAlert(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newInvFields(t)
		f.alertRepo.On("SetStatus", mock.Anything, uint64(1), constant.AlertStatusResolved, uint64(42)).
			Return(&model.LowStockAlert{ID: 1, Status: constant.AlertStatusResolved}, nil).Once()

		alert, err := newApp(f).ResolveAlert(context.Background(), 1, 42)
		if err != nil {
			t.Fatalf("ResolveAlert() error = %v", err)
		}
		if alert.Status != constant.AlertStatusResolved {
			t.Fatalf("status = %s, want resolved", alert.Status)
		}
	})

	t.Run("error: alert not active", func(t *testing.T) {
		f := newInvFields(t)
		f.alertRepo.On("SetStatus", mock.Anything, uint64(9), constant.AlertStatusResolved, uint64(42)).
			Return(nil, nil).Once()

		_, err := newApp(f).ResolveAlert(context.Background(), 9, 42)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}
