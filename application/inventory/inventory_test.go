package inventory_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/jmoiron/sqlx"
	appinventory "github.com/stockwise/ims/application/inventory"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	alertmocks "github.com/stockwise/ims/mocks/repository/alert"
	invmocks "github.com/stockwise/ims/mocks/repository/inventory"
	txmocks "github.com/stockwise/ims/mocks/repository/tx"
	svcmocks "github.com/stockwise/ims/mocks/thirdparty/svcclient"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/thirdparty/svcclient"
	cerr "github.com/stockwise/ims/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: the app checks for a nil publisher before publishing alerts, so tests
// can pass nil.

type invFields struct {
	config        *config.Config
	txRepo        *txmocks.TxRepository
	inventoryRepo *invmocks.InventoryRepository
	movementRepo  *invmocks.MovementRepository
	alertRepo     *alertmocks.AlertRepository
	catalogClient *svcmocks.CatalogClient
}

func newInvFields(t *testing.T) invFields {
	return invFields{
		config:        &config.Config{},
		txRepo:        txmocks.NewTxRepository(t),
		inventoryRepo: invmocks.NewInventoryRepository(t),
		movementRepo:  invmocks.NewMovementRepository(t),
		alertRepo:     alertmocks.NewAlertRepository(t),
		catalogClient: svcmocks.NewCatalogClient(t),
	}
}

func newApp(f invFields) appinventory.InventoryApp {
	return appinventory.NewInventoryApp(f.config, f.txRepo, f.inventoryRepo, f.movementRepo,
		f.alertRepo, f.catalogClient, nil)
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

func TestInventoryApp_AdjustStock(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.AdjustStockRequest
		mockCall func(f invFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: inbound movement adds stock and writes the ledger",
			req: &model.AdjustStockRequest{
				ProductID:     1,
				Quantity:      10,
				MovementType:  constant.MovementIn,
				ReferenceType: constant.ReferenceManual,
				CreatedBy:     42,
			},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ProductID: 1,
					SKU:       "SKU-001",
					Quantity:  5,
				}, nil).Once()

				f.inventoryRepo.On("AdjustQuantityTx", mock.Anything, tx, uint64(1), int64(10), true).Return(&model.Inventory{
					ProductID: 1,
					SKU:       "SKU-001",
					Quantity:  15,
				}, nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.StockMovement) bool {
					return m.ProductID == 1 &&
						m.MovementType == constant.MovementIn &&
						m.Quantity == 10 &&
						m.CreatedBy != nil && *m.CreatedBy == 42
				})).Return(&model.StockMovement{ID: 1}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "success: damaged movement removes stock",
			req: &model.AdjustStockRequest{
				ProductID:    1,
				Quantity:     3,
				MovementType: constant.MovementDamaged,
			},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ProductID: 1,
					Quantity:  10,
				}, nil).Once()

				f.inventoryRepo.On("AdjustQuantityTx", mock.Anything, tx, uint64(1), int64(-3), false).Return(&model.Inventory{
					ProductID: 1,
					Quantity:  7,
				}, nil).Once()

				f.movementRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(&model.StockMovement{ID: 2}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: unknown movement type",
			req: &model.AdjustStockRequest{
				ProductID:    1,
				Quantity:     10,
				MovementType: constant.MovementType("teleport"),
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: negative quantity outside adjustment",
			req: &model.AdjustStockRequest{
				ProductID:    1,
				Quantity:     -5,
				MovementType: constant.MovementOut,
			},
			mockCall: nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: outbound movement exceeding stock rolls back",
			req: &model.AdjustStockRequest{
				ProductID:    1,
				Quantity:     100,
				MovementType: constant.MovementOut,
			},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ProductID: 1,
					Quantity:  10,
				}, nil).Once()

				f.inventoryRepo.On("AdjustQuantityTx", mock.Anything, tx, uint64(1), int64(-100), false).
					Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: inventory row not found",
			req: &model.AdjustStockRequest{
				ProductID:    9,
				Quantity:     1,
				MovementType: constant.MovementIn,
			},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(9)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newInvFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			got, err := newApp(f).AdjustStock(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("AdjustStock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				return
			}
			if got == nil {
				t.Fatal("AdjustStock() returned nil inventory")
			}
		})
	}
}

func TestInventoryApp_ReserveStock(t *testing.T) {
	tests := []struct {
		name     string
		req      *model.StockOpRequest
		mockCall func(f invFields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: reservation within available stock",
			req:  &model.StockOpRequest{ProductID: 1, Quantity: 5},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ProductID: 1,
					Quantity:  20,
				}, nil).Once()

				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), int64(5)).Return(&model.Inventory{
					ProductID:        1,
					Quantity:         20,
					ReservedQuantity: 5,
				}, nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: reservation guard rejects oversell",
			req:  &model.StockOpRequest{ProductID: 1, Quantity: 50},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
					ProductID:        1,
					Quantity:         20,
					ReservedQuantity: 10,
				}, nil).Once()

				f.inventoryRepo.On("ReserveTx", mock.Anything, tx, uint64(1), int64(50)).
					Return(nil, sql.ErrNoRows).Once()
			},
			wantErr: true,
			errCode: constant.ErrInsufficientStock,
		},
		{
			name: "error: no inventory row for product",
			req:  &model.StockOpRequest{ProductID: 9, Quantity: 1},
			mockCall: func(f invFields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(9)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newInvFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}
			_, err := newApp(f).ReserveStock(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReserveStock() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
			}
		})
	}
}

func TestInventoryApp_ConfirmDeduction(t *testing.T) {
	orderID := uint64(77)

	t.Run("success: deduction writes an order-referenced ledger row", func(t *testing.T) {
		f := newInvFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("CommitTx", tx).Return(nil).Once()

		f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
			ProductID:        1,
			SKU:              "SKU-001",
			Quantity:         20,
			ReservedQuantity: 5,
		}, nil).Once()

		f.movementRepo.On("ExistsForReferenceTx", mock.Anything, tx, uint64(1),
			constant.MovementOut, constant.ReferenceOrder, orderID).Return(false, nil).Once()

		f.inventoryRepo.On("ConfirmDeductionTx", mock.Anything, tx, uint64(1), int64(5)).Return(&model.Inventory{
			ProductID: 1,
			Quantity:  15,
		}, nil).Once()

		f.movementRepo.On("InsertTx", mock.Anything, tx, mock.MatchedBy(func(m *model.StockMovement) bool {
			return m.MovementType == constant.MovementOut &&
				m.ReferenceType == constant.ReferenceOrder &&
				m.ReferenceID != nil && *m.ReferenceID == orderID
		})).Return(&model.StockMovement{ID: 3}, nil).Once()

		_, err := newApp(f).ConfirmDeduction(context.Background(), &model.StockOpRequest{
			ProductID: 1,
			Quantity:  5,
			OrderID:   &orderID,
		})
		if err != nil {
			t.Fatalf("ConfirmDeduction() error = %v", err)
		}
	})

	t.Run("success: repeated call for the same order leaves stock untouched", func(t *testing.T) {
		f := newInvFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
			ProductID:        1,
			SKU:              "SKU-001",
			Quantity:         15,
			ReservedQuantity: 0,
		}, nil).Once()

		// the first shipping attempt already deducted this line; the retry
		// must not fail on the reservation guard or write a second ledger row
		f.movementRepo.On("ExistsForReferenceTx", mock.Anything, tx, uint64(1),
			constant.MovementOut, constant.ReferenceOrder, orderID).Return(true, nil).Once()

		inv, err := newApp(f).ConfirmDeduction(context.Background(), &model.StockOpRequest{
			ProductID: 1,
			Quantity:  5,
			OrderID:   &orderID,
		})
		if err != nil {
			t.Fatalf("ConfirmDeduction() error = %v", err)
		}
		if inv.Quantity != 15 {
			t.Fatalf("Quantity = %d, want 15", inv.Quantity)
		}
	})

	t.Run("error: deducting more than reserved", func(t *testing.T) {
		f := newInvFields(t)
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Once()

		f.inventoryRepo.On("GetForUpdateTx", mock.Anything, tx, uint64(1)).Return(&model.Inventory{
			ProductID:        1,
			Quantity:         20,
			ReservedQuantity: 2,
		}, nil).Once()

		f.movementRepo.On("ExistsForReferenceTx", mock.Anything, tx, uint64(1),
			constant.MovementOut, constant.ReferenceOrder, orderID).Return(false, nil).Once()

		f.inventoryRepo.On("ConfirmDeductionTx", mock.Anything, tx, uint64(1), int64(5)).
			Return(nil, sql.ErrNoRows).Once()

		_, err := newApp(f).ConfirmDeduction(context.Background(), &model.StockOpRequest{
			ProductID: 1,
			Quantity:  5,
			OrderID:   &orderID,
		})
		assertErrCode(t, err, constant.ErrInsufficientStock)
	})
}

func TestInventoryApp_BulkStockCheck(t *testing.T) {
	f := newInvFields(t)
	f.inventoryRepo.On("GetManyByProductIDs", mock.Anything, []uint64{1, 2, 3}).Return([]model.Inventory{
		{ProductID: 1, SKU: "SKU-001", Quantity: 20, ReservedQuantity: 5},
		{ProductID: 2, SKU: "SKU-002", Quantity: 4, ReservedQuantity: 0},
	}, nil).Once()

	results, err := newApp(f).BulkStockCheck(context.Background(), []model.StockCheckItem{
		{ProductID: 1, Quantity: 10},
		{ProductID: 2, Quantity: 5},
		{ProductID: 3, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("BulkStockCheck() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("results = %d, want 3", len(results))
	}
	if !results[0].Fulfilled || results[0].Available != 15 {
		t.Fatalf("product 1 = %+v, want fulfilled with 15 available", results[0])
	}
	if results[1].Fulfilled {
		t.Fatalf("product 2 = %+v, want unfulfilled", results[1])
	}
	// a product with no inventory row is reported as zero availability
	if results[2].Fulfilled || results[2].Available != 0 {
		t.Fatalf("product 3 = %+v, want unfulfilled with 0 available", results[2])
	}
}

func TestInventoryApp_CreateInventory(t *testing.T) {
	t.Run("success: catalog product exists", func(t *testing.T) {
		f := newInvFields(t)
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).Return(&svcclient.ProductInfo{
			ID:       1,
			SKU:      "SKU-001",
			IsActive: true,
		}, nil).Once()

		f.inventoryRepo.On("GetByProductID", mock.Anything, uint64(1)).Return(nil, nil).Once()
		f.inventoryRepo.On("Create", mock.Anything, mock.Anything).Return(&model.Inventory{
			ProductID: 1,
			SKU:       "SKU-001",
		}, nil).Once()

		inv, err := newApp(f).CreateInventory(context.Background(), &model.CreateInventoryRequest{
			ProductID:         1,
			SKU:               "SKU-001",
			WarehouseLocation: "Warehouse-A",
		})
		if err != nil {
			t.Fatalf("CreateInventory() error = %v", err)
		}
		if inv.ProductID != 1 {
			t.Fatalf("ProductID = %d, want 1", inv.ProductID)
		}
	})

	t.Run("error: product missing from catalog", func(t *testing.T) {
		f := newInvFields(t)
		f.catalogClient.On("GetProduct", mock.Anything, uint64(9)).Return(nil, &svcclient.StatusError{
			StatusCode: 404,
			Code:       constant.ErrorTypeCode[constant.ErrNotFound],
		}).Once()

		_, err := newApp(f).CreateInventory(context.Background(), &model.CreateInventoryRequest{
			ProductID: 9,
			SKU:       "SKU-009",
		})
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: catalog unreachable fails closed", func(t *testing.T) {
		f := newInvFields(t)
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).
			Return(nil, errors.New("connection refused")).Once()

		_, err := newApp(f).CreateInventory(context.Background(), &model.CreateInventoryRequest{
			ProductID: 1,
			SKU:       "SKU-001",
		})
		assertErrCode(t, err, constant.ErrDependencyUnavailable)
	})

	t.Run("error: duplicate inventory row", func(t *testing.T) {
		f := newInvFields(t)
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).Return(&svcclient.ProductInfo{
			ID:       1,
			SKU:      "SKU-001",
			IsActive: true,
		}, nil).Once()
		f.inventoryRepo.On("GetByProductID", mock.Anything, uint64(1)).Return(&model.Inventory{
			ProductID: 1,
		}, nil).Once()

		_, err := newApp(f).CreateInventory(context.Background(), &model.CreateInventoryRequest{
			ProductID: 1,
			SKU:       "SKU-001",
		})
		assertErrCode(t, err, constant.ErrDuplicate)
	})
}
