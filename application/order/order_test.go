package order_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	apporder "github.com/stockwise/ims/application/order"
	"github.com/stockwise/ims/cmd/config"
	"github.com/stockwise/ims/constant"
	ordermocks "github.com/stockwise/ims/mocks/repository/order"
	txmocks "github.com/stockwise/ims/mocks/repository/tx"
	svcmocks "github.com/stockwise/ims/mocks/thirdparty/svcclient"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/thirdparty/svcclient"
	cerr "github.com/stockwise/ims/utils/errors"
	"github.com/stretchr/testify/mock"
)

// Note: order.go checks if publisher is nil before publishing the expiration
// message, so tests can pass a nil publisher.

func testConfig() *config.Config {
	return &config.Config{
		Order: config.OrderConfig{
			OrderExpiration: 30 * time.Minute,
		},
	}
}

func activeProduct(id uint64, sku string, price int64) svcclient.ProductInfo {
	return svcclient.ProductInfo{
		ID:        id,
		SKU:       sku,
		Name:      sku,
		UnitPrice: decimal.NewFromInt(price),
		IsActive:  true,
	}
}

func TestOrderApp_CreateOrder(t *testing.T) {
	type fields struct {
		config          *config.Config
		txRepo          *txmocks.TxRepository
		orderRepo       *ordermocks.OrderRepository
		catalogClient   *svcmocks.CatalogClient
		inventoryClient *svcmocks.InventoryClient
	}
	type args struct {
		ctx context.Context
		req *model.OrderRequest
	}
	tests := []struct {
		name          string
		fields        fields
		args          args
		mockCall      func(f fields)
		want          *model.OrderResponse
		wantErr       bool
		errCode       constant.ErrorType
		wantShortages int
		wantShortSKU  string
	}{
		{
			name: "success: create order with single item",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID:      7,
					Items:           []model.OrderItemRequest{{ProductID: 1, Quantity: 5}},
					ShippingAddress: "Jl. Sudirman 1",
					PaymentMethod:   "bank_transfer",
				},
			},
			mockCall: func(f fields) {
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1}).
					Return([]svcclient.ProductInfo{activeProduct(1, "SKU-001", 10)}, nil).Once()

				f.inventoryClient.On("BulkStockCheck", mock.Anything, []model.StockCheckItem{
					{ProductID: 1, Quantity: 5},
				}).Return([]model.StockCheckResult{
					{ProductID: 1, SKU: "SKU-001", Requested: 5, Available: 100, Fulfilled: true},
				}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.MatchedBy(func(req *model.InsertOrderTxItem) bool {
					return req.CustomerID == 7 &&
						req.Status == constant.OrderStatusPending &&
						req.TotalAmount.Equal(decimal.NewFromInt(50))
				})).Return(uint64(1), nil).Once()

				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(1), mock.MatchedBy(func(items []model.OrderItem) bool {
					return len(items) == 1 && items[0].ProductID == 1 && items[0].Quantity == 5
				})).Return(nil).Once()

				f.inventoryClient.On("ReserveStock", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 1 && req.Quantity == 5 && req.OrderID != nil && *req.OrderID == 1
				})).Return(nil).Once()
			},
			want: &model.OrderResponse{
				OrderID:     1,
				TotalAmount: decimal.NewFromInt(50),
			},
			wantErr: false,
		},
		{
			name: "error: empty items",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{CustomerID: 7, Items: []model.OrderItemRequest{}},
			},
			mockCall: nil,
			want:     nil,
			wantErr:  true,
			errCode:  constant.ErrInvalidRequest,
		},
		{
			name: "error: catalog unavailable",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID: 7,
					Items:      []model.OrderItemRequest{{ProductID: 1, Quantity: 5}},
				},
			},
			mockCall: func(f fields) {
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1}).
					Return(nil, errors.New("connection refused")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrDependencyUnavailable,
		},
		{
			name: "error: unknown product",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID: 7,
					Items:      []model.OrderItemRequest{{ProductID: 99, Quantity: 5}},
				},
			},
			mockCall: func(f fields) {
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{99}).
					Return([]svcclient.ProductInfo{}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: inactive product",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID: 7,
					Items:      []model.OrderItemRequest{{ProductID: 1, Quantity: 5}},
				},
			},
			mockCall: func(f fields) {
				discontinued := activeProduct(1, "SKU-001", 10)
				discontinued.IsActive = false
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1}).
					Return([]svcclient.ProductInfo{discontinued}, nil).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInvalidRequest,
		},
		{
			name: "error: stock check reports every short line",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID: 7,
					Items: []model.OrderItemRequest{
						{ProductID: 1, Quantity: 50},
						{ProductID: 2, Quantity: 30},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).
					Return([]svcclient.ProductInfo{
						activeProduct(1, "SKU-001", 10),
						activeProduct(2, "SKU-002", 20),
					}, nil).Once()

				f.inventoryClient.On("BulkStockCheck", mock.Anything, mock.Anything).
					Return([]model.StockCheckResult{
						{ProductID: 1, SKU: "SKU-001", Requested: 50, Available: 10, Fulfilled: false},
						{ProductID: 2, SKU: "SKU-002", Requested: 30, Available: 5, Fulfilled: false},
					}, nil).Once()
			},
			want:          nil,
			wantErr:       true,
			wantShortages: 2,
		},
		{
			name: "error: reservation rejected releases earlier holds",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID: 7,
					Items: []model.OrderItemRequest{
						{ProductID: 1, Quantity: 5},
						{ProductID: 2, Quantity: 3},
					},
				},
			},
			mockCall: func(f fields) {
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1, 2}).
					Return([]svcclient.ProductInfo{
						activeProduct(1, "SKU-001", 10),
						activeProduct(2, "SKU-002", 20),
					}, nil).Once()

				f.inventoryClient.On("BulkStockCheck", mock.Anything, mock.Anything).
					Return([]model.StockCheckResult{
						{ProductID: 1, Requested: 5, Available: 100, Fulfilled: true},
						{ProductID: 2, Requested: 3, Available: 100, Fulfilled: true},
					}, nil).Once()

				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("InsertOrderTx", mock.Anything, tx, mock.Anything).Return(uint64(1), nil).Once()
				f.orderRepo.On("InsertOrderItemsTx", mock.Anything, tx, uint64(1), mock.Anything).Return(nil).Once()

				f.inventoryClient.On("ReserveStock", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 1
				})).Return(nil).Once()

				// a concurrent order took the remaining stock between check and reserve
				f.inventoryClient.On("ReserveStock", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 2
				})).Return(&svcclient.StatusError{
					StatusCode: 409,
					Code:       constant.ErrorTypeCode[constant.ErrInsufficientStock],
				}).Once()

				f.inventoryClient.On("ReleaseStock", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 1 && req.Quantity == 5
				})).Return(nil).Once()

				// availability is re-read for the shortage report
				f.inventoryClient.On("BulkStockCheck", mock.Anything, []model.StockCheckItem{{ProductID: 2, Quantity: 3}}).
					Return([]model.StockCheckResult{
						{ProductID: 2, SKU: "SKU-002", Requested: 3, Available: 1, Fulfilled: false},
					}, nil).Once()
			},
			want:          nil,
			wantErr:       true,
			wantShortages: 1,
			wantShortSKU:  "SKU-002",
		},
		{
			name: "error: BeginTx returns error",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{
				ctx: context.Background(),
				req: &model.OrderRequest{
					CustomerID: 7,
					Items:      []model.OrderItemRequest{{ProductID: 1, Quantity: 5}},
				},
			},
			mockCall: func(f fields) {
				f.catalogClient.On("GetProductsBatch", mock.Anything, []uint64{1}).
					Return([]svcclient.ProductInfo{activeProduct(1, "SKU-001", 10)}, nil).Once()
				f.inventoryClient.On("BulkStockCheck", mock.Anything, mock.Anything).
					Return([]model.StockCheckResult{
						{ProductID: 1, Requested: 5, Available: 100, Fulfilled: true},
					}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("tx error")).Once()
			},
			want:    nil,
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.config, tt.fields.txRepo, tt.fields.orderRepo,
				tt.fields.catalogClient, tt.fields.inventoryClient, nil)

			got, err := app.CreateOrder(tt.args.ctx, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateOrder() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantShortages > 0 {
				var shortage *apporder.ShortageError
				if !errors.As(err, &shortage) {
					t.Fatalf("error type = %T, want *ShortageError", err)
				}
				if len(shortage.Shortages) != tt.wantShortages {
					t.Fatalf("shortages = %d, want %d", len(shortage.Shortages), tt.wantShortages)
				}
				if tt.wantShortSKU != "" && shortage.Shortages[0].SKU != tt.wantShortSKU {
					t.Fatalf("shortage SKU = %q, want %q", shortage.Shortages[0].SKU, tt.wantShortSKU)
				}
				return
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.OrderID != tt.want.OrderID {
				t.Fatalf("CreateOrder() OrderID = %v, want %v", got.OrderID, tt.want.OrderID)
			}
			if !got.TotalAmount.Equal(tt.want.TotalAmount) {
				t.Fatalf("CreateOrder() TotalAmount = %v, want %v", got.TotalAmount, tt.want.TotalAmount)
			}
			if got.ExpiresAt.IsZero() {
				t.Fatal("CreateOrder() ExpiresAt should not be zero")
			}
		})
	}
}

func TestOrderApp_UpdateStatus(t *testing.T) {
	type fields struct {
		config          *config.Config
		txRepo          *txmocks.TxRepository
		orderRepo       *ordermocks.OrderRepository
		catalogClient   *svcmocks.CatalogClient
		inventoryClient *svcmocks.InventoryClient
	}
	type args struct {
		ctx     context.Context
		orderID uint64
		status  constant.OrderStatus
	}
	tests := []struct {
		name     string
		fields   fields
		args     args
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: shipping deducts every reserved line",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{ctx: context.Background(), orderID: 1, status: constant.OrderStatusShipped},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusProcessing,
				}, nil).Once()

				f.orderRepo.On("GetItemsTx", mock.Anything, tx, uint64(1)).Return([]model.OrderItem{
					{ProductID: 1, Quantity: 5},
					{ProductID: 2, Quantity: 3},
				}, nil).Once()

				f.inventoryClient.On("ConfirmDeduction", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 1 && req.Quantity == 5
				})).Return(nil).Once()
				f.inventoryClient.On("ConfirmDeduction", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 2 && req.Quantity == 3
				})).Return(nil).Once()

				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusShipped).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: invalid transition pending to shipped",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{ctx: context.Background(), orderID: 1, status: constant.OrderStatusShipped},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusPending,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
		{
			name: "error: order not found",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{ctx: context.Background(), orderID: 999, status: constant.OrderStatusProcessing},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: deduction failure keeps the order unshipped",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			args: args{ctx: context.Background(), orderID: 1, status: constant.OrderStatusShipped},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusProcessing,
				}, nil).Once()

				f.orderRepo.On("GetItemsTx", mock.Anything, tx, uint64(1)).Return([]model.OrderItem{
					{ProductID: 1, Quantity: 5},
				}, nil).Once()

				f.inventoryClient.On("ConfirmDeduction", mock.Anything, mock.Anything).
					Return(errors.New("inventory service down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrDependencyUnavailable,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.config, tt.fields.txRepo, tt.fields.orderRepo,
				tt.fields.catalogClient, tt.fields.inventoryClient, nil)

			got, err := app.UpdateStatus(tt.args.ctx, tt.args.orderID, tt.args.status)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateStatus() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if got.Status != tt.args.status {
				t.Fatalf("UpdateStatus() status = %s, want %s", got.Status, tt.args.status)
			}
		})
	}
}

func TestOrderApp_CancelOrder(t *testing.T) {
	type fields struct {
		config          *config.Config
		txRepo          *txmocks.TxRepository
		orderRepo       *ordermocks.OrderRepository
		catalogClient   *svcmocks.CatalogClient
		inventoryClient *svcmocks.InventoryClient
	}
	tests := []struct {
		name     string
		fields   fields
		orderID  uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: cancel releases every hold",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusPending,
				}, nil).Once()

				f.orderRepo.On("GetItemsTx", mock.Anything, tx, uint64(1)).Return([]model.OrderItem{
					{ProductID: 1, Quantity: 5},
				}, nil).Once()

				f.inventoryClient.On("ReleaseStock", mock.Anything, mock.MatchedBy(func(req *model.StockOpRequest) bool {
					return req.ProductID == 1 && req.Quantity == 5
				})).Return(nil).Once()

				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusCancelled).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: delivered order cannot be cancelled",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusDelivered,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.config, tt.fields.txRepo, tt.fields.orderRepo,
				tt.fields.catalogClient, tt.fields.inventoryClient, nil)

			err := app.CancelOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CancelOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestOrderApp_ExpireOrder(t *testing.T) {
	type fields struct {
		config          *config.Config
		txRepo          *txmocks.TxRepository
		orderRepo       *ordermocks.OrderRepository
		catalogClient   *svcmocks.CatalogClient
		inventoryClient *svcmocks.InventoryClient
	}
	tests := []struct {
		name     string
		fields   fields
		orderID  uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: pending order expires",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusPending,
				}, nil).Once()

				f.orderRepo.On("GetItemsTx", mock.Anything, tx, uint64(1)).Return([]model.OrderItem{
					{ProductID: 1, Quantity: 2},
				}, nil).Once()

				f.inventoryClient.On("ReleaseStock", mock.Anything, mock.Anything).Return(nil).Once()

				f.orderRepo.On("UpdateOrderStatusTx", mock.Anything, tx, uint64(1), constant.OrderStatusCancelled).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: processing order is left alone",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Once()

				f.orderRepo.On("GetOrderTx", mock.Anything, tx, uint64(1)).Return(&model.Order{
					ID:     1,
					Status: constant.OrderStatusProcessing,
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.config, tt.fields.txRepo, tt.fields.orderRepo,
				tt.fields.catalogClient, tt.fields.inventoryClient, nil)

			err := app.ExpireOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ExpireOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}

func TestOrderApp_DeleteOrder(t *testing.T) {
	type fields struct {
		config          *config.Config
		txRepo          *txmocks.TxRepository
		orderRepo       *ordermocks.OrderRepository
		catalogClient   *svcmocks.CatalogClient
		inventoryClient *svcmocks.InventoryClient
	}
	tests := []struct {
		name     string
		fields   fields
		orderID  uint64
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: delete delivered order",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.OrderDetail{
					Order: model.Order{ID: 1, Status: constant.OrderStatusDelivered},
				}, nil).Once()
				f.orderRepo.On("Delete", mock.Anything, uint64(1)).Return(nil).Once()
			},
			wantErr: false,
		},
		{
			name: "error: pending order still holds reservations",
			fields: fields{
				config:          testConfig(),
				txRepo:          txmocks.NewTxRepository(t),
				orderRepo:       ordermocks.NewOrderRepository(t),
				catalogClient:   svcmocks.NewCatalogClient(t),
				inventoryClient: svcmocks.NewInventoryClient(t),
			},
			orderID: 1,
			mockCall: func(f fields) {
				f.orderRepo.On("GetByID", mock.Anything, uint64(1)).Return(&model.OrderDetail{
					Order: model.Order{ID: 1, Status: constant.OrderStatusPending},
				}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidOrderStatus,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := apporder.NewOrderApp(tt.fields.config, tt.fields.txRepo, tt.fields.orderRepo,
				tt.fields.catalogClient, tt.fields.inventoryClient, nil)

			err := app.DeleteOrder(context.Background(), tt.orderID)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteOrder() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
			}
		})
	}
}
