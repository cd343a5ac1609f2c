package supplier_test

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stockwise/ims/constant"
	"github.com/stockwise/ims/model"
	"github.com/stockwise/ims/thirdparty/svcclient"
	"github.com/stretchr/testify/mock"
)

func TestSupplierApp_LinkProductSupplier(t *testing.T) {
	req := &model.ProductSupplierRequest{
		ProductID:            1,
		SupplierID:           2,
		SupplierUnitPrice:    decimal.NewFromInt(7),
		MinimumOrderQuantity: 50,
	}

	t.Run("success", func(t *testing.T) {
		f := newPOFields(t)
		f.supplierRepo.On("GetByID", mock.Anything, uint64(2)).Return(activeSupplier(2), nil).Once()
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).Return(&svcclient.ProductInfo{
			ID:       1,
			SKU:      "SKU-001",
			IsActive: true,
		}, nil).Once()
		f.psRepo.On("Exists", mock.Anything, uint64(1), uint64(2)).Return(false, nil).Once()
		f.psRepo.On("Create", mock.Anything, req).Return(&model.ProductSupplier{
			ID:         1,
			ProductID:  1,
			SupplierID: 2,
			IsActive:   true,
		}, nil).Once()

		ps, err := newPOApp(f).LinkProductSupplier(context.Background(), req)
		if err != nil {
			t.Fatalf("LinkProductSupplier() error = %v", err)
		}
		if ps.ID == 0 {
			t.Fatal("LinkProductSupplier() returned zero ID")
		}
	})

	t.Run("error: pair already linked", func(t *testing.T) {
		f := newPOFields(t)
		f.supplierRepo.On("GetByID", mock.Anything, uint64(2)).Return(activeSupplier(2), nil).Once()
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).Return(&svcclient.ProductInfo{
			ID: 1,
		}, nil).Once()
		f.psRepo.On("Exists", mock.Anything, uint64(1), uint64(2)).Return(true, nil).Once()

		_, err := newPOApp(f).LinkProductSupplier(context.Background(), req)
		assertErrCode(t, err, constant.ErrDuplicate)
	})

	t.Run("error: product missing from catalog", func(t *testing.T) {
		f := newPOFields(t)
		f.supplierRepo.On("GetByID", mock.Anything, uint64(2)).Return(activeSupplier(2), nil).Once()
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).Return(nil, &svcclient.StatusError{
			StatusCode: 404,
			Code:       constant.ErrorTypeCode[constant.ErrNotFound],
		}).Once()

		_, err := newPOApp(f).LinkProductSupplier(context.Background(), req)
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("error: catalog unreachable fails closed", func(t *testing.T) {
		f := newPOFields(t)
		f.supplierRepo.On("GetByID", mock.Anything, uint64(2)).Return(activeSupplier(2), nil).Once()
		f.catalogClient.On("GetProduct", mock.Anything, uint64(1)).
			Return(nil, errors.New("connection refused")).Once()

		_, err := newPOApp(f).LinkProductSupplier(context.Background(), req)
		assertErrCode(t, err, constant.ErrDependencyUnavailable)
	})

	t.Run("error: inactive supplier", func(t *testing.T) {
		f := newPOFields(t)
		sup := activeSupplier(2)
		sup.IsActive = false
		f.supplierRepo.On("GetByID", mock.Anything, uint64(2)).Return(sup, nil).Once()

		_, err := newPOApp(f).LinkProductSupplier(context.Background(), req)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}
