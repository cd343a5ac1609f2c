package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrInsufficientStock
	ErrInvalidOrderStatus
	ErrDuplicate
	ErrBelowMinimumOrderQty
	ErrInactiveRelationship
	ErrDependencyUnavailable
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:               "success",
	ErrInternal:              "error internal",
	ErrNotFound:              "data not found",
	ErrInvalidRequest:        "invalid request",
	ErrUnauthorize:           "unauthorize request",
	ErrForbidden:             "forbidden",
	ErrCredentialExists:      "username or email already exists",
	ErrInvalidPassword:       "password invalid",
	ErrInsufficientStock:     "insufficient available stock",
	ErrInvalidOrderStatus:    "invalid status transition",
	ErrDuplicate:             "record already exists",
	ErrBelowMinimumOrderQty:  "requested quantity below minimum order quantity",
	ErrInactiveRelationship:  "product-supplier relationship is not active",
	ErrDependencyUnavailable: "downstream service unavailable",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:               http.StatusOK,
	ErrInternal:              http.StatusInternalServerError,
	ErrNotFound:              http.StatusNotFound,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrUnauthorize:           http.StatusUnauthorized,
	ErrForbidden:             http.StatusForbidden,
	ErrCredentialExists:      http.StatusConflict,
	ErrInvalidPassword:       http.StatusBadRequest,
	ErrInsufficientStock:     http.StatusConflict,
	ErrInvalidOrderStatus:    http.StatusBadRequest,
	ErrDuplicate:             http.StatusConflict,
	ErrBelowMinimumOrderQty:  http.StatusBadRequest,
	ErrInactiveRelationship:  http.StatusBadRequest,
	ErrDependencyUnavailable: http.StatusBadGateway,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:               "0000",
	ErrInternal:              "0001",
	ErrNotFound:              "0002",
	ErrInvalidRequest:        "0003",
	ErrUnauthorize:           "0004",
	ErrForbidden:             "0005",
	ErrCredentialExists:      "0006",
	ErrInvalidPassword:       "0007",
	ErrInsufficientStock:     "0008",
	ErrInvalidOrderStatus:    "0009",
	ErrDuplicate:             "0010",
	ErrBelowMinimumOrderQty:  "0011",
	ErrInactiveRelationship:  "0012",
	ErrDependencyUnavailable: "0013",
}
