package apperr

import "github.com/tuanvumaihuynh/inventory-service/pkg/zerror"

const (
	ValidationErrorCode        = "VALIDATION_FAILED"
	InventoryNotFoundErrorCode = "INVENTORY_NOT_FOUND"
	StoreErrorCode             = "STORE_ERROR"
	RouteNotFoundErrorCode     = "ROUTE_NOT_FOUND"
	MethodNotAllowedErrorCode  = "METHOD_NOT_ALLOWED"
)

var (
	ValidationErr        = zerror.NewValidationFailed(ValidationErrorCode, "validation error")
	InventoryNotFoundErr = zerror.NewNotFound(InventoryNotFoundErrorCode, "inventory not found")
	StoreErr             = zerror.NewInternalServerError(StoreErrorCode, "inventory store error")
	RouteNotFoundErr     = zerror.NewNotFound(RouteNotFoundErrorCode, "route not found")
	MethodNotAllowedErr  = zerror.NewMethodNotAllowed(MethodNotAllowedErrorCode, "method not allowed")
)
