package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/tuanvumaihuynh/inventory-service/internal/apperr"
	"github.com/tuanvumaihuynh/inventory-service/internal/http/param"
	"github.com/tuanvumaihuynh/inventory-service/internal/model"
	"github.com/tuanvumaihuynh/inventory-service/internal/service"
)

const (
	inventoryIDParam = "inventoryId"

	maxBodyBytes = 1 << 20 // 1 MB
)

type InventoryResponse struct {
	ID          string  `json:"inventoryId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}

func toInventoryResponse(inv model.Inventory) InventoryResponse {
	return InventoryResponse{
		ID:          inv.ID,
		Name:        inv.Name,
		Description: inv.Description,
		Quantity:    inv.Quantity,
		Price:       inv.Price,
	}
}

type inventoryIDRequest struct {
	ID string `json:"inventoryId"`
}

type inventoryHandler struct {
	inventorySvc service.InventoryService
}

func newInventoryHandler(inventorySvc service.InventoryService) *inventoryHandler {
	return &inventoryHandler{
		inventorySvc: inventorySvc,
	}
}

func (h *inventoryHandler) List(w http.ResponseWriter, r *http.Request) error {
	items, err := h.inventorySvc.ListInventory(r.Context())
	if err != nil {
		return fmt.Errorf("inventory service list inventory: %w", err)
	}

	res := make([]InventoryResponse, 0, len(items))
	for _, inv := range items {
		res = append(res, toInventoryResponse(inv))
	}

	return writeJSON(w, http.StatusOK, res)
}

func (h *inventoryHandler) Create(w http.ResponseWriter, r *http.Request) error {
	var params service.CreateInventoryParams
	if err := decodeBody(w, r, &params); err != nil {
		return err
	}

	inv, err := h.inventorySvc.CreateInventory(r.Context(), params)
	if err != nil {
		return fmt.Errorf("inventory service create inventory: %w", err)
	}

	return writeJSON(w, http.StatusCreated, toInventoryResponse(inv))
}

func (h *inventoryHandler) Update(w http.ResponseWriter, r *http.Request) error {
	var params service.UpdateInventoryParams
	if err := decodeBody(w, r, &params); err != nil {
		return err
	}

	return h.update(w, r, params)
}

func (h *inventoryHandler) UpdateByPath(w http.ResponseWriter, r *http.Request) error {
	id, err := param.Path(r, inventoryIDParam)
	if err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	var params service.UpdateInventoryParams
	if err := decodeBody(w, r, &params); err != nil {
		return err
	}

	if params.ID != "" && params.ID != id {
		return apperr.ValidationErr.WrapParent(&param.Error{
			ParamName: inventoryIDParam,
			Err:       fmt.Errorf("body id %q does not match path id %q", params.ID, id),
		})
	}
	params.ID = id

	return h.update(w, r, params)
}

func (h *inventoryHandler) update(w http.ResponseWriter, r *http.Request, params service.UpdateInventoryParams) error {
	inv, err := h.inventorySvc.UpdateInventory(r.Context(), params)
	if err != nil {
		return fmt.Errorf("inventory service update inventory: %w", err)
	}

	return writeJSON(w, http.StatusOK, toInventoryResponse(inv))
}

// Delete reads the id from the query string, falling back to the request body.
func (h *inventoryHandler) Delete(w http.ResponseWriter, r *http.Request) error {
	id, err := param.Query(r, inventoryIDParam)
	if err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	if id == "" {
		var body inventoryIDRequest
		if err := decodeBody(w, r, &body); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		id = body.ID
	}

	if id == "" {
		return apperr.ValidationErr.WrapParent(param.Required(inventoryIDParam))
	}

	return h.delete(w, r, id)
}

func (h *inventoryHandler) DeleteByPath(w http.ResponseWriter, r *http.Request) error {
	id, err := param.Path(r, inventoryIDParam)
	if err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	return h.delete(w, r, id)
}

func (h *inventoryHandler) delete(w http.ResponseWriter, r *http.Request, id string) error {
	if err := h.inventorySvc.DeleteInventory(r.Context(), id); err != nil {
		return fmt.Errorf("inventory service delete inventory: %w", err)
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}

func (h *inventoryHandler) Get(w http.ResponseWriter, r *http.Request) error {
	id, err := param.Path(r, inventoryIDParam)
	if err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	inv, err := h.inventorySvc.GetInventory(r.Context(), id)
	if err != nil {
		return fmt.Errorf("inventory service get inventory: %w", err)
	}

	return writeJSON(w, http.StatusOK, toInventoryResponse(inv))
}

// decodeBody decodes a single JSON value from the request body into dst.
// Failures are wrapped as apperr.ValidationErr; an empty body still matches io.EOF.
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return apperr.ValidationErr.WrapParent(err)
	}

	switch _, err := dec.Token(); {
	case errors.Is(err, io.EOF):
	case err != nil:
		return apperr.ValidationErr.WrapParent(err)
	default:
		return apperr.ValidationErr.WrapParent(&param.Error{
			ParamName: "body",
			Err:       errors.New("unexpected data after JSON value"),
		})
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	//nolint:errchkjson
	return json.NewEncoder(w).Encode(v)
}
