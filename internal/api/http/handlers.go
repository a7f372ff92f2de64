package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"qrmesa/internal/domain"
	"qrmesa/internal/service"
)

type Handler struct {
	Orders service.OrderServiceInterface
	Tables service.TableServiceInterface
	Menu   service.MenuServiceInterface
	Users  service.UserStore
}

func NewHandler(orderSvc service.OrderServiceInterface, tableSvc service.TableServiceInterface, menuSvc service.MenuServiceInterface, users service.UserStore) *Handler {
	return &Handler{
		Orders: orderSvc,
		Tables: tableSvc,
		Menu:   menuSvc,
		Users:  users,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Guest surface, authorized by QR token alone.
	r.HandleFunc("/api/qr/{code}/menu", h.menuByQRCode).Methods("GET")
	r.HandleFunc("/api/qr/{code}/orders", h.createOrderByQRCode).Methods("POST")
	r.HandleFunc("/api/qr/{code}/orders", h.listOrdersByQRCode).Methods("GET")

	// Staff surface.
	r.HandleFunc("/api/orders/open", h.listOpenOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PATCH")

	// Administration.
	r.HandleFunc("/api/tables", h.createTable).Methods("POST")
	r.HandleFunc("/api/tables", h.listTables).Methods("GET")
	r.HandleFunc("/api/tables", h.removeLastTable).Methods("DELETE")
	r.HandleFunc("/api/tables/{id}", h.getTable).Methods("GET")
	r.HandleFunc("/api/tables/{id}", h.removeTable).Methods("DELETE")
	r.HandleFunc("/api/tables/{id}/orders", h.listOrdersByTable).Methods("GET")
	r.HandleFunc("/api/tables/{id}/qrcode", h.generateQRCode).Methods("POST")
	r.HandleFunc("/api/tables/{id}/qrcode.png", h.tableQRImage).Methods("GET")

	r.HandleFunc("/api/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/api/menu/{id}", h.updateMenuItem).Methods("PATCH")
	r.HandleFunc("/api/menu/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/api/menu/{id}/availability", h.setAvailability).Methods("PUT")
}

// principal resolves the acting user from the X-User-ID header.
// Credential verification happened upstream; a missing or unknown id
// yields a nil principal and the services reject the operation.
func (h *Handler) principal(r *http.Request) domain.Principal {
	raw := r.Header.Get("X-User-ID")
	if raw == "" {
		return nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	user, err := h.Users.GetUser(r.Context(), id)
	if err != nil {
		return nil
	}
	return *user
}

func writeJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, err error) {
	var itemNotFound *service.MenuItemNotFoundError
	var unavailable *service.MenuItemUnavailableError

	switch {
	case errors.Is(err, service.ErrTableNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrNoTablesAvailable),
		errors.As(err, &itemNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, service.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, service.ErrOrderClosed),
		errors.Is(err, service.ErrTableNumberTaken),
		errors.Is(err, service.ErrSKUTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &unavailable):
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "qrmesa",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) menuByQRCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	items, err := h.Menu.MenuByQRCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createOrderByQRCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var body struct {
		Items []domain.OrderItemRequest `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(body.Items) == 0 {
		http.Error(w, "Invalid order payload", http.StatusBadRequest)
		return
	}
	for _, item := range body.Items {
		if item.Quantity <= 0 {
			http.Error(w, "Invalid order payload", http.StatusBadRequest)
			return
		}
	}

	order, err := h.Orders.CreateOrderByQRCode(r.Context(), code, body.Items)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) listOrdersByQRCode(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	orders, err := h.Orders.ListOrdersByQRCode(r.Context(), code)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.GetOrder(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) listOpenOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.ListOpenOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var body struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Orders.UpdateOrderStatus(r.Context(), id, body.Status, h.principal(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) createTable(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Number         *int `json:"number,omitempty"`
		Capacity       int  `json:"capacity"`
		GenerateQRCode bool `json:"generate_qr_code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	table, err := h.Tables.CreateTable(r.Context(), body.Number, body.Capacity, body.GenerateQRCode)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, table)
}

func (h *Handler) listTables(w http.ResponseWriter, r *http.Request) {
	tables, err := h.Tables.ListTables(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tables)
}

func (h *Handler) getTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Tables.GetTable(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) removeLastTable(w http.ResponseWriter, r *http.Request) {
	table, err := h.Tables.RemoveTable(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) removeTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Tables.RemoveTableByID(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listOrdersByTable(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	orders, err := h.Orders.ListOrdersByTable(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) generateQRCode(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	table, err := h.Tables.GenerateQRCode(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, table)
}

func (h *Handler) tableQRImage(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	png, err := h.Tables.QRImage(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.CreateMenuItem(r.Context(), &item, h.principal(r)); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.ListMenu(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var patch domain.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Menu.UpdateMenuItem(r.Context(), id, patch, h.principal(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) setAvailability(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var body struct {
		IsAvailable bool `json:"is_available"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	item, err := h.Menu.SetAvailability(r.Context(), id, body.IsAvailable, h.principal(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.DeleteMenuItem(r.Context(), id, h.principal(r)); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
