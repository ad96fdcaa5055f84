package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lavadero/internal/service"

	"github.com/gorilla/mux"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: svc}
}

func (h *CatalogHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.Service.Services(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *CatalogHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.CreateService(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *CatalogHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	serviceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}
	var req CreateServiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateService(r.Context(), serviceID, req.Name); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Servicio actualizado")
}

func (h *CatalogHandler) ListCarTypes(w http.ResponseWriter, r *http.Request) {
	carTypes, err := h.Service.CarTypes(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, carTypes)
}

func (h *CatalogHandler) ListServicePrices(w http.ResponseWriter, r *http.Request) {
	prices, err := h.Service.ServicePrices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, prices)
}

func (h *CatalogHandler) UpdateServicePrice(w http.ResponseWriter, r *http.Request) {
	priceID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid price ID", http.StatusBadRequest)
		return
	}
	var req UpdateServicePriceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.UpdateServicePrice(r.Context(), priceID, req.Price); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Precio actualizado")
}

// PriceLookup resolves the price for a (car type, service) pair; used by the
// booking form to display the total, and to refresh it after edits.
func (h *CatalogHandler) PriceLookup(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	carTypeID, err := strconv.Atoi(vars["carTypeId"])
	if err != nil {
		http.Error(w, "Invalid car type ID", http.StatusBadRequest)
		return
	}
	serviceID, err := strconv.Atoi(vars["serviceId"])
	if err != nil {
		http.Error(w, "Invalid service ID", http.StatusBadRequest)
		return
	}
	price, err := h.Service.PriceFor(r.Context(), carTypeID, serviceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"price": price})
}
