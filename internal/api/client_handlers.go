package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"lavadero/internal/entities"
	"lavadero/internal/service"

	"github.com/gorilla/mux"
)

type ClientHandler struct {
	Service *service.ClientService
}

func NewClientHandler(svc *service.ClientService) *ClientHandler {
	return &ClientHandler{Service: svc}
}

func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	clients, err := h.Service.Search(r.Context(), r.URL.Query().Get("search"))
	if err != nil {
		writeError(w, err)
		return
	}
	if clients == nil {
		clients = []entities.Client{}
	}
	writeJSON(w, http.StatusOK, clients)
}

func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req entities.Client
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}
	var req entities.Client
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.Service.Update(r.Context(), clientID, req); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Cliente actualizado")
}

func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	clientID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid client ID", http.StatusBadRequest)
		return
	}
	if err := h.Service.Delete(r.Context(), clientID); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Cliente eliminado")
}

func (h *ClientHandler) NewByMonth(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Service.NewByMonth(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
