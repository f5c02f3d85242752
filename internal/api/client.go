package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/store"
)

type ClientHandler struct {
	store  *store.Store
	logger *zap.Logger
}

func NewClientHandler(s *store.Store, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{store: s, logger: logger}
}

// List handles GET /v1/clients?page=&pageSize=
func (h *ClientHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))
	ok(c, http.StatusOK, paginate(h.store.Snapshot().Clients, page, pageSize))
}

// Get handles GET /v1/clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	cl, found := h.store.Snapshot().FindClient(c.Param("id"))
	if !found {
		notFound(c, "client")
		return
	}
	ok(c, http.StatusOK, cl)
}

// Create handles POST /v1/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var form models.ClientFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	cl := h.store.AddClient(form)
	h.logger.Info("client created", zap.String("client_id", cl.ID))
	ok(c, http.StatusCreated, cl)
}

// Update handles PUT /v1/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	var form models.ClientFormData
	if err := c.ShouldBindJSON(&form); err != nil {
		badRequest(c, err)
		return
	}

	cl, found := h.store.UpdateClient(c.Param("id"), form)
	if !found {
		notFound(c, "client")
		return
	}
	ok(c, http.StatusOK, cl)
}

// Delete handles DELETE /v1/clients/:id
func (h *ClientHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if !h.store.DeleteClient(id) {
		notFound(c, "client")
		return
	}
	h.logger.Info("client deleted", zap.String("client_id", id))
	ok(c, http.StatusOK, gin.H{"deleted": true})
}

// Select handles PUT /v1/clients/:id/select. Selecting a client clears any
// selected project.
func (h *ClientHandler) Select(c *gin.Context) {
	id := c.Param("id")
	if _, found := h.store.Snapshot().FindClient(id); !found {
		notFound(c, "client")
		return
	}
	h.store.SelectClient(id)
	ok(c, http.StatusOK, gin.H{"selectedClientId": id})
}
