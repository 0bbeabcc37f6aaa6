package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/leoslab/platform-api/internal/items/domain"
)

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		internalError(c, "list items", err)
		return
	}
	log.Printf("Getting all items. Total items: %d", len(items))
	c.JSON(http.StatusOK, items)
}

func (h *Handler) get(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	item, err := h.svc.Get(c.Request.Context(), id)
	if errors.Is(err, domain.ErrItemNotFound) {
		log.Printf("Item with ID %d not found", id)
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Item not found"})
		return
	}
	if err != nil {
		internalError(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "name is required"})
		return
	}

	item, err := h.svc.Create(c.Request.Context(), &domain.CreateItemRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if errors.Is(err, domain.ErrInvalidName) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "name is required"})
		return
	}
	if err != nil {
		internalError(c, "create item", err)
		return
	}

	log.Printf("Item created: %s (ID: %d)", item.Name, item.ID)
	c.JSON(http.StatusCreated, item)
}

func (h *Handler) update(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid body"})
		return
	}

	item, err := h.svc.Update(c.Request.Context(), id, &domain.UpdateItemRequest{
		Name:        req.Name,
		Description: req.Description,
	})
	if errors.Is(err, domain.ErrItemNotFound) {
		log.Printf("Item with ID %d not found for update", id)
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Item not found"})
		return
	}
	if errors.Is(err, domain.ErrInvalidName) {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "name must not be empty"})
		return
	}
	if err != nil {
		internalError(c, "update item", err)
		return
	}

	log.Printf("Item updated: %s (ID: %d)", item.Name, item.ID)
	c.JSON(http.StatusOK, item)
}

func (h *Handler) delete(c *gin.Context) {
	id, ok := itemID(c)
	if !ok {
		return
	}

	err := h.svc.Delete(c.Request.Context(), id)
	if errors.Is(err, domain.ErrItemNotFound) {
		log.Printf("Item with ID %d not found for deletion", id)
		c.JSON(http.StatusNotFound, gin.H{"status": "error", "message": "Item not found"})
		return
	}
	if err != nil {
		internalError(c, "delete item", err)
		return
	}

	log.Printf("Item deleted (ID: %d)", id)
	c.Status(http.StatusNoContent)
}

// itemID parses the :id path parameter, replying 400 on garbage.
func itemID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "invalid item id"})
		return 0, false
	}
	return id, true
}

// internalError logs the failure and replies 500 without leaking detail.
func internalError(c *gin.Context, op string, err error) {
	log.Printf("%s failed: %v", op, err)
	c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "message": "internal server error"})
}
