package contacts

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type Handler struct {
	repo *Repo
}

// Register wires the public submission route and the admin triage routes.
func Register(public, admin *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	public.POST("", h.create)

	admin.GET("", h.list)
	admin.PUT("/:id", h.updateStatus)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) create(c *gin.Context) {
	var in Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)

	if errs := in.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid contact details", "errors": errs})
		return
	}

	m, err := h.repo.Create(c.Request.Context(), in)
	if err != nil {
		log.Printf("contacts: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to send message"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": m})
}

func (h *Handler) list(c *gin.Context) {
	f := ListFilter{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if f.Status != "" && !ValidStatus(f.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown status filter"})
		return
	}

	items, err := h.repo.List(c.Request.Context(), f)
	if err != nil {
		log.Printf("contacts: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *Handler) updateStatus(c *gin.Context) {
	id := c.Param("id")

	var req statusReq
	if err := c.ShouldBindJSON(&req); err != nil || !ValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Unknown status"})
		return
	}

	m, err := h.repo.UpdateStatus(c.Request.Context(), id, req.Status)
	if err == pgx.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}
	if err != nil {
		log.Printf("contacts: update status failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": m})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.repo.Delete(c.Request.Context(), id)
	if err != nil {
		log.Printf("contacts: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete message"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Message not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message deleted"})
}
