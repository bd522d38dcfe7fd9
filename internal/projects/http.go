package projects

import (
	"io"
	"log"
	"net/http"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

type Handler struct {
	repo *Repo
}

// Register wires the read route on the public group and the mutating
// routes on the admin-gated group.
func Register(public, admin *gin.RouterGroup, repo *Repo) {
	h := &Handler{repo: repo}

	public.GET("", h.list)

	admin.POST("", h.create)
	admin.PUT("/:id", h.update)
	admin.DELETE("/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Printf("projects: list failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch projects"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *Handler) create(c *gin.Context) {
	in, msg := parseMultipart(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	if errs := in.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": firstError(errs), "errors": errs})
		return
	}

	p, err := h.repo.Create(c.Request.Context(), *in)
	if err != nil {
		log.Printf("projects: create failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create project"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"data": p})
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")

	in, msg := parseMultipart(c)
	if msg != "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msg})
		return
	}

	if errs := in.Validate(); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": firstError(errs), "errors": errs})
		return
	}

	p, err := h.repo.Update(c.Request.Context(), id, *in)
	if err == pgx.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}
	if err != nil {
		log.Printf("projects: update failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update project"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": p})
}

func (h *Handler) delete(c *gin.Context) {
	id := c.Param("id")

	ok, err := h.repo.SoftDelete(c.Request.Context(), id)
	if err != nil {
		log.Printf("projects: delete failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete project"})
		return
	}
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Project not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Project deleted"})
}

// parseMultipart maps the form fields of a create/update request onto an
// Input. Returns a user-facing message on malformed payloads.
func parseMultipart(c *gin.Context) (*Input, string) {
	in := &Input{
		Title:       strings.TrimSpace(c.PostForm("title")),
		Description: strings.TrimSpace(c.PostForm("description")),
		Tags:        SplitTags(c.PostForm("tags")),
		Category:    c.DefaultPostForm("category", "web"),
		Featured:    c.PostForm("featured") == "true",
		GitHub:      strings.TrimSpace(c.PostForm("github")),
		Live:        strings.TrimSpace(c.PostForm("live")),
	}

	file, err := c.FormFile("image")
	if err == http.ErrMissingFile || file == nil {
		return in, ""
	}
	if err != nil {
		return nil, "Invalid form data"
	}

	if file.Size > MaxImageBytes {
		return nil, "Image size should be less than 5MB"
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "Only image files are allowed"
	}

	f, err := file.Open()
	if err != nil {
		return nil, "Failed to read image"
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxImageBytes+1))
	if err != nil || int64(len(data)) > MaxImageBytes {
		return nil, "Failed to read image"
	}

	in.Image = data
	in.ImageContentType = contentType
	return in, ""
}

// firstError picks a stable representative message for the top-level body.
func firstError(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for k := range errs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return errs[keys[0]]
}
