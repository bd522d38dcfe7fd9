package projects

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupProjectRouter wires the handler without a database. Only the
// request-shaped failure paths are reachable; anything touching the repo
// belongs in an integration run.
func setupProjectRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	public := r.Group("/api/projects")
	admin := r.Group("/api/projects")
	Register(public, admin, nil)
	return r
}

func multipartBody(t *testing.T, fields map[string]string, imageType string, imageData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}

	if imageData != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="image"; filename="pic.bin"`)
		h.Set("Content-Type", imageType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(imageData)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func postProject(t *testing.T, r *gin.Engine, fields map[string]string, imageType string, imageData []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, fields, imageType, imageData)
	req := httptest.NewRequest(http.MethodPost, "/api/projects", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateProject_MissingFields(t *testing.T) {
	r := setupProjectRouter()

	w := postProject(t, r, map[string]string{"description": "a description"}, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Title is required", resp.Errors["title"])
	assert.Equal(t, "At least one tag is required", resp.Errors["tags"])
	assert.NotEmpty(t, resp.Message)
}

func TestCreateProject_BadURL(t *testing.T) {
	r := setupProjectRouter()

	w := postProject(t, r, map[string]string{
		"title":       "A",
		"description": "a description",
		"tags":        "go",
		"github":      "not-a-url",
	}, "", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please enter a valid URL")
}

func TestCreateProject_NonImageUploadRejected(t *testing.T) {
	r := setupProjectRouter()

	w := postProject(t, r, map[string]string{
		"title":       "A",
		"description": "a description",
		"tags":        "go",
	}, "application/pdf", []byte("%PDF-1.4"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Only image files are allowed")
}

func TestCreateProject_OversizedImageRejected(t *testing.T) {
	r := setupProjectRouter()

	big := bytes.Repeat([]byte{0xff}, MaxImageBytes+1)
	w := postProject(t, r, map[string]string{
		"title":       "A",
		"description": "a description",
		"tags":        "go",
	}, "image/png", big)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Image size should be less than 5MB")
}
