package contacts

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	public := r.Group("/api/contact")
	admin := r.Group("/api/contact")
	Register(public, admin, nil)
	return r
}

func TestSubmitContact_InvalidBody(t *testing.T) {
	r := setupContactRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid request body")
}

func TestSubmitContact_ValidationErrors(t *testing.T) {
	r := setupContactRouter()

	body := `{"email": "nope", "phone": "123", "message": "short"}`
	req := httptest.NewRequest(http.MethodPost, "/api/contact", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid email", resp.Errors["email"])
	assert.Equal(t, "Invalid phone", resp.Errors["phone"])
	assert.Equal(t, "Message must be at least 10 characters", resp.Errors["message"])
}

func TestListContacts_UnknownStatusFilter(t *testing.T) {
	r := setupContactRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/contact?status=deleted", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown status filter")
}

func TestUpdateContactStatus_UnknownStatus(t *testing.T) {
	r := setupContactRouter()

	req := httptest.NewRequest(http.MethodPut, "/api/contact/some-id", strings.NewReader(`{"status": "gone"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Unknown status")
}
