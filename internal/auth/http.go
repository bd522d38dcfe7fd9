package auth

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Authenticator checks a username/password pair. Satisfied by *Repo.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) (*User, error)
}

type Handler struct {
	users        Authenticator
	sessions     *SessionStore
	cookieName   string
	cookieSecure bool
}

func NewHandler(users Authenticator, sessions *SessionStore, cookieName string, cookieSecure bool) *Handler {
	return &Handler{
		users:        users,
		sessions:     sessions,
		cookieName:   cookieName,
		cookieSecure: cookieSecure,
	}
}

// Register wires the auth routes. loginMW applies to the login route only,
// so the session probe stays unthrottled.
func (h *Handler) Register(rg *gin.RouterGroup, loginMW ...gin.HandlerFunc) {
	rg.GET("/check-auth", h.checkAuth)
	rg.POST("/login", append(loginMW, h.login)...)
	rg.POST("/logout", h.logout)
}

type checkAuthResp struct {
	IsAuthenticated bool `json:"isAuthenticated"`
	IsAdmin         bool `json:"isAdmin"`
}

// checkAuth always answers 200; an absent or dead session is a normal
// logged-out state, not an error.
func (h *Handler) checkAuth(c *gin.Context) {
	sid, err := c.Cookie(h.cookieName)
	if err != nil || sid == "" {
		c.JSON(http.StatusOK, checkAuthResp{})
		return
	}

	sess, err := h.sessions.Get(c.Request.Context(), sid)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Printf("auth: session lookup failed: %v", err)
		}
		c.JSON(http.StatusOK, checkAuthResp{})
		return
	}

	c.JSON(http.StatusOK, checkAuthResp{IsAuthenticated: true, IsAdmin: sess.IsAdmin})
}

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil ||
		strings.TrimSpace(req.Username) == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username and password are required"})
		return
	}

	u, err := h.users.Authenticate(c.Request.Context(), strings.TrimSpace(req.Username), req.Password)
	if errors.Is(err, ErrInvalidCredentials) {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Printf("auth: authenticate failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	sid, err := h.sessions.Create(c.Request.Context(), Session{
		UserID:   u.ID,
		Username: u.Username,
		IsAdmin:  u.IsAdmin,
	})
	if err != nil {
		log.Printf("auth: create session failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Login failed"})
		return
	}

	h.setCookie(c, sid, int(h.sessions.ttl.Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "Logged in"})
}

// logout destroys the session if one exists and always clears the cookie.
func (h *Handler) logout(c *gin.Context) {
	if sid, err := c.Cookie(h.cookieName); err == nil && sid != "" {
		if err := h.sessions.Delete(c.Request.Context(), sid); err != nil {
			log.Printf("auth: delete session failed: %v", err)
		}
	}

	h.setCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *Handler) setCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, value, maxAge, "/", "", h.cookieSecure, true)
}
