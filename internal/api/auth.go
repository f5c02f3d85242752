package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/workdeck/workdeck/internal/auth"
	"github.com/workdeck/workdeck/internal/middleware"
	"github.com/workdeck/workdeck/internal/models"
	"github.com/workdeck/workdeck/internal/store"
)

const tokenTTL = 24 * time.Hour

type AuthHandler struct {
	store     *store.Store
	jwtSecret string
	logger    *zap.Logger
}

func NewAuthHandler(s *store.Store, jwtSecret string, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{store: s, jwtSecret: jwtSecret, logger: logger}
}

type signInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type signInResponse struct {
	Token  string            `json:"token"`
	Member models.TeamMember `json:"member"`
}

// SignIn handles POST /v1/auth/signin. Unknown email and wrong password
// produce the same error so the response doesn't reveal which emails exist.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var req signInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	member, found := h.store.Snapshot().TeamMemberByEmail(req.Email)
	if !found || bcrypt.CompareHashAndPassword([]byte(member.PasswordHash), []byte(req.Password)) != nil {
		fail(c, http.StatusUnauthorized, CodeUnauthorized, "invalid email or password")
		return
	}

	token, err := auth.GenerateToken(member.ID, member.Email, h.jwtSecret, tokenTTL)
	if err != nil {
		h.logger.Error("failed to sign token", zap.Error(err))
		fail(c, http.StatusInternalServerError, CodeInternal, "failed to sign in")
		return
	}

	h.store.SetCurrentUser(&member)
	ok(c, http.StatusOK, signInResponse{Token: token, Member: member})
}

// SignOut handles POST /v1/auth/signout. Tokens are stateless so there is
// nothing to revoke; the endpoint exists so clients have a uniform flow.
func (h *AuthHandler) SignOut(c *gin.Context) {
	ok(c, http.StatusOK, gin.H{"signedOut": true})
}

// Me handles GET /v1/auth/me.
func (h *AuthHandler) Me(c *gin.Context) {
	snap := h.store.Snapshot()
	if id := middleware.MemberID(c); id != "" {
		if m, found := snap.TeamMember(id); found {
			ok(c, http.StatusOK, m)
			return
		}
	}
	if snap.CurrentUser != nil {
		ok(c, http.StatusOK, *snap.CurrentUser)
		return
	}
	notFound(c, "current user")
}
