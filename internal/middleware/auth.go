package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/workdeck/workdeck/internal/auth"
)

// Context keys for storing claims in gin.Context.
//
// Why string constants instead of inline strings?
//   - Typo protection. If you write c.Get("membr_id") by mistake, it compiles
//     fine but silently returns nil. With constants, the compiler catches typos.
//   - Single source of truth: handlers import these constants, so everyone
//     agrees on the same keys.
const (
	ContextKeyMemberID = "member_id"
	ContextKeyEmail    = "email"
)

// OptionalAuth returns a Gin middleware that validates bearer tokens when
// one is present.
//
// How Gin middleware works:
//   - A middleware is a function that returns gin.HandlerFunc.
//   - It runs BEFORE your actual handler (ListTasks, CreateClient, etc.).
//   - If the token is invalid, it calls c.Abort() — which stops the chain.
//     Your handler never runs. The client gets a 401.
//   - If the token is valid, it stores the claims with c.Set() and calls
//     c.Next() — which passes control to the next handler in the chain.
//
// Unlike a strict auth middleware, a MISSING header is allowed through:
// handlers fall back to the workspace's current user, matching the
// single-user demo mode. Only a header that is present but malformed or
// invalid gets rejected.
//
// Why take `secret` as a parameter?
//   - So the middleware doesn't import the config package directly.
//   - main.go passes cfg.JWTSecret when wiring things up.
//   - This makes the middleware testable: pass any secret in tests.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// No Authorization header: anonymous demo-mode request, continue.
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		// Expected format: "Bearer eyJhbGciOi..."
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid authorization format, expected: Bearer <token>",
			})
			return
		}

		// Parse and validate: checks signature, expiry, and signing method.
		claims, err := auth.ParseToken(parts[1], secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid or expired token",
			})
			return
		}

		// Store claims in the per-request context so any handler later in
		// the chain can read them without parsing the token again.
		c.Set(ContextKeyMemberID, claims.MemberID)
		c.Set(ContextKeyEmail, claims.Email)
		c.Next()
	}
}

// MemberID returns the authenticated member's ID, or "" when the request
// carried no token.
//
// Why a helper instead of c.Get(ContextKeyMemberID) directly in handlers?
//   - Type safety: c.Get() returns (any, bool), so every handler would
//     need its own type assertion.
//   - The assertion lives here, once. A missing key returns "" — the safe
//     zero value handlers already treat as "no authenticated member".
func MemberID(c *gin.Context) string {
	val, exists := c.Get(ContextKeyMemberID)
	if !exists {
		return ""
	}
	id, ok := val.(string)
	if !ok {
		return ""
	}
	return id
}
