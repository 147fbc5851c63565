package handler

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type loginPayload struct {
	Token string `json:"token"`
}

// Login stores the operator's content-API token in the session. The token is
// only checked for presence here; the content store is the authority on
// whether it is actually valid, answered with a 401 on the first admin call.
func (a *API) Login(c *gin.Context) {
	var payload loginPayload
	if !bindJSON(c, &payload, "invalid login payload") {
		return
	}

	token := strings.TrimSpace(payload.Token)
	if token == "" {
		respondError(c, http.StatusBadRequest, "an API token is required")
		return
	}

	session := sessions.Default(c)
	session.Set(sessionTokenKey, token)
	if err := session.Save(); err != nil {
		respondError(c, http.StatusInternalServerError, "failed to open the admin session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "signed in"})
}

// Logout 清除管理会话。
func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Delete(sessionTokenKey)
	_ = session.Save()
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

// AuthRequired 是一个简单的认证中间件，只校验会话里是否存在令牌。
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		token, _ := session.Get(sessionTokenKey).(string)
		if strings.TrimSpace(token) == "" {
			respondError(c, http.StatusUnauthorized, "sign in first")
			c.Abort()
			return
		}
		c.Next()
	}
}
