package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/store"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondServiceError 将服务层错误翻译成统一的失败响应。
// 存储端返回 401 时清空会话，操作员需要重新登录。
func (a *API) respondServiceError(c *gin.Context, err error) {
	if store.IsUnauthorized(err) {
		session := sessions.Default(c)
		session.Delete(sessionTokenKey)
		_ = session.Save()
		respondError(c, http.StatusUnauthorized, "admin session expired, sign in again")
		return
	}

	var apiErr *store.APIError
	if errors.As(err, &apiErr) {
		respondError(c, http.StatusBadGateway, apiErr.Error())
		return
	}

	respondError(c, http.StatusBadRequest, err.Error())
}

// cutoffFromQuery 解析 before 查询参数，缺省为当前时间。
func cutoffFromQuery(c *gin.Context) time.Time {
	if raw := c.Query("before"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			return parsed
		}
	}
	return time.Now()
}
