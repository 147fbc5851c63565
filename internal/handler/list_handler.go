package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/service"
	"go.uber.org/zap"
)

// collection adapts one list-type entity to the admin HTTP surface. Every
// mutation runs through the shared ListController state machine and answers
// with the re-fetched, authoritative list.
type collection[T any] struct {
	api      *API
	resource func() service.ListResource[T]
	// assetURLs extracts the image URLs a saved member commits in the
	// staged-asset ledger; nil for types that carry no image.
	assetURLs func(T) []string
}

// RegisterCollection wires the standard list CRUD routes for one entity type
// under the given admin group.
func RegisterCollection[T any](rg *gin.RouterGroup, api *API, path string, resource func() service.ListResource[T], assetURLs func(T) []string) {
	col := collection[T]{api: api, resource: resource, assetURLs: assetURLs}
	rg.GET("/"+path, col.list)
	rg.POST("/"+path, col.create)
	rg.PUT("/"+path+"/:key", col.update)
	rg.DELETE("/"+path+"/:key", col.remove)
}

func (col collection[T]) controller(c *gin.Context) *service.ListController[T] {
	return service.NewListController(col.api.adminClient(c), col.resource())
}

func (col collection[T]) list(c *gin.Context) {
	ctl := col.controller(c)
	if err := ctl.Refresh(c.Request.Context()); err != nil {
		col.api.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": ctl.Items()})
}

func (col collection[T]) create(c *gin.Context) {
	var payload T
	if !bindJSON(c, &payload, "invalid payload") {
		return
	}

	ctl := col.controller(c)
	if err := ctl.BeginCreate(); err != nil {
		col.api.respondServiceError(c, err)
		return
	}
	ctl.MutateBuffer(func(buffer *T) { *buffer = payload })

	if err := ctl.Submit(c.Request.Context()); err != nil {
		col.api.respondServiceError(c, err)
		return
	}
	col.commitAssets(c, payload)

	c.JSON(http.StatusCreated, gin.H{"items": ctl.Items()})
}

func (col collection[T]) update(c *gin.Context) {
	var payload T
	if !bindJSON(c, &payload, "invalid payload") {
		return
	}

	ctl := col.controller(c)
	// 路由键来自路径，不随表单里的显示字段漂移
	if err := ctl.BeginEditKeyed(c.Param("key"), payload); err != nil {
		col.api.respondServiceError(c, err)
		return
	}

	if err := ctl.Submit(c.Request.Context()); err != nil {
		col.api.respondServiceError(c, err)
		return
	}
	col.commitAssets(c, payload)

	c.JSON(http.StatusOK, gin.H{"items": ctl.Items()})
}

func (col collection[T]) remove(c *gin.Context) {
	confirmed := c.Query("confirm") == "yes"

	ctl := col.controller(c)
	deleted, err := ctl.Delete(c.Request.Context(), c.Param("key"), func() bool { return confirmed })
	if err != nil {
		col.api.respondServiceError(c, err)
		return
	}
	if !deleted {
		respondError(c, http.StatusBadRequest, "deletion was not confirmed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": ctl.Items()})
}

func (col collection[T]) commitAssets(c *gin.Context, member T) {
	if col.assetURLs == nil {
		return
	}
	if err := col.api.assets(c).Commit(col.assetURLs(member)...); err != nil {
		col.api.log.Warn("failed to commit staged assets", zap.Error(err))
	}
}
