package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/model"
	"go.uber.org/zap"
)

type aboutPagePayload struct {
	Meta    model.PageMeta     `json:"meta"`
	Content model.AboutContent `json:"content"`
}

type contactPagePayload struct {
	Meta model.PageMeta    `json:"meta"`
	Info model.ContactInfo `json:"info"`
}

type metaPayload struct {
	Meta model.PageMeta `json:"meta"`
}

type footerPayload struct {
	Footer model.FooterSettings `json:"footer"`
}

// validPageKey 校验路径里的页面键。
func validPageKey(key string) bool {
	for _, known := range model.PageKeys {
		if key == known {
			return true
		}
	}
	return false
}

// ShowAboutEditor returns the about page's edit buffers. Parts that failed
// to load come back at their zero value and are named in `failed`, so the
// form renders partially instead of erroring out.
func (a *API) ShowAboutEditor(c *gin.Context) {
	page, failed := a.publicSync.LoadAboutPage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":    page.Meta,
		"content": page.Content,
		"failed":  failed,
	})
}

// SaveAboutPage writes the about meta and content as one group. The group is
// atomic per entity, not across the pair: a half failure is reported naming
// both halves, and the succeeded half is not rolled back.
func (a *API) SaveAboutPage(c *gin.Context) {
	var payload aboutPagePayload
	if !bindJSON(c, &payload, "invalid about payload") {
		return
	}

	if err := a.adminSync(c).SaveAboutPage(c.Request.Context(), payload.Meta, payload.Content); err != nil {
		a.respondServiceError(c, err)
		return
	}

	// 保存成功后，把引用到的图片从 staged 提升为 committed
	if err := a.assets(c).Commit(payload.Meta.HeaderImage, payload.Content.HeroImage); err != nil {
		a.log.Warn("failed to commit staged assets", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "about page saved"})
}

// ShowContactEditor returns the contact page's edit buffers.
func (a *API) ShowContactEditor(c *gin.Context) {
	page, failed := a.publicSync.LoadContactPage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":   page.Meta,
		"info":   page.Info,
		"fields": page.Fields,
		"failed": failed,
	})
}

// SaveContactPage writes the contact meta and info as one group.
func (a *API) SaveContactPage(c *gin.Context) {
	var payload contactPagePayload
	if !bindJSON(c, &payload, "invalid contact payload") {
		return
	}

	if err := a.adminSync(c).SaveContactPage(c.Request.Context(), payload.Meta, payload.Info); err != nil {
		a.respondServiceError(c, err)
		return
	}

	if err := a.assets(c).Commit(payload.Meta.HeaderImage); err != nil {
		a.log.Warn("failed to commit staged assets", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "contact page saved"})
}

// ShowPageMeta returns one page's metadata for the admin editor.
func (a *API) ShowPageMeta(c *gin.Context) {
	key := c.Param("page")
	if !validPageKey(key) {
		respondError(c, http.StatusNotFound, "unknown page")
		return
	}

	var meta model.PageMeta
	// 单个拉取失败时返回零值，编辑器照常打开空白表单
	if err := a.store.GetJSON(c.Request.Context(), model.PageMetaPath(key), &meta); err != nil {
		a.log.Warn("page meta load failed", zap.String("page", key), zap.Error(err))
		meta = model.PageMeta{}
	}
	c.JSON(http.StatusOK, gin.H{"meta": meta})
}

// SavePageMeta writes one page's metadata singleton.
func (a *API) SavePageMeta(c *gin.Context) {
	key := c.Param("page")
	if !validPageKey(key) {
		respondError(c, http.StatusNotFound, "unknown page")
		return
	}

	var payload metaPayload
	if !bindJSON(c, &payload, "invalid meta payload") {
		return
	}

	if err := a.adminSync(c).SavePageMeta(c.Request.Context(), key, payload.Meta); err != nil {
		a.respondServiceError(c, err)
		return
	}

	if err := a.assets(c).Commit(payload.Meta.HeaderImage); err != nil {
		a.log.Warn("failed to commit staged assets", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "page header saved"})
}

// ShowFooterSettings returns the footer singleton for editing.
func (a *API) ShowFooterSettings(c *gin.Context) {
	var footer model.FooterSettings
	if err := a.store.GetJSON(c.Request.Context(), model.PathFooterSettings, &footer); err != nil {
		a.log.Warn("footer load failed", zap.Error(err))
		footer = model.FooterSettings{}
	}
	c.JSON(http.StatusOK, gin.H{"footer": footer})
}

// SaveFooterSettings writes the footer singleton.
func (a *API) SaveFooterSettings(c *gin.Context) {
	var payload footerPayload
	if !bindJSON(c, &payload, "invalid footer payload") {
		return
	}

	if err := a.adminSync(c).SaveFooter(c.Request.Context(), payload.Footer); err != nil {
		a.respondServiceError(c, err)
		return
	}

	if err := a.assets(c).Commit(payload.Footer.LogoURL); err != nil {
		a.log.Warn("failed to commit staged assets", zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"message": "footer saved"})
}
