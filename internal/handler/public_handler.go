package handler

import (
	"bytes"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/motorent/internal/model"
	"github.com/motorent/internal/service"
	"github.com/motorent/internal/store"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown 将操作员录入的 Markdown 渲染并消毒为安全的 HTML。
func renderMarkdown(source string) string {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(source), &buf); err != nil {
		return ""
	}
	return sanitizer.Sanitize(buf.String())
}

// ShowHome serves the landing page content: hero slides in store order,
// feature cards, policy cards and the footer.
func (a *API) ShowHome(c *gin.Context) {
	page, failed := a.publicSync.LoadHomePage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":     page.Meta,
		"slides":   page.Slides,
		"features": page.Features,
		"policies": page.Policies,
		"footer":   page.Footer,
		"failed":   failed,
	})
}

// ShowAbout serves the about page with the description rendered to HTML.
func (a *API) ShowAbout(c *gin.Context) {
	page, failed := a.publicSync.LoadAboutPage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":             page.Meta,
		"content":          page.Content,
		"description_html": renderMarkdown(page.Content.Description),
		"failed":           failed,
	})
}

// ShowBikes serves the fleet listing.
func (a *API) ShowBikes(c *gin.Context) {
	page, failed := a.publicSync.LoadBikesPage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":     page.Meta,
		"vehicles": page.Vehicles,
		"failed":   failed,
	})
}

// ShowBike serves a single vehicle addressed by slug.
func (a *API) ShowBike(c *gin.Context) {
	vehicle, err := store.Get[model.Vehicle](c.Request.Context(), a.store, model.PathVehicles+"/"+c.Param("slug"))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"vehicle":          vehicle,
		"description_html": renderMarkdown(vehicle.Description),
	})
}

// QuoteBike prices a rental duration against the vehicle's rate table.
func (a *API) QuoteBike(c *gin.Context) {
	days, err := strconv.Atoi(c.DefaultQuery("days", "1"))
	if err != nil || days < 1 {
		respondError(c, http.StatusBadRequest, "days must be a positive whole number")
		return
	}

	vehicle, err := store.Get[model.Vehicle](c.Request.Context(), a.store, model.PathVehicles+"/"+c.Param("slug"))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slug":  vehicle.Slug,
		"days":  days,
		"price": service.PriceFor(days, vehicle),
	})
}

// ShowGallery serves the public gallery.
func (a *API) ShowGallery(c *gin.Context) {
	page, failed := a.publicSync.LoadGalleryPage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":   page.Meta,
		"images": page.Images,
		"failed": failed,
	})
}

// ShowContact serves the contact page, including the dynamic form fields.
func (a *API) ShowContact(c *gin.Context) {
	page, failed := a.publicSync.LoadContactPage(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"meta":   page.Meta,
		"info":   page.Info,
		"fields": page.Fields,
		"failed": failed,
	})
}

// ChatOptions serves the chat widget's option list.
func (a *API) ChatOptions(c *gin.Context) {
	options, err := a.chat.Options(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// ChatReply answers a chat option with its canned reply.
func (a *API) ChatReply(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reply": service.ReplyFor(c.Query("key"))})
}
