package router

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/config"
	"github.com/motorent/internal/handler"
	"github.com/motorent/internal/model"
	"github.com/motorent/internal/service"
)

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(cfg config.AppConfig, api *handler.API) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	r := gin.Default()

	// 配置会话中间件
	store := cookie.NewStore([]byte(cfg.SessionSecret))
	r.Use(sessions.Sessions("motorent_session", store))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// 公开站点路由
	public := r.Group("/api")
	{
		public.GET("/home", api.ShowHome)
		public.GET("/about", api.ShowAbout)
		public.GET("/bikes", api.ShowBikes)
		public.GET("/bikes/:slug", api.ShowBike)
		public.GET("/bikes/:slug/quote", api.QuoteBike)
		public.GET("/gallery", api.ShowGallery)
		public.GET("/contact", api.ShowContact)
		public.GET("/chat/options", api.ChatOptions)
		public.GET("/chat/reply", api.ChatReply)

		public.POST("/bookings", api.SubmitBooking)
		public.POST("/contact", api.SubmitContactForm)
	}

	// 后台管理路由
	admin := r.Group("/admin")
	{
		admin.POST("/login", api.Login)
		admin.POST("/logout", api.Logout)

		// 需要认证的后台路由
		auth := admin.Group("/api")
		auth.Use(handler.AuthRequired())
		{
			auth.GET("/pages/about", api.ShowAboutEditor)
			auth.PUT("/pages/about", api.SaveAboutPage)
			auth.GET("/pages/contact", api.ShowContactEditor)
			auth.PUT("/pages/contact", api.SaveContactPage)
			auth.GET("/pages/:page/meta", api.ShowPageMeta)
			auth.PUT("/pages/:page/meta", api.SavePageMeta)
			auth.GET("/footer", api.ShowFooterSettings)
			auth.PUT("/footer", api.SaveFooterSettings)

			auth.POST("/upload", api.UploadImage)
			auth.GET("/assets/staged", api.ListStagedAssets)

			auth.GET("/chat/options", api.ShowChatOptions)
			auth.PUT("/chat/options", api.SaveChatOptions)

			handler.RegisterCollection(auth, api, "vehicles", service.VehicleResource,
				func(v model.Vehicle) []string { return []string{v.Image} })
			handler.RegisterCollection(auth, api, "slides", service.SlideResource,
				func(s model.HeroSlide) []string { return []string{s.ImageURL} })
			handler.RegisterCollection(auth, api, "gallery", service.GalleryResource,
				func(g model.GalleryImage) []string { return []string{g.Image} })
			handler.RegisterCollection(auth, api, "features", service.FeatureResource, nil)
			handler.RegisterCollection(auth, api, "policies", service.PolicyResource, nil)
			handler.RegisterCollection(auth, api, "contact-fields", service.ContactFieldResource, nil)
		}
	}

	return r
}
