// Package handler exposes the admin panel and public site over HTTP. Every
// screen is a thin wrapper around the content store: fetch JSON, edit, write
// back. Handlers hold no state of their own beyond the operator session.
package handler

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/config"
	"github.com/motorent/internal/logger"
	"github.com/motorent/internal/service"
	"github.com/motorent/internal/store"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// sessionTokenKey 是会话中保存内容接口令牌的键。
const sessionTokenKey = "content_api_token"

// API bundles the services the handlers depend on.
type API struct {
	cfg     config.AppConfig
	store   *store.Client
	assetDB *gorm.DB
	log     *zap.Logger

	publicSync *service.SyncService
	booking    *service.BookingService
	chat       *service.ChatbotService
}

// NewAPI constructs the handler set. client is the unauthenticated store
// client used for public reads and submissions; admin calls derive an
// authenticated client from the operator session per request.
func NewAPI(cfg config.AppConfig, client *store.Client, assetDB *gorm.DB) *API {
	return &API{
		cfg:        cfg,
		store:      client,
		assetDB:    assetDB,
		log:        logger.Get(),
		publicSync: service.NewSyncService(client),
		booking:    service.NewBookingService(client),
		chat:       service.NewChatbotService(client),
	}
}

// adminClient binds the store client to the token in the operator session.
func (a *API) adminClient(c *gin.Context) *store.Client {
	session := sessions.Default(c)
	token, _ := session.Get(sessionTokenKey).(string)
	return a.store.WithToken(token)
}

// adminSync returns a SyncService writing with the session token.
func (a *API) adminSync(c *gin.Context) *service.SyncService {
	return service.NewSyncService(a.adminClient(c))
}

// assets returns the asset resolver bound to the session token.
func (a *API) assets(c *gin.Context) *service.AssetService {
	return service.NewAssetService(a.adminClient(c), a.assetDB, a.cfg.UploadMaxBytes, a.cfg.UploadMaxDim)
}
