package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr      string
	Port            string
	ContentAPIBase  string
	ContentAPIToken string
	LedgerPath      string
	SessionSecret   string
	GinMode         string
	UploadMaxBytes  int64
	UploadMaxDim    int
	SiteBaseURL     string
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	listenAddr := strings.TrimSpace(os.Getenv("LISTEN_ADDR"))
	if listenAddr == "" {
		listenAddr = fmt.Sprintf(":%s", port)
	}

	contentAPIBase := strings.TrimSpace(os.Getenv("CONTENT_API_BASE"))
	if contentAPIBase == "" {
		contentAPIBase = "http://localhost:8000/api"
	}

	ledgerPath := strings.TrimSpace(os.Getenv("LEDGER_PATH"))
	if ledgerPath == "" {
		ledgerPath = "motorent-assets.db"
	}

	sessionSecret := strings.TrimSpace(os.Getenv("SESSION_SECRET"))
	if sessionSecret == "" {
		sessionSecret = "motorent-dev-secret"
	}

	ginMode := strings.TrimSpace(os.Getenv("GIN_MODE"))
	if ginMode == "" {
		ginMode = "release"
	}

	siteBaseURL := strings.TrimSpace(os.Getenv("SITE_BASE_URL"))
	if siteBaseURL == "" {
		siteBaseURL = "https://motorent.example.com"
	}

	uploadMaxBytes := parseInt64(os.Getenv("UPLOAD_MAX_BYTES"), 8<<20)
	uploadMaxDim := int(parseInt64(os.Getenv("UPLOAD_MAX_DIM"), 1920))

	// 管理端令牌仅校验是否存在，不在本服务内签发
	contentAPIToken := strings.TrimSpace(os.Getenv("CONTENT_API_TOKEN"))

	return AppConfig{
		ListenAddr:      listenAddr,
		Port:            port,
		ContentAPIBase:  strings.TrimRight(contentAPIBase, "/"),
		ContentAPIToken: contentAPIToken,
		LedgerPath:      ledgerPath,
		SessionSecret:   sessionSecret,
		GinMode:         ginMode,
		UploadMaxBytes:  uploadMaxBytes,
		UploadMaxDim:    uploadMaxDim,
		SiteBaseURL:     siteBaseURL,
	}
}

func parseInt64(raw string, fallback int64) int64 {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return fallback
	}
	value, err := strconv.ParseInt(trimmed, 10, 64)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
