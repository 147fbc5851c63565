// Package ledger tracks the lifecycle of uploaded image assets. Every upload
// is recorded as staged; the row flips to committed once the entity holding
// the URL has been saved. Rows that stay staged belong to abandoned edits and
// are the garbage-collection feed for the asset store.
package ledger

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Asset statuses.
const (
	StatusStaged    = "staged"
	StatusCommitted = "committed"
)

// DB 是一个全局的数据库连接实例
var DB *gorm.DB

// StagedAsset is one uploaded file known to the remote store.
type StagedAsset struct {
	ID        string `gorm:"primaryKey"`
	URL       string `gorm:"uniqueIndex"`
	Status    string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Init 初始化资产台账数据库并执行自动迁移。
// path 为空时将回退到默认值 motorent-assets.db。
func Init(path string) error {
	p := strings.TrimSpace(path)
	if p == "" {
		p = "motorent-assets.db"
	}

	if err := ensureParentDir(p); err != nil {
		return err
	}

	var err error
	DB, err = gorm.Open(sqlite.Open(p), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return err
	}

	return DB.AutoMigrate(&StagedAsset{})
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return errors.New("ledger parent path is not a directory")
		}
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
