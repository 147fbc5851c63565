package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	_ "image/gif"

	"github.com/google/uuid"
	"github.com/motorent/internal/ledger"
	"github.com/motorent/internal/logger"
	"github.com/motorent/internal/store"
	"go.uber.org/zap"
	"golang.org/x/image/draw"
	"gorm.io/gorm"
)

var (
	// ErrAssetNotImage 表示上传的文件不是图片。
	ErrAssetNotImage = errors.New("only image uploads are allowed")
	// ErrAssetTooLarge 表示上传的文件超过大小限制。
	ErrAssetTooLarge = errors.New("upload exceeds the size limit")
)

// AssetService turns an uploaded file into a URL bound to exactly one entity
// field. The resolver does not know which field it targets; the caller
// supplies the post-upload assignment callback, and on any failure the
// callback never runs, leaving the target field untouched.
//
// Upload and commit are two phases of one resource acquisition: a successful
// upload is recorded as staged, and only the owning entity's save promotes it
// to committed. Whatever stays staged belongs to an abandoned edit and can be
// garbage-collected by the asset store.
type AssetService struct {
	store    *store.Client
	db       *gorm.DB
	maxBytes int64
	maxDim   int
	log      *zap.Logger
}

// NewAssetService constructs an AssetService. maxBytes caps the accepted file
// size; images wider or taller than maxDim pixels are downscaled before the
// upload leaves this process.
func NewAssetService(client *store.Client, db *gorm.DB, maxBytes int64, maxDim int) *AssetService {
	if maxBytes <= 0 {
		maxBytes = 8 << 20
	}
	if maxDim <= 0 {
		maxDim = 1920
	}
	return &AssetService{store: client, db: db, maxBytes: maxBytes, maxDim: maxDim, log: logger.Get()}
}

// Upload validates and pushes one file to the store's upload endpoint, stages
// the returned URL in the ledger, and only then hands the URL to assign.
func (s *AssetService) Upload(ctx context.Context, filename string, r io.Reader, assign func(url string)) (string, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", ErrAssetTooLarge
	}

	// 检查文件类型，只允许图片
	contentType := http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrAssetNotImage
	}

	data = s.downscale(data)

	// 生成唯一文件名
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = extensionFor(contentType)
	}
	remoteName := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	url, err := s.store.Upload(ctx, remoteName, data)
	if err != nil {
		return "", err
	}

	if err := s.recordStaged(url); err != nil {
		// 台账写入失败不阻断上传结果，但要留下日志供 GC 对账
		s.log.Warn("failed to record staged asset", zap.String("url", url), zap.Error(err))
	}

	if assign != nil {
		assign(url)
	}
	return url, nil
}

// Commit marks the given URLs as committed; call it after the entity holding
// them has been saved successfully. Unknown URLs are ignored.
func (s *AssetService) Commit(urls ...string) error {
	for _, url := range urls {
		trimmed := strings.TrimSpace(url)
		if trimmed == "" {
			continue
		}
		if err := s.db.Model(&ledger.StagedAsset{}).
			Where("url = ?", trimmed).
			Update("status", ledger.StatusCommitted).Error; err != nil {
			return fmt.Errorf("commit asset %s: %w", trimmed, err)
		}
	}
	return nil
}

// StagedBefore returns assets still staged at the cutoff, the candidates the
// asset store may garbage-collect.
func (s *AssetService) StagedBefore(cutoff time.Time) ([]ledger.StagedAsset, error) {
	var assets []ledger.StagedAsset
	if err := s.db.
		Where("status = ? AND created_at < ?", ledger.StatusStaged, cutoff).
		Order("created_at asc").
		Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

func (s *AssetService) recordStaged(url string) error {
	asset := ledger.StagedAsset{
		ID:     uuid.New().String(),
		URL:    url,
		Status: ledger.StatusStaged,
	}
	return s.db.Create(&asset).Error
}

// downscale re-encodes images larger than maxDim on either axis. Anything
// that does not decode is passed through untouched; the store has the final
// say on what it accepts.
func (s *AssetService) downscale(data []byte) []byte {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= s.maxDim && height <= s.maxDim {
		return data
	}

	scale := float64(s.maxDim) / float64(width)
	if height > width {
		scale = float64(s.maxDim) / float64(height)
	}
	dstW := int(float64(width) * scale)
	dstH := int(float64(height) * scale)
	if dstW < 1 {
		dstW = 1
	}
	if dstH < 1 {
		dstH = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Over, nil)

	var buf bytes.Buffer
	switch format {
	case "png":
		if err := png.Encode(&buf, dst); err != nil {
			return data
		}
	default:
		if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: 85}); err != nil {
			return data
		}
	}
	return buf.Bytes()
}

func extensionFor(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
