package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/service"
)

// UploadImage 处理后台图片上传：校验、必要时缩放，然后转发到内容存储。
// 返回的 URL 先记为 staged，直到承载它的实体保存成功才算 committed。
func (a *API) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respondError(c, http.StatusBadRequest, "no file attached")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respondError(c, http.StatusBadRequest, "failed to read the uploaded file")
		return
	}
	defer file.Close()

	url, err := a.assets(c).Upload(c.Request.Context(), fileHeader.Filename, file, nil)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAssetNotImage):
			respondError(c, http.StatusBadRequest, "only image uploads are allowed")
		case errors.Is(err, service.ErrAssetTooLarge):
			respondError(c, http.StatusRequestEntityTooLarge, "the image is too large")
		default:
			a.respondServiceError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

// ListStagedAssets 列出仍处于 staged 状态的上传，供资产存储做垃圾回收对账。
func (a *API) ListStagedAssets(c *gin.Context) {
	staged, err := a.assets(c).StagedBefore(cutoffFromQuery(c))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staged": staged})
}
