package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/motorent/internal/model"
)

// ErrUploadNoURL 表示上传接口没有返回可用的 URL。
var ErrUploadNoURL = errors.New("upload response contained no url")

// Upload sends one file to the store's upload endpoint under the fixed field
// name `file` and returns the opaque URL the store assigned. The caller
// decides which entity field the URL lands in; this client does not know.
func (c *Client) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("write upload body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("finish upload form: %w", err)
	}

	var result struct {
		URL string `json:"url"`
	}
	if err := c.PostMultipart(ctx, model.PathUpload, &body, writer.FormDataContentType(), &result); err != nil {
		return "", err
	}
	if result.URL == "" {
		return "", ErrUploadNoURL
	}
	return result.URL, nil
}
