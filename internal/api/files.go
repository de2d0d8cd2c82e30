package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"
)

// File describes an uploaded attachment.
type File struct {
	ID         string    `json:"id"`
	Filename   string    `json:"filename"`
	FileType   string    `json:"file_type"`
	FileSize   int64     `json:"file_size"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// UploadFile sends a local file as multipart form data. The server reply
// carries no fields the client uses, so only the status matters.
func (c *Client) UploadFile(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return fmt.Errorf("building upload form: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("finishing upload form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/files/upload", &buf)
	if err != nil {
		return fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.do(req, nil)
}

// ListFiles returns the user's uploaded files.
func (c *Client) ListFiles(ctx context.Context) ([]File, error) {
	var resp struct {
		Files []File `json:"files"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/files", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Files, nil
}

// DeleteFile removes an uploaded file.
func (c *Client) DeleteFile(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/files/"+url.PathEscape(id), nil, nil)
}
