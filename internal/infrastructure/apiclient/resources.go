package apiclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"

	"github.com/resourcehub/portal/internal/core/domain"
)

func (c *Client) ListResources(ctx context.Context, p ListParams) (*domain.ResourceList, error) {
	var out domain.ResourceList
	req := request{op: "list resources", method: http.MethodGet, path: "/resources", query: resourceDefaults(p).values()}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetResource(ctx context.Context, id uint) (*domain.Resource, error) {
	var out domain.Resource
	if err := c.do(ctx, request{op: "get resource", method: http.MethodGet, path: idPath("/resources/%d", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ResourceCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, request{op: "resource categories", method: http.MethodGet, path: "/resources/categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) SearchResources(ctx context.Context, p ListParams) (*domain.ResourceList, error) {
	var out domain.ResourceList
	req := request{op: "search resources", method: http.MethodGet, path: "/resources/search", query: p.values()}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateResource(ctx context.Context, in domain.ResourceInput) (*domain.Resource, error) {
	var out domain.Resource
	if err := c.do(ctx, request{op: "create resource", method: http.MethodPost, path: "/resources", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateResource(ctx context.Context, id uint, in domain.ResourceInput) (*domain.Resource, error) {
	var out domain.Resource
	req := request{op: "update resource", method: http.MethodPut, path: idPath("/resources/%d", id), body: in}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteResource(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "delete resource", method: http.MethodDelete, path: idPath("/resources/%d", id)}, nil)
}

// MyResources lists the resources the session's user uploaded.
func (c *Client) MyResources(ctx context.Context, p ListParams) (*domain.ResourceList, error) {
	var out domain.ResourceList
	req := request{op: "user resources", method: http.MethodGet, path: "/user/resources", query: p.values()}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) LikeResource(ctx context.Context, id uint) (*domain.Reaction, error) {
	var out domain.Reaction
	if err := c.do(ctx, request{op: "like resource", method: http.MethodPost, path: idPath("/resources/%d/like", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) FavoriteResource(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "favorite resource", method: http.MethodPost, path: idPath("/resources/%d/favorite", id)}, nil)
}

func (c *Client) CommentResource(ctx context.Context, id uint, content string) (*domain.Comment, error) {
	var out domain.Comment
	req := request{
		op:     "comment resource",
		method: http.MethodPost,
		path:   idPath("/resources/%d/comments", id),
		body:   map[string]string{"content": content},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload is a file plus the metadata submitted with it.
type Upload struct {
	Filename string
	File     io.Reader
	domain.ResourceInput
}

// ErrNoFile is returned by UploadResource when Upload.File is nil.
var ErrNoFile = errors.New("apiclient: upload has no file")

// UploadResource sends a multipart form. POST /resources/upload
func (c *Client) UploadResource(ctx context.Context, up Upload) (*domain.Resource, error) {
	if up.File == nil {
		return nil, ErrNoFile
	}
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":           up.Title,
		"description":     up.Description,
		"category_id":     strconv.FormatUint(uint64(up.CategoryID), 10),
		"points_required": strconv.Itoa(up.PointsRequired),
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("upload resource: write field %s: %w", k, err)
		}
	}
	fw, err := mw.CreateFormFile("file", up.Filename)
	if err != nil {
		return nil, fmt.Errorf("upload resource: create form file: %w", err)
	}
	if _, err := io.Copy(fw, up.File); err != nil {
		return nil, fmt.Errorf("upload resource: read file: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("upload resource: close form: %w", err)
	}

	var out domain.Resource
	req := request{
		op:          "upload resource",
		method:      http.MethodPost,
		path:        "/resources/upload",
		raw:         &buf,
		contentType: mw.FormDataContentType(),
		long:        true,
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadedFiles(ctx context.Context) ([]domain.UploadedFile, error) {
	var out []domain.UploadedFile
	if err := c.do(ctx, request{op: "uploaded files", method: http.MethodGet, path: "/upload/files"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteUploadedFile(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "delete uploaded file", method: http.MethodDelete, path: idPath("/upload/files/%d", id)}, nil)
}

// Download streams a resource's file. The caller must close the body.
func (c *Client) Download(ctx context.Context, id uint) (*domain.Download, error) {
	resp, cancel, err := c.send(ctx, request{op: "download", method: http.MethodGet, path: idPath("/download/%d", id), long: true})
	if err != nil {
		return nil, err
	}

	name := ""
	if _, params, perr := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); perr == nil {
		name = params["filename"]
		if unescaped, uerr := url.PathUnescape(name); uerr == nil {
			name = unescaped
		}
	}

	return &domain.Download{
		Filename:    name,
		ContentType: resp.Header.Get("Content-Type"),
		Size:        resp.ContentLength,
		Body:        &cancelOnClose{ReadCloser: resp.Body, cancel: cancel},
	}, nil
}

// cancelOnClose releases the request context together with the body.
type cancelOnClose struct {
	io.ReadCloser
	cancel func()
}

func (r *cancelOnClose) Close() error {
	err := r.ReadCloser.Close()
	r.cancel()
	return err
}
