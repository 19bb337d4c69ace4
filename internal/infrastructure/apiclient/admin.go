package apiclient

import (
	"context"
	"net/http"

	"github.com/resourcehub/portal/internal/core/domain"
)

func (c *Client) AdminUsers(ctx context.Context, p ListParams) (*domain.UserList, error) {
	var out domain.UserList
	if err := c.do(ctx, request{op: "admin users", method: http.MethodGet, path: "/admin/users", query: p.values()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteUser(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "admin delete user", method: http.MethodDelete, path: idPath("/admin/users/%d", id)}, nil)
}

func (c *Client) AdminUpdateUserRole(ctx context.Context, id uint, role string) error {
	req := request{
		op:     "admin update role",
		method: http.MethodPut,
		path:   idPath("/admin/users/%d/role", id),
		body:   map[string]string{"role": role},
	}
	return c.do(ctx, req, nil)
}

func (c *Client) AdminResources(ctx context.Context, p ListParams) (*domain.ResourceList, error) {
	var out domain.ResourceList
	if err := c.do(ctx, request{op: "admin resources", method: http.MethodGet, path: "/admin/resources", query: p.values()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminReviewResource(ctx context.Context, id uint, review domain.Review) (*domain.Resource, error) {
	var out domain.Resource
	req := request{op: "admin review resource", method: http.MethodPut, path: idPath("/admin/resources/%d/review", id), body: review}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteResource(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "admin delete resource", method: http.MethodDelete, path: idPath("/admin/resources/%d", id)}, nil)
}

func (c *Client) AdminTopics(ctx context.Context, p ListParams) (*domain.TopicList, error) {
	var out domain.TopicList
	if err := c.do(ctx, request{op: "admin topics", method: http.MethodGet, path: "/admin/forum/topics", query: p.values()}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminDeleteTopic(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "admin delete topic", method: http.MethodDelete, path: idPath("/admin/forum/topics/%d", id)}, nil)
}

func (c *Client) AdminPointRecords(ctx context.Context, p ListParams) (*domain.PointRecordList, error) {
	var out domain.PointRecordList
	req := request{op: "admin point records", method: http.MethodGet, path: "/admin/points/records", query: p.values()}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AdminAdjustPoints(ctx context.Context, adj domain.PointsAdjustment) error {
	return c.do(ctx, request{op: "admin adjust points", method: http.MethodPost, path: "/admin/points/adjust", body: adj}, nil)
}

// StatsScope selects one of the dashboard statistics endpoints.
type StatsScope string

const (
	StatsOverview  StatsScope = ""
	StatsUsers     StatsScope = "users"
	StatsResources StatsScope = "resources"
	StatsForum     StatsScope = "forum"
)

func (c *Client) AdminStats(ctx context.Context, scope StatsScope) (domain.Stats, error) {
	path := "/admin/stats"
	if scope != StatsOverview {
		path += "/" + string(scope)
	}
	var out domain.Stats
	if err := c.do(ctx, request{op: "admin stats", method: http.MethodGet, path: path}, &out); err != nil {
		return nil, err
	}
	return out, nil
}
