package apiclient

import (
	"context"
	"net/http"

	"github.com/resourcehub/portal/internal/core/domain"
)

func (c *Client) Points(ctx context.Context) (int, error) {
	var out domain.PointsBalance
	if err := c.do(ctx, request{op: "points", method: http.MethodGet, path: "/user/points"}, &out); err != nil {
		return 0, err
	}
	return out.Points, nil
}

func (c *Client) PointsHistory(ctx context.Context, p ListParams) (*domain.PointRecordList, error) {
	var out domain.PointRecordList
	req := request{op: "points history", method: http.MethodGet, path: "/user/points/history", query: p.values()}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
