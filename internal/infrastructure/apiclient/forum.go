package apiclient

import (
	"context"
	"net/http"

	"github.com/resourcehub/portal/internal/core/domain"
)

func (c *Client) ForumCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, request{op: "forum categories", method: http.MethodGet, path: "/forum/categories"}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) ListTopics(ctx context.Context, p ListParams) (*domain.TopicList, error) {
	var out domain.TopicList
	req := request{op: "list topics", method: http.MethodGet, path: "/forum/topics", query: p.values()}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GetTopic(ctx context.Context, id uint) (*domain.Topic, error) {
	var out domain.Topic
	if err := c.do(ctx, request{op: "get topic", method: http.MethodGet, path: idPath("/forum/topics/%d", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateTopic(ctx context.Context, in domain.TopicInput) (*domain.Topic, error) {
	var out domain.Topic
	if err := c.do(ctx, request{op: "create topic", method: http.MethodPost, path: "/forum/topics", body: in}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateTopic(ctx context.Context, id uint, in domain.TopicInput) (*domain.Topic, error) {
	var out domain.Topic
	req := request{op: "update topic", method: http.MethodPut, path: idPath("/forum/topics/%d", id), body: in}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteTopic(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "delete topic", method: http.MethodDelete, path: idPath("/forum/topics/%d", id)}, nil)
}

func (c *Client) CreateReply(ctx context.Context, topicID uint, content string) (*domain.Reply, error) {
	var out domain.Reply
	req := request{
		op:     "create reply",
		method: http.MethodPost,
		path:   idPath("/forum/topics/%d/replies", topicID),
		body:   map[string]string{"content": content},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateReply(ctx context.Context, id uint, content string) (*domain.Reply, error) {
	var out domain.Reply
	req := request{
		op:     "update reply",
		method: http.MethodPut,
		path:   idPath("/forum/replies/%d", id),
		body:   map[string]string{"content": content},
	}
	if err := c.do(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReply(ctx context.Context, id uint) error {
	return c.do(ctx, request{op: "delete reply", method: http.MethodDelete, path: idPath("/forum/replies/%d", id)}, nil)
}

func (c *Client) LikeTopic(ctx context.Context, id uint) (*domain.Reaction, error) {
	var out domain.Reaction
	if err := c.do(ctx, request{op: "like topic", method: http.MethodPost, path: idPath("/forum/topics/%d/like", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DislikeTopic(ctx context.Context, id uint) (*domain.Reaction, error) {
	var out domain.Reaction
	if err := c.do(ctx, request{op: "dislike topic", method: http.MethodPost, path: idPath("/forum/topics/%d/dislike", id)}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
