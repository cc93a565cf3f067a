package leavemarker

import (
	"context"
	"net/http"
)

// ContactService sends the public contact form; no session required.
type ContactService struct {
	client *Client
}

func (s *ContactService) Send(ctx context.Context, req ContactRequest) error {
	return s.client.do(ctx, http.MethodPost, "/contact", req, nil)
}
