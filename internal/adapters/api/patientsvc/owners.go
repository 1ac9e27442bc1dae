package patientsvc

import (
	"context"
	"net/url"

	"riavet-admin/internal/domain/owners"
	"riavet-admin/internal/platform/httpclient"
)

const ownersPath = "/api/v1/owners"

type OwnersClient struct {
	http *httpclient.Client
}

func NewOwnersClient(c *httpclient.Client) *OwnersClient {
	return &OwnersClient{http: c}
}

func (c *OwnersClient) List(ctx context.Context, search string) ([]owners.Owner, error) {
	var out []owners.Owner
	err := c.http.Get(ctx, httpclient.WithQuery(ownersPath, map[string]string{"search": search}), &out)
	return out, err
}

func (c *OwnersClient) GetByID(ctx context.Context, id string) (owners.Owner, error) {
	var out owners.Owner
	err := c.http.Get(ctx, ownersPath+"/"+url.PathEscape(id), &out)
	return out, err
}

func (c *OwnersClient) Create(ctx context.Context, in owners.Input) (owners.Owner, error) {
	var out owners.Owner
	err := c.http.Post(ctx, ownersPath, in, &out)
	return out, err
}

func (c *OwnersClient) Update(ctx context.Context, id string, in owners.Input) (owners.Owner, error) {
	var out owners.Owner
	err := c.http.Put(ctx, ownersPath+"/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *OwnersClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, ownersPath+"/"+url.PathEscape(id))
}
