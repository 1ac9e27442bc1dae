package agendasvc

import (
	"context"
	"net/url"
	"strconv"

	"riavet-admin/internal/domain/veterinarians"
	"riavet-admin/internal/platform/httpclient"
)

const veterinariansPath = "/veterinarians"

type VeterinariansClient struct {
	http *httpclient.Client
}

func NewVeterinariansClient(c *httpclient.Client) *VeterinariansClient {
	return &VeterinariansClient{http: c}
}

func (c *VeterinariansClient) List(ctx context.Context, onlyActive *bool) ([]veterinarians.Veterinarian, error) {
	params := map[string]string{}
	if onlyActive != nil {
		params["onlyActive"] = strconv.FormatBool(*onlyActive)
	}
	var out []veterinarians.Veterinarian
	err := c.http.Get(ctx, httpclient.WithQuery(veterinariansPath, params), &out)
	return out, err
}

func (c *VeterinariansClient) GetByID(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	var out veterinarians.Veterinarian
	err := c.http.Get(ctx, veterinariansPath+"/"+url.PathEscape(id), &out)
	return out, err
}

func (c *VeterinariansClient) GetByEmail(ctx context.Context, email string) (veterinarians.Veterinarian, error) {
	var out veterinarians.Veterinarian
	err := c.http.Get(ctx, veterinariansPath+"/email/"+url.PathEscape(email), &out)
	return out, err
}

func (c *VeterinariansClient) Create(ctx context.Context, in veterinarians.Input) (veterinarians.Veterinarian, error) {
	var out veterinarians.Veterinarian
	err := c.http.Post(ctx, veterinariansPath, in, &out)
	return out, err
}

func (c *VeterinariansClient) Update(ctx context.Context, id string, in veterinarians.Input) (veterinarians.Veterinarian, error) {
	var out veterinarians.Veterinarian
	err := c.http.Put(ctx, veterinariansPath+"/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *VeterinariansClient) Deactivate(ctx context.Context, id string) (veterinarians.Veterinarian, error) {
	var out veterinarians.Veterinarian
	err := c.http.Patch(ctx, veterinariansPath+"/"+url.PathEscape(id)+"/deactivate", nil, &out)
	return out, err
}

func (c *VeterinariansClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, veterinariansPath+"/"+url.PathEscape(id))
}
