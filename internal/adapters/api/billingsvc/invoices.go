// Package billingsvc habla con el servicio de facturación.
package billingsvc

import (
	"context"
	"net/url"

	"riavet-admin/internal/domain/invoices"
	"riavet-admin/internal/platform/httpclient"
)

const invoicesPath = "/invoices"

type InvoicesClient struct {
	http *httpclient.Client
}

func NewInvoicesClient(c *httpclient.Client) *InvoicesClient {
	return &InvoicesClient{http: c}
}

func (c *InvoicesClient) List(ctx context.Context, q invoices.Query) ([]invoices.Invoice, error) {
	var out []invoices.Invoice
	err := c.http.Get(ctx, httpclient.WithQuery(invoicesPath, map[string]string{
		"status":    string(q.Status),
		"patientId": q.PatientID,
	}), &out)
	return out, err
}

func (c *InvoicesClient) GetByID(ctx context.Context, id string) (invoices.Invoice, error) {
	var out invoices.Invoice
	err := c.http.Get(ctx, invoicesPath+"/"+url.PathEscape(id), &out)
	return out, err
}

func (c *InvoicesClient) Create(ctx context.Context, in invoices.Input) (invoices.Invoice, error) {
	var out invoices.Invoice
	err := c.http.Post(ctx, invoicesPath, in, &out)
	return out, err
}

func (c *InvoicesClient) Update(ctx context.Context, id string, in invoices.UpdateInput) (invoices.Invoice, error) {
	var out invoices.Invoice
	err := c.http.Put(ctx, invoicesPath+"/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *InvoicesClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, invoicesPath+"/"+url.PathEscape(id))
}
