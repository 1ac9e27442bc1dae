// Package recordsvc habla con el servicio de registros clínicos.
package recordsvc

import (
	"context"
	"net/url"

	"riavet-admin/internal/domain/records"
	"riavet-admin/internal/platform/httpclient"
)

const recordsPath = "/api/v1/records"

type RecordsClient struct {
	http *httpclient.Client
}

func NewRecordsClient(c *httpclient.Client) *RecordsClient {
	return &RecordsClient{http: c}
}

func (c *RecordsClient) List(ctx context.Context, q records.Query) ([]records.ClinicalRecord, error) {
	var out []records.ClinicalRecord
	err := c.http.Get(ctx, httpclient.WithQuery(recordsPath, map[string]string{
		"patientId": q.PatientID,
		"status":    string(q.Status),
	}), &out)
	return out, err
}

func (c *RecordsClient) ListByVeterinarian(ctx context.Context, veterinarianID string) ([]records.ClinicalRecord, error) {
	var out []records.ClinicalRecord
	err := c.http.Get(ctx, recordsPath+"/veterinarian/"+url.PathEscape(veterinarianID), &out)
	return out, err
}

func (c *RecordsClient) GetByID(ctx context.Context, id string) (records.ClinicalRecord, error) {
	var out records.ClinicalRecord
	err := c.http.Get(ctx, recordsPath+"/"+url.PathEscape(id), &out)
	return out, err
}

func (c *RecordsClient) Create(ctx context.Context, in records.Input) (records.ClinicalRecord, error) {
	var out records.ClinicalRecord
	err := c.http.Post(ctx, recordsPath, in, &out)
	return out, err
}

func (c *RecordsClient) Update(ctx context.Context, id string, in records.Input) (records.ClinicalRecord, error) {
	var out records.ClinicalRecord
	err := c.http.Put(ctx, recordsPath+"/"+url.PathEscape(id), in, &out)
	return out, err
}

func (c *RecordsClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, recordsPath+"/"+url.PathEscape(id))
}
