// Package patientsvc habla con el servicio de pacientes (pacientes y propietarios).
package patientsvc

import (
	"context"
	"net/url"

	"riavet-admin/internal/domain/patients"
	"riavet-admin/internal/platform/httpclient"
)

const patientsPath = "/api/v1/patients"

type PatientsClient struct {
	http *httpclient.Client
}

func NewPatientsClient(c *httpclient.Client) *PatientsClient {
	return &PatientsClient{http: c}
}

type mergeRequest struct {
	TargetPatientID string `json:"targetPatientId"`
}

func (c *PatientsClient) List(ctx context.Context, search string) ([]patients.Patient, error) {
	var out []patients.Patient
	err := c.http.Get(ctx, httpclient.WithQuery(patientsPath, map[string]string{"search": search}), &out)
	return out, err
}

func (c *PatientsClient) GetByID(ctx context.Context, id string) (patients.Patient, error) {
	var out patients.Patient
	err := c.http.Get(ctx, patientsPath+"/"+url.PathEscape(id), &out)
	return out, err
}

func (c *PatientsClient) Create(ctx context.Context, in patients.Input) (patients.Patient, error) {
	var out patients.Patient
	err := c.http.Post(ctx, patientsPath, in, &out)
	return out, err
}

func (c *PatientsClient) Update(ctx context.Context, id string, in patients.Input) (patients.Patient, error) {
	var out patients.Patient
	err := c.http.Put(ctx, patientsPath+"/"+url.PathEscape(id), in, &out)
	return out, err
}

// Merge: POST /patients/{source}/merge {targetPatientId}. El cuerpo de la
// respuesta (paciente destino) no se usa.
func (c *PatientsClient) Merge(ctx context.Context, sourceID, targetID string) error {
	return c.http.Post(ctx, patientsPath+"/"+url.PathEscape(sourceID)+"/merge", mergeRequest{TargetPatientID: targetID}, nil)
}
