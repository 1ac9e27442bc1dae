// Package agendasvc habla con el servicio de agenda (citas y veterinarios).
package agendasvc

import (
	"context"
	"net/url"

	"riavet-admin/internal/domain/appointments"
	"riavet-admin/internal/platform/httpclient"
)

const appointmentsPath = "/appointments"

type AppointmentsClient struct {
	http *httpclient.Client
}

func NewAppointmentsClient(c *httpclient.Client) *AppointmentsClient {
	return &AppointmentsClient{http: c}
}

func (c *AppointmentsClient) List(ctx context.Context, veterinarianID string) ([]appointments.Appointment, error) {
	var out []appointments.Appointment
	err := c.http.Get(ctx, httpclient.WithQuery(appointmentsPath, map[string]string{"veterinarianId": veterinarianID}), &out)
	return out, err
}

func (c *AppointmentsClient) GetByID(ctx context.Context, id string) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := c.http.Get(ctx, appointmentsPath+"/"+url.PathEscape(id), &out)
	return out, err
}

func (c *AppointmentsClient) Create(ctx context.Context, in appointments.Input) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := c.http.Post(ctx, appointmentsPath, in, &out)
	return out, err
}

func (c *AppointmentsClient) Update(ctx context.Context, id string, in appointments.Input) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := c.http.Put(ctx, appointmentsPath+"/"+url.PathEscape(id), in, &out)
	return out, err
}

// Cancel: PATCH sin body, devuelve la cita cancelada.
func (c *AppointmentsClient) Cancel(ctx context.Context, id string) (appointments.Appointment, error) {
	var out appointments.Appointment
	err := c.http.Patch(ctx, appointmentsPath+"/"+url.PathEscape(id)+"/cancel", nil, &out)
	return out, err
}

func (c *AppointmentsClient) Delete(ctx context.Context, id string) error {
	return c.http.Delete(ctx, appointmentsPath+"/"+url.PathEscape(id))
}
