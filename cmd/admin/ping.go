package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"
	"time"

	"riavet-admin/internal/config"
	"riavet-admin/internal/platform/httpclient"

	"github.com/spf13/cobra"
)

func newPingCmd(load func() (*config.Config, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Prueba la conexión con cada backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			return ping(cmd.Context(), cfg.Backends, cfg.HTTPTimeout, cmd.OutOrStdout())
		},
	}
}

// ping considera vivo un backend si responde algo, aunque sea 404: sólo
// importa que haya respuesta HTTP.
func ping(ctx context.Context, backends config.BackendsConfig, timeout time.Duration, out io.Writer) error {
	all := backends.All()
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	slices.Sort(names)

	c := httpclient.New(timeout)
	var failed []string
	for _, name := range names {
		url := all[name]
		start := time.Now()
		err := c.Get(ctx, url, nil)

		var apiErr *httpclient.APIError
		switch {
		case err == nil:
			fmt.Fprintf(out, "%-13s ok      %s (%s)\n", name, url, time.Since(start).Round(time.Millisecond))
		case errors.As(err, &apiErr):
			fmt.Fprintf(out, "%-13s ok      %s (status %d)\n", name, url, apiErr.Status)
		default:
			fmt.Fprintf(out, "%-13s down    %s: %v\n", name, url, err)
			failed = append(failed, name)
		}
	}

	if len(failed) > 0 {
		return fmt.Errorf("backends unreachable: %v", failed)
	}
	return nil
}
