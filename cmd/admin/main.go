// @title        riavet-admin
// @version      1.0
// @description  Consola de administración de la clínica veterinaria.
// @BasePath     /
package main

import (
	"fmt"
	"os"

	"riavet-admin/internal/config"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configFile string

	root := &cobra.Command{
		Use:           "admin",
		Short:         "Consola de administración (pacientes, agenda, facturación, historias clínicas)",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "archivo de configuración (yaml/json)")

	load := func() (*config.Config, error) {
		return config.Load(configFile)
	}

	serve := newServeCmd(load)
	root.AddCommand(serve, newPingCmd(load))

	// sin subcomando => serve
	root.RunE = serve.RunE
	return root
}
