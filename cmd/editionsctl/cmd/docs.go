package cmd

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"editions/docs"
)

const flagListen = "listen"

func docsCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Serve the OpenAPI description of the editions REST routes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rtr := mux.NewRouter()
			docs.RegisterOpenAPIService("editions", rtr)

			srv := &http.Server{
				Addr:              v.GetString(flagListen),
				Handler:           rtr,
				ReadHeaderTimeout: 5 * time.Second,
			}
			cmd.Printf("serving docs on %s\n", srv.Addr)
			return srv.ListenAndServe()
		},
	}
	cmd.Flags().String(flagListen, "127.0.0.1:8088", "address to serve on")
	return cmd
}
