package cli

import (
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/cobra"

	"github.com/firecalc/compound-calculator/internal/server"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the projection engine as a JSON API",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	srv := server.New(newEngine())
	fmt.Fprintf(os.Stderr, "listening on %s\n", flagAddr)
	return http.ListenAndServe(flagAddr, srv.Router())
}
