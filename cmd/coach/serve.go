package coach

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/darrylrachel/blackheart-coach-v0/internal/api"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		return withDB(func(sqldb *sql.DB) error {
			port := strings.TrimSpace(servePort)
			if port == "" {
				port = os.Getenv("PORT")
			}
			if port == "" {
				port = "8080"
			}

			handler := api.NewHandler(sqldb)
			srv := api.NewServer(":"+port, handler.Router())
			log.Printf("Server starting on port %s", port)
			if err := srv.ListenAndServe(); err != nil {
				return fmt.Errorf("http server: %w", err)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (defaults to $PORT, then 8080)")
}
