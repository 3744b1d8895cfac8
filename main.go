package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dovewaysmall/api2-smallsmall-sub000/migrations"
	"github.com/dovewaysmall/api2-smallsmall-sub000/seed"
	"github.com/dovewaysmall/api2-smallsmall-sub000/utils"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the back-office API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.ConnectDatabase()

			if err := migrations.Run(); err != nil {
				return err
			}
			if err := seed.SeedAdmin(); err != nil {
				return err
			}

			r := gin.Default()

			r.Use(cors.New(cors.Config{
				AllowOrigins:     []string{os.Getenv("CORS_ORIGIN")},
				AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
				AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
				ExposeHeaders:    []string{"Content-Length"},
				AllowCredentials: true,
				MaxAge:           12 * time.Hour,
			}))

			registerRoutes(r)

			port := os.Getenv("PORT")
			if port == "" {
				port = "8080"
			}

			utils.Log.Infof("Back-office API listening on :%s", port)
			return r.Run(":" + port)
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the initial admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			utils.ConnectDatabase()
			if err := migrations.Run(); err != nil {
				return err
			}
			return seed.SeedAdmin()
		},
	}
}

func main() {
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "backoffice",
		Short: "Rental platform back-office API",
	}

	rootCmd.AddCommand(serveCmd(), seedCmd())

	// Bare invocation runs the server, matching how the service is deployed.
	if len(os.Args) == 1 {
		rootCmd.SetArgs([]string{"serve"})
	}

	if err := rootCmd.Execute(); err != nil {
		utils.Log.Fatal(err)
	}
}
