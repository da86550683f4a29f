package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:           "catalog",
	Short:         "Catalog API for products and categories",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

func initConfig() {
	// A missing .env is fine; real environment variables take precedence.
	_ = godotenv.Load()

	viper.AutomaticEnv()

	viper.SetDefault("HOST", "0.0.0.0")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("STORE_DRIVER", "mongo")
	viper.SetDefault("MONGO_DATABASE", "catalog")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "text")
	viper.SetDefault("RATE_LIMIT_READ_RPS", 100)
	viper.SetDefault("RATE_LIMIT_WRITE_RPS", 20)
	viper.SetDefault("MAX_REQUEST_BODY_BYTES", 1048576)
}
