// chess-marks serves highlight annotations for chessboard squares.
//
// Usage:
//
//	chess-marks serve      - Start the HTTP server
//	chess-marks labels     - Print the file and rank labels
//	chess-marks next       - Print the color a click would produce
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/NikolaTosic-sudo/chess-marks/internal/annotations"
	"github.com/NikolaTosic-sudo/chess-marks/internal/config"
	"github.com/NikolaTosic-sudo/chess-marks/internal/hub"
	"github.com/NikolaTosic-sudo/chess-marks/internal/store"
)

var (
	flagPort     string
	flagDBDriver string
	flagDBURL    string
	flagPalette  string
	flagTokenTTL time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "chess-marks",
	Short: "Highlight annotations for chessboard squares",
	Long: `chess-marks keeps colored highlights on the squares of shared boards.

A plain click marks a square red, shift green, ctrl yellow and alt blue.
Clicking again with the same key clears the mark.

Examples:
  chess-marks serve --port 8080
  chess-marks labels
  chess-marks next --shift --current green`,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the annotation server",
	Long: `Start the HTTP server. Settings come from the environment (and .env):
PORT, DB_DRIVER (sqlite or postgres), DB_URL, SECRET, PALETTE and LOG_LEVEL.
Flags override the environment.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagPort, "port", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&flagDBDriver, "db-driver", "", "Database driver: sqlite or postgres (overrides DB_DRIVER)")
	serveCmd.Flags().StringVar(&flagDBURL, "db-url", "", "Database DSN (overrides DB_URL)")
	serveCmd.Flags().StringVar(&flagPalette, "palette", "", "Palette YAML file (overrides PALETTE)")
	serveCmd.Flags().DurationVar(&flagTokenTTL, "token-ttl", 7*24*time.Hour, "Lifetime of board tokens")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(labelsCmd)
	rootCmd.AddCommand(nextCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	override(&cfg.Port, flagPort)
	override(&cfg.DBDriver, flagDBDriver)
	override(&cfg.DBURL, flagDBURL)
	override(&cfg.PalettePath, flagPalette)

	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	log.SetLevel(level)

	palette, err := config.LoadPalette(cfg.PalettePath)
	if err != nil {
		return err
	}

	ctx := context.Background()
	db, err := store.Open(ctx, cfg.DBDriver, cfg.DBURL)
	if err != nil {
		return err
	}
	defer db.Close()

	app := appConfig{
		annotations: annotations.New(db),
		hub:         hub.New(),
		palette:     palette,
		secret:      cfg.Secret,
		tokenTTL:    flagTokenTTL,
	}

	mux := http.NewServeMux()
	app.registerAllHandlers(mux)

	log.Info("listening", "port", cfg.Port, "db", cfg.DBDriver)
	return http.ListenAndServe(fmt.Sprintf(":%v", cfg.Port), mux)
}

func override(dst *string, flag string) {
	if flag != "" {
		*dst = flag
	}
}
