// @title Student Portal API
// @version 1.0
// @description CRUD and search for student records stored in MongoDB.
// @BasePath /api
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "student-portal/docs"
	"student-portal/src/config"
	"student-portal/src/database"
	"student-portal/src/logger"
	"student-portal/src/routes"
	"student-portal/src/services/students"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

var (
	port    string
	envFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:           "student-portal",
	Short:         "Student records REST API backed by MongoDB",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return run(ctx)
	},
}

func init() {
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides APP_PORT)")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "dotenv file to load (default .env)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var envFiles []string
	if envFile != "" {
		envFiles = append(envFiles, envFile)
	}
	cfg := config.Load(envFiles...)
	cfg.ApplyFlags(port, verbose)
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	if !cfg.EnvFileLoaded {
		log.Warn("No .env file found, using environment only")
	}
	for _, warning := range cfg.Warnings {
		log.Warn(warning)
	}

	// เชื่อมต่อกับ MongoDB ครั้งเดียว ใช้ร่วมกันทุก request
	client, err := database.ConnectMongoDB(ctx, cfg.MongoURI, log)
	if err != nil {
		return fmt.Errorf("error connecting to the database: %w", err)
	}
	defer database.Disconnect(context.Background(), client, log)

	repo := database.NewStudentRepository(database.GetCollection(client, cfg.MongoDatabase, cfg.MongoCollection))
	app := routes.NewApp(routes.AppOptions{
		AllowedOrigins: cfg.AllowedOrigins,
		Students:       students.NewService(repo, cfg.RequestTimeout),
		Logger:         log,
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Server is running", zap.String("port", cfg.Port))
		errCh <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return app.ShutdownWithContext(shutdownCtx)
}
