package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Khanr7433/portfolio/internal/catalog"
	"github.com/Khanr7433/portfolio/internal/config"
	"github.com/Khanr7433/portfolio/internal/contact"
	"github.com/Khanr7433/portfolio/internal/content"
	"github.com/Khanr7433/portfolio/internal/featured"
	"github.com/Khanr7433/portfolio/internal/logging"
	"github.com/Khanr7433/portfolio/internal/projects"
	"github.com/Khanr7433/portfolio/internal/server"
)

const shutdownTimeout = 10 * time.Second

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Personal portfolio site",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCmd(),
		newProjectsCmd(),
		newFeaturedCmd(),
		newValidateCmd(),
	)
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.LogLevel)
			if err != nil {
				return fmt.Errorf("build logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg, logger)
		},
	}
}

func serve(ctx context.Context, cfg config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	relay := contact.RelayConfig{
		Endpoint:   cfg.Relay.Endpoint,
		ServiceID:  cfg.Relay.ServiceID,
		TemplateID: cfg.Relay.TemplateID,
		PublicKey:  cfg.Relay.PublicKey,
		ToEmail:    cfg.Relay.ToEmail,
	}
	if !relay.Configured() {
		logger.Warn("email relay credentials missing; contact form submissions will fail")
	}

	srv, err := server.New(server.Deps{
		Config:  cfg,
		Catalog: catalog.Default(),
		Sampler: featured.New(nil),
		Contact: contact.NewClient(relay, cfg.Relay.Timeout, logger),
		Logger:  logger,
		Copy:    pageCopy(),
	})
	if err != nil {
		return err
	}

	httpSrv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", httpSrv.Addr))
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func newProjectsCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List projects the way the all-projects page orders them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()
			list := projects.FilterAndSort(cat, filter)
			printProjects(cmd.OutOrStdout(), cat, list)
			fmt.Fprintln(cmd.OutOrStdout(), projects.Summary(cat, filter, len(list)))
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", projects.FilterAll, `"all", "major", "minor" or a category`)
	return cmd
}

func newFeaturedCmd() *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "featured",
		Short: "Draw a random featured sample",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cat := catalog.Default()
			printProjects(cmd.OutOrStdout(), cat, featured.New(nil).Sample(cat, count))
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", featured.DefaultCount, "number of projects to draw")
	return cmd
}

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check configuration and compiled-in content",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := config.Load(); err != nil {
				return err
			}
			cat, err := catalog.Load()
			if err != nil {
				return err
			}
			site, err := content.Load()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "ok: %d projects, %d jobs, %d schools\n",
				cat.Len(), len(site.Experience), len(site.Education))
			return nil
		},
	}
}

func printProjects(w io.Writer, cat *catalog.Catalog, list []catalog.Project) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTIER\tSTART\tTITLE\tCATEGORY")
	for _, p := range list {
		tier, _ := cat.TierOf(p.ID)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.ID, tier, p.Duration.Start, p.Title, p.Category)
	}
	_ = tw.Flush()
}
