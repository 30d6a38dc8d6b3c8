package commands

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agiangrant/timepicker/config"
	"github.com/agiangrant/timepicker/host/web"
	"github.com/agiangrant/timepicker/internal/logger"
	"github.com/agiangrant/timepicker/internal/watch"
)

// Serve implements the 'timepicker serve' command
func Serve(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	configPath := fs.String("config", config.DefaultFile, "Config file")
	addr := fs.String("addr", "", "Listen address (overrides [server] addr)")
	use24Hour := fs.Bool("24h", false, "Default to 24-hour format when the config leaves it unset")
	watchConfig := fs.Bool("watch", true, "Restyle live dials when the config file changes")
	fs.Parse(args)

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	defer logger.Close()
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	srv, err := web.NewServer(cfg, *use24Hour)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *watchConfig {
		w, err := watch.New(*configPath, func(next config.File) {
			if err := srv.Reload(next); err != nil {
				logger.Warnf("Config reload rejected: %v", err)
			}
		})
		if err != nil {
			logger.Warnf("Config watching disabled: %v", err)
		} else {
			defer w.Close()
			go w.Run(ctx)
		}
	}

	if err := srv.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
