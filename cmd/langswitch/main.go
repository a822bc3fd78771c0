package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/taglme/langswitch/internal/bridge"
	"github.com/taglme/langswitch/internal/config"
	"github.com/taglme/langswitch/internal/inject"
	"github.com/taglme/langswitch/internal/logging"
	"github.com/taglme/langswitch/internal/notify"
	"github.com/taglme/langswitch/internal/singleinstance"
	"github.com/taglme/langswitch/internal/version"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadConfig(os.Args[1:])
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logManager := logging.NewLogManager(logging.Options{
		ToFile:    cfg.Logging.ToFile,
		Directory: cfg.Logging.Directory,
		Prefix:    version.AppName,
	})
	defer logManager.Close()

	if cfg.Advanced.SingleInstance {
		lock := singleinstance.NewSingleInstance(version.AppName)
		ok, err := lock.TryLock()
		if err != nil {
			return err
		}
		if !ok {
			_, pid, _ := lock.GetRunningInstanceInfo()
			return fmt.Errorf("another instance is already running (pid %d)", pid)
		}
		defer lock.Release()
	}

	injector, err := inject.New(cfg.Injection.Backend, cfg.KeyDelay())
	if err != nil {
		return err
	}

	notificationManager := notify.NewNotificationManager(
		cfg.Notifications.Enabled,
		cfg.Notifications.ShowSuccess,
		cfg.Notifications.ShowErrors,
	)

	server := bridge.NewServer(bridge.Config{
		Host:      cfg.Server.Host,
		Port:      cfg.Server.Port,
		Shortcuts: cfg.Shortcuts,
	}, injector, logManager, notificationManager)

	ln, err := server.Listen()
	if err != nil {
		return err
	}

	logManager.LogInfo("Bridge starting", "version", version.Version, "addr", cfg.Addr(), "backend", cfg.Injection.Backend)
	fmt.Printf("Starting language switcher server (Dynamic Shortcuts) on http://%s\n", ln.Addr())
	fmt.Println("Use Ctrl+C to stop the server.")

	if cfg.Web.OpenStatusPage {
		if err := notify.OpenStatusPage(ln.Addr().String()); err != nil {
			logManager.LogWarning("Could not open status page", "error", err.Error())
		}
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Serve(ctx, ln)
}
