package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os/signal"

	"github.com/godbus/dbus/v5"
	"golang.org/x/sys/unix"

	"github.com/damonto/modemmanager-mock/internal/pkg/config"
	"github.com/damonto/modemmanager-mock/internal/pkg/dbusmock"
	"github.com/damonto/modemmanager-mock/internal/pkg/template"
)

func init() {
	flag.StringVar(&config.C.Bus, "bus", config.BusSystem, "bus to own the ModemManager name on: system or session")
	flag.StringVar(&config.C.Address, "address", "", "connect to this bus address instead of -bus")
	flag.Var(&config.C.Parameters, "p", "template parameter as Key=Value or a JSON object, repeatable")
	flag.BoolVar(&config.C.Verbose, "verbose", false, "enable verbose mode")
	flag.Parse()
}

func main() {
	if config.C.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	if err := config.C.IsValid(); err != nil {
		slog.Error("invalid configuration", "error", err)
		return
	}

	mock := dbusmock.New(template.MainObjectPath)
	conn, err := connect(mock)
	if err != nil {
		slog.Error("failed to connect to bus", "error", err)
		panic(err)
	}
	defer conn.Close()
	mock.Attach(conn)

	if err := template.Load(mock, template.Parameters(config.C.Parameters)); err != nil {
		slog.Error("failed to load template", "error", err)
		panic(err)
	}

	reply, err := conn.RequestName(template.BusName, dbus.NameFlagDoNotQueue)
	if err != nil {
		slog.Error("failed to request bus name", "name", template.BusName, "error", err)
		panic(err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		slog.Error("bus name already taken", "name", template.BusName)
		return
	}
	slog.Info("mock is ready", "name", template.BusName, "bus", config.C.Bus, "address", config.C.Address)

	ctx, cancel := signal.NotifyContext(context.Background(), unix.SIGINT, unix.SIGTERM)
	defer cancel()
	<-ctx.Done()
	slog.Info("shutting down")
}

func connect(handler dbus.Handler) (*dbus.Conn, error) {
	if config.C.Address != "" {
		return dbus.Connect(config.C.Address, dbus.WithHandler(handler))
	}
	switch config.C.Bus {
	case config.BusSession:
		return dbus.ConnectSessionBus(dbus.WithHandler(handler))
	case config.BusSystem:
		return dbus.ConnectSystemBus(dbus.WithHandler(handler))
	}
	return nil, fmt.Errorf("%w: %s", config.ErrInvalidBus, config.C.Bus)
}
