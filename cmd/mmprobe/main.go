// Command mmprobe prints what ModemManager, real or mocked, reports about its
// modems.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/godbus/dbus/v5"

	"github.com/damonto/modemmanager-mock/internal/pkg/config"
	"github.com/damonto/modemmanager-mock/internal/pkg/modem"
)

var modemId string

func init() {
	flag.StringVar(&config.C.Bus, "bus", config.BusSystem, "bus to query: system or session")
	flag.StringVar(&config.C.Address, "address", "", "connect to this bus address instead of -bus")
	flag.StringVar(&modemId, "modem", "", "only show the modem with this object path or equipment identifier")
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

	conn, err := connect()
	if err != nil {
		slog.Error("failed to connect to bus", "error", err)
		panic(err)
	}
	defer conn.Close()

	manager := modem.NewManager(conn)
	version, err := manager.Version()
	if err != nil {
		slog.Error("failed to get ModemManager version", "error", err)
		panic(err)
	}
	slog.Info("connected to ModemManager", "version", version)

	var modems []*modem.Modem
	if modemId != "" {
		m, err := manager.Modem(modemId)
		if err != nil {
			slog.Error("failed to find modem", "modem", modemId, "error", err)
			return
		}
		modems = append(modems, m)
	} else if modems, err = manager.Modems(); err != nil {
		slog.Error("failed to list modems", "error", err)
		panic(err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()
	for _, m := range modems {
		if err := describe(w, m); err != nil {
			slog.Error("failed to describe modem", "path", m.ObjectPath(), "error", err)
		}
	}
}

func connect() (*dbus.Conn, error) {
	if config.C.Address != "" {
		return dbus.Connect(config.C.Address)
	}
	if config.C.Bus == config.BusSession {
		return dbus.ConnectSessionBus()
	}
	return dbus.ConnectSystemBus()
}

func describe(w *tabwriter.Writer, m *modem.Modem) error {
	manufacturer, err := m.Manufacturer()
	if err != nil {
		return err
	}
	model, err := m.Model()
	if err != nil {
		return err
	}
	state, err := m.State()
	if err != nil {
		return err
	}
	power, err := m.PowerState()
	if err != nil {
		return err
	}
	technologies, err := m.AccessTechnologies()
	if err != nil {
		return err
	}
	quality, err := m.SignalQuality()
	if err != nil {
		return err
	}
	imei, err := m.IMEI()
	if err != nil {
		return err
	}
	operator, err := m.OperatorName()
	if err != nil {
		return err
	}
	registration, err := m.RegistrationState()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Modem\t%s\n", m.ObjectPath())
	fmt.Fprintf(w, "  Manufacturer\t%s\n", manufacturer)
	fmt.Fprintf(w, "  Model\t%s\n", model)
	fmt.Fprintf(w, "  State\t%s\n", state)
	fmt.Fprintf(w, "  Power state\t%s\n", power)
	fmt.Fprintf(w, "  Access technologies\t%s\n", technologies)
	fmt.Fprintf(w, "  Signal quality\t%d%% (recent: %t)\n", quality.Quality, quality.Recent)
	fmt.Fprintf(w, "  IMEI\t%s\n", imei)
	fmt.Fprintf(w, "  Operator\t%s (%s)\n", operator, registration)

	sim, err := m.SIM()
	if errors.Is(err, modem.ErrSimNotFound) {
		fmt.Fprintf(w, "  SIM\tnone\n")
		return nil
	}
	if err != nil {
		return err
	}
	iccid, err := sim.Identifier()
	if err != nil {
		return err
	}
	simOperator, err := sim.OperatorName()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "  SIM\t%s\n", sim.ObjectPath())
	fmt.Fprintf(w, "    ICCID\t%s\n", iccid)
	fmt.Fprintf(w, "    Operator\t%s\n", simOperator)
	return nil
}
