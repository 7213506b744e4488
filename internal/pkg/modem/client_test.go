package modem_test

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/damonto/modemmanager-mock/internal/pkg/dbusmock"
	"github.com/damonto/modemmanager-mock/internal/pkg/modem"
	"github.com/damonto/modemmanager-mock/internal/pkg/template"
)

func newTestManager(t *testing.T) (*modem.Manager, *dbusmock.Mock) {
	t.Helper()
	mock := dbusmock.New(template.MainObjectPath)
	if err := template.Load(mock, template.Parameters{"Version": "1.22.0"}); err != nil {
		t.Fatalf("failed to load template: %v", err)
	}
	manager := modem.NewManagerWithObjects(func(path dbus.ObjectPath) dbus.BusObject {
		return mock.BusObject(modem.ModemManagerInterface, path)
	})
	return manager, mock
}

func testModem(t *testing.T) (*modem.Modem, *dbusmock.Mock) {
	t.Helper()
	manager, mock := newTestManager(t)
	modems, err := manager.Modems()
	if err != nil {
		t.Fatalf("failed to list modems: %v", err)
	}
	if len(modems) != 1 {
		t.Fatalf("expected one modem, got %d", len(modems))
	}
	return modems[0], mock
}

func TestManager(t *testing.T) {
	manager, _ := newTestManager(t)

	version, err := manager.Version()
	if err != nil {
		t.Fatalf("failed to get version: %v", err)
	}
	if version != "1.22.0" {
		t.Fatalf("unexpected version %q", version)
	}
	if err := manager.ScanDevices(); err != nil {
		t.Fatalf("failed to scan devices: %v", err)
	}
	if err := manager.SetLogging("DEBUG"); err != nil {
		t.Fatalf("failed to set logging: %v", err)
	}

	objects, err := manager.ManagedObjects()
	if err != nil {
		t.Fatalf("failed to get managed objects: %v", err)
	}
	if len(objects) != 1 {
		t.Fatalf("expected one managed object, got %d", len(objects))
	}
	if _, ok := objects[template.ModemObjectPath][modem.ModemInterface]; !ok {
		t.Fatalf("modem %s is missing from managed objects", template.ModemObjectPath)
	}
}

func TestManagerModem(t *testing.T) {
	manager, _ := newTestManager(t)

	tests := []struct {
		name string
		id   string
		err  error
	}{
		{name: "object path", id: string(template.ModemObjectPath)},
		{name: "equipment identifier", id: "12456test"},
		{name: "unknown", id: "000000", err: modem.ErrModemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := manager.Modem(tt.id)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if tt.err == nil && m.ObjectPath() != template.ModemObjectPath {
				t.Fatalf("unexpected modem %s", m.ObjectPath())
			}
		})
	}
}

func TestModemProperties(t *testing.T) {
	m, _ := testModem(t)

	manufacturer, err := m.Manufacturer()
	if err != nil {
		t.Fatalf("failed to get manufacturer: %v", err)
	}
	if manufacturer != "HarborDigital" {
		t.Fatalf("unexpected manufacturer %q", manufacturer)
	}

	state, err := m.State()
	if err != nil {
		t.Fatalf("failed to get state: %v", err)
	}
	if state != modem.ModemStateRegistered {
		t.Fatalf("unexpected state %s", state)
	}

	power, err := m.PowerState()
	if err != nil {
		t.Fatalf("failed to get power state: %v", err)
	}
	if power != modem.ModemPowerStateOn {
		t.Fatalf("unexpected power state %s", power)
	}

	lock, err := m.UnlockRequired()
	if err != nil {
		t.Fatalf("failed to get unlock required: %v", err)
	}
	if lock != modem.ModemLockNone {
		t.Fatalf("unexpected lock %s", lock)
	}

	technologies, err := m.AccessTechnologies()
	if err != nil {
		t.Fatalf("failed to get access technologies: %v", err)
	}
	if technologies != modem.ModemAccessTechnologyLte|modem.ModemAccessTechnologyEvdo0 {
		t.Fatalf("unexpected access technologies %s", technologies)
	}

	capabilities, err := m.CurrentCapabilities()
	if err != nil {
		t.Fatalf("failed to get capabilities: %v", err)
	}
	if !capabilities.Has(modem.ModemCapabilityLte) {
		t.Fatalf("expected LTE capability, got %s", capabilities)
	}

	quality, err := m.SignalQuality()
	if err != nil {
		t.Fatalf("failed to get signal quality: %v", err)
	}
	if diff := cmp.Diff(modem.SignalQuality{Quality: 76, Recent: true}, quality); diff != "" {
		t.Fatalf("unexpected signal quality (-want +got):\n%s", diff)
	}

	modes, err := m.CurrentModes()
	if err != nil {
		t.Fatalf("failed to get current modes: %v", err)
	}
	want := modem.Modes{Allowed: modem.ModemMode3g | modem.ModemMode4g, Preferred: modem.ModemMode4g}
	if diff := cmp.Diff(want, modes); diff != "" {
		t.Fatalf("unexpected modes (-want +got):\n%s", diff)
	}

	bands, err := m.CurrentBands()
	if err != nil {
		t.Fatalf("failed to get bands: %v", err)
	}
	if diff := cmp.Diff([]modem.ModemBand{modem.ModemBandUnknown}, bands); diff != "" {
		t.Fatalf("unexpected bands (-want +got):\n%s", diff)
	}
}

func TestModemPorts(t *testing.T) {
	m, _ := testModem(t)

	ports, err := m.Ports()
	if err != nil {
		t.Fatalf("failed to get ports: %v", err)
	}
	if len(ports) != 7 {
		t.Fatalf("expected 7 ports, got %d", len(ports))
	}
	port, err := m.AtPort()
	if err != nil {
		t.Fatalf("failed to find AT port: %v", err)
	}
	if port != "/dev/ttyACM3" {
		t.Fatalf("unexpected AT port %q", port)
	}
	primary, err := m.PrimaryPort()
	if err != nil {
		t.Fatalf("failed to get primary port: %v", err)
	}
	if primary != "ttyACM0" {
		t.Fatalf("unexpected primary port %q", primary)
	}
}

func TestModemMethods(t *testing.T) {
	m, mock := testModem(t)
	obj, ok := mock.Object(template.ModemObjectPath)
	if !ok {
		t.Fatal("modem object not found")
	}

	bearers, err := m.Bearers()
	if err != nil {
		t.Fatalf("failed to list bearers: %v", err)
	}
	if len(bearers) != 0 {
		t.Fatalf("expected no bearers, got %v", bearers)
	}
	if err := m.Enable(true); err != nil {
		t.Fatalf("failed to enable modem: %v", err)
	}
	if err := m.SetPowerState(modem.ModemPowerStateLow); err != nil {
		t.Fatalf("failed to set power state: %v", err)
	}
	response, err := m.Command("AT+CSQ", 3)
	if err != nil {
		t.Fatalf("failed to run command: %v", err)
	}
	if response != "" {
		t.Fatalf("unexpected response %q", response)
	}

	var got []string
	for _, call := range obj.Calls() {
		got = append(got, call.Method)
	}
	if diff := cmp.Diff([]string{"ListBearers", "Enable", "SetPowerState", "Command"}, got); diff != "" {
		t.Fatalf("unexpected calls (-want +got):\n%s", diff)
	}
	calls := obj.MethodCalls("SetPowerState")
	if len(calls) != 1 {
		t.Fatalf("expected one SetPowerState call, got %d", len(calls))
	}
	if diff := cmp.Diff([]any{uint32(modem.ModemPowerStateLow)}, calls[0].Args); diff != "" {
		t.Fatalf("unexpected arguments (-want +got):\n%s", diff)
	}
}

func TestModem3GPP(t *testing.T) {
	m, mock := testModem(t)
	obj, ok := mock.Object(template.ModemObjectPath)
	if !ok {
		t.Fatal("modem object not found")
	}

	imei, err := m.IMEI()
	if err != nil {
		t.Fatalf("failed to get IMEI: %v", err)
	}
	if imei != "111111111111111" {
		t.Fatalf("unexpected IMEI %q", imei)
	}
	registration, err := m.RegistrationState()
	if err != nil {
		t.Fatalf("failed to get registration state: %v", err)
	}
	if registration != modem.Modem3gppRegistrationStateHome {
		t.Fatalf("unexpected registration state %s", registration)
	}
	operator, err := m.OperatorName()
	if err != nil {
		t.Fatalf("failed to get operator name: %v", err)
	}
	if operator != "AT&T" {
		t.Fatalf("unexpected operator %q", operator)
	}
	mode, err := m.EpsUeModeOperation()
	if err != nil {
		t.Fatalf("failed to get EPS UE mode: %v", err)
	}
	if mode != modem.Modem3gppEpsUeModeOperationCsps2 {
		t.Fatalf("unexpected EPS UE mode %s", mode)
	}
	bearer, err := m.InitialEpsBearer()
	if err != nil {
		t.Fatalf("failed to get initial EPS bearer: %v", err)
	}
	if bearer != "/" {
		t.Fatalf("unexpected initial EPS bearer %s", bearer)
	}
	pco, err := m.Pco()
	if err != nil {
		t.Fatalf("failed to get PCO: %v", err)
	}
	if len(pco) != 0 {
		t.Fatalf("expected no PCO, got %v", pco)
	}

	networks, err := m.ScanNetworks()
	if err != nil {
		t.Fatalf("failed to scan networks: %v", err)
	}
	if len(networks) != 0 {
		t.Fatalf("expected no networks, got %v", networks)
	}
	if err := m.Register("310410"); err != nil {
		t.Fatalf("failed to register: %v", err)
	}
	calls := obj.MethodCalls("Register")
	if len(calls) != 1 {
		t.Fatalf("expected one Register call, got %d", len(calls))
	}
	if calls[0].Interface != modem.Modem3GPPInterface {
		t.Fatalf("Register recorded on %s", calls[0].Interface)
	}
	if diff := cmp.Diff([]any{"310410"}, calls[0].Args); diff != "" {
		t.Fatalf("unexpected arguments (-want +got):\n%s", diff)
	}
}

func TestSIM(t *testing.T) {
	m, _ := testModem(t)

	sim, err := m.SIM()
	if err != nil {
		t.Fatalf("failed to get SIM: %v", err)
	}
	if sim.ObjectPath() != template.SimObjectPath {
		t.Fatalf("unexpected SIM path %s", sim.ObjectPath())
	}
	iccid, err := sim.Identifier()
	if err != nil {
		t.Fatalf("failed to get ICCID: %v", err)
	}
	if iccid != "11111111111111111111" {
		t.Fatalf("unexpected ICCID %q", iccid)
	}
	imsi, err := sim.IMSI()
	if err != nil {
		t.Fatalf("failed to get IMSI: %v", err)
	}
	if imsi != "111111111111111" {
		t.Fatalf("unexpected IMSI %q", imsi)
	}
	active, err := sim.Active()
	if err != nil {
		t.Fatalf("failed to get active: %v", err)
	}
	if !active {
		t.Fatal("expected the SIM to be active")
	}
	networks, err := sim.PreferredNetworks()
	if err != nil {
		t.Fatalf("failed to get preferred networks: %v", err)
	}
	want := []modem.PreferredNetwork{{OperatorCode: "310030", AccessTechnology: modem.ModemAccessTechnologyUnknown}}
	if diff := cmp.Diff(want, networks); diff != "" {
		t.Fatalf("unexpected preferred networks (-want +got):\n%s", diff)
	}
	if err := sim.SendPin("1234"); err != nil {
		t.Fatalf("failed to send PIN: %v", err)
	}

	sims, err := m.SimSlots()
	if err != nil {
		t.Fatalf("failed to get SIM slots: %v", err)
	}
	if len(sims) != 1 || sims[0].ObjectPath() != template.SimObjectPath {
		t.Fatalf("unexpected SIM slots %v", sims)
	}
}

func TestSetPrimarySimSlot(t *testing.T) {
	m, mock := testModem(t)
	obj, ok := mock.Object(template.ModemObjectPath)
	if !ok {
		t.Fatal("modem object not found")
	}

	slot, err := m.PrimarySimSlot()
	if err != nil {
		t.Fatalf("failed to get primary SIM slot: %v", err)
	}
	if slot != 1 {
		t.Fatalf("expected slot 1, got %d", slot)
	}
	if err := m.SetPrimarySimSlot(1); err != nil {
		t.Fatalf("failed to set primary SIM slot: %v", err)
	}
	if calls := obj.MethodCalls("SetPrimarySimSlot"); len(calls) != 0 {
		t.Fatalf("expected no call for the current slot, got %d", len(calls))
	}
	if err := m.SetPrimarySimSlot(2); err != nil {
		t.Fatalf("failed to set primary SIM slot: %v", err)
	}
	calls := obj.MethodCalls("SetPrimarySimSlot")
	if len(calls) != 1 {
		t.Fatalf("expected one call, got %d", len(calls))
	}
	if diff := cmp.Diff([]any{uint32(2)}, calls[0].Args); diff != "" {
		t.Fatalf("unexpected arguments (-want +got):\n%s", diff)
	}
}

func TestSIMRemoved(t *testing.T) {
	m, mock := testModem(t)
	sim, err := m.SIM()
	if err != nil {
		t.Fatalf("failed to get SIM: %v", err)
	}
	if err := mock.RemoveObject(template.SimObjectPath); err != nil {
		t.Fatalf("failed to remove SIM: %v", err)
	}

	_, err = sim.Identifier()
	var dbusErr dbus.Error
	if !errors.As(err, &dbusErr) {
		t.Fatalf("expected a D-Bus error, got %v", err)
	}
	if dbusErr.Name != "org.freedesktop.DBus.Error.NoSuchObject" {
		t.Fatalf("unexpected error %s", dbusErr.Name)
	}

	obj, ok := mock.Object(template.ModemObjectPath)
	if !ok {
		t.Fatal("modem object not found")
	}
	if err := obj.Set(modem.ModemInterface, "Sim", dbus.MakeVariant(dbus.ObjectPath("/"))); err != nil {
		t.Fatalf("failed to clear SIM: %v", err)
	}
	if _, err := m.SIM(); !errors.Is(err, modem.ErrSimNotFound) {
		t.Fatalf("expected ErrSimNotFound, got %v", err)
	}
}

func TestModemArgumentTypes(t *testing.T) {
	_, mock := testModem(t)
	o := mock.BusObject(modem.ModemManagerInterface, template.ModemObjectPath)

	err := o.Call(modem.ModemInterface+".Enable", 0, "yes").Err
	var dbusErr *dbus.Error
	if !errors.As(err, &dbusErr) {
		t.Fatalf("expected a D-Bus error, got %v", err)
	}
	if dbusErr.Name != "org.freedesktop.DBus.Error.InvalidArgs" {
		t.Fatalf("unexpected error %s", dbusErr.Name)
	}
	// int marshals as i, not u
	if err := o.Call(modem.ModemInterface+".SetPowerState", 0, 3).Err; err == nil {
		t.Fatal("expected SetPowerState to reject an int argument")
	}
	obj, _ := mock.Object(template.ModemObjectPath)
	if calls := obj.Calls(); len(calls) != 0 {
		t.Fatalf("expected no recorded calls, got %v", calls)
	}
}
