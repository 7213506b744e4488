package template

import (
	"errors"
	"reflect"
	"slices"
	"sync"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"

	"github.com/damonto/modemmanager-mock/internal/pkg/dbusmock"
	"github.com/damonto/modemmanager-mock/internal/pkg/modem"
)

var variantComparer = cmp.Comparer(func(a, b dbus.Variant) bool {
	return a.Signature() == b.Signature() && reflect.DeepEqual(a.Value(), b.Value())
})

type signal struct {
	Path dbus.ObjectPath
	Name string
	Body []any
}

type recorder struct {
	mutex   sync.Mutex
	signals []signal
}

func (r *recorder) Emit(path dbus.ObjectPath, name string, values ...any) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.signals = append(r.signals, signal{Path: path, Name: name, Body: values})
	return nil
}

func loadedMock(t *testing.T, parameters Parameters) (*dbusmock.Mock, *recorder) {
	t.Helper()
	r := &recorder{}
	mock := dbusmock.New(MainObjectPath)
	mock.Attach(r)
	if err := Load(mock, parameters); err != nil {
		t.Fatalf("failed to load template: %v", err)
	}
	return mock, r
}

func object(t *testing.T, mock *dbusmock.Mock, path dbus.ObjectPath) *dbusmock.Object {
	t.Helper()
	obj, ok := mock.Object(path)
	if !ok {
		t.Fatalf("object %s not found", path)
	}
	return obj
}

func TestLoadObjects(t *testing.T) {
	mock, _ := loadedMock(t, nil)

	var paths []dbus.ObjectPath
	for path := range mock.Objects() {
		paths = append(paths, path)
	}
	slices.Sort(paths)
	want := []dbus.ObjectPath{modem.ModemManagerObjectPath, ModemObjectPath, SimObjectPath}
	if diff := cmp.Diff(want, paths); diff != "" {
		t.Fatalf("unexpected objects (-want +got):\n%s", diff)
	}

	m := object(t, mock, ModemObjectPath)
	if diff := cmp.Diff([]string{modem.ModemInterface, modem.Modem3GPPInterface}, m.Interfaces()); diff != "" {
		t.Fatalf("unexpected modem interfaces (-want +got):\n%s", diff)
	}
	sim, err := m.Get(modem.ModemInterface, "Sim")
	if err != nil {
		t.Fatalf("failed to get Sim: %v", err)
	}
	if sim.Value() != SimObjectPath {
		t.Fatalf("modem points at SIM %v", sim.Value())
	}
	bearers, err := m.Get(modem.ModemInterface, "Bearers")
	if err != nil {
		t.Fatalf("failed to get Bearers: %v", err)
	}
	if bearers.Signature().String() != "ao" || len(bearers.Value().([]dbus.ObjectPath)) != 0 {
		t.Fatalf("unexpected bearers %v", bearers)
	}
	state, err := m.Get(modem.ModemInterface, "State")
	if err != nil {
		t.Fatalf("failed to get State: %v", err)
	}
	if state.Signature().String() != "i" || state.Value() != int32(modem.ModemStateRegistered) {
		t.Fatalf("unexpected state %v", state)
	}

	imei, err := m.Get(modem.Modem3GPPInterface, "Imei")
	if err != nil {
		t.Fatalf("failed to get Imei: %v", err)
	}
	if imei.Value() != "111111111111111" {
		t.Fatalf("unexpected IMEI %v", imei)
	}
	registration, err := m.Get(modem.Modem3GPPInterface, "RegistrationState")
	if err != nil {
		t.Fatalf("failed to get RegistrationState: %v", err)
	}
	if registration.Value() != uint32(1) {
		t.Fatalf("unexpected registration state %v", registration)
	}
}

func TestLoadVersion(t *testing.T) {
	tests := []struct {
		name       string
		parameters Parameters
		want       string
		err        error
	}{
		{name: "default", parameters: nil, want: DefaultVersion},
		{name: "override", parameters: Parameters{"Version": "1.18.0"}, want: "1.18.0"},
		{name: "unknown keys", parameters: Parameters{"Other": true}, want: DefaultVersion},
		{name: "not a string", parameters: Parameters{"Version": 1.18}, err: ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := dbusmock.New(MainObjectPath)
			err := Load(mock, tt.parameters)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected error %v, got %v", tt.err, err)
			}
			if tt.err != nil {
				if len(mock.Objects()) != 0 {
					t.Fatal("a rejected load must not register objects")
				}
				return
			}
			version, err := object(t, mock, modem.ModemManagerObjectPath).Get(modem.ModemManagerInterface, "Version")
			if err != nil {
				t.Fatalf("failed to get Version: %v", err)
			}
			if version.Value() != tt.want {
				t.Fatalf("unexpected version %v, want %s", version.Value(), tt.want)
			}
		})
	}
}

func TestLoadSignals(t *testing.T) {
	_, r := loadedMock(t, nil)

	type added struct {
		Path       dbus.ObjectPath
		Interfaces []string
	}
	var got []added
	for _, s := range r.signals {
		if s.Path != MainObjectPath {
			t.Fatalf("signal %s sent from %s", s.Name, s.Path)
		}
		if s.Name != dbusmock.ObjectManagerInterface+".InterfacesAdded" {
			t.Fatalf("unexpected signal %s", s.Name)
		}
		ifaces := s.Body[1].(map[string]map[string]dbus.Variant)
		var names []string
		for name := range ifaces {
			names = append(names, name)
		}
		got = append(got, added{Path: s.Body[0].(dbus.ObjectPath), Interfaces: names})
	}
	want := []added{
		{Path: modem.ModemManagerObjectPath, Interfaces: []string{modem.ModemManagerInterface}},
		{Path: ModemObjectPath, Interfaces: []string{modem.ModemInterface}},
		{Path: SimObjectPath, Interfaces: []string{modem.SimInterface}},
		{Path: ModemObjectPath, Interfaces: []string{modem.Modem3GPPInterface}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected signals (-want +got):\n%s", diff)
	}
}

func TestLoadTwice(t *testing.T) {
	mock, _ := loadedMock(t, nil)
	if err := Load(mock, nil); !errors.Is(err, dbusmock.ErrObjectExists) {
		t.Fatalf("expected ErrObjectExists, got %v", err)
	}
}

func TestGetManagedObjects(t *testing.T) {
	mock, _ := loadedMock(t, nil)
	manager := object(t, mock, modem.ModemManagerObjectPath)

	ret, err := manager.Call(modem.ObjectManagerInterface, "GetManagedObjects")
	if err != nil {
		t.Fatalf("failed to call GetManagedObjects: %v", err)
	}
	if sig := dbus.SignatureOf(ret...).String(); sig != "a{oa{sa{sv}}}" {
		t.Fatalf("unexpected reply signature %q", sig)
	}
	props, err := object(t, mock, ModemObjectPath).GetAll(modem.ModemInterface)
	if err != nil {
		t.Fatalf("failed to get modem properties: %v", err)
	}
	want := modem.ManagedObjects{
		ModemObjectPath: {
			modem.ModemInterface:      props,
			modem.PropertiesInterface: {},
		},
	}
	if diff := cmp.Diff(want, ret[0], variantComparer); diff != "" {
		t.Fatalf("unexpected managed objects (-want +got):\n%s", diff)
	}
}

func TestManagedModems(t *testing.T) {
	mock := dbusmock.New(MainObjectPath)
	if _, err := mock.AddObject("/org/example/Other", "org.example.Other", nil, nil); err != nil {
		t.Fatalf("failed to add object: %v", err)
	}
	modems, err := ManagedModems(mock.Objects())
	if err != nil {
		t.Fatalf("failed to collect modems: %v", err)
	}
	if len(modems) != 0 {
		t.Fatalf("expected no modems, got %v", modems)
	}

	// a path under the modem prefix without the modem interface
	if _, err := mock.AddObject(modem.ModemObjectPathPrefix+"9", "org.example.Other", nil, nil); err != nil {
		t.Fatalf("failed to add object: %v", err)
	}
	if _, err := ManagedModems(mock.Objects()); !errors.Is(err, dbusmock.ErrInterfaceNotFound) {
		t.Fatalf("expected ErrInterfaceNotFound, got %v", err)
	}
}

func TestStubMethods(t *testing.T) {
	mock, _ := loadedMock(t, nil)
	manager := object(t, mock, modem.ModemManagerObjectPath)
	m := object(t, mock, ModemObjectPath)
	sim := object(t, mock, SimObjectPath)

	ret, err := manager.Call(modem.ModemManagerInterface, "ScanDevices")
	if err != nil {
		t.Fatalf("failed to call ScanDevices: %v", err)
	}
	if len(ret) != 0 {
		t.Fatalf("expected an empty reply, got %v", ret)
	}

	ret, err = m.Call(modem.ModemInterface, "ListBearers")
	if err != nil {
		t.Fatalf("failed to call ListBearers: %v", err)
	}
	if diff := cmp.Diff([]any{[]dbus.ObjectPath{}}, ret); diff != "" {
		t.Fatalf("unexpected bearers (-want +got):\n%s", diff)
	}

	ret, err = m.Call(modem.Modem3GPPInterface, "Scan")
	if err != nil {
		t.Fatalf("failed to call Scan: %v", err)
	}
	if diff := cmp.Diff([]any{[]map[string]dbus.Variant{}}, ret); diff != "" {
		t.Fatalf("unexpected scan result (-want +got):\n%s", diff)
	}

	lock := struct {
		Facility uint32
		Key      string
	}{uint32(modem.Modem3gppFacilitySim), "1234"}
	if _, err := m.Call(modem.Modem3GPPInterface, "DisableFacilityLock", lock); err != nil {
		t.Fatalf("failed to call DisableFacilityLock: %v", err)
	}
	if _, err := sim.Call(modem.SimInterface, "SendPuk", "12345678", "1234"); err != nil {
		t.Fatalf("failed to call SendPuk: %v", err)
	}
	networks := []modem.PreferredNetwork{{OperatorCode: "310410", AccessTechnology: modem.ModemAccessTechnologyLte}}
	if _, err := sim.Call(modem.SimInterface, "SetPreferredNetworks", networks); err != nil {
		t.Fatalf("failed to call SetPreferredNetworks: %v", err)
	}
	if _, err := m.Call(modem.ModemInterface, "Enable", "yes"); !errors.Is(err, dbusmock.ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}

	if n := len(m.MethodCalls("DisableFacilityLock")); n != 1 {
		t.Fatalf("expected one DisableFacilityLock call, got %d", n)
	}
	if n := len(sim.Calls()); n != 2 {
		t.Fatalf("expected two SIM calls, got %d", n)
	}
}
