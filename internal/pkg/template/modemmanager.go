// Package template loads a ModemManager scenario into a dbusmock registry:
// the manager, one registered LTE modem with its 3GPP facet and one SIM.
package template

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/godbus/dbus/v5"

	"github.com/damonto/modemmanager-mock/internal/pkg/dbusmock"
	"github.com/damonto/modemmanager-mock/internal/pkg/modem"
)

const (
	BusName = modem.ModemManagerInterface
	// MainObjectPath is where the ObjectManager signals are sent from.
	MainObjectPath = dbus.ObjectPath("/org/freedesktop")

	DefaultVersion = "1.20.0"

	ModemObjectPath = modem.ModemObjectPathPrefix + "0"
	SimObjectPath   = modem.SimObjectPathPrefix + "0"
)

var ErrInvalidParameter = errors.New("invalid parameter")

// Parameters configures Load. The only recognised key is "Version".
type Parameters map[string]any

func (p Parameters) Version() (string, error) {
	value, ok := p["Version"]
	if !ok {
		return DefaultVersion, nil
	}
	version, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: Version must be a string, got %T", ErrInvalidParameter, value)
	}
	return version, nil
}

// Load registers the manager, the modem, the SIM and the modem's 3GPP
// interface, announcing each one as it is added.
func Load(mock *dbusmock.Mock, parameters Parameters) error {
	version, err := parameters.Version()
	if err != nil {
		return err
	}
	if err := loadManager(mock, version); err != nil {
		return fmt.Errorf("load manager: %w", err)
	}
	if err := loadModem(mock); err != nil {
		return fmt.Errorf("load modem: %w", err)
	}
	if err := loadSim(mock); err != nil {
		return fmt.Errorf("load sim: %w", err)
	}
	if err := load3gpp(mock); err != nil {
		return fmt.Errorf("load 3gpp: %w", err)
	}
	slog.Info("modemmanager template loaded", "version", version, "modem", ModemObjectPath, "sim", SimObjectPath)
	return nil
}

func loadManager(mock *dbusmock.Mock, version string) error {
	props := map[string]dbus.Variant{
		"Version": dbus.MakeVariant(version),
	}
	methods := []dbusmock.Method{
		{Name: "ScanDevices"},
		{Name: "SetLogging", InSignature: "s"},
	}
	obj, err := mock.AddObject(modem.ModemManagerObjectPath, modem.ModemManagerInterface, props, methods)
	if err != nil {
		return err
	}
	if err := mock.EmitObjectAdded(modem.ModemManagerObjectPath); err != nil {
		return err
	}
	return obj.AddMethod(modem.ObjectManagerInterface, dbusmock.Method{
		Name:         "GetManagedObjects",
		OutSignature: "a{oa{sa{sv}}}",
		Handler: func(obj *dbusmock.Object, _ ...any) ([]any, error) {
			modems, err := ManagedModems(obj.Mock().Objects())
			if err != nil {
				return nil, err
			}
			return []any{modems}, nil
		},
	})
}

func loadModem(mock *dbusmock.Mock) error {
	mode := uint32(modem.ModemMode4g | modem.ModemMode3g)
	props := map[string]dbus.Variant{
		"Sim":                          dbus.MakeVariant(SimObjectPath),
		"SimSlots":                     dbus.MakeVariant([]dbus.ObjectPath{SimObjectPath}),
		"PrimarySimSlot":               dbus.MakeVariant(uint32(0)),
		"Bearers":                      dbus.MakeVariant([]dbus.ObjectPath{}),
		"SupportedCapabilities":        dbus.MakeVariant([]uint32{uint32(modem.ModemCapabilityCdmaEvdo | modem.ModemCapabilityLte)}),
		"CurrentCapabilities":          dbus.MakeVariant(uint32(modem.ModemCapabilityCdmaEvdo | modem.ModemCapabilityLte)),
		"MaxBearers":                   dbus.MakeVariant(uint32(2)),
		"MaxActiveBearers":             dbus.MakeVariant(uint32(1)),
		"MaxActiveMultiplexedBearers":  dbus.MakeVariant(uint32(0)),
		"Manufacturer":                 dbus.MakeVariant("HarborDigital"),
		"Model":                        dbus.MakeVariant("ModemManager-Mock"),
		"Revision":                     dbus.MakeVariant("v1"),
		"CarrierConfiguration":         dbus.MakeVariant(""),
		"CarrierConfigurationRevision": dbus.MakeVariant(""),
		"HardwareRevision":             dbus.MakeVariant(""),
		"DeviceIdentifier":             dbus.MakeVariant("HarborDigital:ModemManager-Mock:v1"),
		"Device":                       dbus.MakeVariant("not-real"),
		"Drivers":                      dbus.MakeVariant([]string{}),
		"Plugin":                       dbus.MakeVariant("python-dbusmock"),
		"PrimaryPort":                  dbus.MakeVariant("ttyACM0"),
		"Ports": dbus.MakeVariant([]modem.Port{
			{Name: "ttyACM3", Type: modem.ModemPortTypeAt},
			{Name: "ttyACM3", Type: modem.ModemPortTypeUnknown},
			{Name: "wwx000011121314", Type: modem.ModemPortTypeNet},
			{Name: "ttyACM5", Type: modem.ModemPortTypeUnknown},
			{Name: "ttyACM0", Type: modem.ModemPortTypeAt},
			{Name: "ttyACM1", Type: modem.ModemPortTypeUnknown},
			{Name: "ttyACM2", Type: modem.ModemPortTypeUnknown},
		}),
		"EquipmentIdentifier": dbus.MakeVariant("12456test"),
		"UnlockRequired":      dbus.MakeVariant(uint32(modem.ModemLockNone)),
		"UnlockRetries":       dbus.MakeVariant(map[uint32]uint32{}),
		"State":               dbus.MakeVariant(int32(modem.ModemStateRegistered)),
		"StateFailedReason":   dbus.MakeVariant(uint32(modem.ModemStateFailedReasonNone)),
		"AccessTechnologies":  dbus.MakeVariant(uint32(modem.ModemAccessTechnologyLte | modem.ModemAccessTechnologyEvdo0)),
		"SignalQuality":       dbus.MakeVariant(modem.SignalQuality{Quality: 76, Recent: true}),
		"OwnNumbers":          dbus.MakeVariant([]string{}),
		"PowerState":          dbus.MakeVariant(uint32(modem.ModemPowerStateOn)),
		"SupportedModes": dbus.MakeVariant([]modem.Modes{
			{Allowed: modem.ModemMode(mode), Preferred: modem.ModemMode4g},
		}),
		"CurrentModes":        dbus.MakeVariant(modem.Modes{Allowed: modem.ModemMode(mode), Preferred: modem.ModemMode4g}),
		"SupportedBands":      dbus.MakeVariant([]uint32{uint32(modem.ModemBandUnknown)}),
		"CurrentBands":        dbus.MakeVariant([]uint32{uint32(modem.ModemBandUnknown)}),
		"SupportedIpFamilies": dbus.MakeVariant(uint32(modem.BearerIPFamilyIPv4 | modem.BearerIPFamilyIPv6 | modem.BearerIPFamilyIPv4v6)),
	}
	methods := []dbusmock.Method{
		{Name: "Enable", InSignature: "b"},
		{
			Name:         "ListBearers",
			OutSignature: "ao",
			Handler: func(obj *dbusmock.Object, _ ...any) ([]any, error) {
				bearers, err := obj.Get(modem.ModemInterface, "Bearers")
				if err != nil {
					return nil, err
				}
				return []any{bearers.Value()}, nil
			},
		},
		{Name: "SetPowerState", InSignature: "u"},
		{Name: "SetPrimarySimSlot", InSignature: "u"},
		{Name: "Command", InSignature: "su", OutSignature: "s"},
	}
	if _, err := mock.AddObject(ModemObjectPath, modem.ModemInterface, props, methods); err != nil {
		return err
	}
	return mock.EmitObjectAdded(ModemObjectPath)
}

func loadSim(mock *dbusmock.Mock) error {
	props := map[string]dbus.Variant{
		"Active":             dbus.MakeVariant(true),
		"SimIdentifier":      dbus.MakeVariant("11111111111111111111"),
		"Imsi":               dbus.MakeVariant("111111111111111"),
		"Eid":                dbus.MakeVariant(""),
		"OperatorIdentifier": dbus.MakeVariant("310030"),
		"OperatorName":       dbus.MakeVariant("Harbor-test"),
		"EmergencyNumbers":   dbus.MakeVariant([]string{}),
		"PreferredNetworks": dbus.MakeVariant([]modem.PreferredNetwork{
			{OperatorCode: "310030", AccessTechnology: modem.ModemAccessTechnologyUnknown},
		}),
	}
	methods := []dbusmock.Method{
		{Name: "SendPin", InSignature: "s"},
		{Name: "SendPuk", InSignature: "ss"},
		{Name: "EnablePin", InSignature: "sb"},
		{Name: "ChangePin", InSignature: "ss"},
		{Name: "SetPreferredNetworks", InSignature: "a(su)"},
	}
	if _, err := mock.AddObject(SimObjectPath, modem.SimInterface, props, methods); err != nil {
		return err
	}
	return mock.EmitObjectAdded(SimObjectPath)
}

func load3gpp(mock *dbusmock.Mock) error {
	obj, ok := mock.Object(ModemObjectPath)
	if !ok {
		return fmt.Errorf("%w: %s", dbusmock.ErrObjectNotFound, ModemObjectPath)
	}
	props := map[string]dbus.Variant{
		"Imei":                     dbus.MakeVariant("111111111111111"),
		"RegistrationState":        dbus.MakeVariant(uint32(modem.Modem3gppRegistrationStateHome)),
		"OperatorCode":             dbus.MakeVariant("310410"),
		"OperatorName":             dbus.MakeVariant("AT&T"),
		"EnabledFacilityLocks":     dbus.MakeVariant(uint32(modem.Modem3gppFacilityNone)),
		"SubscriptionState":        dbus.MakeVariant(uint32(modem.Modem3gppSubscriptionStateUnknown)),
		"EpsUeModeOperation":       dbus.MakeVariant(uint32(modem.Modem3gppEpsUeModeOperationCsps2)),
		"Pco":                      dbus.MakeVariant([]modem.Pco{}),
		"InitialEpsBearer":         dbus.MakeVariant(dbus.ObjectPath("/")),
		"InitialEpsBearerSettings": dbus.MakeVariant(map[string]dbus.Variant{}),
		"PacketServiceState":       dbus.MakeVariant(uint32(modem.Modem3gppPacketServiceStateUnknown)),
		"Nr5gRegistrationSettings": dbus.MakeVariant(map[string]dbus.Variant{}),
	}
	methods := []dbusmock.Method{
		{Name: "Register", InSignature: "s"},
		{Name: "Scan", OutSignature: "aa{sv}"},
		{Name: "SetEpsUeModeOperation", InSignature: "u"},
		{Name: "SetInitialEpsBearerSettings", InSignature: "a{sv}"},
		{Name: "SetNr5gRegistrationSettings", InSignature: "a{sv}"},
		{Name: "DisableFacilityLock", InSignature: "(us)"},
		{Name: "SetPacketServiceState", InSignature: "u"},
	}
	if err := obj.AddProperties(modem.Modem3GPPInterface, props); err != nil {
		return err
	}
	if err := obj.AddMethods(modem.Modem3GPPInterface, methods); err != nil {
		return err
	}
	return mock.EmitInterfacesAdded(ModemObjectPath, modem.Modem3GPPInterface)
}

// ManagedModems answers GetManagedObjects: every object whose path contains
// the modem base path, with its modem properties and an empty Properties
// entry.
func ManagedModems(objects map[dbus.ObjectPath]*dbusmock.Object) (modem.ManagedObjects, error) {
	modems := make(modem.ManagedObjects)
	for path, obj := range objects {
		if !strings.Contains(string(path), string(modem.ModemObjectPathPrefix)) {
			continue
		}
		props, err := obj.GetAll(modem.ModemInterface)
		if err != nil {
			return nil, err
		}
		modems[path] = map[string]map[string]dbus.Variant{
			modem.ModemInterface:      props,
			modem.PropertiesInterface: {},
		}
	}
	slog.Debug("managed modems", "modems", modems)
	return modems, nil
}
