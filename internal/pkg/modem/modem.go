package modem

import (
	"errors"
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	ModemInterface         = ModemManagerInterface + ".Modem"
	ModemObjectPathPrefix  = ModemManagerObjectPath + "/Modem/"
	BearerInterface        = ModemManagerInterface + ".Bearer"
	BearerObjectPathPrefix = ModemManagerObjectPath + "/Bearer/"
)

var (
	ErrNoATPortFound = errors.New("no at port found")
	ErrSimNotFound   = errors.New("sim not found")
)

type Modem struct {
	objectPath dbus.ObjectPath
	dbusObject dbus.BusObject
	object     func(path dbus.ObjectPath) dbus.BusObject
}

type Port struct {
	Name string
	Type ModemPortType
}

type SignalQuality struct {
	Quality uint32
	Recent  bool
}

type Modes struct {
	Allowed   ModemMode
	Preferred ModemMode
}

func (m *Modem) ObjectPath() dbus.ObjectPath {
	return m.objectPath
}

func (m *Modem) Manufacturer() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".Manufacturer")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) Model() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".Model")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) Revision() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".Revision")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) DeviceIdentifier() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".DeviceIdentifier")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) EquipmentIdentifier() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".EquipmentIdentifier")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) Plugin() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".Plugin")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) State() (ModemState, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".State")
	if err != nil {
		return ModemStateUnknown, err
	}
	return ModemState(variant.Value().(int32)), nil
}

func (m *Modem) StateFailedReason() (ModemStateFailedReason, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".StateFailedReason")
	if err != nil {
		return 0, err
	}
	return ModemStateFailedReason(variant.Value().(uint32)), nil
}

func (m *Modem) PowerState() (ModemPowerState, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".PowerState")
	if err != nil {
		return 0, err
	}
	return ModemPowerState(variant.Value().(uint32)), nil
}

func (m *Modem) UnlockRequired() (ModemLock, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".UnlockRequired")
	if err != nil {
		return 0, err
	}
	return ModemLock(variant.Value().(uint32)), nil
}

func (m *Modem) AccessTechnologies() (ModemAccessTechnology, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".AccessTechnologies")
	if err != nil {
		return 0, err
	}
	return ModemAccessTechnology(variant.Value().(uint32)), nil
}

func (m *Modem) CurrentCapabilities() (ModemCapability, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".CurrentCapabilities")
	if err != nil {
		return 0, err
	}
	return ModemCapability(variant.Value().(uint32)), nil
}

func (m *Modem) SupportedIPFamilies() (BearerIPFamily, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".SupportedIpFamilies")
	if err != nil {
		return 0, err
	}
	return BearerIPFamily(variant.Value().(uint32)), nil
}

func (m *Modem) SignalQuality() (SignalQuality, error) {
	var quality SignalQuality
	err := m.dbusObject.StoreProperty(ModemInterface+".SignalQuality", &quality)
	return quality, err
}

func (m *Modem) CurrentModes() (Modes, error) {
	var modes Modes
	err := m.dbusObject.StoreProperty(ModemInterface+".CurrentModes", &modes)
	return modes, err
}

func (m *Modem) SupportedModes() ([]Modes, error) {
	var modes []Modes
	err := m.dbusObject.StoreProperty(ModemInterface+".SupportedModes", &modes)
	return modes, err
}

func (m *Modem) CurrentBands() ([]ModemBand, error) {
	var bands []ModemBand
	err := m.dbusObject.StoreProperty(ModemInterface+".CurrentBands", &bands)
	return bands, err
}

func (m *Modem) Ports() ([]Port, error) {
	var ports []Port
	err := m.dbusObject.StoreProperty(ModemInterface+".Ports", &ports)
	return ports, err
}

func (m *Modem) PrimaryPort() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".PrimaryPort")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

// AtPort returns the device node of the first AT port.
func (m *Modem) AtPort() (string, error) {
	ports, err := m.Ports()
	if err != nil {
		return "", err
	}
	for _, port := range ports {
		if port.Type == ModemPortTypeAt {
			return fmt.Sprintf("/dev/%s", port.Name), nil
		}
	}
	return "", ErrNoATPortFound
}

func (m *Modem) Bearers() ([]dbus.ObjectPath, error) {
	var bearers []dbus.ObjectPath
	err := m.dbusObject.Call(ModemInterface+".ListBearers", 0).Store(&bearers)
	return bearers, err
}

func (m *Modem) Enable(enable bool) error {
	return m.call(ModemInterface+".Enable", enable)
}

func (m *Modem) SetPowerState(state ModemPowerState) error {
	return m.call(ModemInterface+".SetPowerState", uint32(state))
}

func (m *Modem) Command(command string, timeout uint32) (string, error) {
	var response string
	err := m.dbusObject.Call(ModemInterface+".Command", 0, command, timeout).Store(&response)
	return response, err
}
