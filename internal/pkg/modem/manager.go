package modem

import (
	"errors"
	"log/slog"
	"slices"
	"strings"

	"github.com/godbus/dbus/v5"
)

const (
	ModemManagerInterface  = "org.freedesktop.ModemManager1"
	ModemManagerObjectPath = dbus.ObjectPath("/org/freedesktop/ModemManager1")

	ObjectManagerInterface = "org.freedesktop.DBus.ObjectManager"
	PropertiesInterface    = "org.freedesktop.DBus.Properties"
)

var (
	ErrModemNotFound = errors.New("modem not found")
)

// ManagedObjects is the reply of org.freedesktop.DBus.ObjectManager.GetManagedObjects.
type ManagedObjects = map[dbus.ObjectPath]map[string]map[string]dbus.Variant

type Manager struct {
	dbusObject dbus.BusObject
	object     func(path dbus.ObjectPath) dbus.BusObject
}

func NewManager(dbusConn *dbus.Conn) *Manager {
	return newManager(func(path dbus.ObjectPath) dbus.BusObject {
		return dbusConn.Object(ModemManagerInterface, path)
	})
}

func newManager(object func(path dbus.ObjectPath) dbus.BusObject) *Manager {
	return &Manager{
		dbusObject: object(ModemManagerObjectPath),
		object:     object,
	}
}

func (m *Manager) Version() (string, error) {
	variant, err := m.dbusObject.GetProperty(ModemManagerInterface + ".Version")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Manager) ScanDevices() error {
	return m.dbusObject.Call(ModemManagerInterface+".ScanDevices", 0).Err
}

func (m *Manager) SetLogging(level string) error {
	return m.dbusObject.Call(ModemManagerInterface+".SetLogging", 0, level).Err
}

func (m *Manager) ManagedObjects() (ManagedObjects, error) {
	var objects ManagedObjects
	err := m.dbusObject.Call(ObjectManagerInterface+".GetManagedObjects", 0).Store(&objects)
	return objects, err
}

// Modems returns every object exposing the modem interface, ordered by path.
func (m *Manager) Modems() ([]*Modem, error) {
	objects, err := m.ManagedObjects()
	if err != nil {
		return nil, err
	}
	var modems []*Modem
	for path, interfaces := range objects {
		if _, ok := interfaces[ModemInterface]; !ok {
			continue
		}
		modems = append(modems, m.modem(path))
	}
	slices.SortFunc(modems, func(a, b *Modem) int {
		return strings.Compare(string(a.objectPath), string(b.objectPath))
	})
	slog.Debug("modems found", "count", len(modems))
	return modems, nil
}

// Modem looks a modem up by object path or equipment identifier.
func (m *Manager) Modem(id string) (*Modem, error) {
	modems, err := m.Modems()
	if err != nil {
		return nil, err
	}
	for _, modem := range modems {
		if string(modem.objectPath) == id {
			return modem, nil
		}
		equipmentId, err := modem.EquipmentIdentifier()
		if err != nil {
			return nil, err
		}
		if equipmentId == id {
			return modem, nil
		}
	}
	return nil, ErrModemNotFound
}

func (m *Manager) modem(path dbus.ObjectPath) *Modem {
	return &Modem{
		objectPath: path,
		dbusObject: m.object(path),
		object:     m.object,
	}
}
