package modem

import (
	"github.com/godbus/dbus/v5"
)

const (
	SimInterface        = ModemManagerInterface + ".Sim"
	SimObjectPathPrefix = ModemManagerObjectPath + "/SIM/"
)

type SIM struct {
	objectPath dbus.ObjectPath
	dbusObject dbus.BusObject
}

type PreferredNetwork struct {
	OperatorCode     string
	AccessTechnology ModemAccessTechnology
}

func (m *Modem) SIM() (*SIM, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".Sim")
	if err != nil {
		return nil, err
	}
	path := variant.Value().(dbus.ObjectPath)
	if path == "/" {
		return nil, ErrSimNotFound
	}
	return &SIM{objectPath: path, dbusObject: m.object(path)}, nil
}

// SimSlots returns the SIMs in every slot, skipping empty slots.
func (m *Modem) SimSlots() ([]*SIM, error) {
	var paths []dbus.ObjectPath
	if err := m.dbusObject.StoreProperty(ModemInterface+".SimSlots", &paths); err != nil {
		return nil, err
	}
	sims := make([]*SIM, 0, len(paths))
	for _, path := range paths {
		if path == "/" {
			continue
		}
		sims = append(sims, &SIM{objectPath: path, dbusObject: m.object(path)})
	}
	return sims, nil
}

func (m *Modem) PrimarySimSlot() (uint32, error) {
	variant, err := m.dbusObject.GetProperty(ModemInterface + ".PrimarySimSlot")
	if err != nil {
		return 0, err
	}
	slot := variant.Value().(uint32)
	if slot == 0 {
		slot = 1
	}
	return slot, nil
}

func (m *Modem) SetPrimarySimSlot(slot uint32) error {
	primary, err := m.PrimarySimSlot()
	if err != nil {
		return err
	}
	if primary == slot {
		return nil
	}
	return m.call(ModemInterface+".SetPrimarySimSlot", slot)
}

func (s *SIM) ObjectPath() dbus.ObjectPath {
	return s.objectPath
}

func (s *SIM) Active() (bool, error) {
	variant, err := s.dbusObject.GetProperty(SimInterface + ".Active")
	if err != nil {
		return false, err
	}
	return variant.Value().(bool), nil
}

func (s *SIM) Identifier() (string, error) {
	variant, err := s.dbusObject.GetProperty(SimInterface + ".SimIdentifier")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (s *SIM) IMSI() (string, error) {
	variant, err := s.dbusObject.GetProperty(SimInterface + ".Imsi")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (s *SIM) EID() (string, error) {
	variant, err := s.dbusObject.GetProperty(SimInterface + ".Eid")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (s *SIM) OperatorIdentifier() (string, error) {
	variant, err := s.dbusObject.GetProperty(SimInterface + ".OperatorIdentifier")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (s *SIM) OperatorName() (string, error) {
	variant, err := s.dbusObject.GetProperty(SimInterface + ".OperatorName")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (s *SIM) PreferredNetworks() ([]PreferredNetwork, error) {
	var networks []PreferredNetwork
	err := s.dbusObject.StoreProperty(SimInterface+".PreferredNetworks", &networks)
	return networks, err
}

func (s *SIM) SendPin(pin string) error {
	return s.dbusObject.Call(SimInterface+".SendPin", 0, pin).Err
}
