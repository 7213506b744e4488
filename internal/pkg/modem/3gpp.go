package modem

import "github.com/godbus/dbus/v5"

const Modem3GPPInterface = ModemInterface + ".Modem3gpp"

type Pco struct {
	SessionId uint32
	Complete  bool
	Data      []byte
}

func (m *Modem) IMEI() (string, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".Imei")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) RegistrationState() (Modem3gppRegistrationState, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".RegistrationState")
	if err != nil {
		return 0, err
	}
	return Modem3gppRegistrationState(variant.Value().(uint32)), nil
}

func (m *Modem) OperatorCode() (string, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".OperatorCode")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) OperatorName() (string, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".OperatorName")
	if err != nil {
		return "", err
	}
	return variant.Value().(string), nil
}

func (m *Modem) EnabledFacilityLocks() (Modem3gppFacility, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".EnabledFacilityLocks")
	if err != nil {
		return 0, err
	}
	return Modem3gppFacility(variant.Value().(uint32)), nil
}

func (m *Modem) SubscriptionState() (Modem3gppSubscriptionState, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".SubscriptionState")
	if err != nil {
		return 0, err
	}
	return Modem3gppSubscriptionState(variant.Value().(uint32)), nil
}

func (m *Modem) EpsUeModeOperation() (Modem3gppEpsUeModeOperation, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".EpsUeModeOperation")
	if err != nil {
		return 0, err
	}
	return Modem3gppEpsUeModeOperation(variant.Value().(uint32)), nil
}

func (m *Modem) PacketServiceState() (Modem3gppPacketServiceState, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".PacketServiceState")
	if err != nil {
		return 0, err
	}
	return Modem3gppPacketServiceState(variant.Value().(uint32)), nil
}

func (m *Modem) InitialEpsBearer() (dbus.ObjectPath, error) {
	variant, err := m.dbusObject.GetProperty(Modem3GPPInterface + ".InitialEpsBearer")
	if err != nil {
		return "", err
	}
	return variant.Value().(dbus.ObjectPath), nil
}

func (m *Modem) Pco() ([]Pco, error) {
	var pco []Pco
	err := m.dbusObject.StoreProperty(Modem3GPPInterface+".Pco", &pco)
	return pco, err
}

// Register registers on the network given by its MCCMNC, or on the home
// network when operatorId is empty.
func (m *Modem) Register(operatorId string) error {
	return m.call(Modem3GPPInterface+".Register", operatorId)
}

func (m *Modem) ScanNetworks() ([]map[string]dbus.Variant, error) {
	var networks []map[string]dbus.Variant
	err := m.dbusObject.Call(Modem3GPPInterface+".Scan", 0).Store(&networks)
	return networks, err
}

func (m *Modem) SetEpsUeModeOperation(mode Modem3gppEpsUeModeOperation) error {
	return m.call(Modem3GPPInterface+".SetEpsUeModeOperation", uint32(mode))
}

func (m *Modem) SetPacketServiceState(state Modem3gppPacketServiceState) error {
	return m.call(Modem3GPPInterface+".SetPacketServiceState", uint32(state))
}
