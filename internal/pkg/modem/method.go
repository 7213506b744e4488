package modem

import (
	"log/slog"
)

func (m *Modem) call(method string, args ...any) error {
	slog.Debug("calling modem method", "path", m.objectPath, "method", method, "args", args)
	return m.dbusObject.Call(method, 0, args...).Err
}
