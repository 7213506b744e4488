package dbusmock

import (
	"context"
	"strings"

	"github.com/godbus/dbus/v5"
)

// BusObject returns a dbus.BusObject that calls straight into the object at
// path, the same way a bus peer would but without a connection. Arguments are
// checked against the method's in signature. Signals are not delivered to it.
func (m *Mock) BusObject(dest string, path dbus.ObjectPath) dbus.BusObject {
	return &busObject{mock: m, dest: dest, path: path}
}

type busObject struct {
	mock *Mock
	dest string
	path dbus.ObjectPath
}

func (o *busObject) Call(method string, flags dbus.Flags, args ...any) *dbus.Call {
	return o.CallWithContext(context.Background(), method, flags, args...)
}

func (o *busObject) CallWithContext(ctx context.Context, method string, flags dbus.Flags, args ...any) *dbus.Call {
	return o.GoWithContext(ctx, method, flags, make(chan *dbus.Call, 1), args...)
}

func (o *busObject) Go(method string, flags dbus.Flags, ch chan *dbus.Call, args ...any) *dbus.Call {
	return o.GoWithContext(context.Background(), method, flags, ch, args...)
}

func (o *busObject) GoWithContext(ctx context.Context, method string, _ dbus.Flags, ch chan *dbus.Call, args ...any) *dbus.Call {
	call := &dbus.Call{
		Destination: o.dest,
		Path:        o.path,
		Method:      method,
		Args:        args,
		Done:        ch,
	}
	if err := ctx.Err(); err != nil {
		call.Err = err
	} else {
		call.Body, call.Err = o.dispatch(method, args)
	}
	if ch != nil {
		ch <- call
	}
	return call
}

func (o *busObject) dispatch(method string, args []any) ([]any, error) {
	i := strings.LastIndex(method, ".")
	if i == -1 {
		return nil, dbus.MakeUnknownMethodError(method)
	}
	iface, name := method[:i], method[i+1:]
	obj, ok := o.mock.LookupObject(o.path)
	if !ok {
		return nil, dbus.MakeNoObjectError(o.path)
	}
	served, ok := obj.LookupInterface(iface)
	if !ok {
		return nil, dbus.MakeUnknownInterfaceError(iface)
	}
	m, ok := served.LookupMethod(name)
	if !ok {
		return nil, dbus.MakeUnknownMethodError(name)
	}
	// a bus peer gets this check from DecodeArguments
	if sm, ok := m.(*serverMethod); ok {
		if err := sm.method.checkArgs(sm.iface, args); err != nil {
			return nil, toDBusError(err)
		}
	}
	return m.Call(args...)
}

func (o *busObject) AddMatchSignal(string, string, ...dbus.MatchOption) *dbus.Call {
	return &dbus.Call{}
}

func (o *busObject) RemoveMatchSignal(string, string, ...dbus.MatchOption) *dbus.Call {
	return &dbus.Call{}
}

func (o *busObject) GetProperty(p string) (dbus.Variant, error) {
	var value dbus.Variant
	err := o.StoreProperty(p, &value)
	return value, err
}

func (o *busObject) StoreProperty(p string, value any) error {
	iface, name := splitMember(p)
	return o.Call(PropertiesInterface+".Get", 0, iface, name).Store(value)
}

func (o *busObject) SetProperty(p string, v any) error {
	iface, name := splitMember(p)
	value, ok := v.(dbus.Variant)
	if !ok {
		value = dbus.MakeVariant(v)
	}
	return o.Call(PropertiesInterface+".Set", 0, iface, name, value).Err
}

func (o *busObject) Destination() string {
	return o.dest
}

func (o *busObject) Path() dbus.ObjectPath {
	return o.path
}

func splitMember(p string) (string, string) {
	i := strings.LastIndex(p, ".")
	if i == -1 {
		return "", p
	}
	return p[:i], p[i+1:]
}
