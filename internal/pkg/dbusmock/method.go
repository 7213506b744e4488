package dbusmock

import (
	"errors"
	"fmt"
	"time"

	"github.com/godbus/dbus/v5"
)

// Handler implements a mock method. A nil Handler makes the method a stub.
type Handler func(obj *Object, args ...any) ([]any, error)

// Method describes one mock method. InSignature and OutSignature are
// concatenated D-Bus signatures such as "su" or "a{sv}".
type Method struct {
	Name         string
	InSignature  string
	OutSignature string
	Handler      Handler
}

func (m Method) validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: empty method name", ErrInvalidArgs)
	}
	if _, err := splitSignature(m.InSignature); err != nil {
		return fmt.Errorf("in signature %q: %w", m.InSignature, err)
	}
	if _, err := splitSignature(m.OutSignature); err != nil {
		return fmt.Errorf("out signature %q: %w", m.OutSignature, err)
	}
	return nil
}

// checkArgs compares the signature of args with InSignature. Values that
// have no D-Bus representation are rejected as well.
func (m Method) checkArgs(iface string, args []any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %s.%s: %v", ErrInvalidArgs, iface, m.Name, r)
		}
	}()
	if sig := dbus.SignatureOf(args...).String(); sig != m.InSignature {
		return fmt.Errorf("%w: %s.%s expects %q, got %q", ErrInvalidArgs, iface, m.Name, m.InSignature, sig)
	}
	return nil
}

// serverInterface implements dbus.Interface for one interface of an object.
// An empty name stands for calls that carry no interface header.
type serverInterface struct {
	name    string
	object  *Object
	methods map[string]Method
	record  bool
}

func (s *serverInterface) LookupMethod(name string) (dbus.Method, bool) {
	method, ok := s.methods[name]
	if !ok {
		return nil, false
	}
	iface := s.name
	if iface == "" && s.object != nil {
		if _, resolved, err := s.object.method("", name); err == nil {
			iface = resolved
		}
	}
	return &serverMethod{object: s.object, iface: iface, method: method, record: s.record}, true
}

// serverMethod implements dbus.Method and dbus.ArgumentDecoder. The decoder
// checks the body signature from the message header, which keeps struct
// arguments intact as godbus delivers them as []any.
type serverMethod struct {
	object *Object
	iface  string
	method Method
	record bool
}

func (s *serverMethod) DecodeArguments(_ *dbus.Conn, _ string, msg *dbus.Message, args []any) ([]any, error) {
	var sig string
	if v, ok := msg.Headers[dbus.FieldSignature]; ok {
		if signature, ok := v.Value().(dbus.Signature); ok {
			sig = signature.String()
		}
	}
	if sig != s.method.InSignature {
		return nil, toDBusError(fmt.Errorf("%w: %s.%s expects %q, got %q", ErrInvalidArgs, s.iface, s.method.Name, s.method.InSignature, sig))
	}
	return args, nil
}

func (s *serverMethod) Call(args ...any) ([]any, error) {
	var (
		ret []any
		err error
	)
	if s.object == nil {
		ret, err = s.invoke(args)
	} else {
		ret, err = s.object.dispatch(s.iface, s.method, args, s.record)
	}
	if err != nil {
		return nil, toDBusError(err)
	}
	return ret, nil
}

func (s *serverMethod) invoke(args []any) ([]any, error) {
	if s.method.Handler == nil {
		return zeroValues(s.method.OutSignature)
	}
	return s.method.Handler(nil, args...)
}

func (s *serverMethod) NumArguments() int {
	types, _ := splitSignature(s.method.InSignature)
	return len(types)
}

func (s *serverMethod) NumReturns() int {
	types, _ := splitSignature(s.method.OutSignature)
	return len(types)
}

func (s *serverMethod) ArgumentValue(position int) any {
	return valueAt(s.method.InSignature, position)
}

func (s *serverMethod) ReturnValue(position int) any {
	return valueAt(s.method.OutSignature, position)
}

func valueAt(signature string, position int) any {
	types, err := splitSignature(signature)
	if err != nil || position < 0 || position >= len(types) {
		return nil
	}
	value, err := zeroValue(types[position])
	if err != nil {
		return nil
	}
	return value
}

// toDBusError maps the package's sentinel errors onto the standard D-Bus error
// names. Errors that already are D-Bus errors pass through unchanged.
func toDBusError(err error) error {
	var dbusErr *dbus.Error
	if errors.As(err, &dbusErr) {
		return dbusErr
	}
	name := "org.freedesktop.DBus.Error.Failed"
	switch {
	case errors.Is(err, ErrObjectNotFound):
		name = "org.freedesktop.DBus.Error.NoSuchObject"
	case errors.Is(err, ErrInterfaceNotFound):
		name = "org.freedesktop.DBus.Error.UnknownInterface"
	case errors.Is(err, ErrMethodNotFound):
		name = "org.freedesktop.DBus.Error.UnknownMethod"
	case errors.Is(err, ErrPropertyNotFound):
		name = "org.freedesktop.DBus.Error.UnknownProperty"
	case errors.Is(err, ErrInvalidArgs):
		name = "org.freedesktop.DBus.Error.InvalidArgs"
	}
	return dbus.NewError(name, []any{err.Error()})
}

type callRecord struct {
	Timestamp uint64
	Method    string
	Args      []dbus.Variant
}

type methodCallRecord struct {
	Timestamp uint64
	Args      []dbus.Variant
}

func variants(args []any) []dbus.Variant {
	values := make([]dbus.Variant, 0, len(args))
	for _, arg := range args {
		values = append(values, dbus.MakeVariant(arg))
	}
	return values
}

func unixTime(t time.Time) uint64 {
	return uint64(t.Unix())
}

// standardInterfaces returns the interfaces every mock object serves besides
// its own: Properties, Introspectable and the call log.
func (o *Object) standardInterfaces() map[string]map[string]Method {
	return map[string]map[string]Method{
		PropertiesInterface: {
			"Get": {
				Name:         "Get",
				InSignature:  "ss",
				OutSignature: "v",
				Handler: func(obj *Object, args ...any) ([]any, error) {
					value, err := obj.Get(args[0].(string), args[1].(string))
					if err != nil {
						return nil, err
					}
					return []any{value}, nil
				},
			},
			"GetAll": {
				Name:         "GetAll",
				InSignature:  "s",
				OutSignature: "a{sv}",
				Handler: func(obj *Object, args ...any) ([]any, error) {
					props, err := obj.GetAll(args[0].(string))
					if err != nil {
						return nil, err
					}
					return []any{props}, nil
				},
			},
			"Set": {
				Name:        "Set",
				InSignature: "ssv",
				Handler: func(obj *Object, args ...any) ([]any, error) {
					return nil, obj.Set(args[0].(string), args[1].(string), args[2].(dbus.Variant))
				},
			},
		},
		IntrospectableInterface: {
			"Introspect": {
				Name:         "Introspect",
				OutSignature: "s",
				Handler: func(obj *Object, _ ...any) ([]any, error) {
					return []any{obj.mock.introspect(obj.path)}, nil
				},
			},
		},
		MockInterface: {
			"GetCalls": {
				Name:         "GetCalls",
				OutSignature: "a(tsav)",
				Handler: func(obj *Object, _ ...any) ([]any, error) {
					records := []callRecord{}
					for _, call := range obj.Calls() {
						records = append(records, callRecord{unixTime(call.Time), call.Method, variants(call.Args)})
					}
					return []any{records}, nil
				},
			},
			"GetMethodCalls": {
				Name:         "GetMethodCalls",
				InSignature:  "s",
				OutSignature: "a(tav)",
				Handler: func(obj *Object, args ...any) ([]any, error) {
					records := []methodCallRecord{}
					for _, call := range obj.MethodCalls(args[0].(string)) {
						records = append(records, methodCallRecord{unixTime(call.Time), variants(call.Args)})
					}
					return []any{records}, nil
				},
			},
			"ClearCalls": {
				Name: "ClearCalls",
				Handler: func(obj *Object, _ ...any) ([]any, error) {
					obj.ClearCalls()
					return nil, nil
				},
			},
		},
	}
}
