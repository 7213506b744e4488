package dbusmock

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/godbus/dbus/v5"
)

// Call is one recorded method invocation.
type Call struct {
	Time      time.Time
	Interface string
	Method    string
	Args      []any
}

type objectInterface struct {
	properties map[string]dbus.Variant
	methods    map[string]Method
}

type Object struct {
	mock  *Mock
	path  dbus.ObjectPath
	mutex sync.RWMutex
	// names keeps registration order for introspection and lookups
	// without an interface name.
	names      []string
	interfaces map[string]*objectInterface
	calls      []Call
}

func newObject(mock *Mock, path dbus.ObjectPath) *Object {
	return &Object{
		mock:       mock,
		path:       path,
		interfaces: make(map[string]*objectInterface),
	}
}

func (o *Object) Path() dbus.ObjectPath {
	return o.path
}

func (o *Object) Mock() *Mock {
	return o.mock
}

// Interfaces returns the object's interface names in registration order.
func (o *Object) Interfaces() []string {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return slices.Clone(o.names)
}

// AddProperties adds or replaces properties of iface, creating the
// interface when the object does not have it yet. No signal is sent.
func (o *Object) AddProperties(iface string, props map[string]dbus.Variant) error {
	return o.addInterface(iface, props, nil)
}

func (o *Object) AddMethods(iface string, methods []Method) error {
	return o.addInterface(iface, nil, methods)
}

func (o *Object) AddMethod(iface string, method Method) error {
	return o.addInterface(iface, nil, []Method{method})
}

func (o *Object) addInterface(name string, props map[string]dbus.Variant, methods []Method) error {
	if name == "" {
		return fmt.Errorf("%w: empty interface name on %s", ErrInvalidArgs, o.path)
	}
	for _, method := range methods {
		if err := method.validate(); err != nil {
			return fmt.Errorf("%s.%s on %s: %w", name, method.Name, o.path, err)
		}
	}

	o.mutex.Lock()
	defer o.mutex.Unlock()
	iface, ok := o.interfaces[name]
	if !ok {
		iface = &objectInterface{
			properties: make(map[string]dbus.Variant),
			methods:    make(map[string]Method),
		}
		o.interfaces[name] = iface
		o.names = append(o.names, name)
	}
	maps.Copy(iface.properties, props)
	for _, method := range methods {
		iface.methods[method.Name] = method
	}
	return nil
}

func (o *Object) Get(iface, name string) (dbus.Variant, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	i, ok := o.interfaces[iface]
	if !ok {
		return dbus.Variant{}, fmt.Errorf("%w: %s on %s", ErrInterfaceNotFound, iface, o.path)
	}
	value, ok := i.properties[name]
	if !ok {
		return dbus.Variant{}, fmt.Errorf("%w: %s.%s on %s", ErrPropertyNotFound, iface, name, o.path)
	}
	return value, nil
}

// GetAll returns a copy of every property of iface.
func (o *Object) GetAll(iface string) (map[string]dbus.Variant, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	i, ok := o.interfaces[iface]
	if !ok {
		return nil, fmt.Errorf("%w: %s on %s", ErrInterfaceNotFound, iface, o.path)
	}
	return maps.Clone(i.properties), nil
}

// Set changes an existing property and emits PropertiesChanged. The new value
// must keep the property's signature.
func (o *Object) Set(iface, name string, value dbus.Variant) error {
	o.mutex.Lock()
	i, ok := o.interfaces[iface]
	if !ok {
		o.mutex.Unlock()
		return fmt.Errorf("%w: %s on %s", ErrInterfaceNotFound, iface, o.path)
	}
	current, ok := i.properties[name]
	if !ok {
		o.mutex.Unlock()
		return fmt.Errorf("%w: %s.%s on %s", ErrPropertyNotFound, iface, name, o.path)
	}
	if current.Signature() != value.Signature() {
		o.mutex.Unlock()
		return fmt.Errorf("%w: %s.%s has signature %s, got %s", ErrInvalidArgs, iface, name, current.Signature(), value.Signature())
	}
	i.properties[name] = value
	o.mutex.Unlock()

	slog.Debug("mock property changed", "path", o.path, "interface", iface, "property", name, "value", value)
	return o.mock.emit(o.path, PropertiesInterface+".PropertiesChanged", iface, map[string]dbus.Variant{name: value}, []string{})
}

// Call invokes a method in-process with the same signature check a bus call
// gets. An empty iface selects the first interface that has the method.
func (o *Object) Call(iface, method string, args ...any) ([]any, error) {
	m, resolved, err := o.method(iface, method)
	if err != nil {
		return nil, err
	}
	if err := m.checkArgs(resolved, args); err != nil {
		return nil, err
	}
	return o.dispatch(resolved, m, args, true)
}

func (o *Object) method(iface, name string) (Method, string, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if iface == "" {
		for _, n := range o.names {
			if m, ok := o.interfaces[n].methods[name]; ok {
				return m, n, nil
			}
		}
		return Method{}, "", fmt.Errorf("%w: %s on %s", ErrMethodNotFound, name, o.path)
	}
	i, ok := o.interfaces[iface]
	if !ok {
		return Method{}, "", fmt.Errorf("%w: %s on %s", ErrInterfaceNotFound, iface, o.path)
	}
	m, ok := i.methods[name]
	if !ok {
		return Method{}, "", fmt.Errorf("%w: %s.%s on %s", ErrMethodNotFound, iface, name, o.path)
	}
	return m, iface, nil
}

func (o *Object) dispatch(iface string, method Method, args []any, record bool) ([]any, error) {
	if record {
		o.record(iface, method.Name, args)
	}
	slog.Debug("mock method called", "path", o.path, "interface", iface, "method", method.Name, "args", args)
	if method.Handler == nil {
		return zeroValues(method.OutSignature)
	}
	return method.Handler(o, args...)
}

func (o *Object) record(iface, method string, args []any) {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.calls = append(o.calls, Call{
		Time:      time.Now(),
		Interface: iface,
		Method:    method,
		Args:      slices.Clone(args),
	})
}

// Calls returns the method call log, oldest first.
func (o *Object) Calls() []Call {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	return slices.Clone(o.calls)
}

func (o *Object) MethodCalls(method string) []Call {
	var calls []Call
	for _, call := range o.Calls() {
		if call.Method == method {
			calls = append(calls, call)
		}
	}
	return calls
}

func (o *Object) ClearCalls() {
	o.mutex.Lock()
	defer o.mutex.Unlock()
	o.calls = nil
}

// snapshot returns the properties of the given interfaces, or of all
// interfaces when none are given, in the a{sa{sv}} shape.
func (o *Object) snapshot(ifaces ...string) (map[string]map[string]dbus.Variant, error) {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if len(ifaces) == 0 {
		ifaces = o.names
	}
	result := make(map[string]map[string]dbus.Variant, len(ifaces))
	for _, name := range ifaces {
		i, ok := o.interfaces[name]
		if !ok {
			return nil, fmt.Errorf("%w: %s on %s", ErrInterfaceNotFound, name, o.path)
		}
		result[name] = maps.Clone(i.properties)
	}
	return result, nil
}

// LookupInterface implements dbus.ServerObject.
func (o *Object) LookupInterface(name string) (dbus.Interface, bool) {
	if methods, ok := o.standardInterfaces()[name]; ok {
		return &serverInterface{name: name, object: o, methods: methods}, true
	}

	o.mutex.RLock()
	defer o.mutex.RUnlock()
	if name == "" {
		methods := make(map[string]Method)
		// earlier interfaces win
		for _, n := range slices.Backward(o.names) {
			maps.Copy(methods, o.interfaces[n].methods)
		}
		return &serverInterface{object: o, methods: methods, record: true}, true
	}
	i, ok := o.interfaces[name]
	if !ok {
		return nil, false
	}
	return &serverInterface{name: name, object: o, methods: maps.Clone(i.methods), record: true}, true
}
