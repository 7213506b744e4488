// Package dbusmock hosts a tree of mock D-Bus objects on a godbus connection.
//
// A Mock is a dbus.Handler: pass it to dbus.WithHandler when connecting and
// every object registered with AddObject becomes reachable on the bus with its
// properties (org.freedesktop.DBus.Properties), introspection data and method
// table. Without a connection the registry works fully in-process.
package dbusmock

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/godbus/dbus/v5"
)

const (
	PropertiesInterface     = "org.freedesktop.DBus.Properties"
	IntrospectableInterface = "org.freedesktop.DBus.Introspectable"
	ObjectManagerInterface  = "org.freedesktop.DBus.ObjectManager"
	MockInterface           = "org.freedesktop.DBus.Mock"
)

var (
	ErrObjectExists      = errors.New("object already exists")
	ErrObjectNotFound    = errors.New("object not found")
	ErrInterfaceNotFound = errors.New("interface not found")
	ErrPropertyNotFound  = errors.New("property not found")
	ErrMethodNotFound    = errors.New("method not found")
	ErrInvalidArgs       = errors.New("invalid arguments")
	ErrInvalidPath       = errors.New("invalid object path")
)

// Emitter sends signals. *dbus.Conn satisfies it.
type Emitter interface {
	Emit(path dbus.ObjectPath, name string, values ...any) error
}

type Mock struct {
	root    dbus.ObjectPath
	mutex   sync.RWMutex
	objects map[dbus.ObjectPath]*Object
	emitter Emitter
}

// New creates an empty registry whose ObjectManager signals are sent from root.
func New(root dbus.ObjectPath) *Mock {
	return &Mock{
		root:    root,
		objects: make(map[dbus.ObjectPath]*Object),
	}
}

// Attach sets the emitter used for every signal sent after the call.
func (m *Mock) Attach(emitter Emitter) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.emitter = emitter
}

// AddObject registers a new object at path with one interface, its initial
// properties and its method table. It does not announce the object; call
// EmitObjectAdded once the object is complete.
func (m *Mock) AddObject(path dbus.ObjectPath, iface string, props map[string]dbus.Variant, methods []Method) (*Object, error) {
	if !path.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, path)
	}
	obj := newObject(m, path)
	if err := obj.addInterface(iface, props, methods); err != nil {
		return nil, err
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()
	if _, ok := m.objects[path]; ok {
		return nil, fmt.Errorf("%w: %s", ErrObjectExists, path)
	}
	m.objects[path] = obj
	slog.Debug("mock object added", "path", path, "interface", iface, "properties", len(props), "methods", len(methods))
	return obj, nil
}

// RemoveObject drops the object at path and announces it with
// InterfacesRemoved.
func (m *Mock) RemoveObject(path dbus.ObjectPath) error {
	m.mutex.Lock()
	obj, ok := m.objects[path]
	if !ok {
		m.mutex.Unlock()
		return fmt.Errorf("%w: %s", ErrObjectNotFound, path)
	}
	delete(m.objects, path)
	m.mutex.Unlock()

	slog.Debug("mock object removed", "path", path)
	return m.emit(m.root, ObjectManagerInterface+".InterfacesRemoved", path, obj.Interfaces())
}

func (m *Mock) Object(path dbus.ObjectPath) (*Object, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	obj, ok := m.objects[path]
	return obj, ok
}

// Objects returns a snapshot of the registry. Adding or removing objects
// afterwards does not change the returned map.
func (m *Mock) Objects() map[dbus.ObjectPath]*Object {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	objects := make(map[dbus.ObjectPath]*Object, len(m.objects))
	for path, obj := range m.objects {
		objects[path] = obj
	}
	return objects
}

// EmitObjectAdded announces every interface of the object at path with
// org.freedesktop.DBus.ObjectManager.InterfacesAdded.
func (m *Mock) EmitObjectAdded(path dbus.ObjectPath) error {
	return m.EmitInterfacesAdded(path)
}

// EmitInterfacesAdded announces the given interfaces of the object at path,
// or all of them when none are given.
func (m *Mock) EmitInterfacesAdded(path dbus.ObjectPath, ifaces ...string) error {
	obj, ok := m.Object(path)
	if !ok {
		return fmt.Errorf("%w: %s", ErrObjectNotFound, path)
	}
	added, err := obj.snapshot(ifaces...)
	if err != nil {
		return err
	}
	return m.emit(m.root, ObjectManagerInterface+".InterfacesAdded", path, added)
}

func (m *Mock) EmitSignal(path dbus.ObjectPath, iface, name string, args ...any) error {
	return m.emit(path, iface+"."+name, args...)
}

func (m *Mock) emit(path dbus.ObjectPath, name string, values ...any) error {
	m.mutex.RLock()
	emitter := m.emitter
	m.mutex.RUnlock()
	if emitter == nil {
		return nil
	}
	if err := emitter.Emit(path, name, values...); err != nil {
		return fmt.Errorf("emit %s on %s: %w", name, path, err)
	}
	return nil
}

// LookupObject implements dbus.Handler. Paths that only prefix registered
// objects resolve to bare nodes so the tree can be introspected from "/".
func (m *Mock) LookupObject(path dbus.ObjectPath) (dbus.ServerObject, bool) {
	if obj, ok := m.Object(path); ok {
		return obj, true
	}
	if len(m.children(path)) > 0 {
		return &node{mock: m, path: path}, true
	}
	return nil, false
}

// children lists the next path segment of every object below path.
func (m *Mock) children(path dbus.ObjectPath) []string {
	prefix := string(path) + "/"
	if path == "/" {
		prefix = "/"
	}
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	var names []string
	for p := range m.objects {
		rest, ok := strings.CutPrefix(string(p), prefix)
		if !ok || rest == "" {
			continue
		}
		name, _, _ := strings.Cut(rest, "/")
		if !slices.Contains(names, name) {
			names = append(names, name)
		}
	}
	slices.Sort(names)
	return names
}

// node is a path without an object of its own.
type node struct {
	mock *Mock
	path dbus.ObjectPath
}

func (n *node) LookupInterface(name string) (dbus.Interface, bool) {
	if name != IntrospectableInterface {
		return nil, false
	}
	return &serverInterface{name: name, methods: map[string]Method{
		"Introspect": {
			Name:         "Introspect",
			OutSignature: "s",
			Handler: func(_ *Object, _ ...any) ([]any, error) {
				return []any{n.mock.introspect(n.path)}, nil
			},
		},
	}}, true
}
