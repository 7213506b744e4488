package dbusmock

import (
	"encoding/xml"
	"fmt"
	"log/slog"
	"slices"

	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
	"github.com/godbus/dbus/v5/prop"
)

var mockIntrospectData = introspect.Interface{
	Name: MockInterface,
	Methods: []introspect.Method{
		{Name: "GetCalls", Args: []introspect.Arg{{Name: "calls", Type: "a(tsav)", Direction: "out"}}},
		{Name: "GetMethodCalls", Args: []introspect.Arg{
			{Name: "method", Type: "s", Direction: "in"},
			{Name: "calls", Type: "a(tav)", Direction: "out"},
		}},
		{Name: "ClearCalls"},
	},
}

func (m *Mock) introspect(path dbus.ObjectPath) string {
	node := introspect.Node{Name: string(path)}
	if obj, ok := m.Object(path); ok {
		node.Interfaces = append(obj.introspectInterfaces(), introspect.IntrospectData, prop.IntrospectData, mockIntrospectData)
	} else {
		node.Interfaces = []introspect.Interface{introspect.IntrospectData}
	}
	for _, child := range m.children(path) {
		node.Children = append(node.Children, introspect.Node{Name: child})
	}

	data, err := xml.MarshalIndent(node, "", "  ")
	if err != nil {
		slog.Error("failed to marshal introspection data", "path", path, "error", err)
		return introspect.IntrospectDeclarationString
	}
	return introspect.IntrospectDeclarationString + string(data)
}

func (o *Object) introspectInterfaces() []introspect.Interface {
	o.mutex.RLock()
	defer o.mutex.RUnlock()
	ifaces := make([]introspect.Interface, 0, len(o.names))
	for _, name := range o.names {
		i := o.interfaces[name]
		iface := introspect.Interface{Name: name}

		props := make([]string, 0, len(i.properties))
		for property := range i.properties {
			props = append(props, property)
		}
		slices.Sort(props)
		for _, property := range props {
			iface.Properties = append(iface.Properties, introspect.Property{
				Name:   property,
				Type:   i.properties[property].Signature().String(),
				Access: "readwrite",
			})
		}

		methods := make([]string, 0, len(i.methods))
		for method := range i.methods {
			methods = append(methods, method)
		}
		slices.Sort(methods)
		for _, method := range methods {
			iface.Methods = append(iface.Methods, introspectMethod(i.methods[method]))
		}
		ifaces = append(ifaces, iface)
	}
	return ifaces
}

func introspectMethod(m Method) introspect.Method {
	method := introspect.Method{Name: m.Name}
	in, _ := splitSignature(m.InSignature)
	for n, t := range in {
		method.Args = append(method.Args, introspect.Arg{Name: fmt.Sprintf("arg%d", n), Type: t, Direction: "in"})
	}
	out, _ := splitSignature(m.OutSignature)
	for n, t := range out {
		method.Args = append(method.Args, introspect.Arg{Name: fmt.Sprintf("ret%d", n), Type: t, Direction: "out"})
	}
	return method
}
