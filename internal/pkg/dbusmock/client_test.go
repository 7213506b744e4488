package dbusmock

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

// errorName accepts both forms godbus uses for D-Bus errors.
func errorName(t *testing.T, err error) string {
	t.Helper()
	var value dbus.Error
	if errors.As(err, &value) {
		return value.Name
	}
	var pointer *dbus.Error
	if errors.As(err, &pointer) {
		return pointer.Name
	}
	t.Fatalf("expected a D-Bus error, got %v", err)
	return ""
}

func TestBusObject(t *testing.T) {
	m, obj, _ := testMock(t)
	o := m.BusObject("org.example", testPath)

	if o.Destination() != "org.example" || o.Path() != testPath {
		t.Fatalf("unexpected destination %s %s", o.Destination(), o.Path())
	}

	var old string
	if err := o.Call(testIface+".Rename", 0, "client").Store(&old); err != nil {
		t.Fatalf("failed to call Rename: %v", err)
	}
	if old != "thing" {
		t.Fatalf("unexpected return %q", old)
	}
	lock := struct {
		Facility uint32
		Key      string
	}{1, "1234"}
	if err := o.Call(testIface+".Lock", 0, lock).Err; err != nil {
		t.Fatalf("failed to call Lock: %v", err)
	}
	if got := len(obj.Calls()); got != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", got)
	}

	name, err := o.GetProperty(testIface + ".Name")
	if err != nil {
		t.Fatalf("failed to get property: %v", err)
	}
	if name.Value() != "client" {
		t.Fatalf("unexpected name %v", name)
	}
	if err := o.SetProperty(testIface+".Count", uint32(5)); err != nil {
		t.Fatalf("failed to set property: %v", err)
	}
	var count uint32
	if err := o.StoreProperty(testIface+".Count", &count); err != nil {
		t.Fatalf("failed to store property: %v", err)
	}
	if count != 5 {
		t.Fatalf("unexpected count %d", count)
	}

	ch := make(chan *dbus.Call, 1)
	o.Go(testIface+".Reset", 0, ch)
	if call := <-ch; call.Err != nil {
		t.Fatalf("failed to call Reset: %v", call.Err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := o.CallWithContext(ctx, testIface+".Reset", 0).Err; !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBusObjectErrors(t *testing.T) {
	m, obj, _ := testMock(t)

	tests := []struct {
		name   string
		path   dbus.ObjectPath
		method string
		args   []any
		want   string
	}{
		{name: "wrong argument type", path: testPath, method: testIface + ".Rename", args: []any{uint32(1)}, want: "org.freedesktop.DBus.Error.InvalidArgs"},
		{name: "bool expected", path: testPath, method: testIface + ".Rename", args: []any{true}, want: "org.freedesktop.DBus.Error.InvalidArgs"},
		{name: "missing argument", path: testPath, method: testIface + ".Rename", want: "org.freedesktop.DBus.Error.InvalidArgs"},
		{name: "unrepresentable argument", path: testPath, method: testIface + ".Rename", args: []any{make(chan int)}, want: "org.freedesktop.DBus.Error.InvalidArgs"},
		{name: "properties with integers", path: testPath, method: PropertiesInterface + ".Get", args: []any{1, 2}, want: "org.freedesktop.DBus.Error.InvalidArgs"},
		{name: "unknown property", path: testPath, method: PropertiesInterface + ".Get", args: []any{testIface, "Missing"}, want: "org.freedesktop.DBus.Error.UnknownProperty"},
		{name: "unknown object", path: "/org/other", method: testIface + ".Reset", want: "org.freedesktop.DBus.Error.NoSuchObject"},
		{name: "unknown interface", path: testPath, method: "org.example.Missing.Reset", want: "org.freedesktop.DBus.Error.UnknownInterface"},
		{name: "node has no properties", path: testRoot, method: PropertiesInterface + ".GetAll", args: []any{testIface}, want: "org.freedesktop.DBus.Error.UnknownInterface"},
		{name: "unknown method", path: testPath, method: testIface + ".Missing", want: "org.freedesktop.DBus.Error.UnknownMethod"},
		{name: "no interface", path: testPath, method: "Reset", want: "org.freedesktop.DBus.Error.UnknownMethod"},
		{name: "handler error", path: testPath, method: testIface + ".Fail", want: "org.example.Error.Broken"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := m.BusObject("org.example", tt.path).Call(tt.method, 0, tt.args...).Err
			if got := errorName(t, err); got != tt.want {
				t.Fatalf("unexpected error name: got %q, want %q", got, tt.want)
			}
		})
	}

	// rejected calls are not recorded
	if got := obj.MethodCalls("Rename"); len(got) != 0 {
		t.Fatalf("expected no Rename calls, got %v", got)
	}
}

func TestStubSignatureReply(t *testing.T) {
	m := New(testRoot)
	if _, err := m.AddObject(testRoot+"/Stub", testIface, nil, []Method{
		{Name: "Signature", OutSignature: "g"},
		{Name: "Named", OutSignature: "(sg)"},
		{Name: "Table", OutSignature: "a{sg}"},
	}); err != nil {
		t.Fatalf("failed to add object: %v", err)
	}
	o := m.BusObject("org.example", testRoot+"/Stub")

	var sig dbus.Signature
	if err := o.Call(testIface+".Signature", 0).Store(&sig); err != nil {
		t.Fatalf("failed to call Signature: %v", err)
	}
	if sig.String() != "" {
		t.Fatalf("unexpected signature %q", sig)
	}
	for _, method := range []string{"Named", "Table"} {
		call := o.Call(testIface+"."+method, 0)
		if call.Err != nil {
			t.Fatalf("failed to call %s: %v", method, call.Err)
		}
		if len(call.Body) != 1 {
			t.Fatalf("%s returned %d values", method, len(call.Body))
		}
	}
}

func TestToDBusError(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{err: ErrObjectNotFound, want: "org.freedesktop.DBus.Error.NoSuchObject"},
		{err: ErrInterfaceNotFound, want: "org.freedesktop.DBus.Error.UnknownInterface"},
		{err: ErrMethodNotFound, want: "org.freedesktop.DBus.Error.UnknownMethod"},
		{err: ErrPropertyNotFound, want: "org.freedesktop.DBus.Error.UnknownProperty"},
		{err: fmt.Errorf("wrapped: %w", ErrInvalidArgs), want: "org.freedesktop.DBus.Error.InvalidArgs"},
		{err: errors.New("boom"), want: "org.freedesktop.DBus.Error.Failed"},
		{err: dbus.NewError("org.example.Error.Kept", nil), want: "org.example.Error.Kept"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := errorName(t, toDBusError(tt.err)); got != tt.want {
				t.Fatalf("unexpected error name: got %q, want %q", got, tt.want)
			}
		})
	}
	if diff := cmp.Diff([]any{"boom"}, toDBusError(errors.New("boom")).(*dbus.Error).Body); diff != "" {
		t.Fatalf("unexpected error body (-want +got):\n%s", diff)
	}
}
