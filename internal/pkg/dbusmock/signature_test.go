package dbusmock

import (
	"errors"
	"testing"

	"github.com/godbus/dbus/v5"
	"github.com/google/go-cmp/cmp"
)

func TestSplitSignature(t *testing.T) {
	tests := []struct {
		sig  string
		want []string
	}{
		{sig: "", want: nil},
		{sig: "s", want: []string{"s"}},
		{sig: "su", want: []string{"s", "u"}},
		{sig: "a{sv}o", want: []string{"a{sv}", "o"}},
		{sig: "(us)a(su)", want: []string{"(us)", "a(su)"}},
		{sig: "aa{sv}", want: []string{"aa{sv}"}},
		{sig: "a{oa{sa{sv}}}", want: []string{"a{oa{sa{sv}}}"}},
		{sig: "a(ubay)b", want: []string{"a(ubay)", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.sig, func(t *testing.T) {
			got, err := splitSignature(tt.sig)
			if err != nil {
				t.Fatalf("failed to split %q: %v", tt.sig, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("unexpected types (-want +got):\n%s", diff)
			}
		})
	}

	if _, err := splitSignature("a{s"); !errors.Is(err, ErrInvalidArgs) {
		t.Fatalf("expected ErrInvalidArgs, got %v", err)
	}
}

func TestZeroValues(t *testing.T) {
	sigs := []string{
		"",
		"s",
		"ybnqiuxtdsogh",
		"v",
		"ao",
		"aa{sv}",
		"a{oa{sa{sv}}}",
		"(us)",
		"(oa(ub))",
		"a(ubay)",
		"g",
		"(sg)",
		"a{sg}",
		"a(gv)",
	}

	for _, sig := range sigs {
		t.Run(sig, func(t *testing.T) {
			values, err := zeroValues(sig)
			if err != nil {
				t.Fatalf("failed to build zero values for %q: %v", sig, err)
			}
			if got := dbus.SignatureOf(values...).String(); got != sig {
				t.Fatalf("zero values marshal as %q, want %q", got, sig)
			}
		})
	}
}

func TestZeroValueObjectPath(t *testing.T) {
	v, err := zeroValue("o")
	if err != nil {
		t.Fatalf("failed to build zero value: %v", err)
	}
	if v != dbus.ObjectPath("/") {
		t.Fatalf("unexpected object path %v", v)
	}
	if !v.(dbus.ObjectPath).IsValid() {
		t.Fatal("zero object path must be valid")
	}
}
