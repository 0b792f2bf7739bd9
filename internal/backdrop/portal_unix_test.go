//go:build linux || freebsd || openbsd || netbsd || dragonfly

package backdrop

import (
	"testing"

	"github.com/godbus/dbus/v5"
)

func TestPortalOptions(t *testing.T) {
	prev := portalHandleToken
	portalHandleToken = func() string { return "test_token" }
	t.Cleanup(func() { portalHandleToken = prev })

	values := portalOptions()
	if v, ok := values["interactive"].Value().(bool); !ok || v {
		t.Fatalf("interactive = %v, want false", values["interactive"])
	}
	if v, ok := values["handle_token"].Value().(string); !ok || v != "test_token" {
		t.Fatalf("handle_token = %v", values["handle_token"])
	}
}

func TestPortalResult(t *testing.T) {
	ok := map[string]dbus.Variant{"uri": dbus.MakeVariant("file:///tmp/Screenshot%20one.png")}
	tests := []struct {
		name    string
		body    []interface{}
		want    string
		wantErr bool
	}{
		{name: "success", body: []interface{}{uint32(0), ok}, want: "/tmp/Screenshot one.png"},
		{name: "denied", body: []interface{}{uint32(1), ok}, wantErr: true},
		{name: "short", body: []interface{}{uint32(0)}, wantErr: true},
		{name: "no uri", body: []interface{}{uint32(0), map[string]dbus.Variant{}}, wantErr: true},
		{name: "wrong type", body: []interface{}{uint32(0), "x"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := portalResult(tc.body)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tc.want {
				t.Fatalf("path = %q, want %q", got, tc.want)
			}
		})
	}
}
