package wifi

import (
	"net"
	"testing"
)

func TestStationInfo_RoundTrip(t *testing.T) {
	mac, _ := net.ParseMAC("aa:bb:cc:dd:ee:ff")

	gotMAC, aid, ok := StationInfo(EncodeStation(mac, 3))
	if !ok {
		t.Fatal("StationInfo() ok = false, want true")
	}
	if gotMAC.String() != mac.String() {
		t.Errorf("mac = %v, want %v", gotMAC, mac)
	}
	if aid != 3 {
		t.Errorf("aid = %d, want 3", aid)
	}
}

func TestStationInfo_RejectsOtherLayouts(t *testing.T) {
	for _, payload := range [][]byte{nil, {1, 2, 3}, make([]byte, 12)} {
		if _, _, ok := StationInfo(payload); ok {
			t.Errorf("StationInfo(%v) ok = true, want false", payload)
		}
	}
}

func TestAuthMode_String(t *testing.T) {
	tests := []struct {
		mode AuthMode
		want string
	}{
		{AuthOpen, "OPEN"},
		{AuthWPA2PSK, "WPA2_PSK"},
		{AuthWPA3PSK, "WPA3_PSK"},
		{AuthMode(42), "AuthMode(42)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("AuthMode.String() = %q, want %q", got, tt.want)
		}
	}

	if AuthMode(42).Valid() {
		t.Error("AuthMode(42).Valid() = true, want false")
	}
}
