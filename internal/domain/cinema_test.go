package domain

import "testing"

func TestNewNearbyFilter(t *testing.T) {
	tests := []struct {
		name       string
		radiusKm   int
		wantMeters int
	}{
		{name: "zero radius falls back to default", radiusKm: 0, wantMeters: DefaultNearbyRadiusKm * 1000},
		{name: "negative radius falls back to default", radiusKm: -3, wantMeters: DefaultNearbyRadiusKm * 1000},
		{name: "explicit radius passes through", radiusKm: 25, wantMeters: 25000},
		{name: "ceiling passes through", radiusKm: MaxNearbyRadiusKm, wantMeters: MaxNearbyRadiusKm * 1000},
		{name: "oversized radius is capped", radiusKm: 300, wantMeters: MaxNearbyRadiusKm * 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewNearbyFilter(18.48, -69.94, tt.radiusKm)

			if f.RadiusMeters() != tt.wantMeters {
				t.Errorf("RadiusMeters() = %d, want %d", f.RadiusMeters(), tt.wantMeters)
			}
		})
	}
}
