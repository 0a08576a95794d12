package openstreetmap

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Lookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		_, _ = w.Write([]byte(`{
			"place_id": 123, "lat": "12.97", "lon": "77.59",
			"name": "Bengaluru", "display_name": "Bengaluru, Karnataka, India",
			"address": {"city": "Bengaluru", "state_district": "Bangalore Urban", "state": "Karnataka",
			            "postcode": "560001", "country": "India", "country_code": "in"},
			"boundingbox": ["12.8", "13.1", "77.4", "77.8"]
		}`))
	}))
	defer srv.Close()

	client := NewClientWithURL(srv.URL, slog.New(slog.DiscardHandler))

	resp, err := client.Lookup(context.Background(), 12.9716, 77.5946)
	if err != nil {
		t.Fatalf("Lookup() unexpected error = %v", err)
	}
	if resp.Address.Settlement() != "Bengaluru" {
		t.Errorf("Settlement() = %q, want Bengaluru", resp.Address.Settlement())
	}
	if resp.Address.District() != "Bangalore Urban" {
		t.Errorf("District() = %q, want Bangalore Urban", resp.Address.District())
	}
	if resp.Address.State != "Karnataka" {
		t.Errorf("State = %q, want Karnataka", resp.Address.State)
	}
}

func TestAddress_Fallbacks(t *testing.T) {
	tests := []struct {
		name           string
		address        Address
		wantSettlement string
		wantDistrict   string
	}{
		{
			name:           "town and county",
			address:        Address{Town: "Manali", County: "Kullu"},
			wantSettlement: "Manali",
			wantDistrict:   "Kullu",
		},
		{
			name:           "village only",
			address:        Address{Village: "Mawlynnong"},
			wantSettlement: "Mawlynnong",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.address.Settlement(); got != tt.wantSettlement {
				t.Errorf("Settlement() = %q, want %q", got, tt.wantSettlement)
			}
			if got := tt.address.District(); got != tt.wantDistrict {
				t.Errorf("District() = %q, want %q", got, tt.wantDistrict)
			}
		})
	}
}
