package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmergencyRequest_DisplayHospitalName(t *testing.T) {
	tests := []struct {
		name string
		req  EmergencyRequest
		want string
	}{
		{
			name: "requester_name wins over everything",
			req: EmergencyRequest{
				RequesterName:   "Requester",
				HospitalName:    "Hospital",
				HospitalNameAlt: "Alt",
				Hospital:        &HospitalRef{HospitalName: "Nested", Name: "NestedName"},
			},
			want: "Requester",
		},
		{
			name: "hospital_name wins over alternate key",
			req: EmergencyRequest{
				HospitalName:    "Hospital",
				HospitalNameAlt: "Alt",
			},
			want: "Hospital",
		},
		{
			name: "hospitalName alternate key wins over nested",
			req: EmergencyRequest{
				HospitalNameAlt: "Alt",
				Hospital:        &HospitalRef{HospitalName: "Nested"},
			},
			want: "Alt",
		},
		{
			name: "nested hospital_name wins over nested name",
			req: EmergencyRequest{
				Hospital: &HospitalRef{HospitalName: "Nested", Name: "NestedName"},
			},
			want: "Nested",
		},
		{
			name: "nested name is the last real fallback",
			req: EmergencyRequest{
				Hospital: &HospitalRef{Name: "NestedName"},
			},
			want: "NestedName",
		},
		{
			name: "placeholder when everything is empty",
			req:  EmergencyRequest{},
			want: UnknownHospital,
		},
		{
			name: "placeholder when nested object is empty too",
			req:  EmergencyRequest{Hospital: &HospitalRef{}},
			want: UnknownHospital,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.DisplayHospitalName())
		})
	}
}

func TestEmergencyRequest_DisplayLocation(t *testing.T) {
	tests := []struct {
		name string
		req  EmergencyRequest
		want string
	}{
		{
			name: "top-level city wins",
			req:  EmergencyRequest{City: "Moscow", Hospital: &HospitalRef{City: "Kazan"}},
			want: "Moscow",
		},
		{
			name: "nested city as fallback",
			req:  EmergencyRequest{Hospital: &HospitalRef{City: "Kazan"}},
			want: "Kazan",
		},
		{
			name: "placeholder when both empty",
			req:  EmergencyRequest{},
			want: "Emergency Unit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.DisplayLocation())
		})
	}
}

func TestEmergencyRequest_IsResponded(t *testing.T) {
	assert.False(t, (&EmergencyRequest{Status: StatusAwaiting}).IsResponded())
	assert.True(t, (&EmergencyRequest{Status: StatusResponded}).IsResponded())
	assert.True(t, (&EmergencyRequest{Status: StatusDonorFound}).IsResponded())
	assert.False(t, (&EmergencyRequest{Status: StatusCompleted}).IsResponded())
	assert.False(t, (&EmergencyRequest{}).IsResponded())
}

func TestHospital_DisplayContactNumber(t *testing.T) {
	tests := []struct {
		name     string
		hospital Hospital
		want     string
	}{
		{
			name: "contact_number wins over everything",
			hospital: Hospital{
				ContactNumber: "1",
				Phone:         "2",
				Contact:       "3",
				PhoneNumber:   "4",
			},
			want: "1",
		},
		{
			name:     "phone wins over contact",
			hospital: Hospital{Phone: "2", Contact: "3", PhoneNumber: "4"},
			want:     "2",
		},
		{
			name:     "contact wins over phone_number",
			hospital: Hospital{Contact: "3", PhoneNumber: "4"},
			want:     "3",
		},
		{
			name:     "phone_number as last fallback",
			hospital: Hospital{PhoneNumber: "4"},
			want:     "4",
		},
		{
			name:     "empty when hospital has no number at all",
			hospital: Hospital{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hospital.DisplayContactNumber())
		})
	}
}

func TestHospital_DialNumber(t *testing.T) {
	tests := []struct {
		name     string
		hospital Hospital
		want     string
	}{
		{
			name:     "strips formatting",
			hospital: Hospital{ContactNumber: "+7 (495) 000-00-00"},
			want:     "+74950000000",
		},
		{
			name:     "keeps digits only",
			hospital: Hospital{Phone: "8 800 555 35 35"},
			want:     "88005553535",
		},
		{
			name:     "uses the same fallback chain",
			hospital: Hospital{PhoneNumber: "(123) 456"},
			want:     "123456",
		},
		{
			name:     "empty in, empty out",
			hospital: Hospital{},
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.hospital.DialNumber())
		})
	}
}

func TestHospital_Coordinates(t *testing.T) {
	tests := []struct {
		name     string
		hospital Hospital
		wantLat  float64
		wantLng  float64
		wantOK   bool
	}{
		{
			name:     "full keys win over short keys",
			hospital: Hospital{Latitude: 55.75, Longitude: 37.61, Lat: 1, Lng: 2},
			wantLat:  55.75,
			wantLng:  37.61,
			wantOK:   true,
		},
		{
			name:     "short keys as fallback",
			hospital: Hospital{Lat: 55.75, Lng: 37.61},
			wantLat:  55.75,
			wantLng:  37.61,
			wantOK:   true,
		},
		{
			name:     "no coordinates",
			hospital: Hospital{},
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lng, ok := tt.hospital.Coordinates()
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantLat, lat)
				assert.Equal(t, tt.wantLng, lng)
			}
		})
	}
}

func TestHospital_MapsURL(t *testing.T) {
	h := Hospital{Latitude: 55.75, Longitude: 37.61}
	assert.Equal(t, "https://maps.google.com/?q=55.750000,37.610000", h.MapsURL())

	assert.Empty(t, (&Hospital{}).MapsURL())
}

func TestDonation_DisplayHospitalName(t *testing.T) {
	assert.Equal(t, "City Hospital", (&Donation{HospitalName: "City Hospital"}).DisplayHospitalName())
	// Старые записи без названия
	assert.Equal(t, "Emergency Donation", (&Donation{}).DisplayHospitalName())
}

func TestDonation_Units(t *testing.T) {
	assert.Equal(t, 3, (&Donation{UnitsDonated: 3}).Units())
	// Минимум одна единица
	assert.Equal(t, 1, (&Donation{}).Units())
	assert.Equal(t, 1, (&Donation{UnitsDonated: -2}).Units())
}
