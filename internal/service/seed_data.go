package service

import "github.com/shenikar/disaster_preparedness/internal/models"

func DefaultGoBagItems() []*models.GoBagItem {
	return []*models.GoBagItem{
		{Category: "Water & Food", Name: "Drinking water (3 liters per person)"},
		{Category: "Water & Food", Name: "Ready-to-eat food for 3 days"},
		{Category: "Water & Food", Name: "Can opener"},
		{Category: "First Aid", Name: "First aid kit"},
		{Category: "First Aid", Name: "Prescription medicines"},
		{Category: "First Aid", Name: "Face masks"},
		{Category: "Documents", Name: "Copies of IDs and insurance"},
		{Category: "Documents", Name: "Emergency contact list"},
		{Category: "Documents", Name: "Cash in small bills"},
		{Category: "Tools", Name: "Flashlight with spare batteries"},
		{Category: "Tools", Name: "Battery-powered radio"},
		{Category: "Tools", Name: "Power bank"},
		{Category: "Tools", Name: "Whistle"},
		{Category: "Clothing", Name: "Rain gear"},
		{Category: "Clothing", Name: "Change of clothes"},
		{Category: "Hygiene", Name: "Toiletries and sanitizer"},
	}
}

func DefaultEvacuationCenters() []*models.EvacuationCenter {
	return []*models.EvacuationCenter{
		{Name: "City Sports Complex", Distance: "1.2 km", Capacity: "500 persons", Status: models.CenterStatusOpen, Latitude: ptr(14.5995), Longitude: ptr(120.9842)},
		{Name: "Central Elementary School", Distance: "2.5 km", Capacity: "300 persons", Status: models.CenterStatusOpen, Latitude: ptr(14.6042), Longitude: ptr(120.9822)},
		{Name: "Barangay Hall Covered Court", Distance: "3.1 km", Capacity: "150 persons", Status: models.CenterStatusLimited, Latitude: ptr(14.5903), Longitude: ptr(120.9791)},
		{Name: "Municipal Gymnasium", Distance: "4.8 km", Capacity: "800 persons", Status: models.CenterStatusFull, Latitude: ptr(14.6110), Longitude: ptr(120.9930)},
	}
}

func DefaultHousehold() (*models.Household, []*models.Member) {
	household := &models.Household{Name: "My Family"}
	members := []*models.Member{
		{Name: "Maria", Contact: ptr("+639170000001"), Status: models.MemberStatusSafe},
		{Name: "Jose", Contact: ptr("+639170000002"), Status: models.MemberStatusUnknown},
		{Name: "Ana", Status: models.MemberStatusUnknown},
	}
	return household, members
}

func DefaultHazardZones() []*models.HazardZone {
	return []*models.HazardZone{
		{
			Name:     "Riverside Flood Zone",
			Type:     "flood",
			Severity: "high",
			Coordinates: []models.Coordinate{
				{Latitude: 14.5950, Longitude: 120.9750},
				{Latitude: 14.5980, Longitude: 120.9800},
				{Latitude: 14.5920, Longitude: 120.9850},
				{Latitude: 14.5890, Longitude: 120.9790},
			},
		},
		{
			Name:     "Hillside Landslide Area",
			Type:     "landslide",
			Severity: "moderate",
			Coordinates: []models.Coordinate{
				{Latitude: 14.6150, Longitude: 120.9950},
				{Latitude: 14.6190, Longitude: 121.0010},
				{Latitude: 14.6120, Longitude: 121.0040},
			},
		},
	}
}

func DefaultPOIs() []*models.Poi {
	return []*models.Poi{
		{Name: "City General Hospital", Type: "medical", Latitude: 14.6010, Longitude: 120.9860, Address: ptr("12 Rizal Ave"), Available: true},
		{Name: "Red Cross First Aid Station", Type: "medical", Latitude: 14.5970, Longitude: 120.9810, Available: true},
		{Name: "Public Library Charging Hub", Type: "charging", Latitude: 14.6025, Longitude: 120.9835, Address: ptr("5 Mabini St"), Available: true},
		{Name: "Municipal Hall Charging Station", Type: "charging", Latitude: 14.5990, Longitude: 120.9880, Available: false},
		{Name: "Animal Welfare Shelter", Type: "pet-shelter", Latitude: 14.6075, Longitude: 120.9900, Address: ptr("88 Bonifacio Rd"), Available: true},
	}
}

func ptr[T any](v T) *T {
	return &v
}
