package models

// Coordinate - точка полигона опасной зоны
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// HazardZone - полигон территории с определенным риском (подтопление, оползень)
type HazardZone struct {
	ID          int64        `json:"id"`
	Name        string       `json:"name"`
	Type        string       `json:"type"`
	Coordinates []Coordinate `json:"coordinates"`
	Severity    string       `json:"severity"`
}

// Poi - точка интереса на карте (медпункт, зарядка, приют для животных)
type Poi struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Address   *string `json:"address,omitempty"`
	Available bool    `json:"available"`
}
