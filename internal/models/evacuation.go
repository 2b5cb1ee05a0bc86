package models

// CenterStatus - состояние пункта эвакуации
type CenterStatus string

const (
	CenterStatusOpen    CenterStatus = "open"
	CenterStatusLimited CenterStatus = "limited"
	CenterStatusFull    CenterStatus = "full"
	CenterStatusClosed  CenterStatus = "closed"
)

// EvacuationCenter - пункт временного размещения
type EvacuationCenter struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Distance  string       `json:"distance"`
	Capacity  string       `json:"capacity"`
	Status    CenterStatus `json:"status"`
	Latitude  *float64     `json:"latitude,omitempty"`
	Longitude *float64     `json:"longitude,omitempty"`
}
