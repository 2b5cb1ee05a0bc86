package models

// GoBagItem - пункт чек-листа тревожного рюкзака
type GoBagItem struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
	Name     string `json:"name"`
	Checked  bool   `json:"checked"`
}

// GoBagProgress - степень готовности рюкзака
type GoBagProgress struct {
	Checked int `json:"checked"`
	Total   int `json:"total"`
	Percent int `json:"percent"`
}
