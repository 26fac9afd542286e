package models

type PlayerDto struct {
	Username string `json:"username"`
	Balance  int    `json:"balance"`
	Pos      int    `json:"pos"`
	Spaces   []int  `json:"spaces"`
	Active   bool   `json:"active"`
}
