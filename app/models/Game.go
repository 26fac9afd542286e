package models

type GameCreateDto struct {
	Name            string `json:"name"`
	GoPayout        int    `json:"go_payout"`
	Rents           []int  `json:"rents"`
	StartingBalance int    `json:"starting_balance"`
}

type VerifyGameDto struct {
	Code string `json:"code" query:"code"`
}
