package models

type UserDto struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
