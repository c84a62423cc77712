package dto

import "github.com/Umar-Zak/lyospot/internal/domain"

type TokenResponse struct {
	Token string `json:"token"`
}

type RegisterResponse struct {
	User  domain.User `json:"user"`
	Token string      `json:"token"`
}
