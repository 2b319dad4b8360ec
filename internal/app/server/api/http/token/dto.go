package token

import "uptime/internal/domain/token"

type createInput struct {
	Body createTokenBody
}

type createTokenBody struct {
	_        struct{} `json:"-" additionalProperties:"true"`
	Phone    *string  `json:"phone,omitempty" example:"5551234567"`
	Password *string  `json:"password,omitempty" example:"ThisIsAPassword"`
}

func (b createTokenBody) request() token.CreateRequest {
	return token.CreateRequest{Phone: b.Phone, Password: b.Password}
}

type tokenOutput struct {
	Body token.Token
}

type idInput struct {
	ID string `query:"id" doc:"Token id, 20 characters"`
}

type renewInput struct {
	Body renewTokenBody
}

type renewTokenBody struct {
	_      struct{} `json:"-" additionalProperties:"true"`
	ID     *string  `json:"id,omitempty" doc:"Token id, 20 characters"`
	Extend *bool    `json:"extend,omitempty" doc:"Must be true"`
}

func (b renewTokenBody) request() token.RenewRequest {
	return token.RenewRequest{ID: b.ID, Extend: b.Extend}
}
