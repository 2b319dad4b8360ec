package user

import "uptime/internal/domain/user"

type createInput struct {
	Body createUserBody
}

type createUserBody struct {
	_            struct{} `json:"-" additionalProperties:"true"`
	FirstName    *string  `json:"firstName,omitempty" example:"Ada"`
	LastName     *string  `json:"lastName,omitempty" example:"Lovelace"`
	Phone        *string  `json:"phone,omitempty" example:"5551234567" doc:"Exactly 10 characters"`
	Password     *string  `json:"password,omitempty" example:"ThisIsAPassword"`
	TOSAgreement *bool    `json:"tosAgreement,omitempty" doc:"Must be true"`
}

func (b createUserBody) request() user.CreateRequest {
	return user.CreateRequest{
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Phone:        b.Phone,
		Password:     b.Password,
		TOSAgreement: b.TOSAgreement,
	}
}

type phoneInput struct {
	Phone string `query:"phone" example:"5551234567" doc:"User phone number"`
}

type getOutput struct {
	Body UserResponse
}

// UserResponse пользователь без хэша пароля.
type UserResponse struct {
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Phone        string   `json:"phone"`
	TOSAgreement bool     `json:"tosAgreement"`
	Checks       []string `json:"checks"`
}

func toResponse(u user.User) UserResponse {
	checks := u.Checks
	if checks == nil {
		checks = []string{}
	}

	return UserResponse{
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Phone:        u.Phone,
		TOSAgreement: u.TOSAgreement,
		Checks:       checks,
	}
}

type updateInput struct {
	Body updateUserBody
}

type updateUserBody struct {
	_         struct{} `json:"-" additionalProperties:"true"`
	Phone     *string  `json:"phone,omitempty" example:"5551234567"`
	FirstName *string  `json:"firstName,omitempty"`
	LastName  *string  `json:"lastName,omitempty"`
	Password  *string  `json:"password,omitempty"`
}

func (b updateUserBody) request() user.UpdateRequest {
	return user.UpdateRequest{
		Phone:     b.Phone,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Password:  b.Password,
	}
}
