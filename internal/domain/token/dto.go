package token

type CreateRequest struct {
	Phone    *string `json:"phone,omitempty"`
	Password *string `json:"password,omitempty"`
}

type RenewRequest struct {
	ID     *string `json:"id,omitempty"`
	Extend *bool   `json:"extend,omitempty"`
}
