package user

// CreateRequest сырые данные регистрации. Указатели отличают отсутствующее поле от пустого.
type CreateRequest struct {
	FirstName    *string `json:"firstName,omitempty"`
	LastName     *string `json:"lastName,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Password     *string `json:"password,omitempty"`
	TOSAgreement *bool   `json:"tosAgreement,omitempty"`
}

// UpdateRequest сырые данные обновления: phone обязателен, остальные поля опциональны.
type UpdateRequest struct {
	Phone     *string `json:"phone,omitempty"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Password  *string `json:"password,omitempty"`
}

// CreateParams провалидированные данные регистрации.
type CreateParams struct {
	FirstName string
	LastName  string
	Phone     string
	Password  string
}

// UpdateParams провалидированные данные обновления. Пустая строка значит "не менять".
type UpdateParams struct {
	Phone     string
	FirstName string
	LastName  string
	Password  string
}
