package user

// PhoneLength длина телефона, который служит ключом пользователя.
const PhoneLength = 10

type User struct {
	FirstName      string   `json:"firstName"`
	LastName       string   `json:"lastName"`
	Phone          string   `json:"phone"`
	HashedPassword string   `json:"hashedPassword"`
	TOSAgreement   bool     `json:"tosAgreement"`
	Checks         []string `json:"checks"`
}

// HasCheck reports whether id is in the user's check list.
func (u User) HasCheck(id string) bool {
	for _, c := range u.Checks {
		if c == id {
			return true
		}
	}
	return false
}

// WithoutCheck returns the check list with id removed.
func (u User) WithoutCheck(id string) []string {
	out := make([]string, 0, len(u.Checks))
	for _, c := range u.Checks {
		if c != id {
			out = append(out, c)
		}
	}
	return out
}
