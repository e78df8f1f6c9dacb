package responses

type Login struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Role  string `json:"role"`
}
