package identityservice

// Reviewer данные рецензента из IdentityService
type Reviewer struct {
	ID          int64    `json:"id"`
	DisplayName string   `json:"displayName"`
	Roles       []string `json:"roles"`
}

// approvePermission ответ проверки права на согласование
type approvePermission struct {
	Allowed bool `json:"allowed"`
}
