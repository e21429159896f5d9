package models

// Account roles. Admins manage students and never own test records.
const (
	RoleAdmin   = "admin"
	RoleStudent = "student"
)

// Account is a login identity. The handle is the map key in the store and
// the foreign key for test-record ownership, so it is not serialized inside
// the account itself.
type Account struct {
	Handle      string `json:"-"`
	Secret      string `json:"password" validate:"required"`
	Role        string `json:"role" validate:"required,oneof=admin student"`
	Name        string `json:"name" validate:"required"`
	CreatedDate string `json:"createdDate"`
}

// AccountSummary is the admin user-management table row.
type AccountSummary struct {
	Handle      string `json:"userId"`
	Name        string `json:"name"`
	CreatedDate string `json:"createdDate"`
	TestCount   int    `json:"testCount"`
}
