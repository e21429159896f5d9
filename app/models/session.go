package models

// Session is the persisted current-user record. It is restored across
// restarts only while the referenced account still exists.
type Session struct {
	Handle string `json:"userId"`
	Name   string `json:"name"`
	Role   string `json:"role"`
}
