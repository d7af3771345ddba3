package domain

// User is the business owner account that logs into the backend.
type User struct {
	UserID       string `json:"userID"` // Primary Key (UUID)
	Name         string `json:"name"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
