package domain

// Role classifies a principal
type Role string

const (
	RoleClient   Role = "client"
	RoleProvider Role = "provider"
)

// Valid reports whether the role is known
func (r Role) Valid() bool {
	return r == RoleClient || r == RoleProvider
}

// Account is read-only reference data identifying a principal
type Account struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}

// Caller is the already-authenticated principal of a request
// It is passed explicitly into every core operation
type Caller struct {
	AccountID int64
	Name      string
	Email     string
	Role      Role
}

// CallerFromAccount builds a caller from a stored account
func CallerFromAccount(a *Account) Caller {
	return Caller{
		AccountID: a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Role:      a.Role,
	}
}

// IsProvider returns true if the caller acts as the service provider
func (c Caller) IsProvider() bool {
	return c.Role == RoleProvider
}
