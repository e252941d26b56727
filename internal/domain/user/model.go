package user

// Principal is the authenticated caller attached to a request context after
// token introspection.
type Principal struct {
	UserID string
	Email  string
	Roles  []string
}
