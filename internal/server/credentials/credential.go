package credentials

// Credential is a stored (user name, password secret) pair. Records are
// created on signup and never mutated or deleted.
type Credential struct {
	UserName string
	Secret   string
}
