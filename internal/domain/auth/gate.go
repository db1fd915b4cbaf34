package auth

// Gate checks submitted credentials against the single admin pair loaded at
// startup. Comparison is an exact string match; no sessions or tokens are
// issued.
type Gate struct {
	username string
	password string
}

func NewGate(username, password string) *Gate {
	return &Gate{username: username, password: password}
}

// Authenticate reports whether the pair matches the configured admin
// credentials.
func (g *Gate) Authenticate(username, password string) bool {
	return username == g.username && password == g.password
}
