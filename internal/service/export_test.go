package service

// NewAdminServiceWithCost lets tests hash with a cheap bcrypt cost.
var NewAdminServiceWithCost = newAdminService

// SetTokenSource replaces token minting in tests.
func (m *SessionManager) SetTokenSource(fn func() string) {
	m.newToken = fn
}
