package validators

import (
	"net/mail"
	"strings"
)

// IsEmailValid checks address shape only; deliverability is not our problem.
func IsEmailValid(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}

	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}

	return addr.Address == email && strings.Contains(email, "@")
}
