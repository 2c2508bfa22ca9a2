package usecase

import "regexp"

var usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_\-]{4,15}$`)

// Stand-in for issuer validation: only the well-known test numbers pass.
var acceptedCreditCards = map[string]struct{}{
	"4111111111111111": {},
	"4242424242424242": {},
}

// ValidateUsername accepts 4 to 15 letters, digits, underscores or hyphens.
func ValidateUsername(username string) bool {
	return usernamePattern.MatchString(username)
}

// ValidateCreditCard checks the number against the accepted card list.
func ValidateCreditCard(number string) bool {
	_, ok := acceptedCreditCards[number]
	return ok
}
