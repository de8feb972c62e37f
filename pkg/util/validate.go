package util

import (
	"errors"
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRe = regexp.MustCompile(`^\+?[0-9][0-9 ()-]{4,19}$`)
)

func IsEmail(email string) error {
	if !emailRe.MatchString(email) {
		return errors.New("invalid email")
	}
	return nil
}

// IsPhone accepts international and local formats with spaces, dashes and brackets.
func IsPhone(phone string) error {
	if !phoneRe.MatchString(strings.TrimSpace(phone)) {
		return errors.New("invalid phone")
	}
	return nil
}
