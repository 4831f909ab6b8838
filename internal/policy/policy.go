// Package policy decides whether the current actor may perform privileged
// actions. Guards are explicit functions called at the top of handlers,
// never implicit middleware interception.
package policy

import "inkwell/internal/models"

// IsAdministrator reports whether user is the fixed administrator account.
// The policy is static and single-tenant: exactly one user id is
// privileged, regardless of post ownership.
func IsAdministrator(user *models.User, adminID uint) bool {
	return user != nil && user.ID == adminID
}

// RequireAuthenticated gates writes that need a logged-in actor.
func RequireAuthenticated(actor *models.User) error {
	if actor == nil {
		return models.NewUnauthenticatedError()
	}
	return nil
}

// RequireAdministrator gates post edit and delete. It checks
// authentication first, so an anonymous request never reaches the
// administrator comparison.
func RequireAdministrator(actor *models.User, adminID uint) error {
	if err := RequireAuthenticated(actor); err != nil {
		return err
	}
	if !IsAdministrator(actor, adminID) {
		return models.NewForbiddenError("only the administrator may modify posts")
	}
	return nil
}
