// Package pages binds the account pages of the booking client to the
// submission workflow: SignIn, Profile with its avatar upload, and the
// Dashboard.
package pages
