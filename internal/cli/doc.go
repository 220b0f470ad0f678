// Package cli defines the shieldtop command tree: the live dashboard plus
// one-shot management commands against a PyShield appliance.
package cli
