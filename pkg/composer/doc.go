// Package composer reads what the PHP package manager installed and names
// the lifecycle events modsync reacts to.
package composer
