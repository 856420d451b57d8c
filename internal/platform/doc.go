// Package platform contains OS integration: configuration locations,
// directory helpers and revealing folders in the system file manager.
package platform
