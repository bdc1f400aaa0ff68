// Package platform provides cross-platform filesystem operations used when
// writing the manifest: atomic file replacement and permission management.
// On Windows, permission bits are not applied and rename-over-existing is
// emulated by removing the destination first.
package platform
