// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.2.0"

// Milestones:
// 0.2.0 - Horizon visibility pass, constellation edge diagnostics, JSON run export
// 0.1.0 - Initial release: HYG catalog fetch + cache, polar disc projection, PNG disc template
