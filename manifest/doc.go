// Package manifest loads the page manifest of an application: the entry page,
// the tab bar and the per-page navigation bar and scroll configuration.
package manifest
