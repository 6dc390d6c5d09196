// Package identity describes who is calling: the authenticated principal and
// the roles granting access to the different areas of the platform.
package identity
