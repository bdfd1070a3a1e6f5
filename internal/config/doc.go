// Package config loads nej's YAML configuration. Settings resolve with
// CLI > local file > global file precedence; fields are pointers so an
// absent key is distinguishable from a zero value.
package config
