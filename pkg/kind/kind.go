// Package kind marks a type of file.
package kind

// Kind marks a type of file.
type Kind string

// Configfile is the Kind of app configs.
const Configfile Kind = "configfiles"
