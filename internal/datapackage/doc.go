// Package datapackage describes a simulation's files as a Frictionless
// data package.
//
// The descriptor names the package after the record's repository id (or
// its record identity when there is none), lists the required trajectory,
// structure and topology files followed by every additional file as
// resources, and carries the record's contributors. Descriptors are
// validated against the data-package profile by datapackage-go.
package datapackage
