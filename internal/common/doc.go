// Package common provides shared sentinel errors and small helpers used
// throughout the gs-ppe library.
//
// This is an internal package not intended for direct use by applications.
// It supports the implementation of the public gs and pkg/* packages.
package common
