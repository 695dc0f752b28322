// Package testsupport holds fixtures shared by package tests: photo file
// writers, a fault-injecting filesystem, and config builders.
package testsupport
