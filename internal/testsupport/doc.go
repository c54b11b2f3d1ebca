// Package testsupport provides fixtures shared by package tests: KmerFinder
// report builders, file writers, and config builders.
package testsupport
