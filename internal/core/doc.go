// Package core defines the essential interfaces and data structures that form the
// backbone of the application. The request and response shapes of the review
// endpoint live here together with the two error kinds the endpoint distinguishes.
package core
