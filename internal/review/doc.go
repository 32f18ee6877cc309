// Package review defines the review domain: questions, eligibility, completion
// tracking, and the collaborators the wizard talks to.
//
// The collaborators are interfaces so that the wizard can be driven against
// the HTTP backend (package api) or the in-memory fakes in testhelpers.
package review
