// Package wizard implements the review wizard controller: the state machine
// that checks eligibility, loads the questions, collects one star rating per
// question, submits each rating and finally records the completed review.
//
// The controller does no rendering. Package tui drives it from a bubbletea
// program or from line-oriented prompts and renders Snapshot values.
package wizard
