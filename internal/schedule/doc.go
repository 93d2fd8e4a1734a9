// Package schedule implements the spaced-repetition rules: which items are
// due on a given date, how a review moves an item to its next state, and the
// reset that puts items scheduled for today back into the due set.
//
// Every function here is pure. Dates come in as calendar.Day values computed
// by the caller, settings are passed explicitly and items are returned as new
// values; persisting the result is the caller's job.
package schedule
