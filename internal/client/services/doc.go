// Package services holds the client-side study logic. StudyService owns the
// in-memory item collection, drives the scheduling rules and persists every
// change through the server before applying it locally.
package services
