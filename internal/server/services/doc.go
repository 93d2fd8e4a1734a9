// Package services contains the server-side business rules of the Mnemos
// persistence API: item CRUD with history protection, settings validation,
// category management with rename cascade, and full data export/import.
//
// Services receive a *sql.DB and a repomanager.RepositoryManager; multi-step
// writes run in a transaction through dbx.WithTx with repositories rebound to
// the transaction handle.
package services
