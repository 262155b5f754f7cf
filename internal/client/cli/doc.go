// Package cli implements the interactive subscriber portal: a REPL with
// login, dashboard, billing history, payment, and support screens. Screens
// hold their state in viewstate controllers and render through small pure
// helpers; all business data comes from the services layer.
package cli
