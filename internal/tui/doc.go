// Package tui provides the interactive terminal view of the team results table.
//
// The model owns one resultlist.Manager. Enter expands or collapses the row under
// the cursor, r collapses everything, and moving the cursor reports which
// bracket links and labels the hovered row lights up.
package tui
