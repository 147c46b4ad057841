// Package tui holds the Bubble Tea models behind uconv's interactive views.
package tui
