// Package listview provides a virtual scrolling list for Bubble Tea programs.
//
// Only the rows around the viewport are rendered. Navigation supports the
// arrow keys, page up/down, home/end and the vim keys j, k, g and G.
package listview
