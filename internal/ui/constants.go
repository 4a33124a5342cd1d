// Package ui holds state shared by the widgets.
package ui

// BorderSize is the space a rounded panel border takes on each axis.
const BorderSize = 2
