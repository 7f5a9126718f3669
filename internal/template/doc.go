// Package template renders embedded IDE debug-configuration templates.
//
// Templates are embedded at build time, one per supported IDE, and
// rendered with the resolved debugger settings. The package knows
// nothing about where the output is written; the ide package owns file
// placement.
package template
