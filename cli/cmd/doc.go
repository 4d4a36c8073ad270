// Package cmd provides the render and fmt subcommands operating on
// layout expressions.
package cmd
