// Package main is the entry point for the scoregate CLI.
package main

import "gooze.dev/pkg/scoregate/cmd"

func main() {
	cmd.Execute()
}
