/*
Copyright © 2026 Paulo Suderio
*/
package main

import "github.com/suderio/emodice/cmd"

func main() {
	cmd.Execute()
}
