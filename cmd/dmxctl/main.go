/*
Copyright © 2025 generalelectrix
*/
package main

import "github.com/generalelectrix/go-dmx/cmd"

func main() {
	cmd.Execute()
}
