/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/frostyeti/kpx/cmd"

func main() {
	cmd.Execute()
}
