/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/webstack-io/topology-stack/cmd"

func main() {
	cmd.Execute()
}
