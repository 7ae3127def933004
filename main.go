package main

import "github/chapool/sign-oracle/cmd"

func main() {
	cmd.Execute()
}
