package main

import "github.com/oinkbase/porkbun/cmd"

func main() {
	cmd.Execute()
}
