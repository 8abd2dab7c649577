package main

import "github.com/geocoder89/alumnihub/cmd/seed/cmd"

func main() {
	cmd.Execute()
}
