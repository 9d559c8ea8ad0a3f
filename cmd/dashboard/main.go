package main

import "github.com/olprint/backoffice/internal/cmd"

func main() {
	cmd.Execute()
}
