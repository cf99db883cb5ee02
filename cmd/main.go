// cmd/main.go
package main

import (
	"go-bank-account/app"
)

// Reads config.yml from the working directory, opens the listed accounts and
// applies the scripted operations, logging every outcome and the final balances.
func main() {
	app.Run()
}
