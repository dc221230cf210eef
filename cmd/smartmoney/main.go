package main

import (
	"log"

	"smartmoney/cmd"

	_ "github.com/lib/pq"
)

func main() {
	err := cmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
