package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/ModChain/ecc/cmd/eccutil/commands"
)

func main() {
	err := commands.GetRootCmd().Execute()
	if err != nil {
		log.Fatalf("eccutil: %s", err.Error())
	}
}
