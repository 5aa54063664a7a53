package main

import (
	"os"

	"github.com/firefly-engineering/actions-keep-alive/cmd"
	"github.com/firefly-engineering/actions-keep-alive/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
