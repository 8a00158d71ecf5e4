// Package main is the entry point for the warden CLI.
package main

import (
	"errors"
	"os"

	"github.com/warden-sh/warden/internal/clog"
	"github.com/warden-sh/warden/internal/cmd"
	"github.com/warden-sh/warden/internal/term"
)

func main() {
	err := cmd.Execute()
	_ = clog.Close()
	if err != nil {
		var exitErr *cmd.ExitCodeError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		term.Error("%v", err)
		os.Exit(1)
	}
}
