//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:                "view",
		Short:              "Run a simulation in a window (requires the ebiten build tag)",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return errors.New("the viewer requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/plague view`")
		},
	}
}
