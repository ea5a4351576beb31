// Command dlxsolve is the spec §6.3 reference test driver: it reads a
// text-stream binary matrix from stdin and reports a solution. The
// -n/-force/-profile/-save-id/-storage flags are additive extensions.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/profile"

	"github.com/jw013/dlx/internal/adapters/cli"
	"github.com/jw013/dlx/internal/dlx"
	"github.com/jw013/dlx/internal/domain"
	"github.com/jw013/dlx/internal/infrastructure/storage"
	"github.com/jw013/dlx/internal/ports"
	"github.com/jw013/dlx/internal/usecase"
)

func main() {
	n := flag.Int("n", 1, "which solution to report, 1-indexed")
	force := flag.String("force", "", "comma-separated row indices to preselect")
	doProfile := flag.Bool("profile", false, "enable CPU profiling for this run")
	saveID := flag.String("save-id", "", "if set, persist the solved problem under this id")
	storageDir := flag.String("storage", "", "directory for -save-id (required if -save-id is set)")
	flag.Parse()

	if *doProfile {
		defer profile.Start().Stop()
	}

	forced, err := cli.ParseForced(*force)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(domain.ExitCode(domain.ErrMalformedInput))
	}

	var st ports.Storage
	if *saveID != "" {
		if *storageDir == "" {
			fmt.Fprintln(os.Stderr, "-save-id requires -storage")
			os.Exit(1)
		}
		st = storage.NewFS(*storageDir)
	}

	d := &cli.Driver{UC: usecase.NewService(dlx.NewSolver(), nil, nil, nil, st)}
	err = d.Run(context.Background(), os.Stdin, os.Stdout, cli.Options{
		N:      *n,
		Forced: forced,
		SaveID: *saveID,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(domain.ExitCode(err))
	}
}
