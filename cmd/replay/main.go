// cmd/replay verifies a recorded run by simulating it again.
package main

import (
	"flag"
	"fmt"
	"os"

	"go-wave-defense/internal/app"
	"go-wave-defense/internal/defs"
	"go-wave-defense/internal/replay"
)

func main() {
	var path, catalogPath string
	flag.StringVar(&path, "in", "", "recording to verify")
	flag.StringVar(&catalogPath, "catalog", "", "catalog the run was played with, empty uses the embedded one")
	flag.Parse()

	if path == "" {
		fmt.Fprintln(os.Stderr, "--in is required")
		os.Exit(1)
	}

	rec, err := replay.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load replay: %v\n", err)
		os.Exit(1)
	}

	var opts []app.Option
	if catalogPath != "" {
		catalog, err := defs.LoadCatalog(catalogPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load catalog: %v\n", err)
			os.Exit(1)
		}
		opts = append(opts, app.WithCatalog(catalog))
	}

	summary, err := replay.Verify(rec, opts...)
	printSummary(rec, summary)
	if err != nil {
		fmt.Fprintf(os.Stderr, "verification failed: %v\n", err)
		os.Exit(2)
	}
}

func printSummary(rec replay.Recording, s app.Summary) {
	fmt.Printf("seed     %d\n", rec.Seed)
	fmt.Printf("loadout  %s / %s\n", rec.Loadout.SkinID, rec.Loadout.WeaponID)
	fmt.Printf("frames   %d, upgrades %d\n", len(rec.Frames), len(rec.Upgrades))
	fmt.Printf("score    %d\n", s.Score)
	fmt.Printf("wave     %d\n", s.Wave)
	fmt.Printf("kills    %d\n", s.Kills)
	fmt.Printf("survived %ds\n", s.SurvivalSeconds)
	if rec.Summary == nil {
		fmt.Println("recording has no summary, run was not finished")
	}
}
