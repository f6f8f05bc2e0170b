package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fikanova/portfolio/internal/config"
	"github.com/fikanova/portfolio/internal/domain"
	"github.com/fikanova/portfolio/internal/logging"
	"github.com/fikanova/portfolio/internal/sanity"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Inspect the content store",
}

var contentCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Query every catalogue entry and report which would fall back",
	Long: `Runs every content query the site depends on against the live store
and reports, per entry, whether a page render would serve live content or
the embedded fallback dataset.`,
	Run: contentCheckHandler,
}

func contentCheckHandler(cmd *cobra.Command, args []string) {
	logging.New()
	cfg := config.New()
	client := sanity.NewClient(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	type check struct {
		name  string
		probe func(ctx context.Context) (bool, error)
	}

	checks := []check{
		{name: "profile", probe: func(ctx context.Context) (bool, error) {
			var p *domain.Profile
			err := client.Query(ctx, sanity.QueryProfile, nil, &p)
			return p != nil, err
		}},
		{name: "contact settings", probe: func(ctx context.Context) (bool, error) {
			var s *domain.ContactSettings
			err := client.Query(ctx, sanity.QueryContactSettings, nil, &s)
			return s != nil, err
		}},
		{name: "experience", probe: func(ctx context.Context) (bool, error) {
			var entries []domain.Experience
			err := client.Query(ctx, sanity.QueryAllExperience, nil, &entries)
			return len(entries) > 0, err
		}},
		{name: "projects", probe: func(ctx context.Context) (bool, error) {
			var projects []domain.Project
			err := client.Query(ctx, sanity.QueryAllProjects, nil, &projects)
			return len(projects) > 0, err
		}},
		{name: "service packages", probe: func(ctx context.Context) (bool, error) {
			var packages []domain.ServicePackage
			err := client.Query(ctx, sanity.QueryAllServicePackages, nil, &packages)
			return len(packages) > 0, err
		}},
	}

	failures := 0
	for _, chk := range checks {
		live, err := chk.probe(ctx)
		switch {
		case err != nil:
			failures++
			fmt.Printf("%-20s FALLBACK (query failed: %v)\n", chk.name, err)
		case !live:
			failures++
			fmt.Printf("%-20s FALLBACK (no live content)\n", chk.name)
		default:
			fmt.Printf("%-20s OK\n", chk.name)
		}
	}

	if failures > 0 {
		fmt.Printf("\n%d of %d entries would serve fallback content.\n", failures, len(checks))
		os.Exit(1)
	}
	fmt.Println("\nAll entries serve live content.")
}

func init() {
	contentCmd.AddCommand(contentCheckCmd)
	rootCmd.AddCommand(contentCmd)
}
