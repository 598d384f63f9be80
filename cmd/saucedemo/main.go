package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	internalcli "github.com/farhankamalkhan/saucedemo/internal/cli"
	"github.com/farhankamalkhan/saucedemo/internal/config"
	"github.com/farhankamalkhan/saucedemo/internal/database"
	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
	"github.com/farhankamalkhan/saucedemo/internal/repository"
	"github.com/farhankamalkhan/saucedemo/internal/store"
	"github.com/joho/godotenv"
	"github.com/playwright-community/playwright-go"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// loadFixtures loads the dataset from FIXTURES_DIR, falling back to the
// embedded collections.
func loadFixtures() (*fixtures.Dataset, error) {
	if dir := os.Getenv("FIXTURES_DIR"); dir != "" {
		return fixtures.Load(dir)
	}
	return fixtures.Default()
}

// buildServerDependencies creates all dependencies needed for the storefront
func buildServerDependencies() (internalcli.ServerDependencies, error) {
	// Load fixture data and build the in-memory store
	ds, err := loadFixtures()
	if err != nil {
		return internalcli.ServerDependencies{}, err
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	return internalcli.BuildStorefrontDeps(config.LoadServerConfig(), store.New(ds), logger)
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the sample storefront the suite tests against",
		Action: func(c *cli.Context) error {
			deps, err := buildServerDependencies()
			if err != nil {
				return err
			}
			return internalcli.RunServe(deps)
		},
	}
}

// RunCommand returns the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Execute the browser test suite",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "filter",
				Aliases: []string{"f"},
				Usage:   "go test -run pattern selecting tests by name",
			},
			&cli.StringFlag{
				Name:  "tag",
				Usage: "only run scenario cases carrying this tag",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "cap on concurrently running tests",
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: 15 * time.Minute,
				Usage: "overall suite timeout",
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "target an already running storefront instead of booting one",
			},
			&cli.BoolFlag{
				Name:  "headed",
				Usage: "run the browser with a visible window",
			},
		},
		Action: func(c *cli.Context) error {
			opts := internalcli.RunOptions{
				Filter:      c.String("filter"),
				Tag:         c.String("tag"),
				Parallelism: c.Int("parallel"),
				Timeout:     c.Duration("timeout"),
				BaseURL:     c.String("base-url"),
				Headless:    !c.Bool("headed"),
				Stdout:      os.Stdout,
				Stderr:      os.Stderr,
			}

			if opts.BaseURL != "" {
				if err := internalcli.WaitForStorefront(c.Context, opts.BaseURL, 30*time.Second, 500*time.Millisecond); err != nil {
					return err
				}
			}

			return internalcli.RunSuite(c.Context, opts)
		},
	}
}

// FixturesCommand returns the fixtures command
func FixturesCommand() *cli.Command {
	return &cli.Command{
		Name:  "fixtures",
		Usage: "Validate the fixture dataset and list its collections",
		Action: func(c *cli.Context) error {
			ds, err := loadFixtures()
			if err != nil {
				return err
			}

			out := c.App.Writer
			fmt.Fprintf(out, "Valid credentials (%d):\n", len(ds.ValidCredentials()))
			for _, cred := range ds.ValidCredentials() {
				fmt.Fprintf(out, "  %s\n", cred.Username)
			}
			fmt.Fprintf(out, "Invalid credentials (%d):\n", len(ds.InvalidCredentials()))
			for _, cred := range ds.InvalidCredentials() {
				fmt.Fprintf(out, "  %s\n", cred.ID)
			}
			fmt.Fprintf(out, "Products (%d):\n", len(ds.Products()))
			for _, p := range ds.Products() {
				fmt.Fprintf(out, "  %-42s %s\n", p.Name, p.Price)
			}
			return nil
		},
	}
}

// BrowsersCommand returns the browsers command
func BrowsersCommand() *cli.Command {
	return &cli.Command{
		Name:  "browsers",
		Usage: "Install the playwright driver and the chromium browser",
		Action: func(c *cli.Context) error {
			if err := playwright.Install(&playwright.RunOptions{
				Browsers: []string{"chromium"},
			}); err != nil {
				return fmt.Errorf("failed to install playwright: %w", err)
			}
			log.Println("Playwright browsers installed")
			return nil
		},
	}
}

// HistoryCommand returns the history command
func HistoryCommand() *cli.Command {
	return &cli.Command{
		Name:      "history",
		Usage:     "List recorded suite runs",
		ArgsUsage: "[run reference]",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Value: 20,
				Usage: "maximum number of runs to list",
			},
		},
		Action: func(c *cli.Context) error {
			// Connect to database
			if err := database.Connect(); err != nil {
				return fmt.Errorf("failed to connect to database: %w", err)
			}
			defer database.Close()

			// Run database migrations
			if err := database.RunMigrations(); err != nil {
				return fmt.Errorf("failed to run database migrations: %w", err)
			}

			repo := repository.NewRunRepository()
			out := c.App.Writer

			if reference := c.Args().First(); reference != "" {
				return printRun(out, repo, reference)
			}

			runs, err := repo.ListRuns(c.Int("limit"))
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Fprintln(out, "No recorded runs.")
				return nil
			}
			for _, run := range runs {
				fmt.Fprintf(out, "%s  %-7s  %-12s  %-22s  %s\n",
					run.StartedAt.Format(time.RFC3339), run.Status, run.Reference, run.Summary(), run.BaseURL)
			}
			return nil
		},
	}
}

// printRun prints a single run with its per-scenario results.
func printRun(out io.Writer, repo *repository.RunRepository, reference string) error {
	run, err := repo.GetRunByReference(reference)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s  %s  %s (%s)\n", run.Reference, run.Status, run.BaseURL, run.Browser)
	fmt.Fprintf(out, "Started %s", run.StartedAt.Format(time.RFC3339))
	if !run.FinishedAt.IsZero() {
		fmt.Fprintf(out, ", finished %s", run.FinishedAt.Format(time.RFC3339))
	}
	fmt.Fprintf(out, "\n%s\n", run.Summary())

	results, err := repo.ListResults(run.ID)
	if err != nil {
		return err
	}
	for _, res := range results {
		status := "PASS"
		if !res.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(out, "  %s  %-50s  %s\n", status, res.CaseName, res.Duration.Round(time.Millisecond))
		if res.Failure != "" {
			fmt.Fprintf(out, "        %s\n", res.Failure)
		}
	}
	return nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "saucedemo",
		Usage:   "Storefront test suite management tool",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			RunCommand(),
			FixturesCommand(),
			BrowsersCommand(),
			HistoryCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
