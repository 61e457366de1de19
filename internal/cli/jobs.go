package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/leadscout-hq/leadscout/internal/domain"
	"github.com/leadscout-hq/leadscout/internal/search"
)

// JobsCmd creates the job search command.
func JobsCmd() *cobra.Command {
	var (
		location    string
		company     string
		arrangement string
		seniority   string
		employment  string
		limit       string
	)

	cmd := &cobra.Command{
		Use:   "jobs <keywords>",
		Short: "Search job postings",
		Long:  "Runs one metered job search and prints the results with the payment receipt.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			verbose, _ := cmd.Flags().GetBool("verbose")

			client, err := resolveBackend(cmd)
			if err != nil {
				return err
			}

			orch := search.NewJobs(client.SearchJobs, newLogger(verbose))
			raw := domain.RawJobInput{
				Keywords:        args[0],
				Location:        location,
				Company:         company,
				WorkArrangement: arrangement,
				Seniority:       seniority,
				EmploymentType:  employment,
				Limit:           limit,
			}

			out, _ := orch.Submit(cmd.Context(), raw)
			if out.Failed() {
				return out.Err
			}
			return renderJobs(out, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&location, "location", "l", "", "Location filter")
	cmd.Flags().StringVarP(&company, "company", "c", "", "Company filter")
	cmd.Flags().StringVar(&arrangement, "arrangement", "", "Work arrangement (All, Remote, Hybrid, On-site)")
	cmd.Flags().StringVar(&seniority, "seniority", "", "Seniority level (All, Entry Level, Associate, Mid-Senior, Director, Executive)")
	cmd.Flags().StringVar(&employment, "type", "", "Employment type (All, Full-time, Part-time, Contract, Internship)")
	cmd.Flags().StringVarP(&limit, "limit", "n", "", "Maximum number of results (1-100, default 10)")

	return cmd
}

func renderJobs(out *domain.Outcome[domain.JobPosting], outputJSON bool) error {
	if outputJSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	if len(out.Items) == 0 {
		fmt.Println("No results found.")
	} else {
		fmt.Printf("Found %d results:\n\n", len(out.Items))
		for i, job := range out.Items {
			fmt.Printf("%d. %s at %s\n", i+1, job.Title, job.Company)
			if job.Location != "" {
				fmt.Printf("   %s", job.Location)
				if job.WorkArrangement != "" {
					fmt.Printf(" (%s)", job.WorkArrangement)
				}
				fmt.Println()
			}
			if job.Salary != "" {
				fmt.Printf("   Salary: %s\n", job.Salary)
			}
			if job.URL != "" {
				fmt.Printf("   %s\n", job.URL)
			}
			if i < len(out.Items)-1 {
				fmt.Println(strings.Repeat("-", 40))
			}
		}
	}

	printReceipt(out.Receipt)
	return nil
}

// printReceipt reports what the search cost. A missing receipt is reported
// as such, never shown as a $0.00 charge.
func printReceipt(receipt *domain.Receipt) {
	fmt.Println()
	if receipt == nil {
		fmt.Println("No payment receipt returned for this search.")
		return
	}
	fmt.Printf("Paid $%.4f via %s\n", receipt.AmountPaidUSD, receipt.Provider)
}

// newLogger returns the orchestrator logger for one-shot CLI commands.
// Silent unless --verbose is set.
func newLogger(verbose bool) zerolog.Logger {
	if !verbose {
		return zerolog.Nop()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.DebugLevel)
}
