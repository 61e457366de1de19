package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leadscout-hq/leadscout/internal/domain"
	"github.com/leadscout-hq/leadscout/internal/search"
)

// PeopleCmd creates the people search command.
func PeopleCmd() *cobra.Command {
	var (
		company string
		role    string
		query   string
		limit   string
	)

	cmd := &cobra.Command{
		Use:   "people",
		Short: "Search professional contacts",
		Long: `Runs one metered people search and prints the results with the payment
receipt. Search by company (--company, optionally --role), or switch to
custom-query mode with --query.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputJSON, _ := cmd.Flags().GetBool("output")
			verbose, _ := cmd.Flags().GetBool("verbose")

			client, err := resolveBackend(cmd)
			if err != nil {
				return err
			}

			orch := search.NewPeople(client.SearchPeople, newLogger(verbose))
			raw := domain.RawPeopleInput{
				Company:     company,
				Role:        role,
				Query:       query,
				CustomQuery: query != "",
				Limit:       limit,
			}

			out, _ := orch.Submit(cmd.Context(), raw)
			if out.Failed() {
				return out.Err
			}
			return renderPeople(out, outputJSON)
		},
	}

	cmd.Flags().StringVarP(&company, "company", "c", "", "Company to search contacts at")
	cmd.Flags().StringVarP(&role, "role", "r", "", "Role filter")
	cmd.Flags().StringVarP(&query, "query", "q", "", "Free-text query (custom-query mode)")
	cmd.Flags().StringVarP(&limit, "limit", "n", "", "Maximum number of results (5-20, default 5)")

	return cmd
}

func renderPeople(out *domain.Outcome[domain.Contact], outputJSON bool) error {
	if outputJSON {
		data, _ := json.MarshalIndent(out, "", "  ")
		fmt.Println(string(data))
		return nil
	}

	if len(out.Items) == 0 {
		fmt.Println("No results found.")
	} else {
		fmt.Printf("Found %d contacts:\n\n", len(out.Items))
		for i, contact := range out.Items {
			fmt.Printf("%d. %s\n", i+1, contact.FullName)
			if contact.Role != "" || contact.Company != "" {
				fmt.Printf("   %s", contact.Role)
				if contact.Company != "" {
					fmt.Printf(" at %s", contact.Company)
				}
				fmt.Println()
			}
			if contact.Email != "" {
				fmt.Printf("   %s\n", contact.Email)
			}
			if contact.ProfileURL != "" {
				fmt.Printf("   %s\n", contact.ProfileURL)
			}
			if i < len(out.Items)-1 {
				fmt.Println(strings.Repeat("-", 40))
			}
		}
	}

	printReceipt(out.Receipt)
	return nil
}
