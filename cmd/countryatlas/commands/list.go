package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List countries grouped by region",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := aggregator.Aggregate(cmd.Context())
			if err != nil {
				return err
			}

			for _, region := range result.Regions() {
				countries := result[region]
				fmt.Printf("%s (%d)\n", region, len(countries))
				for _, c := range countries {
					population := "n/a"
					if c.Population != nil {
						population = humanize.Comma(*c.Population)
					}
					gdp := "n/a"
					if c.GDP != nil {
						gdp = "$" + humanize.CommafWithDigits(*c.GDP, 0)
					}
					fmt.Printf("  %-38s %-22s pop %-15s gdp %s\n", c.Name, c.Capital, population, gdp)
				}
				fmt.Println()
			}
			return nil
		},
	}
	return cmd
}
