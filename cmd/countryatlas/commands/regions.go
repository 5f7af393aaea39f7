package commands

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func regionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "regions",
		Short: "Print a per-region summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := aggregator.Aggregate(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("%-32s %9s %14s %10s %6s\n", "REGION", "COUNTRIES", "POPULATION", "WITH POP", "GDP")
			for _, region := range result.Regions() {
				countries := result[region]
				var population int64
				withPop, withGDP := 0, 0
				for _, c := range countries {
					if c.Population != nil {
						population += *c.Population
						withPop++
					}
					if c.GDP != nil {
						withGDP++
					}
				}
				fmt.Printf("%-32s %9d %14s %10d %6d\n",
					region, len(countries), humanize.Comma(population), withPop, withGDP)
			}
			fmt.Printf("\n%d countries in %d regions\n", result.Total(), len(result))
			return nil
		},
	}
	return cmd
}
