package commands

import (
	"fmt"
	"io"
	"text/tabwriter"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/services"

	"github.com/spf13/cobra"
)

func statisticsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print delivery counters",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			h := appCtx.CreateGetDeliveryStatisticsQueryHandler()
			stats, err := h.Handle(c.Context(), queries.NewGetDeliveryStatisticsQuery())
			if err != nil {
				return err
			}
			return printStatistics(c.OutOrStdout(), stats)
		},
	}
}

func gapsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gaps",
		Short: "Print the average travel time per route",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			h := appCtx.CreateGetAverageGapsPerDirectionQueryHandler()
			gaps, err := h.Handle(c.Context(), queries.NewGetAverageGapsPerDirectionQuery())
			if err != nil {
				return err
			}
			return printGaps(c.OutOrStdout(), gaps)
		},
	}
}

// printStatistics lists statuses in declared order and skips the ones with no
// deliveries.
func printStatistics(out io.Writer, stats queries.GetDeliveryStatisticsQueryResponse) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Total\t%d\n", stats.Total)
	fmt.Fprintf(w, "Paid\t%d\n", stats.Paid)
	fmt.Fprintf(w, "Active\t%d\n", stats.Active)
	fmt.Fprintf(w, "Cargo types\t%d\n", stats.UniqueCargoTypes)
	for _, status := range delivery.Statuses() {
		if n, ok := stats.ByStatus[status]; ok {
			fmt.Fprintf(w, "  %s\t%d\n", status, n)
		}
	}
	return w.Flush()
}

func printGaps(out io.Writer, gaps []services.AverageGapsInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FROM\tTO\tAVG MINUTES\tDELIVERIES")
	for _, g := range gaps {
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%d\n", g.StartCity, g.EndCity, g.AverageGap, g.Deliveries)
	}
	return w.Flush()
}
