package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"deliveryquery/internal/core/application/usecases/queries"
	"deliveryquery/internal/core/domain/model/delivery"
	"deliveryquery/internal/core/domain/model/kernel"
	"deliveryquery/internal/core/domain/services"
	"deliveryquery/internal/pkg/paging"

	"github.com/spf13/cobra"
)

func deliveriesCmd() *cobra.Command {
	var (
		status string
		sort   string
		count  int
		page   int
	)

	c := &cobra.Command{
		Use:   "deliveries",
		Short: "Print one page of deliveries",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			filter, err := queries.ParseStatusFilter(status)
			if err != nil {
				return err
			}
			order, err := queries.ParseSortOrder(sort)
			if err != nil {
				return err
			}
			query, err := queries.NewGetDeliveriesPageQuery(filter, order, count, page)
			if err != nil {
				return err
			}

			h := appCtx.CreateGetDeliveriesPageQueryHandler()
			resp, err := h.Handle(c.Context(), query)
			if err != nil {
				return err
			}
			if err = printDeliveries(c.OutOrStdout(), resp.Items); err != nil {
				return err
			}
			_, err = fmt.Fprintf(c.OutOrStdout(), "page %d of %d, %d deliveries\n", resp.PageNumber, resp.PageCount, resp.Total)
			return err
		},
	}

	c.Flags().StringVar(&status, "status", "all", "all, paid or active")
	c.Flags().StringVar(&sort, "sort", "status", "status or loading")
	c.Flags().IntVar(&count, "count", paging.DefaultCountOnPage, "deliveries per page")
	c.Flags().IntVar(&page, "page", paging.DefaultPageNumber, "1-based page number")
	return c
}

func clientCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "client <client-id>",
		Short: "Print the deliveries of one client",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			query, err := queries.NewGetClientDeliveriesQuery(args[0])
			if err != nil {
				return err
			}
			h := appCtx.CreateGetClientDeliveriesQueryHandler()
			infos, err := h.Handle(c.Context(), query)
			if err != nil {
				return err
			}
			return printDeliveries(c.OutOrStdout(), infos)
		},
	}
}

func searchCmd() *cobra.Command {
	var city, deliveryType string

	c := &cobra.Command{
		Use:   "search",
		Short: "Print deliveries leaving a city with the given type",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			t, err := delivery.ParseType(deliveryType)
			if err != nil {
				return err
			}
			query, err := queries.NewFindDeliveriesByCityAndTypeQuery(city, t)
			if err != nil {
				return err
			}
			h := appCtx.CreateFindDeliveriesByCityAndTypeQueryHandler()
			infos, err := h.Handle(c.Context(), query)
			if err != nil {
				return err
			}
			return printDeliveries(c.OutOrStdout(), infos)
		},
	}

	c.Flags().StringVar(&city, "city", "", "origin city")
	c.Flags().StringVar(&deliveryType, "type", "", "standard, express or pickup")
	_ = c.MarkFlagRequired("city")
	_ = c.MarkFlagRequired("type")
	return c
}

func printDeliveries(out io.Writer, infos []services.DeliveryShortInfo) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCLIENT\tFROM\tTO\tTYPE\tCARGO\tSTATUS\tLOADING")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			info.ID, info.ClientName, info.StartCity, info.EndCity,
			info.Type, info.CargoType, info.Status, formatStart(info.LoadingPeriod))
	}
	return w.Flush()
}

func formatStart(p kernel.Period) string {
	if !p.HasStart() {
		return "-"
	}
	return p.Start().Format(time.RFC3339)
}
