package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

func policiesCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "policies",
		Short: "View leave policies",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List leave policies",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			policies, err := a.client.LeavePolicies().ListActive(cmd.Context())
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load leave policies"))
			}
			return a.emit(cmd.OutOrStdout(), policies, func(tw *tabwriter.Writer) {
				row(tw, "ID", "TYPE", "ANNUAL QUOTA", "CARRY FORWARD", "HALF DAY")
				for _, p := range policies {
					row(tw, p.ID, p.LeaveType, p.AnnualQuota, p.CarryForward, p.HalfDayAllowed)
				}
			})
		},
	})
	return cmd
}

func holidaysCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "holidays",
		Short: "View the holiday calendar",
	}
	list := &cobra.Command{
		Use:   "list",
		Short: "List holidays, optionally within a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			var (
				holidays []leavemarker.Holiday
				err      error
			)
			if s, _ := cmd.Flags().GetString("start"); s != "" {
				start, perr := parseDateFlag(cmd, "start")
				if perr != nil {
					return perr
				}
				end, perr := parseDateFlag(cmd, "end")
				if perr != nil {
					return perr
				}
				holidays, err = a.client.Holidays().DateRange(cmd.Context(), start, end)
			} else {
				holidays, err = a.client.Holidays().ListActive(cmd.Context())
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Failed to load holidays"))
			}
			return a.emit(cmd.OutOrStdout(), holidays, func(tw *tabwriter.Writer) {
				row(tw, "DATE", "NAME", "TYPE", "STATE")
				for _, h := range holidays {
					state := "-"
					if h.State != nil {
						state = *h.State
					}
					row(tw, h.Date.Format(dateFlagLayout), h.Name, h.Type, state)
				}
			})
		},
	}
	list.Flags().String("start", "", "Range start (YYYY-MM-DD)")
	list.Flags().String("end", "", "Range end (YYYY-MM-DD)")
	cmd.AddCommand(list)
	return cmd
}
