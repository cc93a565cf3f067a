package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ujjwalkirti/leave-marker/leavemarker"
)

func reportsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Download company reports",
	}
	cmd.AddCommand(reportsDownloadCmd(a))
	return cmd
}

func reportsDownloadCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download leave-balance|attendance|leave-usage",
		Short: "Download a report to a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.restore(cmd); err != nil {
				return err
			}
			if err := a.requireFeature(leavemarker.FeatureAdvancedReports); err != nil {
				return err
			}
			formatStr, _ := cmd.Flags().GetString("format")
			format := leavemarker.ReportFormat(formatStr)
			if format != leavemarker.ReportFormatExcel && format != leavemarker.ReportFormatCSV {
				return fmt.Errorf("invalid format %q (want excel or csv)", formatStr)
			}

			var (
				file *leavemarker.ReportFile
				err  error
			)
			switch leavemarker.ReportType(args[0]) {
			case leavemarker.ReportLeaveBalance:
				file, err = a.client.Reports().LeaveBalance(cmd.Context(), format)
			case leavemarker.ReportAttendance, leavemarker.ReportLeaveUsage:
				start, perr := parseDateFlag(cmd, "start")
				if perr != nil {
					return perr
				}
				end, perr := parseDateFlag(cmd, "end")
				if perr != nil {
					return perr
				}
				if leavemarker.ReportType(args[0]) == leavemarker.ReportAttendance {
					file, err = a.client.Reports().Attendance(cmd.Context(), format, start, end)
				} else {
					file, err = a.client.Reports().LeaveUsage(cmd.Context(), format, start, end)
				}
			default:
				return fmt.Errorf("unknown report %q", args[0])
			}
			if err != nil {
				return fmt.Errorf("%s", leavemarker.ErrorMessage(err, "Report download failed"))
			}

			dir, _ := cmd.Flags().GetString("out")
			path := filepath.Join(dir, file.Filename)
			if err := os.WriteFile(path, file.Data, 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %s (%d bytes)\n", path, len(file.Data))
			return nil
		},
	}
	cmd.Flags().String("format", "excel", "excel or csv")
	cmd.Flags().String("out", ".", "Output directory")
	cmd.Flags().String("start", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "Range end (YYYY-MM-DD)")
	return cmd
}
