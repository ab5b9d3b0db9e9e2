package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/credit-engine/internal/app"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/port/usecase"
)

func orderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Inspect and repair payment orders",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get [gatewayOrderId]",
		Short: "Show one payment order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				order, err := engine.Payments.GetOrder(ctx, args[0])
				if err != nil {
					return err
				}
				return printJSON(cmd, order)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "fail [gatewayOrderId]",
		Short: "Mark an unpaid order FAILED",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				result, err := engine.Payments.ReportCancellation(ctx, args[0], "")
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (duplicate=%t)\n", result.GatewayOrderID, result.Status, result.Duplicate)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "refund [gatewayOrderId]",
		Short: "Record a refund of a successful order. Credits are not reversed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				order, err := engine.Payments.MarkRefunded(ctx, args[0])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", order.GatewayOrderID, order.Status)
				return nil
			})
		},
	})

	return cmd
}

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List a user's payments, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetString("user")
			phone, _ := cmd.Flags().GetString("phone")
			ref := usecase.UserRef{UserID: userID, PhoneNumber: phone}
			if ref.IsZero() {
				return fmt.Errorf("one of --user or --phone is required")
			}

			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				history, err := engine.Payments.ListHistory(ctx, ref)
				if err != nil {
					return err
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(w, "ORDER\tPAYMENT\tSTATUS\tCREDITS\tAMOUNT\tCREATED")
				for _, p := range history.Payments {
					fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d %s\t%s\n",
						p.GatewayOrderID, valueOrDash(p.GatewayPaymentID), p.Status,
						p.CreditsPurchased, p.AmountMinorUnits, p.Currency, p.CreatedAt.Format(time.RFC3339))
				}
				fmt.Fprintf(w, "\n%d payments\n", len(history.Payments))
				return w.Flush()
			})
		},
	}
	cmd.Flags().String("user", "", "User ID")
	cmd.Flags().String("phone", "", "Phone number")
	return cmd
}

func valueOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
