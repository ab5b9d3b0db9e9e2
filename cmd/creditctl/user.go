package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amirhossein-jamali/credit-engine/internal/app"
	"github.com/amirhossein-jamali/credit-engine/internal/domain/entity"
)

func userCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage users and their credit counters",
	}
	cmd.AddCommand(userCreateCmd())
	cmd.AddCommand(userCreditsCmd())
	return cmd
}

func userCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Register a user by phone number",
		RunE: func(cmd *cobra.Command, args []string) error {
			phone, _ := cmd.Flags().GetString("phone")

			var freeCredits *int64
			if cmd.Flags().Changed("free-credits") {
				v, _ := cmd.Flags().GetInt64("free-credits")
				freeCredits = &v
			}

			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				user, err := engine.Users.CreateUser(ctx, phone, freeCredits)
				if err != nil {
					return err
				}
				return printJSON(cmd, entity.UserToCreditBalance(user))
			})
		},
	}
	cmd.Flags().String("phone", "", "Phone number, 10 to 15 digits")
	cmd.Flags().Int64("free-credits", 0, "Initial free credits (default from configuration)")
	_ = cmd.MarkFlagRequired("phone")
	return cmd
}

func userCreditsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "credits [userId]",
		Short: "Show a user's credit counters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(cmd, func(ctx context.Context, engine *app.App) error {
				balance, err := engine.Users.GetCreditBalance(ctx, args[0])
				if err != nil {
					return fmt.Errorf("user %s: %w", args[0], err)
				}
				return printJSON(cmd, balance)
			})
		},
	}
}
