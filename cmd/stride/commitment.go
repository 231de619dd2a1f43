package main

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/stridehq/stride/internal/store"
)

func newCommitmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commitment",
		Short: "Calendar commitments that block task placement",
	}

	cmd.AddCommand(newCommitmentAddCmd())
	cmd.AddCommand(newCommitmentListCmd())
	return cmd
}

func newCommitmentAddCmd() *cobra.Command {
	var (
		configPath string
		title      string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a commitment",
		Long:  "Records a day as unavailable. Newly generated schedules will not place tasks on it.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommitmentAdd(cmd, configPath, title, date)
		},
	}

	configFlag(cmd, &configPath)
	cmd.Flags().StringVar(&title, "title", "", "commitment title (required)")
	cmd.Flags().StringVar(&date, "date", "", "date (YYYY-MM-DD, required)")
	cmd.MarkFlagRequired("title")
	cmd.MarkFlagRequired("date")
	return cmd
}

func runCommitmentAdd(cmd *cobra.Command, configPath, title, date string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	d, err := time.ParseInLocation(dateLayout, date, time.Local)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", date, err)
	}

	c, err := store.AddCommitment(gormDB, title, d)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added commitment %s on %s\n", c.ID, formatDate(c.StartDate))
	return nil
}

func newCommitmentListCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List upcoming commitments",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommitmentList(cmd, configPath)
		},
	}

	configFlag(cmd, &configPath)
	return cmd
}

func runCommitmentList(cmd *cobra.Command, configPath string) error {
	_, gormDB, err := connectFromConfig(configPath)
	if err != nil {
		return err
	}

	commitments, err := store.ListCommitments(gormDB, time.Now(), time.Time{})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(commitments) == 0 {
		fmt.Fprintln(out, "No upcoming commitments.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tTITLE")
	for _, c := range commitments {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, formatDate(c.StartDate), c.Title)
	}
	return w.Flush()
}
