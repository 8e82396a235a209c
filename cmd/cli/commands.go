package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/corebank/ledgerengine/internal/adapter/repository/configfile"
	"github.com/corebank/ledgerengine/internal/domain"
	"github.com/corebank/ledgerengine/internal/infrastructure/postgres"
	"github.com/corebank/ledgerengine/internal/usecase"
)

type postingFlags struct {
	Reference           string            `json:"reference"`
	EventCode           string            `json:"event_code"`
	AttributeCode       string            `json:"attribute_code"`
	Amount              string            `json:"amount"`
	ValueDate           string            `json:"value_date,omitempty"`
	Description         string            `json:"description,omitempty"`
	ProductID           string            `json:"product_id,omitempty"`
	BranchID            string            `json:"branch_id"`
	DestinationBranchID string            `json:"destination_branch_id,omitempty"`
	SourceAccountID     string            `json:"source_account_id,omitempty"`
	Channel             string            `json:"channel,omitempty"`
	Attributes          map[string]string `json:"attributes,omitempty"`
}

func postCmd(c *apiClient) *cobra.Command {
	var (
		req            postingFlags
		idempotencyKey string
		preview        bool
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Resolve and post a business operation",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/postings"
			if preview {
				path += "/preview"
			}
			body, err := c.do(cmd.Context(), http.MethodPost, path, nil, req, map[string]string{"Idempotency-Key": idempotencyKey})
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), body)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&req.Reference, "reference", "", "Transaction reference")
	f.StringVar(&req.EventCode, "event", "", "Event code")
	f.StringVar(&req.AttributeCode, "attribute", "", "Attribute code")
	f.StringVar(&req.Amount, "amount", "", "Amount")
	f.StringVar(&req.ValueDate, "value-date", "", "Value date (YYYY-MM-DD), defaults to today")
	f.StringVar(&req.Description, "description", "", "Description")
	f.StringVar(&req.ProductID, "product", "", "Product id")
	f.StringVar(&req.BranchID, "branch", "", "Originating branch")
	f.StringVar(&req.DestinationBranchID, "destination", "", "Destination branch")
	f.StringVar(&req.SourceAccountID, "source-account", "", "Source account for corresponding resolution")
	f.StringVar(&req.Channel, "channel", "", "Share channel")
	f.StringToStringVar(&req.Attributes, "attr", nil, "Additional attribute values (NAME=amount)")
	f.StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key")
	f.BoolVar(&preview, "preview", false, "Resolve without posting")
	for _, name := range []string{"reference", "event", "attribute", "amount", "branch"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func reverseCmd(c *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "reverse REFERENCE",
		Short: "Reverse a posted reference",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := c.do(cmd.Context(), http.MethodPost, "/api/v1/postings/"+url.PathEscape(args[0])+"/reverse", nil, nil, nil)
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), body)
			return nil
		},
	}
}

func dayCloseCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dayclose",
		Short: "Day close operations",
	}

	closePath := func(args []string) string {
		return "/api/v1/branches/" + url.PathEscape(args[0]) + "/days/" + url.PathEscape(args[1]) + "/close"
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "run BRANCH DATE",
			Short: "Close a branch business day",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := c.do(cmd.Context(), http.MethodPost, closePath(args), nil, nil, nil)
				if body != nil {
					printJSON(cmd.OutOrStdout(), body)
				}
				return err
			},
		},
		&cobra.Command{
			Use:   "get BRANCH DATE",
			Short: "Show a stored day close",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := c.do(cmd.Context(), http.MethodGet, closePath(args), nil, nil, nil)
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), body)
				return nil
			},
		},
	)
	return cmd
}

func trialBalanceCmd(c *apiClient) *cobra.Command {
	var asOf string

	cmd := &cobra.Command{
		Use:   "trialbalance BRANCH",
		Short: "Show the trial balance of a branch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			if asOf != "" {
				q.Set("as_of", asOf)
			}
			body, err := c.do(cmd.Context(), http.MethodGet, "/api/v1/branches/"+url.PathEscape(args[0])+"/trial-balance", q, nil, nil)
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), body)
			return nil
		},
	}
	cmd.Flags().StringVar(&asOf, "as-of", "", "As-of date (YYYY-MM-DD), defaults to today")
	return cmd
}

func trackerCmd(c *apiClient) *cobra.Command {
	var (
		status        string
		limit, offset int
	)

	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Transaction tracker operations",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List trackers by status",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := url.Values{}
			q.Set("status", status)
			q.Set("limit", strconv.Itoa(limit))
			q.Set("offset", strconv.Itoa(offset))
			body, err := c.do(cmd.Context(), http.MethodGet, "/api/v1/trackers", q, nil, nil)
			if err != nil {
				return err
			}
			printJSON(cmd.OutOrStdout(), body)
			return nil
		},
	}
	list.Flags().StringVar(&status, "status", string(domain.TrackerFailed), "Tracker status")
	list.Flags().IntVar(&limit, "limit", 20, "Page size")
	list.Flags().IntVar(&offset, "offset", 0, "Page offset")

	cmd.AddCommand(
		list,
		&cobra.Command{
			Use:   "get REFERENCE",
			Short: "Show the tracker of a reference",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := c.do(cmd.Context(), http.MethodGet, "/api/v1/trackers/"+url.PathEscape(args[0]), nil, nil, nil)
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), body)
				return nil
			},
		},
		&cobra.Command{
			Use:   "retry REFERENCE",
			Short: "Retry a failed tracker",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := c.do(cmd.Context(), http.MethodPost, "/api/v1/trackers/"+url.PathEscape(args[0])+"/retry", nil, nil, nil)
				if body != nil {
					printJSON(cmd.OutOrStdout(), body)
				}
				return err
			},
		},
	)
	return cmd
}

func configCmd(c *apiClient) *cobra.Command {
	policy := domain.DefaultPolicy()
	var residual, precedence string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Accounting configuration operations",
	}

	validate := &cobra.Command{
		Use:   "validate FILE",
		Short: "Validate a YAML accounting configuration offline",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			set, err := configfile.Parse(data)
			if err != nil {
				return err
			}
			policy.Residual = domain.ResidualParty(residual)
			policy.Precedence = domain.CorrespondingPrecedence(precedence)
			snap, err := usecase.NewSnapshot(set, policy, 1, usecase.SystemClock{}.Now())
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(snap.Stats(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "configuration is valid\n%s\n", out)
			return nil
		},
	}
	validate.Flags().StringVar(&policy.HeadOfficeBranch, "head-office", policy.HeadOfficeBranch, "Head office branch")
	validate.Flags().StringVar(&residual, "residual", string(policy.Residual), "Share residual party (first|last)")
	validate.Flags().StringVar(&precedence, "precedence", string(policy.Precedence), "Corresponding precedence (exception|conditional)")

	cmd.AddCommand(
		validate,
		&cobra.Command{
			Use:   "refresh",
			Short: "Reload the configuration snapshot on the server",
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := c.do(cmd.Context(), http.MethodPost, "/api/v1/config/refresh", nil, nil, nil)
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), body)
				return nil
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Show the active configuration snapshot",
			RunE: func(cmd *cobra.Command, args []string) error {
				body, err := c.do(cmd.Context(), http.MethodGet, "/api/v1/config/version", nil, nil, nil)
				if err != nil {
					return err
				}
				printJSON(cmd.OutOrStdout(), body)
				return nil
			},
		},
	)
	return cmd
}

func ledgerCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := c.do(cmd.Context(), http.MethodGet, "/api/v1/ledger/consistency", nil, nil, nil)
			if err != nil {
				return fmt.Errorf("consistency check FAILED: %w", err)
			}

			var result struct {
				Consistent bool   `json:"consistent"`
				Status     string `json:"status"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Consistency check PASSED")
			fmt.Fprintf(out, "Consistent: %v\n", result.Consistent)
			fmt.Fprintf(out, "Status: %s\n", result.Status)
			return nil
		},
	})
	return cmd
}

func migrateCmd() *cobra.Command {
	var databaseURL, path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
	}
	cmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL")
	cmd.PersistentFlags().StringVar(&path, "path", "internal/infrastructure/postgres/migrations", "Migrations directory")

	logger := func(cmd *cobra.Command) zerolog.Logger {
		return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).With().Timestamp().Logger()
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			RunE: func(cmd *cobra.Command, args []string) error {
				if databaseURL == "" {
					return fmt.Errorf("--database-url or DATABASE_URL is required")
				}
				return postgres.RunMigrations(databaseURL, path, logger(cmd))
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the last migration",
			RunE: func(cmd *cobra.Command, args []string) error {
				if databaseURL == "" {
					return fmt.Errorf("--database-url or DATABASE_URL is required")
				}
				return postgres.RunMigrationsDown(databaseURL, path, logger(cmd))
			},
		},
	)
	return cmd
}
