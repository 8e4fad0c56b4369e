package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/its-jojoo/sharebutton/internal/client"
	"github.com/its-jojoo/sharebutton/internal/core"
	"github.com/its-jojoo/sharebutton/internal/usecase/capture"
	"github.com/its-jojoo/sharebutton/internal/usecase/search"
)

func newConfigCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show the target's share configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target, err := opts.client().FetchConfig(cmd.Context(), client.ConfigURL(opts.baseURL))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "name:    ", target.Name)
			fmt.Fprintln(out, "icon:    ", target.Icon)
			fmt.Fprintln(out, "endpoint:", target.Endpoint)
			return nil
		},
	}
}

func newShareCmd(opts *options) *cobra.Command {
	var typ string

	cmd := &cobra.Command{
		Use:   "share <text...>",
		Short: "Share text with the target",
		Long:  `Shares the given text. Without --type the kind is detected (text, url, command or code).`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			snd, target, err := resolveSender(ctx, opts)
			if err != nil {
				return err
			}

			svc := capture.New(snd, nil, capture.Config{Type: core.ContentType(typ)})
			res, sent, err := svc.ProcessText(ctx, strings.Join(args, " "))
			if err != nil {
				return err
			}
			if !sent {
				return errors.New("nothing to share: content is empty")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "shared to %s as #%d [%s]\n", target.Name, res.ID, res.Type)
			return nil
		},
	}
	cmd.Flags().StringVar(&typ, "type", "", "content type label to send")
	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	var (
		query string
		limit int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List shares stored on the target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src := sharesSource{c: opts.client(), url: client.SharesURL(opts.baseURL)}

			var items []core.SharedItem
			var err error
			if query != "" {
				items, err = search.New(src).Query(cmd.Context(), query, search.Options{Limit: limit})
			} else {
				items, err = src.ListShares(cmd.Context())
				if limit > 0 && len(items) > limit {
					items = items[len(items)-limit:]
				}
			}
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(items) == 0 {
				fmt.Fprintln(out, "(empty)")
				return nil
			}
			for _, it := range items {
				typ := it.TypeLabel()
				if typ == "" {
					typ = "-"
				}
				fmt.Fprintf(out, "%4d  %s  [%s] %s\n", it.ID, it.ReceivedAt, typ, preview(it.Content, 80))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "only show shares matching this text, best first")
	cmd.Flags().IntVar(&limit, "limit", 20, "max shares to show (0 for all)")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every share on the target to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			items, err := opts.client().ListShares(cmd.Context(), client.SharesURL(opts.baseURL))
			if err != nil {
				return err
			}
			if items == nil {
				items = []core.SharedItem{}
			}

			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "create output")
			}
			defer f.Close()

			enc := json.NewEncoder(f)
			enc.SetIndent("", "  ")
			if err := enc.Encode(items); err != nil {
				return errors.Wrap(err, "encode export")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "exported", len(items), "shares to", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "sharebutton-export.json", "output json file path")
	return cmd
}

func preview(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.TrimSpace(s)
	if len([]rune(s)) <= max {
		return s
	}
	return string([]rune(s)[:max-1]) + "…"
}
