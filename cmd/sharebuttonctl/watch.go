package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/its-jojoo/sharebutton/internal/adapter/clipboard"
	"github.com/its-jojoo/sharebutton/internal/core"
	"github.com/its-jojoo/sharebutton/internal/usecase/capture"
)

func newWatchCmd(opts *options) *cobra.Command {
	var (
		interval time.Duration
		ignore   []string
		useRegex bool
		typ      string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Share every new clipboard text (macOS)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			w, err := clipboard.NewSystemWatcher(interval)
			if err != nil {
				fmt.Fprintln(out, "watch mode is not supported here:", err)
				return nil
			}

			pf, err := core.NewPrivacyFilter(ignore, useRegex)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			snd, target, err := resolveSender(ctx, opts)
			if err != nil {
				return err
			}
			svc := capture.New(snd, pf, capture.Config{
				Type:              core.ContentType(typ),
				DedupeConsecutive: true,
			})

			clips, err := w.Watch(ctx)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "watching clipboard, sharing to %s... (Ctrl+C to exit)\n", target.Name)
			for txt := range clips {
				res, sent, err := svc.ProcessText(ctx, txt)
				if err != nil {
					fmt.Fprintln(out, "share error:", err)
					continue
				}
				if sent {
					fmt.Fprintf(out, "shared #%d [%s] %s\n", res.ID, res.Type, preview(res.Content, 60))
				}
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", clipboard.DefaultInterval, "clipboard poll interval")
	cmd.Flags().StringSliceVar(&ignore, "ignore", core.DefaultPrivacyPatterns, "skip clips containing any of these patterns")
	cmd.Flags().BoolVar(&useRegex, "ignore-regex", false, "treat ignore patterns as regular expressions")
	cmd.Flags().StringVar(&typ, "type", "", "content type label to send (detected when empty)")
	return cmd
}
