package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/its-jojoo/sharebutton/internal/client"
	"github.com/its-jojoo/sharebutton/internal/core"
)

type options struct {
	baseURL string
	timeout time.Duration
}

func (o *options) client() *client.Client { return client.New(o.timeout) }

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "sharebuttonctl",
		Short: "Talk to a share button target from the command line.",
		Long: `sharebuttonctl follows the same flow as the mobile app: it asks the ` +
			`target for its configuration, then posts content to the endpoint the ` +
			`configuration names.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "url", "http://localhost:3000", "base URL of the share target")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "HTTP timeout per request")

	cmd.AddCommand(
		newConfigCmd(opts),
		newShareCmd(opts),
		newListCmd(opts),
		newExportCmd(opts),
		newWatchCmd(opts),
	)
	return cmd
}

// endpointSender posts captured clips to a fixed share endpoint.
type endpointSender struct {
	c        *client.Client
	endpoint string
}

func (s endpointSender) Send(ctx context.Context, req core.ShareRequest) (int, error) {
	return s.c.PostShare(ctx, s.endpoint, req)
}

// sharesSource reads the target's share list for searching.
type sharesSource struct {
	c   *client.Client
	url string
}

func (s sharesSource) ListShares(ctx context.Context) ([]core.SharedItem, error) {
	return s.c.ListShares(ctx, s.url)
}

// resolveSender fetches the target configuration and returns a sender for
// the endpoint it advertises.
func resolveSender(ctx context.Context, opts *options) (endpointSender, core.ShareTarget, error) {
	c := opts.client()
	target, err := c.FetchConfig(ctx, client.ConfigURL(opts.baseURL))
	if err != nil {
		return endpointSender{}, core.ShareTarget{}, err
	}
	return endpointSender{c: c, endpoint: target.Endpoint}, target, nil
}
