package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"buildchem-be/internal/config"
	"buildchem-be/pkg/events"

	pktNats "buildchem-be/pkg/nats"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newWatchCmd() *cobra.Command {
	var subject, durable string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print lead events as they arrive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Load()
			out := cmd.OutOrStdout()

			sub, err := pktNats.NewSubscriber(cfg.Events.NatsURL, func(subj string, err error) {
				color.New(color.FgRed).Fprintf(out, "undecodable message on %s: %v\n", subj, err)
			})
			if err != nil {
				return err
			}
			defer sub.Close()

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			err = sub.Subscribe(ctx, subject, durable, func(_ context.Context, event events.Event) error {
				printEvent(out, event)
				return nil
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "Watching %s (ctrl+c to stop)\n", subject)
			<-ctx.Done()
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", pktNats.SubjectPrefix+">", "subject filter")
	cmd.Flags().StringVar(&durable, "durable", "", "durable consumer name; empty only shows new events")
	return cmd
}

func printEvent(w io.Writer, event events.Event) {
	headline := color.New(color.FgCyan, color.Bold)
	if event.EventType() == events.CatalogRequestSubmitted {
		headline = color.New(color.FgGreen, color.Bold)
	}

	headline.Fprintf(w, "%s %s\n", event.Timestamp().Local().Format(time.DateTime), event.EventType())
	fmt.Fprintln(w, formatPayload(event.Payload()))
}

// formatPayload renders the payload as sorted key=value lines.
func formatPayload(data map[string]interface{}) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, fmt.Sprintf("  %s=%v", k, data[k]))
	}
	return strings.Join(lines, "\n")
}
