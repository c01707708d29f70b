// Command haclient-demo connects to a single device over the control
// protocol and prints discovered entities and telemetry to stdout. It is a
// thin exercise of the haclient package, not a production client.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/gosuda/haclient"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		host string
		port int
		psk  string
		name string
	)

	root := &cobra.Command{
		Use:   "haclient-demo",
		Short: "Connect to a device and stream its entities and telemetry",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd.Context(), host, port, psk, name)
		},
	}
	root.Flags().StringVar(&host, "host", "", "device hostname or IP (required)")
	root.Flags().IntVar(&port, "port", haclient.DefaultPort, "device TCP port")
	root.Flags().StringVar(&psk, "psk", "", "base64-encoded 32-byte pre-shared key; omit for plaintext")
	root.Flags().StringVar(&name, "client-id", "", "client_info string sent in HELLO_REQUEST")
	_ = root.MarkFlagRequired("host")

	root.AddCommand(newSwitchCmd(&host, &port, &psk, &name))
	return root
}

func newSwitchCmd(host *string, port *int, psk, name *string) *cobra.Command {
	var (
		entityID string
		state    bool
	)
	c := &cobra.Command{
		Use:   "switch",
		Short: "Send a switch command to one entity and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := haclient.NewClient(haclient.ClientConfig{
				Host:     *host,
				Port:     *port,
				PSK:      *psk,
				ClientID: *name,
			}, nil)
			if err := client.Connect(); err != nil {
				return err
			}
			defer client.Disconnect("demo exiting")

			requestID := uuid.NewString()
			fmt.Fprintf(os.Stderr, "[%s] sending switch command to %s state=%v\n", requestID, entityID, state)
			client.SendSwitchCommand(entityID, state)
			time.Sleep(500 * time.Millisecond)
			return nil
		},
	}
	c.Flags().StringVar(&entityID, "entity", "", "entity string id, e.g. switch-relay_1")
	c.Flags().BoolVar(&state, "state", false, "desired switch state")
	_ = c.MarkFlagRequired("entity")
	return c
}

// runWatch connects, logs discovered entities, and streams events until the
// context is canceled or the connection fails.
func runWatch(ctx context.Context, host string, port int, psk, clientID string) error {
	client := haclient.NewClient(haclient.ClientConfig{
		Host:     host,
		Port:     port,
		PSK:      psk,
		ClientID: clientID,
	}, nil)

	sessionID := uuid.New()
	if err := client.Connect(); err != nil {
		return fmt.Errorf("connect %s:%d: %w", host, port, err)
	}
	fmt.Fprintf(os.Stderr, "session %s connected to %s:%d\n", sessionID, host, port)
	defer client.Disconnect("demo exiting")

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-client.Events():
			if !ok {
				return nil
			}
			printEvent(ev)
			if ev.Kind == haclient.EventDisconnect {
				return nil
			}
		}
	}
}

func printEvent(ev haclient.Event) {
	switch ev.Kind {
	case haclient.EventConnect:
		fmt.Printf("connected encrypted=%v\n", ev.Encrypted)
	case haclient.EventEntities:
		fmt.Printf("discovered %d entities\n", len(ev.Entities))
		for _, e := range ev.Entities {
			fmt.Printf("  %s (%s)\n", e.StringID(), e.Name)
		}
	case haclient.EventTelemetry:
		fmt.Printf("telemetry type=%s key=%d\n", ev.Telemetry.Type, ev.Telemetry.Key)
	case haclient.EventDisconnect:
		fmt.Printf("disconnected: %s\n", ev.Reason)
	}
}
