// The deskpal command sends test notifications through the same delivery
// path the MCP server uses, so branding, icons, actions, and reply input
// can be verified without an MCP client attached.
//
// Usage:
//
//	deskpal [flags] [simple|actions|reply|all]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/deskpal/deskpal/config"
	deskpallogger "github.com/deskpal/deskpal/logger"
	"github.com/deskpal/deskpal/notify"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath = flag.String("config", config.GetConfigPath(), "Path to config file")
		clientName = flag.String("client", "claude", "Client name to resolve the content image for")
	)
	flag.Parse()

	testType := flag.Arg(0)
	if testType == "" {
		testType = "simple"
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	log, err := deskpallogger.InitWithOptions("", true)
	if err != nil {
		return err
	}

	transmitter := notify.SelectTransmitter(cfg, log)
	icons := notify.NewIconResolver(cfg.Notifier.IconDir, cfg.ClientIcons, log)
	contentImage := icons.ContentImageForClient(*clientName)

	fmt.Println("DeskPal Test Script")
	fmt.Println("============================")
	fmt.Printf("Test client: %s\n", *clientName)
	if contentImage != "" {
		fmt.Printf("Content image: %s\n", contentImage)
	} else {
		fmt.Println("Content image: (none)")
	}

	runner := &testRunner{
		transmitter:  transmitter,
		tiers:        cfg.Timeouts,
		contentImage: contentImage,
	}

	ctx := context.Background()
	switch testType {
	case "simple":
		return runner.simple(ctx)
	case "actions":
		return runner.actions(ctx)
	case "reply":
		return runner.reply(ctx)
	case "all":
		if err := runner.simple(ctx); err != nil {
			return err
		}
		if err := runner.actions(ctx); err != nil {
			return err
		}
		if err := runner.reply(ctx); err != nil {
			return err
		}
		fmt.Println("\n--- All tests complete ---")
		return nil
	default:
		return fmt.Errorf("unknown test type %q (available: simple, actions, reply, all)", testType)
	}
}

type testRunner struct {
	transmitter  notify.Transmitter
	tiers        config.TimeoutTiers
	contentImage string
}

func (r *testRunner) send(ctx context.Context, req notify.Request) error {
	req.ContentImage = r.contentImage
	result, err := r.transmitter.Send(ctx, req)
	if err != nil {
		return err
	}
	fmt.Printf("Result: response=%q activationType=%q reply=%q\n",
		result.Response, result.ActivationType, result.Reply)
	return nil
}

func (r *testRunner) simple(ctx context.Context) error {
	fmt.Println("\n--- Testing: Simple Notification ---")
	return r.send(ctx, notify.Request{
		Title:          "Test Notification",
		Message:        "This is a simple test notification.",
		TimeoutSeconds: notify.ResolveTimeout(notify.TimeoutOptions{}, r.tiers),
	})
}

func (r *testRunner) actions(ctx context.Context) error {
	fmt.Println("\n--- Testing: Notification with Actions ---")
	fmt.Println(`Click "Show" to see the dropdown menu.`)
	actions := []string{"Accept", "Reject", "Later"}
	return r.send(ctx, notify.Request{
		Title:          "Action Test",
		Message:        "Choose an option from the dropdown.",
		Actions:        actions,
		DropdownLabel:  "Choose Action",
		TimeoutSeconds: notify.ResolveTimeout(notify.TimeoutOptions{Actions: actions}, r.tiers),
	})
}

func (r *testRunner) reply(ctx context.Context) error {
	fmt.Println("\n--- Testing: Notification with Reply ---")
	fmt.Println("Type a reply in the text field.")
	return r.send(ctx, notify.Request{
		Title:          "Reply Test",
		Message:        "What would you like to say?",
		Reply:          true,
		TimeoutSeconds: notify.ResolveTimeout(notify.TimeoutOptions{Reply: true}, r.tiers),
	})
}
