package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/folio-arcade/internal/contact"
	"github.com/vovakirdan/folio-arcade/internal/platform/tui"
)

var form contact.Form

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Send a message through the contact form",
	Long: `Send a message through the email relay.

With --name, --email and --message the message is sent directly.
Without them the interactive form opens.

The relay needs EMAILJS_SERVICE_ID, EMAILJS_TEMPLATE_ID and
EMAILJS_PUBLIC_KEY (or ~/.folio/configs/contact.yaml).

Examples:
  folio contact
  folio contact --name Ada --email ada@example.com --message "Hello"`,
	Args: cobra.NoArgs,
	Run:  runContact,
}

func init() {
	contactCmd.Flags().StringVar(&form.Name, "name", "", "Your name")
	contactCmd.Flags().StringVar(&form.Email, "email", "", "Your email address")
	contactCmd.Flags().StringVar(&form.Company, "company", "", "Company (optional)")
	contactCmd.Flags().StringVar(&form.Message, "message", "", "Message text")
}

func runContact(cmd *cobra.Command, _ []string) {
	if form == (contact.Form{}) {
		runContactForm()
		return
	}

	logger, closer := newLogger("folio", false)
	defer closer.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), 20*time.Second)
	defer cancel()

	err := newContact(logger).Submit(ctx, form)
	if err != nil {
		fmt.Fprintln(os.Stderr, contact.Banner(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(contact.Banner(nil))
}

// runContactForm opens the menu on the contact screen.
func runContactForm() {
	logger, closer := newLogger("folio", true)
	defer closer.Close()

	app := tui.NewContactApp(deps(nil, logger), runtimeConfig())
	if err := tui.Run(app); err != nil {
		fail("%v", err)
	}
}
