package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/go-faster/errors"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/arnac-io/chatpay/pkg/actor"
	"github.com/arnac-io/chatpay/pkg/app"
	"github.com/arnac-io/chatpay/pkg/core"
	"github.com/arnac-io/chatpay/pkg/dispatcher"
	"github.com/arnac-io/chatpay/pkg/files"
	"github.com/arnac-io/chatpay/pkg/oas"
	"github.com/arnac-io/chatpay/pkg/payments"
	"github.com/arnac-io/chatpay/pkg/promise"
	"github.com/arnac-io/chatpay/pkg/wire"
)

func main() {
	cliApp := &cli.App{
		Name:  "invoice",
		Usage: "validate invoices and turn them into shareable links",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "WARN", EnvVars: []string{"LOG_LEVEL"}},
			&cli.StringFlag{Name: "lang", Value: "en", EnvVars: []string{"LANGUAGE"}},
		},
		Commands: []*cli.Command{
			{
				Name:  "export",
				Usage: "export an invoice described in a YAML file",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}, Required: true, Usage: "invoice YAML file"},
					&cli.BoolFlag{Name: "dry-run", Usage: "print the encoded invoice instead of exporting it"},
					&cli.StringFlag{Name: "backend-url", EnvVars: []string{"BACKEND_URL"}},
					&cli.StringFlag{Name: "token", EnvVars: []string{"BACKEND_TOKEN"}},
				},
				Action: export,
			},
		},
	}
	if err := cliApp.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func export(c *cli.Context) error {
	log := app.Logger(c.String("log-level"))
	content, err := readInvoiceFile(c.String("file"))
	if err != nil {
		return err
	}
	if c.Bool("dry-run") {
		return dryRun(c.App.Writer, content, c.String("lang"), log)
	}
	if c.String("backend-url") == "" {
		return errors.New("backend url is required unless --dry-run is set")
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()
	d := dispatcher.New(c.String("backend-url"), dispatcher.WithLogger(log), dispatcher.WithToken(c.String("token")))
	defer d.Close()
	session := actor.New(log)
	go session.Run(ctx)
	h := payments.NewHandler(d, session, files.NewManager(16, log),
		payments.WithLogger(log),
		payments.WithLanguage(c.String("lang")))

	p, ch := promise.Chan[string]()
	h.ExportInvoice(ctx, content, p)
	res := <-ch
	if res.Err != nil {
		return errors.Wrapf(res.Err, "export invoice (%s)", core.ErrorCode(res.Err))
	}
	fmt.Fprintln(c.App.Writer, res.Value)
	return nil
}

// dryRun validates the invoice locally and prints the request body that would be sent.
func dryRun(w io.Writer, content oas.InputMessageContent, lang string, log *zap.Logger) error {
	tr := payments.NewTranslator(files.NewManager(16, log), lang, log)
	inv, err := tr.ProcessInputMessageInvoice(content)
	if err != nil {
		return err
	}
	media, err := tr.GetInputMediaInvoice(inv)
	if err != nil {
		return err
	}
	data, err := wire.Marshal(&wire.PaymentsExportInvoice{InvoiceMedia: media})
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", data)
	fmt.Fprintf(w, "total: %s\n", core.FormatAmount(inv.TotalAmount, inv.Invoice.Currency))
	return nil
}
