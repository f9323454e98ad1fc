package client

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/MKhiriev/asset-tracker/internal/config"
	"github.com/MKhiriev/asset-tracker/internal/logger"
	"github.com/MKhiriev/asset-tracker/internal/service"
	"github.com/MKhiriev/asset-tracker/internal/validators"
	"github.com/MKhiriev/asset-tracker/models"
)

const usage = `usage: client [flags] <command> [command flags]

commands:
  login                         check credentials and print the token owner
  list    [-category] [-status] [-search]
  create  -asset-id -name -category -status [-assigned-to]
  update  -id <id> -asset-id -name -category -status [-assigned-to]
  delete  -id <id>
`

type App struct {
	services    *service.ClientServices
	credentials config.ClientCredentials

	out    io.Writer
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, credentials config.ClientCredentials, out io.Writer, logger *logger.Logger) *App {
	return &App{
		services:    services,
		credentials: credentials,
		out:         out,
		logger:      logger,
	}
}

// Run logs in and executes one subcommand. Every asset route is protected,
// so the login happens before any command.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	run, ok := a.commands()[command]
	if !ok {
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	principal, err := a.services.AuthService.Login(ctx, models.Credentials{
		Username: a.credentials.Username,
		Password: a.credentials.Password,
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	a.logger.Debug().Str("command", command).Str("username", principal.Username).Msg("running command")

	if command == "login" {
		fmt.Fprintf(a.out, "Logged in as %s (id %d)\n", principal.Username, principal.UserID)
		return nil
	}

	return run(ctx, rest)
}

func (a *App) commands() map[string]func(context.Context, []string) error {
	return map[string]func(context.Context, []string) error{
		"login":  func(context.Context, []string) error { return nil },
		"list":   a.list,
		"create": a.create,
		"update": a.update,
		"delete": a.delete,
	}
}

func (a *App) list(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("list", flag.ContinueOnError)
	fs.SetOutput(a.out)
	category := fs.String("category", "", "filter by category")
	status := fs.String("status", "", "filter by status")
	search := fs.String("search", "", "case-insensitive search in asset id, name and assignee")
	if err := fs.Parse(args); err != nil {
		return err
	}

	assets, err := a.services.AssetService.ListAssets(ctx, validators.ParseAssetFilter(*category, *status, *search))
	if err != nil {
		return fmt.Errorf("list assets: %w", err)
	}

	return renderAssets(a.out, assets)
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	fs.SetOutput(a.out)
	req := bindAssetFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	asset, err := a.services.AssetService.CreateAsset(ctx, req.request(fs))
	if err != nil {
		return a.reportError("create asset", err)
	}

	return renderAssets(a.out, []models.Asset{asset})
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("update", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.Int64("id", 0, "internal id of the asset")
	req := bindAssetFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return ErrMissingID
	}

	asset, err := a.services.AssetService.UpdateAsset(ctx, *id, req.request(fs))
	if err != nil {
		return a.reportError("update asset", err)
	}

	return renderAssets(a.out, []models.Asset{asset})
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("delete", flag.ContinueOnError)
	fs.SetOutput(a.out)
	id := fs.Int64("id", 0, "internal id of the asset")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == 0 {
		return ErrMissingID
	}

	if err := a.services.AssetService.DeleteAsset(ctx, *id); err != nil {
		return fmt.Errorf("delete asset: %w", err)
	}

	fmt.Fprintf(a.out, "Asset %d deleted\n", *id)
	return nil
}

// reportError prints the field errors of a rejected write before returning
// the wrapped error.
func (a *App) reportError(op string, err error) error {
	for _, fe := range validators.FieldErrors(err) {
		fmt.Fprintf(a.out, "  %s: %s\n", fe.Field, fe.Message)
	}
	return fmt.Errorf("%s: %w", op, err)
}

type assetFlags struct {
	assetID, name, category, status, assignedTo *string
}

func bindAssetFlags(fs *flag.FlagSet) assetFlags {
	return assetFlags{
		assetID:    fs.String("asset-id", "", "unique business identifier, e.g. LAP-001"),
		name:       fs.String("name", "", "asset name"),
		category:   fs.String("category", "", "Laptop, License, Access Card, Monitor or Phone"),
		status:     fs.String("status", "", "Available, Allocated or Faulty"),
		assignedTo: fs.String("assigned-to", "", "person or entity holding the asset"),
	}
}

// request builds the wire body. assigned_to is only sent when the flag was
// given.
func (f assetFlags) request(fs *flag.FlagSet) models.AssetRequest {
	req := models.AssetRequest{
		AssetID:  *f.assetID,
		Name:     *f.name,
		Category: *f.category,
		Status:   *f.status,
	}

	fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "assigned-to" {
			req.AssignedTo = f.assignedTo
		}
	})

	return req
}
