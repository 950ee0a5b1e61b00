// Command storefront drives the cake storefront's client engine from a
// terminal. Each subcommand plays the part of one static page: the guard
// runs first, then the page's single user action.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/cakehouse/storefront-client/internal/core/ports"
	"github.com/cakehouse/storefront-client/internal/core/service"
	"github.com/cakehouse/storefront-client/internal/infrastructure/backend"
	"github.com/cakehouse/storefront-client/internal/infrastructure/session"
	"github.com/cakehouse/storefront-client/internal/notify"
	"github.com/cakehouse/storefront-client/internal/page"
	"github.com/cakehouse/storefront-client/internal/pkg/config"
	"github.com/cakehouse/storefront-client/internal/ui/term"
	"github.com/cakehouse/storefront-client/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	surface := term.NewSurface(os.Stdout)

	var store ports.SessionStore
	switch cfg.Session.Backend {
	case "redis":
		client, err := session.Connect(context.Background(), session.RedisConfig{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return err
		}
		defer client.Close()
		store = session.NewRedisStore(client, log)
	default:
		path := cfg.Session.Path
		if path == "" {
			path = session.DefaultPath()
		}
		store = session.NewFileStore(path)
	}

	gateway := backend.New(cfg.BaseURL, nil, log)
	center := notify.NewCenter(surface, log)
	defer center.Stop()

	deps := page.Deps{
		Guard:  service.NewPageGuard(store, surface, log),
		Auth:   service.NewAuthService(gateway, store, center, surface, log),
		Orders: service.NewOrderService(page.DefaultCatalog, gateway, store, center, surface, log),
		Admin:  service.NewAdminService(gateway, store, center, surface, surface, log),
		Store:  store,
		Doc:    surface,
		Logger: log,
	}

	open := func(p ports.Page) (*page.Controller, bool) {
		ctrl := page.NewController(page.Configs[p], deps)
		return ctrl, ctrl.Init()
	}

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Client for the cake storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var username, password string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, ok := open(ports.PageLogin)
			if !ok {
				return nil
			}
			return ctrl.SubmitLogin(cmd.Context(), username, password)
		},
	}
	loginCmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	registerCmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account (log in separately afterwards)",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, ok := open(ports.PageRegister)
			if !ok {
				return nil
			}
			return ctrl.SubmitRegister(cmd.Context(), username, password)
		},
	}
	registerCmd.Flags().StringVarP(&username, "username", "u", "", "account name")
	registerCmd.Flags().StringVarP(&password, "password", "p", "", "account password")

	var draft service.OrderDraft

	orderCmd := &cobra.Command{
		Use:   "order",
		Short: "Price and submit an order",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, ok := open(ports.PageStorefront)
			if !ok {
				return nil
			}
			ctrl.QuantityChanged(draft.Product, draft.Quantity)
			return ctrl.SubmitOrder(cmd.Context(), draft)
		},
	}
	orderCmd.Flags().StringVar(&draft.Name, "name", "", "customer name")
	orderCmd.Flags().StringVar(&draft.Phone, "phone", "", "contact phone")
	orderCmd.Flags().StringVar(&draft.Product, "product", "", "product from the catalog")
	orderCmd.Flags().StringVar(&draft.Quantity, "quantity", "1", "number of items")
	orderCmd.Flags().StringVar(&draft.Details, "details", "", "optional order details")

	ordersCmd := &cobra.Command{
		Use:   "orders",
		Short: "Admin console: list submitted orders",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, ok := open(ports.PageAdmin)
			if !ok {
				return nil
			}
			return ctrl.LoadOrders(cmd.Context())
		},
	}

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "Clear the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, ok := open(ports.PageStorefront)
			if !ok {
				return nil
			}
			ctrl.Logout()
			return nil
		},
	}

	root.AddCommand(loginCmd, registerCmd, orderCmd, ordersCmd, logoutCmd)
	return root.Execute()
}
