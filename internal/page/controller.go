package page

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/cakehouse/storefront-client/internal/core/domain"
	"github.com/cakehouse/storefront-client/internal/core/ports"
	"github.com/cakehouse/storefront-client/internal/core/service"
)

// Deps bundles the collaborators every page controller draws from.
type Deps struct {
	Guard  *service.PageGuard
	Auth   *service.AuthService
	Orders *service.OrderService
	Admin  *service.AdminService
	Store  ports.SessionStore
	Doc    ports.Document
	Logger zerolog.Logger
}

// Controller is one page's lifecycle: guard first, then chrome, then the
// page-specific handlers. Init returns false when the guard redirected and
// nothing else may run.
type Controller struct {
	cfg     Config
	deps    Deps
	machine *Machine
}

func NewController(cfg Config, deps Deps) *Controller {
	return &Controller{cfg: cfg, deps: deps, machine: NewMachine()}
}

func (c *Controller) State() State {
	return c.machine.State()
}

// Init runs the guard decision and, when allowed, renders the session-
// dependent chrome: login/logout controls and the admin link.
func (c *Controller) Init() bool {
	if !c.deps.Guard.Allow(c.cfg.Required...) {
		_ = c.machine.To(StateRedirected)
		return false
	}

	session := c.deps.Store.Get()
	c.deps.Doc.SetAuthControls(session.Usable())
	c.deps.Doc.SetAdminLinkVisible(c.cfg.ShowAdminLink(session))

	_ = c.machine.To(StateIdle)
	return true
}

// QuantityChanged and ProductChanged re-derive the displayed total.
func (c *Controller) QuantityChanged(product, quantity string) {
	c.deps.Orders.ComputeTotal(product, quantity)
}

func (c *Controller) ProductChanged(product, quantity string) {
	c.deps.Orders.ComputeTotal(product, quantity)
}

// SubmitOrder drives the order form through one submission attempt.
func (c *Controller) SubmitOrder(ctx context.Context, draft service.OrderDraft) error {
	if err := c.machine.To(StateSubmitting); err != nil {
		return err
	}
	err := c.deps.Orders.Submit(ctx, draft)
	c.settle(err)
	return err
}

// SubmitLogin drives the login form.
func (c *Controller) SubmitLogin(ctx context.Context, username, password string) error {
	if err := c.machine.To(StateSubmitting); err != nil {
		return err
	}
	err := c.deps.Auth.Login(ctx, username, password)
	c.settle(err)
	return err
}

// SubmitRegister drives the registration form.
func (c *Controller) SubmitRegister(ctx context.Context, username, password string) error {
	if err := c.machine.To(StateSubmitting); err != nil {
		return err
	}
	err := c.deps.Auth.Register(ctx, username, password)
	c.settle(err)
	return err
}

// LoadOrders performs the admin console's one authenticated read.
func (c *Controller) LoadOrders(ctx context.Context) error {
	if err := c.machine.To(StateSubmitting); err != nil {
		return err
	}
	err := c.deps.Admin.Load(ctx)
	c.settle(err)
	return err
}

// Logout clears the session and navigates to the storefront.
func (c *Controller) Logout() {
	c.deps.Admin.Logout()
}

// settle records the terminal outcome of a request and returns the page to
// Idle: every error is terminal for its action but never for the page.
func (c *Controller) settle(err error) {
	if err != nil {
		_ = c.machine.To(StateFailed)
	} else {
		_ = c.machine.To(StateSucceeded)
	}
	_ = c.machine.To(StateIdle)
}

// DefaultCatalog is the storefront's fixed product list, as the order form
// renders it. Prices are rubles per item.
var DefaultCatalog = domain.Catalog{
	{Label: "Медовик", UnitPrice: 1500},
	{Label: "Наполеон", UnitPrice: 1700},
	{Label: "Красный бархат", UnitPrice: 2000},
	{Label: "Чизкейк", UnitPrice: 1800},
}
