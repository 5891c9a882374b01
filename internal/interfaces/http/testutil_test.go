package http_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/billing-api/internal/application/analytics"
	"github.com/jhoicas/billing-api/internal/application/auth"
	"github.com/jhoicas/billing-api/internal/application/billing"
	"github.com/jhoicas/billing-api/internal/domain/entity"
	"github.com/jhoicas/billing-api/internal/domain/repository"
	apihttp "github.com/jhoicas/billing-api/internal/interfaces/http"
	"github.com/jhoicas/billing-api/pkg/jwt"
)

const (
	testSecret = "secreto-de-pruebas"
	testUserA  = "00000000-0000-0000-0000-0000000000aa"
	testUserB  = "00000000-0000-0000-0000-0000000000bb"
)

func init() {
	// Igual que en main: los montos salen como números JSON, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeCustomerRepo struct {
	customers map[string]*entity.Customer
	order     []string
	failWith  error
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: map[string]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *c
	r.customers[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id string) (*entity.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.customers[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) List(_ context.Context, limit, offset int) ([]*entity.Customer, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []*entity.Customer
	for i := offset; i < len(r.order) && len(out) < limit; i++ {
		cp := *r.customers[r.order[i]]
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeCustomerRepo) Count(_ context.Context) (int, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.order), nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *c
	r.customers[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id string) error {
	if r.failWith != nil {
		return r.failWith
	}
	delete(r.customers, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

type fakeInvoiceRepo struct {
	invoices map[string]*entity.Invoice
	names    map[string]string
	failWith error
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[string]*entity.Invoice{}, names: map[string]string{}}
}

func (r *fakeInvoiceRepo) put(inv entity.Invoice) {
	r.invoices[inv.ID] = &inv
}

func (r *fakeInvoiceRepo) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	inv, ok := r.invoices[id]
	if !ok {
		return nil, nil
	}
	cp := *inv
	return &cp, nil
}

func (r *fakeInvoiceRepo) List(_ context.Context, customerID string) ([]repository.InvoiceRow, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	var out []repository.InvoiceRow
	for _, inv := range r.invoices {
		if customerID != "" && inv.CustomerID != customerID {
			continue
		}
		out = append(out, repository.InvoiceRow{Invoice: *inv, CustomerName: r.names[inv.CustomerID]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Invoice.ID < out[j].Invoice.ID })
	return out, nil
}

func (r *fakeInvoiceRepo) ListByCustomerIDs(_ context.Context, customerIDs []string) ([]*entity.Invoice, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	wanted := map[string]bool{}
	for _, id := range customerIDs {
		wanted[id] = true
	}
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if wanted[inv.CustomerID] {
			cp := *inv
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeInvoiceRepo) Update(_ context.Context, inv *entity.Invoice) error {
	if r.failWith != nil {
		return r.failWith
	}
	cp := *inv
	r.invoices[inv.ID] = &cp
	return nil
}

func (r *fakeInvoiceRepo) DeleteByCustomer(_ context.Context, customerID string) error {
	if r.failWith != nil {
		return r.failWith
	}
	for id, inv := range r.invoices {
		if inv.CustomerID == customerID {
			delete(r.invoices, id)
		}
	}
	return nil
}

type fakeTxRunner struct {
	customers *fakeCustomerRepo
	invoices  *fakeInvoiceRepo
}

func (r *fakeTxRunner) RunBilling(ctx context.Context, fn func(
	customerRepo repository.CustomerRepository,
	invoiceRepo repository.InvoiceRepository,
) error) error {
	return fn(r.customers, r.invoices)
}

type fakeUserRepo struct {
	byEmail map[string]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	cp := *u
	r.byEmail[u.Email] = &cp
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type fakePDFGenerator struct{}

func (fakePDFGenerator) GenerateInvoicePDF(_ context.Context, _ *entity.Invoice, _ *entity.Customer) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de pruebas
// ──────────────────────────────────────────────────────────────────────────────

type testEnv struct {
	app       *fiber.App
	customers *fakeCustomerRepo
	invoices  *fakeInvoiceRepo
	users     *fakeUserRepo
}

func newTestApp(t *testing.T) *testEnv {
	t.Helper()

	customers := newFakeCustomerRepo()
	invoices := newFakeInvoiceRepo()
	users := newFakeUserRepo()
	tx := &fakeTxRunner{customers: customers, invoices: invoices}

	app := fiber.New()
	apihttp.Router(app, apihttp.RouterDeps{
		AuthUC:     auth.NewAuthUseCase(users, auth.JWTConfig{Secret: testSecret, ExpMinutes: 60, Issuer: "billing-api-test"}),
		CustomerUC: billing.NewCustomerUseCase(customers, invoices, tx),
		InvoiceUC:  billing.NewInvoiceUseCase(invoices),
		InvoicePDF: billing.NewPDFUseCase(invoices, customers, fakePDFGenerator{}),
		StatsUC:    analytics.NewStatsUseCase(&fakeStatsRepo{}),
		Resolver:   auth.NewTokenResolver(testSecret),
	})

	return &testEnv{app: app, customers: customers, invoices: invoices, users: users}
}

type fakeStatsRepo struct{}

func (fakeStatsRepo) CountCustomers(_ context.Context) (int64, error)        { return 0, nil }
func (fakeStatsRepo) CountPendingInvoices(_ context.Context) (int64, error)  { return 0, nil }
func (fakeStatsRepo) SumInvoiceAmounts(_ context.Context) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

// tokenFor emite un token válido para el userID dado.
func tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, err := jwt.Generate(testSecret, userID, "billing-api-test", 60)
	require.NoError(t, err)
	return token
}

// doJSON ejecuta una petición contra la app; token vacío omite Authorization.
func doJSON(t *testing.T, app *fiber.App, method, target, token, body string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decodeBody parsea el body JSON en out.
func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, out), "body: %s", raw)
}

// readBody devuelve el body crudo como string.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
