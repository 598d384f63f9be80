package scenario

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/farhankamalkhan/saucedemo/internal/fixtures"
)

// Driver is the browser-facing surface a case runs against. The e2e suite
// backs it with playwright page objects; unit tests back it with a mock.
type Driver interface {
	Login(username, password string) error
	LoginError() (string, error)
	Location() (string, error)
	AddProduct(name string) error
	RemoveProduct(name string) error
	OpenCart() error
	ClearCart() error
	CartItems() ([]string, error)
	BadgeCount() (int, error)
	BeginCheckout() error
	FillInformation(first, last, postal string) error
	ContinueToOverview() error
	ItemTotal() (float64, error)
	FinishCheckout() error
	CompleteHeader() (string, error)
}

// StepResult records the outcome of a single step.
type StepResult struct {
	Name     string
	Passed   bool
	Duration time.Duration
	Error    string // empty when passed
}

// Result records the outcome of an entire case.
type Result struct {
	Case     *Case
	Passed   bool
	Steps    []StepResult
	Duration time.Duration
}

// Runner executes cases against a Driver.
type Runner struct {
	driver Driver
}

// NewRunner creates a Runner backed by the given driver.
func NewRunner(d Driver) *Runner {
	return &Runner{driver: d}
}

// Run executes the case's steps in order. Each step's post-condition is
// verified before the next action runs; the first failing step aborts the
// remainder. Context cancellation aborts between steps and fails the case.
func (r *Runner) Run(ctx context.Context, c *Case) *Result {
	start := time.Now()
	result := &Result{Case: c, Passed: true}

	for _, step := range c.Steps {
		if err := ctx.Err(); err != nil {
			result.Steps = append(result.Steps, StepResult{
				Name:  stepName(step),
				Error: fmt.Sprintf("aborted: %v", err),
			})
			result.Passed = false
			break
		}

		sr := r.runStep(c, step)
		result.Steps = append(result.Steps, sr)
		if !sr.Passed {
			result.Passed = false
			break
		}
	}

	result.Duration = time.Since(start)
	return result
}

func (r *Runner) runStep(c *Case, step Step) StepResult {
	start := time.Now()
	sr := StepResult{Name: stepName(step)}

	if err := r.act(c, step); err != nil {
		sr.Error = err.Error()
		sr.Duration = time.Since(start)
		return sr
	}
	if err := r.verify(c, step); err != nil {
		sr.Error = err.Error()
		sr.Duration = time.Since(start)
		return sr
	}

	sr.Passed = true
	sr.Duration = time.Since(start)
	return sr
}

func (r *Runner) act(c *Case, step Step) error {
	switch step.Action {
	case ActionLogin:
		if c.Credential == nil {
			return fmt.Errorf("login: case has no credential")
		}
		return r.driver.Login(c.Credential.Username, c.Credential.Password)
	case ActionAddProduct:
		if step.Target == "" {
			return fmt.Errorf("add-product: step has no target")
		}
		return r.driver.AddProduct(step.Target)
	case ActionRemoveProduct:
		if step.Target == "" {
			return fmt.Errorf("remove-product: step has no target")
		}
		return r.driver.RemoveProduct(step.Target)
	case ActionOpenCart:
		return r.driver.OpenCart()
	case ActionClearCart:
		return r.driver.ClearCart()
	case ActionBeginCheckout:
		return r.driver.BeginCheckout()
	case ActionFillInformation:
		if c.Shopper == (fixtures.Shopper{}) {
			return fmt.Errorf("fill-information: case has no shopper identity")
		}
		return r.driver.FillInformation(c.Shopper.FirstName, c.Shopper.LastName, c.Shopper.PostalCode)
	case ActionContinueCheckout:
		return r.driver.ContinueToOverview()
	case ActionFinishCheckout:
		return r.driver.FinishCheckout()
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}

func (r *Runner) verify(c *Case, step Step) error {
	switch step.Expect {
	case ExpectNone:
		return nil
	case ExpectInventory:
		loc, err := r.driver.Location()
		if err != nil {
			return fmt.Errorf("reading location: %w", err)
		}
		if !strings.Contains(loc, "/inventory.html") {
			return fmt.Errorf("expected inventory page, at %q", loc)
		}
		return nil
	case ExpectLoginError:
		want := step.Text
		if want == "" && c.Credential != nil {
			want = c.Credential.ExpectedError
		}
		got, err := r.driver.LoginError()
		if err != nil {
			return fmt.Errorf("reading login error: %w", err)
		}
		if got != want {
			return fmt.Errorf("expected login error %q, got %q", want, got)
		}
		return nil
	case ExpectBadgeCount:
		n, err := r.driver.BadgeCount()
		if err != nil {
			return fmt.Errorf("reading badge: %w", err)
		}
		if n != step.Count {
			return fmt.Errorf("expected badge count %d, got %d", step.Count, n)
		}
		return nil
	case ExpectBadgeAbsent:
		n, err := r.driver.BadgeCount()
		if err != nil {
			return fmt.Errorf("reading badge: %w", err)
		}
		if n != 0 {
			return fmt.Errorf("expected no badge, got count %d", n)
		}
		return nil
	case ExpectCartContains:
		want := step.Items
		if len(want) == 0 {
			want = c.ProductNames()
		}
		got, err := r.driver.CartItems()
		if err != nil {
			return fmt.Errorf("reading cart: %w", err)
		}
		if !sameNames(got, want) {
			return fmt.Errorf("expected cart %v, got %v", want, got)
		}
		return nil
	case ExpectCartEmpty:
		got, err := r.driver.CartItems()
		if err != nil {
			return fmt.Errorf("reading cart: %w", err)
		}
		if len(got) != 0 {
			return fmt.Errorf("expected empty cart, got %v", got)
		}
		return nil
	case ExpectItemTotal:
		want := 0.0
		for _, p := range c.Products {
			v, err := fixtures.ParseCurrency(p.Price)
			if err != nil {
				return fmt.Errorf("fixture price for %s: %w", p.Name, err)
			}
			want += v
		}
		got, err := r.driver.ItemTotal()
		if err != nil {
			return fmt.Errorf("reading item total: %w", err)
		}
		if math.Abs(got-want) > 0.005 {
			return fmt.Errorf("expected item total %.2f, got %.2f", want, got)
		}
		return nil
	case ExpectOrderComplete:
		want := step.Text
		if want == "" {
			want = CompleteHeaderText
		}
		got, err := r.driver.CompleteHeader()
		if err != nil {
			return fmt.Errorf("reading confirmation: %w", err)
		}
		if got != want {
			return fmt.Errorf("expected confirmation %q, got %q", want, got)
		}
		return nil
	default:
		return fmt.Errorf("unknown expectation %q", step.Expect)
	}
}

func stepName(step Step) string {
	if step.Name != "" {
		return step.Name
	}
	return string(step.Action)
}

// sameNames compares two name lists ignoring order.
func sameNames(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]string(nil), a...)
	bs := append([]string(nil), b...)
	sort.Strings(as)
	sort.Strings(bs)
	return slices.Equal(as, bs)
}
