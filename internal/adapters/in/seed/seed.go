// Package seed loads products, stock and coupons from a YAML file and applies them
// through the upsert commands.
//
//	products:
//	  - id: dress-1
//	    name: Wrap dress
//	    price: "800.00"
//	    variants:
//	      - {size: M, color: black, stock: 5}
//	coupons:
//	  - code: INDIRIM10
//	    kind: percentage
//	    value: "10"
//	    cap: "500"
//	    validUntil: "2026-12-31T23:59:59Z"
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/cart"
	"storefront/internal/core/domain/model/coupon"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type File struct {
	Products []Product `yaml:"products"`
	Coupons  []Coupon  `yaml:"coupons"`
}

// Product without variants gets one variant with empty size and color carrying Stock.
type Product struct {
	ID       string    `yaml:"id"`
	Name     string    `yaml:"name"`
	Price    string    `yaml:"price"`
	Active   *bool     `yaml:"active"`
	Stock    int       `yaml:"stock"`
	Variants []Variant `yaml:"variants"`
}

type Variant struct {
	Size  string `yaml:"size"`
	Color string `yaml:"color"`
	Stock int    `yaml:"stock"`
}

type Coupon struct {
	Code        string   `yaml:"code"`
	Kind        string   `yaml:"kind"`
	Value       string   `yaml:"value"`
	Active      *bool    `yaml:"active"`
	Cap         string   `yaml:"cap"`
	MinSubtotal string   `yaml:"minSubtotal"`
	ValidFrom   string   `yaml:"validFrom"`
	ValidUntil  string   `yaml:"validUntil"`
	Products    []string `yaml:"products"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes seed YAML. Unknown keys are rejected.
func Parse(data []byte) (*File, error) {
	var f File

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed YAML: %w", err)
	}

	return &f, nil
}

type CommandHandler[C any] interface {
	Handle(ctx context.Context, cmd C) error
}

// Loader applies a seed file through the upsert command handlers.
type Loader struct {
	products CommandHandler[commands.UpsertProductCommand]
	coupons  CommandHandler[commands.UpsertCouponCommand]
	logger   *slog.Logger
}

func NewLoader(
	products CommandHandler[commands.UpsertProductCommand],
	coupons CommandHandler[commands.UpsertCouponCommand],
	logger *slog.Logger,
) *Loader {
	return &Loader{
		products: products,
		coupons:  coupons,
		logger:   logger.With("component", "seed"),
	}
}

// LoadFile parses path and applies it.
func (l *Loader) LoadFile(ctx context.Context, path string) error {
	f, err := LoadFile(path)
	if err != nil {
		return err
	}
	return l.Apply(ctx, f)
}

// Apply upserts every product, then every coupon. It stops at the first entry that
// fails; entries applied before it stay applied, and running the file again is safe.
func (l *Loader) Apply(ctx context.Context, f *File) error {
	for _, p := range f.Products {
		cmd, err := p.command()
		if err != nil {
			return fmt.Errorf("product %q: %w", p.ID, err)
		}
		if err = l.products.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("product %q: %w", p.ID, err)
		}
	}

	for _, c := range f.Coupons {
		cmd, err := c.command()
		if err != nil {
			return fmt.Errorf("coupon %q: %w", c.Code, err)
		}
		if err = l.coupons.Handle(ctx, cmd); err != nil {
			return fmt.Errorf("coupon %q: %w", c.Code, err)
		}
	}

	l.logger.InfoContext(ctx, "Seed applied", "products", len(f.Products), "coupons", len(f.Coupons))
	return nil
}

func (p Product) command() (commands.UpsertProductCommand, error) {
	price, err := kernel.MoneyFromString(p.Price)
	if err != nil {
		return commands.UpsertProductCommand{}, err
	}

	variants := make([]commands.VariantStock, 0, max(len(p.Variants), 1))
	for _, v := range p.Variants {
		variants = append(variants, commands.VariantStock{
			Variant:  cart.Variant{Size: v.Size, Color: v.Color},
			Quantity: v.Stock,
		})
	}
	if len(variants) == 0 {
		variants = append(variants, commands.VariantStock{Quantity: p.Stock})
	}

	return commands.NewUpsertProductCommand(p.ID, p.Name, price, isActive(p.Active), variants)
}

func (c Coupon) command() (commands.UpsertCouponCommand, error) {
	kind, err := coupon.ParseKind(c.Kind)
	if err != nil {
		return commands.UpsertCouponCommand{}, err
	}

	value, err := decimal.NewFromString(c.Value)
	if err != nil {
		return commands.UpsertCouponCommand{}, errs.NewValueIsInvalidErrorWithCause("value", err)
	}

	terms := coupon.Terms{ProductIDs: c.Products}
	if c.Cap != "" {
		limit, capErr := kernel.MoneyFromString(c.Cap)
		if capErr != nil {
			return commands.UpsertCouponCommand{}, capErr
		}
		terms.Cap = &limit
	}
	if c.MinSubtotal != "" {
		if terms.MinSubtotal, err = kernel.MoneyFromString(c.MinSubtotal); err != nil {
			return commands.UpsertCouponCommand{}, err
		}
	}
	if terms.ValidFrom, err = parseTime("validFrom", c.ValidFrom); err != nil {
		return commands.UpsertCouponCommand{}, err
	}
	if terms.ValidUntil, err = parseTime("validUntil", c.ValidUntil); err != nil {
		return commands.UpsertCouponCommand{}, err
	}

	return commands.NewUpsertCouponCommand(c.Code, kind, value, isActive(c.Active), terms)
}

func parseTime(name, s string) (*time.Time, error) {
	if s == "" {
		return nil, nil //nolint:nilnil // absent bound
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return &t, nil
}

// Entries are active unless the file says otherwise.
func isActive(active *bool) bool {
	return active == nil || *active
}
