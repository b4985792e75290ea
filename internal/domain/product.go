package domain

import "fmt"

// ProductKind identifies a concrete product variant.
type ProductKind string

const (
	KindPrintedBook   ProductKind = "printed_book"
	KindMerchandising ProductKind = "merchandising"
)

// Product is a sellable item whose margin can be audited.
type Product interface {
	Name() string
	SetName(name string) error
	Price() float64
	SetPrice(price float64) error
	SoldUnits() int
	AddSoldUnits(quantity int)
	Kind() ProductKind
	DescribeProduct() string
	AuditBenefits() float64
}

// SameProduct reports whether a and b identify the same product. Products are
// identified by name only.
func SameProduct(a, b Product) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Name() == b.Name()
}

type productBase struct {
	name      string
	price     float64
	soldUnits int
}

func newProductBase(name string, price float64) (productBase, error) {
	var p productBase
	if err := p.SetName(name); err != nil {
		return p, err
	}
	if err := p.SetPrice(price); err != nil {
		return p, err
	}
	return p, nil
}

func (p *productBase) Name() string { return p.name }

func (p *productBase) SetName(name string) error {
	if name == "" {
		return ErrEmptyName
	}
	p.name = name
	return nil
}

func (p *productBase) Price() float64 { return p.price }

func (p *productBase) SetPrice(price float64) error {
	if price <= 0 {
		return ErrInvalidPrice
	}
	p.price = price
	return nil
}

func (p *productBase) SoldUnits() int { return p.soldUnits }

// AddSoldUnits adds quantity to the running total. Negative values are accepted
// and decrease it.
func (p *productBase) AddSoldUnits(quantity int) {
	p.soldUnits += quantity
}

const (
	printedBookDescription   = "A book printed by an editorial"
	merchandisingDescription = "A merchandising item"

	// printedBookShare is the part of the margin kept after the editorial's cut.
	printedBookShare = 0.9
)

// PrintedBook is a book whose only manufacturing cost is printing.
type PrintedBook struct {
	productBase
	printingCost float64
}

func NewPrintedBook(name string, price, printingCost float64) (*PrintedBook, error) {
	base, err := newProductBase(name, price)
	if err != nil {
		return nil, err
	}
	return &PrintedBook{productBase: base, printingCost: printingCost}, nil
}

func (b *PrintedBook) PrintingCost() float64 { return b.printingCost }

func (b *PrintedBook) SetPrintingCost(cost float64) { b.printingCost = cost }

func (b *PrintedBook) Kind() ProductKind { return KindPrintedBook }

func (b *PrintedBook) DescribeProduct() string {
	return fmt.Sprintf("PrintedBook (MANUFACTURED): %s", printedBookDescription)
}

// AuditBenefits returns (price - printingCost) * soldUnits * 0.9.
func (b *PrintedBook) AuditBenefits() float64 {
	return (b.price - b.printingCost) * float64(b.soldUnits) * printedBookShare
}

// Merchandising is a fabricated and packaged item.
type Merchandising struct {
	productBase
	fabricationCost float64
	packagingCost   float64
}

func NewMerchandising(name string, price, fabricationCost, packagingCost float64) (*Merchandising, error) {
	base, err := newProductBase(name, price)
	if err != nil {
		return nil, err
	}
	return &Merchandising{
		productBase:     base,
		fabricationCost: fabricationCost,
		packagingCost:   packagingCost,
	}, nil
}

func (m *Merchandising) FabricationCost() float64 { return m.fabricationCost }

func (m *Merchandising) SetFabricationCost(cost float64) { m.fabricationCost = cost }

func (m *Merchandising) PackagingCost() float64 { return m.packagingCost }

func (m *Merchandising) SetPackagingCost(cost float64) { m.packagingCost = cost }

func (m *Merchandising) Kind() ProductKind { return KindMerchandising }

func (m *Merchandising) DescribeProduct() string {
	return fmt.Sprintf("Merchandising (MANUFACTURED): %s", merchandisingDescription)
}

// AuditBenefits returns (price - fabricationCost - packagingCost) * soldUnits.
func (m *Merchandising) AuditBenefits() float64 {
	return (m.price - m.fabricationCost - m.packagingCost) * float64(m.soldUnits)
}
