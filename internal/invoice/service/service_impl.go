package service

import (
	"context"
	"encoding/json"
	"errors"
	"sort"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/anilkedia87/gstbill/internal/clock"
	"github.com/anilkedia87/gstbill/internal/config"
	"github.com/anilkedia87/gstbill/internal/gst"
	"github.com/anilkedia87/gstbill/internal/invoice/calc"
	"github.com/anilkedia87/gstbill/internal/invoice/domain"
	"github.com/anilkedia87/gstbill/internal/invoice/format"
	"github.com/anilkedia87/gstbill/internal/invoice/render"
	"github.com/anilkedia87/gstbill/internal/invoice/validate"
	"github.com/anilkedia87/gstbill/internal/invoice/words"
	"github.com/anilkedia87/gstbill/internal/metrics"
	"github.com/anilkedia87/gstbill/internal/providers/pdf"
	"github.com/anilkedia87/gstbill/internal/sequence"
)

// sequenceName is the shared counter backing invoice numbering.
const sequenceName = "invoice"

type service struct {
	log       *zap.Logger
	validator *validate.Validator
	repo      domain.Repository
	seq       sequence.Service
	genID     *snowflake.Node
	clock     clock.Clock
	pdf       *pdf.Provider
	metrics   *metrics.Metrics
	template  string
}

type Params struct {
	fx.In

	Log       *zap.Logger
	Config    config.Config
	Validator *validate.Validator
	Repo      domain.Repository
	Seq       sequence.Service
	GenID     *snowflake.Node
	Clock     clock.Clock
	PDF       *pdf.Provider
	Metrics   *metrics.Metrics
}

func New(p Params) domain.Service {
	template := p.Config.InvoiceNumberTemplate
	if template == "" {
		template = format.DefaultNumberTemplate
	}
	return &service{
		log:       p.Log.Named("invoice.service"),
		validator: p.Validator,
		repo:      p.Repo,
		seq:       p.Seq,
		genID:     p.GenID,
		clock:     p.Clock,
		pdf:       p.PDF,
		metrics:   p.Metrics,
		template:  template,
	}
}

// Generate runs the full pipeline: validate, resolve the tax policy,
// compute every line, aggregate, number and persist. The stored record
// carries the complete computed document; nothing is ever recomputed on
// read or render.
func (s *service) Generate(ctx context.Context, req domain.GenerateRequest) (domain.Invoice, error) {
	result, err := s.validator.Validate(req)
	if err != nil {
		s.metrics.ValidationFailed()
		return domain.Invoice{}, err
	}

	policy, err := gst.ResolvePolicy(string(result.Seller.StateCode), string(result.Buyer.StateCode))
	if err != nil {
		s.metrics.ValidationFailed()
		return domain.Invoice{}, err
	}

	items := make([]domain.LineItem, 0, len(result.Items))
	for _, in := range result.Items {
		item, err := calc.Compute(in, policy)
		if err != nil {
			s.metrics.ValidationFailed()
			return domain.Invoice{}, err
		}
		items = append(items, item)
	}

	issueDate := s.clock.Now()
	seq, err := s.seq.Next(ctx, sequenceName)
	if err != nil {
		return domain.Invoice{}, err
	}
	number, err := format.Number(s.template, issueDate, seq)
	if err != nil {
		return domain.Invoice{}, err
	}

	inv := domain.Invoice{
		Number:    number,
		Sequence:  seq,
		IssueDate: issueDate,
		Policy:    policy,
		Seller:    result.Seller.Party,
		Buyer:     result.Buyer.Party,
		Items:     items,
		Breakdown: breakdown(items),
		Notes:     req.Notes,
		Terms:     req.Terms,
	}
	for _, item := range items {
		inv.TotalGross = inv.TotalGross.Add(item.Gross)
		inv.TotalDiscount = inv.TotalDiscount.Add(item.Discount)
		inv.TotalTaxable = inv.TotalTaxable.Add(item.TaxableValue)
		inv.TotalTax = inv.TotalTax.Add(item.TaxAmount)
		inv.GrandTotal = inv.GrandTotal.Add(item.LineTotal)
	}

	inv.AmountInWords, err = words.Amount(inv.GrandTotal)
	if errors.Is(err, domain.ErrAmountOutOfRange) {
		// The numeric totals stay authoritative; only the prose is dropped.
		s.log.Warn("grand total exceeds words range",
			zap.String("number", number),
			zap.String("grand_total", inv.GrandTotal.String()))
		inv.AmountInWords = ""
	} else if err != nil {
		return domain.Invoice{}, err
	}

	document, err := json.Marshal(inv)
	if err != nil {
		return domain.Invoice{}, err
	}
	record := &domain.Record{
		ID:         s.genID.Generate(),
		Number:     inv.Number,
		Sequence:   inv.Sequence,
		IssueDate:  inv.IssueDate,
		BuyerName:  inv.Buyer.Name,
		GrandTotal: inv.GrandTotal.StringFixed(2),
		Document:   document,
	}
	if err := s.repo.Insert(ctx, record); err != nil {
		s.log.Error("persist invoice", zap.String("number", inv.Number), zap.Error(err))
		return domain.Invoice{}, err
	}

	s.metrics.InvoiceGenerated()
	s.log.Info("invoice generated",
		zap.String("number", inv.Number),
		zap.String("policy", string(policy.Kind)),
		zap.Int("items", len(items)),
		zap.String("grand_total", record.GrandTotal))
	return inv, nil
}

func (s *service) GetByNumber(ctx context.Context, number string) (domain.Invoice, error) {
	record, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return domain.Invoice{}, err
	}
	var inv domain.Invoice
	if err := json.Unmarshal(record.Document, &inv); err != nil {
		return domain.Invoice{}, err
	}
	return inv, nil
}

func (s *service) List(ctx context.Context) ([]domain.Record, error) {
	return s.repo.List(ctx)
}

// Render reads back a stored invoice and lays it out in the requested
// dialect. Every dialect renders from the same document tree.
func (s *service) Render(ctx context.Context, number string, target domain.RenderTarget) ([]byte, error) {
	inv, err := s.GetByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	doc := render.Build(inv)

	var out []byte
	switch target {
	case domain.RenderHTML:
		out, err = render.HTML(doc)
	case domain.RenderMarkdown:
		out, err = render.Markdown(doc)
	case domain.RenderPDF:
		out, err = s.pdf.Generate(doc)
	default:
		return nil, domain.ErrUnknownRenderTarget
	}
	if err != nil {
		return nil, err
	}
	s.metrics.DocumentRendered(string(target))
	return out, nil
}

// breakdown groups the computed lines into one row per rate slab, ordered
// by ascending rate.
func breakdown(items []domain.LineItem) []domain.TaxBreakdownRow {
	byRate := make(map[string]*domain.TaxBreakdownRow)
	for _, item := range items {
		key := item.TaxRate.String()
		row, ok := byRate[key]
		if !ok {
			row = &domain.TaxBreakdownRow{Rate: item.TaxRate}
			byRate[key] = row
		}
		row.TaxableValue = row.TaxableValue.Add(item.TaxableValue)
		row.CGSTAmount = row.CGSTAmount.Add(item.CGSTAmount)
		row.SGSTAmount = row.SGSTAmount.Add(item.SGSTAmount)
		row.IGSTAmount = row.IGSTAmount.Add(item.IGSTAmount)
		row.TotalTax = row.TotalTax.Add(item.TaxAmount)
	}

	rows := make([]domain.TaxBreakdownRow, 0, len(byRate))
	for _, row := range byRate {
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool {
		return rows[i].Rate.LessThan(rows[j].Rate)
	})
	return rows
}
