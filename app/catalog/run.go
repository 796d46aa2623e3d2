package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/pflag"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/stores/listing/usecase"
)

type options struct {
	market      string
	category    string
	search      string
	low         string
	high        string
	sort        string
	interactive bool
}

func addFlags(fs *pflag.FlagSet) *options {
	o := &options{}
	fs.StringVar(&o.market, "market", string(listing.MarketTypeGoods), "market type: goods or spaces")
	fs.StringVar(&o.category, "category", "", "category name, empty or All for every category")
	fs.StringVar(&o.search, "search", "", "text matched against title and description")
	fs.StringVar(&o.low, "low", "", "lower price bound, needs --high")
	fs.StringVar(&o.high, "high", "", "upper price bound, needs --low")
	fs.StringVar(&o.sort, "sort", string(listing.SortKeyNewest), "newest, price_asc, price_desc or popularity")
	fs.BoolVar(&o.interactive, "interactive", false, "read browse commands from stdin")
	return o
}

func parseRange(low, high string) (*listing.PriceRange, error) {
	if low == "" && high == "" {
		return nil, nil
	}
	if low == "" || high == "" {
		return nil, xerrors.Errorf("low and high go together: %w", domain.ErrBadParamInput)
	}
	l, err := decimal.NewFromString(low)
	if err != nil {
		return nil, xerrors.Errorf("low %q: %w", low, domain.ErrBadParamInput)
	}
	h, err := decimal.NewFromString(high)
	if err != nil {
		return nil, xerrors.Errorf("high %q: %w", high, domain.ErrBadParamInput)
	}
	return &listing.PriceRange{Low: l, High: h}, nil
}

func oneShot(c ctx.Ctx, catalog listing.CatalogUsecase, o *options, out io.Writer) error {
	m, err := listing.ParseMarketType(o.market)
	if err != nil {
		return err
	}
	sortKey, err := listing.ParseSortKey(o.sort)
	if err != nil {
		return err
	}
	r, err := parseRange(o.low, o.high)
	if err != nil {
		return err
	}

	opts := []listing.QueryOptionsFunc{
		listing.WithSearchText(o.search),
		listing.WithSortKey(sortKey),
	}
	if o.category != "" {
		opts = append(opts, listing.WithCategory(o.category))
	}
	if r != nil {
		opts = append(opts, listing.WithPriceRange(r.Low, r.High))
	}
	spec, err := listing.NewQuerySpec(m, opts...)
	if err != nil {
		return err
	}

	res, err := catalog.Search(c, spec)
	if err != nil {
		return err
	}
	return printListings(out, m, res)
}

const help = `commands:
  market goods|spaces
  category NAME|All
  search [TEXT]
  price LOW HIGH
  reset-price
  sort newest|price_asc|price_desc|popularity
  quit`

// interactive drives one Browser from line commands on in. Command errors are
// printed and the session goes on.
func interactive(c ctx.Ctx, catalog listing.CatalogUsecase, o *options, in io.Reader, out io.Writer) error {
	m, err := listing.ParseMarketType(o.market)
	if err != nil {
		return err
	}
	sortKey, err := listing.ParseSortKey(o.sort)
	if err != nil {
		return err
	}

	b, err := usecase.NewBrowser(c, catalog, m,
		usecase.WithInitialSortKey(sortKey),
		usecase.WithSubscriber(func(res usecase.Result) {
			printResult(out, res)
		}),
	)
	if err != nil {
		return err
	}
	if o.category != "" {
		if err := b.SetCategory(c, o.category); err != nil {
			return err
		}
	}
	if o.search != "" {
		if err := b.SetSearchText(c, o.search); err != nil {
			return err
		}
	}
	if r, err := parseRange(o.low, o.high); err != nil {
		return err
	} else if r != nil {
		if err := b.SetPriceRange(c, r.Low, r.High); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, arg := line, ""
		if i := strings.IndexByte(line, ' '); i >= 0 {
			cmd, arg = line[:i], strings.TrimSpace(line[i+1:])
		}
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		if cmd == "help" {
			fmt.Fprintln(out, help)
			continue
		}
		if err := apply(c, b, cmd, arg); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
		}
	}
	return scanner.Err()
}

func apply(c ctx.Ctx, b *usecase.Browser, cmd, arg string) error {
	switch cmd {
	case "market":
		m, err := listing.ParseMarketType(arg)
		if err != nil {
			return err
		}
		return b.SetMarketType(c, m)
	case "category":
		return b.SetCategory(c, arg)
	case "search":
		return b.SetSearchText(c, arg)
	case "price":
		f := strings.Fields(arg)
		if len(f) != 2 {
			return xerrors.Errorf("price needs LOW HIGH: %w", domain.ErrBadParamInput)
		}
		r, err := parseRange(f[0], f[1])
		if err != nil {
			return err
		}
		return b.SetPriceRange(c, r.Low, r.High)
	case "reset-price":
		return b.ResetPriceRange(c)
	case "sort":
		return b.SetSortKey(c, listing.SortKey(arg))
	}
	return xerrors.Errorf("unknown command %q, try help", cmd)
}

func printResult(out io.Writer, res usecase.Result) {
	if res.Err != nil {
		fmt.Fprintf(out, "error: %v\n", res.Err)
		return
	}
	category := listing.CategoryAll
	if res.Spec.Category != nil && *res.Spec.Category != "" {
		category = *res.Spec.Category
	}
	fmt.Fprintf(out, "%s / %s / %s..%s (bounds %s..%s) / %s\n",
		res.Spec.MarketType, category,
		res.Spec.PriceRange.Low, res.Spec.PriceRange.High,
		res.Bounds.Low, res.Bounds.High,
		res.Spec.SortKey,
	)
	_ = printListings(out, res.Spec.MarketType, res.Listings)
}

func printListings(out io.Writer, m listing.MarketType, ls []*listing.Listing) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, l := range ls {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", l.Title, l.Category, priceLabel(l), l.Artist)
	}
	fmt.Fprintf(w, "%d %s listing(s)\n", len(ls), m)
	return w.Flush()
}

func priceLabel(l *listing.Listing) string {
	if l.MarketType == listing.MarketTypeSpaces {
		return fmt.Sprintf("$%s/%s", l.CurrentPrice.StringFixed(2), l.RentalUnit)
	}
	if !l.IsAuction {
		return fmt.Sprintf("$%s", l.OfferPrice().StringFixed(2))
	}
	return fmt.Sprintf("base $%s + $%s per bid, offer $%s now",
		l.BasePrice.StringFixed(2), l.BidIncrement().StringFixed(2), l.OfferPrice().StringFixed(2))
}
