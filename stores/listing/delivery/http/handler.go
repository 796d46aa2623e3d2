package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/delivery"
	"github.com/artbay/goapi/base/metrics"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
	"github.com/artbay/goapi/middleware"
)

var met metrics.Service

type handler struct {
	catalog listing.CatalogUsecase
	sell    listing.SellUsecase
}

// SearchResult is the body of GET /listings
type SearchResult struct {
	Items []*listing.Listing `json:"items"`
	Count int                `json:"count"`
}

func New(e *echo.Echo, catalog listing.CatalogUsecase, sell listing.SellUsecase) {
	met = metrics.New("listing")

	h := &handler{catalog, sell}

	gs := e.Group("/listings")

	gs.GET("", h.search)

	gs.GET("/price-range", h.priceRange)

	gs.GET("/:id", h.get)

	gs.POST("", h.submit)

	e.GET("/categories", h.categories, middleware.CacheHttp(1*time.Minute))

	e.GET("/markets", h.markets)
}

func parseMarketType(s string) (listing.MarketType, error) {
	if s == "" {
		return listing.MarketTypeGoods, nil
	}
	return listing.ParseMarketType(s)
}

func parseBound(name string, s *string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(*s)
	if err != nil {
		return decimal.Zero, xerrors.Errorf("%s %q: %w", name, *s, domain.ErrBadParamInput)
	}
	return d, nil
}

// search
//
//	@Summary		Search listings
//	@Description	Filter a market by category, search text and price range, then sort
//	@Tags			listings
//	@Produce		json
//	@Param			marketType	query		string	false	"market type"						enums(goods, spaces)	default(goods)
//	@Param			category	query		string	false	"category name, All for every category"	example(Painting)
//	@Param			search		query		string	false	"case-insensitive text in title or description"	example(sunset)
//	@Param			priceLow	query		string	false	"lowest base price, needs priceHigh"	example(100)
//	@Param			priceHigh	query		string	false	"highest base price, needs priceLow"	example(200)
//	@Param			sortBy		query		string	false	"sort key"	enums(newest, price_asc, price_desc, popularity)	default(newest)
//	@Success		200			{object}	SearchResult
//	@Failure		400
//	@Failure		500
//	@Router			/listings [get]
func (h *handler) search(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		MarketType string  `query:"marketType"`
		Category   *string `query:"category"`
		Search     string  `query:"search"`
		PriceLow   *string `query:"priceLow"`
		PriceHigh  *string `query:"priceHigh"`
		SortBy     string  `query:"sortBy"`
	}

	p := &params{}
	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	mt, err := parseMarketType(p.MarketType)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}
	sortKey, err := listing.ParseSortKey(p.SortBy)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	opts := []listing.QueryOptionsFunc{
		listing.WithSearchText(p.Search),
		listing.WithSortKey(sortKey),
	}
	if p.Category != nil {
		opts = append(opts, listing.WithCategory(*p.Category))
	}

	switch {
	case p.PriceLow != nil && p.PriceHigh != nil:
		low, err := parseBound("priceLow", p.PriceLow)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		high, err := parseBound("priceHigh", p.PriceHigh)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
		}
		opts = append(opts, listing.WithPriceRange(low, high))
	case p.PriceLow != nil || p.PriceHigh != nil:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "priceLow and priceHigh go together")
	}

	spec, err := listing.NewQuerySpec(mt, opts...)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.catalog.Search(ctx, spec)
	if err != nil {
		ctx.WithField("err", err).Error("catalog.Search failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("search.count", 1, "market", string(mt))
	return delivery.MakeJsonResp(c, http.StatusOK, SearchResult{Items: res, Count: len(res)})
}

// priceRange
//
//	@Summary	Get default price range
//	@Description	Lowest and highest base price of a market
//	@Tags		listings
//	@Produce	json
//	@Param		marketType	query		string	false	"market type"	enums(goods, spaces)	default(goods)
//	@Success	200			{object}	listing.PriceRange
//	@Failure	400
//	@Failure	500
//	@Router		/listings/price-range [get]
func (h *handler) priceRange(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	mt, err := parseMarketType(c.QueryParam("marketType"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.catalog.PriceBounds(ctx, mt)
	if err != nil {
		ctx.WithField("err", err).Error("catalog.PriceBounds failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// get
//
//	@Summary	Get listing
//	@Tags		listings
//	@Produce	json
//	@Param		id	path		string	true	"listing id"
//	@Success	200	{object}	listing.Listing
//	@Failure	404
//	@Failure	500
//	@Router		/listings/{id} [get]
func (h *handler) get(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.catalog.FindOne(ctx, c.Param("id"))
	if err != nil {
		if delivery.StatusOf(err, http.StatusInternalServerError) == http.StatusInternalServerError {
			ctx.WithField("err", err).Error("catalog.FindOne failed")
		}
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// submit
//
//	@Summary		Submit listing
//	@Description	Validate a sell form and add it to the catalog
//	@Tags			listings
//	@Accept			json
//	@Produce		json
//	@Param			body	body		listing.SubmitRequest	true	"sell form"
//	@Success		201		{object}	listing.Listing
//	@Failure		400
//	@Failure		409
//	@Failure		501
//	@Router			/listings [post]
func (h *handler) submit(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := listing.SubmitRequest{}
	if err := c.Bind(&req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid body")
	}

	res, err := h.sell.Submit(ctx, req)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	met.BumpSum("submit.count", 1, "market", string(res.MarketType))
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// categories
//
//	@Summary	List categories
//	@Tags		listings
//	@Produce	json
//	@Param		marketType	query		string	false	"market type"	enums(goods, spaces)	default(goods)
//	@Success	200			{array}		listing.Category
//	@Failure	400
//	@Router		/categories [get]
func (h *handler) categories(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	mt, err := parseMarketType(c.QueryParam("marketType"))
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.catalog.Categories(ctx, mt)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// markets
//
//	@Summary	List markets
//	@Description	Listing count, price range and categories of every market
//	@Tags		listings
//	@Produce	json
//	@Success	200	{array}	listing.MarketSummary
//	@Failure	500
//	@Router		/markets [get]
func (h *handler) markets(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	res, err := h.catalog.Markets(ctx)
	if err != nil {
		ctx.WithField("err", err).Error("catalog.Markets failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}
