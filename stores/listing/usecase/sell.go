package usecase

import (
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/artbay/goapi/base/ctx"
	"github.com/artbay/goapi/base/log"
	bvalidator "github.com/artbay/goapi/base/validator"
	"github.com/artbay/goapi/domain"
	"github.com/artbay/goapi/domain/listing"
)

type SellUseCaseCfg struct {
	Repo listing.Repo
	// Now defaults to time.Now
	Now func() time.Time
}

type sellImpl struct {
	repo     listing.Repo
	now      func() time.Time
	validate *validator.Validate
}

func NewSell(cfg *SellUseCaseCfg) listing.SellUsecase {
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return &sellImpl{
		repo:     cfg.Repo,
		now:      now,
		validate: bvalidator.New(),
	}
}

func (im *sellImpl) Submit(c ctx.Ctx, req listing.SubmitRequest) (*listing.Listing, error) {
	c = ctx.WithValues(c, map[string]interface{}{
		"market":   req.MarketType,
		"category": req.Category,
	})

	if err := im.check(req); err != nil {
		c.WithField("err", err).Info("invalid sell request")
		return nil, err
	}

	w, ok := im.repo.(listing.Writer)
	if !ok {
		return nil, domain.ErrUnimplemented
	}

	price := req.BasePrice
	l := listing.Listing{
		Id:             uuid.NewString(),
		MarketType:     req.MarketType,
		Title:          strings.TrimSpace(req.Title),
		Description:    req.Description,
		Category:       req.Category,
		BasePrice:      price,
		PriceIncrement: decimal.Zero,
		CurrentPrice:   price,
		Artist:         req.Artist,
		Popularity:     0,
		IsAuction:      req.MarketType == listing.MarketTypeGoods && !req.FixedPrice,
		Timestamp:      im.now(),
		ImageReference: req.ImageReference,
	}
	switch req.MarketType {
	case listing.MarketTypeGoods:
		if req.PriceIncrement != nil && l.IsAuction {
			l.PriceIncrement = *req.PriceIncrement
		}
	case listing.MarketTypeSpaces:
		l.RentalUnit = req.RentalUnit
	}

	res, err := listing.New(l)
	if err != nil {
		c.WithField("err", err).Error("listing.New failed")
		return nil, err
	}

	if err := w.Append(c, res); err != nil {
		c.WithField("err", err).Error("repo.Append failed")
		return nil, err
	}

	c.WithFields(log.Fields{"id": res.Id, "title": res.Title}).Info("listing submitted")
	return res, nil
}

func (im *sellImpl) check(req listing.SubmitRequest) error {
	if err := im.validate.Struct(req); err != nil {
		return xerrors.Errorf("%s: %w", err.Error(), domain.ErrBadParamInput)
	}

	if !listing.IsValidCategory(req.MarketType, req.Category) {
		return xerrors.Errorf("category %q: %w", req.Category, domain.ErrBadParamInput)
	}

	switch req.MarketType {
	case listing.MarketTypeGoods:
		if req.PriceIncrement != nil && req.PriceIncrement.IsNegative() {
			return xerrors.Errorf("priceIncrement %s: %w", req.PriceIncrement, domain.ErrBadParamInput)
		}
		if req.FixedPrice && req.PriceIncrement != nil && !req.PriceIncrement.IsZero() {
			return xerrors.Errorf("priceIncrement on fixed price goods: %w", domain.ErrBadParamInput)
		}
		if req.RentalUnit != "" {
			return xerrors.Errorf("rentalUnit on goods: %w", domain.ErrBadParamInput)
		}
	case listing.MarketTypeSpaces:
		if !req.RentalUnit.IsValid() {
			return xerrors.Errorf("rentalUnit %q: %w", req.RentalUnit, domain.ErrBadParamInput)
		}
	}

	if req.ImageReference != nil {
		mtype, err := mimetype.DetectFile(*req.ImageReference)
		if err != nil {
			return xerrors.Errorf("imageReference %s: %w", err.Error(), domain.ErrBadParamInput)
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			return xerrors.Errorf("imageReference is %s: %w", mtype.String(), domain.ErrBadParamInput)
		}
	}
	return nil
}
