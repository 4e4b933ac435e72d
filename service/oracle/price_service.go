package oracle

import (
	"context"
	"fmt"

	"pawn/core"
	"pawn/pkg/resthttp"

	"github.com/fox-one/pkg/logger"
	"github.com/shopspring/decimal"
)

type priceService struct {
	config *core.Config
}

// New new oracle price service. Prices come from the configured oracle
// endpoint; the native asset is the pricing unit itself.
func New(config *core.Config) core.IPriceOracleService {
	return &priceService{
		config: config,
	}
}

var one = decimal.New(1, 0)

// GetPrice current price of the asset in native units
func (s *priceService) GetPrice(ctx context.Context, assetID string) (decimal.Decimal, error) {
	if assetID == core.NativeAssetID {
		return one, nil
	}

	url := fmt.Sprintf("%s/api/tickers/%s", s.config.PriceOracle.EndPoint, assetID)
	logger.FromContext(ctx).Debugln("pull price:", url)

	resp, err := resthttp.Request(ctx).Get(url)
	if err != nil {
		return decimal.Zero, err
	}

	var ticker core.PriceTicker
	if err := resthttp.ParseResponse(resp, &ticker); err != nil {
		return decimal.Zero, err
	}

	if !ticker.Price.IsPositive() {
		return decimal.Zero, core.ErrInvalidPrice
	}

	return ticker.Price, nil
}
