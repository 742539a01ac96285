package portfolio

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/zappabad/bullrush/internal/market"
)

// Ledger errors. All are expected, recoverable outcomes the caller surfaces
// to the player; none corrupt the input portfolio.
var (
	ErrInvalidQuantity    = errors.New("number of shares must be positive")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrNoPosition         = errors.New("no position in company")
	ErrInsufficientShares = errors.New("insufficient shares")
	ErrUnknownCompany     = errors.New("unknown company")
)

// Buy purchases shares of the company at its current price. On success it
// returns a new portfolio with cash debited, the holding's weighted-average
// cost updated, a buy transaction appended, and net worth recomputed
// mark-to-market against the full company set. The input is never mutated;
// on error it is returned unchanged.
func Buy(p Portfolio, companies []market.Company, id market.CompanyID, shares int64, now time.Time) (Portfolio, error) {
	if shares <= 0 {
		return p, ErrInvalidQuantity
	}
	company, ok := market.Find(companies, id)
	if !ok {
		return p, ErrUnknownCompany
	}

	totalCost := float64(shares) * company.CurrentPrice
	if totalCost > p.Cash {
		return p, ErrInsufficientFunds
	}

	out := p.Clone()
	out.Cash -= totalCost

	if existing, ok := out.Holdings[id]; ok {
		totalShares := existing.Shares + shares
		totalInvestment := float64(existing.Shares)*existing.AveragePurchasePrice + totalCost
		out.Holdings[id] = Holding{
			Shares:               totalShares,
			AveragePurchasePrice: totalInvestment / float64(totalShares),
		}
	} else {
		out.Holdings[id] = Holding{
			Shares:               shares,
			AveragePurchasePrice: company.CurrentPrice,
		}
	}

	out.TransactionHistory = append(out.TransactionHistory, Transaction{
		ID:            uuid.NewString(),
		Type:          TransactionBuy,
		CompanyID:     company.ID,
		Ticker:        company.Ticker,
		Shares:        shares,
		PricePerShare: company.CurrentPrice,
		TotalAmount:   totalCost,
		Timestamp:     now.UnixMilli(),
	})
	out.NetWorth = Value(out, companies)
	return out, nil
}

// Sell disposes shares of the company at its current price. On success it
// returns a new portfolio with cash credited, the holding reduced (and
// removed entirely at zero shares; average cost is untouched by a partial
// sell), a sell transaction appended, and net worth recomputed. The input is
// never mutated; on error it is returned unchanged.
func Sell(p Portfolio, companies []market.Company, id market.CompanyID, shares int64, now time.Time) (Portfolio, error) {
	if shares <= 0 {
		return p, ErrInvalidQuantity
	}
	company, ok := market.Find(companies, id)
	if !ok {
		return p, ErrUnknownCompany
	}
	holding, ok := p.Holdings[id]
	if !ok {
		return p, ErrNoPosition
	}
	if shares > holding.Shares {
		return p, ErrInsufficientShares
	}

	saleAmount := float64(shares) * company.CurrentPrice

	out := p.Clone()
	out.Cash += saleAmount

	if remaining := holding.Shares - shares; remaining == 0 {
		delete(out.Holdings, id)
	} else {
		out.Holdings[id] = Holding{
			Shares:               remaining,
			AveragePurchasePrice: holding.AveragePurchasePrice,
		}
	}

	out.TransactionHistory = append(out.TransactionHistory, Transaction{
		ID:            uuid.NewString(),
		Type:          TransactionSell,
		CompanyID:     company.ID,
		Ticker:        company.Ticker,
		Shares:        shares,
		PricePerShare: company.CurrentPrice,
		TotalAmount:   saleAmount,
		Timestamp:     now.UnixMilli(),
	})
	out.NetWorth = Value(out, companies)
	return out, nil
}
