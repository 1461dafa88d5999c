package compound

import (
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/internal/compound"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// BorrowBalance interest inclusive debt
// balance = position.debt_principal * market.borrow_index / position.debt_index
func BorrowBalance(market *core.Market, position *core.Position) (fixed.Int, error) {
	return compound.BorrowBalance(position.DebtPrincipal, market.BorrowIndex, position.DebtIndex)
}

// Capitalize fold accrued interest into the principal and rebase the
// position on the current borrow index, returning the debt
func Capitalize(market *core.Market, position *core.Position) (fixed.Int, error) {
	debt, err := BorrowBalance(market, position)
	if err != nil {
		return fixed.Zero, err
	}

	position.DebtPrincipal = debt
	position.DebtIndex = market.BorrowIndex
	return debt, nil
}

// SetDebt rebase the position on the current index with the given debt
func SetDebt(market *core.Market, position *core.Position, debt fixed.Int) {
	position.DebtPrincipal = debt
	position.DebtIndex = market.BorrowIndex
}
