package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100000
	// ErrUnauthorized operator is not an admin
	ErrUnauthorized ErrorCode = 100001
	// ErrAlreadyInitialized market or pool already initialized
	ErrAlreadyInitialized ErrorCode = 100002
	// ErrInvalidParameter invalid parameter
	ErrInvalidParameter ErrorCode = 100003
	// ErrConflict concurrent update lost the version race
	ErrConflict ErrorCode = 100004
	// ErrArithmeticOverflow fixed-point overflow
	ErrArithmeticOverflow ErrorCode = 100005

	// ErrMarketNotFound no market
	ErrMarketNotFound ErrorCode = 100100
	// ErrInvalidAmount amount rounds to zero
	ErrInvalidAmount ErrorCode = 100101
	// ErrAssetNotEnabled collateral or borrow flag off
	ErrAssetNotEnabled ErrorCode = 100102
	// ErrInsufficientLiquidity supply minus borrow is too small
	ErrInsufficientLiquidity ErrorCode = 100103
	// ErrLTVExceeded borrow exceeds weighted collateral
	ErrLTVExceeded ErrorCode = 100104
	// ErrUnhealthyWithdrawal withdrawal drops the health factor below 1
	ErrUnhealthyWithdrawal ErrorCode = 100105
	// ErrInsufficientShareBalance not enough shares
	ErrInsufficientShareBalance ErrorCode = 100106
	// ErrInsufficientCollateral not enough collateral
	ErrInsufficientCollateral ErrorCode = 100107
	// ErrNoDebt nothing to repay
	ErrNoDebt ErrorCode = 100108
	// ErrPositionHealthy liquidation of a healthy account
	ErrPositionHealthy ErrorCode = 100109

	// ErrPriceUnavailable price unset
	ErrPriceUnavailable ErrorCode = 100200
	// ErrPriceStale price older than the stale threshold
	ErrPriceStale ErrorCode = 100201
)

var errorMessages = map[ErrorCode]string{
	ErrUnknown:                  "unknown error",
	ErrUnauthorized:             "unauthorized",
	ErrAlreadyInitialized:       "already initialized",
	ErrInvalidParameter:         "invalid parameter",
	ErrConflict:                 "version conflict",
	ErrArithmeticOverflow:       "arithmetic overflow",
	ErrMarketNotFound:           "market not found",
	ErrInvalidAmount:            "invalid amount",
	ErrAssetNotEnabled:          "asset not enabled",
	ErrInsufficientLiquidity:    "insufficient liquidity",
	ErrLTVExceeded:              "ltv exceeded",
	ErrUnhealthyWithdrawal:      "unhealthy withdrawal",
	ErrInsufficientShareBalance: "insufficient share balance",
	ErrInsufficientCollateral:   "insufficient collateral",
	ErrNoDebt:                   "no debt",
	ErrPositionHealthy:          "position healthy",
	ErrPriceUnavailable:         "price unavailable",
	ErrPriceStale:               "price stale",
}

func (e ErrorCode) String() string {
	return strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	if msg, ok := errorMessages[e]; ok {
		return msg
	}

	return e.String()
}
