package custody

import (
	"context"
	"fmt"

	"github.com/fox-one/mixin-sdk-go"
	"github.com/fox-one/pkg/logger"
	"github.com/y4hyya/Stellend/core"
	"github.com/y4hyya/Stellend/pkg/fixed"
)

// Mixin pays outbound transfers from a mixin dapp wallet. Inbound transfers
// are deposits the wallet already received.
type Mixin struct {
	client *mixin.Client
	pin    string
	assets map[string]string
}

// NewMixin new mixin custody, assets maps market symbols to mixin asset ids
func NewMixin(wallet core.MixinWallet, assets map[string]string) (*Mixin, error) {
	client, err := mixin.NewFromKeystore(&wallet.Keystore)
	if err != nil {
		return nil, err
	}

	return &Mixin{
		client: client,
		pin:    wallet.Pin,
		assets: assets,
	}, nil
}

func (m *Mixin) Transfer(ctx context.Context, t *core.Transfer) error {
	if t.Inbound() {
		return nil
	}

	assetID, ok := m.assets[t.Symbol]
	if !ok {
		return fmt.Errorf("no mixin asset for %s", t.Symbol)
	}

	input := &mixin.TransferInput{
		AssetID:    assetID,
		OpponentID: t.Receiver,
		Amount:     t.Amount.Decimal(fixed.ScaleDecimals),
		TraceID:    t.TraceID,
		Memo:       t.Memo,
	}

	if _, err := m.client.Transfer(ctx, input, m.pin); err != nil {
		logger.FromContext(ctx).WithError(err).WithField("trace", t.TraceID).Errorln("mixin transfer")
		return err
	}

	return nil
}
