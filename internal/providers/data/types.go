package data

import (
	"context"

	"github.com/GriffinCanCode/fishkit/internal/infrastructure/monitoring"
	"github.com/GriffinCanCode/fishkit/internal/refdata"
)

const (
	KindIDCard   = "idcard"
	KindBankCard = "bankcard"
)

// Lookup is the reference data the provider reads.
type Lookup interface {
	ZonesByArea(ctx context.Context, area string, match refdata.MatchType) ([]refdata.Zone, error)
	ZoneCodeByArea(ctx context.Context, area string, match refdata.MatchType) (string, error)
	RandomZone(ctx context.Context) (refdata.Zone, error)
	CardBinsByBank(ctx context.Context, bank string, cardType refdata.CardType) ([]refdata.CardBin, error)
	BanksByName(ctx context.Context, name string) ([]refdata.Bank, error)
}

// DataOps carries the metrics shared by every module of the provider
type DataOps struct {
	Metrics *monitoring.Metrics
}

func (d *DataOps) recordValidation(kind string, valid bool) {
	if d.Metrics != nil {
		d.Metrics.RecordValidation(kind, valid)
	}
}

func (d *DataOps) recordGenerated(kind string, n int) {
	if d.Metrics != nil {
		d.Metrics.RecordGenerated(kind, n)
	}
}
