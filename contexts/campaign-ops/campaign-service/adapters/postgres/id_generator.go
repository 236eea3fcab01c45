package postgresadapter

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator creates UUIDv4 identifiers for campaigns, creatives,
// tasks and ledger rows.
type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
