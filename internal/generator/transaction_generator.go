package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/jaevor/go-nanoid"
	"github.com/shopspring/decimal"
)

const (
	minAmount = 10.0
	maxAmount = 5000.0
)

// TransactionGenerator produces synthetic transactions. Generation is pure:
// no I/O, no error paths once the generator is constructed.
type TransactionGenerator struct {
	rng   *rand.Rand
	newID func() string
}

func NewTransactionGenerator() (*TransactionGenerator, error) {
	idGenerator, err := nanoid.Standard(10)
	if err != nil {
		return nil, fmt.Errorf("failed to init id generator: %w", err)
	}
	return &TransactionGenerator{
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
		newID: idGenerator,
	}, nil
}

func (g *TransactionGenerator) Generate() *domain.Transaction {
	amount := minAmount + g.rng.Float64()*(maxAmount-minAmount)
	return &domain.Transaction{
		// Random component plus wall clock makes collisions practically impossible
		TransactionID: fmt.Sprintf("TXN_%s_%d", g.newID(), time.Now().Unix()),
		Amount:        decimal.NewFromFloat(amount).Round(2),
		Currency:      currencies[g.rng.Intn(len(currencies))],
		Country:       countries[g.rng.Intn(len(countries))],
		UserID:        fmt.Sprintf("USER_%d", 1000+g.rng.Intn(9000)),
		Timestamp:     time.Now().UTC(),
	}
}

func (g *TransactionGenerator) GenerateBatch(size int) []*domain.Transaction {
	batch := make([]*domain.Transaction, 0, size)
	for i := 0; i < size; i++ {
		batch = append(batch, g.Generate())
	}
	return batch
}
