package service

import (
	"time"

	"github.com/goodnatureofminers/chainkeeper/internal/ledger/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
		ObserveStore(status model.BlockStatus, err error)
		ObserveChainUpdate(added, removed int, depth model.Depth)
		SetOrphans(n int)
	}
)
