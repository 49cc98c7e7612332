package processor

import (
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/extrato-dev/extrato/internal/config"
	"github.com/extrato-dev/extrato/internal/model"
	"github.com/extrato-dev/extrato/internal/statement"
)

const defaultWorkers = 4

// ProcessAll runs ProcessFile over every file on a bounded worker pool and
// collects the per-file transaction sets. A single file's failure is
// logged and excluded; sibling work is never aborted. Result order is
// unspecified: consolidation re-sorts globally.
func ProcessAll(files []statement.FileInfo, cfg *config.Config) [][]model.Transaction {
	workers := cfg.Statement.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}

	var (
		mu      sync.Mutex
		results [][]model.Transaction
	)

	var g errgroup.Group
	g.SetLimit(workers)

	for _, file := range files {
		file := file
		g.Go(func() error {
			txns, err := ProcessFile(file, cfg)
			if err != nil {
				slog.Error("error processing file", "file", file.Name, "error", err)
				return nil
			}
			if len(txns) == 0 {
				return nil
			}

			mu.Lock()
			results = append(results, txns)
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only joins the pool.
	_ = g.Wait()
	return results
}
