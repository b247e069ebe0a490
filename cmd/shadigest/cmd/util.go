package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	_ "massnet.org/shadigest/database/memdb"
	_ "massnet.org/shadigest/database/storage/ldbstorage"
	"massnet.org/shadigest/errors"
	"massnet.org/shadigest/history"
	"massnet.org/shadigest/logging"
	"massnet.org/shadigest/massutil/ccache"
	"massnet.org/shadigest/sha256"
	"massnet.org/shadigest/source"
)

// env holds what a command needs to compute and record digests.
type env struct {
	digester *source.Digester
	cache    *ccache.DigestCache
	ledger   *history.Store
}

// newEnv builds the digester from config. When withLedger is set and history
// is enabled the ledger is opened; a ledger that cannot be opened is logged
// and skipped.
func newEnv(withLedger bool) *env {
	e := &env{}
	if config.Cache.Entries > 0 {
		e.cache = ccache.NewDigestCache(config.Cache.Entries)
	}
	e.digester = source.NewDigester(flagDouble, e.cache)

	if withLedger && config.History.Enabled {
		ledger, err := history.Open(config.History.DBType, config.History.Dir)
		if err != nil {
			logging.CPrint(logging.WARN, "history disabled, failed to open ledger",
				logging.LogFormat{"dir": config.History.Dir, "err": err})
		} else {
			e.ledger = ledger
		}
	}
	return e
}

func (e *env) close() {
	if e.ledger == nil {
		return
	}
	if err := e.ledger.Close(); err != nil {
		logging.CPrint(logging.WARN, "failed to close ledger", logging.LogFormat{"err": err})
	}
}

func (e *env) record(kind, src string, h sha256.Hash, size int) {
	if e.ledger == nil {
		return
	}
	rec := &history.Record{
		Kind:   kind,
		Source: src,
		Func:   e.digester.Name(),
		Digest: h,
		Size:   size,
	}
	if err := e.ledger.Append(rec); err != nil {
		logging.CPrint(logging.WARN, "failed to record digest",
			logging.LogFormat{"err": err, "code": errors.ErrCodeHistory})
	}
}

// openLedger opens the ledger for reading, failing when history is off.
func openLedger() (*history.Store, error) {
	if !config.History.Enabled {
		return nil, errors.New(errors.ErrCodeHistory, "history is disabled in config")
	}
	ledger, err := history.Open(config.History.DBType, config.History.Dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeHistory, err, "open history")
	}
	return ledger, nil
}

func printJSON(w io.Writer, data interface{}) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
