package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seralk/lingua/internal/catalog"
	"github.com/seralk/lingua/internal/kvstore"
	"github.com/seralk/lingua/internal/learner"
	"github.com/seralk/lingua/internal/progress"
	"github.com/seralk/lingua/internal/review"
	"github.com/seralk/lingua/internal/session"
)

// services bundles the wired application graph for one command invocation.
type services struct {
	store     *kvstore.Store
	catalog   *catalog.Catalog
	progress  *progress.Store
	profiles  *learner.Profiles
	ledger    *learner.Ledger
	scheduler *review.Scheduler
	engine    *session.Engine
	log       *zap.Logger
}

// openServices opens the store and wires every service the commands use.
// The caller must Close the result.
func openServices(cmd *cobra.Command) (*services, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := kvstore.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	cat, err := catalog.Builtin()
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	log := newLogger()
	prog := progress.NewStore(st, log)
	profiles := learner.NewProfiles(st, log)
	ledger := learner.NewLedger(profiles)
	sched := review.NewScheduler(prog)

	return &services{
		store:     st,
		catalog:   cat,
		progress:  prog,
		profiles:  profiles,
		ledger:    ledger,
		scheduler: sched,
		engine:    session.NewEngine(cat, prog, sched, ledger, log),
		log:       log,
	}, nil
}

func (s *services) Close() error {
	return s.store.Close()
}
