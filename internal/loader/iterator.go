package loader

import (
	"fmt"

	"golang.org/x/text/encoding"

	"github.com/castsched/castsched/internal/config"
	"github.com/castsched/castsched/internal/scc"
)

// Iterator assembles problem instances lazily, one per configured instance
// index, in index-list order. Each Next call performs all four file reads
// for exactly one instance; nothing is read ahead of the caller's pull and
// nothing is cached, so a fresh Iterator replays all I/O from disk.
//
// Typical use follows the bufio.Scanner shape:
//
//	it := loader.NewIterator(settings)
//	for it.Next() {
//		consume(it.Problem())
//	}
//	if err := it.Err(); err != nil {
//		return err
//	}
type Iterator struct {
	settings *config.Settings
	enc      encoding.Encoding
	indices  []int
	pos      int
	started  bool
	cur      *scc.Problem
	err      error
}

// NewIterator returns an iterator over the settings' configured instance
// indices. Settings problems (missing encoding name, unknown encoding,
// missing index list) surface through Err on the first Next call.
func NewIterator(settings *config.Settings) *Iterator {
	return &Iterator{settings: settings}
}

// Next advances to the next instance. It returns false when the sequence is
// exhausted or a load failed; after a failure every subsequent call returns
// false and Err reports the cause.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if !it.started {
		it.started = true
		if err := it.init(); err != nil {
			it.err = err
			return false
		}
	}
	if it.pos >= len(it.indices) {
		it.cur = nil
		return false
	}

	idx := it.indices[it.pos]
	it.pos++

	p, err := loadProblem(it.settings, it.enc, idx)
	if err != nil {
		it.cur = nil
		it.err = fmt.Errorf("instance %s: %w", it.settings.ProblemName(idx), err)
		return false
	}
	it.cur = p
	return true
}

// Problem returns the instance produced by the most recent successful Next.
func (it *Iterator) Problem() *scc.Problem {
	return it.cur
}

// Err returns the error that terminated iteration, or nil if the sequence
// completed (or has not failed yet).
func (it *Iterator) Err() error {
	return it.err
}

func (it *Iterator) init() error {
	name, err := it.settings.EncodingName()
	if err != nil {
		return err
	}
	enc, err := ResolveEncoding(name)
	if err != nil {
		return err
	}
	indices, err := it.settings.IndexList()
	if err != nil {
		return err
	}
	it.enc = enc
	it.indices = indices
	return nil
}

// loadProblem reads the four instance files for idx and assembles a
// complete Problem. The first failing parser aborts the assembly; no
// partial instance is produced.
func loadProblem(s *config.Settings, enc encoding.Encoding, idx int) (*scc.Problem, error) {
	paths := s.Locate(idx)

	stageSeq, stageMachines, err := ParseMachineEnv(paths.MachineEnv, enc)
	if err != nil {
		return nil, err
	}
	castSeq, castCharges, err := ParseCast(paths.Cast, enc)
	if err != nil {
		return nil, err
	}
	dueDates, err := ParseDueDates(paths.DueDate, enc)
	if err != nil {
		return nil, err
	}
	processTimes, err := ParseProcessTimes(paths.ProcessTime, enc)
	if err != nil {
		return nil, err
	}

	return &scc.Problem{
		Name:          s.ProblemName(idx),
		StageSeq:      stageSeq,
		StageMachines: stageMachines,
		CastSeq:       castSeq,
		CastCharges:   castCharges,
		DueDates:      dueDates,
		ProcessTimes:  processTimes,
		ChargeStages:  scc.ComposeChargeStages(processTimes, stageSeq, stageMachines),
	}, nil
}
