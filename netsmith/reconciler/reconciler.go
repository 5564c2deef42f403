// Package reconciler converges a device's observed resource state onto
// a declared desired state, synthesizing the minimal command sequence
// that closes the gap.
package reconciler

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/netsmith-ops/netsmith/logger"
	"github.com/netsmith-ops/netsmith/netsmith/classify"
	"github.com/netsmith-ops/netsmith/netsmith/command"
	"github.com/netsmith-ops/netsmith/netsmith/diff"
	"github.com/netsmith-ops/netsmith/netsmith/guard"
	"github.com/netsmith-ops/netsmith/netsmith/resource"
	"github.com/netsmith-ops/netsmith/netsmith/transport"
)

// Request is one desired-state declaration for a resource kind.
type Request struct {
	// IDs is the identifier expression, e.g. "2-10,20,50-60". Empty
	// for singleton resources.
	IDs string

	// Attributes is the desired attribute map. Omitted attributes are
	// left untouched on the device.
	Attributes resource.AttributeMap

	// State declares whether the targets should exist.
	State resource.State

	// DryRun computes and reports commands without submitting them.
	DryRun bool
}

// Report is the sole artifact of a reconciliation run.
type Report struct {
	RunID    string                                 `json:"run_id"`
	Kind     string                                 `json:"kind"`
	State    resource.State                         `json:"state"`
	Proposed map[resource.ID]resource.AttributeMap `json:"proposed"`
	Existing map[resource.ID]resource.AttributeMap `json:"existing"`
	Commands map[resource.ID][]command.Command     `json:"commands"`
	Final    map[resource.ID]resource.AttributeMap `json:"final,omitempty"`
	Changed  bool                                   `json:"changed"`
}

// ApplyError reports a transport failure during the applying stage.
// Submitted carries the full command sequence that was handed to the
// device, since some of it may already have taken effect.
type ApplyError struct {
	Submitted []command.Command
	Err       error
}

func (e *ApplyError) Error() string {
	return fmt.Sprintf("apply failed after submitting %d commands: %v", len(e.Submitted), e.Err)
}

func (e *ApplyError) Unwrap() error { return e.Err }

// Reconciler drives validation, classification, guarding, diffing and
// command synthesis for one resource kind on one device.
type Reconciler struct {
	def             resource.Definition
	synth           command.Synthesizer
	transport       transport.Transport
	invocationRules []guard.InvocationRule
	targetRules     []guard.TargetRule
	log             logger.Logger
}

// New wires a reconciler. The transport is a required collaborator;
// a nil transport is a construction-time error, not a deferred one.
func New(def resource.Definition, synth command.Synthesizer, t transport.Transport,
	invocationRules []guard.InvocationRule, targetRules []guard.TargetRule, log logger.Logger) (*Reconciler, error) {

	if def == nil {
		return nil, errors.New("reconciler: resource definition is required")
	}
	if synth == nil {
		return nil, errors.New("reconciler: command synthesizer is required")
	}
	if t == nil {
		return nil, errors.New("reconciler: transport is required")
	}
	if log == nil {
		log = logger.New()
	}
	return &Reconciler{
		def:             def,
		synth:           synth,
		transport:       t,
		invocationRules: invocationRules,
		targetRules:     targetRules,
		log:             log,
	}, nil
}

// Reconcile runs one pass: validating, classifying, then per
// identifier guarding, diffing and synthesizing, and finally either a
// dry-run exit or apply and re-fetch. A guard violation anywhere
// aborts the whole invocation; no partial commands are ever submitted.
//
// Running twice with the same desired state yields Changed=false and
// an empty command map on the second pass.
func (r *Reconciler) Reconcile(ctx context.Context, req Request) (*Report, error) {
	schema := r.def.Schema()

	// validating
	if !req.State.Valid() {
		return nil, &resource.ValidationError{Field: "state", Value: string(req.State), Reason: "must be present or absent"}
	}
	if err := schema.Validate(req.Attributes); err != nil {
		return nil, err
	}

	ids, err := r.def.Targets(req.IDs)
	if err != nil {
		return nil, err
	}

	for _, rule := range r.invocationRules {
		if err := rule.Check(req.State, ids, req.Attributes); err != nil {
			return nil, err
		}
	}

	report := &Report{
		RunID:    uuid.NewString(),
		Kind:     r.def.Kind(),
		State:    req.State,
		Proposed: make(map[resource.ID]resource.AttributeMap),
		Existing: make(map[resource.ID]resource.AttributeMap),
		Commands: make(map[resource.ID][]command.Command),
	}

	// classifying: presence on the device decides delta vs common.
	observed := make(map[resource.ID]resource.AttributeMap, len(ids))
	var existingIDs []resource.ID
	for _, id := range ids {
		state, err := r.transport.FetchState(ctx, id)
		if err != nil {
			return nil, err
		}
		observed[id] = state
		if state != nil {
			existingIDs = append(existingIDs, id)
		}
	}
	cls := classify.Partition(ids, existingIDs)

	targets := ids
	if req.State == resource.StateAbsent {
		targets = cls.Common
	}

	// Per-identifier loop, ascending.
	var modified []resource.ID
	for _, id := range targets {
		for _, rule := range r.targetRules {
			if err := rule.Check(req.State, id, req.Attributes); err != nil {
				return nil, err
			}
		}

		report.Proposed[id] = req.Attributes.Clone()
		report.Existing[id] = observed[id].Clone()

		delta := diff.Compute(schema, req.Attributes, observed[id], req.State)
		cmds := r.synth.Synthesize(id, req.State, delta, observed[id] != nil)
		if len(cmds) == 0 {
			continue
		}
		report.Commands[id] = cmds
		modified = append(modified, id)
	}

	if len(modified) == 0 {
		r.log.Debug("device already converged", "kind", r.def.Kind(), "run_id", report.RunID)
		return report, nil
	}

	report.Changed = true
	if req.DryRun {
		r.log.Info("dry run, commands not submitted",
			"kind", r.def.Kind(), "identifiers", len(modified), "run_id", report.RunID)
		return report, nil
	}

	// applying
	sequence := command.Concatenate(modified, report.Commands)
	if err := r.transport.ApplyCommands(ctx, sequence); err != nil {
		return nil, &ApplyError{Submitted: sequence, Err: err}
	}
	r.log.Info("commands applied",
		"kind", r.def.Kind(), "identifiers", len(modified), "commands", len(sequence), "run_id", report.RunID)

	// re-fetching
	report.Final = make(map[resource.ID]resource.AttributeMap, len(modified))
	for _, id := range modified {
		state, err := r.transport.FetchState(ctx, id)
		if err != nil {
			return nil, err
		}
		report.Final[id] = state
	}
	return report, nil
}
