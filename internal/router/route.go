package router

import (
	"context"
	"errors"
	"fmt"

	"intent-router/internal/gate"
	"intent-router/internal/intent"
	"intent-router/pkg/canonical"
)

// turn accumulates the state trail of one Route call.
type turn struct {
	res Result
}

func (t *turn) enter(s State) {
	t.res.State = s
	t.res.Trail = append(t.res.Trail, s)
}

func (t *turn) degrade(reason error, clarification string, missing []string) Result {
	t.enter(StateDegraded)
	t.res.Reason = reason
	t.res.Clarification = clarification
	if t.res.Clarification == "" {
		t.res.Clarification = intent.GenericClarification
	}
	t.res.Missing = append([]string(nil), missing...)
	return t.res
}

// Route runs the state machine for req. It never fails: every error ends
// in a Degraded result with a clarification for the user.
func (r *Dispatcher) Route(ctx context.Context, req Request) Result {
	t := &turn{res: Result{Source: SourceNone, Domain: req.Domain}}
	t.enter(StateStart)

	res := r.route(ctx, t, req)
	if res.State == StateDegraded {
		r.l.Infof(ctx, "%s: domain=%s source=%s degraded: %v trail=%v", LogPrefixRoute, req.Domain, res.Source, res.Reason, res.Trail)
	} else {
		r.l.Infof(ctx, "%s: domain=%s source=%s action=%s confidence=%.2f", LogPrefixRoute, req.Domain, res.Source, res.Plan.Action, res.Confidence)
	}
	return res
}

func (r *Dispatcher) route(ctx context.Context, t *turn, req Request) Result {
	if !r.cfg.Enabled {
		return t.degrade(ErrRouterDisabled, "", nil)
	}
	d, ok := r.domains[req.Domain]
	if !ok {
		r.l.Warnf(ctx, "%s: %s: %q", LogPrefixRoute, ErrMsgUnknownDomain, req.Domain)
		return t.degrade(fmt.Errorf("%w: %q", ErrUnknownDomain, req.Domain), "", nil)
	}

	in, found := d.TryExtract(req.Text, req.Context)
	t.enter(StateDeterministicTried)
	if found {
		t.res.Source = SourceDeterministic
	} else {
		var reason error
		in, reason = r.modelIntent(ctx, t, d, req)
		if reason != nil {
			return t.degrade(reason, "", nil)
		}
		t.res.Source = SourceModel
	}

	t.res.Intent = &in
	t.res.Confidence = in.Confidence

	verdict := gate.Evaluate(in, r.minConfidence)
	t.enter(StateGated)
	if !verdict.Accepted {
		return t.degrade(verdict.Reason, verdict.Clarification, verdict.Missing)
	}

	plan, err := d.Compile(in)
	if err != nil {
		if ce, ok := intent.AsClarification(err); ok {
			return t.degrade(fmt.Errorf("%w: %w", ErrIncompleteSlots, err), ce.Clarification, ce.Missing)
		}
		r.l.Warnf(ctx, "%s: %s: domain=%s kind=%s: %v", LogPrefixRoute, ErrMsgCompileFailed, req.Domain, in.Kind, err)
		return t.degrade(fmt.Errorf("%w: %w", ErrIncompleteSlots, err), "", nil)
	}

	if plan.SideEffecting {
		ids, err := canonical.DeriveIDs(req.TurnKey, plan.Action, plan.Args)
		if err != nil {
			r.l.Errorf(ctx, "%s: %s: %v", LogPrefixRoute, ErrMsgIDsFailed, err)
			return t.degrade(fmt.Errorf("%w: %w", ErrIdentifiers, err), "", nil)
		}
		t.res.IDs = &ids
	}

	t.res.Plan = &plan
	t.enter(StateCompiled)
	return t.res
}

// modelIntent is the slow path. The returned error is the degrade reason.
func (r *Dispatcher) modelIntent(ctx context.Context, t *turn, d Domain, req Request) (intent.Intent, error) {
	if !r.cfg.ModelEnabled || r.models == nil {
		return intent.Intent{}, ErrAmbiguousInput
	}

	model, err := r.models.ResolveModel(ctx)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: %v", LogPrefixRoute, ErrMsgResolveFailed, err)
		return intent.Intent{}, fmt.Errorf("%w: %w", ErrModelUnavailable, err)
	}

	t.enter(StateModelTried)
	in, err := r.extract.Extract(ctx, d.ModelSpec(), req.Text, req.Context, model)
	if err != nil {
		r.l.Warnf(ctx, "%s: %s: domain=%s: %v", LogPrefixRoute, ErrMsgExtractFailed, req.Domain, err)
		if errors.Is(err, ErrSchemaValidation) || errors.Is(err, ErrModelCall) {
			return intent.Intent{}, err
		}
		return intent.Intent{}, fmt.Errorf("%w: %w", ErrModelCall, err)
	}
	return in, nil
}
