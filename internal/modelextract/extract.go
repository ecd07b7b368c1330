package modelextract

import (
	"context"
	"errors"
	"fmt"
	"time"

	"intent-router/internal/intent"
	"intent-router/pkg/llmprovider"
)

// Extract asks model for an intent matching spec.Schema. A completion that
// does not parse or validate is retried once with StrictSuffix appended; a
// failed or timed out call is returned as ErrModelCall without a retry.
func (e *Extractor) Extract(ctx context.Context, spec Spec, text string, tc intent.TurnContext, model llmprovider.Completer) (intent.Intent, error) {
	if spec.Schema == nil {
		return intent.Intent{}, fmt.Errorf("%s: %w: %s has no schema", LogPrefixExtract, ErrInvalidSpec, spec.Domain)
	}

	prompt := e.BuildPrompt(spec, text, tc)
	caps := model.Capabilities()
	opts := llmprovider.CompleteOptions{
		Temperature: temperatureFor(caps.SupportsTemperature, caps.IsReasoningModel),
	}

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		p := prompt
		if attempt > 1 {
			p = prompt + "\n\n" + StrictSuffix
		}

		start := time.Now()
		out, err := e.complete(ctx, model, p, opts)
		if err != nil {
			e.l.Warnf(ctx, "%s: %s: domain=%s attempt=%d: %v", LogPrefixExtract, ErrMsgModelCallFailed, spec.Domain, attempt, err)
			return intent.Intent{}, fmt.Errorf("%s: %w: %w", LogPrefixExtract, ErrModelCall, err)
		}

		in, err := decode(spec.Schema, out)
		if err != nil {
			lastErr = err
			e.l.Warnf(ctx, "%s: %s: domain=%s attempt=%d: %v", LogPrefixExtract, ErrMsgAttemptRejected, spec.Domain, attempt, err)
			continue
		}

		in.Utterance = text
		e.l.Infof(ctx, "%s: domain=%s kind=%s confidence=%.2f attempt=%d took=%dms",
			LogPrefixExtract, spec.Domain, in.Kind, in.Confidence, attempt, elapsedMs(start))
		return in, nil
	}

	return intent.Intent{}, fmt.Errorf("%s: %w: %w", LogPrefixExtract, ErrSchemaValidation, lastErr)
}

func (e *Extractor) complete(ctx context.Context, model llmprovider.Completer, prompt string, opts llmprovider.CompleteOptions) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, e.cfg.Timeout)
	defer cancel()

	out, err := model.Complete(ctx, prompt, opts)
	if err == nil {
		return out, nil
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("timed out after %s: %w", e.cfg.Timeout, err)
	}
	return "", err
}

func decode(schema *intent.Schema, out string) (intent.Intent, error) {
	raw, err := ParseObject(out)
	if err != nil {
		return intent.Intent{}, err
	}
	return schema.DecodeIntent(raw)
}
