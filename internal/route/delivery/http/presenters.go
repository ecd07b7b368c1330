package http

import (
	"encoding/json"
	"errors"
	"strings"

	"intent-router/internal/intent"
	"intent-router/internal/route"
	"intent-router/internal/router"
	"intent-router/pkg/canonical"
	"intent-router/pkg/response"
)

// --- Request DTOs ---

type routeReq struct {
	Domain               string          `json:"-"` // populated from URI param
	ChatID               string          `json:"chatId"           binding:"required,max=128"`
	MessageID            string          `json:"messageId"        binding:"max=128"`
	Text                 string          `json:"text"             binding:"required"`
	PreviousUserText     *string         `json:"previousUserText"`
	PreviousActionOutput json.RawMessage `json:"previousActionOutput"`
}

func (r routeReq) validate() error {
	if strings.TrimSpace(r.Domain) == "" {
		return errDomainRequired
	}
	return nil
}

// toInput passes an explicit context only when the client sent one;
// otherwise the stored previous turn is used.
func (r routeReq) toInput() route.RouteInput {
	in := route.RouteInput{
		Domain:    r.Domain,
		ChatID:    r.ChatID,
		MessageID: r.MessageID,
		Text:      r.Text,
	}
	if r.PreviousUserText != nil || len(r.PreviousActionOutput) > 0 {
		tc := intent.TurnContext{}
		if r.PreviousUserText != nil {
			tc.PreviousUserText = *r.PreviousUserText
		}
		if len(r.PreviousActionOutput) > 0 && string(r.PreviousActionOutput) != "null" {
			tc.PreviousActionOutput = r.PreviousActionOutput
		}
		in.Context = &tc
	}
	return in
}

// ---

type recordOutputReq struct {
	ChatID string          `json:"-"` // populated from URI param
	Output json.RawMessage `json:"output" binding:"required"`
}

func (r recordOutputReq) validate() error {
	if strings.TrimSpace(r.ChatID) == "" {
		return errChatIDRequired
	}
	return nil
}

func (r recordOutputReq) toInput() route.RecordOutputInput {
	return route.RecordOutputInput{ChatID: r.ChatID, Output: r.Output}
}

// --- Response DTOs ---

type routeResp struct {
	MessageID     string                 `json:"messageId"`
	TurnKey       string                 `json:"turnKey"`
	Domain        string                 `json:"domain"`
	State         router.State           `json:"state"`
	Trail         []router.State         `json:"trail"`
	Source        router.Source          `json:"source"`
	Intent        *intent.Intent         `json:"intent,omitempty"`
	Plan          *intent.Plan           `json:"plan,omitempty"`
	IDs           *canonical.Identifiers `json:"ids,omitempty"`
	Missing       []string               `json:"missing,omitempty"`
	Clarification string                 `json:"clarification,omitempty"`
	Confidence    float64                `json:"confidence"`
	Reason        string                 `json:"reason,omitempty"`
	RoutedAt      response.DateTime      `json:"routedAt"`
}

func (h *handler) newRouteResp(out route.RouteOutput) routeResp {
	res := out.Result
	return routeResp{
		MessageID:     out.MessageID,
		TurnKey:       out.TurnKey,
		Domain:        res.Domain,
		State:         res.State,
		Trail:         res.Trail,
		Source:        res.Source,
		Intent:        res.Intent,
		Plan:          res.Plan,
		IDs:           res.IDs,
		Missing:       res.Missing,
		Clarification: res.Clarification,
		Confidence:    res.Confidence,
		Reason:        reasonCode(res.Reason),
		RoutedAt:      response.DateTime(h.now()),
	}
}

// reasonCodes names degrade reasons for clients. Order matters: the first
// match wins for wrapped reasons.
var reasonCodes = []struct {
	err  error
	code string
}{
	{router.ErrRouterDisabled, "router_disabled"},
	{router.ErrAmbiguousInput, "ambiguous_input"},
	{router.ErrModelUnavailable, "model_unavailable"},
	{router.ErrSchemaValidation, "schema_validation"},
	{router.ErrModelCall, "model_call"},
	{router.ErrLowConfidence, "low_confidence"},
	{router.ErrIncompleteSlots, "incomplete_slots"},
	{router.ErrIdentifiers, "identifiers"},
}

func reasonCode(err error) string {
	if err == nil {
		return ""
	}
	for _, rc := range reasonCodes {
		if errors.Is(err, rc.err) {
			return rc.code
		}
	}
	return "unknown"
}
