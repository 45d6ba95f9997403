package auth

import (
	"log/slog"

	"workboard/internal/domain"
	"workboard/internal/domain/models"
	"workboard/internal/domain/services"
)

// predicate reports whether userID satisfies a relationship to res.
type predicate func(userID string, res models.Resource) bool

type ruleKey struct {
	resource models.ResourceType
	op       models.Operation
}

// rule pairs the relationships that grant an operation with the reason
// reported when none hold. Any matching predicate allows.
type rule struct {
	anyOf  []predicate
	reason domain.DenyReason
}

func isAuthenticated(userID string, _ models.Resource) bool { return userID != "" }

func isOwner(userID string, res models.Resource) bool { return res.OwnerID == userID }

func isAssignee(userID string, res models.Resource) bool { return res.HasAssignee(userID) }

func isCreator(userID string, res models.Resource) bool { return res.CreatorID == userID }

// policy is the complete access table. Task update is deliberately broader
// than delete: assignees move status, only the board owner curates structure.
var policy = map[ruleKey]rule{
	{models.ResourceBoard, models.OpCreate}: {anyOf: []predicate{isAuthenticated}, reason: domain.ReasonUnauthenticated},
	{models.ResourceBoard, models.OpRead}:   {anyOf: []predicate{isOwner, isAssignee}, reason: domain.ReasonNotInScope},
	{models.ResourceBoard, models.OpUpdate}: {anyOf: []predicate{isOwner}, reason: domain.ReasonNotOwner},
	{models.ResourceBoard, models.OpDelete}: {anyOf: []predicate{isOwner}, reason: domain.ReasonNotOwner},

	{models.ResourceTask, models.OpCreate}: {anyOf: []predicate{isOwner}, reason: domain.ReasonNotBoardOwner},
	{models.ResourceTask, models.OpRead}:   {anyOf: []predicate{isOwner, isAssignee}, reason: domain.ReasonNotBoardOwnerOrAssignee},
	{models.ResourceTask, models.OpUpdate}: {anyOf: []predicate{isCreator, isOwner, isAssignee}, reason: domain.ReasonNotCreatorOwnerOrAssignee},
	{models.ResourceTask, models.OpDelete}: {anyOf: []predicate{isOwner}, reason: domain.ReasonNotBoardOwner},

	{models.ResourceAssignments, models.OpRead}: {anyOf: []predicate{isOwner}, reason: domain.ReasonNotSelf},
}

// PolicyAuthorizer implements ResourceAuthorizer over the static policy table.
type PolicyAuthorizer struct {
	logger *slog.Logger
}

// NewPolicyAuthorizer creates a table-driven authorizer
func NewPolicyAuthorizer(logger *slog.Logger) services.ResourceAuthorizer {
	return &PolicyAuthorizer{logger: logger}
}

// Authorize evaluates the rule for (res.Type, op). An empty userID is
// never allowed anything, and unknown pairs are denied.
func (a *PolicyAuthorizer) Authorize(userID string, op models.Operation, res models.Resource) models.Decision {
	decision := evaluate(userID, op, res)
	if !decision.Allowed {
		a.logger.Debug("access denied",
			"user_id", userID,
			"operation", op,
			"resource", res.Type,
			"resource_id", res.ID,
			"reason", decision.Reason,
		)
	}
	return decision
}

func evaluate(userID string, op models.Operation, res models.Resource) models.Decision {
	if userID == "" {
		return models.Deny(domain.ReasonUnauthenticated)
	}

	r, ok := policy[ruleKey{res.Type, op}]
	if !ok {
		return models.Deny(domain.ReasonUnknownOperation)
	}

	for _, p := range r.anyOf {
		if p(userID, res) {
			return models.Allow()
		}
	}
	return models.Deny(r.reason)
}
