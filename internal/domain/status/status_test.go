package status_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Eventos-api/internal/domain/status"
)

func TestProposal_TablaDeTransiciones(t *testing.T) {
	cases := []struct {
		from, to status.Proposal
		ok       bool
	}{
		{status.ProposalDraft, status.ProposalOnReview, true},
		{status.ProposalDraft, status.ProposalCancelled, true},
		{status.ProposalDraft, status.ProposalApproved, false}, // no se salta la revisión
		{status.ProposalOnReview, status.ProposalApproved, true},
		{status.ProposalOnReview, status.ProposalRejected, true},
		{status.ProposalOnReview, status.ProposalAccepted, false},
		{status.ProposalApproved, status.ProposalOnContact, true},
		{status.ProposalApproved, status.ProposalDraft, false}, // sin aristas inversas implícitas
		{status.ProposalOnContact, status.ProposalAccepted, true},
		{status.ProposalRejected, status.ProposalDraft, true}, // rechazada puede reelaborarse
		{status.ProposalAccepted, status.ProposalCancelled, true},
		{status.ProposalAccepted, status.ProposalDraft, false},
		{status.ProposalCancelled, status.ProposalDraft, true}, // escape hatch de reset
		{status.ProposalCancelled, status.ProposalAccepted, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.ok, tc.from.CanTransition(tc.to), "%s→%s", tc.from, tc.to)
	}
}

func TestEvent_PipelineLineal(t *testing.T) {
	orden := []status.Event{
		status.EventPlanning,
		status.EventBudgeting,
		status.EventPreparation,
		status.EventImplementation,
		status.EventReporting,
		status.EventDone,
	}
	for i := 0; i < len(orden)-1; i++ {
		assert.True(t, orden[i].CanTransition(orden[i+1]), "%s→%s debe permitirse", orden[i], orden[i+1])
	}
	// No se salta etapas ni se retrocede
	assert.False(t, status.EventPlanning.CanTransition(status.EventPreparation))
	assert.False(t, status.EventBudgeting.CanTransition(status.EventPlanning))
}

func TestEvent_DoneEsTerminal(t *testing.T) {
	assert.Empty(t, status.EventDone.AllowedNext())
	assert.False(t, status.EventDone.CanTransition(status.EventPlanning))
}

func TestTask_Transiciones(t *testing.T) {
	assert.True(t, status.TaskPending.CanTransition(status.TaskOnProgress))
	assert.True(t, status.TaskPending.CanTransition(status.TaskCancelled))
	assert.False(t, status.TaskPending.CanTransition(status.TaskDone))
	assert.True(t, status.TaskOnProgress.CanTransition(status.TaskDone))
	assert.Empty(t, status.TaskDone.AllowedNext(), "DONE es terminal")
	assert.True(t, status.TaskCancelled.CanTransition(status.TaskPending), "cancelada puede reabrirse")
}

func TestValid_RechazaStatusDesconocido(t *testing.T) {
	assert.True(t, status.ProposalDraft.Valid())
	assert.False(t, status.Proposal("PENDIENTE").Valid())
	assert.True(t, status.EventDone.Valid())
	assert.False(t, status.Event("CLOSED").Valid())
	assert.True(t, status.TaskPending.Valid())
	assert.False(t, status.Task("WAITING").Valid())
}
