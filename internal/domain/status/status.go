package status

// Máquinas de estado de Proposal, Event y Task como mapas de adyacencia
// explícitos (estado → estados siguientes permitidos). Los handlers nunca
// asignan un status arbitrario: toda mutación pasa por CanTransition.

// Proposal status del ciclo comercial de una propuesta.
type Proposal string

// Estados de Proposal.
const (
	ProposalDraft     Proposal = "DRAFT"
	ProposalOnReview  Proposal = "ON_REVIEW"
	ProposalApproved  Proposal = "APPROVED"
	ProposalRejected  Proposal = "REJECTED"
	ProposalOnContact Proposal = "ON_CONTACT"
	ProposalAccepted  Proposal = "ACCEPTED"
	ProposalCancelled Proposal = "CANCELLED"
)

// Event status del pipeline de ejecución de un evento.
type Event string

// Estados de Event.
const (
	EventPlanning       Event = "PLANNING"
	EventBudgeting      Event = "BUDGETING"
	EventPreparation    Event = "PREPARATION"
	EventImplementation Event = "IMPLEMENTATION"
	EventReporting      Event = "REPORTING"
	EventDone           Event = "DONE"
)

// Task status de una tarea operativa.
type Task string

// Estados de Task.
const (
	TaskPending    Task = "PENDING"
	TaskOnProgress Task = "ON_PROGRESS"
	TaskDone       Task = "DONE"
	TaskCancelled  Task = "CANCELLED"
)

// Grafo dirigido de Proposal; no hay aristas inversas implícitas.
// CANCELLED es la válvula de escape: desde él se puede volver a cualquier
// estado (reset explícito), pero ACCEPTED solo puede cancelarse.
var proposalNext = map[Proposal][]Proposal{
	ProposalDraft:     {ProposalOnReview, ProposalCancelled},
	ProposalOnReview:  {ProposalApproved, ProposalRejected, ProposalCancelled},
	ProposalApproved:  {ProposalOnContact, ProposalCancelled},
	ProposalOnContact: {ProposalAccepted, ProposalCancelled},
	ProposalRejected:  {ProposalDraft, ProposalCancelled},
	ProposalAccepted:  {ProposalCancelled},
	ProposalCancelled: {ProposalDraft, ProposalOnReview, ProposalApproved, ProposalRejected, ProposalOnContact, ProposalAccepted},
}

// Pipeline lineal de Event; DONE es terminal.
var eventNext = map[Event][]Event{
	EventPlanning:       {EventBudgeting},
	EventBudgeting:      {EventPreparation},
	EventPreparation:    {EventImplementation},
	EventImplementation: {EventReporting},
	EventReporting:      {EventDone},
	EventDone:           {},
}

// Grafo de Task: CANCELLED permite reabrir a PENDING; DONE es terminal.
var taskNext = map[Task][]Task{
	TaskPending:    {TaskOnProgress, TaskCancelled},
	TaskOnProgress: {TaskDone, TaskCancelled},
	TaskDone:       {},
	TaskCancelled:  {TaskPending},
}

func allowedNext[S comparable](table map[S][]S, current S) []S {
	return table[current]
}

func canTransition[S comparable](table map[S][]S, current, next S) bool {
	for _, s := range table[current] {
		if s == next {
			return true
		}
	}
	return false
}

func valid[S comparable](table map[S][]S, s S) bool {
	_, ok := table[s]
	return ok
}

// Valid indica si el status pertenece al enum.
func (s Proposal) Valid() bool { return valid(proposalNext, s) }

// AllowedNext devuelve los estados siguientes permitidos.
func (s Proposal) AllowedNext() []Proposal { return allowedNext(proposalNext, s) }

// CanTransition indica si la transición s→next está permitida.
func (s Proposal) CanTransition(next Proposal) bool { return canTransition(proposalNext, s, next) }

// Valid indica si el status pertenece al enum.
func (s Event) Valid() bool { return valid(eventNext, s) }

// AllowedNext devuelve los estados siguientes permitidos.
func (s Event) AllowedNext() []Event { return allowedNext(eventNext, s) }

// CanTransition indica si la transición s→next está permitida.
func (s Event) CanTransition(next Event) bool { return canTransition(eventNext, s, next) }

// Valid indica si el status pertenece al enum.
func (s Task) Valid() bool { return valid(taskNext, s) }

// AllowedNext devuelve los estados siguientes permitidos.
func (s Task) AllowedNext() []Task { return allowedNext(taskNext, s) }

// CanTransition indica si la transición s→next está permitida.
func (s Task) CanTransition(next Task) bool { return canTransition(taskNext, s, next) }
