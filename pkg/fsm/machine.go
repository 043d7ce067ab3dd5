package fsm

import (
	"context"
	"log"

	"github.com/silkshine/booking-bot/pkg/state"

	"github.com/looplab/fsm"
)

// newBookingMachine builds the booking-flow state machine positioned at
// the session's persisted stage. The machine is rebuilt per event; the
// durable truth is the stage column on the session.
func newBookingMachine(stage string) *fsm.FSM {
	allStages := []string{
		state.StageInitial,
		state.StageLangSelected,
		state.StageCollectingName,
		state.StageCollectingSurname,
		state.StageCollectingPhone,
		state.StageSlotOffered,
		state.StageDone,
	}

	events := fsm.Events{
		{Name: EventRestart, Src: allStages, Dst: state.StageInitial},
		{Name: EventSelectLanguage, Src: []string{state.StageInitial, state.StageLangSelected}, Dst: state.StageLangSelected},
		{Name: EventStartBooking, Src: []string{state.StageLangSelected}, Dst: state.StageCollectingName},
		{Name: EventSubmitName, Src: []string{state.StageCollectingName}, Dst: state.StageCollectingSurname},
		{Name: EventSubmitSurname, Src: []string{state.StageCollectingSurname}, Dst: state.StageCollectingPhone},
		{Name: EventSubmitPhone, Src: []string{state.StageCollectingPhone}, Dst: state.StageSlotOffered},
		{Name: EventChooseSlot, Src: []string{state.StageSlotOffered}, Dst: state.StageDone},
	}

	return fsm.NewFSM(stage, events, fsm.Callbacks{})
}

// advance runs one guarded transition and writes the new stage back to
// the session. A refused transition is a no-op, never an error surfaced
// to the user.
func advance(ctx context.Context, session *state.Session, event string) bool {
	machine := newBookingMachine(session.Stage)
	if err := machine.Event(ctx, event); err != nil {
		// Self-transitions (re-picking a language) refuse with
		// NoTransitionError but are still accepted input.
		if isNoTransitionError(err) {
			return true
		}
		log.Printf("[advance] Refused event '%s' from stage '%s' for user %d: %v",
			event, session.Stage, session.UserID, err)
		return false
	}
	session.Stage = machine.Current()
	return true
}
