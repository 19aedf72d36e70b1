package types

// Enum values for Escrow Lock State
type EscrowState string

const (
	StateActive EscrowState = "ACTIVE"
	// StateDepleted is never persisted: a lock with zero remaining reward is
	// stored as ACTIVE and reported as DEPLETED on read surfaces.
	StateDepleted EscrowState = "DEPLETED"
	StateClosed   EscrowState = "CLOSED"
)

func (s EscrowState) String() string {
	return string(s)
}

// QualifiedStatesForRedeem returns the stored states in which a redemption
// may run. A depleted lock is stored as ACTIVE, so redemption against it is
// legal and yields a zero reward.
func QualifiedStatesForRedeem() []EscrowState {
	return []EscrowState{StateActive}
}

// QualifiedStatesForReclaim returns the stored states from which the minter
// may reclaim. CLOSED is terminal; reclaiming twice is not possible.
func QualifiedStatesForReclaim() []EscrowState {
	return []EscrowState{StateActive}
}

// ReportedState maps a stored state plus the remaining reward value to the
// state exposed to observers.
func ReportedState(stored EscrowState, remainingRewardValue uint64) EscrowState {
	if stored == StateActive && remainingRewardValue == 0 {
		return StateDepleted
	}
	return stored
}
