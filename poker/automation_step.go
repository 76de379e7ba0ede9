package poker

// Step performs the next automated action for the current phase and
// reports whether it did so. A false result means the current phase's
// next action requires caller input (a player decision, or a flag that
// was not included in the Automation bitset at construction) — callers
// should drive that action directly instead (§4.4 "Automation").
func (s *State) Step() (*Event, bool, error) {
	switch s.phase {
	case PhaseAntePosting:
		if s.automation.Has(AutoAntePosting) && s.CanPostAnte() {
			return s.stepEvent(s.PostAnte())
		}
	case PhaseBetCollection:
		if s.automation.Has(AutoBetCollection) && s.CanCollectBets() {
			return s.stepEvent(s.CollectBets())
		}
	case PhaseBlindPosting:
		if s.automation.Has(AutoBlindPosting) && s.CanPostBlind() {
			return s.stepEvent(s.PostBlind())
		}
	case PhaseDealing:
		if s.automation.Has(AutoCardBurning) && s.CanBurnCard() {
			return s.stepEvent(s.BurnCard())
		}
		if s.automation.Has(AutoHoleDealing) && s.CanDealHole() {
			return s.stepEvent(s.DealHole(nil))
		}
		if s.automation.Has(AutoBoardDealing) && s.CanDealBoard() {
			return s.stepEvent(s.DealBoard(nil))
		}
	case PhaseShowdown:
		if s.automation.Has(AutoShowdownDecisions) && len(s.pendingShowdown) > 0 {
			seat := s.pendingShowdown[0]
			if s.CanWinNow(seat) {
				return s.stepEvent(s.Show(seat))
			}
			return s.stepEvent(s.Muck(seat))
		}
	case PhaseHandKilling:
		if s.automation.Has(AutoHandKilling) && s.CanKillHand() {
			return s.stepEvent(s.KillHand())
		}
	case PhaseChipsPushing:
		if s.automation.Has(AutoChipsPushing) && s.CanPushChips() {
			return s.stepEvent(s.PushChips())
		}
	case PhaseChipsPulling:
		if s.automation.Has(AutoChipsPulling) && s.CanPullChips() {
			return s.stepEvent(s.PullChips())
		}
	}
	return nil, false, nil
}

func (s *State) stepEvent(e Event, err error) (*Event, bool, error) {
	if err != nil {
		return nil, false, err
	}
	return &e, true, nil
}

// RunAutomated advances s through every automated action available,
// stopping when the next action needs caller input or the hand reaches
// PhaseTerminal. It returns every Event produced.
func (s *State) RunAutomated() ([]Event, error) {
	var out []Event
	for {
		e, ok, err := s.Step()
		if err != nil {
			return out, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, *e)
		if s.phase == PhaseTerminal {
			return out, nil
		}
	}
}
