// internal/engine/pin.go
// Manual pin and force-bench: consume an optional pinned-court-1
// selection and a force-bench set, producing the pre-placed court and the
// residual player pool.

package engine

// applyManualPin validates and filters the pin, builds court 1 from it,
// and returns the residual pool the optimizer should run
// over. present must already be filtered to IsPresent==true players.
//
// A pin is ignored (InputIgnored) when its cardinality is not
// in [2,4], or once absent players are filtered out it would be.
func applyManualPin(present []Player, pin *ManualPin, forceBench map[string]bool, cost costModel) (court1 *Court, residual []Player) {
	presentByID := make(map[string]Player, len(present))
	for _, p := range present {
		presentByID[p.ID] = p
	}

	pinnedIDs := map[string]bool{}
	var pinned []Player

	if pin != nil && len(pin.Players) >= 2 && len(pin.Players) <= 4 {
		for _, p := range pin.Players {
			if pp, ok := presentByID[p.ID]; ok && !forceBench[p.ID] {
				pinned = append(pinned, pp)
			}
		}
		if len(pinned) < 2 || len(pinned) > 4 {
			pinned = nil
		}
	}

	for _, p := range pinned {
		pinnedIDs[p.ID] = true
	}

	for _, p := range present {
		if pinnedIDs[p.ID] || forceBench[p.ID] {
			continue
		}
		residual = append(residual, p)
	}

	if len(pinned) == 0 {
		return nil, residual
	}

	court1 = buildPinnedCourt(pinned, cost)
	return court1, residual
}

// buildPinnedCourt builds court 1 from a validated 2/3/4-player pin:
// 2 -> singles, 3 -> singles + one waiting (the 3rd player), 4 -> doubles
// via the Team-Split Chooser.
func buildPinnedCourt(pinned []Player, cost costModel) *Court {
	c := &Court{
		CourtNumber:         1,
		Players:             append([]Player{}, pinned...),
		WasManuallyAssigned: true,
	}

	switch len(pinned) {
	case 2:
		c.Team1 = &Team{Players: pinned[:1]}
		c.Team2 = &Team{Players: pinned[1:2]}
	case 3:
		c.Team1 = &Team{Players: pinned[:1]}
		c.Team2 = &Team{Players: pinned[1:2]}
		waiting := pinned[2]
		c.Waiting = &waiting
	case 4:
		var group [4]Player
		copy(group[:], pinned)
		split := chooseSplit(group, cost)
		c.Team1 = &Team{Players: split.team1}
		c.Team2 = &Team{Players: split.team2}
	}

	return c
}
