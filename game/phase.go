package game

// Phase is the screen the game is on.
type Phase uint8

const (
	TitleScreen Phase = iota
	GameRunning
	DeathScreen
)

func (p Phase) String() string {
	switch p {
	case TitleScreen:
		return "TitleScreen"
	case GameRunning:
		return "GameRunning"
	case DeathScreen:
		return "DeathScreen"
	default:
		return "Phase(?)"
	}
}

// Event drives phase transitions.
type Event uint8

const (
	EventStart Event = iota
	EventDie
	EventRestart
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "Start"
	case EventDie:
		return "Die"
	case EventRestart:
		return "Restart"
	default:
		return "Event(?)"
	}
}

// Transition returns the phase after ev, and false if ev does not apply to p.
func Transition(p Phase, ev Event) (Phase, bool) {
	switch {
	case p == TitleScreen && ev == EventStart:
		return GameRunning, true
	case p == GameRunning && ev == EventDie:
		return DeathScreen, true
	case p == DeathScreen && ev == EventRestart:
		return GameRunning, true
	}
	return p, false
}
