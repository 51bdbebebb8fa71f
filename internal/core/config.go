package core

import (
	"strconv"
	"time"
)

// ScoreRecorder persists final scores. The simulation calls it at most once
// per round, and only for scores that passed the integrity check.
type ScoreRecorder interface {
	RecordScore(gameID string, score int) error
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Seed    int64         // RNG seed for deterministic gameplay
	Scores  ScoreRecorder // Optional high score sink
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Phase is the lifecycle state of a simulation round.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseTampered
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	case PhaseTampered:
		return "tampered"
	default:
		return "unknown"
	}
}

// Terminal reports whether the round has ended.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseTampered
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Phase    Phase
	Score    int           // Displayed score
	Length   int           // Head plus tail segments
	Interval time.Duration // Current step period
}

// GameOver reports whether the round has ended for any reason.
func (s GameState) GameOver() bool {
	return s.Phase.Terminal()
}

// Paused reports whether the simulation is waiting for acknowledgement.
func (s GameState) Paused() bool {
	return s.Phase == PhasePaused
}

// NoticeKind identifies a user-facing notification.
type NoticeKind int

const (
	NoticePaused NoticeKind = iota + 1
	NoticeTampered
	NoticeGameOver
)

// Notice is a notification the host must show before the simulation resumes.
type Notice struct {
	Kind     NoticeKind
	Score    int    // Final score (game over only)
	Verified bool   // Whether the final score passed the integrity check
	Recorded bool   // Whether the score reached the recorder
	Rank     int    // 1-based position in the ranked list, 0 if unranked
	Reason   string // Extra detail, e.g. "board full"
}

// Message renders the notice text shown to the player.
func (n Notice) Message() string {
	switch n.Kind {
	case NoticePaused:
		return "Paused!"
	case NoticeTampered:
		return "Hacker!!!!"
	case NoticeGameOver:
		return "Game Over! Final Score: " + strconv.Itoa(n.Score) + " Play again?"
	default:
		return ""
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Notice is non-nil when the step produced something the player must see.
type StepResult struct {
	State  GameState
	Notice *Notice
}
