package game

import (
	"fmt"
	"log"
	"sync"
	"time"

	"jrpg-battle/internal/dice"
	"jrpg-battle/internal/party"
)

const InputChanSize = 256

// GameState is a snapshot sent to each session for rendering.
type GameState struct {
	View SessionView
	Tick uint64
	Quit bool // the player asked to leave
}

// RenderChan is the per-session channel that receives game state snapshots.
type RenderChan chan GameState

// LoopConfig configures new sessions.
type LoopConfig struct {
	LeaderClass party.Class
	Seed        int64 // 0 draws a fresh seed per session
}

// GameLoop is the central game loop singleton.
type GameLoop struct {
	content   *Content
	cfg       LoopConfig
	inputCh   chan InputEvent
	tickCount uint64

	mu          sync.RWMutex
	sessions    map[string]*Session
	renderChans map[string]RenderChan
	saved       map[string]*Session // keyed by username
	seeded      int64

	stopCh chan struct{}
}

// NewGameLoop creates and returns a new game loop.
func NewGameLoop(content *Content, cfg LoopConfig) *GameLoop {
	return &GameLoop{
		content:     content,
		cfg:         cfg,
		inputCh:     make(chan InputEvent, InputChanSize),
		sessions:    make(map[string]*Session),
		renderChans: make(map[string]RenderChan),
		saved:       make(map[string]*Session),
		stopCh:      make(chan struct{}),
	}
}

// InputChan returns the shared input channel for sessions to send events.
func (gl *GameLoop) InputChan() chan<- InputEvent {
	return gl.inputCh
}

// nextSeed returns the seed for a new session. Caller holds mu.
func (gl *GameLoop) nextSeed() int64 {
	if gl.cfg.Seed != 0 {
		gl.seeded++
		return gl.cfg.Seed + gl.seeded - 1
	}
	seed, err := dice.NewSeed()
	if err != nil {
		log.Printf("seed: %v, falling back to clock", err)
		return time.Now().UnixNano()
	}
	return seed
}

// AddPlayer registers a player using their username as identity.
// If the username was seen before, their session is resumed.
// Returns the effective player ID and the render channel.
func (gl *GameLoop) AddPlayer(name string) (string, RenderChan) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	// If this username is already online, add a suffix
	id := name
	if _, online := gl.sessions[id]; online {
		id = fmt.Sprintf("%s_%04d", name, time.Now().UnixNano()%10000)
	}

	s, ok := gl.saved[name]
	if ok && id == name {
		delete(gl.saved, name)
		s.quit = false
	} else {
		s = NewSession(name, gl.cfg.LeaderClass, gl.content, dice.New(gl.nextSeed()))
	}

	gl.sessions[id] = s
	ch := make(RenderChan, 2)
	gl.renderChans[id] = ch
	return id, ch
}

// RemovePlayer saves the player's session and unregisters them.
func (gl *GameLoop) RemovePlayer(id string) {
	gl.mu.Lock()
	defer gl.mu.Unlock()

	if s, ok := gl.sessions[id]; ok {
		gl.saved[s.Name] = s
		delete(gl.sessions, id)
	}
	if ch, ok := gl.renderChans[id]; ok {
		close(ch)
		delete(gl.renderChans, id)
	}
}

// Run starts the game loop. Blocks until Stop is called.
func (gl *GameLoop) Run() {
	ticker := time.NewTicker(time.Second / TickRate)
	defer ticker.Stop()

	for {
		select {
		case <-gl.stopCh:
			return
		case <-ticker.C:
			gl.tick()
		}
	}
}

// Stop shuts down the game loop.
func (gl *GameLoop) Stop() {
	close(gl.stopCh)
}

func (gl *GameLoop) tick() {
	// Drain all pending input events
	for {
		select {
		case ev := <-gl.inputCh:
			gl.processInput(ev)
		default:
			goto drained
		}
	}
drained:

	gl.tickCount++

	gl.mu.RLock()
	defer gl.mu.RUnlock()
	for id, s := range gl.sessions {
		s.Update(Frame)
		ch, ok := gl.renderChans[id]
		if !ok {
			continue
		}
		// Non-blocking send; a slow client drops the frame
		select {
		case ch <- GameState{View: s.View(), Tick: gl.tickCount, Quit: s.Quit()}:
		default:
		}
	}
}

func (gl *GameLoop) processInput(ev InputEvent) {
	gl.mu.RLock()
	s, ok := gl.sessions[ev.PlayerID]
	gl.mu.RUnlock()
	if !ok {
		return
	}
	s.HandleInput(ev.Input)
}
