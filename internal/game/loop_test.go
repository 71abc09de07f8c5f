package game

import (
	"testing"

	"jrpg-battle/internal/party"
)

func TestLoopDeliversViews(t *testing.T) {
	gl := NewGameLoop(testContent(t), LoopConfig{LeaderClass: party.WhiteMage, Seed: 42})
	id, ch := gl.AddPlayer("kid")
	if id != "kid" {
		t.Fatalf("id = %q", id)
	}

	gl.InputChan() <- InputEvent{PlayerID: id, Input: InputBattle}
	gl.tick()

	state := <-ch
	if state.Tick != 1 || state.View.Battle == nil {
		t.Fatalf("state = %+v", state)
	}
	if state.View.Battle.Members[0].Class != party.WhiteMage.DisplayName() {
		t.Errorf("leader class = %s", state.View.Battle.Members[0].Class)
	}
}

func TestLoopResumesSession(t *testing.T) {
	gl := NewGameLoop(testContent(t), LoopConfig{Seed: 42})
	id, _ := gl.AddPlayer("kid")
	gl.InputChan() <- InputEvent{PlayerID: id, Input: InputBattle}
	gl.tick()
	first := gl.sessions[id]

	gl.RemovePlayer(id)
	if _, ok := gl.sessions[id]; ok {
		t.Fatal("session still online")
	}

	id2, _ := gl.AddPlayer("kid")
	if gl.sessions[id2] != first || first.Battle() == nil {
		t.Error("reconnect did not resume the saved session")
	}

	other, _ := gl.AddPlayer("kid")
	if other == id2 || gl.sessions[other] == first {
		t.Error("second login shares the session")
	}
}

func TestLoopIgnoresUnknownPlayer(t *testing.T) {
	gl := NewGameLoop(testContent(t), LoopConfig{Seed: 1})
	gl.InputChan() <- InputEvent{PlayerID: "ghost", Input: InputBattle}
	gl.tick()
	if len(gl.sessions) != 0 {
		t.Error("input created a session")
	}
}

func TestLoopReportsQuit(t *testing.T) {
	gl := NewGameLoop(testContent(t), LoopConfig{Seed: 5})
	id, ch := gl.AddPlayer("kid")
	gl.InputChan() <- InputEvent{PlayerID: id, Input: InputQuit}
	gl.tick()
	if state := <-ch; !state.Quit {
		t.Fatal("quit not reported")
	}

	gl.RemovePlayer(id)
	id, ch = gl.AddPlayer("kid")
	gl.tick()
	if state := <-ch; state.Quit {
		t.Error("resumed session still quitting")
	}
}
