package server

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/gliderlabs/ssh"

	"jrpg-battle/internal/game"
	"jrpg-battle/internal/render"
)

// SSHServer wraps the SSH listener and game loop integration.
type SSHServer struct {
	gameLoop    *game.GameLoop
	addr        string
	hostKey     string
	idleTimeout time.Duration
}

// NewSSHServer creates a new SSH server bound to the given address.
// A zero idleTimeout keeps idle sessions open forever.
func NewSSHServer(addr, hostKey string, idleTimeout time.Duration, gl *game.GameLoop) *SSHServer {
	return &SSHServer{
		gameLoop:    gl,
		addr:        addr,
		hostKey:     hostKey,
		idleTimeout: idleTimeout,
	}
}

// Start begins listening for SSH connections.
func (s *SSHServer) Start() error {
	server := &ssh.Server{
		Addr:        s.addr,
		IdleTimeout: s.idleTimeout,
		Handler: func(sess ssh.Session) {
			s.handleSession(sess)
		},
	}

	if err := server.SetOption(ssh.HostKeyFile(s.hostKey)); err != nil {
		return fmt.Errorf("set host key: %w", err)
	}

	log.Printf("SSH server listening on %s", s.addr)
	return server.ListenAndServe()
}

func (s *SSHServer) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		fmt.Fprintln(sess, "Error: PTY required. Use: ssh -t ...")
		return
	}

	username := sess.User()
	if username == "" {
		username = "Anonymous"
	}

	// Username is the identity; a returning player resumes their run.
	playerID, renderCh := s.gameLoop.AddPlayer(username)

	log.Printf("Player connected: %s (%s)", username, playerID)
	defer func() {
		s.gameLoop.RemovePlayer(playerID)
		log.Printf("Player disconnected: %s (%s)", username, playerID)
	}()

	termW := ptyReq.Window.Width
	termH := ptyReq.Window.Height
	var termMu sync.Mutex

	engine := render.NewEngine(termW, termH)

	io.WriteString(sess, render.EnableAltScreen())
	io.WriteString(sess, render.HideCursor())
	io.WriteString(sess, render.ClearScreen())
	defer func() {
		io.WriteString(sess, render.ShowCursor())
		io.WriteString(sess, render.DisableAltScreen())
	}()

	inputCh := s.gameLoop.InputChan()
	quitCh := make(chan struct{})

	go func() {
		defer close(quitCh)
		buf := make([]byte, 64)
		for {
			n, err := sess.Read(buf)
			if err != nil {
				return
			}
			inputs, interrupt := parseInput(buf[:n])
			for _, in := range inputs {
				select {
				case inputCh <- game.InputEvent{PlayerID: playerID, Input: in}:
				default:
				}
			}
			if interrupt {
				return
			}
		}
	}()

	go func() {
		for win := range winCh {
			termMu.Lock()
			termW = win.Width
			termH = win.Height
			termMu.Unlock()
		}
	}()

	for {
		select {
		case <-quitCh:
			return
		case state, ok := <-renderCh:
			if !ok {
				return
			}

			termMu.Lock()
			w, h := termW, termH
			termMu.Unlock()

			output := engine.Render(state, w, h)
			if len(output) > 0 {
				io.WriteString(sess, output)
			}
			if state.Quit {
				return
			}
		}
	}
}

// parseInput converts raw bytes into player inputs.
// Handles arrows, WASD, Enter/Space, a lone Esc, Backspace, Tab and the
// camp keys. interrupt is true when Ctrl-C was pressed.
func parseInput(data []byte) (inputs []game.Input, interrupt bool) {
	i := 0
	for i < len(data) {
		if data[i] == 0x1b {
			if i+2 < len(data) && data[i+1] == '[' {
				switch data[i+2] {
				case 'A':
					inputs = append(inputs, game.InputUp)
				case 'B':
					inputs = append(inputs, game.InputDown)
				case 'C':
					inputs = append(inputs, game.InputRight)
				case 'D':
					inputs = append(inputs, game.InputLeft)
				}
				i += 3
				continue
			}
			inputs = append(inputs, game.InputCancel)
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		switch r {
		case 'w', 'W':
			inputs = append(inputs, game.InputUp)
		case 's', 'S':
			inputs = append(inputs, game.InputDown)
		case 'a', 'A':
			inputs = append(inputs, game.InputLeft)
		case 'd', 'D':
			inputs = append(inputs, game.InputRight)
		case '\r', '\n', ' ':
			inputs = append(inputs, game.InputConfirm)
		case 0x7f, 0x08: // Backspace
			inputs = append(inputs, game.InputCancel)
		case '\t':
			inputs = append(inputs, game.InputToggleLog)
		case 'b', 'B':
			inputs = append(inputs, game.InputBattle)
		case 'h', 'H':
			inputs = append(inputs, game.InputHire)
		case 'e', 'E':
			inputs = append(inputs, game.InputEquip)
		case 't', 'T':
			inputs = append(inputs, game.InputTalent)
		case 'q', 'Q':
			inputs = append(inputs, game.InputQuit)
		case 3: // Ctrl-C
			return inputs, true
		}
		i += size
	}
	return inputs, false
}
