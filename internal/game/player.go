package game

// Input is a discrete player input, already decoded from the terminal.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputConfirm   // Enter / Space
	InputCancel    // Esc / Backspace: leave a sub-menu
	InputToggleLog // Tab
	InputBattle    // camp: look for a fight
	InputHire      // camp: hire the next companion
	InputEquip     // camp: put found equipment on
	InputTalent    // camp: spend talent points
	InputQuit
)

// InputEvent carries a player input into the game loop.
type InputEvent struct {
	PlayerID string
	Input    Input
}
