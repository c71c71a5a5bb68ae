package tui

import "github.com/gdamore/tcell/v2"

// promptFn consumes the text submitted to an inline prompt. It may start
// another prompt, which is how multi-field flows (connect, search) chain.
type promptFn func(value string)

// prompt is the single-line text entry drawn above the status bar.
type prompt struct {
	label  string
	buf    []rune
	submit promptFn
}

// startPrompt opens an inline prompt with the given label.
func (ed *Editor) startPrompt(label string, fn promptFn) {
	ed.prompt = &prompt{label: label, submit: fn}
}

// cancelPrompt dismisses the prompt without submitting.
func (ed *Editor) cancelPrompt() {
	ed.prompt = nil
}

// handlePromptKey feeds one key event to the active prompt. Returns false
// when no prompt is active so the caller falls through to mode handling.
func (ed *Editor) handlePromptKey(ev *tcell.EventKey) bool {
	p := ed.prompt
	if p == nil {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		ed.cancelPrompt()
		ed.status = "cancelled"
	case tcell.KeyEnter:
		value := string(p.buf)
		// clear before submit: the callback may open the next prompt
		ed.prompt = nil
		p.submit(value)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.buf) > 0 {
			p.buf = p.buf[:len(p.buf)-1]
		}
	case tcell.KeyRune:
		p.buf = append(p.buf, ev.Rune())
	}

	return true
}
