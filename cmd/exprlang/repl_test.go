package main

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/flowbundle/exprlang/expr"
)

func TestUpdateQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":quit")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after quit command")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
	if msg := cmd(); msg != nil {
		if _, ok := msg.(tea.QuitMsg); !ok {
			t.Fatalf("expected QuitMsg, got %T", msg)
		}
	}
}

func TestUpdateShortQuitCommandReturnsQuit(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":q")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if !rm.quitting {
		t.Fatalf("quitting flag not set")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command")
	}
}

func TestUpdateHelpCommandTogglesHelpAndReturnsNoCmd(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":help")

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok := model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}

	if cmd != nil {
		t.Fatalf("expected no command for non-quit input")
	}
	if rm.quitting {
		t.Fatalf("quitting should remain false")
	}
	if !rm.showHelp {
		t.Fatalf("help toggle should be enabled")
	}
	if rm.textInput.Value() != "" {
		t.Fatalf("input not cleared after command")
	}

	rm.textInput.SetValue(":help")
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm, ok = model.(replModel)
	if !ok {
		t.Fatalf("unexpected model type %T", model)
	}
	if rm.showHelp {
		t.Fatalf("help toggle should flip back off on :help")
	}
}

func TestUpdateClearCommandEmptiesHistory(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("1 + 1")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if len(rm.history) != 1 {
		t.Fatalf("expected one history entry after evaluation, got %d", len(rm.history))
	}

	rm.textInput.SetValue(":clear")
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm = model.(replModel)
	if len(rm.history) != 0 {
		t.Fatalf("expected :clear to empty history, got %d entries", len(rm.history))
	}
}

func TestUpdateVarsCommandTogglesShowVars(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue(":vars")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if !rm.showVars {
		t.Fatalf("expected :vars to enable showVars")
	}
}

func TestEvaluateAssignmentStoresVariable(t *testing.T) {
	m := newREPLModel()

	m.textInput.SetValue("1 + 2")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if len(rm.history) != 1 || rm.history[0].output != "3" {
		t.Fatalf("unexpected history after evaluating 1 + 2: %#v", rm.history)
	}
	if v, ok := rm.root.Get("_"); !ok || v.Int() != 3 {
		t.Fatalf("expected _ to be bound to 3, got %v, %v", v, ok)
	}

	rm.textInput.SetValue(":let total _ * 10")
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm = model.(replModel)
	if v, ok := rm.root.Get("total"); !ok || v.Int() != 30 {
		t.Fatalf("expected total to be bound to 30, got %v, %v", v, ok)
	}
}

func TestEvaluateErrorIsRecordedAsErrHistoryEntry(t *testing.T) {
	m := newREPLModel()
	m.textInput.SetValue("1 +")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)
	if len(rm.history) != 1 || !rm.history[0].isErr {
		t.Fatalf("expected a failed parse to be recorded as an error entry: %#v", rm.history)
	}
}

func TestHandleCommandLetRequiresNameAndExpression(t *testing.T) {
	m := newREPLModel()
	rm, cmd := m.handleCommand(":let")
	if cmd != nil {
		t.Fatalf("expected no tea.Cmd for a malformed :let")
	}
	if len(rm.history) != 1 || !rm.history[0].isErr {
		t.Fatalf("expected a usage error to be recorded: %#v", rm.history)
	}
}

func TestHandleCommandResetClearsScope(t *testing.T) {
	m := newREPLModel()
	m.root.Set("x", expr.NewInt(42))
	m.textInput.SetValue("x")
	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm := model.(replModel)

	rm.textInput.SetValue(":reset")
	model, _ = rm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	rm = model.(replModel)
	if _, ok := rm.root.Get("x"); ok {
		t.Fatalf(":reset should drop prior bindings")
	}
}

func TestHandleCommandUnknownIsRecordedAsError(t *testing.T) {
	m := newREPLModel()
	rm, cmd := m.handleCommand(":bogus")
	if cmd != nil {
		t.Fatalf("expected no tea.Cmd for an unknown command")
	}
	if len(rm.history) != 1 || !rm.history[0].isErr {
		t.Fatalf("expected unknown command to be recorded as an error entry: %#v", rm.history)
	}
}

func TestUpdateCtrlCQuits(t *testing.T) {
	m := newREPLModel()
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	rm := model.(replModel)
	if !rm.quitting {
		t.Fatalf("expected ctrl+c to set quitting")
	}
	if cmd == nil {
		t.Fatalf("expected tea.Quit command for ctrl+c")
	}
}
